// Package guide holds the channel guide engine: the raw channel list, the
// user's filter state and favorites, and the view derived from them.
package guide

import (
	"context"
	"slices"

	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// Favorites is the favorites controller the engine reads and toggles
type Favorites interface {
	Membership
	Toggle(ctx context.Context, id model.ChannelID) (bool, error)
}

// Engine owns the guide state. Every mutator recomputes the view from scratch,
// so View always equals Derive(raw, state, favorites). An Engine is not safe for
// concurrent use.
type Engine struct {
	raw       []model.Channel
	state     model.FilterState
	favorites Favorites
	collator  *TitleCollator
	view      []model.Channel
}

// NewEngine creates an engine with no channels and the default filter state.
// favorites may be nil, in which case the favorites-only filter matches nothing.
func NewEngine(favorites Favorites, collator *TitleCollator) *Engine {
	if collator == nil {
		collator = NewTitleCollator("en")
	}
	e := &Engine{
		state:     model.DefaultFilterState(),
		favorites: favorites,
		collator:  collator,
	}
	e.recompute()
	return e
}

// SetChannels replaces the raw channel list
func (e *Engine) SetChannels(channels []model.Channel) {
	e.raw = slices.Clone(channels)
	e.recompute()
}

// Channels returns the raw channel list
func (e *Engine) Channels() []model.Channel {
	return e.raw
}

// View returns the derived channel list. Callers must not modify it.
func (e *Engine) View() []model.Channel {
	return e.view
}

// State returns a copy of the current filter state
func (e *Engine) State() model.FilterState {
	return e.state
}

// SetState replaces the whole filter state
func (e *Engine) SetState(state model.FilterState) {
	e.state = state
	e.recompute()
}

func (e *Engine) SetSearch(term string) {
	e.state.SearchTerm = term
	e.recompute()
}

func (e *Engine) SetCategory(category string) {
	e.state.Category = category
	e.recompute()
}

func (e *Engine) SetLanguage(language string) {
	e.state.Language = language
	e.recompute()
}

func (e *Engine) ToggleHD() {
	e.state.HDOnly = !e.state.HDOnly
	e.recompute()
}

func (e *Engine) ToggleFavoritesOnly() {
	e.state.FavoritesOnly = !e.state.FavoritesOnly
	e.recompute()
}

func (e *Engine) SetSort(order model.SortOrder) {
	e.state.Sort = order
	e.recompute()
}

// CycleSort advances the sort order none -> ascending -> descending -> none
func (e *Engine) CycleSort() model.SortOrder {
	e.state.Sort = e.state.Sort.Next()
	e.recompute()
	return e.state.Sort
}

// CycleCategory selects the next category from the loaded channels
func (e *Engine) CycleCategory() string {
	e.state.Category = NextOption(e.Categories(), e.state.Category)
	e.recompute()
	return e.state.Category
}

// CycleLanguage selects the next language from the loaded channels
func (e *Engine) CycleLanguage() string {
	e.state.Language = NextOption(e.Languages(), e.state.Language)
	e.recompute()
	return e.state.Language
}

// IsFavorite reports whether id is a favorite
func (e *Engine) IsFavorite(id model.ChannelID) bool {
	return e.favorites != nil && e.favorites.Contains(id)
}

// ToggleFavorite flips the favorite membership of id. The view is recomputed even
// when persisting fails, because the in-memory set has already changed.
func (e *Engine) ToggleFavorite(ctx context.Context, id model.ChannelID) (bool, error) {
	if e.favorites == nil {
		return false, nil
	}
	added, err := e.favorites.Toggle(ctx, id)
	e.recompute()
	return added, err
}

// Categories returns the distinct categories of the loaded channels
func (e *Engine) Categories() []string {
	return distinct(e.raw, func(ch model.Channel) string { return ch.Category }, e.collator)
}

// Languages returns the distinct languages of the loaded channels
func (e *Engine) Languages() []string {
	return distinct(e.raw, func(ch model.Channel) string { return ch.Language }, e.collator)
}

func (e *Engine) recompute() {
	e.view = Derive(e.raw, e.state, e.favorites, e.collator)
}
