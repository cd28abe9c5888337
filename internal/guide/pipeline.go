package guide

import (
	"slices"
	"strings"

	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// Membership answers whether a channel is a favorite
type Membership interface {
	Contains(id model.ChannelID) bool
}

// MembershipFunc adapts a function to Membership
type MembershipFunc func(id model.ChannelID) bool

func (f MembershipFunc) Contains(id model.ChannelID) bool {
	return f(id)
}

// Derive computes the displayed channels from the raw list, the filter state and
// the favorites. It never modifies raw and always returns a new slice, so two
// calls with equal inputs yield equal views.
//
// All predicates are conjunctive: category and language match by equality unless
// set to "All"; the HD filter keeps channels carrying the "HD" capability tag; the
// search term matches the title case-insensitively or the set-top-box number
// verbatim; the favorites filter keeps members of favorites. The surviving
// channels keep their raw order unless a title sort is selected.
func Derive(raw []model.Channel, state model.FilterState, favorites Membership, collator *TitleCollator) []model.Channel {
	view := make([]model.Channel, 0, len(raw))
	lowerTerm := strings.ToLower(state.SearchTerm)

	for _, ch := range raw {
		if !model.IsAll(state.Category) && ch.Category != state.Category {
			continue
		}
		if !model.IsAll(state.Language) && ch.Language != state.Language {
			continue
		}
		if state.HDOnly && !ch.IsHD() {
			continue
		}
		if state.SearchTerm != "" && !matchesSearch(ch, state.SearchTerm, lowerTerm) {
			continue
		}
		if state.FavoritesOnly && (favorites == nil || !favorites.Contains(ch.ID)) {
			continue
		}
		view = append(view, ch)
	}

	SortByTitle(view, state.Sort, collator)
	return view
}

// SortByTitle sorts channels in place by title. SortNone leaves the order untouched.
// Channels with equal titles keep their relative order in both directions.
func SortByTitle(channels []model.Channel, order model.SortOrder, collator *TitleCollator) {
	if order == model.SortNone || len(channels) < 2 {
		return
	}
	if collator == nil {
		collator = NewTitleCollator("en")
	}

	slices.SortStableFunc(channels, func(a, b model.Channel) int {
		if order == model.SortDescending {
			return collator.Compare(b.Title, a.Title)
		}
		return collator.Compare(a.Title, b.Title)
	})
}

func matchesSearch(ch model.Channel, term, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(ch.Title), lowerTerm) ||
		strings.Contains(ch.StbNumber, term)
}

// distinct returns the non-empty values of field across channels, collated ascending
func distinct(channels []model.Channel, field func(model.Channel) string, collator *TitleCollator) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, ch := range channels {
		v := field(ch)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.SortFunc(values, collator.Compare)
	return values
}

// NextOption returns the option following current in the cycle "All", options...
// An unknown current value restarts the cycle at the first option.
func NextOption(options []string, current string) string {
	if len(options) == 0 {
		return model.OptionAll
	}
	if model.IsAll(current) {
		return options[0]
	}
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	if i == len(options)-1 {
		return model.OptionAll
	}
	return options[i+1]
}
