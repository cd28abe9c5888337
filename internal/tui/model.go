// Package tui is the interactive channel guide. It renders the engine's view
// and turns key presses into engine intents; all state lives in the engine.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Taichi-iskw/tv-guide/internal/guide"
	"github.com/Taichi-iskw/tv-guide/internal/logging"
	"github.com/Taichi-iskw/tv-guide/internal/model"
	"github.com/Taichi-iskw/tv-guide/internal/service/directory"
)

const (
	// cardHeight is the number of lines a rendered card occupies, margin included
	cardHeight = 6
	// chromeHeight covers the title, search, filter, status and help lines
	chromeHeight = 8

	defaultCardsPerPage = 5
)

const helpText = "/ search · c category · l language · h HD · f favorites · s sort · space favorite · q quit"

type loadedMsg struct {
	channels []model.Channel
	err      error
}

type searchMsg struct {
	term string
}

// Model is the bubbletea model of the guide
type Model struct {
	ctx    context.Context
	engine *guide.Engine
	loader *directory.Loader
	logger *zap.Logger
	styles Styles

	spinner   spinner.Model
	search    textinput.Model
	debouncer *Debouncer
	notify    func(tea.Msg)

	loaded bool
	cursor int
	width  int
	height int
	status string
}

// New creates the guide model. The channel load starts with Init.
func New(ctx context.Context, engine *guide.Engine, loader *directory.Loader, logger *zap.Logger) *Model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "title or channel number"
	search.CharLimit = 64

	m := &Model{
		ctx:       ctx,
		engine:    engine,
		loader:    loader,
		logger:    logging.OrNop(logger),
		styles:    DefaultStyles(),
		spinner:   s,
		search:    search,
		debouncer: NewDebouncer(SearchDebounce),
	}
	m.spinner.Style = m.styles.Tag
	return m
}

// Run starts the guide on the terminal and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, engine *guide.Engine, loader *directory.Loader, logger *zap.Logger, opts ...tea.ProgramOption) error {
	m := New(ctx, engine, loader, logger)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	m.notify = p.Send
	defer m.debouncer.Cancel()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run guide: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m *Model) load() tea.Msg {
	channels, err := m.loader.Load(m.ctx)
	return loadedMsg{channels: channels, err: err}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.search.Width = max(msg.Width-len(m.search.Prompt)-2, 10)
		return m, nil

	case loadedMsg:
		m.loaded = true
		m.engine.SetChannels(msg.channels)
		if msg.err != nil {
			m.status = "Could not load channels"
		}
		m.clampCursor()
		return m, nil

	case searchMsg:
		// A newer keystroke has superseded this term
		if msg.term != m.search.Value() {
			return m, nil
		}
		m.applySearch(msg.term)
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.debouncer.Cancel()
		return m, tea.Quit
	}

	if m.search.Focused() {
		switch key {
		case "esc", "enter", "tab":
			m.search.Blur()
			term := m.search.Value()
			m.debouncer.Flush(func() { m.applySearch(term) })
			return m, nil
		}

		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if term := m.search.Value(); term != before {
			m.scheduleSearch(term)
		}
		return m, cmd
	}

	if key == "q" {
		m.debouncer.Cancel()
		return m, tea.Quit
	}
	if !m.loaded {
		return m, nil
	}

	m.status = ""
	switch key {
	case "/", "tab":
		return m, m.search.Focus()
	case "c":
		m.engine.CycleCategory()
	case "l":
		m.engine.CycleLanguage()
	case "h":
		m.engine.ToggleHD()
	case "f":
		m.engine.ToggleFavoritesOnly()
	case "s":
		m.engine.CycleSort()
	case " ":
		m.toggleFavorite()
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.engine.View()) - 1
	}
	m.clampCursor()
	return m, nil
}

// scheduleSearch filters by term once typing pauses. Without a program to
// deliver the message the term is applied at once.
func (m *Model) scheduleSearch(term string) {
	notify := m.notify
	if notify == nil {
		m.debouncer.Flush(func() { m.applySearch(term) })
		return
	}
	m.debouncer.Debounce(func() { notify(searchMsg{term: term}) })
}

func (m *Model) applySearch(term string) {
	if m.engine.State().SearchTerm == term {
		return
	}
	m.engine.SetSearch(term)
	m.cursor = 0
}

func (m *Model) toggleFavorite() {
	view := m.engine.View()
	if len(view) == 0 {
		return
	}
	ch := view[m.cursor]

	added, err := m.engine.ToggleFavorite(m.ctx, ch.ID)
	switch {
	case err != nil:
		m.logger.Warn("failed to save favorites", zap.String("channel_id", string(ch.ID)), zap.Error(err))
		m.status = "Favorites could not be saved"
	case added:
		m.status = fmt.Sprintf("Added %s to favorites", ch.Title)
	default:
		m.status = fmt.Sprintf("Removed %s from favorites", ch.Title)
	}
}

func (m *Model) clampCursor() {
	last := len(m.engine.View()) - 1
	if m.cursor > last {
		m.cursor = last
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) cardsPerPage() int {
	if m.height <= 0 {
		return defaultCardsPerPage
	}
	return max((m.height-chromeHeight)/cardHeight, 1)
}

func (m *Model) View() string {
	if !m.loaded {
		return fmt.Sprintf("\n %s Loading channels...\n", m.spinner.View())
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("TV Guide"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	view := m.engine.View()
	if len(view) == 0 {
		b.WriteString(m.styles.Muted.Render(guide.NoChannelsText))
		b.WriteString("\n\n")
	} else {
		per := m.cardsPerPage()
		start := m.cursor - m.cursor%per
		end := min(start+per, len(view))
		for i, card := range guide.Cards(view[start:end], guide.MembershipFunc(m.engine.IsFavorite)) {
			b.WriteString(m.renderCard(card, start+i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d of %d channels", len(view), len(m.engine.Channels()))))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpText))
	return b.String()
}

func (m *Model) renderFilters() string {
	state := m.engine.State()
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	option := func(v string) string {
		if model.IsAll(v) {
			return model.OptionAll
		}
		return v
	}

	pairs := [][2]string{
		{"Category", option(state.Category)},
		{"Language", option(state.Language)},
		{"HD", onOff(state.HDOnly)},
		{"Favorites", onOff(state.FavoritesOnly)},
		{"Sort", state.Sort.String()},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, m.styles.FilterLabel.Render(p[0]+":")+" "+m.styles.FilterValue.Render(p[1]))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderCard(card guide.Card, selected bool) string {
	heading := m.styles.Heading.Render(card.Heading)
	if card.Favorite {
		heading += " " + m.styles.Favorite.Render(guide.FavoriteMarker)
	}
	if card.HD {
		heading += " " + m.styles.Tag.Render(model.CapabilityHD)
	}

	lines := []string{heading}
	if details := joinNonEmpty(" · ", card.Category, card.Language); details != "" {
		lines = append(lines, m.styles.Muted.Render(details))
	}
	lines = append(lines, card.OnNow)
	for _, upcoming := range card.Upcoming {
		lines = append(lines, m.styles.Muted.Render(upcoming))
	}

	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	return style.Render(strings.Join(lines, "\n"))
}

func joinNonEmpty(sep string, values ...string) string {
	kept := values[:0:0]
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, sep)
}
