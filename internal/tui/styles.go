package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.AdaptiveColor{Light: "#0B5394", Dark: "#8BC34A"}
	muted       = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	border      = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	favorite    = lipgloss.Color("#E53935")
	warning     = lipgloss.Color("#FFC107")
	selectedBar = lipgloss.AdaptiveColor{Light: "#0B5394", Dark: "#8BC34A"}
)

// Styles groups the lipgloss styles used by the guide view
type Styles struct {
	Title        lipgloss.Style
	FilterLabel  lipgloss.Style
	FilterValue  lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Heading      lipgloss.Style
	Favorite     lipgloss.Style
	Tag          lipgloss.Style
	Muted        lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the styles of the guide view
func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(border).
		PaddingLeft(1).
		MarginBottom(1)

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(accent),
		FilterLabel:  lipgloss.NewStyle().Foreground(muted),
		FilterValue:  lipgloss.NewStyle().Bold(true),
		Card:         card,
		SelectedCard: card.BorderStyle(lipgloss.ThickBorder()).BorderForeground(selectedBar),
		Heading:      lipgloss.NewStyle().Bold(true),
		Favorite:     lipgloss.NewStyle().Foreground(favorite),
		Tag:          lipgloss.NewStyle().Foreground(accent),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		Status:       lipgloss.NewStyle().Foreground(warning),
		Help:         lipgloss.NewStyle().Foreground(muted),
	}
}
