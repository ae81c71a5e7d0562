package room

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	pet       lipgloss.Style
	detail    lipgloss.Style
	content   lipgloss.Style
	hungry    lipgloss.Style
	pending   lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	metaKey   lipgloss.Style
	metaValue lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		pet:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		content:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		hungry:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		pending:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		metaKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		metaValue: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
