package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")
)

// styles holds the lipgloss styles for command output. Without colour all
// styles render text unchanged.
type styles struct {
	result     lipgloss.Style
	diagnostic lipgloss.Style
	muted      lipgloss.Style
	header     lipgloss.Style
	prompt     lipgloss.Style
	helpKey    lipgloss.Style
	helpDesc   lipgloss.Style
	border     lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			result:     plain,
			diagnostic: plain,
			muted:      plain,
			header:     plain,
			prompt:     plain,
			helpKey:    plain,
			helpDesc:   plain,
			border:     plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}

	return styles{
		result:     lipgloss.NewStyle().Foreground(successColor),
		diagnostic: lipgloss.NewStyle().Foreground(errorColor),
		muted:      lipgloss.NewStyle().Foreground(mutedColor),
		header:     lipgloss.NewStyle().Foreground(accentColor).Bold(true).Padding(0, 1),
		prompt:     lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		helpKey:    lipgloss.NewStyle().Foreground(highlightColor),
		helpDesc:   lipgloss.NewStyle().Foreground(mutedColor),
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1),
	}
}
