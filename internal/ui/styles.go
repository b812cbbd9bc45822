package ui

import (
	"github.com/charmbracelet/lipgloss"

	"cleanlist/internal/app"
)

type styles struct {
	title   lipgloss.Style
	cursor  lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
	field   lipgloss.Style
	remove  lipgloss.Style
	muted   lipgloss.Style
	status  lipgloss.Style
}

type palette struct {
	accent, text, faint, danger lipgloss.Color
}

var (
	lightPalette = palette{accent: "#6C5CE7", text: "#2D3436", faint: "#A4A4A4", danger: "#D63031"}
	darkPalette  = palette{accent: "#A29BFE", text: "#DFE6E9", faint: "#636E72", danger: "#FF7675"}
)

func newStyles(theme app.Theme) styles {
	p := lightPalette
	if theme == app.ThemeDark {
		p = darkPalette
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		cursor:  lipgloss.NewStyle().Foreground(p.accent),
		done:    lipgloss.NewStyle().Foreground(p.faint).Strikethrough(true),
		pending: lipgloss.NewStyle().Foreground(p.text),
		field:   lipgloss.NewStyle().Foreground(p.text).Underline(true),
		remove:  lipgloss.NewStyle().Foreground(p.danger),
		muted:   lipgloss.NewStyle().Foreground(p.faint),
		status:  lipgloss.NewStyle().Foreground(p.accent).Italic(true),
	}
}

// themeIcon is the label of the theme control: it names the theme a press
// switches to.
func themeIcon(theme app.Theme) string {
	if theme == app.ThemeDark {
		return "☀️"
	}
	return "🌙"
}
