package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar of width cells with done/total filled.
func ProgressBar(t Theme, done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return t.Success.Render(strings.Repeat(t.BarFilled, filled)) +
		t.Muted.Render(strings.Repeat(t.BarEmpty, width-filled))
}

// Panel frames inner with the theme's border. width <= 0 sizes to content.
func Panel(t Theme, inner string, width int) string {
	style := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if width > 0 {
		// Width excludes the border but includes padding.
		style = style.Width(width - 2)
	}
	return style.Render(inner)
}
