package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// StripANSI removes escape sequences, leaving the visible text.
func StripANSI(s string) string { return ansi.Strip(s) }

// Width is the number of terminal cells s occupies.
func Width(s string) int { return ansi.StringWidth(s) }

// Truncate shortens s to at most width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, ellipsis)
}

func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render("✔ "+msg))
}

func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
