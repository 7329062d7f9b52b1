package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done                                lipgloss.Style

	BoxUnchecked, BoxChecked, DeleteGlyph string
	BarFilled, BarEmpty                   string

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	// MarkdownStyle names the glamour standard style for the help screen.
	MarkdownStyle string
}

// ThemeNames lists the accepted --theme values.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName resolves a theme; the empty name means classic.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return classic(), nil
	case "neon":
		return neon(), nil
	case "mono":
		return mono(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames, ", "))
}

// Apply sets process-wide rendering state the theme depends on.
func (t Theme) Apply() {
	if t.Name == "mono" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func classic() Theme {
	return Theme{
		Name:          "classic",
		Title:         lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Faint(true),
		Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:      lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:          lipgloss.NewStyle().Faint(true).Strikethrough(true),
		BoxUnchecked:  "☐",
		BoxChecked:    "☑",
		DeleteGlyph:   "✖",
		BarFilled:     "█",
		BarEmpty:      "░",
		Border:        lipgloss.RoundedBorder(),
		BorderColor:   lipgloss.Color("8"),
		MarkdownStyle: "dark",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.BorderColor = lipgloss.Color("201")
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:          "mono",
		Title:         plain.Bold(true),
		Muted:         plain,
		Accent:        plain,
		Success:       plain,
		Error:         plain.Bold(true),
		Pending:       plain,
		Selected:      plain.Reverse(true),
		Done:          plain.Strikethrough(true),
		BoxUnchecked:  "[ ]",
		BoxChecked:    "[x]",
		DeleteGlyph:   "x",
		BarFilled:     "#",
		BarEmpty:      "-",
		Border:        lipgloss.ASCIIBorder(),
		BorderColor:   lipgloss.NoColor{},
		MarkdownStyle: "notty",
	}
}
