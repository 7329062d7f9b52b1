package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/packlist/internal/ui"
)

const helpMarkdown = `
# My Travel List

Add what you need to pack, tick it off once it is in the bag.

## Add form

| Key | Action |
| --- | --- |
| tab / shift+tab | move between description, quantity and list |
| ← → or 1 2 3 | choose the quantity (quantity field) |
| enter | add the item |
| esc | jump to the list |

## List

| Key | Action |
| --- | --- |
| space or x | mark packed / unpacked |
| d | delete the item |
| C | clear the whole list |
| / | filter by description |
| q | quit |

Unpacked items are always listed before packed ones.

_Press any key to close this help._
`

// renderHelp renders the help screen; on renderer failure the raw
// markdown is shown instead.
func renderHelp(t ui.Theme, width int) string {
	if width < 20 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(t.MarkdownStyle),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return strings.TrimSpace(helpMarkdown)
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return strings.TrimSpace(helpMarkdown)
	}
	return strings.TrimRight(out, "\n")
}
