package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

// rowItem adapts model.Item to bubbles/list.Item.
type rowItem struct {
	item model.Item
}

func (r rowItem) FilterValue() string { return r.item.Description }

func (r rowItem) toggle() tea.Cmd { return emit(togglePackedMsg{id: r.item.ID}) }
func (r rowItem) delete() tea.Cmd { return emit(deleteItemMsg{id: r.item.ID}) }

// rowDelegate renders each row on a single line.
type rowDelegate struct {
	theme ui.Theme
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(rowItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderRow(d.theme, r.item, index == m.Index(), m.Width()))
}

// renderRow draws "> ☑ Socks (2)  ✖". The checkbox always comes from
// it.Packed.
func renderRow(t ui.Theme, it model.Item, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = t.Selected.Render(">") + " "
	}

	box := t.Muted.Render(t.BoxUnchecked)
	if it.Packed {
		box = t.Success.Render(t.BoxChecked)
	}

	label := it.Label()
	if width > 0 {
		avail := width - 2 - ui.Width(t.BoxChecked) - 1 - 2 - ui.Width(t.DeleteGlyph)
		label = ui.Truncate(label, max(avail, 1))
	}
	if it.Packed {
		label = t.Done.Render(label)
	}

	return prefix + box + " " + label + "  " + t.Error.Render(t.DeleteGlyph)
}
