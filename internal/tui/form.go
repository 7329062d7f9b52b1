package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

type formField int

const (
	fieldDescription formField = iota
	fieldQuantity
)

// addForm owns the only input state outside the root: the description
// being typed and the selected quantity.
type addForm struct {
	input    textinput.Model
	quantity model.Quantity
	field    formField
	focused  bool

	ids   packing.IDSource
	keys  keyMap
	theme ui.Theme
}

func newAddForm(t ui.Theme, keys keyMap, ids packing.IDSource) addForm {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item..."
	ti.CharLimit = 200
	ti.Width = 40
	return addForm{
		input:    ti,
		quantity: model.DefaultQuantity,
		ids:      ids,
		keys:     keys,
		theme:    t,
	}
}

func (f addForm) Description() string      { return f.input.Value() }
func (f addForm) Quantity() model.Quantity { return f.quantity }

func (f *addForm) Focus(field formField) tea.Cmd {
	f.focused = true
	f.field = field
	if field == fieldDescription {
		return f.input.Focus()
	}
	f.input.Blur()
	return nil
}

func (f *addForm) Blur() {
	f.focused = false
	f.input.Blur()
}

// submit turns the current input into a new unpacked item and resets the
// fields. Blank descriptions are accepted.
func (f *addForm) submit() tea.Cmd {
	it := model.Item{
		ID:          f.ids.NextID(),
		Description: strings.TrimSpace(f.input.Value()),
		Quantity:    f.quantity,
	}
	f.input.Reset()
	f.quantity = model.DefaultQuantity
	return emit(addItemMsg{item: it})
}

func (f addForm) Update(msg tea.Msg) (addForm, tea.Cmd) {
	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}
	if !f.focused {
		return f, nil
	}
	if key.Matches(km, f.keys.Submit) {
		cmd := f.submit()
		return f, cmd
	}
	if f.field == fieldQuantity {
		switch {
		case key.Matches(km, f.keys.QuantityPrev):
			f.quantity = stepQuantity(f.quantity, -1)
		case key.Matches(km, f.keys.QuantityNext):
			f.quantity = stepQuantity(f.quantity, 1)
		default:
			if q, err := model.ParseQuantity(km.String()); err == nil {
				f.quantity = q
			}
		}
		return f, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(km)
	return f, cmd
}

// stepQuantity moves through model.Quantities, wrapping at both ends.
func stepQuantity(q model.Quantity, delta int) model.Quantity {
	n := len(model.Quantities)
	i := slices.Index(model.Quantities, q)
	if i < 0 {
		return model.DefaultQuantity
	}
	return model.Quantities[((i+delta)%n+n)%n]
}

func (f addForm) View() string {
	t := f.theme
	var qty strings.Builder
	for _, q := range model.Quantities {
		cell := " " + q.String() + " "
		switch {
		case q == f.quantity && f.focused && f.field == fieldQuantity:
			cell = t.Selected.Render("[" + q.String() + "]")
		case q == f.quantity:
			cell = t.Accent.Render("[" + q.String() + "]")
		default:
			cell = t.Muted.Render(cell)
		}
		qty.WriteString(cell)
	}
	return t.Title.Render("What do you need to pack?") + "\n" +
		qty.String() + "  " + f.input.View() + "  " + t.Muted.Render("enter add")
}
