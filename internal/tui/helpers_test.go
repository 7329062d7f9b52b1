package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

// seqIDs hands out 1, 2, 3, ...
type seqIDs struct{ next int64 }

func (s *seqIDs) NextID() int64 {
	s.next++
	return s.next
}

func testTheme(t *testing.T) ui.Theme {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	th, err := ui.ThemeByName("mono")
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	return th
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	m := newAppModel(Options{Theme: testTheme(t), IDs: &seqIDs{}})
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return mAny.(appModel)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

// press sends one key and drops whatever command comes back.
func press(m appModel, k tea.KeyMsg) appModel {
	mAny, _ := m.Update(k)
	return mAny.(appModel)
}

// typeText sends s one rune at a time.
func typeText(m appModel, s string) appModel {
	for _, r := range s {
		m = press(m, keyRunes(string(r)))
	}
	return m
}

// dispatch sends k, runs the command it returns and feeds the resulting
// intent back into the model, the way the Bubble Tea runtime would.
func dispatch(t *testing.T, m appModel, k tea.KeyMsg) appModel {
	t.Helper()
	mAny, cmd := m.Update(k)
	m = mAny.(appModel)
	if cmd == nil {
		t.Fatalf("key %q produced no command", k.String())
	}
	msg := cmd()
	switch msg.(type) {
	case addItemMsg, togglePackedMsg, deleteItemMsg, clearAllMsg:
	default:
		t.Fatalf("key %q produced %T, want an intent", k.String(), msg)
	}
	mAny, _ = m.Update(msg)
	return mAny.(appModel)
}

// addItem fills in the form and submits it.
func addItem(t *testing.T, m appModel, desc string, q model.Quantity) appModel {
	t.Helper()
	m.setFocus(focusDescription)
	m = typeText(m, desc)
	m.setFocus(focusQuantity)
	m = press(m, keyRunes(q.String()))
	return dispatch(t, m, keyEnter)
}

func itemIDs(items []model.Item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
