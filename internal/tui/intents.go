package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
)

// Intents travel from the child views up to the root model, which is the
// only place the item collection changes.
type (
	addItemMsg      struct{ item model.Item }
	togglePackedMsg struct{ id int64 }
	deleteItemMsg   struct{ id int64 }
	clearAllMsg     struct{}
)

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
