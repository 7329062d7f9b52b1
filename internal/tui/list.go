package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

// packingList shows a snapshot of the collection in display order and turns
// row keys into intents. It never changes the collection itself.
type packingList struct {
	list  list.Model
	keys  keyMap
	theme ui.Theme
	count int
}

func newPackingList(t ui.Theme, keys keyMap, width, height int) packingList {
	l := list.New(nil, rowDelegate{theme: t}, width, height)
	l.Title = "Packing list"
	l.Styles.Title = t.Title
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("item", "items")
	l.SetFilteringEnabled(true)
	l.Filter = fuzzyFilter
	l.FilterInput.Prompt = "/ "
	l.DisableQuitKeybindings()

	p := packingList{list: l, keys: keys, theme: t}
	p.syncKeys()
	return p
}

// SetItems replaces the rows with items in display order. The selection
// stays on the same item id when it is still present.
func (p *packingList) SetItems(items []model.Item) tea.Cmd {
	prev, hadPrev := p.selected()

	ordered := packing.DisplayOrder(items)
	rows := make([]list.Item, len(ordered))
	for i, it := range ordered {
		rows[i] = rowItem{item: it}
	}
	cmd := p.list.SetItems(rows)
	p.count = len(items)
	p.syncKeys()

	if hadPrev && !p.list.IsFiltered() {
		for i, it := range ordered {
			if it.ID == prev.item.ID {
				p.list.Select(i)
				break
			}
		}
	}
	if n := len(p.list.VisibleItems()); n > 0 && p.list.Index() >= n {
		p.list.Select(n - 1)
	}
	return cmd
}

func (p *packingList) syncKeys() {
	nonEmpty := p.count > 0
	p.keys.Toggle.SetEnabled(nonEmpty)
	p.keys.Delete.SetEnabled(nonEmpty)
	p.keys.ClearAll.SetEnabled(nonEmpty)
}

func (p *packingList) SetSize(width, height int) {
	p.list.SetSize(width, height)
}

// SettingFilter reports whether the filter prompt is taking keystrokes.
func (p packingList) SettingFilter() bool { return p.list.SettingFilter() }

func (p packingList) selected() (rowItem, bool) {
	r, ok := p.list.SelectedItem().(rowItem)
	return r, ok
}

// Rows returns the items in the order they are shown.
func (p packingList) Rows() []model.Item {
	visible := p.list.VisibleItems()
	out := make([]model.Item, 0, len(visible))
	for _, it := range visible {
		if r, ok := it.(rowItem); ok {
			out = append(out, r.item)
		}
	}
	return out
}

func (p packingList) Update(msg tea.Msg) (packingList, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && !p.list.SettingFilter() {
		switch {
		case key.Matches(km, p.keys.Toggle):
			if r, ok := p.selected(); ok {
				return p, r.toggle()
			}
			return p, nil
		case key.Matches(km, p.keys.Delete):
			if r, ok := p.selected(); ok {
				return p, r.delete()
			}
			return p, nil
		case key.Matches(km, p.keys.ClearAll):
			return p, emit(clearAllMsg{})
		}
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p packingList) View() string {
	out := p.list.View()
	if p.count > 0 {
		out += "\n" + p.theme.Error.Render("["+p.keys.ClearAll.Help().Key+"] Clear All")
	}
	return out
}

// fuzzyFilter ranks rows by how closely their description matches term.
func fuzzyFilter(term string, targets []string) []list.Rank {
	ranks := fuzzy.RankFindNormalizedFold(term, targets)
	sort.Stable(ranks)
	out := make([]list.Rank, len(ranks))
	for i, r := range ranks {
		out[i] = list.Rank{Index: r.OriginalIndex}
	}
	return out
}
