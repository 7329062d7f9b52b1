package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

const (
	appTitle = "My Travel List"

	defaultWidth      = 80
	defaultListHeight = 10
	// Rows taken by everything except the list: border, header, form,
	// clear-all control, stats, help line and the blank separators.
	chromeHeight = 14
)

type focusArea int

const (
	focusDescription focusArea = iota
	focusQuantity
	focusList
	focusCount
)

// Options configures the program.
type Options struct {
	Theme     ui.Theme
	Logger    *slog.Logger
	IDs       packing.IDSource
	AltScreen bool
}

// appModel is the root: it owns the item collection and is the only place
// it changes. Children get snapshots and answer with intent messages.
type appModel struct {
	items []model.Item

	form addForm
	list packingList
	keys keyMap
	help help.Model

	theme ui.Theme
	log   *slog.Logger

	focus    focusArea
	showHelp bool
	helpView string

	width, height int
}

func newAppModel(opt Options) appModel {
	if opt.Theme.Name == "" {
		opt.Theme, _ = ui.ThemeByName("")
	}
	if opt.Logger == nil {
		opt.Logger = logging.Discard()
	}
	if opt.IDs == nil {
		opt.IDs = packing.NewClockIDs(nil)
	}

	keys := newKeyMap()
	h := help.New()
	h.Styles.ShortKey = opt.Theme.Accent
	h.Styles.ShortDesc = opt.Theme.Muted
	h.Styles.ShortSeparator = opt.Theme.Muted

	m := appModel{
		items: packing.Clear(),
		form:  newAddForm(opt.Theme, keys, opt.IDs),
		list:  newPackingList(opt.Theme, keys, defaultWidth-4, defaultListHeight),
		keys:  keys,
		help:  h,
		theme: opt.Theme,
		log:   opt.Logger,
	}
	m.list.SetItems(m.items)
	m.setFocus(focusDescription)
	return m
}

// Items returns a copy of the collection in insertion order.
func (m appModel) Items() []model.Item { return slices.Clone(m.items) }

// AddItem appends it to the collection.
func (m *appModel) AddItem(it model.Item) tea.Cmd {
	m.items = packing.Add(m.items, it)
	m.log.Debug("add", slog.Any("item", it))
	return m.list.SetItems(m.items)
}

// TogglePacked flips the packed flag of the item with id, if any.
func (m *appModel) TogglePacked(id int64) tea.Cmd {
	m.items = packing.Toggle(m.items, id)
	if it, ok := packing.Find(m.items, id); ok {
		m.log.Debug("toggle", slog.Int64("id", id), slog.Bool("packed", it.Packed))
	}
	return m.list.SetItems(m.items)
}

// DeleteItem removes the item with id, if any.
func (m *appModel) DeleteItem(id int64) tea.Cmd {
	m.items = packing.Delete(m.items, id)
	m.log.Debug("delete", slog.Int64("id", id))
	return m.list.SetItems(m.items)
}

// ClearAll empties the collection.
func (m *appModel) ClearAll() tea.Cmd {
	m.log.Debug("clear", slog.Int("count", len(m.items)))
	m.items = packing.Clear()
	return m.list.SetItems(m.items)
}

func (m *appModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	switch f {
	case focusDescription:
		return m.form.Focus(fieldDescription)
	case focusQuantity:
		return m.form.Focus(fieldQuantity)
	default:
		m.form.Blur()
		return nil
	}
}

func (m *appModel) resize(width, height int) {
	m.width, m.height = width, height
	inner := width - 4
	m.list.SetSize(inner, max(height-chromeHeight, 3))
	m.help.Width = inner
	if m.showHelp {
		m.helpView = renderHelp(m.theme, inner)
	}
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case addItemMsg:
		cmd = m.AddItem(msg.item)
		return m, cmd
	case togglePackedMsg:
		cmd = m.TogglePacked(msg.id)
		return m, cmd
	case deleteItemMsg:
		cmd = m.DeleteItem(msg.id)
		return m, cmd
	case clearAllMsg:
		cmd = m.ClearAll()
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blinks and filter results.
	var formCmd, listCmd tea.Cmd
	m.form, formCmd = m.form.Update(msg)
	m.list, listCmd = m.list.Update(msg)
	return m, tea.Batch(formCmd, listCmd)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.focus == focusList && m.list.SettingFilter() {
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		cmd = m.setFocus((m.focus + 1) % focusCount)
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd = m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	}

	if m.focus == focusList {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			m.helpView = renderHelp(m.theme, m.innerWidth())
			return m, nil
		}
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Leave) {
		cmd = m.setFocus(focusList)
		return m, cmd
	}
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m appModel) innerWidth() int {
	if m.width <= 0 {
		return defaultWidth - 4
	}
	return m.width - 4
}

func (m appModel) helpBindings() []key.Binding {
	switch m.focus {
	case focusDescription:
		return []key.Binding{m.keys.Submit, m.keys.NextFocus, m.keys.Leave, m.keys.ForceQuit}
	case focusQuantity:
		return []key.Binding{m.keys.QuantityPrev, m.keys.QuantityNext, m.keys.Submit, m.keys.NextFocus, m.keys.Leave}
	default:
		lk := m.list.keys
		return []key.Binding{lk.Toggle, lk.Delete, lk.ClearAll, m.list.list.KeyMap.Filter, m.keys.NextFocus, m.keys.Help, m.keys.Quit}
	}
}

func (m appModel) View() string {
	if m.showHelp {
		return ui.Panel(m.theme, m.helpView, m.width)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(appTitle),
		"",
		m.form.View(),
		"",
		m.list.View(),
		"",
		renderStats(m.theme, m.items, m.innerWidth()),
		"",
		m.help.ShortHelpView(m.helpBindings()),
	)
	return ui.Panel(m.theme, body, m.width)
}

// Run starts the program on the terminal and blocks until the user quits.
// It returns the collection as it was at exit.
func Run(ctx context.Context, opt Options) ([]model.Item, error) {
	opt.Theme.Apply()
	m := newAppModel(opt)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return nil, fmt.Errorf("run program: %w", err)
	}
	fm, ok := final.(appModel)
	if !ok {
		return nil, nil
	}
	return fm.Items(), nil
}
