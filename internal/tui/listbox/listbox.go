// Package listbox is a headless single-select menu primitive. It owns the
// open/closed state, focus, the active row, keyboard navigation and
// type-ahead, and reports what happened through messages. It renders
// nothing; callers read Open, Active and IsActive to draw their own rows.
package listbox

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// TypeaheadTimeout is how long a type-ahead query survives without input.
const TypeaheadTimeout = 500 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type CloseReason int

const (
	Picked CloseReason = iota
	Cancelled
	Blurred
	Disabled
)

func (r CloseReason) String() string {
	switch r {
	case Picked:
		return "picked"
	case Cancelled:
		return "cancelled"
	case Blurred:
		return "blurred"
	case Disabled:
		return "disabled"
	}
	return "unknown"
}

// OpenedMsg is sent when the menu opens.
type OpenedMsg struct {
	ID int
}

// ClosedMsg is sent when the menu closes.
type ClosedMsg struct {
	ID     int
	Reason CloseReason
}

// PickedMsg is sent exactly once per pick, alongside a ClosedMsg with
// reason Picked.
type PickedMsg struct {
	ID    int
	Index int
}

type typeaheadResetMsg struct {
	id  int
	seq int
}

type KeyMap struct {
	Toggle key.Binding
	Select key.Binding
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Close  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Home:   key.NewBinding(key.WithKeys("home", "pgup"), key.WithHelp("home", "first")),
		End:    key.NewBinding(key.WithKeys("end", "pgdown"), key.WithHelp("end", "last")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

type Model struct {
	KeyMap KeyMap

	id       int
	labels   []string
	selected int

	open     bool
	focused  bool
	disabled bool
	active   int

	query    string
	querySeq int
}

func New() Model {
	return Model{
		KeyMap:   DefaultKeyMap(),
		id:       nextID(),
		selected: -1,
	}
}

func (m Model) ID() int {
	return m.id
}

func (m Model) Open() bool {
	return m.open
}

func (m Model) Focused() bool {
	return m.focused
}

func (m Model) Disabled() bool {
	return m.disabled
}

// Active returns the index of the row under keyboard focus, or -1 when the
// menu is closed or empty.
func (m Model) Active() int {
	if !m.open || len(m.labels) == 0 {
		return -1
	}
	return m.active
}

func (m Model) IsActive(i int) bool {
	return m.Active() == i
}

func (m Model) Query() string {
	return m.query
}

// SetItems replaces the rows. selected is the index of the currently
// selected row, or -1.
func (m *Model) SetItems(labels []string, selected int) {
	m.labels = labels
	m.selected = selected
	m.clampActive()
}

// SetDisabled toggles interaction. Disabling closes an open menu.
func (m *Model) SetDisabled(disabled bool) tea.Cmd {
	m.disabled = disabled
	if disabled && m.open {
		return m.close(Disabled)
	}
	return nil
}

func (m *Model) Focus() {
	m.focused = true
}

// Blur drops focus, closing the menu the way an outside click would.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	if m.open {
		return m.close(Blurred)
	}
	return nil
}

// OpenMenu opens the menu unless it is disabled or already open.
func (m *Model) OpenMenu() tea.Cmd {
	if m.disabled || m.open {
		return nil
	}
	m.open = true
	m.active = 0
	if m.selected >= 0 && m.selected < len(m.labels) {
		m.active = m.selected
	}
	m.query = ""
	return emit(OpenedMsg{ID: m.id})
}

// CloseMenu closes the menu without picking anything.
func (m *Model) CloseMenu() tea.Cmd {
	if !m.open {
		return nil
	}
	return m.close(Cancelled)
}

func (m *Model) close(reason CloseReason) tea.Cmd {
	m.open = false
	m.query = ""
	return emit(ClosedMsg{ID: m.id, Reason: reason})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused || m.disabled {
			return m, nil
		}
		if m.open {
			return m.handleOpenKey(msg)
		}
		return m.handleClosedKey(msg)
	case typeaheadResetMsg:
		if msg.id == m.id && msg.seq == m.querySeq {
			m.query = ""
		}
	}
	return m, nil
}

func (m Model) handleClosedKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Toggle), key.Matches(msg, m.KeyMap.Down), key.Matches(msg, m.KeyMap.Up):
		cmd := m.OpenMenu()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleOpenKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// A space continues a type-ahead query instead of selecting.
	if m.query != "" && msg.Type == tea.KeySpace {
		return m.typeahead(" ")
	}

	switch {
	case key.Matches(msg, m.KeyMap.Close):
		cmd := m.close(Cancelled)
		return m, cmd
	case key.Matches(msg, m.KeyMap.Select):
		cmd := m.pick()
		return m, cmd
	case key.Matches(msg, m.KeyMap.Up):
		m.move(-1)
		return m, nil
	case key.Matches(msg, m.KeyMap.Down):
		m.move(1)
		return m, nil
	case key.Matches(msg, m.KeyMap.Home):
		m.active = 0
		return m, nil
	case key.Matches(msg, m.KeyMap.End):
		m.active = max(len(m.labels)-1, 0)
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		return m.typeahead(string(msg.Runes))
	}
	return m, nil
}

func (m *Model) pick() tea.Cmd {
	if len(m.labels) == 0 {
		return m.close(Cancelled)
	}
	index := m.active
	closed := m.close(Picked)
	return tea.Batch(emit(PickedMsg{ID: m.id, Index: index}), closed)
}

func (m *Model) move(delta int) {
	if len(m.labels) == 0 {
		return
	}
	m.active += delta
	m.clampActive()
}

func (m *Model) clampActive() {
	if m.active >= len(m.labels) {
		m.active = len(m.labels) - 1
	}
	if m.active < 0 {
		m.active = 0
	}
}

func (m Model) typeahead(s string) (Model, tea.Cmd) {
	m.query += s
	m.querySeq++

	if matches := fuzzy.Find(m.query, m.labels); len(matches) > 0 {
		m.active = matches[0].Index
	}

	id, seq := m.id, m.querySeq
	return m, tea.Tick(TypeaheadTimeout, func(time.Time) tea.Msg {
		return typeaheadResetMsg{id: id, seq: seq}
	})
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
