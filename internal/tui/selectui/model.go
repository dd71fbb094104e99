// Package selectui is a controlled select control. The caller owns the
// value and the option list; the control draws a trigger showing the
// selected option and, while open, a menu of rows. Picking a row reports
// the option's value through OnChange and a ChangedMsg and never updates
// the control's own value.
package selectui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/madhermit/pick/internal/option"
	"github.com/madhermit/pick/internal/tui/listbox"
	"github.com/madhermit/pick/internal/tui/transition"
)

// Props are supplied by the caller on every render.
type Props struct {
	Value    string
	Options  []option.Option
	Label    string
	Icon     string
	Disabled bool
	Theme    Theme
	// Renderer draws every style; nil uses lipgloss's default renderer.
	// Hosts drawing somewhere other than stdout must supply one.
	Renderer *lipgloss.Renderer
	// Class is appended to the root container's style.
	Class lipgloss.Style
	// Width fixes the columns inside the trigger and menu borders; 0 fits
	// the content.
	Width int
	// MaxRows caps how many rows the menu shows at once; 0 uses
	// DefaultMaxRows.
	MaxRows  int
	OnChange func(value string)
}

const DefaultMaxRows = 8

// ChangedMsg is sent once per pick with the chosen option's value.
type ChangedMsg struct {
	ID    int
	Value string
}

// Row is one menu row as the view draws it.
type Row struct {
	Option   option.Option
	Active   bool
	Selected bool
}

type Model struct {
	props  Props
	styles Styles

	list listbox.Model
	fade transition.Model
}

func New(props Props) Model {
	m := Model{
		props:  Props{Theme: props.Theme, Renderer: props.Renderer},
		styles: NewStyles(props.Theme, props.Renderer),
		list:   listbox.New(),
		fade:   transition.New(),
	}
	m.SetProps(props)
	return m
}

func (m Model) ID() int {
	return m.list.ID()
}

func (m Model) Props() Props {
	return m.props
}

func (m Model) Value() string {
	return m.props.Value
}

// Selected returns the option the trigger shows.
func (m Model) Selected() option.Option {
	selected, _ := option.Resolve(m.props.Options, m.props.Value)
	return selected
}

// Matched reports whether Value names one of the options.
func (m Model) Matched() bool {
	_, matched := option.Resolve(m.props.Options, m.props.Value)
	return matched
}

func (m Model) Open() bool {
	return m.list.Open()
}

// OverlayVisible reports whether the menu is drawn, including during the
// exit fade.
func (m Model) OverlayVisible() bool {
	return m.fade.Visible()
}

// Settled reports that the menu is closed and its fade has finished.
func (m Model) Settled() bool {
	return !m.list.Open() && !m.fade.Visible()
}

func (m Model) Focused() bool {
	return m.list.Focused()
}

func (m Model) KeyMap() listbox.KeyMap {
	return m.list.KeyMap
}

func (m Model) Styles() Styles {
	return m.styles
}

// SetProps replaces every prop. Disabling closes an open menu.
func (m *Model) SetProps(props Props) tea.Cmd {
	if m.props.Theme != props.Theme || m.props.Renderer != props.Renderer {
		m.styles = NewStyles(props.Theme, props.Renderer)
	}
	m.props = props
	m.list.SetItems(option.Labels(props.Options), option.Index(props.Options, props.Value))
	return tea.Batch(m.list.SetDisabled(props.Disabled), m.syncOverlay())
}

func (m *Model) SetValue(value string) {
	m.props.Value = value
	m.list.SetItems(option.Labels(m.props.Options), option.Index(m.props.Options, value))
}

func (m *Model) SetOptions(options []option.Option) {
	m.props.Options = options
	m.list.SetItems(option.Labels(options), option.Index(options, m.props.Value))
}

func (m *Model) Focus() {
	m.list.Focus()
}

func (m *Model) Blur() tea.Cmd {
	return tea.Batch(m.list.Blur(), m.syncOverlay())
}

// OpenMenu opens the menu programmatically. It does nothing when disabled.
func (m *Model) OpenMenu() tea.Cmd {
	return tea.Batch(m.list.OpenMenu(), m.syncOverlay())
}

func (m *Model) CloseMenu() tea.Cmd {
	return tea.Batch(m.list.CloseMenu(), m.syncOverlay())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case listbox.PickedMsg:
		if msg.ID != m.list.ID() {
			return m, nil
		}
		return m, m.change(msg.Index)
	case transition.FrameMsg, transition.DoneMsg:
		m.fade, cmd = m.fade.Update(msg)
		return m, cmd
	default:
		m.list, cmd = m.list.Update(msg)
	}
	overlay := m.syncOverlay()
	return m, tea.Batch(cmd, overlay)
}

func (m Model) change(index int) tea.Cmd {
	if index < 0 || index >= len(m.props.Options) {
		return nil
	}
	value := m.props.Options[index].Value
	if m.props.OnChange != nil {
		m.props.OnChange(value)
	}
	id := m.list.ID()
	return func() tea.Msg {
		return ChangedMsg{ID: id, Value: value}
	}
}

func (m *Model) syncOverlay() tea.Cmd {
	switch {
	case m.list.Open() && (!m.fade.Visible() || m.fade.Leaving()):
		m.fade.Show()
	case !m.list.Open() && m.fade.Visible() && !m.fade.Leaving():
		return m.fade.Hide()
	}
	return nil
}

// Rows derives the menu rows in option order. A row is selected when its
// value equals the controlled value.
func (m Model) Rows() []Row {
	rows := make([]Row, len(m.props.Options))
	for i, o := range m.props.Options {
		rows[i] = Row{
			Option:   o,
			Active:   m.list.IsActive(i),
			Selected: o.Value == m.props.Value,
		}
	}
	return rows
}
