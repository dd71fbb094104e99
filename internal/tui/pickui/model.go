package pickui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/madhermit/pick/internal/tui/listbox"
	"github.com/madhermit/pick/internal/tui/selectui"
)

type Options struct {
	Props     selectui.Props
	StartOpen bool
	Logger    zerolog.Logger
}

// Model runs a single select control as a prompt. It owns the controlled
// value and quits once a pick has settled.
type Model struct {
	sel     selectui.Model
	value   string
	chosen  bool
	aborted bool
	initCmd tea.Cmd

	help   help.Model
	styles styles
	quit   key.Binding
	log    zerolog.Logger

	width  int
	height int
	ready  bool
}

func New(opts Options) Model {
	sel := selectui.New(opts.Props)
	sel.Focus()

	var initCmd tea.Cmd
	if opts.StartOpen {
		initCmd = sel.OpenMenu()
	}

	st := newStyles(opts.Props.Renderer)
	h := help.New()
	h.Styles.ShortKey = st.helpKey
	h.Styles.ShortDesc = st.helpDesc
	h.Styles.ShortSeparator = st.helpDesc

	return Model{
		sel:     sel,
		value:   opts.Props.Value,
		initCmd: initCmd,
		help:    h,
		styles:  st,
		quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		log:     opts.Logger,
	}
}

// Value returns the controlled value, which reflects the last pick.
func (m Model) Value() string {
	return m.value
}

func (m Model) Chosen() bool {
	return m.chosen
}

func (m Model) Aborted() bool {
	return m.aborted
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (!m.sel.Open() && key.Matches(msg, m.quit)) {
			m.aborted = true
			m.log.Debug().Msg("prompt aborted")
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil
	case selectui.ChangedMsg:
		if msg.ID != m.sel.ID() {
			return m, nil
		}
		m.value = msg.Value
		m.chosen = true
		m.sel.SetValue(msg.Value)
		m.log.Info().Str("value", msg.Value).Msg("option picked")
		return m.quitWhenSettled(nil)
	case listbox.OpenedMsg:
		m.log.Debug().Int("id", msg.ID).Msg("menu opened")
	case listbox.ClosedMsg:
		m.log.Debug().Int("id", msg.ID).Stringer("reason", msg.Reason).Msg("menu closed")
	}

	var cmd tea.Cmd
	m.sel, cmd = m.sel.Update(msg)
	return m.quitWhenSettled(cmd)
}

func (m Model) quitWhenSettled(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.chosen && m.sel.Settled() {
		return m, tea.Batch(cmd, tea.Quit)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.aborted || (m.chosen && m.sel.Settled()) {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	status := m.styles.statusBar.Render(m.help.View(m.keyMap()))
	return lipgloss.JoinVertical(lipgloss.Left, m.sel.View(), status)
}

type keyMap struct {
	bindings []key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return k.bindings
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}

func (m Model) keyMap() keyMap {
	keys := m.sel.KeyMap()
	if m.sel.Props().Disabled {
		return keyMap{bindings: []key.Binding{m.quit}}
	}
	if m.sel.Open() {
		return keyMap{bindings: []key.Binding{keys.Up, keys.Down, keys.Select, keys.Close}}
	}
	return keyMap{bindings: []key.Binding{keys.Toggle, m.quit}}
}
