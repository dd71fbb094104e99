// Package transition animates an overlay's exit. Showing is immediate;
// hiding fades opacity from 1 to 0 over Duration and then unmounts.
package transition

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	Duration = 100 * time.Millisecond
	Frames   = 5
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances a running fade.
type FrameMsg struct {
	ID  int
	seq int
}

// DoneMsg is sent when a fade finishes and the overlay has unmounted.
type DoneMsg struct {
	ID int
}

type Model struct {
	id      int
	visible bool
	leaving bool
	frame   int
	seq     int
}

func New() Model {
	return Model{id: nextID()}
}

func (m Model) ID() int {
	return m.id
}

// Visible reports whether the overlay is mounted, including mid-fade.
func (m Model) Visible() bool {
	return m.visible
}

func (m Model) Leaving() bool {
	return m.leaving
}

// Opacity is 1 while shown and falls to 0 during the exit fade.
func (m Model) Opacity() float64 {
	if !m.visible {
		return 0
	}
	if !m.leaving {
		return 1
	}
	return 1 - float64(m.frame)/Frames
}

// Show mounts the overlay at full opacity, cancelling any running fade.
func (m *Model) Show() {
	m.visible = true
	m.leaving = false
	m.frame = 0
	m.seq++
}

// Hide starts the exit fade. It is a no-op when already hidden or leaving.
func (m *Model) Hide() tea.Cmd {
	if !m.visible || m.leaving {
		return nil
	}
	m.leaving = true
	m.frame = 0
	m.seq++
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != m.id || frame.seq != m.seq || !m.leaving {
		return m, nil
	}

	m.frame++
	if m.frame >= Frames {
		m.visible = false
		m.leaving = false
		m.frame = 0
		id := m.id
		return m, func() tea.Msg { return DoneMsg{ID: id} }
	}
	return m, m.tick()
}

// Frame returns the message that advances the current fade by one step,
// without waiting for the tick.
func (m Model) Frame() FrameMsg {
	return FrameMsg{ID: m.id, seq: m.seq}
}

func (m Model) tick() tea.Cmd {
	frame := m.Frame()
	return tea.Tick(Duration/Frames, func(time.Time) tea.Msg {
		return frame
	})
}

// Fade blends the hex colour fg toward bg. At opacity 1 fg is returned
// unchanged; at 0 the result is bg. Unparseable colours are returned as-is.
func Fade(fg, bg string, opacity float64) string {
	if opacity >= 1 {
		return fg
	}
	from, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	to, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	if opacity < 0 {
		opacity = 0
	}
	return from.BlendRgb(to, 1-opacity).Clamped().Hex()
}
