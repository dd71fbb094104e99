package listbox

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newFocused(labels []string, selected int) Model {
	m := New()
	m.SetItems(labels, selected)
	m.Focus()
	return m
}

func TestOpenSetsActiveToSelected(t *testing.T) {
	m := newFocused([]string{"Alpha", "Beta", "Gamma"}, 1)

	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	if !m.Open() {
		t.Fatal("expected menu open after enter")
	}
	if m.Active() != 1 {
		t.Errorf("Active() = %d, want 1", m.Active())
	}
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d msgs, want 1", len(msgs))
	}
	if got, ok := msgs[0].(OpenedMsg); !ok || got.ID != m.ID() {
		t.Errorf("got %#v, want OpenedMsg for %d", msgs[0], m.ID())
	}
}

func TestClosedKeysOpen(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"enter", keyMsg(tea.KeyEnter)},
		{"space", keyMsg(tea.KeySpace)},
		{"down", keyMsg(tea.KeyDown)},
		{"up", keyMsg(tea.KeyUp)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFocused([]string{"a"}, -1)
			m, _ = m.Update(tt.msg)
			if !m.Open() {
				t.Errorf("expected %s to open the menu", tt.name)
			}
		})
	}
}

func TestDisabledNeverOpens(t *testing.T) {
	m := newFocused([]string{"Alpha", "Beta"}, 0)
	m.SetDisabled(true)

	for _, msg := range []tea.KeyMsg{keyMsg(tea.KeyEnter), keyMsg(tea.KeySpace), keyMsg(tea.KeyDown)} {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if m.Open() {
			t.Fatalf("disabled menu opened on %v", msg)
		}
		if cmd != nil {
			t.Errorf("disabled menu returned a command on %v", msg)
		}
	}
	if cmd := m.OpenMenu(); cmd != nil || m.Open() {
		t.Error("OpenMenu should be a no-op while disabled")
	}
}

func TestDisablingClosesOpenMenu(t *testing.T) {
	m := newFocused([]string{"Alpha"}, 0)
	m.OpenMenu()

	msgs := collect(m.SetDisabled(true))
	if m.Open() {
		t.Fatal("expected menu closed")
	}
	if len(msgs) != 1 || msgs[0] != (ClosedMsg{ID: m.ID(), Reason: Disabled}) {
		t.Errorf("got %#v, want ClosedMsg{Disabled}", msgs)
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New()
	m.SetItems([]string{"Alpha"}, 0)
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	if m.Open() {
		t.Error("unfocused menu opened")
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	m := newFocused([]string{"a", "b", "c"}, 0)
	m.OpenMenu()

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{keyMsg(tea.KeyUp), 0},
		{keyMsg(tea.KeyDown), 1},
		{keyMsg(tea.KeyDown), 2},
		{keyMsg(tea.KeyDown), 2},
		{keyMsg(tea.KeyHome), 0},
		{keyMsg(tea.KeyEnd), 2},
		{keyMsg(tea.KeyCtrlP), 1},
	}
	for i, s := range steps {
		m, _ = m.Update(s.msg)
		if m.Active() != s.want {
			t.Fatalf("step %d: Active() = %d, want %d", i, m.Active(), s.want)
		}
	}
}

func TestPickEmitsOncePerSelection(t *testing.T) {
	m := newFocused([]string{"Alpha", "Beta"}, 1)
	m.OpenMenu()
	m, _ = m.Update(keyMsg(tea.KeyUp))

	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	if m.Open() {
		t.Fatal("expected menu closed after pick")
	}

	var picks []PickedMsg
	var closes []ClosedMsg
	for _, msg := range collect(cmd) {
		switch msg := msg.(type) {
		case PickedMsg:
			picks = append(picks, msg)
		case ClosedMsg:
			closes = append(closes, msg)
		}
	}
	if len(picks) != 1 || picks[0].Index != 0 {
		t.Errorf("picks = %#v, want one pick of index 0", picks)
	}
	if len(closes) != 1 || closes[0].Reason != Picked {
		t.Errorf("closes = %#v, want one close with reason picked", closes)
	}
}

func TestPickOnEmptyListOnlyCloses(t *testing.T) {
	m := newFocused(nil, -1)
	m.OpenMenu()
	if m.Active() != -1 {
		t.Errorf("Active() = %d on empty list, want -1", m.Active())
	}

	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	if m.Open() {
		t.Fatal("expected menu closed")
	}
	for _, msg := range collect(cmd) {
		if _, ok := msg.(PickedMsg); ok {
			t.Error("empty list must not emit a pick")
		}
	}
}

func TestEscapeAndBlurClose(t *testing.T) {
	m := newFocused([]string{"a"}, 0)
	m.OpenMenu()
	m, cmd := m.Update(keyMsg(tea.KeyEsc))
	if m.Open() {
		t.Fatal("expected esc to close")
	}
	if msgs := collect(cmd); len(msgs) != 1 || msgs[0].(ClosedMsg).Reason != Cancelled {
		t.Errorf("got %#v, want ClosedMsg{Cancelled}", msgs)
	}

	m.OpenMenu()
	msgs := collect(m.Blur())
	if m.Open() || m.Focused() {
		t.Fatal("expected blur to close and unfocus")
	}
	if len(msgs) != 1 || msgs[0].(ClosedMsg).Reason != Blurred {
		t.Errorf("got %#v, want ClosedMsg{Blurred}", msgs)
	}
}

func TestTypeahead(t *testing.T) {
	m := newFocused([]string{"Alpha", "Beta", "Gamma"}, 0)
	m.OpenMenu()

	m, cmd := m.Update(runeMsg("g"))
	if cmd == nil {
		t.Fatal("expected a reset tick")
	}
	if m.Active() != 2 {
		t.Errorf("Active() = %d after 'g', want 2", m.Active())
	}
	if m.Query() != "g" {
		t.Errorf("Query() = %q, want g", m.Query())
	}

	// A stale reset is ignored.
	m, _ = m.Update(runeMsg("a"))
	m, _ = m.Update(typeaheadResetMsg{id: m.ID(), seq: m.querySeq - 1})
	if m.Query() != "ga" {
		t.Errorf("Query() = %q after stale reset, want ga", m.Query())
	}

	m, _ = m.Update(typeaheadResetMsg{id: m.ID(), seq: m.querySeq})
	if m.Query() != "" {
		t.Errorf("Query() = %q after reset, want empty", m.Query())
	}
}

func TestSpaceExtendsQuery(t *testing.T) {
	m := newFocused([]string{"New York", "New Delhi"}, 0)
	m.OpenMenu()

	m, _ = m.Update(runeMsg("new"))
	m, _ = m.Update(keyMsg(tea.KeySpace))
	if !m.Open() {
		t.Fatal("space during type-ahead must not select")
	}
	m, _ = m.Update(runeMsg("d"))
	if m.Active() != 1 {
		t.Errorf("Active() = %d, want 1", m.Active())
	}
}

func TestSetItemsClampsActive(t *testing.T) {
	m := newFocused([]string{"a", "b", "c"}, 2)
	m.OpenMenu()
	m.SetItems([]string{"a"}, 0)
	if m.Active() != 0 {
		t.Errorf("Active() = %d, want 0", m.Active())
	}
}

func TestIDsAreUnique(t *testing.T) {
	if New().ID() == New().ID() {
		t.Error("expected distinct IDs")
	}
}
