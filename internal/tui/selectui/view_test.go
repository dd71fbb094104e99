package selectui

import (
	"io"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/madhermit/pick/internal/option"
)

var boldSeq = regexp.MustCompile(`\x1b\[([0-9;]*;)?1(;[0-9;]*)?m`)

func trueColorRenderer(dark bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(dark)
	return r
}

// rawLine returns the unstripped view line whose text contains label.
func rawLine(t *testing.T, v, label string) string {
	t.Helper()
	var found string
	for _, line := range strings.Split(v, "\n") {
		if strings.Contains(line, label) {
			found = line
		}
	}
	if found == "" {
		t.Fatalf("no line containing %q", label)
	}
	return found
}

func TestRowsCarryVariantsWhenRendered(t *testing.T) {
	for _, theme := range []Theme{ThemeLight, ThemeDark} {
		t.Run(theme.String(), func(t *testing.T) {
			m := New(Props{Value: "b", Options: alphaBeta, Theme: theme, Renderer: trueColorRenderer(true)})
			m.Focus()
			m = press(m, tea.KeyEnter)

			inactive := rawLine(t, m.View(), "Alpha")
			selectedActive := rawLine(t, m.View(), "Beta")

			m = press(m, tea.KeyUp)
			active := rawLine(t, m.View(), "Alpha")
			selectedInactive := rawLine(t, m.View(), "Beta")

			if active == inactive {
				t.Errorf("active and inactive rows render identically: %q", active)
			}
			if selectedActive == selectedInactive {
				t.Errorf("active and inactive selected rows render identically: %q", selectedActive)
			}
			if !boldSeq.MatchString(selectedInactive) {
				t.Errorf("selected row should be bold: %q", selectedInactive)
			}
			if boldSeq.MatchString(inactive) || boldSeq.MatchString(active) {
				t.Errorf("unselected rows should not be bold: %q / %q", inactive, active)
			}
		})
	}
}

func TestDisabledTriggerRendersMuted(t *testing.T) {
	r := trueColorRenderer(true)
	enabled := New(Props{Value: "a", Options: alphaBeta, Theme: ThemeDark, Renderer: r})
	disabled := New(Props{Value: "a", Options: alphaBeta, Theme: ThemeDark, Renderer: r, Disabled: true})

	if rawLine(t, enabled.View(), "Alpha") == rawLine(t, disabled.View(), "Alpha") {
		t.Error("disabled trigger renders identically to an enabled one")
	}
}

func TestFadeChangesRenderedRows(t *testing.T) {
	m := New(Props{Value: "a", Options: alphaBeta, Theme: ThemeLight, Renderer: trueColorRenderer(false)})
	m.Focus()
	m = press(m, tea.KeyEnter)
	shown := rawLine(t, m.View(), "Beta")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(m.fade.Frame())
	if faded := rawLine(t, m.View(), "Beta"); faded == shown {
		t.Error("rows should change colour during the exit fade")
	}
}

func TestAutoThemeFollowsRenderer(t *testing.T) {
	if got := ThemeAuto.Resolve(trueColorRenderer(true)); got != ThemeDark {
		t.Errorf("Resolve(dark renderer) = %v, want dark", got)
	}
	if got := ThemeAuto.Resolve(trueColorRenderer(false)); got != ThemeLight {
		t.Errorf("Resolve(light renderer) = %v, want light", got)
	}
	m := New(Props{Options: alphaBeta, Renderer: trueColorRenderer(false)})
	if m.Styles().Theme() != ThemeLight {
		t.Errorf("auto theme = %v, want light", m.Styles().Theme())
	}
}

func TestTriggerAndMenuShareWidth(t *testing.T) {
	options := []option.Option{{Value: "a", Label: "Alpha"}, {Value: "g", Label: "Gamma Ray Burst"}}
	for _, width := range []int{0, 12, 30} {
		m := New(Props{Value: "a", Options: options, Width: width, Theme: ThemeLight})
		m.Focus()
		m = press(m, tea.KeyEnter)

		trigger, menu := lipgloss.Width(m.triggerView()), lipgloss.Width(m.menuView())
		if trigger != menu {
			t.Errorf("Width %d: trigger is %d columns, menu is %d", width, trigger, menu)
		}
		if width > 0 && trigger != width+2 {
			t.Errorf("Width %d: trigger is %d columns, want %d inside the border", width, trigger, width+2)
		}
	}
}
