package selectui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/madhermit/pick/internal/option"
)

const (
	checkGlyph   = "✓"
	chevronDown  = "▾"
	chevronUp    = "▴"
	ellipsis     = "…"
	minLabelCols = 6
)

func (m Model) View() string {
	var parts []string
	if caption := m.captionView(); caption != "" {
		parts = append(parts, caption)
	}
	parts = append(parts, m.triggerView())
	if m.fade.Visible() {
		if menu := m.menuView(); menu != "" {
			parts = append(parts, menu)
		}
	}

	return m.props.Class.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) captionView() string {
	if m.props.Label == "" {
		return ""
	}
	caption := m.styles.Caption().Render(m.props.Label)
	if m.props.Icon != "" {
		caption = m.styles.Icon().Render(m.props.Icon) + " " + caption
	}
	return caption
}

func (m Model) triggerView() string {
	width := m.labelWidth()
	chevron := chevronDown
	if m.list.Open() {
		chevron = chevronUp
	}
	line := fit(option.DisplayLabel(m.Selected()), width) + " " + chevron
	return m.styles.Trigger(m.props.Disabled, m.list.Focused()).Render(line)
}

func (m Model) menuView() string {
	rows := m.Rows()
	if len(rows) == 0 {
		return ""
	}

	styles := m.styles.WithOpacity(m.fade.Opacity())
	width := m.labelWidth()

	start, end := m.window(len(rows))
	lines := make([]string, 0, end-start)
	for _, r := range rows[start:end] {
		row := styles.Row(r.Active, r.Selected)
		mark := " "
		if r.Selected {
			mark = styles.Check(r.Active).Render(checkGlyph)
		}
		lines = append(lines, row.Render(" "+fit(option.DisplayLabel(r.Option), width)+" ")+mark+row.Render(" "))
	}

	return styles.Menu().Render(strings.Join(lines, "\n"))
}

// window returns the range of rows that fits in the menu while keeping the
// active row visible.
func (m Model) window(n int) (start, end int) {
	height := m.props.MaxRows
	if height <= 0 {
		height = DefaultMaxRows
	}
	if active := m.list.Active(); active >= height {
		start = active - height + 1
	}
	return start, min(start+height, n)
}

// labelWidth is the column count available to a label on the trigger and
// on each row. Both add four columns around it: padding and chevron on the
// trigger, padding and check mark on a row.
func (m Model) labelWidth() int {
	if m.props.Width > 0 {
		return max(m.props.Width-4, 1)
	}
	width := max(ansi.StringWidth(option.DisplayLabel(m.Selected())), minLabelCols)
	for _, o := range m.props.Options {
		width = max(width, ansi.StringWidth(option.DisplayLabel(o)))
	}
	return width
}

// fit truncates or pads s to exactly width columns.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, ellipsis)
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
