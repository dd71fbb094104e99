package selectui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/madhermit/pick/internal/tui/transition"
)

type Theme int

const (
	ThemeAuto Theme = iota
	ThemeLight
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	}
	return "auto"
}

func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ThemeAuto, nil
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeAuto, fmt.Errorf("unknown theme %q (want auto, light or dark)", s)
}

// Resolve maps ThemeAuto onto the background of the terminal r draws to.
func (t Theme) Resolve(r *lipgloss.Renderer) Theme {
	if t != ThemeAuto {
		return t
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if r.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// tokens is one cell of the variant table. Colours are hex so the exit fade
// can blend them.
type tokens struct {
	fg     string
	bg     string
	border string
	bold   bool
}

type triggerState struct {
	disabled bool
	focused  bool
}

type rowState struct {
	active   bool
	selected bool
}

type surface struct {
	page    string
	menu    string
	border  string
	caption string
	icon    string
	check   string
}

var surfaces = map[Theme]surface{
	ThemeLight: {page: "#ffffff", menu: "#ffffff", border: "#d1d5db", caption: "#374151", icon: "#6b7280", check: "#4f46e5"},
	ThemeDark:  {page: "#111827", menu: "#1f2937", border: "#4b5563", caption: "#d1d5db", icon: "#9ca3af", check: "#818cf8"},
}

var triggerTable = map[Theme]map[triggerState]tokens{
	ThemeLight: {
		{disabled: false, focused: false}: {fg: "#111827", bg: "#ffffff", border: "#d1d5db"},
		{disabled: false, focused: true}:  {fg: "#111827", bg: "#ffffff", border: "#4f46e5"},
		{disabled: true, focused: false}:  {fg: "#9ca3af", bg: "#f3f4f6", border: "#e5e7eb"},
		{disabled: true, focused: true}:   {fg: "#9ca3af", bg: "#f3f4f6", border: "#e5e7eb"},
	},
	ThemeDark: {
		{disabled: false, focused: false}: {fg: "#f3f4f6", bg: "#1f2937", border: "#4b5563"},
		{disabled: false, focused: true}:  {fg: "#f3f4f6", bg: "#1f2937", border: "#6366f1"},
		{disabled: true, focused: false}:  {fg: "#6b7280", bg: "#374151", border: "#374151"},
		{disabled: true, focused: true}:   {fg: "#6b7280", bg: "#374151", border: "#374151"},
	},
}

var rowTable = map[Theme]map[rowState]tokens{
	ThemeLight: {
		{active: false, selected: false}: {fg: "#111827", bg: "#ffffff"},
		{active: false, selected: true}:  {fg: "#111827", bg: "#ffffff", bold: true},
		{active: true, selected: false}:  {fg: "#ffffff", bg: "#4f46e5"},
		{active: true, selected: true}:   {fg: "#ffffff", bg: "#4f46e5", bold: true},
	},
	ThemeDark: {
		{active: false, selected: false}: {fg: "#e5e7eb", bg: "#1f2937"},
		{active: false, selected: true}:  {fg: "#e5e7eb", bg: "#1f2937", bold: true},
		{active: true, selected: false}:  {fg: "#ffffff", bg: "#6366f1"},
		{active: true, selected: true}:   {fg: "#ffffff", bg: "#6366f1", bold: true},
	},
}

// Styles turns the variant table into lipgloss styles for one theme. Opacity
// below 1 blends every colour toward the page background. Styles are bound
// to a renderer so the colour profile matches the stream the control is
// drawn on.
type Styles struct {
	r       *lipgloss.Renderer
	theme   Theme
	opacity float64
}

// NewStyles builds styles for theme on r. A nil r uses lipgloss's default
// renderer, which inspects stdout.
func NewStyles(theme Theme, r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{r: r, theme: theme.Resolve(r), opacity: 1}
}

func (s Styles) Renderer() *lipgloss.Renderer {
	return s.r
}

func (s Styles) Theme() Theme {
	return s.theme
}

func (s Styles) WithOpacity(opacity float64) Styles {
	s.opacity = opacity
	return s
}

func (s Styles) color(hex string) lipgloss.Color {
	return lipgloss.Color(transition.Fade(hex, surfaces[s.theme].page, s.opacity))
}

func (s Styles) Caption() lipgloss.Style {
	return s.r.NewStyle().Foreground(s.color(surfaces[s.theme].caption)).Bold(true)
}

func (s Styles) Icon() lipgloss.Style {
	return s.r.NewStyle().Foreground(s.color(surfaces[s.theme].icon))
}

func (s Styles) Trigger(disabled, focused bool) lipgloss.Style {
	t := triggerTable[s.theme][triggerState{disabled: disabled, focused: focused}]
	return s.r.NewStyle().
		Foreground(s.color(t.fg)).
		Background(s.color(t.bg)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.color(t.border)).
		Padding(0, 1)
}

func (s Styles) Menu() lipgloss.Style {
	sf := surfaces[s.theme]
	return s.r.NewStyle().
		Background(s.color(sf.menu)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.color(sf.border))
}

func (s Styles) Row(active, selected bool) lipgloss.Style {
	t := rowTable[s.theme][rowState{active: active, selected: selected}]
	return s.r.NewStyle().
		Foreground(s.color(t.fg)).
		Background(s.color(t.bg)).
		Bold(t.bold)
}

// Check colours the selected row's glyph. On an active row it follows the
// row's text.
func (s Styles) Check(active bool) lipgloss.Style {
	t := rowTable[s.theme][rowState{active: active, selected: true}]
	fg := surfaces[s.theme].check
	if active {
		fg = t.fg
	}
	return s.r.NewStyle().
		Foreground(s.color(fg)).
		Background(s.color(t.bg)).
		Bold(true)
}
