package pickui

import "github.com/charmbracelet/lipgloss"

var (
	subtle = lipgloss.Color("241")
	accent = lipgloss.Color("39")
)

type styles struct {
	statusBar lipgloss.Style
	helpKey   lipgloss.Style
	helpDesc  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return styles{
		statusBar: r.NewStyle().PaddingTop(1),
		helpKey:   r.NewStyle().Foreground(accent),
		helpDesc:  r.NewStyle().Foreground(subtle),
	}
}
