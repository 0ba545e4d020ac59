package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorHighlight = lipgloss.Color("81")
	colorSubtle    = lipgloss.Color("240")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
)

type styles struct {
	title    lipgloss.Style
	password lipgloss.Style
	success  lipgloss.Style
	subtle   lipgloss.Style
	err      lipgloss.Style
}

// newStyles binds the palette to out so colors are dropped when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:    r.NewStyle().Foreground(colorHighlight).Bold(true),
		password: r.NewStyle().Bold(true),
		success:  r.NewStyle().Foreground(colorSuccess),
		subtle:   r.NewStyle().Foreground(colorSubtle),
		err:      r.NewStyle().Foreground(colorError),
	}
}
