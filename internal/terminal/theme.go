package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles for a single output stream. Styles are bound to a
// renderer for that stream, so colour is dropped when it is not a terminal.
type Theme struct {
	Banner  lipgloss.Style
	Warning lipgloss.Style
}

// NewTheme creates a Theme rendering for w.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)

	return Theme{
		Banner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
