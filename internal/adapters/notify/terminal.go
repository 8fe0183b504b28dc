package notify

import (
	"fmt"
	"io"

	"github.com/SSebia/adsite-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

// Terminal writes workflow notifications as severity-styled lines. It fills
// the notification sink role the browser snackbar played.
type Terminal struct {
	out    io.Writer
	styles map[ports.Severity]lipgloss.Style
}

var _ ports.Notifier = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out: out,
		styles: map[ports.Severity]lipgloss.Style{
			ports.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			ports.SeveritySuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
			ports.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			ports.SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		},
	}
}

func (t *Terminal) Notify(message string, severity ports.Severity) {
	style, ok := t.styles[severity]
	if !ok {
		style = t.styles[ports.SeverityInfo]
	}
	_, _ = fmt.Fprintln(t.out, style.Render(message))
}
