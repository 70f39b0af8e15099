package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleSink is the textual fallback. The daemon runs unattended and cannot
// assume a display server, so this sink never fails.
type ConsoleSink struct {
	out io.Writer

	box    lipgloss.Style
	header lipgloss.Style
	footer lipgloss.Style
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{
		out:    out,
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(60),
		header: lipgloss.NewStyle().Bold(true),
		footer: lipgloss.NewStyle().Faint(true),
	}
}

func (s *ConsoleSink) Display(req DisplayRequest) error {
	body := s.header.Render(req.Icon()+" "+req.Title) + "\n\n" + req.Text

	switch {
	case req.AutoDismiss > 0:
		body += "\n\n" + s.footer.Render(fmt.Sprintf("auto-dismiss in %ds", req.AutoDismiss))
	default:
		body += "\n\n" + s.footer.Render("persists until dismissed")
	}

	fmt.Fprintln(s.out, s.box.Render(body))
	return nil
}
