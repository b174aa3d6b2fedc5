package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/toolbelt/internal/ui/style"
)

// printer writes command summaries, colored when the writer is a terminal.
type printer struct {
	w io.Writer
	r *lipgloss.Renderer
}

func newPrinter(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	return &printer{w: w, r: lipgloss.NewRenderer(w)}
}

func (p *printer) styled(s lipgloss.Style, glyph, msg string) {
	_, _ = fmt.Fprintln(p.w, p.r.NewStyle().Inherit(s).Render(glyph)+" "+msg)
}

func (p *printer) success(msg string) { p.styled(style.Success, style.Check, msg) }

func (p *printer) failure(msg string) { p.styled(style.Failure, style.Cross, msg) }

func (p *printer) warning(msg string) { p.styled(style.Notice, style.Warning, msg) }

func (p *printer) line(msg string) {
	_, _ = fmt.Fprintln(p.w, msg)
}

func (p *printer) faint(msg string) {
	_, _ = fmt.Fprintln(p.w, p.r.NewStyle().Inherit(style.Faint).Render(msg))
}
