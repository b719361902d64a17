package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes user-facing results: confirmations and listings to out,
// failures and hints to err. Color is dropped for writers that are not terminals.
type Printer struct {
	out, err io.Writer
	theme    Theme
	outStyle Styles
	errStyle Styles
}

func NewPrinter(out, errOut io.Writer, theme Theme) *Printer {
	return &Printer{
		out:      out,
		err:      errOut,
		theme:    theme,
		outStyle: NewStyles(lipgloss.NewRenderer(out), theme),
		errStyle: NewStyles(lipgloss.NewRenderer(errOut), theme),
	}
}

func (p *Printer) Out() io.Writer { return p.out }

// Styles are bound to the out writer.
func (p *Printer) Styles() Styles { return p.outStyle }

func (p *Printer) Theme() Theme { return p.theme }

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.outStyle.Success.Render(p.theme.SymOK+" "+msg))
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.outStyle.Pending.Render(msg))
}

// Line prints s styled with st.
func (p *Printer) Line(st lipgloss.Style, s string) {
	fmt.Fprintln(p.out, st.Render(s))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.err, p.errStyle.Error.Render(p.theme.SymFail+" "+msg))
}

func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.err, p.errStyle.Muted.Render(msg))
}
