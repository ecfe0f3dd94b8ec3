// Package output renders command results to the terminal: styled
// status lines, syntax error context blocks, diffs and summary tables.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Renderer writes command output with optional color.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	styles *Styles
}

// NewRenderer builds a renderer. Color is enabled only when noColor is
// unset, stdout is a terminal and the terminal supports color.
func NewRenderer(out, errOut io.Writer, noColor bool) *Renderer {
	color := !noColor && colorCapable(out)
	return &Renderer{out: out, errOut: errOut, styles: newStyles(color)}
}

func colorCapable(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	o := termenv.NewOutput(f)
	return o.ColorProfile() != termenv.Ascii
}

// Styles exposes the active style set.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the primary output stream.
func (r *Renderer) Writer() io.Writer { return r.out }

// Println writes a line to the primary stream.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the primary stream.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Errorln writes a line to the error stream.
func (r *Renderer) Errorln(a ...any) {
	_, _ = fmt.Fprintln(r.errOut, a...)
}
