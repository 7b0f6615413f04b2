package diagnostics

import (
	"io"

	"github.com/fatih/color"
)

// ColorSink writes trace lines to w, colored cyan. It never writes to the
// program's stdout: trace output only ever reaches the io.Writer the caller
// supplies, so it cannot interfere with the solver's stdout contract.
type ColorSink struct {
	w   *color.Color
	out io.Writer
}

// NewColorSink returns a Sink that writes cyan-colored trace lines to out.
func NewColorSink(out io.Writer) *ColorSink {
	return &ColorSink{w: color.New(color.FgCyan), out: out}
}

// Tracef implements Sink.
func (c *ColorSink) Tracef(format string, args ...interface{}) {
	c.w.Fprintf(c.out, format+"\n", args...)
}
