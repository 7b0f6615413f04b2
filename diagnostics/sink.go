package diagnostics

import "fmt"

// Sink receives trace messages emitted during the augmentation loop and the
// augmentation-IP solver. Implementations must be safe to call from a single
// goroutine only; the solver itself is single-threaded and never calls a
// Sink concurrently.
type Sink interface {
	// Tracef formats and emits a trace message. Implementations that discard
	// output (Nop) must not evaluate args beyond what fmt.Sprintf needs.
	Tracef(format string, args ...interface{})
}

// nopSink discards every message. It is the default Sink used whenever a
// caller does not explicitly enable tracing.
type nopSink struct{}

func (nopSink) Tracef(string, ...interface{}) {}

// Nop is the shared no-op Sink.
var Nop Sink = nopSink{}

// PlainSink writes uncolored trace lines via a formatting function, used by
// tests and by non-terminal output.
type PlainSink struct {
	Write func(string)
}

// Tracef implements Sink.
func (p PlainSink) Tracef(format string, args ...interface{}) {
	if p.Write == nil {
		return
	}
	p.Write(fmt.Sprintf(format, args...))
}
