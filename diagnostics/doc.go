// Package diagnostics provides an injectable trace sink for the
// augmentation loop and augmentation-IP solver, defaulting to a no-op.
//
// Rather than branching on a Verbose flag before an ad-hoc fmt.Printf at
// every call site, callers depend on a small Sink interface; tracing is
// enabled by swapping in a non-no-op implementation.
package diagnostics
