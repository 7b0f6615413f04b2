package augloop

import "github.com/augfold/nfold/diagnostics"

// Config holds the augmentation loop's configuration surface: a trace sink,
// passed straight through to the augmentation-IP solver on every call.
type Config struct {
	// Sink receives per-iteration trace lines. Default: diagnostics.Nop.
	Sink diagnostics.Sink

	// UseLambdaScaling forwards to augip.Config.UseLambdaScaling on every
	// augmentation-IP solve issued by this loop. Default: false.
	UseLambdaScaling bool
}

// DefaultConfig returns a Config with a no-op sink and lambda-scaling
// disabled.
func DefaultConfig() Config {
	return Config{Sink: diagnostics.Nop}
}
