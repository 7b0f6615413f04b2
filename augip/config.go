package augip

import "github.com/augfold/nfold/diagnostics"

// Config holds the augmentation-IP solver's configuration surface. There is
// no config file or environment variable: every field is set by the caller
// through DefaultConfig's result.
type Config struct {
	// Sink receives layer-by-layer trace lines. Default: diagnostics.Nop.
	Sink diagnostics.Sink

	// UseLambdaScaling enables the optional L_A-bounding heuristic
	// (lambda.go). Default: false — plain search at lambda = 1, L_A
	// ignored.
	UseLambdaScaling bool
}

// DefaultConfig returns the solver's default configuration: a no-op sink and
// lambda-scaling disabled.
func DefaultConfig() Config {
	return Config{
		Sink:             diagnostics.Nop,
		UseLambdaScaling: false,
	}
}
