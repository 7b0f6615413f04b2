package augip

import (
	"math/bits"

	"github.com/augfold/nfold/vecint"
)

// computeLA computes the elementary-vector bound L_A = s*(2*r*Delta+1)^r
// with overflow-checked arithmetic. ok is false when the bound would
// overflow int64 — in practice L_A grows astronomically for even moderate
// instances, so overflow simply disables the optional path rather than
// reporting an error.
func computeLA(r, s int, delta int64) (la int64, ok bool) {
	if delta <= 0 {
		delta = 1
	}
	const ceiling = int64(1) << 62

	base := 2*int64(r)*delta + 1
	acc := int64(1)
	for i := 0; i < r; i++ {
		if base != 0 && acc > ceiling/base {
			return 0, false
		}
		acc *= base
	}
	if acc > ceiling/int64(s) {
		return 0, false
	}

	return acc * int64(s), true
}

func ceilDiv(a, b int64) int64 {
	if a >= 0 {
		return (a + b - 1) / b
	}

	return -((-a) / b)
}

func floorDiv(a, b int64) int64 {
	if a >= 0 {
		return a / b
	}

	return -((-a + b - 1) / b)
}

// SolveLambdaScaling is the optional λ-scaling path, enabled by
// Config.UseLambdaScaling. Because A.y = 0 is homogeneous, any y' the
// layered search finds inside a λ-scaled box yields a valid A.(λy') = 0
// augmenting vector at the original scale, so narrowing the search to
// multiples of λ never manufactures an infeasible candidate. Each power of
// two λ from 2^(bits.Len64(γ)+1), γ:=max(u-l), down to 2 is tried before
// falling back to the unscaled search at λ=1; the first λ that finds a
// nonzero augmenting vector wins.
//
// Whether this path ever out-performs plain λ=1 search in practice is
// unresolved — this exists to make the mechanism available, not to assert
// that it helps. Delegates straight to Solve when Config.UseLambdaScaling
// is unset or L_A overflows int64.
func (sv *Solver) SolveLambdaScaling(lower, upper vecint.Vector) (vecint.Vector, bool) {
	if !sv.config.UseLambdaScaling {
		return sv.Solve(lower, upper)
	}

	la, ok := computeLA(sv.x.R, sv.x.S, sv.x.Delta())
	if !ok {
		return sv.Solve(lower, upper)
	}

	var gamma int64
	for i := range lower {
		if d := upper[i] - lower[i]; d > gamma {
			gamma = d
		}
	}

	lambda := int64(1)
	if gamma > 0 {
		lambda = int64(1) << uint(bits.Len64(uint64(gamma))+1)
	}

	for lambda > 1 {
		scaledLower := make(vecint.Vector, len(lower))
		scaledUpper := make(vecint.Vector, len(upper))
		for i := range lower {
			lp := ceilDiv(lower[i], lambda)
			up := floorDiv(upper[i], lambda)
			if lp < -la {
				lp = -la
			}
			if up > la {
				up = la
			}
			scaledLower[i] = lp
			scaledUpper[i] = up
		}

		if y, found := sv.Solve(scaledLower, scaledUpper); found && !y.IsZero() {
			return y.Scale(lambda), true
		}

		lambda /= 2
	}

	return sv.Solve(lower, upper)
}
