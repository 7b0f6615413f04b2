package augloop

import (
	"github.com/augfold/nfold/augip"
	"github.com/augfold/nfold/diagnostics"
	"github.com/augfold/nfold/instance"
	"github.com/augfold/nfold/phase1"
	"github.com/augfold/nfold/vecint"
)

// Solve decides feasibility of x and, if feasible, returns an optimal
// integer point and its objective value. ok is false iff x admits no
// feasible point at all.
//
// Complexity: dominated by the augmentation-IP solver, invoked once per
// augmentation step across both the Phase-I and Phase-II loops.
func Solve(x *instance.NFold, cfg Config) (z vecint.Vector, cost int64, ok bool) {
	aux, x0 := phase1.Build(x)

	zeroCost := int64(0)
	y, w := SolveFrom(aux, x0, &zeroCost, cfg)
	if w != 0 {
		return nil, 0, false
	}

	feasible := phase1.Project(x, y)
	if !x.Apply(feasible).Equal(x.Bvec) {
		panic("augloop: Phase-I projection violates A.x = b")
	}

	z, cost = SolveFrom(x, feasible, nil, cfg)

	return z, cost, true
}

// SolveFrom improves the known feasible point z of x until no strict
// improvement exists, or until the incumbent's objective reaches
// *knownBest (if knownBest is non-nil), and returns the resulting point and
// its objective value.
//
// Panics if the augmentation-IP solver ever returns a y with A.y != 0: that
// would be a solver bug, not a reportable error.
//
// Complexity: O(number of strict-improvement iterations) augmentation-IP
// solves; termination is guaranteed because each iteration strictly
// increases an integer objective over a bounded box.
func SolveFrom(x *instance.NFold, z vecint.Vector, knownBest *int64, cfg Config) (vecint.Vector, int64) {
	if cfg.Sink == nil {
		cfg.Sink = diagnostics.Nop
	}

	sv := augip.NewSolver(x, augip.Config{Sink: cfg.Sink, UseLambdaScaling: cfg.UseLambdaScaling})
	z = z.Clone()

	for {
		lower := x.L.Sub(z)
		upper := x.U.Sub(z)

		y, found := sv.SolveLambdaScaling(lower, upper)
		if !found {
			break
		}
		if !x.Apply(y).IsZero() {
			panic("augloop: augmentation-IP solver returned y with A.y != 0")
		}

		zPrime := z.Add(y)
		wPrime := x.C.Dot(zPrime)
		if wPrime <= x.C.Dot(z) {
			break
		}

		z = zPrime
		cfg.Sink.Tracef("augloop: improved objective to %d", wPrime)
		if knownBest != nil && wPrime == *knownBest {
			break
		}
	}

	return z, x.C.Dot(z)
}
