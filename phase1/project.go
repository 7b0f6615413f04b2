package phase1

import (
	"github.com/augfold/nfold/instance"
	"github.com/augfold/nfold/vecint"
)

// Project recovers a feasible point of the original instance x from a
// zero-cost optimum y of the auxiliary instance Build(x) produced. It is the
// caller's responsibility to have already confirmed y is zero-cost (phase1
// does not re-check feasibility).
//
// Panics if len(y) != n*(t+r+s), a programmer error.
//
// Complexity: O(n*t).
func Project(x *instance.NFold, y vecint.Vector) vecint.Vector {
	t2 := x.T + x.R + x.S
	if len(y) != x.N*t2 {
		panic(instance.ErrLengthMismatch)
	}

	out := vecint.NewVector(x.N * x.T)
	for i := 0; i < x.N; i++ {
		out.SetSegment(i*x.T, y.Segment(i*t2, x.T))
	}

	return out.Add(x.L)
}
