package bruteforce

import (
	"errors"

	"github.com/augfold/nfold/instance"
	"github.com/augfold/nfold/vecint"
)

// MaxEnumeration bounds the total number of points BestFeasible will walk
// (a pragmatic guard: the mixed-radix cartesian product over per-coordinate
// bound widths grows without limit, and this oracle is for small test
// instances only).
const MaxEnumeration = 1_000_000

// ErrTooLarge signals that the instance's bound box exceeds MaxEnumeration
// points.
var ErrTooLarge = errors.New("bruteforce: bound box exceeds MaxEnumeration points")

// BestFeasible enumerates every integer point x with l <= x <= u and
// returns the one maximizing c.x subject to A.x = b, by direct evaluation
// against x.Apply. ok is false if no point in the box satisfies A.x = b.
//
// Complexity: O(box-volume * n*(r+s)*t).
func BestFeasible(x *instance.NFold) (best vecint.Vector, objective int64, ok bool) {
	nt := x.N * x.T
	widths := make([]int64, nt)
	volume := int64(1)
	for j := 0; j < nt; j++ {
		widths[j] = x.U[j] - x.L[j] + 1
		if widths[j] <= 0 {
			return nil, 0, false
		}
		volume *= widths[j]
		if volume > MaxEnumeration {
			panic(ErrTooLarge)
		}
	}

	point := x.L.Clone()
	idx := make([]int64, nt)

	for {
		if x.Apply(point).Equal(x.Bvec) {
			obj := x.C.Dot(point)
			if !ok || obj > objective {
				best = point.Clone()
				objective = obj
				ok = true
			}
		}

		j := nt - 1
		for j >= 0 {
			idx[j]++
			point[j]++
			if idx[j] < widths[j] {
				break
			}
			idx[j] = 0
			point[j] = x.L[j]
			j--
		}
		if j < 0 {
			break
		}
	}

	return best, objective, ok
}
