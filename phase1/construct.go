package phase1

import (
	"github.com/augfold/nfold/instance"
	"github.com/augfold/nfold/vecint"
)

// Build constructs the auxiliary instance X' of sizes (n, r, s, t+r+s) and a
// guaranteed feasible x0 for X'. X' has a zero-cost optimum iff x is
// feasible; Project recovers a feasible point of x from such an optimum.
//
// Panics if x.Validate() would report an error (a programmer error: callers
// must only pass well-formed instances).
//
// Complexity: O(n*(r+s)*(t+r+s)).
func Build(x *instance.NFold) (aux *instance.NFold, x0 vecint.Vector) {
	if err := x.Validate(); err != nil {
		panic(err)
	}

	n, r, s, t := x.N, x.R, x.S, x.T
	t2 := t + r + s

	bPrime := x.Bvec.Sub(x.Apply(x.L))

	aux = instance.New(n, r, s, t2)
	aux.Bvec = bPrime.Clone()

	rawL := vecint.NewVector(n * t2)
	rawU := vecint.NewVector(n * t2)
	x0 = vecint.NewVector(n * t2)

	for i := 0; i < n; i++ {
		base := i * t2

		for row := 0; row < r; row++ {
			for col := 0; col < t; col++ {
				aux.As[i].Set(row, col, x.As[i].At(row, col))
			}
			if i == 0 {
				aux.As[i].Set(row, t+row, 1)
			}
		}
		for row := 0; row < s; row++ {
			for col := 0; col < t; col++ {
				aux.Bs[i].Set(row, col, x.Bs[i].At(row, col))
			}
			aux.Bs[i].Set(row, t+r+row, 1)
		}

		uMinusL := x.U.Sub(x.L)
		copy(rawL[base:base+t], uMinusL[i*t:(i+1)*t])
		copy(rawU[base:base+t], uMinusL[i*t:(i+1)*t])

		if i == 0 {
			for k := 0; k < r; k++ {
				rawL[base+t+k] = bPrime[k]
				rawU[base+t+k] = bPrime[k]
			}
		}

		for k := 0; k < s; k++ {
			v := bPrime[r+i*s+k]
			rawL[base+t+r+k] = v
			rawU[base+t+r+k] = v
		}
	}

	for j := 0; j < n*t2; j++ {
		if rawL[j] < 0 {
			aux.L[j] = rawL[j]
		}
		if rawU[j] > 0 {
			aux.U[j] = rawU[j]
		}
	}

	for i := 0; i < n; i++ {
		base := i * t2
		if i == 0 {
			for k := 0; k < r; k++ {
				aux.C[base+t+k] = -sgn(bPrime[k])
			}
		}
		for k := 0; k < s; k++ {
			aux.C[base+t+r+k] = -sgn(bPrime[r+i*s+k])
		}
	}

	for i := 0; i < n; i++ {
		base := i * t2
		if i == 0 {
			for k := 0; k < r; k++ {
				x0[base+t+k] = bPrime[k]
			}
		}
		for k := 0; k < s; k++ {
			x0[base+t+r+k] = bPrime[r+i*s+k]
		}
	}

	return aux, x0
}

func sgn(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
