package instance

import "github.com/augfold/nfold/vecint"

// NFold holds one n-fold integer program: n variable blocks of width t,
// r shared rows constrained jointly by A_0..A_{n-1}, and s local rows per
// block constrained independently by B_0..B_{n-1}.
//
// Layout:
//   - L, U, C have length N*T: per-variable lower bound, upper bound, cost.
//   - Bvec has length R + N*S: shared rhs (first R entries) followed by N
//     groups of S per-block rhs entries.
//   - As[i] is an R x T matrix, Bs[i] is an S x T matrix, for i in [0, N).
type NFold struct {
	N, R, S, T int

	L, U, C Vector
	Bvec    Vector

	As []*vecint.Matrix
	Bs []*vecint.Matrix
}

// Vector is an alias kept local to this package for readability; it is the
// same type as vecint.Vector.
type Vector = vecint.Vector

// New allocates an NFold of the given sizes with zeroed bounds, cost, rhs,
// and block matrices. Panics with ErrBadSizes if n, s, t are not positive or
// r is negative.
//
// Complexity: O(n*(r+s)*t) for allocation.
func New(n, r, s, t int) *NFold {
	if n <= 0 || s <= 0 || t <= 0 || r < 0 {
		panic(ErrBadSizes)
	}

	x := &NFold{
		N: n, R: r, S: s, T: t,
		L:    vecint.NewVector(n * t),
		U:    vecint.NewVector(n * t),
		C:    vecint.NewVector(n * t),
		Bvec: vecint.NewVector(r + n*s),
		As:   make([]*vecint.Matrix, n),
		Bs:   make([]*vecint.Matrix, n),
	}
	for i := 0; i < n; i++ {
		x.As[i] = vecint.NewMatrix(max1(r), t)
		x.Bs[i] = vecint.NewMatrix(s, t)
	}

	return x
}

// max1 returns 1 if r == 0 (vecint.Matrix requires positive dimensions even
// when the logical row count is zero) and r otherwise. A zero-row A block
// is legal (r can be 0); RowsA reports the true count.
func max1(r int) int {
	if r == 0 {
		return 1
	}

	return r
}

// RowsA reports the true (possibly zero) row count of every A_i block.
func (x *NFold) RowsA() int { return x.R }

// Validate checks the instance's invariants: vector lengths, uniform block
// shapes, and l <= u componentwise. It is the one entry point that reports
// malformed input as an error rather than a panic, since it is meant to be
// called once after parsing untrusted input.
func (x *NFold) Validate() error {
	nt := x.N * x.T
	if len(x.L) != nt || len(x.U) != nt || len(x.C) != nt {
		return ErrLengthMismatch
	}
	if len(x.Bvec) != x.R+x.N*x.S {
		return ErrLengthMismatch
	}
	if len(x.As) != x.N || len(x.Bs) != x.N {
		return ErrLengthMismatch
	}
	for i := 0; i < x.N; i++ {
		if x.As[i].Cols() != x.T || x.As[i].Rows() != max1(x.R) {
			return ErrLengthMismatch
		}
		if x.Bs[i].Rows() != x.S || x.Bs[i].Cols() != x.T {
			return ErrLengthMismatch
		}
	}
	for j := 0; j < nt; j++ {
		if x.L[j] > x.U[j] {
			return ErrBoundsCrossed
		}
	}

	return nil
}
