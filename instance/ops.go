package instance

import "github.com/augfold/nfold/vecint"

// Apply computes A*x block-wise:
//
//	(A*x)[0:r]              = sum_i As[i] * x[i*t : (i+1)*t]
//	(A*x)[r+i*s : r+(i+1)*s] = Bs[i] * x[i*t : (i+1)*t]
//
// Panics if len(y) != n*t (a programmer error).
//
// Complexity: O(n*(r+s)*t).
func (x *NFold) Apply(y Vector) Vector {
	if len(y) != x.N*x.T {
		panic(ErrLengthMismatch)
	}

	out := vecint.NewVector(x.R + x.N*x.S)
	shared := vecint.NewVector(max1(x.R))
	for i := 0; i < x.N; i++ {
		block := y.Segment(i*x.T, x.T)
		shared = shared.Add(x.As[i].MulVec(block))
		local := x.Bs[i].MulVec(block)
		out.SetSegment(x.R+i*x.S, local)
	}
	if x.R > 0 {
		out.SetSegment(0, shared)
	}

	return out
}

// Element returns the entry at (row, col) of the implicit dense constraint
// matrix A without ever materializing it, dispatching to As[block],
// Bs[block], or 0 according to the block structure.
//
// Complexity: O(1).
func (x *NFold) Element(row, col int) int64 {
	if row < 0 || row >= x.R+x.N*x.S || col < 0 || col >= x.N*x.T {
		panic(ErrLengthMismatch)
	}

	block := col / x.T
	colInBlock := col % x.T

	if row < x.R {
		return x.As[block].At(row, colInBlock)
	}

	localRow := row - x.R
	rowBlock := localRow / x.S
	rowInBlock := localRow % x.S
	if rowBlock != block {
		return 0
	}

	return x.Bs[block].At(rowInBlock, colInBlock)
}

// Delta returns Delta := max(|As[i](.,.)|, |Bs[i](.,.)|) over all blocks, the
// instance's largest coefficient magnitude.
//
// Complexity: O(n*(r+s)*t).
func (x *NFold) Delta() int64 {
	var d int64
	for i := 0; i < x.N; i++ {
		if a := x.As[i].AbsMax(); a > d {
			d = a
		}
		if b := x.Bs[i].AbsMax(); b > d {
			d = b
		}
	}

	return d
}

// Block returns the stacked (r+s) x t matrix [As[i]; Bs[i]] for block i, used
// by the augmentation-IP solver to advance the residual key one column at a
// time. The result is a fresh matrix; mutating it does not affect x.
//
// Complexity: O((r+s)*t).
func (x *NFold) Block(i int) *vecint.Matrix {
	m := vecint.NewMatrix(maxRS(x.R, x.S), x.T)
	for row := 0; row < x.R; row++ {
		for col := 0; col < x.T; col++ {
			m.Set(row, col, x.As[i].At(row, col))
		}
	}
	for row := 0; row < x.S; row++ {
		for col := 0; col < x.T; col++ {
			m.Set(x.R+row, col, x.Bs[i].At(row, col))
		}
	}

	return m
}

func maxRS(r, s int) int {
	if r+s == 0 {
		return 1
	}

	return r + s
}
