package phase1_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augfold/nfold/instance"
	"github.com/augfold/nfold/phase1"
	"github.com/augfold/nfold/vecint"
)

// buildE3 mirrors spec scenario E3: n=2, r=0, s=1, t=1, block-local only.
// l is all zero but b is not A.l, so the original is infeasible at l and
// Build must produce a nontrivial x0.
func buildE3() *instance.NFold {
	x := instance.New(2, 0, 1, 1)
	x.U = vecint.Vector{3, 3}
	x.Bvec = vecint.Vector{2, 2}
	x.C = vecint.Vector{1, 1}
	x.Bs[0].Set(0, 0, 1)
	x.Bs[1].Set(0, 0, 1)

	return x
}

func TestBuildProducesFeasibleAuxiliary(t *testing.T) {
	x := buildE3()
	aux, x0 := phase1.Build(x)

	require.NoError(t, aux.Validate())
	require.True(t, aux.Apply(x0).Equal(aux.Bvec))
	for j, v := range x0 {
		require.GreaterOrEqual(t, v, aux.L[j])
		require.LessOrEqual(t, v, aux.U[j])
	}
	require.Equal(t, int64(-4), aux.C.Dot(x0))
}

func TestBuildYieldsZeroCostTrivialSolutionWhenAlreadyFeasibleAtLower(t *testing.T) {
	x := instance.New(2, 0, 1, 1)
	x.U = vecint.Vector{3, 3}
	// Bvec left at zero: b = A.l = 0, so the original is already feasible
	// at l and the auxiliary's trivial solution should already cost zero.
	x.Bs[0].Set(0, 0, 1)
	x.Bs[1].Set(0, 0, 1)

	aux, x0 := phase1.Build(x)
	require.True(t, x0.IsZero())
	require.Equal(t, int64(0), aux.C.Dot(x0))
}

func TestProjectRecoversOriginalFeasiblePoint(t *testing.T) {
	x := buildE3()
	aux, _ := phase1.Build(x)

	// A hand-built zero-cost optimum of aux: each block's first column
	// carries the true value (2) and its slack is driven to zero.
	y := vecint.Vector{2, 0, 2, 0}
	require.True(t, aux.Apply(y).Equal(aux.Bvec))
	require.Equal(t, int64(0), aux.C.Dot(y))

	recovered := phase1.Project(x, y)
	require.Equal(t, vecint.Vector{2, 2}, recovered)
}

func TestBuildAndProjectWithNonzeroLowerBound(t *testing.T) {
	// n=2, r=0, s=1, t=1 with l != 0 and b != A.l, so the shift b' = b - A.l
	// is genuinely nonzero and Build must carry it through correctly rather
	// than degenerating to the l=0 case covered by buildE3.
	x := instance.New(2, 0, 1, 1)
	x.L = vecint.Vector{1, 1}
	x.U = vecint.Vector{4, 4}
	x.Bvec = vecint.Vector{3, 3}
	x.C = vecint.Vector{1, 1}
	x.Bs[0].Set(0, 0, 1)
	x.Bs[1].Set(0, 0, 1)

	require.False(t, x.Apply(x.L).Equal(x.Bvec))

	aux, x0 := phase1.Build(x)
	require.NoError(t, aux.Validate())
	require.True(t, aux.Apply(x0).Equal(aux.Bvec))
	for j, v := range x0 {
		require.GreaterOrEqual(t, v, aux.L[j])
		require.LessOrEqual(t, v, aux.U[j])
	}
	require.Equal(t, int64(-4), aux.C.Dot(x0))

	// A hand-built zero-cost optimum: each block's slack driven to zero and
	// its original column carrying the shifted value (2 = 3 - l_i).
	y := vecint.Vector{2, 0, 2, 0}
	require.True(t, aux.Apply(y).Equal(aux.Bvec))
	require.Equal(t, int64(0), aux.C.Dot(y))

	recovered := phase1.Project(x, y)
	require.Equal(t, vecint.Vector{3, 3}, recovered)
	require.True(t, x.Apply(recovered).Equal(x.Bvec))
}

func TestBuildPanicsOnInvalidInstance(t *testing.T) {
	x := instance.New(1, 1, 1, 1)
	x.L = vecint.Vector{5}
	x.U = vecint.Vector{0}
	require.Panics(t, func() { phase1.Build(x) })
}
