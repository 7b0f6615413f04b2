package vecint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augfold/nfold/vecint"
)

func TestMatrixAtSet(t *testing.T) {
	m := vecint.NewMatrix(2, 3)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 2, -5)

	require.Equal(t, int64(1), m.At(0, 0))
	require.Equal(t, int64(2), m.At(0, 1))
	require.Equal(t, int64(-5), m.At(1, 2))
	require.Equal(t, int64(0), m.At(1, 0))
}

func TestMatrixMulVec(t *testing.T) {
	m := vecint.NewMatrix(2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	m.Set(1, 1, -1)

	x := vecint.Vector{3, 4}
	require.Equal(t, vecint.Vector{7, -1}, m.MulVec(x))
}

func TestMatrixAbsMax(t *testing.T) {
	m := vecint.NewMatrix(1, 3)
	m.Set(0, 0, -9)
	m.Set(0, 1, 2)
	m.Set(0, 2, 5)
	require.Equal(t, int64(9), m.AbsMax())
}

func TestMatrixOutOfBoundsPanics(t *testing.T) {
	m := vecint.NewMatrix(2, 2)
	require.Panics(t, func() { m.At(2, 0) })
	require.Panics(t, func() { m.Set(0, -1, 1) })
}

func TestMatrixColExtractsColumn(t *testing.T) {
	m := vecint.NewMatrix(2, 2)
	m.Set(0, 0, 1)
	m.Set(1, 0, 2)
	m.Set(0, 1, 3)
	m.Set(1, 1, 4)

	require.Equal(t, vecint.Vector{1, 2}, m.Col(0))
	require.Equal(t, vecint.Vector{3, 4}, m.Col(1))
}
