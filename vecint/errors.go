package vecint

import "errors"

// Sentinel errors for vecint package operations.
var (
	// ErrInvalidDimensions indicates a non-positive matrix dimension or a
	// negative vector length.
	ErrInvalidDimensions = errors.New("vecint: dimensions must be > 0")

	// ErrDimensionMismatch indicates two operands have incompatible lengths
	// or shapes for the requested operation.
	ErrDimensionMismatch = errors.New("vecint: dimension mismatch")

	// ErrIndexOutOfBounds indicates a row, column, or element index is outside
	// the valid range.
	ErrIndexOutOfBounds = errors.New("vecint: index out of bounds")
)
