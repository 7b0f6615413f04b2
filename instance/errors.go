package instance

import "errors"

// Sentinel errors for instance package operations. Validate returns
// ErrBoundsCrossed and ErrLengthMismatch; every other constructor and
// accessor panics on a violated precondition (New with ErrBadSizes, Apply
// and Element with ErrLengthMismatch), since shape mismatches there are
// programmer errors, not reportable ones.
var (
	// ErrBadSizes indicates n, s, or t is non-positive, or r is negative.
	ErrBadSizes = errors.New("instance: n, s, t must be positive and r non-negative")

	// ErrBoundsCrossed indicates l(j) > u(j) for some coordinate j.
	ErrBoundsCrossed = errors.New("instance: lower bound exceeds upper bound")

	// ErrLengthMismatch indicates l, u, c, or b has the wrong length for the
	// instance's sizes.
	ErrLengthMismatch = errors.New("instance: vector length mismatch")
)
