// Package instance defines the n-fold instance: sizes n, r, s, t, the
// per-variable bounds l/u and cost c, the right-hand side b, and the
// per-block matrices A_i, B_i. It provides the block-wise matrix-vector
// product Apply and element access into the implicit dense constraint
// matrix, without ever materializing that matrix.
//
// An instance is a plain value holder, not a thread-safe mutable object:
// nothing here is mutated concurrently, so there is no locking. All shape
// mismatches are programmer errors: construction and access panic rather
// than returning an error; callers must satisfy preconditions themselves,
// there is no runtime recovery.
package instance
