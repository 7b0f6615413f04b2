// Package vecint provides value-type integer vectors and dense row-major
// integer matrices: the arithmetic kernel shared by instance, augip, phase1
// and augloop.
//
// Vectors are used both as values — keys in frontier maps, messages passed
// between the augmentation-IP solver and its callers — and as mutable work
// buffers. Comparisons are exact; there is no floating point anywhere in
// this package.
//
// Hashing (Vector.Hash) reads exactly the logical length of the vector, never
// any capacity padding, so two vectors that compare Equal always hash equal
// and the hash is stable across runs.
package vecint
