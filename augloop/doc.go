// Package augloop implements the top-level fixed-point driver: Solve decides
// feasibility of an n-fold instance and, if feasible, returns an optimal
// integer point; SolveFrom repeatedly invokes the augmentation-IP solver to
// improve a known feasible point until no strict improvement remains.
package augloop
