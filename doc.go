// Package nfold is the root of an n-fold integer linear program solver.
//
// An n-fold instance packs n identical-width blocks of variables under r
// shared constraint rows, to which block i contributes through its own
// matrix A_i, and n block-local constraint blocks B_0..B_{n-1}, each tying
// only its own block's variables together. This structure is what lets the solver avoid
// treating the whole matrix as a dense, unstructured ILP.
//
// The solver is organized under focused subpackages:
//
//	vecint/     — integer vector & matrix value types, no floating point
//	instance/   — the NFold problem type and its Apply/Validate operations
//	pathstore/  — reference-counted parent-pointer forest for path recovery
//	augip/      — the augmentation-IP layered longest-path search
//	phase1/     — Phase-I auxiliary construction for feasibility checking
//	augloop/    — the Phase-I/Phase-II augmentation driver
//	nfoldio/    — the text input/output protocol
//	diagnostics/— trace sinks used by the solver's verbose mode
//	cmd/nfold/  — a command-line front end over nfoldio and augloop
//
// The solver never touches floating point: every quantity from input
// through to the objective value is an int64, so results are exact and
// reproducible run to run.
package nfold
