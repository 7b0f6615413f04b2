// Package phase1 builds the auxiliary n-fold instance used to decide
// feasibility of an original instance and, from a zero-cost optimum of that
// auxiliary, to recover a feasible point of the original. The construction
// follows Jansen's phase-I reduction (his paper, chapter 4): slack columns
// carrying an identity block are appended to each variable block so that the
// auxiliary always admits a trivial feasible point, and its cost penalizes
// any nonzero slack.
//
// Build never fails: it is a pure construction from a well-formed NFold and
// panics only if its precondition (x.Validate() == nil) is violated by the
// caller. The auxiliary it returns always admits the trivial solution x0.
package phase1
