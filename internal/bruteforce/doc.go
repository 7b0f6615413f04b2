// Package bruteforce enumerates every integer point in an instance's bound
// box and compares it against A.x=b by direct evaluation. It exists only to
// serve as a test oracle against which the solver's output can be
// cross-checked; the solver itself never calls it, and it is not exported
// outside the module.
package bruteforce
