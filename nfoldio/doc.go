// Package nfoldio implements the text protocol for n-fold instances: Parse
// reads a whitespace-separated integer encoding of an n-fold instance from
// an io.Reader; Format and FormatInfeasible write the two possible program
// outcomes to an io.Writer.
package nfoldio
