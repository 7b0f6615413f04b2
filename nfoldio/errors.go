package nfoldio

import "errors"

// ErrMalformedInput is returned by Parse when the input stream does not
// contain enough whitespace-separated integers, or contains a token that is
// not a valid integer, to fill out the declared instance shape.
var ErrMalformedInput = errors.New("nfoldio: malformed input")
