package modsexp

import "errors"

var (
	// ErrUnexpectedEOF means the input ended inside a token, string, or
	// open list. It aborts the whole parse; callers should wrap and
	// surface it.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrMalformedNode means the root of the input is not a parseable
	// list: it does not begin with '(' or closes before a name is read.
	// Nested malformed lists are recovered by dropping them and never
	// produce this error.
	ErrMalformedNode = errors.New("malformed node")
)
