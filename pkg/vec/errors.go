package vec

import "errors"

var (
	// ErrDegenerate reports an operation whose result is undefined for the
	// given input: the angle between vectors when either magnitude is zero,
	// or a Minkowski distance of order p <= 0. Test with errors.Is.
	ErrDegenerate = errors.New("degenerate input")

	// ErrShapeMismatch reports a bulk component assignment whose value count
	// does not match the vector's dimensionality.
	ErrShapeMismatch = errors.New("component count mismatch")
)
