package classify

import "errors"

var (
	// ErrBadCandidate wraps a parse failure of the candidate operator.
	ErrBadCandidate = errors.New("classify: invalid candidate operator")

	// ErrBadStabilizer wraps a parse failure of a stabilizer generator.
	ErrBadStabilizer = errors.New("classify: invalid stabilizer generator")

	// ErrQubitCount is returned when an operator references a qubit at or
	// beyond the declared register size.
	ErrQubitCount = errors.New("classify: operator exceeds declared qubit count")
)
