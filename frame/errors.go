package frame

import "errors"

var (
	// ErrBadSize is returned by New for a non-positive qubit count.
	ErrBadSize = errors.New("frame: qubit count must be positive")

	// ErrQubitRange is returned when a qubit index falls outside [0, n).
	ErrQubitRange = errors.New("frame: qubit index out of range")

	// ErrSizeMismatch is returned when an operator's register size differs
	// from the frame's.
	ErrSizeMismatch = errors.New("frame: operator size does not match frame")

	// ErrPairTaken is returned by SetPair when the qubit already carries a
	// pair.
	ErrPairTaken = errors.New("frame: pair already assigned for qubit")

	// ErrSearchExhausted is returned by Complete when no valid pair exists
	// for some qubit within the search space.
	ErrSearchExhausted = errors.New("frame: no symplectic pair found for qubit")

	// ErrBadWeight is returned by Complete for a non-positive weight bound.
	ErrBadWeight = errors.New("frame: max weight must be positive")
)
