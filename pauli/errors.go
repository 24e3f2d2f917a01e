// Package pauli: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the pauli
// package. All functions MUST return these sentinels (optionally wrapped with
// token/index context via fmt.Errorf("...: %w", err)) and tests MUST check
// them via errors.Is. No function panics on user-triggered conditions.

package pauli

import "errors"

var (
	// ErrBadToken is returned when a sparse token is not of the form
	// X<i>/Y<i>/Z<i> (case-insensitive letter, decimal zero-based index).
	ErrBadToken = errors.New("pauli: malformed sparse token")

	// ErrConflictingToken is returned when the same qubit index appears with
	// two different operator letters. A duplicate index with the same letter
	// is idempotent and accepted.
	ErrConflictingToken = errors.New("pauli: conflicting operators on one qubit")

	// ErrQubitRange is returned when a requested qubit count is too small
	// for the highest index present, or a qubit index is out of range.
	ErrQubitRange = errors.New("pauli: qubit index out of range")

	// ErrBadSize is returned when a negative qubit count is requested.
	ErrBadSize = errors.New("pauli: qubit count must be non-negative")
)
