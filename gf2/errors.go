// Package gf2: sentinel error set. All kernels return these sentinels
// (optionally wrapped with fmt.Errorf("...: %w", err) for context) and tests
// check them via errors.Is.

package gf2

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns).
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers return this, never panic.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. Solve with len(b) != rows(A).
	ErrShapeMismatch = errors.New("gf2: shape mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("gf2: matrix is not square")

	// ErrSingular is returned by Invert when the matrix is rank-deficient
	// over GF(2).
	ErrSingular = errors.New("gf2: singular matrix")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("gf2: nil matrix")
)
