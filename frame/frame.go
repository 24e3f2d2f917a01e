package frame

import (
	"fmt"

	"github.com/qecutil/stabkit/pauli"
)

// Frame is a partially assigned symplectic frame over n qubits.
//
// The zero value is not usable; construct with New. A Frame is not safe for
// concurrent mutation.
type Frame struct {
	n    int
	ximg []pauli.Operator
	zimg []pauli.Operator
	set  []bool
}

// New returns an empty frame over n qubits.
//
// Errors: ErrBadSize when n ≤ 0.
func New(n int) (*Frame, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	return &Frame{
		n:    n,
		ximg: make([]pauli.Operator, n),
		zimg: make([]pauli.Operator, n),
		set:  make([]bool, n),
	}, nil
}

// Qubits returns the frame's register size.
func (f *Frame) Qubits() int { return f.n }

// SetPair pins (ximg, zimg) as the frame pair for qubit q.
//
// No symplectic conditions are checked here; callers validate pairs before
// assignment (Complete assumes pinned pairs are consistent).
//
// Errors: ErrQubitRange, ErrSizeMismatch, ErrPairTaken.
func (f *Frame) SetPair(q int, ximg, zimg pauli.Operator) error {
	if q < 0 || q >= f.n {
		return fmt.Errorf("%w: q=%d, n=%d", ErrQubitRange, q, f.n)
	}
	if ximg.Qubits() != f.n || zimg.Qubits() != f.n {
		return fmt.Errorf("%w: got %d/%d qubits, frame has %d",
			ErrSizeMismatch, ximg.Qubits(), zimg.Qubits(), f.n)
	}
	if f.set[q] {
		return fmt.Errorf("%w: q=%d", ErrPairTaken, q)
	}
	f.ximg[q] = ximg
	f.zimg[q] = zimg
	f.set[q] = true
	return nil
}

// XImage returns the X image for qubit q and whether the pair is assigned.
// Out-of-range q reports unassigned.
func (f *Frame) XImage(q int) (pauli.Operator, bool) {
	if q < 0 || q >= f.n || !f.set[q] {
		return pauli.Operator{}, false
	}
	return f.ximg[q], true
}

// ZImage returns the Z image for qubit q and whether the pair is assigned.
func (f *Frame) ZImage(q int) (pauli.Operator, bool) {
	if q < 0 || q >= f.n || !f.set[q] {
		return pauli.Operator{}, false
	}
	return f.zimg[q], true
}

// Assigned reports whether qubit q carries a pair.
func (f *Frame) Assigned(q int) bool {
	return q >= 0 && q < f.n && f.set[q]
}

// Completed reports whether every qubit carries a pair.
func (f *Frame) Completed() bool {
	for _, s := range f.set {
		if !s {
			return false
		}
	}
	return true
}

// Images returns the X and Z image rows in qubit order. Unassigned slots
// hold zero-value operators; call Complete first for a full frame.
func (f *Frame) Images() (xs, zs []pauli.Operator) {
	xs = make([]pauli.Operator, f.n)
	zs = make([]pauli.Operator, f.n)
	copy(xs, f.ximg)
	copy(zs, f.zimg)
	return xs, zs
}
