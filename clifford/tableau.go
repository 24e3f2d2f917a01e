package clifford

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/qecutil/stabkit/gf2"
	"github.com/qecutil/stabkit/pauli"
)

// Tableau represents a Clifford C by the conjugation images of the
// single-qubit generators: xs[q] = C X_q C†, zs[q] = C Z_q C†.
//
// Signs on the images are tracked up to ±1. Tableaux are immutable after
// construction.
type Tableau struct {
	n  int
	xs []pauli.Operator
	zs []pauli.Operator
}

// FromConjugatedGenerators builds a tableau from explicit generator images.
// Both slices must have length n with every image over exactly n qubits.
//
// The symplectic frame conditions are not enforced here; use Verify to
// check them.
//
// Errors: ErrBadTableau.
func FromConjugatedGenerators(xs, zs []pauli.Operator) (*Tableau, error) {
	n := len(xs)
	if n == 0 || len(zs) != n {
		return nil, fmt.Errorf("%w: got %d X and %d Z images", ErrBadTableau, len(xs), len(zs))
	}
	for q := 0; q < n; q++ {
		if xs[q].Qubits() != n || zs[q].Qubits() != n {
			return nil, fmt.Errorf("%w: image for qubit %d has wrong register size", ErrBadTableau, q)
		}
	}
	t := &Tableau{n: n, xs: make([]pauli.Operator, n), zs: make([]pauli.Operator, n)}
	copy(t.xs, xs)
	copy(t.zs, zs)
	return t, nil
}

// Identity returns the tableau of the identity Clifford over n qubits.
//
// Errors: ErrBadQubitCount when n ≤ 0.
func Identity(n int) (*Tableau, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadQubitCount, n)
	}
	xs := make([]pauli.Operator, n)
	zs := make([]pauli.Operator, n)
	for q := 0; q < n; q++ {
		x, err := pauli.ParseSized(fmt.Sprintf("X%d", q), n)
		if err != nil {
			return nil, err
		}
		z, err := pauli.ParseSized(fmt.Sprintf("Z%d", q), n)
		if err != nil {
			return nil, err
		}
		xs[q], zs[q] = x, z
	}
	return &Tableau{n: n, xs: xs, zs: zs}, nil
}

// Qubits returns the tableau's register size.
func (t *Tableau) Qubits() int { return t.n }

// XOutput returns the image of X_q. Out-of-range q yields the identity.
func (t *Tableau) XOutput(q int) pauli.Operator {
	if q < 0 || q >= t.n {
		op, _ := pauli.New(t.n)
		return op
	}
	return t.xs[q]
}

// ZOutput returns the image of Z_q. Out-of-range q yields the identity.
func (t *Tableau) ZOutput(q int) pauli.Operator {
	if q < 0 || q >= t.n {
		op, _ := pauli.New(t.n)
		return op
	}
	return t.zs[q]
}

// Conjugate returns C p C†: the product of the generator images selected by
// p's per-qubit symbols, accumulated in qubit order (a Y contributes the X
// image then the Z image), carrying p's sign through.
func (t *Tableau) Conjugate(p pauli.Operator) pauli.Operator {
	out, _ := pauli.New(t.n)
	limit := p.Qubits()
	if limit > t.n {
		limit = t.n
	}
	for q := 0; q < limit; q++ {
		switch p.At(q) {
		case pauli.X:
			out = out.Mul(t.xs[q])
		case pauli.Z:
			out = out.Mul(t.zs[q])
		case pauli.Y:
			out = out.Mul(t.xs[q]).Mul(t.zs[q])
		}
	}
	if p.Sign() < 0 {
		out = out.Negated()
	}
	return out
}

// Inverse returns the tableau of C⁻¹ by inverting the stacked 2n×2n
// symplectic matrix over GF(2). Image signs reset to +1; the inverse is
// exact on patterns.
//
// Errors: gf2.ErrSingular when the rows do not form a valid Clifford.
func (t *Tableau) Inverse() (*Tableau, error) {
	rows := make([]*bitset.BitSet, 0, 2*t.n)
	for _, op := range t.xs {
		rows = append(rows, op.Symplectic())
	}
	for _, op := range t.zs {
		rows = append(rows, op.Symplectic())
	}
	m, err := gf2.FromRows(rows, 2*t.n)
	if err != nil {
		return nil, err
	}
	inv, err := gf2.Invert(m)
	if err != nil {
		return nil, err
	}

	xs := make([]pauli.Operator, t.n)
	zs := make([]pauli.Operator, t.n)
	for q := 0; q < t.n; q++ {
		xRow, err := inv.Row(q)
		if err != nil {
			return nil, err
		}
		x, err := pauli.FromSymplectic(xRow, t.n)
		if err != nil {
			return nil, err
		}
		zRow, err := inv.Row(t.n + q)
		if err != nil {
			return nil, err
		}
		z, err := pauli.FromSymplectic(zRow, t.n)
		if err != nil {
			return nil, err
		}
		xs[q], zs[q] = x, z
	}
	return &Tableau{n: t.n, xs: xs, zs: zs}, nil
}

// Then returns the tableau of applying t first and u second (u∘t).
//
// Errors: ErrBadTableau on register size mismatch.
func (t *Tableau) Then(u *Tableau) (*Tableau, error) {
	if u.n != t.n {
		return nil, fmt.Errorf("%w: composing %d-qubit with %d-qubit tableau", ErrBadTableau, t.n, u.n)
	}
	xs := make([]pauli.Operator, t.n)
	zs := make([]pauli.Operator, t.n)
	for q := 0; q < t.n; q++ {
		xs[q] = u.Conjugate(t.xs[q])
		zs[q] = u.Conjugate(t.zs[q])
	}
	return &Tableau{n: t.n, xs: xs, zs: zs}, nil
}

// Verify checks the symplectic frame conditions: each X image anticommutes
// with its Z partner and commutes with every other image.
//
// Errors: ErrInvalidFrame naming the first violated pair.
func (t *Tableau) Verify() error {
	for p := 0; p < t.n; p++ {
		if t.xs[p].Commutes(t.zs[p]) {
			return fmt.Errorf("%w: X image %d must anticommute with Z image %d", ErrInvalidFrame, p, p)
		}
		for q := p + 1; q < t.n; q++ {
			if !t.xs[p].Commutes(t.xs[q]) {
				return fmt.Errorf("%w: X images %d and %d must commute", ErrInvalidFrame, p, q)
			}
			if !t.zs[p].Commutes(t.zs[q]) {
				return fmt.Errorf("%w: Z images %d and %d must commute", ErrInvalidFrame, p, q)
			}
			if !t.xs[p].Commutes(t.zs[q]) {
				return fmt.Errorf("%w: X image %d must commute with Z image %d", ErrInvalidFrame, p, q)
			}
			if !t.zs[p].Commutes(t.xs[q]) {
				return fmt.Errorf("%w: Z image %d must commute with X image %d", ErrInvalidFrame, p, q)
			}
		}
	}
	return nil
}
