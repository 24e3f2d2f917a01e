// Package pauli: the immutable Operator value and its symplectic view.
//
// Representation: an Operator over n qubits holds two bit-packed vectors
// (X components, Z components) and a ±1 sign. Per-qubit symbols derive from
// the bit pair: (0,0)=I, (1,0)=X, (0,1)=Z, (1,1)=Y.
//
// Determinism & immutability:
//   - Every method returns fresh values; receivers are never mutated.
//   - Binary operations over mismatched lengths zero-pad the shorter
//     operand (identity padding), per the symplectic algebra contract.

package pauli

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Operator is an immutable n-qubit Pauli operator: bit-packed X and Z
// component vectors plus an overall real sign (±1).
//
// The zero value is the 0-qubit identity with sign +1.
type Operator struct {
	n    int
	x, z *bitset.BitSet
	sign int8
}

// New returns the n-qubit identity operator with sign +1.
// Returns ErrBadSize when n is negative.
func New(n int) (Operator, error) {
	if n < 0 {
		return Operator{}, ErrBadSize
	}

	return Operator{n: n, x: bitset.New(uint(n)), z: bitset.New(uint(n)), sign: +1}, nil
}

// identity builds the n-qubit identity without the size check; internal
// callers guarantee n >= 0.
func identity(n int) Operator {
	return Operator{n: n, x: bitset.New(uint(n)), z: bitset.New(uint(n)), sign: +1}
}

// FromSymbols builds an operator from an explicit per-qubit symbol slice,
// sign +1. The operator length equals len(syms).
func FromSymbols(syms []Symbol) Operator {
	op := identity(len(syms))
	for q, s := range syms {
		if s.XBit() {
			op.x.Set(uint(q))
		}
		if s.ZBit() {
			op.z.Set(uint(q))
		}
	}

	return op
}

// FromSymplectic builds an operator from a length-2n symplectic bit vector
// (X-bits at positions 0..n-1, Z-bits at n..2n-1), sign +1.
// Returns ErrBadSize when n is negative.
func FromSymplectic(v *bitset.BitSet, n int) (Operator, error) {
	if n < 0 {
		return Operator{}, ErrBadSize
	}
	op := identity(n)
	if v == nil {
		return op, nil
	}
	for q := 0; q < n; q++ {
		if v.Test(uint(q)) {
			op.x.Set(uint(q))
		}
		if v.Test(uint(n + q)) {
			op.z.Set(uint(q))
		}
	}

	return op, nil
}

// Qubits returns the number of qubits the operator is defined over.
func (o Operator) Qubits() int { return o.n }

// Sign returns the overall real sign, +1 or -1.
// The zero-value Operator reports +1.
func (o Operator) Sign() int8 {
	if o.sign == 0 {
		return +1
	}

	return o.sign
}

// At returns the symbol on qubit q. Indices outside [0, Qubits()) read as
// identity, consistent with zero-padding semantics.
func (o Operator) At(q int) Symbol {
	if q < 0 || q >= o.n || o.x == nil {
		return I
	}

	return FromBits(o.x.Test(uint(q)), o.z.Test(uint(q)))
}

// Symbols returns the per-qubit symbol slice (length Qubits()).
func (o Operator) Symbols() []Symbol {
	syms := make([]Symbol, o.n)
	for q := 0; q < o.n; q++ {
		syms[q] = o.At(q)
	}

	return syms
}

// Weight returns the number of non-identity qubit positions.
// Complexity: O(n/64) on the packed words.
func (o Operator) Weight() int {
	if o.x == nil {
		return 0
	}

	return int(o.x.UnionCardinality(o.z))
}

// IsIdentity reports whether every qubit position is identity.
// The sign is ignored: -I is still the identity pattern.
func (o Operator) IsIdentity() bool {
	return o.x == nil || (o.x.None() && o.z.None())
}

// Negated returns the operator with its sign flipped.
func (o Operator) Negated() Operator {
	out := o.Padded(o.n)
	out.sign = -out.Sign()

	return out
}

// Padded returns a copy defined over max(n, Qubits()) qubits; added
// positions are identity. Padding never truncates.
func (o Operator) Padded(n int) Operator {
	if n < o.n {
		n = o.n
	}
	out := identity(n)
	out.sign = o.Sign()
	if o.x != nil {
		for q, ok := o.x.NextSet(0); ok && int(q) < o.n; q, ok = o.x.NextSet(q + 1) {
			out.x.Set(q)
		}
		for q, ok := o.z.NextSet(0); ok && int(q) < o.n; q, ok = o.z.NextSet(q + 1) {
			out.z.Set(q)
		}
	}

	return out
}

// Symplectic returns the length-2n symplectic bit vector x ++ z.
// The result is freshly allocated; mutating it does not affect the operator.
func (o Operator) Symplectic() *bitset.BitSet {
	v := bitset.New(uint(2 * o.n))
	if o.x == nil {
		return v
	}
	for q, ok := o.x.NextSet(0); ok && int(q) < o.n; q, ok = o.x.NextSet(q + 1) {
		v.Set(q)
	}
	for q, ok := o.z.NextSet(0); ok && int(q) < o.n; q, ok = o.z.NextSet(q + 1) {
		v.Set(uint(o.n) + q)
	}

	return v
}

// Commutes reports whether o and other commute under the symplectic inner
// product Σ (x₁·z₂ ⊕ z₁·x₂) mod 2. Operands of different lengths are
// identity-padded. Symmetric: Commutes(a,b) == Commutes(b,a).
func (o Operator) Commutes(other Operator) bool {
	return DefaultAlgebra.Commutes(o, other)
}

// Mul returns the operator product o·other with real-sign bookkeeping
// (±i factors discarded — see the package doc). Operands of different
// lengths are identity-padded.
func (o Operator) Mul(other Operator) Operator {
	return DefaultAlgebra.Mul(o, other)
}

// Equal reports exact equality: same pattern over the common padded length
// AND same sign. Use EqualPattern to ignore the sign.
func (o Operator) Equal(other Operator) bool {
	return o.Sign() == other.Sign() && o.EqualPattern(other)
}

// EqualPattern reports pattern equality over the common padded length,
// ignoring signs. Classification functions compare patterns by contract.
func (o Operator) EqualPattern(other Operator) bool {
	n := o.n
	if other.n > n {
		n = other.n
	}
	for q := 0; q < n; q++ {
		if o.At(q) != other.At(q) {
			return false
		}
	}

	return true
}

// Sparse returns the canonical sparse form: tokens sorted by ascending
// qubit index, single-space separated, e.g. "X1 Z3". The identity renders
// as the empty string. The sign is not part of sparse notation.
func (o Operator) Sparse() string {
	var b strings.Builder
	for q := 0; q < o.n; q++ {
		s := o.At(q)
		if s == I {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
		b.WriteString(strconv.Itoa(q))
	}

	return b.String()
}

// String renders the dense symbol string with a leading sign when negative,
// e.g. "XZIY" or "-XZIY". Intended for debugging and test diagnostics.
func (o Operator) String() string {
	var b strings.Builder
	if o.Sign() < 0 {
		b.WriteByte('-')
	}
	for q := 0; q < o.n; q++ {
		b.WriteString(o.At(q).String())
	}

	return b.String()
}
