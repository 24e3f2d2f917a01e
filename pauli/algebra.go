// Package pauli: the Algebra capability interface and its two
// implementations.
//
// The production implementation (Bitwise) works word-parallel on the packed
// X/Z vectors; the reference implementation (Table) goes qubit-by-qubit
// through the multiplication rules table. Both implement the identical
// contract and tests cross-check them; DefaultAlgebra selects the one used
// by the Operator methods.

package pauli

// Algebra is the capability interface for Pauli products and commutation.
// Implementations must be pure and deterministic: same inputs, same outputs,
// no internal state.
type Algebra interface {
	// Mul returns a·b with real-sign bookkeeping; shorter operand is
	// identity-padded.
	Mul(a, b Operator) Operator

	// Commutes reports whether a and b commute under the symplectic inner
	// product; symmetric in its arguments.
	Commutes(a, b Operator) bool
}

// DefaultAlgebra is the implementation behind Operator.Mul and
// Operator.Commutes. It is the configuration point for the algebra backend:
// set it once at startup, before any operators are in flight. The default
// is the word-parallel production path; Table is the reference oracle.
var DefaultAlgebra Algebra = Bitwise{}

// Bitwise is the production Algebra: word-parallel set operations on the
// packed component vectors.
//
// Sign rule (derived from the per-qubit table): a qubit contributes -1 to
// the product a·b exactly when z_a ∧ x_b ∧ ¬(x_a ∧ z_b) holds there, so the
// overall sign flip is the parity of |(z_a ∩ x_b) \ (x_a ∩ z_b)|.
type Bitwise struct{}

// Mul implements Algebra. Complexity: O(n/64).
func (Bitwise) Mul(a, b Operator) Operator {
	n := a.n
	if b.n > n {
		n = b.n
	}
	pa, pb := a.Padded(n), b.Padded(n)

	out := identity(n)
	out.x = pa.x.SymmetricDifference(pb.x)
	out.z = pa.z.SymmetricDifference(pb.z)

	neg := pa.z.Intersection(pb.x).DifferenceCardinality(pa.x.Intersection(pb.z))
	out.sign = pa.Sign() * pb.Sign()
	if neg%2 == 1 {
		out.sign = -out.sign
	}

	return out
}

// Commutes implements Algebra. Complexity: O(n/64).
func (Bitwise) Commutes(a, b Operator) bool {
	n := a.n
	if b.n > n {
		n = b.n
	}
	pa, pb := a.Padded(n), b.Padded(n)
	total := pa.x.IntersectionCardinality(pb.z) + pa.z.IntersectionCardinality(pb.x)

	return total%2 == 0
}

// Table is the reference Algebra: per-qubit walks through the symbol rules
// tables. Slower than Bitwise but obviously correct; used as a test oracle
// and selectable at configuration time.
type Table struct{}

// Mul implements Algebra via MulSymbols per qubit. Complexity: O(n).
func (Table) Mul(a, b Operator) Operator {
	n := a.n
	if b.n > n {
		n = b.n
	}
	syms := make([]Symbol, n)
	sign := a.Sign() * b.Sign()
	for q := 0; q < n; q++ {
		s, ph := MulSymbols(a.At(q), b.At(q))
		syms[q] = s
		sign *= ph
	}
	out := FromSymbols(syms)
	out.sign = sign

	return out
}

// Commutes implements Algebra by counting per-qubit anticommutations:
// two Paulis commute iff they anticommute on an even number of qubits.
// Complexity: O(n).
func (Table) Commutes(a, b Operator) bool {
	n := a.n
	if b.n > n {
		n = b.n
	}
	odd := 0
	for q := 0; q < n; q++ {
		sa, sb := a.At(q), b.At(q)
		if sa == I || sb == I || sa == sb {
			continue
		}
		odd++
	}

	return odd%2 == 0
}
