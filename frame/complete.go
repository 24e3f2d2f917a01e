package frame

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/qecutil/stabkit/gf2"
	"github.com/qecutil/stabkit/pauli"
)

// Complete fills every unassigned qubit of the frame with a valid pair.
//
// For each missing qubit, in ascending order, the search proceeds in three
// stages:
//
//  1. enumerate X candidates of weight up to maxWeight (canonical order)
//     that commute with every assigned operator and are independent of
//     them; for each, derive a Z partner by solving the symplectic linear
//     system (commute with the assigned set, anticommute with the
//     candidate), pinning free variables to zero;
//  2. when the solved partner is dependent or the system is inconsistent,
//     enumerate Z candidates directly under the same constraints;
//  3. when no bounded-weight X candidate admits a partner, fall back to an
//     exhaustive sweep over all operator pairs.
//
// The first admissible pair in canonical order wins, so completion is a
// deterministic function of the frame and maxWeight.
//
// Errors: ErrBadWeight; ErrSearchExhausted when some qubit admits no pair
// even exhaustively.
func (f *Frame) Complete(maxWeight int) error {
	if maxWeight <= 0 {
		return fmt.Errorf("%w: maxWeight=%d", ErrBadWeight, maxWeight)
	}

	for q := 0; q < f.n; q++ {
		if f.set[q] {
			continue
		}
		x, z, ok := f.searchPair(maxWeight)
		if !ok {
			return fmt.Errorf("%w: q=%d, maxWeight=%d", ErrSearchExhausted, q, maxWeight)
		}
		f.ximg[q] = x
		f.zimg[q] = z
		f.set[q] = true
	}
	return nil
}

// searchPair finds the canonical first (X, Z) pair compatible with the
// currently assigned frame operators.
func (f *Frame) searchPair(maxWeight int) (x, z pauli.Operator, ok bool) {
	existing := f.assigned()
	span := f.spanMatrix(existing)

	tryX := func(cand pauli.Operator) bool {
		if !commutesWithAll(cand, existing) {
			return true
		}
		if inSpan, _ := gf2.SpanDecompose(span, cand.Symplectic()); inSpan {
			return true
		}
		partner, found := f.findPartner(cand, existing, span, maxWeight)
		if !found {
			return true
		}
		x, z, ok = cand, partner, true
		return false
	}

	if !eachBounded(f.n, maxWeight, tryX) {
		return x, z, true
	}
	if maxWeight >= f.n {
		if !eachAll(f.n, tryX) {
			return x, z, true
		}
	}
	return f.searchPairExhaustive(existing, span)
}

// findPartner derives a Z partner for xCand: first by linear solve, then by
// direct enumeration.
func (f *Frame) findPartner(xCand pauli.Operator, existing []pauli.Operator, span *gf2.Matrix, maxWeight int) (pauli.Operator, bool) {
	extended := span.AppendRow(xCand.Symplectic())

	if sol, solved := f.solvePartner(xCand, existing); solved {
		if inSpan, _ := gf2.SpanDecompose(extended, sol); !inSpan {
			op, err := pauli.FromSymplectic(sol, f.n)
			if err == nil {
				return op, true
			}
		}
	}

	var partner pauli.Operator
	found := false
	tryZ := func(cand pauli.Operator) bool {
		if cand.Commutes(xCand) {
			return true
		}
		if !commutesWithAll(cand, existing) {
			return true
		}
		if inSpan, _ := gf2.SpanDecompose(extended, cand.Symplectic()); inSpan {
			return true
		}
		partner, found = cand, true
		return false
	}
	if !eachBounded(f.n, maxWeight, tryZ) {
		return partner, found
	}
	if maxWeight >= f.n {
		if !eachAll(f.n, tryZ) {
			return partner, found
		}
	}
	return pauli.Operator{}, false
}

// solvePartner solves the symplectic constraint system for a Z partner of
// xCand: orthogonal to every assigned operator, anticommuting with xCand.
// Free variables go to zero.
func (f *Frame) solvePartner(xCand pauli.Operator, existing []pauli.Operator) (*bitset.BitSet, bool) {
	rows := make([]*bitset.BitSet, 0, len(existing)+1)
	for _, e := range existing {
		rows = append(rows, symplecticDual(e.Symplectic(), f.n))
	}
	rows = append(rows, symplecticDual(xCand.Symplectic(), f.n))

	a, err := gf2.FromRows(rows, 2*f.n)
	if err != nil {
		return nil, false
	}
	b := bitset.New(uint(len(rows)))
	b.Set(uint(len(rows) - 1))
	return gf2.Solve(a, b)
}

// searchPairExhaustive sweeps all operator pairs compatible with the
// assigned set, in canonical base-4 order.
func (f *Frame) searchPairExhaustive(existing []pauli.Operator, span *gf2.Matrix) (x, z pauli.Operator, ok bool) {
	var candidates []pauli.Operator
	eachAll(f.n, func(cand pauli.Operator) bool {
		if !commutesWithAll(cand, existing) {
			return true
		}
		if inSpan, _ := gf2.SpanDecompose(span, cand.Symplectic()); inSpan {
			return true
		}
		candidates = append(candidates, cand)
		return true
	})

	for i, xc := range candidates {
		extended := span.AppendRow(xc.Symplectic())
		for _, zc := range candidates[i+1:] {
			if xc.Commutes(zc) {
				continue
			}
			if inSpan, _ := gf2.SpanDecompose(extended, zc.Symplectic()); inSpan {
				continue
			}
			return xc, zc, true
		}
	}
	return pauli.Operator{}, pauli.Operator{}, false
}

// assigned returns the pinned frame operators: X images in qubit order,
// then Z images.
func (f *Frame) assigned() []pauli.Operator {
	var out []pauli.Operator
	for q := 0; q < f.n; q++ {
		if f.set[q] {
			out = append(out, f.ximg[q])
		}
	}
	for q := 0; q < f.n; q++ {
		if f.set[q] {
			out = append(out, f.zimg[q])
		}
	}
	return out
}

// spanMatrix stacks the symplectic rows of ops into a 2n-column matrix.
func (f *Frame) spanMatrix(ops []pauli.Operator) *gf2.Matrix {
	rows := make([]*bitset.BitSet, len(ops))
	for i, op := range ops {
		rows[i] = op.Symplectic()
	}
	m, _ := gf2.FromRows(rows, 2*f.n)
	return m
}

func commutesWithAll(cand pauli.Operator, ops []pauli.Operator) bool {
	for _, op := range ops {
		if !cand.Commutes(op) {
			return false
		}
	}
	return true
}

// symplecticDual swaps the x and z halves of a symplectic vector, so that a
// plain dot product with the dual computes the symplectic form.
func symplecticDual(v *bitset.BitSet, n int) *bitset.BitSet {
	d := bitset.New(uint(2 * n))
	for i := 0; i < n; i++ {
		if v.Test(uint(i)) {
			d.Set(uint(n + i))
		}
		if v.Test(uint(n + i)) {
			d.Set(uint(i))
		}
	}
	return d
}
