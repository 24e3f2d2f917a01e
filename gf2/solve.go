package gf2

import "github.com/bits-and-blooms/bitset"

// Solve finds one solution x of A·x = b over GF(2).
//
// Forward elimination on the augmented system [A|b] followed by a
// deterministic read-off: free variables are fixed to 0, so the returned
// vector is a function of (A, b) only. ok is false when the system is
// inconsistent (a zero row of A maps to a 1 in the reduced b).
//
// b may be nil, standing for the zero vector. A with zero rows constrains
// nothing and yields the all-zero solution.
//
// Complexity: O(m·d²/w) for m rows, d columns.
func Solve(a *Matrix, b *bitset.BitSet) (*bitset.BitSet, bool) {
	m := a.Rows()
	d := a.Cols()

	work := a.Clone()
	var rhs *bitset.BitSet
	if b == nil {
		rhs = bitset.New(uint(m))
	} else {
		rhs = b.Clone()
	}

	pivots := make([]int, d) // pivots[col] = pivot row or NoPivot
	for col := range pivots {
		pivots[col] = NoPivot
	}

	pivotRow := 0
	for col := 0; col < d && pivotRow < m; col++ {
		pr := NoPivot
		for r := pivotRow; r < m; r++ {
			if work.rows[r].Test(uint(col)) {
				pr = r
				break
			}
		}
		if pr == NoPivot {
			continue
		}
		if pr != pivotRow {
			work.rows[pivotRow], work.rows[pr] = work.rows[pr], work.rows[pivotRow]
			swapBit(rhs, uint(pivotRow), uint(pr))
		}
		for r := 0; r < m; r++ {
			if r != pivotRow && work.rows[r].Test(uint(col)) {
				work.rows[r].InPlaceSymmetricDifference(work.rows[pivotRow])
				if rhs.Test(uint(pivotRow)) {
					flipBit(rhs, uint(r))
				}
			}
		}
		pivots[col] = pivotRow
		pivotRow++
	}

	// Consistency: a fully cleared row must carry a 0 on the right.
	for r := 0; r < m; r++ {
		if work.rows[r].None() && rhs.Test(uint(r)) {
			return nil, false
		}
	}

	x := bitset.New(uint(d))
	for col := 0; col < d; col++ {
		if pivots[col] != NoPivot && rhs.Test(uint(pivots[col])) {
			x.Set(uint(col))
		}
	}
	return x, true
}

// Invert computes the inverse of a square matrix over GF(2) by Gauss-Jordan
// elimination on the identity-augmented system [m|I].
//
// Errors: ErrNilMatrix for a nil receiver, ErrNonSquare when rows ≠ cols,
// ErrSingular when no pivot exists for some column. m is never mutated.
func Invert(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Rows()
	if n != m.Cols() {
		return nil, ErrNonSquare
	}

	work := m.Clone()
	inv, _ := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		inv.rows[i].Set(uint(i))
	}

	for col := 0; col < n; col++ {
		pr := NoPivot
		for r := col; r < n; r++ {
			if work.rows[r].Test(uint(col)) {
				pr = r
				break
			}
		}
		if pr == NoPivot {
			return nil, ErrSingular
		}
		if pr != col {
			work.rows[col], work.rows[pr] = work.rows[pr], work.rows[col]
			inv.rows[col], inv.rows[pr] = inv.rows[pr], inv.rows[col]
		}
		for r := 0; r < n; r++ {
			if r != col && work.rows[r].Test(uint(col)) {
				work.rows[r].InPlaceSymmetricDifference(work.rows[col])
				inv.rows[r].InPlaceSymmetricDifference(inv.rows[col])
			}
		}
	}

	return inv, nil
}

// Rank returns the GF(2) rank of m.
func Rank(m *Matrix) int {
	_, pivots := RowReduce(m)
	rank := 0
	for _, p := range pivots {
		if p != NoPivot {
			rank++
		}
	}
	return rank
}

func swapBit(v *bitset.BitSet, i, j uint) {
	bi, bj := v.Test(i), v.Test(j)
	v.SetTo(i, bj)
	v.SetTo(j, bi)
}

func flipBit(v *bitset.BitSet, i uint) {
	v.SetTo(i, !v.Test(i))
}
