// Package gf2: Gaussian elimination kernels — row reduction and span
// decomposition.
//
// Determinism: pivot search always scans rows top-down and columns
// left-to-right; identical inputs yield identical echelon forms, pivot maps
// and coefficient vectors.

package gf2

import "github.com/bits-and-blooms/bitset"

// NoPivot marks a column without a pivot row in the pivot map returned by
// RowReduce.
const NoPivot = -1

// RowReduce performs Gaussian elimination mod 2 and returns the reduced
// row-echelon form together with the pivot map.
//
// Full reduction: each pivot column is cleared both above and below its
// pivot row. pivots[col] is the pivot row for col, or NoPivot when the
// column carries none.
//
// The input is cloned; m is never mutated. A nil or empty matrix reduces to
// itself with an all-NoPivot map.
//
// Complexity: O(m·d²/w) for m rows, d columns, w word bits.
func RowReduce(m *Matrix) (*Matrix, []int) {
	ech := m.Clone()
	pivots := make([]int, ech.cols)
	for col := range pivots {
		pivots[col] = NoPivot
	}

	pivotRow := 0
	for col := 0; col < ech.cols && pivotRow < len(ech.rows); col++ {
		// Locate the first candidate row at or below pivotRow.
		pr := NoPivot
		for r := pivotRow; r < len(ech.rows); r++ {
			if ech.rows[r].Test(uint(col)) {
				pr = r
				break
			}
		}
		if pr == NoPivot {
			continue
		}
		if pr != pivotRow {
			ech.rows[pivotRow], ech.rows[pr] = ech.rows[pr], ech.rows[pivotRow]
		}
		// Clear the column everywhere else (above and below).
		for r := 0; r < len(ech.rows); r++ {
			if r != pivotRow && ech.rows[r].Test(uint(col)) {
				ech.rows[r].InPlaceSymmetricDifference(ech.rows[pivotRow])
			}
		}
		pivots[col] = pivotRow
		pivotRow++
	}

	return ech, pivots
}

// SpanDecompose decides whether target lies in the row span of S over GF(2),
// returning the combining coefficients when it does.
//
// The reduction runs forward elimination on a clone of S while tracking
// which original rows were combined into each working row (a running m×m
// combination matrix). The target is then reduced against the pivot rows in
// order; the XOR of the touched combination rows yields coeffs, a length-m
// bit vector with coeffsᵀ·S = target (mod 2) when inSpan is true.
//
// Contract: when inSpan is false, coeffs is still returned but unspecified —
// callers must check the flag first. An S with zero rows spans only the zero
// vector. A nil target is treated as the zero vector.
//
// Complexity: O(m²·d/w).
func SpanDecompose(s *Matrix, target *bitset.BitSet) (bool, *bitset.BitSet) {
	m := s.Rows()
	coeffs := bitset.New(uint(m))
	work := s.Clone()

	var residue *bitset.BitSet
	if target == nil {
		residue = bitset.New(uint(s.Cols()))
	} else {
		residue = target.Clone()
	}
	if m == 0 {
		return residue.None(), coeffs
	}

	// comb[r] records which original rows are summed into work row r.
	comb := make([]*bitset.BitSet, m)
	for r := 0; r < m; r++ {
		comb[r] = bitset.New(uint(m))
		comb[r].Set(uint(r))
	}

	type pivot struct{ row, col int }
	var pivots []pivot
	pivotRow := 0
	for col := 0; col < work.cols && pivotRow < m; col++ {
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
			comb[pivotRow], comb[pr] = comb[pr], comb[pivotRow]
		}
		for r := pivotRow + 1; r < m; r++ {
			if work.rows[r].Test(uint(col)) {
				work.rows[r].InPlaceSymmetricDifference(work.rows[pivotRow])
				comb[r].InPlaceSymmetricDifference(comb[pivotRow])
			}
		}
		pivots = append(pivots, pivot{row: pivotRow, col: col})
		pivotRow++
	}

	for _, p := range pivots {
		if residue.Test(uint(p.col)) {
			residue.InPlaceSymmetricDifference(work.rows[p.row])
			coeffs.InPlaceSymmetricDifference(comb[p.row])
		}
	}

	return residue.None(), coeffs
}
