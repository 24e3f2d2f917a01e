// Package gf2: the bit-packed Matrix type.
//
// Rows are *bitset.BitSet values of logical width Cols(); bits at or beyond
// the column count are never set. The type is a thin container — all
// elimination kernels live in free functions (rowreduce.go, solve.go).

package gf2

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Matrix is an m×d matrix over GF(2) with bit-packed rows.
type Matrix struct {
	rows []*bitset.BitSet
	cols int
}

// NewMatrix allocates a zero matrix with the given shape.
// Returns ErrBadShape when rows or cols is negative.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{rows: make([]*bitset.BitSet, rows), cols: cols}
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(cols))
	}

	return m, nil
}

// FromRows builds a matrix from row vectors, cloning each one. Rows narrower
// than cols are zero-padded on the right; bits at or beyond cols must be
// unset (callers construct rows at the right width).
func FromRows(rows []*bitset.BitSet, cols int) (*Matrix, error) {
	if cols < 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{rows: make([]*bitset.BitSet, len(rows)), cols: cols}
	for i, r := range rows {
		if r == nil {
			m.rows[i] = bitset.New(uint(cols))
			continue
		}
		m.rows[i] = r.Clone()
	}

	return m, nil
}

// Rows returns the row count. O(1).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Cols returns the column count. O(1).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Bit returns the entry at (i, j).
// Returns ErrOutOfRange on invalid indices. O(1).
func (m *Matrix) Bit(i, j int) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return false, ErrOutOfRange
	}

	return m.rows[i].Test(uint(j)), nil
}

// SetBit assigns the entry at (i, j).
// Returns ErrOutOfRange on invalid indices. O(1).
func (m *Matrix) SetBit(i, j int, v bool) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	if v {
		m.rows[i].Set(uint(j))
	} else {
		m.rows[i].Clear(uint(j))
	}

	return nil
}

// Row returns a clone of row i, or ErrOutOfRange.
func (m *Matrix) Row(i int) (*bitset.BitSet, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= len(m.rows) {
		return nil, ErrOutOfRange
	}

	return m.rows[i].Clone(), nil
}

// AppendRow returns a new matrix with r (cloned) appended; the receiver is
// unchanged. A nil r appends a zero row.
func (m *Matrix) AppendRow(r *bitset.BitSet) *Matrix {
	out := m.Clone()
	if r == nil {
		out.rows = append(out.rows, bitset.New(uint(out.cols)))
	} else {
		out.rows = append(out.rows, r.Clone())
	}

	return out
}

// Clone returns a deep copy. A nil receiver clones to an empty 0×0 matrix.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return &Matrix{}
	}
	out := &Matrix{rows: make([]*bitset.BitSet, len(m.rows)), cols: m.cols}
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// Equal reports entry-wise equality of two matrices of the same shape.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if m.rows[i].Test(uint(j)) != other.rows[i].Test(uint(j)) {
				return false
			}
		}
	}

	return true
}

// String renders rows as 0/1 lines, for debugging and test diagnostics.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < m.cols; j++ {
			if m.rows[i].Test(uint(j)) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}

	return b.String()
}
