package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qecutil/stabkit/pauli"
)

// mustParse is a test helper; the spec literals below are all well-formed.
func mustParse(t *testing.T, spec string) pauli.Operator {
	t.Helper()
	op, err := pauli.Parse(spec)
	require.NoError(t, err, "parse %q", spec)

	return op
}

// TestCommutes_Symmetry checks commutes(a,b) == commutes(b,a) across a grid
// of operators, including mismatched lengths.
func TestCommutes_Symmetry(t *testing.T) {
	specs := []string{"", "X0", "Z0", "Y0", "X0 Z1", "Z0 Z1 Z2", "Y0 Y1 Z3 Z4", "X5"}
	for _, sa := range specs {
		for _, sb := range specs {
			a, b := mustParse(t, sa), mustParse(t, sb)
			assert.Equal(t, a.Commutes(b), b.Commutes(a), "symmetry for %q vs %q", sa, sb)
		}
	}
}

// TestCommutes_KnownPairs pins the symplectic inner product on canonical
// pairs.
func TestCommutes_KnownPairs(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"X0", "Z0", false},
		{"X0", "Z1", true},
		{"Y0", "X0", false},
		{"Y0", "Y0", true},
		{"X0 X1", "Z0 Z1", true},
		{"X0 X1", "Z0", false},
		{"Z1 X3", "Z3", false},
		{"", "Z0", true},
	}
	for _, tc := range cases {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		assert.Equal(t, tc.want, a.Commutes(b), "%q vs %q", tc.a, tc.b)
	}
}

// TestMul_PatternAndSign pins products under the real-sign convention
// (±i factors discarded).
func TestMul_PatternAndSign(t *testing.T) {
	cases := []struct {
		a, b     string
		wantOp   string
		wantSign int8
	}{
		{"X0", "Z0", "Y0", +1},
		{"Z0", "X0", "Y0", -1},
		{"X0", "Y0", "Z0", +1},
		{"Y0", "X0", "Z0", -1},
		{"Y0", "Z0", "X0", +1},
		{"Z0", "Y0", "X0", -1},
		{"X0", "X0", "", +1},
		{"X0 Z1", "Z1", "X0", +1},
		{"Z0 Z1", "Z1 Z2", "Z0 Z2", +1},
	}
	for _, tc := range cases {
		got := mustParse(t, tc.a).Mul(mustParse(t, tc.b))
		assert.Equal(t, tc.wantOp, got.Sparse(), "pattern of %q * %q", tc.a, tc.b)
		assert.Equal(t, tc.wantSign, got.Sign(), "sign of %q * %q", tc.a, tc.b)
	}
}

// TestMul_LengthPadding verifies identity padding of the shorter operand.
func TestMul_LengthPadding(t *testing.T) {
	short := mustParse(t, "X0")
	long := mustParse(t, "Z4")

	got := short.Mul(long)
	assert.Equal(t, 5, got.Qubits(), "product adopts the longer length")
	assert.Equal(t, "X0 Z4", got.Sparse())
}

// TestAlgebra_CrossImplementation drives Bitwise and Table over the same
// operand grid; the reference table path is the oracle for the word-parallel
// production path.
func TestAlgebra_CrossImplementation(t *testing.T) {
	specs := []string{"", "X0", "Z0", "Y0", "X0 Z1", "Y0 Y1", "Z0 X1 Y2", "X0 X1 X2 X3", "Y2 Z3"}
	bit, tab := pauli.Bitwise{}, pauli.Table{}
	for _, sa := range specs {
		for _, sb := range specs {
			a, b := mustParse(t, sa), mustParse(t, sb)

			wantMul := tab.Mul(a, b)
			gotMul := bit.Mul(a, b)
			assert.True(t, wantMul.Equal(gotMul),
				"Mul(%q,%q): bitwise %s vs table %s", sa, sb, gotMul, wantMul)

			assert.Equal(t, tab.Commutes(a, b), bit.Commutes(a, b),
				"Commutes(%q,%q)", sa, sb)
		}
	}
}

// TestSymplectic_RoundTrip verifies the 2n-bit vector view and its inverse.
func TestSymplectic_RoundTrip(t *testing.T) {
	for _, spec := range []string{"", "X0", "Y1 Z2", "Z0 X1 X2 Z3 Z4"} {
		op := mustParse(t, spec)
		back, err := pauli.FromSymplectic(op.Symplectic(), op.Qubits())
		require.NoError(t, err)
		assert.True(t, op.EqualPattern(back), "symplectic round-trip of %q", spec)
	}
}

// TestOperator_WeightAndIdentity covers the small observers.
func TestOperator_WeightAndIdentity(t *testing.T) {
	id, err := pauli.New(3)
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())
	assert.Equal(t, 0, id.Weight())

	op := mustParse(t, "Y0 Y1 Z3 Z4")
	assert.False(t, op.IsIdentity())
	assert.Equal(t, 4, op.Weight())
	assert.Equal(t, pauli.Y, op.At(0))
	assert.Equal(t, pauli.I, op.At(2))
	assert.Equal(t, pauli.Z, op.At(4))
	assert.Equal(t, pauli.I, op.At(99), "out-of-range reads as identity")

	neg := op.Negated()
	assert.Equal(t, int8(-1), neg.Sign())
	assert.True(t, neg.EqualPattern(op))
	assert.False(t, neg.Equal(op), "Equal includes the sign")

	_, err = pauli.New(-1)
	assert.ErrorIs(t, err, pauli.ErrBadSize)
}
