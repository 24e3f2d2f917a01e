package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qecutil/stabkit/pauli"
)

// TestParse_Canonicalization verifies that token order and separators are
// ignored and that output is index-ascending.
func TestParse_Canonicalization(t *testing.T) {
	cases := []struct {
		name string
		spec string
		want string
	}{
		{"sorted input", "X1 Z3", "X1 Z3"},
		{"unsorted input", "X3 X1 X2", "X1 X2 X3"},
		{"star separators", "Z0*Z2 * X5", "Z0 Z2 X5"},
		{"lower case", "y4 x0", "X0 Y4"},
		{"duplicate same letter", "X1 X1 Z0", "Z0 X1"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pauli.Canonical(tc.spec)
			require.NoError(t, err, "canonicalization must accept %q", tc.spec)
			assert.Equal(t, tc.want, got, "canonical form of %q", tc.spec)
		})
	}
}

// TestParse_Idempotent verifies that re-parsing the canonical form yields a
// bit-identical operator.
func TestParse_Idempotent(t *testing.T) {
	for _, spec := range []string{"X3 X1 X2", "Y0 Z7", "Z0 X1 X2 Z3 Z4", ""} {
		op, err := pauli.Parse(spec)
		require.NoError(t, err)

		again, err := pauli.Parse(op.Sparse())
		require.NoError(t, err)
		assert.True(t, op.Equal(again), "round-trip of %q must be bit-identical", spec)
		assert.Equal(t, op.Sparse(), again.Sparse(), "canonical form must be a fixpoint")
	}
}

// TestParse_Errors covers the malformed-input taxonomy.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		spec string
		want error
	}{
		{"bad letter", "W3", pauli.ErrBadToken},
		{"missing index", "X", pauli.ErrBadToken},
		{"non-digit index", "X1a", pauli.ErrBadToken},
		{"signed index", "X+1", pauli.ErrBadToken},
		{"conflicting ops", "X1 Z1", pauli.ErrConflictingToken},
		{"conflicting case-folded", "x2 Y2", pauli.ErrConflictingToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pauli.Parse(tc.spec)
			assert.ErrorIs(t, err, tc.want, "spec %q", tc.spec)
		})
	}
}

// TestParseSized_RangeChecks verifies the fixed-length entry point.
func TestParseSized_RangeChecks(t *testing.T) {
	op, err := pauli.ParseSized("X1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, op.Qubits(), "explicit size wins over inferred size")
	assert.Equal(t, "X1", op.Sparse())

	_, err = pauli.ParseSized("X5", 3)
	assert.ErrorIs(t, err, pauli.ErrQubitRange, "index beyond size must be rejected")

	_, err = pauli.ParseSized("X0", -1)
	assert.ErrorIs(t, err, pauli.ErrBadSize, "negative size must be rejected")
}
