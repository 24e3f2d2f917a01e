package clifford_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qecutil/stabkit/classify"
	"github.com/qecutil/stabkit/clifford"
)

func TestCanonicalize_RepetitionCode(t *testing.T) {
	code, err := clifford.Canonicalize([]string{"Z0 Z1", "Z1 Z2"}, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, code.NumQubits)
	assert.Equal(t, 2, code.NumStabilizers)
	assert.Equal(t, 1, code.NumLogical)
	assert.Equal(t, []string{"Z0 Z1", "Z1 Z2"}, code.Stabilizers)
	assert.Equal(t, []string{"X0", "X2"}, code.Destabilizers)
	assert.Equal(t, []string{"Z1"}, code.LogicalX)
	assert.Equal(t, []string{"X0 X1 X2"}, code.LogicalZ)

	// Diagonalization fixpoint: stabilizer i lands exactly on Z_i.
	assert.Equal(t, []string{"Z0", "Z1"}, code.DiagStabilizers)
	assert.Equal(t, []string{"X0", "X1"}, code.DiagDestabilizers)
}

func TestCanonicalize_DiagonalInputIsFixpoint(t *testing.T) {
	// Already-standard generators must come back untouched with an empty
	// circuit.
	code, err := clifford.Canonicalize([]string{"Z0", "Z1"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z0", "Z1"}, code.DiagStabilizers)
	assert.Equal(t, []string{"X0", "X1"}, code.DiagDestabilizers)
	assert.Equal(t, 0, code.Circuit.Len())
}

func TestCanonicalize_BellPair(t *testing.T) {
	code, err := clifford.Canonicalize([]string{"X0 X1", "Z0 Z1"}, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, code.NumLogical)
	assert.Empty(t, code.LogicalX)
	assert.Equal(t, []string{"Z0", "Z1"}, code.DiagStabilizers)
	assert.Equal(t, []string{"X0", "X1"}, code.DiagDestabilizers)
	require.NoError(t, code.Tableau.Verify())
}

func TestCanonicalize_FiveQubitCode(t *testing.T) {
	stabs := []string{
		"X0 Z1 Z2 X3",
		"X1 Z2 Z3 X4",
		"X0 X2 Z3 Z4",
		"Z0 X1 X3 Z4",
	}
	code, err := clifford.Canonicalize(stabs, 5)
	require.NoError(t, err)

	assert.Equal(t, 4, code.NumStabilizers)
	assert.Equal(t, 1, code.NumLogical)
	require.Len(t, code.LogicalX, 1)
	require.Len(t, code.LogicalZ, 1)

	for i := range stabs {
		assert.Equal(t, fmt.Sprintf("Z%d", i), code.DiagStabilizers[i])
		assert.Equal(t, fmt.Sprintf("X%d", i), code.DiagDestabilizers[i])
	}
	require.NoError(t, code.Tableau.Verify())
}

// The reported structure must agree with the classifier: destabilizers
// anticommute, logicals are logical, stabilizer products are stabilizers.
func TestCanonicalize_SelfConsistency(t *testing.T) {
	stabs := []string{"Z0 Z1", "Z1 Z2", "X0 X1 X2 X3"}
	code, err := clifford.Canonicalize(stabs, 4)
	require.NoError(t, err)

	for _, d := range code.Destabilizers {
		res, err := classify.Classify(d, stabs, code.NumQubits)
		require.NoError(t, err)
		assert.Equal(t, classify.StatusAnticommuting, res.Status, "destabilizer %s", d)
	}
	for _, l := range append(append([]string{}, code.LogicalX...), code.LogicalZ...) {
		res, err := classify.Classify(l, stabs, code.NumQubits)
		require.NoError(t, err)
		assert.Equal(t, classify.StatusLogical, res.Status, "logical %s", l)
	}
	for _, s := range stabs {
		res, err := classify.Classify(s, stabs, code.NumQubits)
		require.NoError(t, err)
		assert.Equal(t, classify.StatusStabilizer, res.Status)
	}
}

func TestCanonicalize_Errors(t *testing.T) {
	_, err := clifford.Canonicalize(nil, 3)
	assert.ErrorIs(t, err, clifford.ErrNoStabilizers)

	_, err = clifford.Canonicalize([]string{"Z0", "Z1", "Z2"}, 2)
	assert.ErrorIs(t, err, clifford.ErrBadQubitCount, "more generators than qubits")

	_, err = clifford.Canonicalize([]string{"X0", "Z0"}, 2)
	assert.ErrorIs(t, err, clifford.ErrInvalidFrame, "anticommuting generators")

	// With only one qubit the same generators trip the count guard first.
	_, err = clifford.Canonicalize([]string{"X0", "Z0"}, 1)
	assert.ErrorIs(t, err, clifford.ErrBadQubitCount)

	_, err = clifford.Canonicalize([]string{"Z0 Z1", "Z1 Z2", "Z0 Z2"}, 3)
	assert.ErrorIs(t, err, clifford.ErrDependentGenerators)
}
