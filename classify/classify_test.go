package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qecutil/stabkit/classify"
)

// Two-qubit repetition-style generators used across the table tests.
var bellGens = []string{"X0 X1", "Z0 Z1"}

func TestClassify_Stabilizer(t *testing.T) {
	res, err := classify.Classify("X0 X1", bellGens, 0)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusStabilizer, res.Status)
	assert.Equal(t, []int{0}, res.GeneratorIndices)
	assert.Equal(t, "X0 X1", res.ProductSparse)
}

func TestClassify_StabilizerProduct(t *testing.T) {
	// Y0 Y1 has the pattern of (X0 X1)·(Z0 Z1); phase is ignored.
	res, err := classify.Classify("Y0 Y1", bellGens, 0)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusStabilizer, res.Status)
	assert.Equal(t, []int{0, 1}, res.GeneratorIndices)
	assert.Equal(t, "Y0 Y1", res.ProductSparse)
}

func TestClassify_Anticommuting(t *testing.T) {
	res, err := classify.Classify("Z0", bellGens, 0)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusAnticommuting, res.Status)
	assert.Equal(t, []int{0}, res.AnticommutingWith, "Z0 anticommutes with X0 X1 only")
}

func TestClassify_Logical(t *testing.T) {
	// Three-qubit repetition code: X0 X1 X2 commutes with both Z-type
	// generators but is not a product of them.
	gens := []string{"Z0 Z1", "Z1 Z2"}
	res, err := classify.Classify("X0 X1 X2", gens, 0)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusLogical, res.Status)
	assert.Empty(t, res.GeneratorIndices)
	assert.Empty(t, res.AnticommutingWith)
}

func TestClassify_FiveQubitCode(t *testing.T) {
	gens := []string{
		"X0 Z1 Z2 X3",
		"X1 Z2 Z3 X4",
		"X0 X2 Z3 Z4",
		"Z0 X1 X3 Z4",
	}

	// Logical X of the [[5,1,3]] code.
	res, err := classify.Classify("X0 X1 X2 X3 X4", gens, 5)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusLogical, res.Status)

	// A single generator is of course in the span.
	res, err = classify.Classify("X1 Z2 Z3 X4", gens, 5)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusStabilizer, res.Status)
	assert.Equal(t, []int{1}, res.GeneratorIndices)
}

func TestClassify_NoStabilizers(t *testing.T) {
	res, err := classify.Classify("", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusStabilizer, res.Status, "the identity is trivially a stabilizer")
	assert.Empty(t, res.ProductSparse)

	res, err = classify.Classify("X0", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusLogical, res.Status, "any non-identity is logical for the trivial code")
}

func TestClassify_IdentityCandidate(t *testing.T) {
	res, err := classify.Classify("", bellGens, 0)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusStabilizer, res.Status)
	assert.Empty(t, res.GeneratorIndices, "the empty product suffices for the identity")
}

func TestClassify_InferredQubitCount(t *testing.T) {
	// The candidate mentions qubit 4; inference must size the register to 5
	// even though the generators stop at qubit 1.
	res, err := classify.Classify("Z4", bellGens, 0)
	require.NoError(t, err)
	assert.Equal(t, classify.StatusLogical, res.Status)
}

func TestClassify_Errors(t *testing.T) {
	_, err := classify.Classify("Q0", bellGens, 0)
	assert.ErrorIs(t, err, classify.ErrBadCandidate)

	_, err = classify.Classify("X0", []string{"X0 W1"}, 0)
	assert.ErrorIs(t, err, classify.ErrBadStabilizer)

	_, err = classify.Classify("X5", bellGens, 2)
	assert.ErrorIs(t, err, classify.ErrQubitCount)

	_, err = classify.Classify("X0", []string{"Z3"}, 2)
	assert.ErrorIs(t, err, classify.ErrQubitCount)
}
