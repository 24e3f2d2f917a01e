package clifford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qecutil/stabkit/clifford"
)

func TestCircuit_ApplyOrder(t *testing.T) {
	// H then S on qubit 0: X -> Z -> Z, Z -> X -> Y.
	c := clifford.NewCircuit()
	require.NoError(t, c.Append(clifford.GateH, 0))
	require.NoError(t, c.Append(clifford.GateS, 0))

	got := c.Apply(mustOp(t, "Z0", 1))
	assert.True(t, got.Equal(mustOp(t, "Y0", 1)), "got %s", got)

	got = c.Apply(mustOp(t, "X0", 1))
	assert.True(t, got.Equal(mustOp(t, "Z0", 1)), "got %s", got)
}

func TestCircuit_Inverted(t *testing.T) {
	c := clifford.NewCircuit()
	require.NoError(t, c.Append(clifford.GateH, 0))
	require.NoError(t, c.Append(clifford.GateS, 1))
	require.NoError(t, c.Append(clifford.GateCX, 0, 1))
	require.NoError(t, c.Append(clifford.GateCZ, 1, 2))

	inv := c.Inverted()
	require.Equal(t, c.Len(), inv.Len())
	assert.Equal(t, "CZ 1 2", inv.Ops()[0].String())
	assert.Equal(t, "S_DAG 1", inv.Ops()[2].String())

	for _, spec := range []string{"X0", "Y1", "Z2", "X0 Z1 Y2"} {
		p := mustOp(t, spec, 3)
		back := inv.Apply(c.Apply(p))
		assert.True(t, back.EqualPattern(p), "%s came back as %s", p, back)
	}
}

func TestCircuit_String_ParseRoundTrip(t *testing.T) {
	c := clifford.NewCircuit()
	require.NoError(t, c.Append(clifford.GateH, 0))
	require.NoError(t, c.Append(clifford.GateSDag, 2))
	require.NoError(t, c.Append(clifford.GateCX, 0, 2))
	require.NoError(t, c.Append(clifford.GateSwap, 1, 2))

	text := c.String()
	assert.Equal(t, "H 0\nS_DAG 2\nCX 0 2\nSWAP 1 2", text)

	parsed, err := clifford.ParseCircuit(text)
	require.NoError(t, err)
	assert.Equal(t, c.Ops(), parsed.Ops())
}

func TestParseCircuit_AliasesAndComments(t *testing.T) {
	c, err := clifford.ParseCircuit("# prep\nCNOT 0 1\n\nsdg 1\n")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "CX 0 1", c.Ops()[0].String())
	assert.Equal(t, "S_DAG 1", c.Ops()[1].String())
}

func TestParseCircuit_Errors(t *testing.T) {
	_, err := clifford.ParseCircuit("T 0")
	assert.ErrorIs(t, err, clifford.ErrBadGate)

	_, err = clifford.ParseCircuit("CX 0")
	assert.ErrorIs(t, err, clifford.ErrBadGate)

	_, err = clifford.ParseCircuit("H x")
	assert.ErrorIs(t, err, clifford.ErrBadGate)
}

func TestCircuit_Tableau(t *testing.T) {
	c := clifford.NewCircuit()
	require.NoError(t, c.Append(clifford.GateH, 0))
	require.NoError(t, c.Append(clifford.GateCX, 0, 1))

	tab, err := c.Tableau(2)
	require.NoError(t, err)
	require.NoError(t, tab.Verify())

	// H then CX: X0 -> Z0 -> Z0; Z0 -> X0 -> X0 X1.
	assert.True(t, tab.XOutput(0).Equal(mustOp(t, "Z0", 2)))
	assert.True(t, tab.ZOutput(0).Equal(mustOp(t, "X0 X1", 2)))
	assert.True(t, tab.ZOutput(1).Equal(mustOp(t, "Z0 Z1", 2)))

	_, err = c.Tableau(1)
	assert.ErrorIs(t, err, clifford.ErrBadQubitCount, "register smaller than the circuit's support")
}
