package clifford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qecutil/stabkit/clifford"
	"github.com/qecutil/stabkit/pauli"
)

func mustOp(t *testing.T, spec string, n int) pauli.Operator {
	t.Helper()
	op, err := pauli.ParseSized(spec, n)
	require.NoError(t, err)
	return op
}

func mustGate(t *testing.T, g clifford.Gate, targets ...int) clifford.Op {
	t.Helper()
	op, err := clifford.NewOp(g, targets...)
	require.NoError(t, err)
	return op
}

func TestGate_Names(t *testing.T) {
	assert.Equal(t, "H", clifford.GateH.String())
	assert.Equal(t, "S_DAG", clifford.GateSDag.String())
	assert.Equal(t, "SWAP", clifford.GateSwap.String())
	assert.Equal(t, 1, clifford.GateS.Arity())
	assert.Equal(t, 2, clifford.GateCX.Arity())
	assert.Equal(t, clifford.GateSDag, clifford.GateS.Inverse())
	assert.Equal(t, clifford.GateS, clifford.GateSDag.Inverse())
	assert.Equal(t, clifford.GateCZ, clifford.GateCZ.Inverse())
}

func TestNewOp_Validation(t *testing.T) {
	_, err := clifford.NewOp(clifford.GateH, 0, 1)
	assert.ErrorIs(t, err, clifford.ErrBadGate, "H takes one target")

	_, err = clifford.NewOp(clifford.GateCX, 2)
	assert.ErrorIs(t, err, clifford.ErrBadGate, "CX takes two targets")

	_, err = clifford.NewOp(clifford.GateSwap, 1, 1)
	assert.ErrorIs(t, err, clifford.ErrBadGate, "two-qubit targets must differ")
}

// Conjugation table for the gate generators, signs included.
func TestOpApply_ConjugationTable(t *testing.T) {
	cases := []struct {
		name    string
		op      clifford.Op
		in      string
		want    string
		negated bool
	}{
		{"H X->Z", mustGate(t, clifford.GateH, 0), "X0", "Z0", false},
		{"H Z->X", mustGate(t, clifford.GateH, 0), "Z0", "X0", false},
		{"H Y->-Y", mustGate(t, clifford.GateH, 0), "Y0", "Y0", true},
		{"S X->Y", mustGate(t, clifford.GateS, 0), "X0", "Y0", false},
		{"S Y->-X", mustGate(t, clifford.GateS, 0), "Y0", "X0", true},
		{"S Z fixed", mustGate(t, clifford.GateS, 0), "Z0", "Z0", false},
		{"S_DAG X->-Y", mustGate(t, clifford.GateSDag, 0), "X0", "Y0", true},
		{"S_DAG Y->X", mustGate(t, clifford.GateSDag, 0), "Y0", "X0", false},
		{"CX XI->XX", mustGate(t, clifford.GateCX, 0, 1), "X0", "X0 X1", false},
		{"CX IZ->ZZ", mustGate(t, clifford.GateCX, 0, 1), "Z1", "Z0 Z1", false},
		{"CX ZI fixed", mustGate(t, clifford.GateCX, 0, 1), "Z0", "Z0", false},
		{"CX IX fixed", mustGate(t, clifford.GateCX, 0, 1), "X1", "X1", false},
		{"CX YI->YX", mustGate(t, clifford.GateCX, 0, 1), "Y0", "Y0 X1", false},
		{"CX IY->ZY", mustGate(t, clifford.GateCX, 0, 1), "Y1", "Z0 Y1", false},
		{"CX XY->YZ", mustGate(t, clifford.GateCX, 0, 1), "X0 Y1", "Y0 Z1", false},
		{"CZ XI->XZ", mustGate(t, clifford.GateCZ, 0, 1), "X0", "X0 Z1", false},
		{"CZ IX->ZX", mustGate(t, clifford.GateCZ, 0, 1), "X1", "Z0 X1", false},
		{"CZ ZZ fixed", mustGate(t, clifford.GateCZ, 0, 1), "Z0 Z1", "Z0 Z1", false},
		{"CZ YI->YZ", mustGate(t, clifford.GateCZ, 0, 1), "Y0", "Y0 Z1", false},
		{"SWAP", mustGate(t, clifford.GateSwap, 0, 1), "X0 Z1", "Z0 X1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := mustOp(t, tc.in, 2)
			want := mustOp(t, tc.want, 2)
			if tc.negated {
				want = want.Negated()
			}
			got := tc.op.Apply(in)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestOpApply_PreservesCommutation(t *testing.T) {
	// Conjugation is an automorphism: commutation relations survive any
	// gate.
	gates := []clifford.Op{
		mustGate(t, clifford.GateH, 0),
		mustGate(t, clifford.GateS, 1),
		mustGate(t, clifford.GateSDag, 2),
		mustGate(t, clifford.GateCX, 0, 2),
		mustGate(t, clifford.GateCZ, 1, 2),
		mustGate(t, clifford.GateSwap, 0, 1),
	}
	specs := []string{"X0", "Z0", "Y1", "X0 Z1", "Z1 Z2", "Y0 X1 Z2"}
	for _, g := range gates {
		for i, a := range specs {
			for _, b := range specs[i+1:] {
				pa, pb := mustOp(t, a, 3), mustOp(t, b, 3)
				assert.Equal(t, pa.Commutes(pb), g.Apply(pa).Commutes(g.Apply(pb)),
					"%s broke the relation between %s and %s", g, a, b)
			}
		}
	}
}

func TestOpApply_InverseUndoes(t *testing.T) {
	gates := []clifford.Op{
		mustGate(t, clifford.GateH, 0),
		mustGate(t, clifford.GateS, 0),
		mustGate(t, clifford.GateSDag, 1),
		mustGate(t, clifford.GateCX, 0, 1),
		mustGate(t, clifford.GateCZ, 0, 1),
		mustGate(t, clifford.GateSwap, 0, 1),
	}
	specs := []string{"X0", "Z0", "Y0", "X0 Y1", "Z0 Z1"}
	for _, g := range gates {
		for _, spec := range specs {
			p := mustOp(t, spec, 2)
			back := g.Inverse().Apply(g.Apply(p))
			assert.True(t, back.EqualPattern(p), "%s then its inverse moved %s to %s", g, p, back)
		}
	}
}
