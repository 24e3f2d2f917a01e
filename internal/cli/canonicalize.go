package cli

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qecutil/stabkit/clifford"
)

func (c *CLI) newCanonicalizeCmd() *cobra.Command {
	var numQubits int
	cmd := &cobra.Command{
		Use:   "canonicalize <stabilizer>...",
		Short: "Canonicalize a stabilizer code",
		Long: `Compute the canonical structure of a stabilizer code: destabilizer
partners, logical operator pairs, and a Clifford circuit mapping
stabilizer i to Z_i and destabilizer i to X_i.

Example:
  stabkit canonicalize "Z0 Z1" "Z1 Z2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCanonicalize(args, numQubits)
		},
	}
	cmd.Flags().IntVarP(&numQubits, "qubits", "n", 0, "qubit count (0: infer from generators)")
	return cmd
}

func (c *CLI) runCanonicalize(stabilizers []string, numQubits int) error {
	c.log.Debug("canonicalizing",
		zap.Strings("stabilizers", stabilizers),
		zap.Int("qubits", numQubits))

	code, err := clifford.Canonicalize(stabilizers, numQubits)
	if err != nil {
		return pkgerrors.Wrap(err, "canonicalize")
	}

	if c.jsonOutput {
		gates := make([]map[string]interface{}, 0, code.Circuit.Len())
		for _, op := range code.Circuit.Ops() {
			gates = append(gates, map[string]interface{}{
				"gate":    op.Gate.String(),
				"targets": op.Targets(),
			})
		}
		return c.outputJSON(map[string]interface{}{
			"num_qubits":                 code.NumQubits,
			"num_stabilizers":            code.NumStabilizers,
			"num_logical":                code.NumLogical,
			"stabilizers":                code.Stabilizers,
			"destabilizers":              code.Destabilizers,
			"logical_x":                  code.LogicalX,
			"logical_z":                  code.LogicalZ,
			"circuit":                    gates,
			"diagonalized_stabilizers":   code.DiagStabilizers,
			"diagonalized_destabilizers": code.DiagDestabilizers,
		})
	}

	c.printf("[[%d, %d]] code (%d stabilizers, %d logical)\n",
		code.NumQubits, code.NumLogical, code.NumStabilizers, code.NumLogical)
	for i := range code.Stabilizers {
		c.printf("  S%d: %-20s D%d: %s\n", i, code.Stabilizers[i], i, code.Destabilizers[i])
	}
	for i := range code.LogicalX {
		c.printf("  LX%d: %-19s LZ%d: %s\n", i, code.LogicalX[i], i, code.LogicalZ[i])
	}
	c.printf("diagonalizing circuit (%d gates):\n", code.Circuit.Len())
	for _, op := range code.Circuit.Ops() {
		c.printf("  %s\n", op)
	}
	c.printf("diagonalized stabilizers:   %v\n", code.DiagStabilizers)
	c.printf("diagonalized destabilizers: %v\n", code.DiagDestabilizers)
	return nil
}
