package cli

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qecutil/stabkit/clifford"
)

func (c *CLI) newSynthesizeCmd() *cobra.Command {
	var (
		stabilizers   []string
		destabilizers []string
		targets       []int
		numQubits     int
		direction     string
		maxWeight     int
	)
	cmd := &cobra.Command{
		Use:   "synthesize",
		Short: "Synthesize a Clifford from stabilizer-destabilizer pairs",
		Long: `Build a Clifford consistent with stabilizer/destabilizer pairs.

Pair i is (-s flag i, -d flag i); each pair must anticommute within itself
and commute with every other pair. By default the Clifford C maps pair i to
the standard frame: C S_i C† = Z_i, C D_i C† = X_i. Use
--direction standard_to_pairs for the inverse mapping.

Example:
  stabkit synthesize -n 5 -s "Z1 X3" -d "Z3" -s "Z0 Z2 X4" -d "X2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSynthesize(stabilizers, destabilizers, targets, numQubits, direction, maxWeight)
		},
	}
	cmd.Flags().StringArrayVarP(&stabilizers, "stabilizer", "s", nil, "stabilizer of pair i (repeatable)")
	cmd.Flags().StringArrayVarP(&destabilizers, "destabilizer", "d", nil, "destabilizer of pair i (repeatable)")
	cmd.Flags().IntSliceVarP(&targets, "targets", "t", nil, "target qubit per pair (default 0,1,...)")
	cmd.Flags().IntVarP(&numQubits, "qubits", "n", 0, "qubit count (required)")
	cmd.Flags().StringVar(&direction, "direction", string(clifford.PairsToStandard),
		"pairs_to_standard or standard_to_pairs")
	cmd.Flags().IntVar(&maxWeight, "max-weight", clifford.DefaultMaxWeight,
		"max Pauli weight enumerated during frame completion")
	return cmd
}

func (c *CLI) runSynthesize(stabilizers, destabilizers []string, targets []int, numQubits int, direction string, maxWeight int) error {
	if len(stabilizers) != len(destabilizers) {
		return pkgerrors.Wrapf(clifford.ErrInvalidFrame,
			"%d stabilizers vs %d destabilizers", len(stabilizers), len(destabilizers))
	}
	pairs := make([]clifford.Pair, len(stabilizers))
	for i := range stabilizers {
		pairs[i] = clifford.Pair{Stabilizer: stabilizers[i], Destabilizer: destabilizers[i]}
	}

	opts := []clifford.Option{
		clifford.WithDirection(clifford.Direction(direction)),
		clifford.WithMaxWeight(maxWeight),
	}
	if targets != nil {
		opts = append(opts, clifford.WithTargetQubits(targets))
	}

	c.log.Debug("synthesizing",
		zap.Int("pairs", len(pairs)),
		zap.Int("qubits", numQubits),
		zap.String("direction", direction))

	res, err := clifford.Synthesize(pairs, numQubits, opts...)
	if err != nil {
		return pkgerrors.Wrap(err, "synthesize")
	}

	if c.jsonOutput {
		return c.outputJSON(synthesisJSON(res))
	}

	c.printf("direction: %s\n", direction)
	c.printf("target qubits: %s\n", joinInts(res.TargetQubits))
	c.println("completed frame:")
	for q := range res.XImages {
		c.printf("  qubit %d: X -> %s, Z -> %s\n", q, orIdentity(res.XImages[q]), orIdentity(res.ZImages[q]))
	}
	c.printf("circuit (%d gates):\n", res.Circuit.Len())
	for _, op := range res.Circuit.Ops() {
		c.printf("  %s\n", op)
	}
	return nil
}

// synthesisJSON is the machine-readable shape of a synthesis result: the
// tableau images, the gate list, the resolved targets, and the completed
// frame as diagnostics.
func synthesisJSON(res *clifford.Synthesis) map[string]interface{} {
	gates := make([]map[string]interface{}, 0, res.Circuit.Len())
	for _, op := range res.Circuit.Ops() {
		gates = append(gates, map[string]interface{}{
			"gate":    op.Gate.String(),
			"targets": op.Targets(),
		})
	}
	n := res.Tableau.Qubits()
	tabX := make([]string, n)
	tabZ := make([]string, n)
	for q := 0; q < n; q++ {
		tabX[q] = res.Tableau.XOutput(q).Sparse()
		tabZ[q] = res.Tableau.ZOutput(q).Sparse()
	}
	return map[string]interface{}{
		"tableau": map[string]interface{}{
			"x_images": tabX,
			"z_images": tabZ,
		},
		"circuit":       gates,
		"target_qubits": res.TargetQubits,
		"diagnostics": map[string]interface{}{
			"xs_sparse": res.XImages,
			"zs_sparse": res.ZImages,
		},
	}
}

func orIdentity(sparse string) string {
	if sparse == "" {
		return "(identity)"
	}
	return sparse
}
