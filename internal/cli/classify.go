package cli

import (
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qecutil/stabkit/classify"
)

func (c *CLI) newClassifyCmd() *cobra.Command {
	var (
		stabilizers []string
		numQubits   int
	)
	cmd := &cobra.Command{
		Use:   "classify <candidate>",
		Short: "Classify a Pauli against a stabilizer generator set",
		Long: `Classify a sparse Pauli string against stabilizer generators.

The verdict is one of:
  logical        commutes with every generator, outside their span
  anticommuting  anticommutes with at least one generator
  stabilizer     a product of the generators (decomposition reported)

Example:
  stabkit classify "X0 X1 X2" -s "Z0 Z1" -s "Z1 Z2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runClassify(args[0], stabilizers, numQubits)
		},
	}
	cmd.Flags().StringArrayVarP(&stabilizers, "stabilizer", "s", nil, "stabilizer generator (repeatable)")
	cmd.Flags().IntVarP(&numQubits, "qubits", "n", 0, "qubit count (0: infer from inputs)")
	return cmd
}

func (c *CLI) runClassify(candidate string, stabilizers []string, numQubits int) error {
	c.log.Debug("classifying",
		zap.String("candidate", candidate),
		zap.Strings("stabilizers", stabilizers),
		zap.Int("qubits", numQubits))

	res, err := classify.Classify(candidate, stabilizers, numQubits)
	if err != nil {
		return pkgerrors.Wrap(err, "classify")
	}

	if c.jsonOutput {
		return c.outputJSON(res)
	}

	c.printf("status: %s\n", res.Status)
	switch res.Status {
	case classify.StatusAnticommuting:
		c.printf("anticommutes with generators: %s\n", joinInts(res.AnticommutingWith))
	case classify.StatusStabilizer:
		c.printf("generator indices: %s\n", joinInts(res.GeneratorIndices))
		if res.ProductSparse == "" {
			c.println("product: (identity)")
		} else {
			c.printf("product: %s\n", res.ProductSparse)
		}
	}
	if res.Note != "" {
		c.printf("note: %s\n", res.Note)
	}
	return nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
