package cli

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qecutil/stabkit/clifford"
	"github.com/qecutil/stabkit/pauli"
)

func (c *CLI) newConjugateCmd() *cobra.Command {
	var (
		circuitText string
		circuitFile string
		invert      bool
	)
	cmd := &cobra.Command{
		Use:   "conjugate <pauli>...",
		Short: "Conjugate Paulis by a Clifford circuit",
		Long: `Push sparse Pauli strings through a Clifford circuit (C P C†).

The circuit is given as text, one gate per line ("H 0", "CX 0 2"), either
inline via --circuit or from a file via --circuit-file. --invert applies
the inverse circuit instead.

Example:
  stabkit conjugate --circuit "H 0
CX 0 1" "Z0" "X0"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConjugate(args, circuitText, circuitFile, invert)
		},
	}
	cmd.Flags().StringVar(&circuitText, "circuit", "", "circuit text, one gate per line")
	cmd.Flags().StringVar(&circuitFile, "circuit-file", "", "file with circuit text")
	cmd.Flags().BoolVar(&invert, "invert", false, "apply the inverse circuit")
	return cmd
}

func (c *CLI) runConjugate(paulis []string, circuitText, circuitFile string, invert bool) error {
	if circuitFile != "" {
		data, err := os.ReadFile(circuitFile)
		if err != nil {
			return pkgerrors.Wrap(err, "read circuit file")
		}
		circuitText = string(data)
	}
	circ, err := clifford.ParseCircuit(circuitText)
	if err != nil {
		return pkgerrors.Wrap(err, "parse circuit")
	}
	if invert {
		circ = circ.Inverted()
	}
	c.log.Debug("conjugating", zap.Int("gates", circ.Len()), zap.Int("paulis", len(paulis)))

	type entry struct {
		Input  string `json:"input"`
		Output string `json:"output"`
		Sign   int    `json:"sign"`
	}
	results := make([]entry, len(paulis))
	for i, spec := range paulis {
		op, err := pauli.Parse(spec)
		if err != nil {
			return pkgerrors.Wrapf(err, "pauli %q", spec)
		}
		out := circ.Apply(op)
		results[i] = entry{Input: op.Sparse(), Output: out.Sparse(), Sign: int(out.Sign())}
	}

	if c.jsonOutput {
		return c.outputJSON(results)
	}
	for _, r := range results {
		sign := "+"
		if r.Sign < 0 {
			sign = "-"
		}
		c.printf("%s -> %s%s\n", orIdentity(r.Input), sign, orIdentity(r.Output))
	}
	return nil
}
