// Package cli provides the stabkit command-line interface: stabilizer
// classification, Clifford synthesis, code canonicalization, and circuit
// conjugation over sparse Pauli strings.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qecutil/stabkit/classify"
	"github.com/qecutil/stabkit/clifford"
	"github.com/qecutil/stabkit/frame"
	"github.com/qecutil/stabkit/pauli"
)

// Exit codes.
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitSearch     = 2
	ExitInternal   = 3
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// CLI holds the command-line interface state.
type CLI struct {
	rootCmd *cobra.Command
	log     *zap.Logger

	// Global flags
	jsonOutput bool
	quiet      bool
	debug      bool
}

// New creates a new CLI instance.
func New() *CLI {
	c := &CLI{log: zap.NewNop()}
	c.rootCmd = c.newRootCmd()
	return c
}

// Execute runs the CLI and returns the process exit code.
func (c *CLI) Execute() int {
	defer func() { _ = c.log.Sync() }()
	if err := c.rootCmd.Execute(); err != nil {
		c.errorf("stabkit: %v\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stabkit",
		Short: "stabkit - binary symplectic algebra for stabilizer codes",
		Long: `stabkit works with Pauli operators in sparse notation ("X1 Z3") over the
binary symplectic representation.

It provides:
  • classify     - logical / anticommuting / stabilizer verdicts
  • synthesize   - Cliffords from stabilizer-destabilizer pairs
  • canonicalize - destabilizers, logicals, and a diagonalizing circuit
  • conjugate    - push Paulis through Clifford circuits

Phases are tracked up to ±1; patterns are exact.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initLogger()
		},
	}

	cmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "machine-readable JSON output")
	cmd.PersistentFlags().BoolVar(&c.quiet, "quiet", false, "suppress non-essential output")
	cmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "verbose debug logs")

	cmd.AddCommand(c.newClassifyCmd())
	cmd.AddCommand(c.newSynthesizeCmd())
	cmd.AddCommand(c.newCanonicalizeCmd())
	cmd.AddCommand(c.newConjugateCmd())
	cmd.AddCommand(c.newVersionCmd())

	return cmd
}

func (c *CLI) initLogger() error {
	if !c.debug {
		return nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return pkgerrors.Wrap(err, "init debug logger")
	}
	c.log = log
	return nil
}

// exitCode maps error classes to process exit codes.
func exitCode(err error) int {
	switch {
	case pkgerrors.Is(err, frame.ErrSearchExhausted),
		pkgerrors.Is(err, clifford.ErrNoDestabilizer):
		return ExitSearch
	case pkgerrors.Is(err, pauli.ErrBadToken),
		pkgerrors.Is(err, pauli.ErrConflictingToken),
		pkgerrors.Is(err, pauli.ErrQubitRange),
		pkgerrors.Is(err, pauli.ErrBadSize),
		pkgerrors.Is(err, classify.ErrBadCandidate),
		pkgerrors.Is(err, classify.ErrBadStabilizer),
		pkgerrors.Is(err, classify.ErrQubitCount),
		pkgerrors.Is(err, clifford.ErrBadQubitCount),
		pkgerrors.Is(err, clifford.ErrBadDirection),
		pkgerrors.Is(err, clifford.ErrBadTargets),
		pkgerrors.Is(err, clifford.ErrInvalidFrame),
		pkgerrors.Is(err, clifford.ErrNoStabilizers),
		pkgerrors.Is(err, clifford.ErrDependentGenerators),
		pkgerrors.Is(err, clifford.ErrBadGate),
		pkgerrors.Is(err, frame.ErrBadWeight):
		return ExitValidation
	default:
		return ExitInternal
	}
}

// Output helpers.

func (c *CLI) outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *CLI) printf(format string, args ...interface{}) {
	if !c.quiet {
		fmt.Printf(format, args...)
	}
}

func (c *CLI) println(args ...interface{}) {
	if !c.quiet {
		fmt.Println(args...)
	}
}

func (c *CLI) errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version info",
		Run: func(cmd *cobra.Command, args []string) {
			c.printf("stabkit %s (commit: %s)\n", Version, GitCommit)
		},
	}
}
