package clifford

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/qecutil/stabkit/frame"
	"github.com/qecutil/stabkit/gf2"
	"github.com/qecutil/stabkit/pauli"
)

// Code is the canonical structure of a stabilizer code: the generators,
// their destabilizer partners, the logical operator pairs, and a Clifford
// circuit diagonalizing the code into standard form (stabilizer i → Z_i,
// destabilizer i → X_i).
//
// All operator strings use sparse notation with indices ascending.
type Code struct {
	NumQubits      int `json:"num_qubits"`
	NumStabilizers int `json:"num_stabilizers"`
	NumLogical     int `json:"num_logical"`

	Stabilizers   []string `json:"stabilizers"`
	Destabilizers []string `json:"destabilizers"`
	LogicalX      []string `json:"logical_x"`
	LogicalZ      []string `json:"logical_z"`

	Tableau *Tableau `json:"-"`
	Circuit *Circuit `json:"-"`

	// DiagStabilizers and DiagDestabilizers are the generators after
	// conjugation by the diagonalizing Clifford; on success they read
	// "Z0", "Z1", … and "X0", "X1", ….
	DiagStabilizers   []string `json:"diagonalized_stabilizers"`
	DiagDestabilizers []string `json:"diagonalized_destabilizers"`
}

// Canonicalize computes the full canonical structure of the stabilizer code
// generated by the given sparse Pauli strings.
//
// numQubits fixes the register size; when ≤ 0 it is inferred from the
// highest index present. The generators must be mutually commuting and
// independent.
//
// Destabilizers are found by canonical enumeration: for each generator, the
// first operator (ascending weight, canonical order) that anticommutes with
// it while commuting with every other generator and every earlier
// destabilizer. Logical pairs come from completing the symplectic frame the
// stabilizer/destabilizer pairs define; qubits k..n-1 of the completed
// frame carry the logical X/Z pairs.
//
// Errors: ErrNoStabilizers, ErrBadQubitCount, ErrInvalidFrame (generators
// that do not commute), ErrDependentGenerators, ErrNoDestabilizer, pauli
// parse errors.
func Canonicalize(stabilizers []string, numQubits int) (*Code, error) {
	if len(stabilizers) == 0 {
		return nil, ErrNoStabilizers
	}

	n := numQubits
	if n <= 0 {
		for _, s := range stabilizers {
			op, err := pauli.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("stabilizer %q: %w", s, err)
			}
			if op.Qubits() > n {
				n = op.Qubits()
			}
		}
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: cannot canonicalize a zero-qubit code", ErrBadQubitCount)
	}

	k := len(stabilizers)
	if k > n {
		return nil, fmt.Errorf("%w: %d generators on %d qubits", ErrBadQubitCount, k, n)
	}

	stabs := make([]pauli.Operator, k)
	stabSparse := make([]string, k)
	for i, s := range stabilizers {
		op, err := pauli.ParseSized(s, n)
		if err != nil {
			return nil, fmt.Errorf("stabilizer %q: %w", s, err)
		}
		stabs[i] = op
		stabSparse[i] = op.Sparse()
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if !stabs[i].Commutes(stabs[j]) {
				return nil, fmt.Errorf("%w: generators %d and %d anticommute", ErrInvalidFrame, i, j)
			}
		}
	}
	if err := checkIndependent(stabs, n); err != nil {
		return nil, err
	}

	destabs, err := findDestabilizers(stabs, n)
	if err != nil {
		return nil, err
	}

	// Logical pairs: complete the frame pinned with (destab_i, stab_i) on
	// qubit i; the fill on qubits k..n-1 is exactly the logical algebra.
	f, err := frame.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		if err := f.SetPair(i, destabs[i], stabs[i]); err != nil {
			return nil, err
		}
	}
	if err := f.Complete(n); err != nil {
		return nil, err
	}

	logicalX := make([]string, 0, n-k)
	logicalZ := make([]string, 0, n-k)
	for q := k; q < n; q++ {
		lx, _ := f.XImage(q)
		lz, _ := f.ZImage(q)
		logicalX = append(logicalX, lx.Sparse())
		logicalZ = append(logicalZ, lz.Sparse())
	}

	circuit, diagStabs, diagDestabs, err := diagonalize(stabs, destabs, n)
	if err != nil {
		return nil, err
	}
	tableau, err := circuit.Tableau(n)
	if err != nil {
		return nil, err
	}

	code := &Code{
		NumQubits:         n,
		NumStabilizers:    k,
		NumLogical:        n - k,
		Stabilizers:       stabSparse,
		Destabilizers:     sparseAll(destabs),
		LogicalX:          logicalX,
		LogicalZ:          logicalZ,
		Tableau:           tableau,
		Circuit:           circuit,
		DiagStabilizers:   sparseAll(diagStabs),
		DiagDestabilizers: sparseAll(diagDestabs),
	}
	return code, nil
}

// findDestabilizers picks, for each generator, the canonical first operator
// that anticommutes with it and commutes with everything else settled so
// far.
func findDestabilizers(stabs []pauli.Operator, n int) ([]pauli.Operator, error) {
	k := len(stabs)
	destabs := make([]pauli.Operator, 0, k)
	for i := 0; i < k; i++ {
		var found pauli.Operator
		ok := false
		frame.Each(n, n, func(cand pauli.Operator) bool {
			if cand.Commutes(stabs[i]) {
				return true
			}
			for j := 0; j < k; j++ {
				if j != i && !cand.Commutes(stabs[j]) {
					return true
				}
			}
			for _, d := range destabs {
				if !cand.Commutes(d) {
					return true
				}
			}
			found, ok = cand, true
			return false
		})
		if !ok {
			return nil, fmt.Errorf("%w: generator %d", ErrNoDestabilizer, i)
		}
		destabs = append(destabs, found)
	}
	return destabs, nil
}

// checkIndependent verifies the generators span a rank-k subspace.
func checkIndependent(stabs []pauli.Operator, n int) error {
	rows := make([]*bitset.BitSet, len(stabs))
	for i, s := range stabs {
		rows[i] = s.Symplectic()
	}
	m, err := gf2.FromRows(rows, 2*n)
	if err != nil {
		return err
	}
	if gf2.Rank(m) != len(stabs) {
		return ErrDependentGenerators
	}
	return nil
}

func sparseAll(ops []pauli.Operator) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Sparse()
	}
	return out
}
