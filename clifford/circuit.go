package clifford

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qecutil/stabkit/pauli"
)

// Circuit is an ordered list of Clifford gate applications.
//
// The zero value is the empty circuit and ready to use.
type Circuit struct {
	ops []Op
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit { return &Circuit{} }

// Append adds a gate application at the end of the circuit.
//
// Errors: ErrBadGate via NewOp.
func (c *Circuit) Append(g Gate, targets ...int) error {
	op, err := NewOp(g, targets...)
	if err != nil {
		return err
	}
	c.ops = append(c.ops, op)
	return nil
}

// append adds an op known to be valid.
func (c *Circuit) append(op Op) { c.ops = append(c.ops, op) }

// Ops returns a copy of the circuit's operations in order.
func (c *Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// Len returns the number of gate applications.
func (c *Circuit) Len() int { return len(c.ops) }

// Apply conjugates p by the whole circuit, first gate innermost: for a
// circuit G_1 … G_m the result is G_m … G_1 p G_1† … G_m†.
func (c *Circuit) Apply(p pauli.Operator) pauli.Operator {
	for _, op := range c.ops {
		p = op.Apply(p)
	}
	return p
}

// Inverted returns the inverse circuit: gates reversed, S ↔ S†.
func (c *Circuit) Inverted() *Circuit {
	inv := &Circuit{ops: make([]Op, len(c.ops))}
	for i, op := range c.ops {
		inv.ops[len(c.ops)-1-i] = op.Inverse()
	}
	return inv
}

// Qubits returns one past the highest qubit index the circuit touches.
func (c *Circuit) Qubits() int {
	n := 0
	for _, op := range c.ops {
		for _, q := range op.Targets() {
			if q+1 > n {
				n = q + 1
			}
		}
	}
	return n
}

// Tableau returns the Clifford the circuit implements, as the images of the
// single-qubit X_q and Z_q over n qubits.
//
// Errors: ErrBadQubitCount when n is smaller than the circuit's support.
func (c *Circuit) Tableau(n int) (*Tableau, error) {
	if n <= 0 || n < c.Qubits() {
		return nil, fmt.Errorf("%w: n=%d, circuit touches %d qubit(s)", ErrBadQubitCount, n, c.Qubits())
	}
	xs := make([]pauli.Operator, n)
	zs := make([]pauli.Operator, n)
	for q := 0; q < n; q++ {
		x, err := pauli.ParseSized(fmt.Sprintf("X%d", q), n)
		if err != nil {
			return nil, err
		}
		z, err := pauli.ParseSized(fmt.Sprintf("Z%d", q), n)
		if err != nil {
			return nil, err
		}
		xs[q] = c.Apply(x)
		zs[q] = c.Apply(z)
	}
	return FromConjugatedGenerators(xs, zs)
}

// String renders the circuit as one gate per line in circuit text.
func (c *Circuit) String() string {
	lines := make([]string, len(c.ops))
	for i, op := range c.ops {
		lines[i] = op.String()
	}
	return strings.Join(lines, "\n")
}

// ParseCircuit reads circuit text: one gate per line, the gate name
// followed by decimal qubit indices ("CX 0 2"). Blank lines and lines
// starting with '#' are skipped. Accepts SDG and CNOT as aliases.
//
// Errors: ErrBadGate with the offending line.
func ParseCircuit(text string) (*Circuit, error) {
	c := NewCircuit()
	for lineNo, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		g, ok := gateByName(strings.ToUpper(fields[0]))
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unknown gate %q", ErrBadGate, lineNo+1, fields[0])
		}
		targets := make([]int, 0, 2)
		for _, f := range fields[1:] {
			q, err := strconv.Atoi(f)
			if err != nil || q < 0 {
				return nil, fmt.Errorf("%w: line %d: bad target %q", ErrBadGate, lineNo+1, f)
			}
			targets = append(targets, q)
		}
		if err := c.Append(g, targets...); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
	}
	return c, nil
}
