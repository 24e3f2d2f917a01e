package clifford

import (
	"fmt"

	"github.com/qecutil/stabkit/pauli"
)

// Gate identifies a generator of the Clifford group used by circuits.
type Gate uint8

const (
	GateH Gate = iota
	GateS
	GateSDag
	GateCX
	GateCZ
	GateSwap
)

// gateNames follows the circuit text format (S† spelled S_DAG).
var gateNames = [...]string{"H", "S", "S_DAG", "CX", "CZ", "SWAP"}

// String returns the gate's circuit-text name, or "?" for an invalid value.
func (g Gate) String() string {
	if int(g) >= len(gateNames) {
		return "?"
	}
	return gateNames[g]
}

// Arity returns the number of qubits the gate acts on.
func (g Gate) Arity() int {
	switch g {
	case GateCX, GateCZ, GateSwap:
		return 2
	default:
		return 1
	}
}

// Inverse returns the gate undoing g. All gates are self-inverse except the
// phase gates, which swap.
func (g Gate) Inverse() Gate {
	switch g {
	case GateS:
		return GateSDag
	case GateSDag:
		return GateS
	default:
		return g
	}
}

// gateByName resolves a circuit-text name, accepting SDG/CNOT aliases.
func gateByName(name string) (Gate, bool) {
	switch name {
	case "H":
		return GateH, true
	case "S":
		return GateS, true
	case "S_DAG", "SDG":
		return GateSDag, true
	case "CX", "CNOT":
		return GateCX, true
	case "CZ":
		return GateCZ, true
	case "SWAP":
		return GateSwap, true
	}
	return 0, false
}

// Op is a gate applied to concrete qubits. Two-qubit gates use both targets
// (control first for CX); single-qubit gates ignore the second.
type Op struct {
	Gate Gate
	Q0   int
	Q1   int
}

// NewOp builds a validated op.
//
// Errors: ErrBadGate for target/arity mismatches.
func NewOp(g Gate, targets ...int) (Op, error) {
	if len(targets) != g.Arity() {
		return Op{}, fmt.Errorf("%w: %s takes %d target(s), got %d", ErrBadGate, g, g.Arity(), len(targets))
	}
	op := Op{Gate: g, Q0: targets[0]}
	if g.Arity() == 2 {
		if targets[1] == targets[0] {
			return Op{}, fmt.Errorf("%w: %s targets must be distinct", ErrBadGate, g)
		}
		op.Q1 = targets[1]
	}
	return op, nil
}

// Targets returns the op's qubits in order.
func (o Op) Targets() []int {
	if o.Gate.Arity() == 2 {
		return []int{o.Q0, o.Q1}
	}
	return []int{o.Q0}
}

// Inverse returns the op undoing o.
func (o Op) Inverse() Op {
	o.Gate = o.Gate.Inverse()
	return o
}

// String renders the op in circuit text, e.g. "CX 0 2".
func (o Op) String() string {
	if o.Gate.Arity() == 2 {
		return fmt.Sprintf("%s %d %d", o.Gate, o.Q0, o.Q1)
	}
	return fmt.Sprintf("%s %d", o.Gate, o.Q0)
}

// Apply conjugates p by the op: returns G p G†. Qubits beyond p's register
// are treated as identity, so the result may grow to cover the op's
// targets.
//
// Sign convention: H, S and S† track the ±1 phase exactly; CX and CZ update
// patterns only. Phases involving i never arise because the algebra is
// real-signed throughout.
func (o Op) Apply(p pauli.Operator) pauli.Operator {
	n := p.Qubits()
	for _, q := range o.Targets() {
		if q+1 > n {
			n = q + 1
		}
	}
	syms := make([]pauli.Symbol, n)
	for q := 0; q < n; q++ {
		syms[q] = p.At(q)
	}
	flip := false

	switch o.Gate {
	case GateH:
		switch syms[o.Q0] {
		case pauli.X:
			syms[o.Q0] = pauli.Z
		case pauli.Z:
			syms[o.Q0] = pauli.X
		case pauli.Y:
			flip = true
		}
	case GateS:
		switch syms[o.Q0] {
		case pauli.X:
			syms[o.Q0] = pauli.Y
		case pauli.Y:
			syms[o.Q0] = pauli.X
			flip = true
		}
	case GateSDag:
		switch syms[o.Q0] {
		case pauli.X:
			syms[o.Q0] = pauli.Y
			flip = true
		case pauli.Y:
			syms[o.Q0] = pauli.X
		}
	case GateCX:
		c, t := syms[o.Q0], syms[o.Q1]
		if c == pauli.X || c == pauli.Y {
			syms[o.Q1] = xorX(t)
		}
		if t == pauli.Z || t == pauli.Y {
			syms[o.Q0] = xorZ(c)
		}
	case GateCZ:
		a, b := syms[o.Q0], syms[o.Q1]
		if a == pauli.X || a == pauli.Y {
			syms[o.Q1] = xorZ(b)
		}
		if b == pauli.X || b == pauli.Y {
			syms[o.Q0] = xorZ(a)
		}
	case GateSwap:
		syms[o.Q0], syms[o.Q1] = syms[o.Q1], syms[o.Q0]
	}

	out := pauli.FromSymbols(syms)
	if (p.Sign() < 0) != flip {
		out = out.Negated()
	}
	return out
}

// xorX folds an X component into s.
func xorX(s pauli.Symbol) pauli.Symbol {
	switch s {
	case pauli.I:
		return pauli.X
	case pauli.X:
		return pauli.I
	case pauli.Z:
		return pauli.Y
	default: // Y
		return pauli.Z
	}
}

// xorZ folds a Z component into s.
func xorZ(s pauli.Symbol) pauli.Symbol {
	switch s {
	case pauli.I:
		return pauli.Z
	case pauli.Z:
		return pauli.I
	case pauli.X:
		return pauli.Y
	default: // Y
		return pauli.X
	}
}
