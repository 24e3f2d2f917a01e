package clifford

import (
	"fmt"

	"github.com/qecutil/stabkit/pauli"
)

// diagonalize builds a circuit C with C stabs[i] C† = Z_i and
// C destabs[i] C† = X_i (up to sign), mutating working copies of the rows
// as gates are emitted.
//
// Greedy two-phase sweep. For row i, phase one reduces the stabilizer to a
// pure Z_i: pick the first qubit carrying a Z or Y component (an H first
// when the row is all-X), move it to qubit i with a SWAP, flatten a Y, then
// clear the remaining support into qubit i with CX. Phase two reduces the
// destabilizer to a pure X_i using only gates that fix Z_i: S† for a Y at
// qubit i, then CX/CZ from qubit i outward.
//
// Invariant: before row i every earlier row is already a single-qubit Z_j
// or X_j, and rows ≥ i commute with all of those, hence act as identity on
// qubits < i. All gates for row i therefore touch qubits ≥ i only.
//
// Inputs must form a valid partial frame; rows are over n qubits.
func diagonalize(stabs, destabs []pauli.Operator, n int) (*Circuit, []pauli.Operator, []pauli.Operator, error) {
	k := len(stabs)
	if len(destabs) != k {
		return nil, nil, nil, fmt.Errorf("%w: %d stabilizers vs %d destabilizers", ErrInvalidFrame, k, len(destabs))
	}

	c := NewCircuit()
	s := make([]pauli.Operator, k)
	d := make([]pauli.Operator, k)
	copy(s, stabs)
	copy(d, destabs)

	emit := func(g Gate, targets ...int) error {
		op, err := NewOp(g, targets...)
		if err != nil {
			return err
		}
		c.append(op)
		for j := 0; j < k; j++ {
			s[j] = op.Apply(s[j])
			d[j] = op.Apply(d[j])
		}
		return nil
	}

	for i := 0; i < k; i++ {
		// Phase one: stabilizer row i -> Z_i.
		target := -1
		for q := 0; q < n; q++ {
			if sym := s[i].At(q); sym == pauli.Z || sym == pauli.Y {
				target = q
				break
			}
		}
		if target < 0 {
			// All-X row: turn the first X into a Z.
			for q := 0; q < n; q++ {
				if s[i].At(q) == pauli.X {
					if err := emit(GateH, q); err != nil {
						return nil, nil, nil, err
					}
					target = q
					break
				}
			}
		}
		if target < 0 {
			return nil, nil, nil, fmt.Errorf("%w: stabilizer %d is the identity", ErrInvalidFrame, i)
		}
		if target != i {
			if err := emit(GateSwap, i, target); err != nil {
				return nil, nil, nil, err
			}
		}
		if s[i].At(i) == pauli.Y {
			if err := emit(GateSDag, i); err != nil {
				return nil, nil, nil, err
			}
			if err := emit(GateH, i); err != nil {
				return nil, nil, nil, err
			}
		}
		for q := 0; q < n; q++ {
			if q == i {
				continue
			}
			switch s[i].At(q) {
			case pauli.X:
				if err := emit(GateH, q); err != nil {
					return nil, nil, nil, err
				}
				if err := emit(GateCX, q, i); err != nil {
					return nil, nil, nil, err
				}
			case pauli.Y:
				if err := emit(GateSDag, q); err != nil {
					return nil, nil, nil, err
				}
				if err := emit(GateH, q); err != nil {
					return nil, nil, nil, err
				}
				if err := emit(GateCX, q, i); err != nil {
					return nil, nil, nil, err
				}
			case pauli.Z:
				if err := emit(GateCX, q, i); err != nil {
					return nil, nil, nil, err
				}
			}
		}

		// Phase two: destabilizer row i -> X_i, fixing Z_i.
		if d[i].At(i) == pauli.Y {
			if err := emit(GateSDag, i); err != nil {
				return nil, nil, nil, err
			}
		}
		if d[i].At(i) != pauli.X {
			return nil, nil, nil, fmt.Errorf("%w: destabilizer %d does not anticommute with its stabilizer", ErrInvalidFrame, i)
		}
		for q := 0; q < n; q++ {
			if q == i {
				continue
			}
			switch d[i].At(q) {
			case pauli.X:
				if err := emit(GateCX, i, q); err != nil {
					return nil, nil, nil, err
				}
			case pauli.Z:
				if err := emit(GateCZ, i, q); err != nil {
					return nil, nil, nil, err
				}
			case pauli.Y:
				if err := emit(GateSDag, q); err != nil {
					return nil, nil, nil, err
				}
				if err := emit(GateCX, i, q); err != nil {
					return nil, nil, nil, err
				}
				if err := emit(GateS, q); err != nil {
					return nil, nil, nil, err
				}
			}
		}
	}

	return c, s, d, nil
}
