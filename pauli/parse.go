// Package pauli: sparse-notation parsing and canonicalization.
//
// Grammar: whitespace- or '*'-separated tokens, each [XYZxyz]<digits> with a
// zero-based decimal qubit index. Token order is ignored. A duplicate index
// with the same letter is idempotent; a duplicate index with a different
// letter is a parse error. The empty specification is the identity.

package pauli

import (
	"fmt"
	"strconv"
	"strings"
)

// letterSymbols maps an upper-cased operator letter to its Symbol.
var letterSymbols = map[byte]Symbol{'X': X, 'Y': Y, 'Z': Z}

// parseTokens scans spec into a per-qubit symbol assignment, reporting the
// highest index seen (-1 when none). Errors carry the offending token.
func parseTokens(spec string) (map[int]Symbol, int, error) {
	assigned := make(map[int]Symbol)
	maxIdx := -1
	for _, tok := range strings.Fields(strings.ReplaceAll(spec, "*", " ")) {
		letter := tok[0]
		if letter >= 'a' && letter <= 'z' {
			letter -= 'a' - 'A'
		}
		sym, ok := letterSymbols[letter]
		if !ok {
			return nil, 0, fmt.Errorf("token %q: %w", tok, ErrBadToken)
		}
		digits := tok[1:]
		if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return nil, 0, fmt.Errorf("token %q: %w", tok, ErrBadToken)
		}
		idx, err := strconv.Atoi(digits)
		if err != nil {
			return nil, 0, fmt.Errorf("token %q: %w", tok, ErrBadToken)
		}
		if prev, dup := assigned[idx]; dup && prev != sym {
			return nil, 0, fmt.Errorf("qubit %d: %s vs %s: %w", idx, prev, sym, ErrConflictingToken)
		}
		assigned[idx] = sym
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	return assigned, maxIdx, nil
}

// Parse parses a sparse Pauli specification, inferring the qubit count as
// the highest index plus one (zero for the empty specification).
//
// Errors: ErrBadToken, ErrConflictingToken (wrapped with the token).
func Parse(spec string) (Operator, error) {
	assigned, maxIdx, err := parseTokens(spec)
	if err != nil {
		return Operator{}, err
	}

	return fromAssignment(assigned, maxIdx+1), nil
}

// ParseSized parses a sparse Pauli specification over exactly n qubits.
//
// Errors: ErrBadSize when n < 0; ErrQubitRange when n is too small for the
// highest index present; ErrBadToken / ErrConflictingToken from scanning.
func ParseSized(spec string, n int) (Operator, error) {
	if n < 0 {
		return Operator{}, ErrBadSize
	}
	assigned, maxIdx, err := parseTokens(spec)
	if err != nil {
		return Operator{}, err
	}
	if maxIdx >= n {
		return Operator{}, fmt.Errorf("num_qubits=%d too small for index %d: %w", n, maxIdx, ErrQubitRange)
	}

	return fromAssignment(assigned, n), nil
}

// fromAssignment materializes a parsed assignment over n qubits.
func fromAssignment(assigned map[int]Symbol, n int) Operator {
	op := identity(n)
	for idx, sym := range assigned {
		if sym.XBit() {
			op.x.Set(uint(idx))
		}
		if sym.ZBit() {
			op.z.Set(uint(idx))
		}
	}

	return op
}

// Canonical parses spec and returns its canonical sparse form: tokens sorted
// by ascending index, single-space separated. Re-parsing the canonical form
// yields a bit-identical operator (idempotent canonicalization).
func Canonical(spec string) (string, error) {
	op, err := Parse(spec)
	if err != nil {
		return "", err
	}

	return op.Sparse(), nil
}
