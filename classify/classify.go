package classify

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/qecutil/stabkit/gf2"
	"github.com/qecutil/stabkit/pauli"
)

// Status is the classification verdict for a candidate operator.
type Status string

const (
	// StatusLogical marks a candidate that commutes with every generator
	// yet lies outside the stabilizer span.
	StatusLogical Status = "logical"

	// StatusAnticommuting marks a candidate that anticommutes with at
	// least one generator.
	StatusAnticommuting Status = "anticommuting"

	// StatusStabilizer marks a candidate whose pattern is a product of
	// the generators.
	StatusStabilizer Status = "stabilizer"
)

// Result reports the classification of a candidate against a generator set.
//
// Only the fields relevant to Status are populated: AnticommutingWith for
// StatusAnticommuting; GeneratorIndices and ProductSparse for
// StatusStabilizer. Overall phase is ignored throughout — matching is on
// the operator pattern, and Note says so when it matters.
type Result struct {
	Status Status `json:"status"`

	// AnticommutingWith lists generator indices (ascending) that
	// anticommute with the candidate.
	AnticommutingWith []int `json:"anticommuting_with,omitempty"`

	// GeneratorIndices lists generator indices (ascending) whose product
	// reproduces the candidate's pattern.
	GeneratorIndices []int `json:"generator_indices,omitempty"`

	// ProductSparse is the sparse notation of that product; "" for the
	// identity.
	ProductSparse string `json:"product_sparse,omitempty"`

	Note string `json:"note,omitempty"`
}

// Classify determines whether candidate is a logical operator with respect
// to the given commuting stabilizer generator set.
//
// Inputs are sparse Pauli strings ("X1 Z3"); an empty candidate denotes the
// identity. numQubits fixes the register size; when ≤ 0 it is inferred as
// one past the highest qubit index appearing in any input. Generators are
// assumed mutually commuting and independent.
//
// Decision order:
//  1. candidate anticommutes with some generator → StatusAnticommuting;
//  2. candidate's symplectic vector lies in the generators' GF(2) row
//     span → StatusStabilizer, with the decomposition as certificate;
//  3. otherwise → StatusLogical.
//
// With no generators at all the identity is StatusStabilizer and every other
// candidate is StatusLogical.
func Classify(candidate string, stabilizers []string, numQubits int) (Result, error) {
	n := numQubits
	if n <= 0 {
		inferred, err := inferQubits(candidate, stabilizers)
		if err != nil {
			return Result{}, err
		}
		n = inferred
	}

	cand, err := pauli.ParseSized(candidate, n)
	if err != nil {
		return Result{}, wrapParse(ErrBadCandidate, candidate, err)
	}
	gens := make([]pauli.Operator, len(stabilizers))
	for i, s := range stabilizers {
		g, err := pauli.ParseSized(s, n)
		if err != nil {
			return Result{}, wrapParse(ErrBadStabilizer, s, err)
		}
		gens[i] = g
	}

	if len(gens) == 0 {
		if cand.IsIdentity() {
			return Result{
				Status:           StatusStabilizer,
				GeneratorIndices: []int{},
				ProductSparse:    "",
				Note:             "no stabilizers; identity is trivially in the group; phases ignored",
			}, nil
		}
		return Result{Status: StatusLogical}, nil
	}

	var anti []int
	for i, g := range gens {
		if !cand.Commutes(g) {
			anti = append(anti, i)
		}
	}
	if len(anti) > 0 {
		return Result{
			Status:            StatusAnticommuting,
			AnticommutingWith: anti,
			Note:              fmt.Sprintf("anticommutes with generators %v; not logical and not in the stabilizer group", anti),
		}, nil
	}

	rows := make([]*bitset.BitSet, len(gens))
	for i, g := range gens {
		rows[i] = g.Symplectic()
	}
	span, err := gf2.FromRows(rows, 2*n)
	if err != nil {
		return Result{}, err
	}
	inSpan, coeffs := gf2.SpanDecompose(span, cand.Symplectic())
	if !inSpan {
		return Result{Status: StatusLogical}, nil
	}

	indices := []int{}
	prod, err := pauli.New(n)
	if err != nil {
		return Result{}, err
	}
	for i := range gens {
		if coeffs.Test(uint(i)) {
			indices = append(indices, i)
			prod = prod.Mul(gens[i])
		}
	}
	return Result{
		Status:           StatusStabilizer,
		GeneratorIndices: indices,
		ProductSparse:    prod.Sparse(),
		Note:             "overall phase ignored in decomposition",
	}, nil
}

// inferQubits returns one past the highest qubit index across all inputs.
func inferQubits(candidate string, stabilizers []string) (int, error) {
	max := 0
	cand, err := pauli.Parse(candidate)
	if err != nil {
		return 0, wrapParse(ErrBadCandidate, candidate, err)
	}
	max = cand.Qubits()
	for _, s := range stabilizers {
		g, err := pauli.Parse(s)
		if err != nil {
			return 0, wrapParse(ErrBadStabilizer, s, err)
		}
		if g.Qubits() > max {
			max = g.Qubits()
		}
	}
	return max, nil
}

func wrapParse(sentinel error, spec string, cause error) error {
	if pauliRangeError(cause) {
		return fmt.Errorf("%w: %q: %v", ErrQubitCount, spec, cause)
	}
	return fmt.Errorf("%w: %q: %v", sentinel, spec, cause)
}

func pauliRangeError(err error) bool {
	return errors.Is(err, pauli.ErrQubitRange) || errors.Is(err, pauli.ErrBadSize)
}
