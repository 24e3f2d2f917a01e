// Package frame: canonical Pauli enumeration.
//
// Both enumerators visit operators in a fixed order so that searches built
// on them are deterministic. Visitors return false to stop early; each
// enumerator reports whether it ran to exhaustion.

package frame

import "github.com/qecutil/stabkit/pauli"

// symbolOrder fixes the per-qubit tie-break inside a weight class.
var symbolOrder = [...]pauli.Symbol{pauli.X, pauli.Z, pauli.Y}

// Each visits every non-identity operator on n qubits with weight at most
// maxWeight, in the canonical search order, calling fn for each. fn returns
// false to stop early; Each reports whether the enumeration ran to
// exhaustion. maxWeight = n covers the whole Pauli group.
func Each(n, maxWeight int, fn func(pauli.Operator) bool) bool {
	return eachBounded(n, maxWeight, fn)
}

// eachBounded visits every non-identity operator on n qubits with weight at
// most maxWeight, in canonical order: ascending weight, then lexicographic
// qubit combination, then symbol assignment with the last qubit of the
// combination varying fastest (X before Z before Y).
func eachBounded(n, maxWeight int, fn func(pauli.Operator) bool) bool {
	if maxWeight > n {
		maxWeight = n
	}
	for w := 1; w <= maxWeight; w++ {
		if !eachCombination(n, w, func(qubits []int) bool {
			return eachAssignment(n, qubits, fn)
		}) {
			return false
		}
	}
	return true
}

// eachAll visits every non-identity operator on n qubits, ordered by the
// base-4 encoding with qubit 0 as the least significant digit and the digit
// order I < X < Y < Z.
//
// Only feasible for small n; callers bound n before relying on it.
func eachAll(n int, fn func(pauli.Operator) bool) bool {
	if n <= 0 || n > 31 {
		return true
	}
	digitSymbols := [...]pauli.Symbol{pauli.I, pauli.X, pauli.Y, pauli.Z}
	total := uint64(1) << uint(2*n)
	syms := make([]pauli.Symbol, n)
	for val := uint64(1); val < total; val++ {
		tmp := val
		for q := 0; q < n; q++ {
			syms[q] = digitSymbols[tmp%4]
			tmp /= 4
		}
		if !fn(pauli.FromSymbols(syms)) {
			return false
		}
	}
	return true
}

// eachCombination visits the w-element subsets of {0..n-1} in lexicographic
// order, reusing one scratch slice across calls.
func eachCombination(n, w int, fn func(qubits []int) bool) bool {
	if w > n {
		return true
	}
	idx := make([]int, w)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return false
		}
		// Advance to the next combination.
		i := w - 1
		for i >= 0 && idx[i] == n-w+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < w; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// eachAssignment visits all symbolOrder assignments over the given qubit
// combination, last qubit fastest.
func eachAssignment(n int, qubits []int, fn func(pauli.Operator) bool) bool {
	w := len(qubits)
	choice := make([]int, w)
	syms := make([]pauli.Symbol, n)
	for {
		for i := range syms {
			syms[i] = pauli.I
		}
		for i, q := range qubits {
			syms[q] = symbolOrder[choice[i]]
		}
		if !fn(pauli.FromSymbols(syms)) {
			return false
		}
		// Odometer step over the symbol choices.
		i := w - 1
		for i >= 0 && choice[i] == len(symbolOrder)-1 {
			choice[i] = 0
			i--
		}
		if i < 0 {
			return true
		}
		choice[i]++
	}
}
