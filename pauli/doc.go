// Package pauli provides the canonical representation of multi-qubit Pauli
// operators used throughout stabkit.
//
// The pauli package provides:
//
//   - Symbol, a closed {I, X, Y, Z} enum with a fixed multiplication rules
//     table — no string scanning in hot paths.
//   - Operator, an immutable n-qubit Pauli: bit-packed X/Z vectors plus a
//     ±1 sign. Binary operations zero-pad the shorter operand.
//   - Sparse notation parsing and formatting ("X1 Z3"), with canonical
//     index-ascending output.
//   - The symplectic vector view (X-bits ++ Z-bits, length 2n) consumed by
//     the gf2 linear-algebra kernels.
//   - Algebra, a capability interface with two implementations: Bitwise
//     (word-parallel production path) and Table (per-qubit rules-table
//     reference path). Tests cross-check the two.
//
// Phase convention: multiplication tracks the real sign only. Products such
// as X·Z pick up ±i in the full Pauli group; this package deliberately
// discards the imaginary factor and keeps ±1. Callers must not rely on ±i
// phases — classification and synthesis compare operator patterns, and where
// relevant, real signs.
//
// All operations are pure total functions; Operators are never mutated.
package pauli
