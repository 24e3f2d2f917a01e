// Package gf2 implements linear algebra over GF(2) = {0,1} with XOR
// addition, on bit-packed row matrices.
//
// The gf2 package provides:
//
//   - Matrix, a fixed-width matrix whose rows are packed bit sets — row XOR
//     is a word-parallel operation, and explicit shape accounting prevents
//     accidental row/column mix-ups.
//   - RowReduce: full Gaussian elimination to reduced row-echelon form with
//     per-column pivot tracking.
//   - SpanDecompose: row-span membership with combining coefficients,
//     tracked through a running combination matrix.
//   - Solve: Ax=b with inconsistency detection; free variables pin to zero.
//   - Invert: Gauss-Jordan inversion for square matrices, used by Clifford
//     tableau inversion.
//
// All kernels are free functions over Matrix — never methods on a stateful
// object — and are pure: inputs are cloned, never mutated. Loop orders are
// fixed, so identical inputs always produce identical outputs.
//
// Complexity: every kernel is O(m²·d/w) for m rows, d columns, w machine
// word bits.
package gf2
