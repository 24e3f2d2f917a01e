// Package stabkit is a binary symplectic algebra engine for stabilizer
// quantum error-correcting codes, from GF(2) primitives to full Clifford
// synthesis.
//
// 🚀 What is stabkit?
//
//	A deterministic, pure-computation library that brings together:
//		• Pauli operators: bit-packed X/Z vectors, ±1 sign, sparse notation
//		• GF(2) linear algebra: row reduction, span decomposition, solving
//		• Classification: logical / stabilizer-element / anticommuting
//		• Frame completion: bounded-weight search with brute-force fallback
//		• Clifford synthesis: tableaux and explicit H/S/CX/CZ/SWAP circuits
//
// ✨ Why choose stabkit?
//
//   - Deterministic by construction – fixed enumeration orders, canonical
//     tie-breaks, no randomness, no global state
//   - Fail-fast guarantees – every precondition is validated before any
//     search runs, and every failure is a typed sentinel error
//   - Pure computation – no I/O, no simulator backends, no cgo
//
// Everything is organized under five subpackages plus a thin CLI:
//
//	pauli/    — Pauli operators, symplectic vectors, sparse notation
//	gf2/      — bit-packed GF(2) matrices and elimination kernels
//	classify/ — Pauli classification against stabilizer generator sets
//	frame/    — symplectic frame completion via bounded-weight search
//	clifford/ — tableaux, gate circuits, synthesis and canonicalization
//
// Quick sparse-notation example:
//
//	"Z1 X3"  ≡  I ⊗ Z ⊗ I ⊗ X ⊗ I ...   (zero-based qubit indices)
//
// Dive into the per-package docs for algorithm outlines, determinism notes
// and complexity bounds.
//
//	go get github.com/qecutil/stabkit
package stabkit
