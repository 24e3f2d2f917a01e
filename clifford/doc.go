// Package clifford synthesizes and applies Clifford operations in the
// symplectic (tableau) representation.
//
// A Clifford is stored as a Tableau: the images of the single-qubit X_q and
// Z_q operators under conjugation. Conjugating an arbitrary Pauli is a
// multiply-accumulate over those images; inverting is a GF(2) matrix
// inversion of the stacked symplectic rows. Phases are tracked up to ±1
// throughout (the imaginary unit is deliberately out of scope).
//
// Two entry points build Cliffords from code data:
//
//   - Synthesize takes stabilizer/destabilizer pairs (S_i, D_i) and returns
//     a Clifford mapping them to the standard frame (C S_i C† = Z_{q_i},
//     C D_i C† = X_{q_i}), or the inverse mapping on request. Missing frame
//     qubits are filled deterministically by the frame package.
//
//   - Canonicalize takes only stabilizer generators, discovers destabilizer
//     partners and logical operator pairs, and reports the full code
//     structure together with a diagonalizing circuit built from
//     {H, S, S†, CX, CZ, SWAP}.
//
// Circuits are first-class: Circuit values conjugate Paulis gate by gate,
// invert exactly (gate order reversed, S ↔ S†), and convert to tableaux.
package clifford
