// Package frame completes partial symplectic frames over n qubits.
//
// A symplectic frame assigns to every qubit q a pair of Pauli operators
// (X̄_q, Z̄_q) such that X̄_q and Z̄_q anticommute while every other pair of
// frame operators commutes. A frame is exactly the data of a Clifford
// tableau: X̄_q is the image of X_q and Z̄_q the image of Z_q.
//
// Frames are built incrementally: SetPair pins the pairs that are known
// (for instance a code's stabilizer/destabilizer pairs) and Complete fills
// the remaining qubits by deterministic search — bounded-weight enumeration
// first, an exhaustive sweep as fallback. The search order is canonical
// (ascending weight, then lexicographic qubit support, then X before Z
// before Y), so equal inputs always complete to the same frame.
package frame
