// Package classify answers the membership question for a candidate Pauli
// operator against a stabilizer generating set.
//
// A candidate falls into exactly one of three classes:
//
//   - "anticommuting" — it anticommutes with at least one generator and is
//     detected by the code (it flips those generators' measurement outcomes);
//   - "stabilizer" — it commutes with every generator and its symplectic
//     vector lies in the GF(2) row span of the generators (it acts trivially
//     on the code space, up to sign);
//   - "logical" — it commutes with every generator but lies outside their
//     span (it acts nontrivially within the code space).
//
// When a candidate is classified as "stabilizer" the result carries a
// certificate: the indices of the generators whose product reproduces the
// candidate's pattern, plus the sign relation between that product and the
// candidate. All outputs are deterministic functions of the inputs.
//
// Example:
//
//	res, err := classify.Classify("X0 X1", []string{"X0 X1", "Z0 Z1"}, 0)
//	// res.Status == classify.StatusStabilizer
//	// res.GeneratorIndices == []int{0}
package classify
