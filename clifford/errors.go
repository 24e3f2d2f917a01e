package clifford

import "errors"

var (
	// ErrBadQubitCount is returned for a non-positive register size, or
	// when more generators are supplied than qubits.
	ErrBadQubitCount = errors.New("clifford: invalid qubit count")

	// ErrBadDirection is returned for an unknown synthesis direction.
	ErrBadDirection = errors.New("clifford: unknown direction")

	// ErrBadTargets is returned when target qubits are out of range,
	// duplicated, or do not match the pair count.
	ErrBadTargets = errors.New("clifford: invalid target qubits")

	// ErrInvalidFrame is returned when stabilizer/destabilizer pairs
	// violate the symplectic pairing conditions.
	ErrInvalidFrame = errors.New("clifford: invalid stabilizer/destabilizer frame")

	// ErrNoStabilizers is returned by Canonicalize for an empty generator
	// list.
	ErrNoStabilizers = errors.New("clifford: at least one stabilizer generator required")

	// ErrDependentGenerators is returned when the supplied stabilizer
	// generators are not independent over GF(2).
	ErrDependentGenerators = errors.New("clifford: stabilizer generators are dependent")

	// ErrNoDestabilizer is returned when no destabilizer partner exists
	// for some generator.
	ErrNoDestabilizer = errors.New("clifford: no destabilizer found")

	// ErrBadGate is returned when parsing an unknown gate name or a gate
	// with the wrong number of targets.
	ErrBadGate = errors.New("clifford: invalid gate")

	// ErrBadTableau is returned when tableau rows are inconsistent in
	// size or count.
	ErrBadTableau = errors.New("clifford: invalid tableau rows")
)
