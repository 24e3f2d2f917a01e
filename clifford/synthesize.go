package clifford

import (
	"fmt"

	"github.com/qecutil/stabkit/frame"
	"github.com/qecutil/stabkit/pauli"
)

// Direction selects which way a synthesized Clifford maps.
type Direction string

const (
	// PairsToStandard yields C with C S_i C† = Z_{q_i}, C D_i C† = X_{q_i}.
	PairsToStandard Direction = "pairs_to_standard"

	// StandardToPairs yields T with T Z_{q_i} T† = S_i, T X_{q_i} T† = D_i.
	StandardToPairs Direction = "standard_to_pairs"
)

// DefaultMaxWeight bounds the frame-completion search unless overridden.
const DefaultMaxWeight = 3

// DefaultDirection is the direction used when WithDirection is not given.
const DefaultDirection = PairsToStandard

// Pair is one stabilizer/destabilizer partner in sparse notation.
type Pair struct {
	Stabilizer   string `json:"stabilizer"`
	Destabilizer string `json:"destabilizer"`
}

// Option customizes Synthesize.
type Option func(*options)

type options struct {
	targetQubits []int
	direction    Direction
	maxWeight    int
}

// WithTargetQubits pins where each pair lands in the standard frame
// (default: pair i on qubit i). Length must match the pair count and
// entries must be distinct.
func WithTargetQubits(qubits []int) Option {
	return func(o *options) { o.targetQubits = qubits }
}

// WithDirection selects the mapping direction (default PairsToStandard).
func WithDirection(d Direction) Option {
	return func(o *options) { o.direction = d }
}

// WithMaxWeight bounds the Pauli weight enumerated during frame completion
// (default DefaultMaxWeight). The exhaustive fallback still runs when the
// bounded search comes up empty.
func WithMaxWeight(w int) Option {
	return func(o *options) { o.maxWeight = w }
}

// Synthesis is the result of Synthesize.
type Synthesis struct {
	// Tableau implements the requested mapping.
	Tableau *Tableau

	// Circuit realizes the same mapping (up to signs) over
	// {H, S, S†, CX, CZ, SWAP}.
	Circuit *Circuit

	// TargetQubits is the resolved landing qubit for each pair.
	TargetQubits []int

	// XImages and ZImages are the completed frame in sparse notation,
	// indexed by qubit.
	XImages []string
	ZImages []string
}

// Synthesize builds a Clifford consistent with stabilizer/destabilizer
// pairs: each pair must anticommute within itself and commute with every
// operator of every other pair. The partial frame the pairs define is
// completed deterministically, so equal inputs always produce the same
// Clifford.
//
// Errors: ErrBadQubitCount, ErrBadDirection, ErrBadTargets,
// ErrInvalidFrame, pauli parse errors, frame.ErrSearchExhausted.
func Synthesize(pairs []Pair, numQubits int, opts ...Option) (*Synthesis, error) {
	o := options{direction: DefaultDirection, maxWeight: DefaultMaxWeight}
	for _, apply := range opts {
		apply(&o)
	}

	if numQubits <= 0 {
		return nil, fmt.Errorf("%w: numQubits=%d", ErrBadQubitCount, numQubits)
	}
	if o.direction != PairsToStandard && o.direction != StandardToPairs {
		return nil, fmt.Errorf("%w: %q", ErrBadDirection, o.direction)
	}
	m := len(pairs)
	if m > numQubits {
		return nil, fmt.Errorf("%w: %d pairs on %d qubits", ErrBadQubitCount, m, numQubits)
	}
	targets := o.targetQubits
	if targets == nil {
		targets = make([]int, m)
		for i := range targets {
			targets[i] = i
		}
	}
	if len(targets) != m {
		return nil, fmt.Errorf("%w: %d targets for %d pairs", ErrBadTargets, len(targets), m)
	}
	seen := make(map[int]bool, m)
	for _, q := range targets {
		if q < 0 || q >= numQubits {
			return nil, fmt.Errorf("%w: qubit %d out of range [0, %d)", ErrBadTargets, q, numQubits)
		}
		if seen[q] {
			return nil, fmt.Errorf("%w: qubit %d repeated", ErrBadTargets, q)
		}
		seen[q] = true
	}

	stabs := make([]pauli.Operator, m)
	destabs := make([]pauli.Operator, m)
	for i, p := range pairs {
		s, err := pauli.ParseSized(p.Stabilizer, numQubits)
		if err != nil {
			return nil, fmt.Errorf("pair %d stabilizer: %w", i, err)
		}
		d, err := pauli.ParseSized(p.Destabilizer, numQubits)
		if err != nil {
			return nil, fmt.Errorf("pair %d destabilizer: %w", i, err)
		}
		stabs[i], destabs[i] = s, d
	}
	if err := validatePairs(stabs, destabs); err != nil {
		return nil, err
	}

	f, err := frame.New(numQubits)
	if err != nil {
		return nil, err
	}
	for i, q := range targets {
		// Z image carries the stabilizer, X image the destabilizer.
		if err := f.SetPair(q, destabs[i], stabs[i]); err != nil {
			return nil, err
		}
	}
	if err := f.Complete(o.maxWeight); err != nil {
		return nil, err
	}
	xs, zs := f.Images()

	// The diagonalizer over the full frame is exactly the Clifford taking
	// the pairs to the standard frame.
	circuit, _, _, err := diagonalize(zs, xs, numQubits)
	if err != nil {
		return nil, err
	}

	full, err := FromConjugatedGenerators(xs, zs)
	if err != nil {
		return nil, err
	}

	tableau := full
	if o.direction == PairsToStandard {
		tableau, err = full.Inverse()
		if err != nil {
			return nil, err
		}
	} else {
		circuit = circuit.Inverted()
	}

	ximg := make([]string, numQubits)
	zimg := make([]string, numQubits)
	for q := 0; q < numQubits; q++ {
		ximg[q] = xs[q].Sparse()
		zimg[q] = zs[q].Sparse()
	}

	resolved := make([]int, m)
	copy(resolved, targets)
	return &Synthesis{
		Tableau:      tableau,
		Circuit:      circuit,
		TargetQubits: resolved,
		XImages:      ximg,
		ZImages:      zimg,
	}, nil
}

// validatePairs checks the symplectic pairing conditions on a partial
// frame.
func validatePairs(stabs, destabs []pauli.Operator) error {
	m := len(stabs)
	for i := 0; i < m; i++ {
		if stabs[i].Commutes(destabs[i]) {
			return fmt.Errorf("%w: pair %d: stabilizer must anticommute with its destabilizer", ErrInvalidFrame, i)
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				continue
			}
			if !stabs[i].Commutes(stabs[j]) {
				return fmt.Errorf("%w: stabilizers %d and %d must commute", ErrInvalidFrame, i, j)
			}
			if !destabs[i].Commutes(destabs[j]) {
				return fmt.Errorf("%w: destabilizers %d and %d must commute", ErrInvalidFrame, i, j)
			}
			if !stabs[i].Commutes(destabs[j]) {
				return fmt.Errorf("%w: stabilizer %d must commute with destabilizer %d", ErrInvalidFrame, i, j)
			}
		}
	}
	return nil
}
