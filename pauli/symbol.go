// Package pauli: the closed single-qubit symbol enum and its rules tables.
// Symbols replace character scanning everywhere: parsing touches strings
// once at the boundary, and all algebra below runs on the enum.

package pauli

// Symbol is a single-qubit Pauli operator drawn from the closed set
// {I, X, Y, Z}. The numeric values are fixed: the low bit pair mirrors the
// symplectic encoding used across the package — see XBit/ZBit.
type Symbol uint8

// The four single-qubit Paulis. The (XBit, ZBit) pairs are:
// I=(0,0), X=(1,0), Y=(1,1), Z=(0,1).
const (
	I Symbol = iota
	X
	Y
	Z
)

// symbolNames maps Symbol → display letter, indexed by the enum value.
var symbolNames = [4]string{"I", "X", "Y", "Z"}

// String returns the canonical letter for s ("I", "X", "Y" or "Z").
// Out-of-range values render as "I"; Symbol is a closed enum and such values
// only arise from caller misuse.
func (s Symbol) String() string {
	if s > Z {
		return symbolNames[I]
	}

	return symbolNames[s]
}

// XBit reports whether s has an X component (true for X and Y).
func (s Symbol) XBit() bool { return s == X || s == Y }

// ZBit reports whether s has a Z component (true for Z and Y).
func (s Symbol) ZBit() bool { return s == Z || s == Y }

// FromBits returns the Symbol with the given X/Z component bits.
// Complexity: O(1).
func FromBits(xBit, zBit bool) Symbol {
	switch {
	case xBit && zBit:
		return Y
	case xBit:
		return X
	case zBit:
		return Z
	default:
		return I
	}
}

// mulSym[a][b] is the symbol of the product a·b.
// Identity absorbs; equal symbols cancel; distinct non-identity symbols
// produce the third.
var mulSym = [4][4]Symbol{
	I: {I: I, X: X, Y: Y, Z: Z},
	X: {I: X, X: I, Y: Z, Z: Y},
	Y: {I: Y, X: Z, Y: I, Z: X},
	Z: {I: Z, X: Y, Y: X, Z: I},
}

// mulSign[a][b] is the real sign contributed by the product a·b.
// The full Pauli group contributes ±i for products of distinct non-identity
// symbols; this table keeps the real part of the convention X·Z=+Y,
// Z·X=-Y, X·Y=+Z, Y·X=-Z, Y·Z=+X, Z·Y=-X and discards factors of i.
// See the package doc for the phase contract.
var mulSign = [4][4]int8{
	I: {I: 1, X: 1, Y: 1, Z: 1},
	X: {I: 1, X: 1, Y: 1, Z: 1},
	Y: {I: 1, X: -1, Y: 1, Z: 1},
	Z: {I: 1, X: -1, Y: -1, Z: 1},
}

// MulSymbols multiplies two single-qubit symbols, returning the product
// symbol and its real sign (±1) under the package phase convention.
// Pure; O(1).
func MulSymbols(a, b Symbol) (Symbol, int8) {
	return mulSym[a][b], mulSign[a][b]
}
