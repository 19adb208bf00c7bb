package tile

import "github.com/katalvlaran/edgetile/bitpattern"

// IsValid reports whether b satisfies the corner-consistency rule: for every
// corner position n ∈ {0,2,4,6} that is open, both flanking edge positions
// (n−1 mod 8 and n+1 mod 8) must be open too.
//
// Complexity: O(1).
func IsValid(b uint8) bool {
	for n := 0; n < bitpattern.Width; n += 2 {
		if bitpattern.NthBit(b, n) {
			continue
		}
		if bitpattern.NthBit(b, bitpattern.ModuloPositive(n-1, bitpattern.Width)) ||
			bitpattern.NthBit(b, bitpattern.ModuloPositive(n+1, bitpattern.Width)) {
			return false
		}
	}
	return true
}

// New admits b into the validated domain.
// Returns *InvalidTileError (wrapping ErrInvalidTile) if b is not legal.
func New(b uint8) (Tile, error) {
	if !IsValid(b) {
		return 0, &InvalidTileError{Value: b}
	}
	return Tile(b), nil
}

// Enumerate returns every legal tile in strictly ascending numeric order.
//
// Complexity: O(256).
func Enumerate() []Tile {
	out := make([]Tile, 0, 64)
	for v := 0; v < 256; v++ {
		if IsValid(uint8(v)) {
			out = append(out, Tile(v))
		}
	}
	return out
}

// Legal returns the set of all legal tiles.
func Legal() Set {
	var s Set
	for v := 0; v < 256; v++ {
		if IsValid(uint8(v)) {
			s.insert(Tile(v))
		}
	}
	return s
}
