package tile

import (
	"errors"
	"fmt"
)

// ErrInvalidTile indicates a byte that does not satisfy the corner-consistency rule.
var ErrInvalidTile = errors.New("tile: invalid tile")

// InvalidTileError reports the rejected byte. It unwraps to ErrInvalidTile,
// so callers may branch with errors.Is(err, ErrInvalidTile) and recover the
// value with errors.As.
type InvalidTileError struct {
	Value uint8
}

// Error implements the error interface.
func (e *InvalidTileError) Error() string {
	return fmt.Sprintf("tile: invalid tile 0b%08b: open corner flanked by a filled edge", e.Value)
}

// Unwrap returns ErrInvalidTile.
func (e *InvalidTileError) Unwrap() error { return ErrInvalidTile }

// Tile is an 8-bit contact pattern; bit i marks contact point i as filled.
// Identity is the bit value itself.
type Tile uint8

// Positions is the number of contact points on a tile.
const Positions = 8

// Bit reports whether contact point n is filled.
func (t Tile) Bit(n int) bool {
	return n >= 0 && n < Positions && (uint8(t)>>uint(n))&1 == 1
}

// String renders the tile as a binary literal, most significant bit first.
func (t Tile) String() string {
	return fmt.Sprintf("0b%08b", uint8(t))
}
