package adjacency

import (
	"github.com/katalvlaran/edgetile/bitpattern"
	"github.com/katalvlaran/edgetile/tile"
)

// windowMask keeps ring positions {7,0,1}: the facing edge contact and its two corners.
const windowMask uint8 = 0b10000011

// Neighborhood holds one candidate set per edge direction, indexed by Direction.Index.
type Neighborhood [4]tile.Set

// Get returns the candidates in direction d; non-edge directions yield an empty set.
func (n Neighborhood) Get(d Direction) tile.Set {
	if i := d.Index(); i >= 0 {
		return n[i]
	}
	return tile.Set{}
}

// Table maps each tile of a set to its Neighborhood. It is immutable once built.
type Table struct {
	tiles tile.Set
	cells [256]Neighborhood
}

// Fits reports whether o may sit next to t in direction d.
// Non-edge directions never fit.
func Fits(t, o tile.Tile, d Direction) bool {
	if !d.Valid() {
		return false
	}
	own := bitpattern.RotateRight(uint8(t), int(d)) & windowMask
	other := bitpattern.RotateRight(bitpattern.Reverse(uint8(o)), alignShift(d)) & windowMask
	return own == other
}

// Build computes the adjacency table of s. Every member is tested against
// every member, itself included, in each edge direction.
//
// Complexity: O(n²·4) time, O(256·4) sets of memory.
func Build(s tile.Set) *Table {
	tb := &Table{tiles: s}
	for _, t := range s.Tiles() {
		for i, d := range Directions {
			tb.cells[t][i] = s.Filter(func(o tile.Tile) bool { return Fits(t, o, d) })
		}
	}
	return tb
}

// Tiles returns the set the table was built from.
func (tb *Table) Tiles() tile.Set {
	return tb.tiles
}

// Neighbors returns the Neighborhood of t and whether t belongs to the table.
func (tb *Table) Neighbors(t tile.Tile) (Neighborhood, bool) {
	if !tb.tiles.Contains(t) {
		return Neighborhood{}, false
	}
	return tb.cells[t], true
}

// Compatible returns the tiles that may sit next to t in direction d.
// Unknown tiles and non-edge directions yield an empty set.
func (tb *Table) Compatible(t tile.Tile, d Direction) tile.Set {
	n, ok := tb.Neighbors(t)
	if !ok {
		return tile.Set{}
	}
	return n.Get(d)
}

// Slots returns the candidate sets indexed by ring position 0..7. Only the
// edge positions 1,3,5,7 are populated; the corner slots are always empty.
func (tb *Table) Slots(t tile.Tile) [tile.Positions]tile.Set {
	var out [tile.Positions]tile.Set
	n, ok := tb.Neighbors(t)
	if !ok {
		return out
	}
	for i, d := range Directions {
		out[d] = n[i]
	}
	return out
}

// Pairs returns the number of (tile, direction, candidate) triples in the table.
func (tb *Table) Pairs() int {
	total := 0
	for _, t := range tb.tiles.Tiles() {
		for _, s := range tb.cells[t] {
			total += s.Len()
		}
	}
	return total
}
