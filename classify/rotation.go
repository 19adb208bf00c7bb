package classify

import (
	"github.com/katalvlaran/edgetile/bitpattern"
	"github.com/katalvlaran/edgetile/tile"
)

// quarterTurns are the ring rotations that keep corners on corners.
var quarterTurns = [4]int{0, 2, 4, 6}

// mirrorTurns are the odd rotations paired with a bit reversal.
var mirrorTurns = [4]int{1, 3, 5, 7}

// Matches reports whether t is equivalent to key.
//
//   - t matches key if some even rotation of t equals key.
//   - With allowOpposite, t also matches key if some odd rotation of t
//     equals the bit reversal of key.
//
// The relation is symmetric and transitive over the byte domain.
func Matches(t, key tile.Tile, allowOpposite bool) bool {
	for _, k := range quarterTurns {
		if bitpattern.RotateLeft(uint8(t), k) == uint8(key) {
			return true
		}
	}
	if !allowOpposite {
		return false
	}
	reversed := bitpattern.Reverse(uint8(key))
	for _, k := range mirrorTurns {
		if bitpattern.RotateLeft(uint8(t), k) == reversed {
			return true
		}
	}
	return false
}

// images returns every byte value that matches t; duplicates are possible
// for symmetric tiles.
func images(t tile.Tile, allowOpposite bool) []uint8 {
	out := make([]uint8, 0, 8)
	for _, k := range quarterTurns {
		out = append(out, bitpattern.RotateLeft(uint8(t), k))
	}
	if allowOpposite {
		for _, k := range mirrorTurns {
			out = append(out, bitpattern.Reverse(bitpattern.RotateLeft(uint8(t), k)))
		}
	}
	return out
}

// ByRotation partitions s into groups of mutually matching tiles.
// See Matches for the rule selected by allowOpposite.
//
// Steps:
//  1. Start one singleton class per byte value.
//  2. For each member t, union t with every image of t that is also a member.
//  3. Walk members in ascending order; the first member seen of a class
//     becomes its representative and opens a new group.
//
// Complexity: O(n·8·α(256)) time, O(256) extra memory.
func ByRotation(s tile.Set, allowOpposite bool) []Group {
	members := s.Tiles()
	ds := newDisjointSet()
	for _, t := range members {
		for _, img := range images(t, allowOpposite) {
			if s.Contains(tile.Tile(img)) {
				ds.union(uint8(t), img)
			}
		}
	}

	var slot [256]int
	for i := range slot {
		slot[i] = -1
	}
	var groups []Group
	for _, t := range members {
		root := ds.find(uint8(t))
		if slot[root] < 0 {
			slot[root] = len(groups)
			groups = append(groups, Group{Representative: t})
		}
		g := &groups[slot[root]]
		g.Members = append(g.Members, t)
	}
	return groups
}
