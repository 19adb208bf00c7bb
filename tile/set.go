package tile

import (
	"fmt"
	"math/bits"
)

// Set is a fixed-size set of legal tiles, one bit per byte value [0..255].
// The zero value is an empty set ready to use. Sets are plain values: copying
// a Set copies its contents.
type Set struct {
	words [4]uint64
}

// NewSet builds a Set from ts. Duplicates collapse; the first illegal value
// aborts construction with *InvalidTileError.
func NewSet(ts ...Tile) (Set, error) {
	var s Set
	for _, t := range ts {
		if err := s.Add(t); err != nil {
			return Set{}, err
		}
	}
	return s, nil
}

// Add inserts t. Returns *InvalidTileError if t is not a legal tile.
func (s *Set) Add(t Tile) error {
	if !IsValid(uint8(t)) {
		return &InvalidTileError{Value: uint8(t)}
	}
	s.insert(t)
	return nil
}

// insert sets the bit for t without validation; callers guarantee legality.
func (s *Set) insert(t Tile) {
	s.words[t>>6] |= 1 << (t & 63)
}

// Contains reports whether t is a member.
func (s Set) Contains(t Tile) bool {
	return s.words[t>>6]&(1<<(t&63)) != 0
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return s.words[0] == 0 && s.words[1] == 0 && s.words[2] == 0 && s.words[3] == 0
}

// Tiles returns the members in ascending order.
func (s Set) Tiles() []Tile {
	out := make([]Tile, 0, s.Len())
	for wIdx, w := range s.words {
		for ; w != 0; w &= w - 1 {
			out = append(out, Tile(wIdx<<6+bits.TrailingZeros64(w)))
		}
	}
	return out
}

// Filter returns the subset of members for which keep reports true.
func (s Set) Filter(keep func(Tile) bool) Set {
	var out Set
	for wIdx, w := range s.words {
		for ; w != 0; w &= w - 1 {
			t := Tile(wIdx<<6 + bits.TrailingZeros64(w))
			if keep(t) {
				out.insert(t)
			}
		}
	}
	return out
}

// Union returns the members of s or o.
func (s Set) Union(o Set) (u Set) {
	for i := range s.words {
		u.words[i] = s.words[i] | o.words[i]
	}
	return
}

// Intersection returns the members of both s and o.
func (s Set) Intersection(o Set) (x Set) {
	for i := range s.words {
		x.words[i] = s.words[i] & o.words[i]
	}
	return
}

// IsSubset reports whether every member of s is a member of o.
func (s Set) IsSubset(o Set) bool {
	for i := range s.words {
		if s.words[i]&^o.words[i] != 0 {
			return false
		}
	}
	return true
}

// String lists the members as binary literals.
func (s Set) String() string {
	return fmt.Sprint(s.Tiles())
}
