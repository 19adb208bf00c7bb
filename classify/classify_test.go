// File: classify/classify_test.go
package classify_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/edgetile/bitpattern"
	"github.com/katalvlaran/edgetile/classify"
	"github.com/katalvlaran/edgetile/tile"
)

// ClassifySuite runs every grouping scheme over the full legal set.
type ClassifySuite struct {
	suite.Suite
	legal tile.Set
}

func (s *ClassifySuite) SetupSuite() {
	s.legal = tile.Legal()
}

// TestPopulation_Partition checks exhaustiveness, disjointness and bucket indices.
func (s *ClassifySuite) TestPopulation_Partition() {
	groups := classify.ByPopulation(s.legal)
	seen := map[tile.Tile]bool{}
	total := 0
	for n, bucket := range groups {
		for _, t := range bucket {
			require.Equal(s.T(), n, bitpattern.PopCount(uint8(t)), "tile %v in bucket %d", t, n)
			require.False(s.T(), seen[t], "tile %v appears twice", t)
			seen[t] = true
		}
		total += len(bucket)
	}
	require.Equal(s.T(), s.legal.Len(), total)

	sizes := make([]int, len(groups))
	for n, bucket := range groups {
		sizes[n] = len(bucket)
	}
	require.Equal(s.T(), []int{1, 4, 6, 8, 9, 8, 6, 4, 1}, sizes)
}

// TestRotation_GroupCounts pins the number of classes: 15 under quarter
// turns (Burnside: (47+3+7+3)/4) and 14 once mirrors are allowed
// (Burnside: (60+4·13)/8).
func (s *ClassifySuite) TestRotation_GroupCounts() {
	require.Len(s.T(), classify.ByRotation(s.legal, false), 15)
	require.Len(s.T(), classify.ByRotation(s.legal, true), 14)
}

// TestRotation_Totality checks that every tile lands in exactly one group, for both rules.
func (s *ClassifySuite) TestRotation_Totality() {
	for _, allow := range []bool{false, true} {
		seen := map[tile.Tile]int{}
		for _, g := range classify.ByRotation(s.legal, allow) {
			for _, t := range g.Members {
				seen[t]++
			}
		}
		require.Len(s.T(), seen, s.legal.Len(), "allowOpposite=%v", allow)
		for t, n := range seen {
			require.Equal(s.T(), 1, n, "tile %v counted %d times (allowOpposite=%v)", t, n, allow)
		}
	}
}

// TestRotation_Consistency checks every member against its representative
// and the ordering guarantees.
func (s *ClassifySuite) TestRotation_Consistency() {
	for _, allow := range []bool{false, true} {
		groups := classify.ByRotation(s.legal, allow)
		for i, g := range groups {
			require.Equal(s.T(), g.Members[0], g.Representative)
			if i > 0 {
				require.Less(s.T(), groups[i-1].Representative, g.Representative)
			}
			for j, t := range g.Members {
				require.True(s.T(), classify.Matches(t, g.Representative, allow),
					"%v does not match %v (allowOpposite=%v)", t, g.Representative, allow)
				if j > 0 {
					require.Less(s.T(), g.Members[j-1], t)
				}
			}
		}
		// distinct groups never match each other
		for i := range groups {
			for j := i + 1; j < len(groups); j++ {
				require.False(s.T(), classify.Matches(groups[i].Representative, groups[j].Representative, allow))
			}
		}
	}
}

// TestRotation_Refinement checks that each quarter-turn group sits inside one mirror group.
func (s *ClassifySuite) TestRotation_Refinement() {
	fine := classify.ByRotation(s.legal, false)
	coarse := classify.ByRotation(s.legal, true)
	for _, f := range fine {
		fs := f.Set()
		contained := 0
		for _, c := range coarse {
			if fs.IsSubset(c.Set()) {
				contained++
			}
		}
		require.Equal(s.T(), 1, contained, "group %v", f.Members)
	}
}

// TestRotation_Deterministic runs the grouping twice and compares results.
func (s *ClassifySuite) TestRotation_Deterministic() {
	require.Equal(s.T(), classify.ByRotation(s.legal, true), classify.ByRotation(s.legal, true))
	require.Equal(s.T(), classify.ByRotation(s.legal, false), classify.ByRotation(s.legal, false))
}

func TestClassifySuite(t *testing.T) {
	suite.Run(t, new(ClassifySuite))
}

// TestRotation_KnownGroups pins a few classes by hand.
func TestRotation_KnownGroups(t *testing.T) {
	groups := classify.ByRotation(tile.Legal(), false)
	byRep := map[tile.Tile][]tile.Tile{}
	for _, g := range groups {
		byRep[g.Representative] = g.Members
	}
	require.Equal(t, []tile.Tile{0x00}, byRep[0x00])
	require.Equal(t, []tile.Tile{0x55}, byRep[0x55])
	require.Equal(t, []tile.Tile{0xFF}, byRep[0xFF])
	// single corner
	require.Equal(t, []tile.Tile{0x01, 0x04, 0x10, 0x40}, byRep[0x01])
	// two adjacent corners joined by their edge
	require.Equal(t, []tile.Tile{0x07, 0x1C, 0x70, 0xC1}, byRep[0x07])
}

// TestRotation_MirrorPair shows a chiral pair: corners 0,2,4 with edge 1
// versus edge 3 are distinct under quarter turns and merge as mirrors.
func TestRotation_MirrorPair(t *testing.T) {
	pair, err := tile.NewSet(0x17, 0x1D)
	require.NoError(t, err)

	require.False(t, classify.Matches(0x1D, 0x17, false))
	require.True(t, classify.Matches(0x1D, 0x17, true))
	require.True(t, classify.Matches(0x17, 0x1D, true))

	require.Len(t, classify.ByRotation(pair, false), 2)
	merged := classify.ByRotation(pair, true)
	require.Len(t, merged, 1)
	require.Equal(t, tile.Tile(0x17), merged[0].Representative)
	require.Equal(t, []tile.Tile{0x17, 0x1D}, merged[0].Members)
}

// TestRotation_Subset groups a set that is not closed under rotation.
func TestRotation_Subset(t *testing.T) {
	s, err := tile.NewSet(0x01, 0x07, 0x04)
	require.NoError(t, err)
	groups := classify.ByRotation(s, false)
	require.Equal(t, []classify.Group{
		{Representative: 0x01, Members: []tile.Tile{0x01, 0x04}},
		{Representative: 0x07, Members: []tile.Tile{0x07}},
	}, groups)
}

// TestRotation_Empty returns no groups for an empty set.
func TestRotation_Empty(t *testing.T) {
	require.Empty(t, classify.ByRotation(tile.Set{}, true))
	require.Equal(t, classify.PopulationGroups{}, classify.ByPopulation(tile.Set{}))
}

// TestMatches_Symmetric checks symmetry of the predicate over the whole byte domain.
func TestMatches_Symmetric(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, allow := range []bool{false, true} {
				ta, tb := tile.Tile(a), tile.Tile(b)
				require.Equal(t, classify.Matches(ta, tb, allow), classify.Matches(tb, ta, allow))
			}
		}
	}
}
