package render

import (
	"math/rand"

	"github.com/katalvlaran/edgetile/tile"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Sample picks one member of s uniformly at random.
// Returns false for an empty set; a nil rng uses the default seed.
//
// Complexity: O(|s|).
func Sample(s tile.Set, rng *rand.Rand) (tile.Tile, bool) {
	members := s.Tiles()
	if len(members) == 0 {
		return 0, false
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	return members[rng.Intn(len(members))], true
}
