package classify

import (
	"github.com/katalvlaran/edgetile/bitpattern"
	"github.com/katalvlaran/edgetile/tile"
)

// ByPopulation buckets the members of s by their number of filled contacts.
// Buckets with no tiles are nil.
//
// Complexity: O(n).
func ByPopulation(s tile.Set) PopulationGroups {
	var out PopulationGroups
	for _, t := range s.Tiles() {
		n := bitpattern.PopCount(uint8(t))
		out[n] = append(out[n], t)
	}
	return out
}
