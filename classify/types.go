package classify

import "github.com/katalvlaran/edgetile/tile"

// Group is one equivalence class of tiles.
type Group struct {
	// Representative is the smallest member.
	Representative tile.Tile
	// Members lists every tile of the class in ascending order,
	// Representative included.
	Members []tile.Tile
}

// Len returns the number of members.
func (g Group) Len() int { return len(g.Members) }

// Set returns the members as a tile.Set.
func (g Group) Set() tile.Set {
	s, _ := tile.NewSet(g.Members...) // members come from a validated Set
	return s
}

// PopulationGroups holds tiles bucketed by popcount; index i holds every
// tile with exactly i filled contacts, in ascending order.
type PopulationGroups [tile.Positions + 1][]tile.Tile
