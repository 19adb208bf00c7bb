// Package edgetile is an in-memory catalogue of 8-contact edge tiles: which
// of the 256 possible contact patterns are legal, which of them are the same
// shape, and which may sit next to each other.
//
// What is an edge tile?
//
//	A unit cell with 8 contact points around its border, alternating corner
//	and edge midpoint, stored as one byte (bit i = contact i filled):
//
//	    0 1 2
//	    7 · 3
//	    6 5 4
//
//	A tile is legal when no open corner is flanked by a filled edge.
//
// Under the hood, everything is organized in small packages:
//
//	bitpattern/ bit tests, ring rotation, bit reversal, positive modulo
//	tile/       Tile, validity rule, legal-tile enumeration, 256-bit Set
//	classify/   grouping by popcount, by quarter turns, by turns + mirrors
//	adjacency/  per-tile, per-direction compatibility table
//	render/     text sheets, seeded preview sampling, billy file output
//
// The core packages are deterministic and side-effect free; randomness and
// I/O live in render and cmd/edgetiles.
//
//	go install github.com/katalvlaran/edgetile/cmd/edgetiles@latest
package edgetile
