// Package render turns the results of tile, classify and adjacency into
// plain-text sheets and writes them to a billy.Filesystem.
//
// What:
//
//   - Tile draws a tile as a 3×3 glyph block (filled ■, open □):
//
//     0 1 2
//     7 □ 3
//     6 5 4
//
//   - Groups lays out each equivalence group as one row of blocks, groups
//     separated by a blank line.
//   - Adjacency draws, for every tile, a framed 3×3 neighbourhood with one
//     sampled compatible tile per edge direction; corners stay blank.
//   - WriteSheets stores named sheets through a billy.Filesystem.
//
// Determinism:
//
//	Sampling uses an injected *rand.Rand (WithRand) or a seed (WithSeed).
//	Seed 0 maps to a fixed default seed, so the same inputs always render
//	the same sheets. The core packages never sample.
//
// Errors:
//
//   - ErrEmptySheetName: a Sheet without a file name.
//   - Filesystem errors are returned wrapped with the sheet name; a failed
//     Close is merged with any write error.
package render
