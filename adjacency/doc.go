// Package adjacency computes, for every legal tile and each of the four
// edge directions, the set of tiles that may be placed next to it so that
// the touching contact points agree.
//
// What:
//
//   - Direction names the four edge contacts of a tile: North (bit 1),
//     East (bit 3), South (bit 5) and West (bit 7). Corner positions are
//     not directions.
//   - Fits compares the 3-contact window of one tile facing a direction
//     with the window of the candidate facing back.
//   - Build evaluates Fits for every ordered pair of tiles and every
//     direction and stores the results in a read-only Table.
//
// How the windows line up:
//
//	The window of t facing d is t rotated right by d and masked to the
//	positions {7,0,1}. The candidate is bit-reversed, rotated right by a
//	fixed per-direction shift (North→2, East→0, South→6, West→4) and
//	masked the same way. Reversal flips the traversal direction of the
//	shared side, so t's contacts meet the candidate's mirrored contacts.
//
// Symmetry:
//
//	If o is in t's set for direction d then t is in o's set for
//	d.Opposite() (North↔South, East↔West).
//
// Complexity:
//
//   - Fits: O(1). Build: O(n²·4), n = |set| ≤ 256. Table lookups: O(1).
//
// Non-goals:
//
//   - Only pairwise compatibility is computed; whether a full plane can be
//     tiled is out of scope.
package adjacency
