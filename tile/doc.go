// Package tile defines the edge-tile value type, the corner-consistency
// validity rule and the read-only set of legal tiles.
//
// What:
//
//   - A Tile is an 8-bit ring of contact points around a unit cell. Even
//     positions (0,2,4,6) are corners, odd positions (1,3,5,7) are edge
//     midpoints. Laid out on the cell:
//
//     0 1 2
//     7 · 3
//     6 5 4
//
//   - IsValid applies the corner-consistency rule: an open corner may not
//     be flanked by a filled edge.
//   - Enumerate / Legal filter all 256 byte values through IsValid in
//     ascending order.
//   - Set is a fixed-size 256-bit set of tiles that can only ever hold legal
//     tiles: the single entry point Add rejects anything else.
//
// Errors:
//
//   - ErrInvalidTile: sentinel for a byte that breaks the corner rule.
//   - *InvalidTileError: carries the offending value and unwraps to
//     ErrInvalidTile.
//
// Complexity:
//
//   - IsValid: O(1). Enumerate / Legal: O(256).
//   - Set membership and insertion: O(1); Tiles / Len: O(4) words.
package tile
