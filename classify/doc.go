// Package classify partitions a set of legal tiles into equivalence groups.
//
// What:
//
//   - ByPopulation buckets tiles by the number of filled contacts, indexed
//     directly by that count (0..8).
//   - ByRotation groups tiles that are the same shape up to a quarter-turn
//     rotation. A quarter turn is a ring rotation by an even amount
//     (0,2,4,6); odd rotations would swap corners with edges and are never
//     used on their own.
//   - ByRotation with allowOpposite also matches a tile against the bit
//     reversal of another tile rotated by an odd amount (1,3,5,7), which
//     models mirrored orientations.
//
// Determinism:
//
//	Grouping runs a disjoint-set (union-find) over the byte domain [0,255]
//	with the Matches predicate as the union rule, so the partition never
//	depends on map iteration order. Each group's representative is its
//	smallest member; groups are returned in ascending representative
//	order and members in ascending order.
//
// Guarantees:
//
//   - Totality: every tile of the input set appears in exactly one group.
//   - Consistency: every member Matches its group's representative.
//   - Refinement: every group of ByRotation(s, false) is contained in one
//     group of ByRotation(s, true).
//
// Complexity:
//
//   - ByPopulation: O(n). ByRotation: O(n·8·α(256)), n = |set| ≤ 256.
package classify
