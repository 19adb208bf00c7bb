// Package bitpattern provides the pure bit operations that every other
// package of edgetile is built on: positional bit tests, circular rotation
// of an 8-bit ring, full bit reversal and positive modulo normalization.
//
// What:
//
//   - An 8-bit value is viewed as a ring of 8 contact positions, bit 0
//     being the least significant.
//   - RotateLeft / RotateRight rotate the ring; any shift is normalized
//     into [0,8) first, so multiples of 8 are the identity.
//   - Reverse mirrors the ring (bit 0 ↔ bit 7, bit 1 ↔ bit 6, …).
//
// Complexity:
//
//   - Every function is O(1) time and allocation-free.
//
// Errors:
//
//   - None. All functions are total over their domain. ModuloPositive panics
//     on m == 0, exactly like the built-in % operator.
package bitpattern
