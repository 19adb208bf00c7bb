package bitpattern

import "math/bits"

// Width is the number of positions in the ring.
const Width = 8

// ModuloPositive normalizes n mod m into [0, m) for m > 0.
//
//	ModuloPositive(-1, 8) == 7
//	ModuloPositive(9, 8)  == 1
//
// Complexity: O(1).
func ModuloPositive(n, m int) int {
	return ((n % m) + m) % m
}

// NthBit reports whether bit n of v is set (n = 0 is the least significant).
// Positions outside [0,8) are never set.
func NthBit(v uint8, n int) bool {
	if n < 0 || n >= Width {
		return false
	}
	return (v>>uint(n))&1 == 1
}

// RotateLeft rotates the low 8 bits of v left by s positions.
// The shift is taken modulo 8, so s%8 == 0 returns v unchanged and a
// negative shift rotates right.
func RotateLeft(v uint8, s int) uint8 {
	return bits.RotateLeft8(v, ModuloPositive(s, Width))
}

// RotateRight rotates the low 8 bits of v right by s positions.
// RotateRight(RotateLeft(v, s), s) == v for every v and s.
func RotateRight(v uint8, s int) uint8 {
	return bits.RotateLeft8(v, -ModuloPositive(s, Width))
}

// Reverse returns v with its bit order reversed.
func Reverse(v uint8) uint8 {
	return bits.Reverse8(v)
}

// PopCount returns the number of set bits in v, in [0,8].
func PopCount(v uint8) int {
	return bits.OnesCount8(v)
}
