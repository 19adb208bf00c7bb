package bitpattern_test

import (
	"fmt"

	"github.com/katalvlaran/edgetile/bitpattern"
)

// ExampleRotateLeft shows that the ring wraps around: bits shifted out of
// position 7 re-enter at position 0.
func ExampleRotateLeft() {
	fmt.Printf("%08b\n", bitpattern.RotateLeft(0b10000011, 2))
	fmt.Printf("%08b\n", bitpattern.RotateLeft(0b10000011, 8))
	// Output:
	// 00001110
	// 10000011
}

// ExampleReverse mirrors the ring.
func ExampleReverse() {
	fmt.Printf("%08b\n", bitpattern.Reverse(0b00000111))
	// Output:
	// 11100000
}
