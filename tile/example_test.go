package tile_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edgetile/tile"
)

// ExampleEnumerate lists how many of the 256 byte values are legal tiles.
func ExampleEnumerate() {
	tiles := tile.Enumerate()
	fmt.Println("legal tiles:", len(tiles))
	fmt.Println("first:", tiles[0], "last:", tiles[len(tiles)-1])
	// Output:
	// legal tiles: 47
	// first: 0b00000000 last: 0b11111111
}

// ExampleNew shows how an illegal byte is reported.
func ExampleNew() {
	_, err := tile.New(0b00000010)
	fmt.Println(errors.Is(err, tile.ErrInvalidTile))
	fmt.Println(err)
	// Output:
	// true
	// tile: invalid tile 0b00000010: open corner flanked by a filled edge
}
