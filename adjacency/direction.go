package adjacency

import "fmt"

// Direction is the ring position of an edge contact.
type Direction uint8

const (
	// North is the top edge midpoint (bit 1).
	North Direction = 1
	// East is the right edge midpoint (bit 3).
	East Direction = 3
	// South is the bottom edge midpoint (bit 5).
	South Direction = 5
	// West is the left edge midpoint (bit 7).
	West Direction = 7
)

// Directions lists the edge directions clockwise starting at North.
var Directions = [4]Direction{North, East, South, West}

// Valid reports whether d is one of the four edge directions.
func (d Direction) Valid() bool {
	return d < 8 && d%2 == 1
}

// Index returns d's position in Directions (0..3), or -1 for a non-edge position.
func (d Direction) Index() int {
	if !d.Valid() {
		return -1
	}
	return int(d / 2)
}

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Offset returns the grid step (dx, dy) towards the neighbour in direction d,
// with y growing downwards. Non-edge positions return (0, 0).
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// alignShift is the right rotation applied to the reversed candidate so
// that its contacts facing back at d land on the window positions {7,0,1}.
func alignShift(d Direction) int {
	switch d {
	case North:
		return 2
	case East:
		return 0
	case South:
		return 6
	case West:
		return 4
	}
	return 0
}
