package core

import (
	"fmt"
	"strings"
)

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Cardinals lists the cardinal directions clockwise from North. Neighbour
// enumeration follows this order.
var Cardinals = [4]Direction{North, East, South, West}

var directionVectors = [4]Coordinate{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

var directionNames = [4]string{"north", "east", "south", "west"}

// IsValid returns true if the direction is one of the four cardinals
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction pointing back across the same boundary.
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the coordinate offset of one step in this direction
func (d Direction) Delta() Coordinate {
	if !d.IsValid() {
		return Coordinate{}
	}
	return directionVectors[d]
}

// Letter returns the wall-encoding character for the direction
func (d Direction) Letter() byte {
	if !d.IsValid() {
		return '?'
	}
	return directionNames[d][0]
}

func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts a full direction name or its initial letter, in any case.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Cardinals {
		if name == directionNames[d] || (len(name) == 1 && name[0] == d.Letter()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
}

// Diagonal represents one of the four diagonal directions
type Diagonal int

const (
	NorthWest Diagonal = iota
	NorthEast
	SouthEast
	SouthWest
)

// Diagonals lists the diagonal directions clockwise from NorthWest. Diagonal i
// lies between Cardinals[i-1] and Cardinals[i] (mod 4).
var Diagonals = [4]Diagonal{NorthWest, NorthEast, SouthEast, SouthWest}

// IsValid returns true if the diagonal is one of the four defined values
func (d Diagonal) IsValid() bool {
	return d >= NorthWest && d <= SouthWest
}

// Flanks returns the vertical and horizontal components of the diagonal,
// which are also its two flanking cardinal directions.
func (d Diagonal) Flanks() (vertical, horizontal Direction) {
	switch d {
	case NorthWest:
		return North, West
	case NorthEast:
		return North, East
	case SouthEast:
		return South, East
	default:
		return South, West
	}
}

// Delta returns the (±1,±1) offset of one step along the diagonal
func (d Diagonal) Delta() Coordinate {
	if !d.IsValid() {
		return Coordinate{}
	}
	v, h := d.Flanks()
	return v.Delta().Add(h.Delta())
}

func (d Diagonal) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Diagonal(%d)", int(d))
	}
	v, h := d.Flanks()
	return v.String() + "-" + h.String()
}
