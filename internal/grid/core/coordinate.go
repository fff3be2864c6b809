package core

import (
	"fmt"

	"github.com/mitchelldurbincs/tilegrid/internal/common"
)

// Coordinate represents a cell position on a grid
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a row-major cell index
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return common.IsValidCoordinate(c.X, c.Y, width, height)
}

// ToIndex converts the coordinate to a row-major cell index
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	return common.Abs(c.X-other.X) + common.Abs(c.Y-other.Y)
}

// ChebyshevTo is the fewest steps to other on an open grid when diagonal
// steps are allowed
func (c Coordinate) ChebyshevTo(other Coordinate) int {
	return common.Chebyshev(c.X, c.Y, other.X, other.Y)
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	return common.IsOrthogonalStep(other.X-c.X, other.Y-c.Y)
}

// IsDiagonalTo checks if other is exactly one diagonal step away
func (c Coordinate) IsDiagonalTo(other Coordinate) bool {
	return common.IsDiagonalStep(other.X-c.X, other.Y-c.Y)
}

// Add returns the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// Sub returns the difference between this coordinate and another
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X - other.X,
		Y: c.Y - other.Y,
	}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move returns the coordinate one step away in the given direction
func (c Coordinate) Move(direction Direction) Coordinate {
	return c.Add(direction.Delta())
}

// Step returns the coordinate one diagonal step away
func (c Coordinate) Step(diagonal Diagonal) Coordinate {
	return c.Add(diagonal.Delta())
}

// DirectionTo returns the direction from this coordinate to an orthogonally
// adjacent one. ok is false if the coordinates are not adjacent.
func (c Coordinate) DirectionTo(other Coordinate) (dir Direction, ok bool) {
	if !c.IsAdjacentTo(other) {
		return 0, false
	}
	d := other.Sub(c)
	for _, dir := range Cardinals {
		if dir.Delta() == d {
			return dir, true
		}
	}
	return 0, false
}

// DiagonalTo returns the diagonal from this coordinate to other. ok is false
// unless other is exactly one diagonal step away.
func (c Coordinate) DiagonalTo(other Coordinate) (diag Diagonal, ok bool) {
	if !c.IsDiagonalTo(other) {
		return 0, false
	}
	d := other.Sub(c)
	for _, diag := range Diagonals {
		if diag.Delta() == d {
			return diag, true
		}
	}
	return 0, false
}
