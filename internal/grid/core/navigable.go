package core

// Navigable is what a search algorithm needs from a grid: bounds, whether a
// cell can be occupied, and the legal single-step moves from a cell.
type Navigable interface {
	Width() int
	Height() int
	InBounds(x, y int) bool
	IsEnterable(x, y int) bool
	NeighborCoords(at Coordinate, allowDiagonal, noCornerCutting bool) []Coordinate
}

var (
	_ Navigable = (*BlockedGrid)(nil)
	_ Navigable = (*WallGrid)(nil)
)
