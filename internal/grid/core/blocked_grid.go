package core

import "github.com/mitchelldurbincs/tilegrid/internal/common"

// BlockedGrid is a rectangular grid of Cells where a cell may be blocked
// (not enterable) and may also record walls on any of its sides.
//
// Cells are stored row-major; the cell at (x,y) always has X == x and Y == y.
// A BlockedGrid is not safe for concurrent mutation. Give each concurrent
// explorer its own Clone.
type BlockedGrid struct {
	width, height int
	cells         []Cell
}

// NewBlockedGrid returns a width x height grid of enterable cells without walls.
func NewBlockedGrid(width, height int) (*BlockedGrid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	g := &BlockedGrid{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range g.cells {
		c := FromIndex(i, width)
		g.cells[i] = NewCell(c.X, c.Y)
	}
	return g, nil
}

// BlockedGridFromMatrix builds a grid from a row-major matrix (matrix[y][x])
// of height rows by width columns. A nil matrix is the same as none at all.
//
// Entries are read one cell at a time: nil, false and 0 leave the cell
// enterable; true and any non-zero number block it; a string leaves it
// enterable and records a wall for each n, e, s or w letter it contains; a
// Walls value leaves it enterable with those walls. Other entry types fail
// with ErrInvalidEntry. A shape that disagrees with width and height fails
// with ErrDimensionMismatch and no grid is returned.
func BlockedGridFromMatrix[E any](width, height int, matrix [][]E) (*BlockedGrid, error) {
	if matrix == nil {
		return NewBlockedGrid(width, height)
	}
	if err := checkShape(width, height, matrix); err != nil {
		return nil, err
	}

	g, err := NewBlockedGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y, row := range matrix {
		for x, entry := range row {
			enterable, walls, err := interpretEntry(entry)
			if err != nil {
				return nil, WrapCellError(x, y, err)
			}
			c := &g.cells[g.idx(x, y)]
			c.Enterable = enterable
			c.Walls = walls
		}
	}
	return g, nil
}

func (g *BlockedGrid) idx(x, y int) int { return y*g.width + x }

func (g *BlockedGrid) Width() int  { return g.width }
func (g *BlockedGrid) Height() int { return g.height }

// InBounds reports whether (x,y) lies inside the grid
func (g *BlockedGrid) InBounds(x, y int) bool {
	return common.IsValidCoordinate(x, y, g.width, g.height)
}

// IsEnterable reports whether the cell at (x,y) may be occupied. It is false
// for any position outside the grid.
func (g *BlockedGrid) IsEnterable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.idx(x, y)].Enterable
}

// SetEnterable changes whether the cell at (x,y) may be occupied.
// Returns ErrOutOfBounds if (x,y) is outside the grid.
func (g *BlockedGrid) SetEnterable(x, y int, enterable bool) error {
	if !g.InBounds(x, y) {
		return WrapCellError(x, y, ErrOutOfBounds)
	}
	g.cells[g.idx(x, y)].Enterable = enterable
	return nil
}

// CellAt returns the grid's own cell at (x,y), or ErrOutOfBounds.
func (g *BlockedGrid) CellAt(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, WrapCellError(x, y, ErrOutOfBounds)
	}
	return &g.cells[g.idx(x, y)], nil
}

// EnterableCount returns how many cells may be occupied
func (g *BlockedGrid) EnterableCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Enterable {
			n++
		}
	}
	return n
}

// HasOpenSide reports whether a mover on c can step one cell in direction d:
// the neighbour must exist and be enterable, and neither c's side d nor the
// neighbour's opposite side may record a wall.
func (g *BlockedGrid) HasOpenSide(c *Cell, d Direction) bool {
	if c == nil {
		return false
	}
	return openSide(g, c.X, c.Y, c.Walls, d)
}

// Neighbors returns the grid cells reachable from c in one legal step, in the
// order north, east, south, west, north-west, north-east, south-east,
// south-west (excluded cells are skipped).
//
// With allowDiagonal, a diagonal cell is included when it is enterable, the
// diagonal legality rule holds, and its flanking cardinal steps permit it:
// both must be open if noCornerCutting is set, otherwise either one suffices.
// The flags of c itself are used, so c need not belong to the grid.
func (g *BlockedGrid) Neighbors(c *Cell, allowDiagonal, noCornerCutting bool) []*Cell {
	if c == nil {
		return nil
	}
	coords := neighborCoords(g, c.X, c.Y, c.Walls, allowDiagonal, cornerPolicyFor(noCornerCutting))
	out := make([]*Cell, len(coords))
	for i, n := range coords {
		out[i] = &g.cells[g.idx(n.X, n.Y)]
	}
	return out
}

// NeighborCoords is Neighbors for the grid's own cell at the given position.
// It returns nil when the position is outside the grid.
func (g *BlockedGrid) NeighborCoords(at Coordinate, allowDiagonal, noCornerCutting bool) []Coordinate {
	if !g.InBounds(at.X, at.Y) {
		return nil
	}
	walls := g.cells[g.idx(at.X, at.Y)].Walls
	return neighborCoords(g, at.X, at.Y, walls, allowDiagonal, cornerPolicyFor(noCornerCutting))
}

// Clone returns an independent deep copy of the grid.
func (g *BlockedGrid) Clone() *BlockedGrid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &BlockedGrid{width: g.width, height: g.height, cells: cells}
}

func (g *BlockedGrid) standable(x, y int) bool { return g.IsEnterable(x, y) }

func (g *BlockedGrid) wallsAt(x, y int) Walls { return g.cells[g.idx(x, y)].Walls }
