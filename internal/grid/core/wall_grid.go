package core

import "github.com/mitchelldurbincs/tilegrid/internal/common"

// WallGrid is a rectangular grid of WallCells. Every cell can be stood on;
// movement is restricted only by walls between adjacent cells.
//
// Diagonal steps are not gated by the flanking cardinal steps: a diagonal
// neighbour is included whenever it exists and the diagonal legality rule
// holds, and the noCornerCutting argument of Neighbors has no effect. This
// keeps compatibility with existing wall mazes. Build the grid
// WithStrictCorners to apply the same flanking rule as BlockedGrid.
type WallGrid struct {
	width, height int
	cells         []WallCell
	strictCorners bool
}

// WallGridOption configures a WallGrid at construction.
type WallGridOption func(*WallGrid)

// WithStrictCorners makes diagonal steps honour noCornerCutting the way
// BlockedGrid does.
func WithStrictCorners() WallGridOption {
	return func(g *WallGrid) { g.strictCorners = true }
}

// NewWallGrid returns a width x height grid with no walls.
func NewWallGrid(width, height int, opts ...WallGridOption) (*WallGrid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	g := &WallGrid{width: width, height: height, cells: make([]WallCell, width*height)}
	for i := range g.cells {
		c := FromIndex(i, width)
		g.cells[i] = NewWallCell(c.X, c.Y)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// WallGridFromMatrix builds a grid from a row-major matrix of wall letters,
// one string per cell ("ne" records walls on the north and east sides, ""
// records none). A nil matrix is the same as none at all. A shape that
// disagrees with width and height fails with ErrDimensionMismatch.
func WallGridFromMatrix(width, height int, matrix [][]string, opts ...WallGridOption) (*WallGrid, error) {
	if matrix == nil {
		return NewWallGrid(width, height, opts...)
	}
	if err := checkShape(width, height, matrix); err != nil {
		return nil, err
	}

	g, err := NewWallGrid(width, height, opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range matrix {
		for x, letters := range row {
			g.cells[g.idx(x, y)].Walls = ParseWalls(letters)
		}
	}
	return g, nil
}

func (g *WallGrid) idx(x, y int) int { return y*g.width + x }

func (g *WallGrid) Width() int  { return g.width }
func (g *WallGrid) Height() int { return g.height }

// StrictCorners reports whether the grid was built WithStrictCorners
func (g *WallGrid) StrictCorners() bool { return g.strictCorners }

// InBounds reports whether (x,y) lies inside the grid
func (g *WallGrid) InBounds(x, y int) bool {
	return common.IsValidCoordinate(x, y, g.width, g.height)
}

// IsEnterable is InBounds: every cell of a wall grid can be occupied.
func (g *WallGrid) IsEnterable(x, y int) bool {
	return g.InBounds(x, y)
}

// CellAt returns the grid's own cell at (x,y), or ErrOutOfBounds.
func (g *WallGrid) CellAt(x, y int) (*WallCell, error) {
	if !g.InBounds(x, y) {
		return nil, WrapCellError(x, y, ErrOutOfBounds)
	}
	return &g.cells[g.idx(x, y)], nil
}

// HasOpenSide reports whether a mover on c can step one cell in direction d:
// the neighbour must exist, and neither c's side d nor the neighbour's
// opposite side may record a wall.
func (g *WallGrid) HasOpenSide(c *WallCell, d Direction) bool {
	if c == nil {
		return false
	}
	return openSide(g, c.X, c.Y, c.Walls, d)
}

// Neighbors returns the grid cells reachable from c in one legal step, in the
// same order as BlockedGrid.Neighbors.
func (g *WallGrid) Neighbors(c *WallCell, allowDiagonal, noCornerCutting bool) []*WallCell {
	if c == nil {
		return nil
	}
	coords := neighborCoords(g, c.X, c.Y, c.Walls, allowDiagonal, g.cornerPolicy(noCornerCutting))
	out := make([]*WallCell, len(coords))
	for i, n := range coords {
		out[i] = &g.cells[g.idx(n.X, n.Y)]
	}
	return out
}

// NeighborCoords is Neighbors for the grid's own cell at the given position.
// It returns nil when the position is outside the grid.
func (g *WallGrid) NeighborCoords(at Coordinate, allowDiagonal, noCornerCutting bool) []Coordinate {
	if !g.InBounds(at.X, at.Y) {
		return nil
	}
	walls := g.cells[g.idx(at.X, at.Y)].Walls
	return neighborCoords(g, at.X, at.Y, walls, allowDiagonal, g.cornerPolicy(noCornerCutting))
}

// Clone returns an independent deep copy of the grid.
func (g *WallGrid) Clone() *WallGrid {
	cells := make([]WallCell, len(g.cells))
	copy(cells, g.cells)
	return &WallGrid{width: g.width, height: g.height, cells: cells, strictCorners: g.strictCorners}
}

func (g *WallGrid) cornerPolicy(noCornerCutting bool) cornerPolicy {
	if !g.strictCorners {
		return flankIgnored
	}
	return cornerPolicyFor(noCornerCutting)
}

func (g *WallGrid) standable(x, y int) bool { return g.InBounds(x, y) }

func (g *WallGrid) wallsAt(x, y int) Walls { return g.cells[g.idx(x, y)].Walls }
