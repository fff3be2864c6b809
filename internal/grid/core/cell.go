package core

// Cell is one square of a BlockedGrid.
// Enterable: whether a mover may stand on the cell.
// Walls: sides of this cell on which a wall is recorded.
type Cell struct {
	X, Y      int
	Enterable bool
	Walls     Walls
}

// NewCell returns an enterable cell with no walls
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y, Enterable: true}
}

// NewCellWith returns a cell with every flag given explicitly
func NewCellWith(x, y int, enterable bool, walls Walls) Cell {
	return Cell{X: x, Y: y, Enterable: enterable, Walls: walls}
}

// Coord is the cell position
func (c Cell) Coord() Coordinate { return Coordinate{X: c.X, Y: c.Y} }

// Open reports whether no wall is recorded on this cell's side d
func (c Cell) Open(d Direction) bool { return d.IsValid() && !c.Walls.Has(d) }

// WallCell is one square of a WallGrid. It is always enterable; only its
// walls restrict movement.
type WallCell struct {
	X, Y  int
	Walls Walls
}

// NewWallCell returns a wall cell with no walls
func NewWallCell(x, y int) WallCell {
	return WallCell{X: x, Y: y}
}

// NewWallCellWith returns a wall cell with the given walls
func NewWallCellWith(x, y int, walls Walls) WallCell {
	return WallCell{X: x, Y: y, Walls: walls}
}

// Coord is the cell position
func (c WallCell) Coord() Coordinate { return Coordinate{X: c.X, Y: c.Y} }

// Open reports whether no wall is recorded on this cell's side d
func (c WallCell) Open(d Direction) bool { return d.IsValid() && !c.Walls.Has(d) }
