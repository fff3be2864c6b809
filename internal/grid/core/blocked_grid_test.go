package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coordsOf(cells []*Cell) []Coordinate {
	out := make([]Coordinate, len(cells))
	for i, c := range cells {
		out[i] = c.Coord()
	}
	return out
}

func mustBlocked(t *testing.T, width, height int, matrix [][]any) *BlockedGrid {
	t.Helper()
	g, err := BlockedGridFromMatrix(width, height, matrix)
	require.NoError(t, err)
	return g
}

func mustCell(t *testing.T, g *BlockedGrid, x, y int) *Cell {
	t.Helper()
	c, err := g.CellAt(x, y)
	require.NoError(t, err)
	return c
}

func TestNewBlockedGrid(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"small grid", 5, 5},
		{"rectangular grid", 10, 20},
		{"single cell", 1, 1},
		{"empty grid", 0, 0},
		{"zero height", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewBlockedGrid(tt.width, tt.height)
			require.NoError(t, err)

			assert.Equal(t, tt.width, g.Width())
			assert.Equal(t, tt.height, g.Height())
			assert.Equal(t, tt.width*tt.height, g.EnterableCount())

			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					c := mustCell(t, g, x, y)
					assert.Equal(t, x, c.X)
					assert.Equal(t, y, c.Y)
					assert.True(t, c.Enterable)
					assert.Equal(t, Walls(0), c.Walls)
				}
			}
		})
	}
}

func TestNewBlockedGrid_InvalidDimensions(t *testing.T) {
	g, err := NewBlockedGrid(-1, 3)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	g, err = BlockedGridFromMatrix(3, -2, [][]int{})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestBlockedGridFromMatrix_DimensionMismatch(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		matrix        [][]int
	}{
		{"too few rows", 2, 3, [][]int{{0, 0}, {0, 0}}},
		{"too many rows", 2, 1, [][]int{{0, 0}, {0, 0}}},
		{"too few columns", 3, 2, [][]int{{0, 0}, {0, 0}}},
		{"ragged later row", 2, 2, [][]int{{0, 0}, {0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BlockedGridFromMatrix(tt.width, tt.height, tt.matrix)
			assert.Nil(t, g, "no partial grid on error")
			assert.ErrorIs(t, err, ErrDimensionMismatch)
		})
	}
}

func TestBlockedGridFromMatrix_NilMatrix(t *testing.T) {
	g, err := BlockedGridFromMatrix[int](3, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EnterableCount())
}

func TestBlockedGridFromMatrix_Encoding(t *testing.T) {
	g := mustBlocked(t, 3, 3, [][]any{
		{0, 1, "ne"},
		{false, true, nil},
		{"", 2.5, WallsOf(South)},
	})

	tests := []struct {
		name      string
		x, y      int
		enterable bool
		walls     string
	}{
		{"zero", 0, 0, true, ""},
		{"one", 1, 0, false, ""},
		{"wall letters", 2, 0, true, "ne"},
		{"false", 0, 1, true, ""},
		{"true", 1, 1, false, ""},
		{"nil", 2, 1, true, ""},
		{"empty string", 0, 2, true, ""},
		{"float", 1, 2, false, ""},
		{"bitmask", 2, 2, true, "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.enterable, g.IsEnterable(tt.x, tt.y))
			c := mustCell(t, g, tt.x, tt.y)
			assert.Equal(t, tt.walls, c.Walls.String())
		})
	}

	ne := mustCell(t, g, 2, 0)
	assert.False(t, ne.Open(North))
	assert.False(t, ne.Open(East))
	assert.True(t, ne.Open(South))
	assert.True(t, ne.Open(West))
}

func TestBlockedGridFromMatrix_TypedMatrices(t *testing.T) {
	ints, err := BlockedGridFromMatrix(2, 1, [][]int{{0, 1}})
	require.NoError(t, err)
	assert.True(t, ints.IsEnterable(0, 0))
	assert.False(t, ints.IsEnterable(1, 0))

	bools, err := BlockedGridFromMatrix(2, 1, [][]bool{{true, false}})
	require.NoError(t, err)
	assert.False(t, bools.IsEnterable(0, 0))
	assert.True(t, bools.IsEnterable(1, 0))

	strs, err := BlockedGridFromMatrix(2, 1, [][]string{{"w", "1"}})
	require.NoError(t, err)
	assert.Equal(t, 2, strs.EnterableCount(), "text entries are never blocked")
}

func TestBlockedGridFromMatrix_InvalidEntry(t *testing.T) {
	g, err := BlockedGridFromMatrix(2, 1, [][]any{{0, struct{}{}}})
	assert.Nil(t, g)
	require.ErrorIs(t, err, ErrInvalidEntry)
	assert.Contains(t, err.Error(), "cell (1,0)")
}

func TestBlockedGrid_InBounds(t *testing.T) {
	g, err := NewBlockedGrid(5, 4)
	require.NoError(t, err)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 4, 3, true},
		{"negative x", -1, 2, false},
		{"negative y", 2, -1, false},
		{"x equals width", 5, 2, false},
		{"y equals height", 2, 4, false},
		{"far away", 1 << 40, -(1 << 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.InBounds(tt.x, tt.y))
			assert.Equal(t, tt.expected, g.IsEnterable(tt.x, tt.y))
		})
	}
}

func TestBlockedGrid_QueriesNeverPanicOutOfRange(t *testing.T) {
	g := mustBlocked(t, 3, 3, [][]any{{0, 1, 0}, {"nesw", 0, 0}, {0, 0, 1}})
	far := []int{-1 << 40, -100, -2, 5, 100, 1 << 40}

	assert.NotPanics(t, func() {
		for _, x := range far {
			for _, y := range far {
				assert.False(t, g.IsEnterable(x, y))
				c := NewCell(x, y)
				for _, d := range Cardinals {
					assert.False(t, g.HasOpenSide(&c, d))
				}
				assert.Empty(t, g.Neighbors(&c, true, false))
				assert.Nil(t, g.NeighborCoords(Coordinate{x, y}, true, true))
			}
		}
		assert.False(t, g.HasOpenSide(nil, North))
		assert.Nil(t, g.Neighbors(nil, true, true))
	})
}

func TestBlockedGrid_CellOutsideButAdjacent(t *testing.T) {
	g, err := NewBlockedGrid(2, 2)
	require.NoError(t, err)

	// a cell just above the grid can step south into it
	c := NewCell(0, -1)
	assert.True(t, g.HasOpenSide(&c, South))
	assert.Equal(t, []Coordinate{{0, 0}}, coordsOf(g.Neighbors(&c, false, false)))
}

func TestBlockedGrid_SetEnterable(t *testing.T) {
	g, err := NewBlockedGrid(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.SetEnterable(1, 2, false))
	assert.False(t, g.IsEnterable(1, 2))
	assert.Equal(t, 8, g.EnterableCount())

	require.NoError(t, g.SetEnterable(1, 2, true))
	assert.True(t, g.IsEnterable(1, 2))

	err = g.SetEnterable(3, 0, false)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.EqualError(t, err, "cell (3,0): coordinates out of bounds")
}

func TestBlockedGrid_CellAtOutOfBounds(t *testing.T) {
	g, err := NewBlockedGrid(3, 3)
	require.NoError(t, err)

	for _, p := range []Coordinate{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		c, err := g.CellAt(p.X, p.Y)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrOutOfBounds, p.String())
	}
}

func TestBlockedGrid_Clone(t *testing.T) {
	g := mustBlocked(t, 3, 2, [][]any{{0, 1, "ne"}, {"s", 0, 0}})
	clone := g.Clone()

	assert.Equal(t, g.Width(), clone.Width())
	assert.Equal(t, g.Height(), clone.Height())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			orig := mustCell(t, g, x, y)
			cp := mustCell(t, clone, x, y)
			assert.Equal(t, *orig, *cp)
			assert.NotSame(t, orig, cp, "clone must not share cells")
		}
	}

	require.NoError(t, clone.SetEnterable(0, 0, false))
	assert.True(t, g.IsEnterable(0, 0), "mutating the clone leaks into the original")

	require.NoError(t, g.SetEnterable(1, 0, true))
	assert.False(t, clone.IsEnterable(1, 0), "mutating the original leaks into the clone")

	mustCell(t, clone, 2, 0).Walls = 0
	assert.Equal(t, "ne", mustCell(t, g, 2, 0).Walls.String())
}

func TestBlockedGrid_MutualWallBlocking(t *testing.T) {
	for _, d := range Cardinals {
		t.Run(d.String(), func(t *testing.T) {
			a := Coordinate{1, 1}
			b := a.Move(d)

			// wall on A's side
			g, err := NewBlockedGrid(3, 3)
			require.NoError(t, err)
			mustCell(t, g, a.X, a.Y).Walls = WallsOf(d)
			assert.False(t, g.HasOpenSide(mustCell(t, g, a.X, a.Y), d))
			assert.False(t, g.HasOpenSide(mustCell(t, g, b.X, b.Y), d.Opposite()))

			// wall on B's side
			g, err = NewBlockedGrid(3, 3)
			require.NoError(t, err)
			mustCell(t, g, b.X, b.Y).Walls = WallsOf(d.Opposite())
			assert.False(t, g.HasOpenSide(mustCell(t, g, a.X, a.Y), d))
			assert.False(t, g.HasOpenSide(mustCell(t, g, b.X, b.Y), d.Opposite()))

			// no wall
			g, err = NewBlockedGrid(3, 3)
			require.NoError(t, err)
			assert.True(t, g.HasOpenSide(mustCell(t, g, a.X, a.Y), d))

			// blocked neighbour
			require.NoError(t, g.SetEnterable(b.X, b.Y, false))
			assert.False(t, g.HasOpenSide(mustCell(t, g, a.X, a.Y), d))
		})
	}
}

func TestBlockedGrid_ConcreteScenario(t *testing.T) {
	g := mustBlocked(t, 2, 2, [][]any{{0, 0}, {1, 0}})

	assert.True(t, g.IsEnterable(0, 0))
	assert.False(t, g.IsEnterable(0, 1))
	assert.True(t, g.IsEnterable(1, 1))

	origin := mustCell(t, g, 0, 0)
	assert.Equal(t, []Coordinate{{1, 0}}, coordsOf(g.Neighbors(origin, false, false)))
	assert.Equal(t, []Coordinate{{1, 0}, {1, 1}}, coordsOf(g.Neighbors(origin, true, false)))
	assert.Equal(t, []Coordinate{{1, 0}}, coordsOf(g.Neighbors(origin, true, true)))
}

func TestBlockedGrid_NeighborOrdering(t *testing.T) {
	g, err := NewBlockedGrid(3, 3)
	require.NoError(t, err)

	expected := []Coordinate{
		{1, 0}, {2, 1}, {1, 2}, {0, 1}, // N, E, S, W
		{0, 0}, {2, 0}, {2, 2}, {0, 2}, // NW, NE, SE, SW
	}
	assert.Equal(t, expected, coordsOf(g.Neighbors(mustCell(t, g, 1, 1), true, true)))
	assert.Equal(t, expected, g.NeighborCoords(Coordinate{1, 1}, true, false))
	assert.Equal(t, expected[:4], g.NeighborCoords(Coordinate{1, 1}, false, false))
}

func TestBlockedGrid_CornerCutting(t *testing.T) {
	// the cell north of the centre is blocked
	g := mustBlocked(t, 3, 3, [][]any{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}})
	centre := mustCell(t, g, 1, 1)

	permissive := coordsOf(g.Neighbors(centre, true, false))
	assert.Equal(t, []Coordinate{{2, 1}, {1, 2}, {0, 1}, {0, 0}, {2, 0}, {2, 2}, {0, 2}}, permissive)

	strict := coordsOf(g.Neighbors(centre, true, true))
	assert.Equal(t, []Coordinate{{2, 1}, {1, 2}, {0, 1}, {2, 2}, {0, 2}}, strict)
}

func TestBlockedGrid_DiagonalLegalityRule(t *testing.T) {
	t.Run("vertical component walled at both ends", func(t *testing.T) {
		g := mustBlocked(t, 2, 2, [][]any{{"s", 0}, {0, "n"}})
		// east is open so the flank check passes; the wall pair still forbids the diagonal
		assert.Equal(t, []Coordinate{{1, 0}}, g.NeighborCoords(Coordinate{0, 0}, true, false))
	})

	t.Run("target walled on both entry sides", func(t *testing.T) {
		g := mustBlocked(t, 2, 2, [][]any{{0, 0}, {0, "nw"}})
		assert.Equal(t, []Coordinate{{1, 0}, {0, 1}}, g.NeighborCoords(Coordinate{0, 0}, true, false))
	})

	t.Run("diagonal target not enterable", func(t *testing.T) {
		g := mustBlocked(t, 2, 2, [][]any{{0, 0}, {0, 1}})
		assert.Equal(t, []Coordinate{{1, 0}, {0, 1}}, g.NeighborCoords(Coordinate{0, 0}, true, false))
	})
}

func TestBlockedGrid_NoDiagonalMode(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	matrix := make([][]any, 12)
	letters := []string{"", "n", "e", "s", "w", "ne", "sw", "nesw"}
	for y := range matrix {
		matrix[y] = make([]any, 9)
		for x := range matrix[y] {
			switch rng.Intn(3) {
			case 0:
				matrix[y][x] = 1
			case 1:
				matrix[y][x] = letters[rng.Intn(len(letters))]
			default:
				matrix[y][x] = 0
			}
		}
	}
	g := mustBlocked(t, 9, 12, matrix)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := mustCell(t, g, x, y)
			for _, noCorner := range []bool{false, true} {
				for _, n := range g.Neighbors(c, false, noCorner) {
					assert.True(t, c.Coord().IsAdjacentTo(n.Coord()), "%s -> %s", c.Coord(), n.Coord())
					assert.True(t, n.Enterable)
				}
			}
			strict := g.NeighborCoords(c.Coord(), true, true)
			loose := g.NeighborCoords(c.Coord(), true, false)
			assert.Subset(t, loose, strict, "strict corners must never add neighbours")
		}
	}
}
