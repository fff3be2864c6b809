package testutil

import (
	"github.com/mitchelldurbincs/tilegrid/internal/grid/core"
)

// Maze is a small grid with a known shortest route between two cells.
// Exactly one of Blocked or Walls is set. PathLength counts the cells on the
// shortest cardinal-only route, both ends included.
type Maze struct {
	Name       string
	Start, End core.Coordinate
	Blocked    [][]int
	Walls      [][]string
	PathLength int
}

// Navigable builds the maze's grid.
func (m Maze) Navigable() (core.Navigable, error) {
	if m.Walls != nil {
		g, err := core.WallGridFromMatrix(len(m.Walls[0]), len(m.Walls), m.Walls)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	g, err := core.BlockedGridFromMatrix(len(m.Blocked[0]), len(m.Blocked), m.Blocked)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func openField(w, h int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
	}
	return rows
}

// Mazes returns fresh copies of the reference mazes.
func Mazes() []Maze {
	return []Maze{
		{
			Name:  "maze 1",
			Start: core.NewCoordinate(0, 0),
			End:   core.NewCoordinate(1, 1),
			Blocked: [][]int{
				{0, 0},
				{1, 0},
			},
			PathLength: 3,
		},
		{
			Name:  "maze 2",
			Start: core.NewCoordinate(1, 1),
			End:   core.NewCoordinate(4, 4),
			Blocked: [][]int{
				{0, 0, 0, 0, 0},
				{1, 0, 1, 1, 0},
				{1, 0, 1, 0, 0},
				{0, 1, 0, 0, 0},
				{1, 0, 1, 1, 0},
				{0, 0, 1, 0, 0},
			},
			PathLength: 9,
		},
		{
			Name:  "maze 3",
			Start: core.NewCoordinate(0, 3),
			End:   core.NewCoordinate(3, 3),
			Blocked: [][]int{
				{0, 0, 0, 0, 0},
				{0, 0, 1, 1, 0},
				{0, 0, 1, 0, 0},
				{0, 0, 1, 0, 0},
				{1, 0, 1, 1, 0},
				{0, 0, 0, 0, 0},
			},
			PathLength: 10,
		},
		{
			Name:       "maze 4",
			Start:      core.NewCoordinate(4, 4),
			End:        core.NewCoordinate(19, 19),
			Blocked:    openField(20, 20),
			PathLength: 31,
		},
		{
			// maze 2 again, with fully walled cells instead of blocked ones
			Name:  "wall maze 1",
			Start: core.NewCoordinate(1, 1),
			End:   core.NewCoordinate(4, 4),
			Walls: [][]string{
				{"", "", "", "", ""},
				{"nesw", "", "nesw", "nesw", ""},
				{"nesw", "", "nesw", "", ""},
				{"", "nesw", "", "", ""},
				{"nesw", "", "nesw", "nesw", ""},
				{"", "", "nesw", "", ""},
			},
			PathLength: 9,
		},
		{
			Name:  "wall maze 2",
			Start: core.NewCoordinate(0, 0),
			End:   core.NewCoordinate(2, 2),
			Walls: [][]string{
				{"", "", "", "", ""},
				{"", "nw", "n", "ne", ""},
				{"", "w", "", "e", ""},
				{"", "w", "", "e", ""},
				{"", "w", "", "e", ""},
				{"", "", "", "", ""},
			},
			PathLength: 11,
		},
		{
			Name:  "wall maze 3",
			Start: core.NewCoordinate(0, 0),
			End:   core.NewCoordinate(1, 0),
			Walls: [][]string{
				{"", "w"},
				{"", ""},
			},
			PathLength: 4,
		},
	}
}
