package core

import "strings"

// Walls is a set of cell sides on which a wall is recorded, one bit per
// Direction. The zero value has no walls.
type Walls uint8

// AllWalls records a wall on every side.
const AllWalls Walls = 1<<North | 1<<East | 1<<South | 1<<West

// WallsOf builds a wall set from the given sides.
func WallsOf(dirs ...Direction) Walls {
	var w Walls
	for _, d := range dirs {
		w = w.With(d)
	}
	return w
}

// ParseWalls reads the compact letter encoding: each of the lowercase letters
// n, e, s and w records a wall on that side. Other characters are ignored and
// an empty string yields no walls.
func ParseWalls(s string) Walls {
	var w Walls
	for _, d := range Cardinals {
		if strings.IndexByte(s, d.Letter()) >= 0 {
			w = w.With(d)
		}
	}
	return w
}

// Has reports whether a wall is recorded on side d
func (w Walls) Has(d Direction) bool {
	return d.IsValid() && w&(1<<d) != 0
}

// With returns w with a wall added on side d
func (w Walls) With(d Direction) Walls {
	if !d.IsValid() {
		return w
	}
	return w | 1<<d
}

// Without returns w with any wall on side d removed
func (w Walls) Without(d Direction) Walls {
	if !d.IsValid() {
		return w
	}
	return w &^ (1 << d)
}

// String renders the letter encoding in n, e, s, w order.
func (w Walls) String() string {
	var b strings.Builder
	for _, d := range Cardinals {
		if w.Has(d) {
			b.WriteByte(d.Letter())
		}
	}
	return b.String()
}
