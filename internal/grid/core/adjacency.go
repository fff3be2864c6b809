package core

// surface is the view of a grid that the movement rules need. Both grid kinds
// implement it; they differ only in what counts as a place to stand.
type surface interface {
	// standable reports whether (x,y) exists and may be occupied. It must be
	// false outside the grid.
	standable(x, y int) bool
	// wallsAt returns the walls of the in-bounds cell at (x,y).
	wallsAt(x, y int) Walls
}

// cornerPolicy decides how the flanking cardinal steps gate a diagonal step.
type cornerPolicy int

const (
	// flankAny needs at least one flanking cardinal open (corner cutting allowed).
	flankAny cornerPolicy = iota
	// flankBoth needs both flanking cardinals open.
	flankBoth
	// flankIgnored does not consult the flanking cardinals at all.
	flankIgnored
)

func cornerPolicyFor(noCornerCutting bool) cornerPolicy {
	if noCornerCutting {
		return flankBoth
	}
	return flankAny
}

// openSide reports whether a mover standing at (x,y) with walls own can step
// to the neighbour in direction d. The neighbour must be standable and a wall
// on either side of the shared boundary blocks the step.
func openSide(s surface, x, y int, own Walls, d Direction) bool {
	if !d.IsValid() {
		return false
	}
	n := Coordinate{X: x, Y: y}.Move(d)
	if !s.standable(n.X, n.Y) {
		return false
	}
	return !own.Has(d) && !s.wallsAt(n.X, n.Y).Has(d.Opposite())
}

// diagonalClear is the diagonal legality rule between a start cell with walls
// from and the cell one diagonal step away with walls to. The start needs one
// clear side out among the two composing the step, the target needs one clear
// side in, and each straight component must be clear on at least one of its
// two cells.
func diagonalClear(from, to Walls, diag Diagonal) bool {
	vert, horiz := diag.Flanks()
	fromV, fromH := !from.Has(vert), !from.Has(horiz)
	toV, toH := !to.Has(vert.Opposite()), !to.Has(horiz.Opposite())

	return (fromV || toV) &&
		(fromH || toH) &&
		(fromV || fromH) &&
		(toV || toH)
}

// neighborCoords lists the cells reachable in one legal step from (x,y):
// north, east, south, west, then north-west, north-east, south-east,
// south-west, skipping excluded ones.
func neighborCoords(s surface, x, y int, own Walls, allowDiagonal bool, policy cornerPolicy) []Coordinate {
	at := Coordinate{X: x, Y: y}
	out := make([]Coordinate, 0, 8)

	var open [4]bool
	for i, d := range Cardinals {
		if openSide(s, x, y, own, d) {
			open[i] = true
			out = append(out, at.Move(d))
		}
	}

	if !allowDiagonal {
		return out
	}

	for i, diag := range Diagonals {
		before, after := open[(i+3)%4], open[i]
		switch policy {
		case flankBoth:
			if !before || !after {
				continue
			}
		case flankAny:
			if !before && !after {
				continue
			}
		}

		t := at.Step(diag)
		if !s.standable(t.X, t.Y) {
			continue
		}
		if diagonalClear(own, s.wallsAt(t.X, t.Y), diag) {
			out = append(out, t)
		}
	}

	return out
}
