package testutil

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tilegrid/internal/grid/core"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// PathLength runs a breadth-first search over g and returns the number of
// cells on a shortest route from start to end, both included. It returns 0
// when end cannot be reached or start is not enterable.
func PathLength(g core.Navigable, start, end core.Coordinate, allowDiagonal, noCornerCutting bool) int {
	if !g.IsEnterable(start.X, start.Y) {
		return 0
	}
	dist := map[core.Coordinate]int{start: 1}
	queue := []core.Coordinate{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return dist[cur]
		}
		for _, n := range g.NeighborCoords(cur, allowDiagonal, noCornerCutting) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return 0
}
