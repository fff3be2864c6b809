package mapgen

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mitchelldurbincs/tilegrid/internal/grid/core"
)

var ErrInvalidRatio = errors.New("ratio must be in [0, 1)")

// Config holds configuration for random grid generation
type Config struct {
	Width      int
	Height     int
	BlockRatio float64 // chance that a cell is not enterable (blocked grids only)
	WallRatio  float64 // chance of a wall on each east and each south cell side
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig(w, h int) Config {
	return Config{
		Width:      w,
		Height:     h,
		BlockRatio: 0.25,
		WallRatio:  0.15,
	}
}

// Validate checks the ratios; dimensions are checked by the grid constructors.
func (c Config) Validate() error {
	if c.BlockRatio < 0 || c.BlockRatio >= 1 {
		return fmt.Errorf("block ratio %v: %w", c.BlockRatio, ErrInvalidRatio)
	}
	if c.WallRatio < 0 || c.WallRatio >= 1 {
		return fmt.Errorf("wall ratio %v: %w", c.WallRatio, ErrInvalidRatio)
	}
	return nil
}

// Generator builds random grids with a caller-supplied RNG, so the same seed
// always yields the same grid.
type Generator struct {
	config Config
	rng    *rand.Rand
}

// NewGenerator creates a new grid generator
func NewGenerator(config Config, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateBlocked creates a blocked grid. Blocked cells carry no walls; open
// cells may carry walls on their east and south sides.
func (g *Generator) GenerateBlocked() (*core.BlockedGrid, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	walls := g.wallLetters()
	matrix := make([][]any, len(walls))
	for y, row := range walls {
		matrix[y] = make([]any, len(row))
		for x, letters := range row {
			if g.rng.Float64() < g.config.BlockRatio {
				matrix[y][x] = 1
			} else {
				matrix[y][x] = letters
			}
		}
	}
	return core.BlockedGridFromMatrix(g.config.Width, g.config.Height, matrix)
}

// GenerateWalls creates a wall grid. BlockRatio is not used.
func (g *Generator) GenerateWalls(opts ...core.WallGridOption) (*core.WallGrid, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	return core.WallGridFromMatrix(g.config.Width, g.config.Height, g.wallLetters(), opts...)
}

// wallLetters considers each internal boundary once, from the cell to its
// west or north, and records any wall on that cell only.
func (g *Generator) wallLetters() [][]string {
	h, w := max(g.config.Height, 0), max(g.config.Width, 0)
	rows := make([][]string, h)
	var b strings.Builder
	for y := 0; y < h; y++ {
		rows[y] = make([]string, w)
		for x := 0; x < w; x++ {
			b.Reset()
			if x+1 < w && g.rng.Float64() < g.config.WallRatio {
				b.WriteByte(core.East.Letter())
			}
			if y+1 < h && g.rng.Float64() < g.config.WallRatio {
				b.WriteByte(core.South.Letter())
			}
			rows[y][x] = b.String()
		}
	}
	return rows
}
