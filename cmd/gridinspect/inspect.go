package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/mitchelldurbincs/tilegrid/internal/config"
	"github.com/mitchelldurbincs/tilegrid/internal/grid/core"
	"github.com/mitchelldurbincs/tilegrid/internal/grid/mapfile"
	"github.com/mitchelldurbincs/tilegrid/internal/grid/mapgen"
)

// options are the flags that are not config keys
type options struct {
	configPath string
	env        string
	mapPath    string
	kind       string
	side       string
	generate   bool
	watch      bool
	x, y       int
}

func registerFlags(fs *pflag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "Path to config file")
	fs.StringVar(&o.env, "env", "", "Environment overlay (merges config.<env>.yaml)")
	fs.StringVar(&o.mapPath, "map", "", "Map file to inspect (overrides maps.files and maps.dir)")
	fs.BoolVar(&o.generate, "generate", false, "Inspect a randomly generated map")
	fs.StringVar(&o.kind, "kind", "blocked", "Kind of generated map (blocked, walls)")
	fs.StringVar(&o.side, "side", "", "Only report the passage through this side (n, e, s, w)")
	fs.IntVar(&o.x, "x", 0, "Cell column")
	fs.IntVar(&o.y, "y", 0, "Cell row")
	fs.BoolVar(&o.watch, "watch", false, "Re-inspect whenever the config file changes")

	// Bound to config keys by config.BindFlags
	fs.Bool("diagonal", false, "Include diagonal neighbours")
	fs.Bool("no-corner-cutting", false, "Require both flanking cells for diagonal moves")
	fs.Bool("strict-wall-corners", false, "Apply the flanking rule to wall maps too")
	fs.String("map-dir", "", "Directory of map files")
	fs.Int("max-concurrent", 4, "Map files loaded in parallel")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("log-format", "auto", "Log format (auto, console, json)")
	fs.Int("width", 16, "Generated map width")
	fs.Int("height", 16, "Generated map height")
	fs.Float64("block-ratio", 0.25, "Share of blocked cells in generated maps")
	fs.Float64("wall-ratio", 0.15, "Chance of a wall per boundary in generated maps")
	fs.Int64("seed", 0, "Generator seed (0 for time based)")
	return o
}

// inspect loads or generates the maps selected by o and cfg and reports the
// requested cell of each.
func inspect(ctx context.Context, w io.Writer, o *options, cfg *config.Config) error {
	maps, err := selectMaps(ctx, o, cfg)
	if err != nil {
		return err
	}

	at := core.NewCoordinate(o.x, o.y)
	for _, m := range maps {
		if o.side != "" {
			if err := reportSide(w, m, at, o.side); err != nil {
				return err
			}
			continue
		}
		report(w, m, at, cfg.Grid)
	}
	return nil
}

func selectMaps(ctx context.Context, o *options, cfg *config.Config) ([]*mapfile.Map, error) {
	if o.generate {
		m, err := generate(o.kind, cfg)
		if err != nil {
			return nil, err
		}
		return []*mapfile.Map{m}, nil
	}

	loader := mapfile.NewLoader(afero.NewOsFs(), log.Logger, mapfile.Options{
		StrictWallCorners: cfg.Grid.StrictWallCorners,
		MaxConcurrent:     cfg.Maps.MaxConcurrent,
	})

	switch {
	case o.mapPath != "":
		m, err := loader.Load(o.mapPath)
		if err != nil {
			return nil, err
		}
		return []*mapfile.Map{m}, nil
	case len(cfg.Maps.Files) > 0:
		return loader.LoadAll(ctx, cfg.Maps.Files)
	case cfg.Maps.Dir != "":
		return loader.LoadDir(ctx, cfg.Maps.Dir)
	}

	log.Debug().Msg("No map configured, generating one")
	m, err := generate(o.kind, cfg)
	if err != nil {
		return nil, err
	}
	return []*mapfile.Map{m}, nil
}

func generate(kindName string, cfg *config.Config) (*mapfile.Map, error) {
	kind, err := mapfile.ParseKind(kindName)
	if err != nil {
		return nil, err
	}

	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := mapgen.NewGenerator(mapgen.Config{
		Width:      cfg.Generator.Width,
		Height:     cfg.Generator.Height,
		BlockRatio: cfg.Generator.BlockRatio,
		WallRatio:  cfg.Generator.WallRatio,
	}, rand.New(rand.NewSource(seed)))

	m := &mapfile.Map{ID: uuid.New(), Name: fmt.Sprintf("generated-%d", seed), Kind: kind}
	if kind == mapfile.KindWalls {
		var opts []core.WallGridOption
		if cfg.Grid.StrictWallCorners {
			opts = append(opts, core.WithStrictCorners())
		}
		m.Walls, err = gen.GenerateWalls(opts...)
	} else {
		m.Blocked, err = gen.GenerateBlocked()
	}
	if err != nil {
		return nil, fmt.Errorf("generate map: %w", err)
	}

	log.Info().Int64("seed", seed).Str("kind", string(kind)).Msg("Generated map")
	return m, nil
}

// cellState returns the enterable flag and walls of the cell at, and whether
// the cell exists.
func cellState(m *mapfile.Map, at core.Coordinate) (enterable bool, walls core.Walls, ok bool) {
	if m.Kind == mapfile.KindWalls {
		c, err := m.Walls.CellAt(at.X, at.Y)
		if err != nil {
			return false, 0, false
		}
		return true, c.Walls, true
	}
	c, err := m.Blocked.CellAt(at.X, at.Y)
	if err != nil {
		return false, 0, false
	}
	return c.Enterable, c.Walls, true
}

// openSide asks the map's own grid whether the cell at has an open side d.
func openSide(m *mapfile.Map, at core.Coordinate, d core.Direction) bool {
	if m.Kind == mapfile.KindWalls {
		c, err := m.Walls.CellAt(at.X, at.Y)
		return err == nil && m.Walls.HasOpenSide(c, d)
	}
	c, err := m.Blocked.CellAt(at.X, at.Y)
	return err == nil && m.Blocked.HasOpenSide(c, d)
}

func report(w io.Writer, m *mapfile.Map, at core.Coordinate, gc config.GridConfig) {
	nav := m.Navigable()
	fmt.Fprintf(w, "map %s (%s, %dx%d) id=%s\n", m.Name, m.Kind, nav.Width(), nav.Height(), m.ID)

	enterable, walls, ok := cellState(m, at)
	if !ok {
		fmt.Fprintf(w, "  cell %s: out of bounds\n", at)
		return
	}

	state := "enterable"
	if !enterable {
		state = "blocked"
	}
	fmt.Fprintf(w, "  cell %s: %s, walls: %s, open sides: %s\n", at, state, orDash(walls.String()), openSides(m, at))

	coords := nav.NeighborCoords(at, gc.AllowDiagonal, gc.NoCornerCutting)
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}
	fmt.Fprintf(w, "  neighbours (diagonal=%t, no-corner-cutting=%t): %s\n",
		gc.AllowDiagonal, gc.NoCornerCutting, orDash(strings.Join(parts, " ")))
}

func reportSide(w io.Writer, m *mapfile.Map, at core.Coordinate, side string) error {
	d, err := core.ParseDirection(side)
	if err != nil {
		return err
	}
	verdict := "closed"
	if openSide(m, at, d) {
		verdict = "open"
	}
	fmt.Fprintf(w, "%s %s %s -> %s: %s\n", m.Name, at, d, at.Move(d), verdict)
	return nil
}

func openSides(m *mapfile.Map, at core.Coordinate) string {
	var b strings.Builder
	for _, d := range core.Cardinals {
		if openSide(m, at, d) {
			b.WriteByte(d.Letter())
		}
	}
	return orDash(b.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
