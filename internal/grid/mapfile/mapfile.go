// Package mapfile ingests grid matrices from YAML or JSON map files.
//
// A map file looks like:
//
//	name: maze-2       # optional, defaults to the file name
//	kind: blocked      # blocked (default) or walls
//	width: 5           # optional, inferred from matrix
//	height: 6          # optional, inferred from matrix
//	matrix:
//	  - [0, 0, 1, "ne", true]
//
// Blocked maps accept any entry BlockedGridFromMatrix does. Walls maps need a
// wall-letter string in every cell. The matrix may be left out when width and
// height are given, which yields a grid without obstacles.
package mapfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/tilegrid/internal/grid/core"
)

// Kind selects which grid representation a map file describes.
type Kind string

const (
	KindBlocked Kind = "blocked"
	KindWalls   Kind = "walls"
)

var ErrUnknownKind = errors.New("unknown map kind")

// ParseKind accepts "blocked" or "walls"; an empty string means blocked.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindBlocked:
		return KindBlocked, nil
	case KindWalls:
		return KindWalls, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
}

// document is the on-disk shape of a map file.
type document struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Matrix [][]any `yaml:"matrix"`
}

// Map is one ingested grid. Exactly one of Blocked and Walls is set,
// according to Kind.
type Map struct {
	ID      uuid.UUID
	Name    string
	Kind    Kind
	Path    string
	Blocked *core.BlockedGrid
	Walls   *core.WallGrid
}

// Navigable returns whichever grid the map holds.
func (m *Map) Navigable() core.Navigable {
	if m.Kind == KindWalls {
		return m.Walls
	}
	return m.Blocked
}

// Options tunes how map files become grids.
type Options struct {
	// StrictWallCorners builds walls maps WithStrictCorners.
	StrictWallCorners bool
	// MaxConcurrent bounds parallel loads in LoadAll; values below 1 mean 1.
	MaxConcurrent int
}

// Parse decodes one map document. name is used when the document has none.
func Parse(data []byte, name string, opts Options) (*Map, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}

	kind, err := ParseKind(doc.Kind)
	if err != nil {
		return nil, err
	}

	width, height := inferDimensions(doc)

	m := &Map{ID: uuid.New(), Name: doc.Name, Kind: kind}
	if m.Name == "" {
		m.Name = name
	}

	switch kind {
	case KindWalls:
		letters, err := wallLetters(doc.Matrix)
		if err != nil {
			return nil, err
		}
		var gridOpts []core.WallGridOption
		if opts.StrictWallCorners {
			gridOpts = append(gridOpts, core.WithStrictCorners())
		}
		m.Walls, err = core.WallGridFromMatrix(width, height, letters, gridOpts...)
		if err != nil {
			return nil, err
		}
	default:
		m.Blocked, err = core.BlockedGridFromMatrix(width, height, doc.Matrix)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func inferDimensions(doc document) (width, height int) {
	height = len(doc.Matrix)
	if len(doc.Matrix) > 0 {
		width = len(doc.Matrix[0])
	}
	if doc.Width != nil {
		width = *doc.Width
	}
	if doc.Height != nil {
		height = *doc.Height
	}
	return width, height
}

func wallLetters(matrix [][]any) ([][]string, error) {
	if matrix == nil {
		return nil, nil
	}
	rows := make([][]string, len(matrix))
	for y, row := range matrix {
		rows[y] = make([]string, len(row))
		for x, entry := range row {
			s, ok := entry.(string)
			if !ok {
				return nil, core.WrapCellError(x, y, fmt.Errorf("%T in walls map: %w", entry, core.ErrInvalidEntry))
			}
			rows[y][x] = s
		}
	}
	return rows, nil
}

// nameFromPath is the file name without directory or extension.
func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isMapFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
