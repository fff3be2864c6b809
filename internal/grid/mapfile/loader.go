package mapfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
)

// Loader reads map files from a filesystem.
type Loader struct {
	fs     afero.Fs
	logger zerolog.Logger
	opts   Options
}

// NewLoader creates a loader over fs. Use afero.NewOsFs() for the real disk.
func NewLoader(fs afero.Fs, logger zerolog.Logger, opts Options) *Loader {
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 1
	}
	return &Loader{
		fs:     fs,
		logger: logger.With().Str("component", "map_loader").Logger(),
		opts:   opts,
	}
}

// Load reads and parses a single map file.
func (l *Loader) Load(path string) (*Map, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}

	m, err := Parse(data, nameFromPath(path), l.opts)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	m.Path = path

	g := m.Navigable()
	l.logger.Debug().
		Str("map_id", m.ID.String()).
		Str("name", m.Name).
		Str("kind", string(m.Kind)).
		Int("width", g.Width()).
		Int("height", g.Height()).
		Str("path", path).
		Msg("Loaded map")

	return m, nil
}

// LoadAll loads the given files concurrently, at most MaxConcurrent at a
// time. Results are in the order of paths. The first failure cancels the
// remaining loads and is returned.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([]*Map, error) {
	maps := make([]*Map, len(paths))

	p := pool.New().
		WithMaxGoroutines(l.opts.MaxConcurrent).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, path := range paths {
		i, path := i, path
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := l.Load(path)
			if err != nil {
				return err
			}
			maps[i] = m
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		l.logger.Warn().Err(err).Int("requested", len(paths)).Msg("Map batch failed")
		return nil, err
	}

	l.logger.Info().Int("count", len(maps)).Msg("Loaded maps")
	return maps, nil
}

// LoadDir loads every .yaml, .yml and .json file directly inside dir, in
// file name order.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]*Map, error) {
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read map dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isMapFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return l.LoadAll(ctx, paths)
}
