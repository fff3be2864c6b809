package core

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/spf13/cast"
)

// interpretEntry decides one BlockedGrid cell from its matrix entry.
//
//   - nil, false and numeric zero: enterable, no walls
//   - true and non-zero numbers: not enterable
//   - strings: enterable, walls from the n/e/s/w letters (never blocked)
//   - Walls: enterable with exactly those walls
//   - json.Number: a number, like the numeric kinds
//
// Other named string types are wall text, never numbers.
func interpretEntry(v any) (enterable bool, walls Walls, err error) {
	switch e := v.(type) {
	case nil:
		return true, 0, nil
	case string:
		return true, ParseWalls(e), nil
	case Walls:
		return true, e, nil
	case bool:
		return !e, 0, nil
	case json.Number:
		f, err := e.Float64()
		if err != nil {
			return false, 0, fmt.Errorf("json.Number %q: %w", e.String(), ErrInvalidEntry)
		}
		return f == 0 || math.IsNaN(f), 0, nil
	}

	// named string and bool types
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return true, ParseWalls(rv.String()), nil
	case reflect.Bool:
		return !rv.Bool(), 0, nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return false, 0, fmt.Errorf("%T: %w", v, ErrInvalidEntry)
	}
	// NaN is falsy, like zero
	return f == 0 || math.IsNaN(f), 0, nil
}

// checkShape validates a matrix against declared dimensions. Every row must
// have exactly width entries.
func checkShape[E any](width, height int, matrix [][]E) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	if len(matrix) != height {
		return fmt.Errorf("matrix has %d rows, want %d: %w", len(matrix), height, ErrDimensionMismatch)
	}
	for y, row := range matrix {
		if len(row) != width {
			return fmt.Errorf("matrix row %d has %d columns, want %d: %w", y, len(row), width, ErrDimensionMismatch)
		}
	}
	return nil
}

func checkDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return nil
}
