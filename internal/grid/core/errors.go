package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be non-negative")
	ErrDimensionMismatch = errors.New("matrix size does not fit grid dimensions")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrInvalidEntry      = errors.New("invalid matrix entry")
	ErrInvalidDirection  = errors.New("invalid direction")
)

// WrapCellError prefixes err with the cell it concerns. A nil err stays nil.
func WrapCellError(x, y int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cell (%d,%d): %w", x, y, err)
}
