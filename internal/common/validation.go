package common

// IsValidCoordinate checks if the given coordinates are within a width x height grid
func IsValidCoordinate(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// IsOrthogonalStep reports whether (dx,dy) moves exactly one cell along one axis
func IsOrthogonalStep(dx, dy int) bool {
	adx, ady := Abs(dx), Abs(dy)
	return (adx == 1 && ady == 0) || (adx == 0 && ady == 1)
}

// IsDiagonalStep reports whether (dx,dy) is a (±1,±1) displacement
func IsDiagonalStep(dx, dy int) bool {
	return Abs(dx) == 1 && Abs(dy) == 1
}
