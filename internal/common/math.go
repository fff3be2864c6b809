package common

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Chebyshev returns the king-move distance between two points
func Chebyshev(x1, y1, x2, y2 int) int {
	return max(Abs(x1-x2), Abs(y1-y2))
}
