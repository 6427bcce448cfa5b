package grid

// Size is the edge length of the square palette canvas.
const Size = 256

// Offsets returns the n+2 cell boundaries shared by both canvas axes.
// The first n+1 are evenly spaced, the last is pinned to the final pixel
// so integer rounding never leaves an unpainted strip.
func Offsets(n int) []int {
	if n < 1 {
		return nil
	}

	offsets := make([]int, 0, n+2)
	for i := 0; i < n+1; i++ {
		offsets = append(offsets, Size*i/(n+1))
	}
	return append(offsets, Size-1)
}

// Mid returns the integer midpoint of cell i.
func Mid(offsets []int, i int) int {
	return (offsets[i] + offsets[i+1]) / 2
}
