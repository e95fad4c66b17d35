package filter

import "math"

// ClampUint8 rounds v to the nearest integer (ties to even) and saturates it
// to [0, 255]. NaN maps to 0.
func ClampUint8(v float64) uint8 {
	if v != v { // NaN
		return 0
	}
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// interior reports whether an image of the given size has any pixel whose
// full 3x3 neighborhood lies inside the image.
func interior(w, h int) bool {
	return w >= 3 && h >= 3
}
