package filter

// Median3x3 writes the per-channel median of each interior pixel's 3x3
// neighborhood in src to dst. Border pixels of dst are left untouched, as is
// the alpha channel everywhere. src and dst must be distinct slices of
// length w*h*4.
func Median3x3(src, dst []byte, w, h int) {
	if !interior(w, h) {
		return
	}

	stride := w * 4
	var window [9]uint8

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*stride + x*4

			for c := 0; c < 3; c++ {
				n := 0
				for dy := -1; dy <= 1; dy++ {
					row := idx + dy*stride + c
					window[n+0] = src[row-4]
					window[n+1] = src[row]
					window[n+2] = src[row+4]
					n += 3
				}
				dst[idx+c] = median9(&window)
			}
		}
	}
}

// median9 returns the 5th smallest of nine values. The window is sorted in
// place with insertion sort, which beats a generic sort for n=9.
func median9(v *[9]uint8) uint8 {
	for i := 1; i < len(v); i++ {
		x := v[i]
		j := i - 1
		for j >= 0 && v[j] > x {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = x
	}
	return v[4]
}
