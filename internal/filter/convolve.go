package filter

// Convolve3x3 convolves the R, G and B channels of src with k, multiplies the
// sum by scale and stores the result in dst. Only interior pixels are written;
// the 1-pixel border of dst and all alpha samples are left untouched.
// src and dst must be distinct slices of length w*h*4.
func Convolve3x3(src, dst []byte, w, h int, k Kernel3, scale float64) {
	if !interior(w, h) {
		return
	}

	stride := w * 4

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*stride + x*4

			for c := 0; c < 3; c++ {
				var sum float64
				ki := 0
				for dy := -1; dy <= 1; dy++ {
					row := idx + dy*stride + c
					sum += k[ki+0]*float64(src[row-4]) +
						k[ki+1]*float64(src[row]) +
						k[ki+2]*float64(src[row+4])
					ki += 3
				}
				dst[idx+c] = ClampUint8(sum * scale)
			}
		}
	}
}
