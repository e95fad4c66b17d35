package filter

// Test helper functions shared across filter tests.

// solid returns a w x h RGBA8 buffer with every pixel set to c.
func solid(w, h int, c [4]byte) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		copy(pix[i:i+4], c[:])
	}
	return pix
}

// gradient returns a w x h buffer with varied channels and alpha so that
// neighborhood filters see distinct values.
func gradient(w, h int) []byte {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i+0] = byte((x*37 + y*11) % 256)
			pix[i+1] = byte((x*5 + y*53) % 256)
			pix[i+2] = byte((x*x + y*7) % 256)
			pix[i+3] = byte(100 + (x+y)%100)
		}
	}
	return pix
}

func pixelAt(pix []byte, w, x, y int) [4]byte {
	i := (y*w + x) * 4
	return [4]byte{pix[i], pix[i+1], pix[i+2], pix[i+3]}
}

func isBorder(x, y, w, h int) bool {
	return x == 0 || y == 0 || x == w-1 || y == h-1
}

func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func clonePix(pix []byte) []byte {
	out := make([]byte, len(pix))
	copy(out, pix)
	return out
}
