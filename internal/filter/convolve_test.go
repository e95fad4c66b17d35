package filter

import "testing"

func TestSharpenKernel(t *testing.T) {
	if s := SharpenKernel.Sum(); s != 1 {
		t.Errorf("SharpenKernel.Sum() = %v, want 1", s)
	}
	if c := SharpenKernel.At(0, 0); c != 5 {
		t.Errorf("center tap = %v, want 5", c)
	}
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if v := SharpenKernel.At(d[0], d[1]); v != -1 {
			t.Errorf("tap (%d,%d) = %v, want -1", d[0], d[1], v)
		}
	}
	for _, d := range [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if v := SharpenKernel.At(d[0], d[1]); v != 0 {
			t.Errorf("corner (%d,%d) = %v, want 0", d[0], d[1], v)
		}
	}
}

func TestConvolve3x3WhiteIsInvariant(t *testing.T) {
	src := solid(3, 3, [4]byte{255, 255, 255, 255})
	dst := clonePix(src)
	Convolve3x3(src, dst, 3, 3, SharpenKernel, 1.0)
	if got := pixelAt(dst, 3, 1, 1); got != [4]byte{255, 255, 255, 255} {
		t.Errorf("interior = %v, want white", got)
	}
}

func TestConvolve3x3Identity(t *testing.T) {
	const w, h = 7, 6
	src := gradient(w, h)
	dst := clonePix(src)
	Convolve3x3(src, dst, w, h, IdentityKernel, 1.0)
	for i := range dst {
		if dst[i] != src[i] {
			t.Fatalf("byte %d = %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestConvolve3x3Scale(t *testing.T) {
	src := solid(3, 3, [4]byte{100, 10, 0, 50})
	dst := clonePix(src)
	Convolve3x3(src, dst, 3, 3, SharpenKernel, 1.1)
	if got := pixelAt(dst, 3, 1, 1); got != [4]byte{110, 11, 0, 50} {
		t.Errorf("interior = %v, want {110 11 0 50}", got)
	}
}

func TestConvolve3x3Edge(t *testing.T) {
	const w, h = 3, 3
	src := solid(w, h, [4]byte{100, 100, 100, 255})
	// Brighter left neighbor pulls the center down.
	i := (1*w + 0) * 4
	src[i], src[i+1], src[i+2] = 200, 200, 200

	dst := clonePix(src)
	Convolve3x3(src, dst, w, h, SharpenKernel, 1.0)

	// 5*100 - 200 - 3*100 = 0
	if got := pixelAt(dst, w, 1, 1); got != [4]byte{0, 0, 0, 255} {
		t.Errorf("center = %v, want {0 0 0 255}", got)
	}
}

func TestConvolve3x3BorderUntouched(t *testing.T) {
	for _, sz := range [][2]int{{3, 3}, {5, 4}, {8, 8}} {
		w, h := sz[0], sz[1]
		src := gradient(w, h)
		dst := solid(w, h, [4]byte{9, 8, 7, 6})
		Convolve3x3(src, dst, w, h, SharpenKernel, 1.1)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				got := pixelAt(dst, w, x, y)
				if isBorder(x, y, w, h) && got != [4]byte{9, 8, 7, 6} {
					t.Errorf("%dx%d border (%d,%d) written: %v", w, h, x, y, got)
				}
				if got[3] != 6 {
					t.Errorf("%dx%d alpha (%d,%d) written", w, h, x, y)
				}
			}
		}
	}
}

func BenchmarkConvolve3x3(b *testing.B) {
	const w, h = 1920, 1080
	src := gradient(w, h)
	dst := make([]byte, len(src))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Convolve3x3(src, dst, w, h, SharpenKernel, 1.1)
	}
}
