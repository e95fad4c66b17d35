package enhance

import "testing"

// Test helper functions shared across enhance tests.

// solidBuffer creates a w x h buffer filled with c.
func solidBuffer(t testing.TB, w, h int, c [4]byte) *PixelBuffer {
	t.Helper()
	b, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	b.Fill(c)
	return b
}

// noisyBuffer creates a deterministic buffer with varied color and alpha.
func noisyBuffer(t testing.TB, w, h int) *PixelBuffer {
	t.Helper()
	b, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	seed := uint32(2463534242)
	for i := range b.Pix {
		// xorshift32
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		b.Pix[i] = byte(seed)
	}
	return b
}

func isBorder(b *PixelBuffer, x, y int) bool {
	return x == 0 || y == 0 || x == b.Width-1 || y == b.Height-1
}

// checkAlpha fails if any alpha sample differs between a and b.
func checkAlpha(t *testing.T, want, got *PixelBuffer) {
	t.Helper()
	for i := 3; i < len(want.Pix); i += 4 {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("alpha of pixel %d = %d, want %d", i/4, got.Pix[i], want.Pix[i])
		}
	}
}
