package filter

import "testing"

func TestLUTMatchesFormula(t *testing.T) {
	factors := []float64{0, 0.5, 1, 1.1, 1.2, 2, 3.7}
	for _, f := range factors {
		b := BrightnessLUT(f)
		c := ContrastLUT(f)
		for v := 0; v < 256; v++ {
			if want := ClampUint8(float64(v) * f); b[v] != want {
				t.Errorf("BrightnessLUT(%v)[%d] = %d, want %d", f, v, b[v], want)
			}
			if want := ClampUint8(float64(v)*f + 128*(1-f)); c[v] != want {
				t.Errorf("ContrastLUT(%v)[%d] = %d, want %d", f, v, c[v], want)
			}
		}
	}
}

func TestLUTApplyRGBSkipsAlpha(t *testing.T) {
	inv := NewLUT(func(v float64) float64 { return 255 - v })
	pix := []byte{0, 100, 255, 42, 10, 20, 30, 7}
	inv.ApplyRGB(pix)
	want := []byte{255, 155, 0, 42, 245, 235, 225, 7}
	for i := range pix {
		if pix[i] != want[i] {
			t.Errorf("pix[%d] = %d, want %d", i, pix[i], want[i])
		}
	}
}
