package filter

// Luma weights used by Saturation.
const (
	LumaR = 0.2989
	LumaG = 0.5870
	LumaB = 0.1140
)

// contrastPivot is the gray level left fixed by Contrast.
const contrastPivot = 128.0

// Luma returns the weighted grayscale value of an RGB triple.
func Luma(r, g, b float64) float64 {
	return LumaR*r + LumaG*g + LumaB*b
}

// Brightness scales R, G and B by factor.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func Brightness(pix []byte, factor float64) {
	BrightnessLUT(factor).ApplyRGB(pix)
}

// BrightnessLUT returns the per-sample table used by Brightness.
func BrightnessLUT(factor float64) *LUT {
	return NewLUT(func(v float64) float64 { return v * factor })
}

// Contrast remaps R, G and B linearly around gray level 128:
// c' = c*factor + 128*(1-factor).
// factor: 0.0 = flat gray, 1.0 = unchanged, >1 = steeper
func Contrast(pix []byte, factor float64) {
	ContrastLUT(factor).ApplyRGB(pix)
}

// ContrastLUT returns the per-sample table used by Contrast.
func ContrastLUT(factor float64) *LUT {
	intercept := contrastPivot * (1 - factor)
	return NewLUT(func(v float64) float64 { return v*factor + intercept })
}

// Saturation moves each channel away from (factor > 1) or toward
// (factor < 1) the pixel's luma.
// factor: 0.0 = grayscale, 1.0 = unchanged
func Saturation(pix []byte, factor float64) {
	saturate(pix, pix, factor)
}

// saturate reads each pixel of src fully before writing dst, so src and dst
// may be the same slice.
func saturate(src, dst []byte, factor float64) {
	for i := 0; i+3 < len(src); i += 4 {
		r := float64(src[i+0])
		g := float64(src[i+1])
		b := float64(src[i+2])
		gray := Luma(r, g, b)

		dst[i+0] = ClampUint8(gray + factor*(r-gray))
		dst[i+1] = ClampUint8(gray + factor*(g-gray))
		dst[i+2] = ClampUint8(gray + factor*(b-gray))
	}
}
