package filter

// LUT maps an 8-bit channel value to its transformed value.
// Brightness and contrast depend only on the input sample, so a 256-entry
// table replaces a float multiply, add and round per channel.
type LUT [256]uint8

// NewLUT builds a table by evaluating fn at every 8-bit input and quantizing
// the result with ClampUint8.
func NewLUT(fn func(v float64) float64) *LUT {
	var l LUT
	for i := range l {
		l[i] = ClampUint8(fn(float64(i)))
	}
	return &l
}

// ApplyRGB maps the R, G and B samples of pix through l. Alpha is untouched.
func (l *LUT) ApplyRGB(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = l[pix[i+0]]
		pix[i+1] = l[pix[i+1]]
		pix[i+2] = l[pix[i+2]]
	}
}
