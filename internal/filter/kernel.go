package filter

// Kernel3 is a 3x3 convolution kernel in row-major order:
//
//	[0 1 2]
//	[3 4 5]
//	[6 7 8]
//
// Index 4 is the center tap.
type Kernel3 [9]float64

// SharpenKernel is the Laplacian-style sharpening kernel used by the
// pipeline. Its taps sum to 1, so uniform regions are preserved at scale 1.
var SharpenKernel = Kernel3{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// IdentityKernel passes the center sample through unchanged.
var IdentityKernel = Kernel3{
	0, 0, 0,
	0, 1, 0,
	0, 0, 0,
}

// At returns the tap for offsets dx, dy in {-1, 0, 1}.
func (k *Kernel3) At(dx, dy int) float64 {
	return k[(dy+1)*3+(dx+1)]
}

// Sum returns the sum of all taps.
func (k *Kernel3) Sum() float64 {
	var s float64
	for _, v := range k {
		s += v
	}
	return s
}
