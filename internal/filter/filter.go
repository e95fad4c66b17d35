package filter

// Filter is one stage of the enhancement pipeline over RGBA8 data.
type Filter interface {
	// Apply reads src and writes the R, G and B samples of dst.
	// w and h give the image size; both slices hold w*h*4 bytes.
	// Alpha samples of dst are never written.
	Apply(src, dst []byte, w, h int)

	// Neighborhood reports whether an output pixel depends on adjacent
	// input pixels. Such filters only write interior pixels and require
	// src and dst to be distinct slices; point filters may run in place.
	Neighborhood() bool
}

// LUTFilter maps every color sample through a lookup table.
type LUTFilter struct {
	Table *LUT
}

// NewBrightnessFilter creates a filter that scales R, G and B by factor.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func NewBrightnessFilter(factor float64) *LUTFilter {
	return &LUTFilter{Table: BrightnessLUT(factor)}
}

// NewContrastFilter creates a filter that remaps samples around gray 128.
// factor: 0.0 = flat gray, 1.0 = unchanged, >1 = steeper
func NewContrastFilter(factor float64) *LUTFilter {
	return &LUTFilter{Table: ContrastLUT(factor)}
}

// Apply implements Filter.
func (f *LUTFilter) Apply(src, dst []byte, w, h int) {
	n := w * h * 4
	l := f.Table
	for i := 0; i+3 < n; i += 4 {
		dst[i+0] = l[src[i+0]]
		dst[i+1] = l[src[i+1]]
		dst[i+2] = l[src[i+2]]
	}
}

// Neighborhood implements Filter.
func (*LUTFilter) Neighborhood() bool { return false }

// SaturationFilter blends each pixel with its luma.
type SaturationFilter struct {
	Factor float64
}

// NewSaturationFilter creates a saturation filter.
// factor: 0.0 = grayscale, 1.0 = unchanged
func NewSaturationFilter(factor float64) *SaturationFilter {
	return &SaturationFilter{Factor: factor}
}

// Apply implements Filter.
func (f *SaturationFilter) Apply(src, dst []byte, w, h int) {
	saturate(src[:w*h*4], dst, f.Factor)
}

// Neighborhood implements Filter.
func (*SaturationFilter) Neighborhood() bool { return false }

// MedianFilter replaces each interior pixel with the per-channel median of
// its 3x3 neighborhood.
type MedianFilter struct{}

// NewMedianFilter creates a 3x3 median filter.
func NewMedianFilter() *MedianFilter { return &MedianFilter{} }

// Apply implements Filter.
func (*MedianFilter) Apply(src, dst []byte, w, h int) { Median3x3(src, dst, w, h) }

// Neighborhood implements Filter.
func (*MedianFilter) Neighborhood() bool { return true }

// ConvolutionFilter convolves interior pixels with a 3x3 kernel and scales
// the sum.
type ConvolutionFilter struct {
	Kernel Kernel3
	Scale  float64
}

// NewSharpenFilter creates a convolution filter using SharpenKernel with the
// output multiplied by amount.
func NewSharpenFilter(amount float64) *ConvolutionFilter {
	return &ConvolutionFilter{Kernel: SharpenKernel, Scale: amount}
}

// Apply implements Filter.
func (f *ConvolutionFilter) Apply(src, dst []byte, w, h int) {
	Convolve3x3(src, dst, w, h, f.Kernel, f.Scale)
}

// Neighborhood implements Filter.
func (*ConvolutionFilter) Neighborhood() bool { return true }
