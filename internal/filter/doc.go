// Package filter provides the per-pixel stages of the enhancement pipeline.
//
// All functions operate on tightly packed RGBA8 data (4 bytes per pixel,
// row-major) and never write the alpha channel:
//   - Point operations (brightness, contrast, saturation) transform in place
//   - Neighborhood operations (3x3 median, 3x3 convolution) read from src and
//     write interior pixels of dst; the 1-pixel border of dst is not written
//
// Each stage is also available as a Filter value (NewBrightnessFilter,
// NewContrastFilter, NewSaturationFilter, NewMedianFilter, NewSharpenFilter)
// so callers can assemble a pipeline as a list.
//
// Arithmetic is performed in float64 and each stage quantizes its result back
// to 8 bits with round-half-to-even and saturation at [0, 255].
package filter
