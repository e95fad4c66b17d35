package enhance

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downscale returns a copy of b resized to fit within maxWidth x maxHeight,
// preserving aspect ratio, using Catmull-Rom resampling. A non-positive
// limit leaves that axis unconstrained. If b already fits, b itself is
// returned. Returns ErrInvalidDimensions if b fails Validate.
//
// The pipeline's cost grows linearly with pixel count and it has no
// cancellation point, so callers handling untrusted input should cap
// dimensions with Downscale first.
func (b *PixelBuffer) Downscale(maxWidth, maxHeight int) (*PixelBuffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	w, h := fitSize(b.Width, b.Height, maxWidth, maxHeight)
	if w == b.Width && h == b.Height {
		return b, nil
	}

	dst := &PixelBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*BytesPerPixel),
	}
	// Scale in NRGBA so alpha stays straight, matching the buffer layout.
	xdraw.CatmullRom.Scale(dst.NRGBA(), image.Rect(0, 0, w, h),
		b.NRGBA(), image.Rect(0, 0, b.Width, b.Height), xdraw.Src, nil)
	return dst, nil
}

// fitSize returns the largest size with the aspect ratio of w x h that fits
// within maxW x maxH. Each result dimension is at least 1.
func fitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		scale = min(scale, float64(maxH)/float64(h))
	}
	if scale >= 1 {
		return w, h
	}
	nw := max(int(float64(w)*scale+0.5), 1)
	nh := max(int(float64(h)*scale+0.5), 1)
	if maxW > 0 {
		nw = min(nw, maxW)
	}
	if maxH > 0 {
		nh = min(nh, maxH)
	}
	return nw, nh
}
