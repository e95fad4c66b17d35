package enhance

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// PixelBuffer is a tightly packed, row-major RGBA8 image with straight
// (non-premultiplied) alpha. Pix holds Width*Height*4 bytes ordered
// R, G, B, A per pixel.
//
// The pipeline never modifies the A channel.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed buffer of the given size.
// Returns ErrInvalidDimensions if width or height is non-positive or the
// byte size does not fit in an int.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 || !fitsInt(width, height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}, nil
}

// FromRaw wraps existing RGBA8 data without copying.
// The caller must keep pix alive and unaliased for the lifetime of the buffer.
func FromRaw(pix []byte, width, height int) (*PixelBuffer, error) {
	b := &PixelBuffer{Width: width, Height: height, Pix: pix}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the length invariant len(Pix) == Width*Height*4.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidDimensions)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Width, b.Height)
	}
	if !fitsInt(b.Width, b.Height) {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, b.Width, b.Height)
	}
	if want := b.Width * b.Height * BytesPerPixel; len(b.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrInvalidDimensions, b.Width, b.Height, want, len(b.Pix))
	}
	return nil
}

// fitsInt reports whether width*height*BytesPerPixel is representable.
// Both arguments must be non-negative.
func fitsInt(width, height int) bool {
	return width == 0 || height <= math.MaxInt/BytesPerPixel/width
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// PixelOffset returns the byte offset of pixel (x, y) in Pix.
// Returns -1 if coordinates are out of bounds.
func (b *PixelBuffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return -1
	}
	return (y*b.Width + x) * BytesPerPixel
}

// At returns the RGBA samples of pixel (x, y), or zero if out of bounds.
func (b *PixelBuffer) At(x, y int) [4]byte {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return [4]byte{}
	}
	return [4]byte{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// Set writes the RGBA samples of pixel (x, y). Out of bounds writes are ignored.
func (b *PixelBuffer) Set(x, y int, c [4]byte) {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return
	}
	copy(b.Pix[i:i+4], c[:])
}

// Fill sets every pixel to c.
func (b *PixelBuffer) Fill(c [4]byte) {
	for i := 0; i+3 < len(b.Pix); i += 4 {
		copy(b.Pix[i:i+4], c[:])
	}
}

// NRGBA returns an *image.NRGBA view that shares Pix with the buffer.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// FromImage converts any image.Image to a new PixelBuffer with straight alpha.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	b := &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
	rowBytes := width * BytesPerPixel

	// Fast path: NRGBA already has the same layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			start := (y+bounds.Min.Y-nrgba.Rect.Min.Y)*nrgba.Stride +
				(bounds.Min.X-nrgba.Rect.Min.X)*BytesPerPixel
			copy(b.Pix[y*rowBytes:(y+1)*rowBytes], nrgba.Pix[start:start+rowBytes])
		}
		return b
	}

	// Everything else, premultiplied RGBA included, goes through the
	// NRGBA color model.
	draw.Draw(b.NRGBA(), b.NRGBA().Rect, img, bounds.Min, draw.Src)
	return b
}

// ColorAt returns pixel (x, y) as a color.NRGBA.
func (b *PixelBuffer) ColorAt(x, y int) color.NRGBA {
	c := b.At(x, y)
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
