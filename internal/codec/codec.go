package codec

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/enhance"
)

// DefaultJPEGQuality is the JPEG quality used when Options.Quality is zero.
const DefaultJPEGQuality = 95

// Errors returned by the codec.
var (
	// ErrUnsupportedFormat is returned when a format cannot be encoded.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyImage is returned when encoding a buffer with no pixels.
	ErrEmptyImage = errors.New("codec: empty image")
)

// Options controls encoding.
type Options struct {
	// Quality is the JPEG quality in [1, 100]. Zero means DefaultJPEGQuality.
	Quality int
}

// Decode reads an image in any registered format (PNG, JPEG, GIF, BMP, TIFF,
// WebP) and returns it as a PixelBuffer along with the detected format.
func Decode(r io.Reader) (*enhance.PixelBuffer, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("codec: decode: %w", err)
	}
	return enhance.FromImage(img), ParseFormat(name), nil
}

// Load decodes the image file at path.
func Load(path string) (*enhance.PixelBuffer, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *enhance.PixelBuffer, format Format, opts Options) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if buf.Width == 0 || buf.Height == 0 {
		return ErrEmptyImage
	}

	img := buf.NRGBA()
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality(opts.Quality)})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", format, err)
	}
	return nil
}

// Save encodes buf to path, choosing the format from the file extension.
func Save(path string, buf *enhance.PixelBuffer, opts Options) error {
	format := FormatFromPath(path)
	if !format.CanEncode() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}

	if err := Encode(f, buf, format, opts); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	return f.Close()
}

func jpegQuality(q int) int {
	if q == 0 {
		return DefaultJPEGQuality
	}
	return min(max(q, 1), 100)
}
