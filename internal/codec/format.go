// Package codec decodes image files into enhance.PixelBuffer values and
// encodes them back. It is the acquisition and presentation side that the
// enhance pipeline itself leaves to its callers.
package codec

import (
	"path/filepath"
	"strings"
)

// Format identifies a container format.
type Format uint8

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatTIFF
	FormatWebP
)

var formatNames = [...]string{
	FormatUnknown: "unknown",
	FormatPNG:     "png",
	FormatJPEG:    "jpeg",
	FormatGIF:     "gif",
	FormatBMP:     "bmp",
	FormatTIFF:    "tiff",
	FormatWebP:    "webp",
}

// String returns the name used by image.Decode for the format.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// Ext returns the canonical file extension, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatTIFF:
		return ".tif"
	case FormatUnknown:
		return ""
	default:
		return "." + f.String()
	}
}

// CanEncode reports whether Encode supports f.
func (f Format) CanEncode() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF:
		return true
	default:
		return false
	}
}

// ParseFormat maps a format name or extension (with or without the dot,
// any case) to a Format.
func ParseFormat(s string) Format {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return FormatPNG
	case "jpg", "jpeg":
		return FormatJPEG
	case "gif":
		return FormatGIF
	case "bmp":
		return FormatBMP
	case "tif", "tiff":
		return FormatTIFF
	case "webp":
		return FormatWebP
	default:
		return FormatUnknown
	}
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) Format {
	return ParseFormat(filepath.Ext(path))
}
