package codec

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{".PNG", FormatPNG},
		{"jpg", FormatJPEG},
		{".jpeg", FormatJPEG},
		{"gif", FormatGIF},
		{"bmp", FormatBMP},
		{"tif", FormatTIFF},
		{".tiff", FormatTIFF},
		{"webp", FormatWebP},
		{"", FormatUnknown},
		{"heic", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	if got := FormatFromPath("/tmp/photos/serum.JPG"); got != FormatJPEG {
		t.Errorf("FormatFromPath(.JPG) = %v, want jpeg", got)
	}
	if got := FormatFromPath("noext"); got != FormatUnknown {
		t.Errorf("FormatFromPath(noext) = %v, want unknown", got)
	}
}

func TestFormatProperties(t *testing.T) {
	tests := []struct {
		f         Format
		name      string
		ext       string
		canEncode bool
	}{
		{FormatPNG, "png", ".png", true},
		{FormatJPEG, "jpeg", ".jpg", true},
		{FormatGIF, "gif", ".gif", true},
		{FormatBMP, "bmp", ".bmp", true},
		{FormatTIFF, "tiff", ".tif", true},
		{FormatWebP, "webp", ".webp", false},
		{FormatUnknown, "unknown", "", false},
		{Format(200), "unknown", ".unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.f.Ext(); got != tt.ext {
				t.Errorf("Ext() = %q, want %q", got, tt.ext)
			}
			if got := tt.f.CanEncode(); got != tt.canEncode {
				t.Errorf("CanEncode() = %v, want %v", got, tt.canEncode)
			}
		})
	}
}
