package enhance

import (
	"fmt"
	"math"
)

// Default enhancement factors.
const (
	DefaultBrightness     = 1.2
	DefaultContrast       = 1.1
	DefaultSaturation     = 1.3
	DefaultSharpness      = 1.1
	DefaultNoiseReduction = true
)

// Settings is a fully resolved set of enhancement parameters.
type Settings struct {
	// Brightness is a multiplicative gain on R, G and B.
	Brightness float64

	// Contrast is the slope of a linear remap anchored at gray level 128.
	Contrast float64

	// Saturation scales each channel's distance from the pixel's luma.
	Saturation float64

	// Sharpness scales the output of the sharpening convolution.
	Sharpness float64

	// NoiseReduction enables the 3x3 median stage.
	NoiseReduction bool
}

// DefaultSettings returns the default enhancement parameters.
func DefaultSettings() Settings {
	return Settings{
		Brightness:     DefaultBrightness,
		Contrast:       DefaultContrast,
		Saturation:     DefaultSaturation,
		Sharpness:      DefaultSharpness,
		NoiseReduction: DefaultNoiseReduction,
	}
}

// Patch is a partial set of overrides. Nil fields keep the base value.
// It is the decoded form of a preset file.
type Patch struct {
	Brightness     *float64 `yaml:"brightness,omitempty"`
	Contrast       *float64 `yaml:"contrast,omitempty"`
	Saturation     *float64 `yaml:"saturation,omitempty"`
	Sharpness      *float64 `yaml:"sharpness,omitempty"`
	NoiseReduction *bool    `yaml:"noiseReduction,omitempty"`
}

// Merge returns s with every non-nil field of p applied on top.
func (s Settings) Merge(p Patch) Settings {
	if p.Brightness != nil {
		s.Brightness = *p.Brightness
	}
	if p.Contrast != nil {
		s.Contrast = *p.Contrast
	}
	if p.Saturation != nil {
		s.Saturation = *p.Saturation
	}
	if p.Sharpness != nil {
		s.Sharpness = *p.Sharpness
	}
	if p.NoiseReduction != nil {
		s.NoiseReduction = *p.NoiseReduction
	}
	return s
}

// IsZero reports whether p overrides nothing.
func (p Patch) IsZero() bool {
	return p.Brightness == nil && p.Contrast == nil && p.Saturation == nil &&
		p.Sharpness == nil && p.NoiseReduction == nil
}

// Validate returns ErrInvalidSettings if any factor is NaN, infinite or
// negative. Zero is allowed.
func (s Settings) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"brightness", s.Brightness},
		{"contrast", s.Contrast},
		{"saturation", s.Saturation},
		{"sharpness", s.Sharpness},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidSettings, f.name, f.v)
		}
	}
	return nil
}
