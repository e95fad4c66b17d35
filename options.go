package enhance

// Option adjusts Settings. Options are applied in order on top of
// DefaultSettings.
//
// Example:
//
//	// Defaults with a stronger saturation boost and no denoising
//	s := enhance.NewSettings(
//	    enhance.WithSaturation(1.6),
//	    enhance.WithNoiseReduction(false),
//	)
type Option func(*Settings)

// NewSettings returns DefaultSettings with opts applied.
func NewSettings(opts ...Option) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithBrightness sets the brightness gain.
// 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func WithBrightness(factor float64) Option {
	return func(s *Settings) {
		s.Brightness = factor
	}
}

// WithContrast sets the contrast slope around gray level 128.
// 0.0 = flat gray, 1.0 = unchanged
func WithContrast(factor float64) Option {
	return func(s *Settings) {
		s.Contrast = factor
	}
}

// WithSaturation sets the saturation gain.
// 0.0 = grayscale, 1.0 = unchanged
func WithSaturation(factor float64) Option {
	return func(s *Settings) {
		s.Saturation = factor
	}
}

// WithSharpness sets the scale applied to the sharpening convolution.
func WithSharpness(factor float64) Option {
	return func(s *Settings) {
		s.Sharpness = factor
	}
}

// WithNoiseReduction enables or disables the median stage.
func WithNoiseReduction(enabled bool) Option {
	return func(s *Settings) {
		s.NoiseReduction = enabled
	}
}

// WithPatch applies the non-nil fields of p.
func WithPatch(p Patch) Option {
	return func(s *Settings) {
		*s = s.Merge(p)
	}
}

// WithSettings replaces all fields with s.
func WithSettings(s Settings) Option {
	return func(dst *Settings) {
		*dst = s
	}
}
