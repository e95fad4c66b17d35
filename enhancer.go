package enhance

import (
	"context"
	"log/slog"
	"time"

	"github.com/gogpu/enhance/internal/filter"
)

// Enhancer runs the enhancement pipeline, reusing one scratch buffer across
// calls. The scratch buffer is reallocated whenever the image dimensions
// change.
//
// Thread safety: an Enhancer must not be used by more than one goroutine at
// a time. Use one Enhancer per worker, or the package-level Enhance.
type Enhancer struct {
	scratch []byte
	width   int
	height  int
}

// NewEnhancer creates an Enhancer with no scratch memory allocated yet.
func NewEnhancer() *Enhancer {
	return &Enhancer{}
}

// Enhance validates buf and s and returns a new buffer of identical
// dimensions holding the enhanced image. buf is not modified.
//
// Returns an error wrapping ErrInvalidDimensions or ErrInvalidSettings
// before any pixel is processed.
func (e *Enhancer) Enhance(buf *PixelBuffer, s Settings) (*PixelBuffer, error) {
	if err := validate(buf, s); err != nil {
		return nil, err
	}
	out := buf.Clone()
	e.run(out, s)
	return out, nil
}

// EnhanceInPlace is like Enhance but writes the result back into buf.
// On error buf is left untouched.
func (e *Enhancer) EnhanceInPlace(buf *PixelBuffer, s Settings) error {
	if err := validate(buf, s); err != nil {
		return err
	}
	e.run(buf, s)
	return nil
}

// Reset releases the scratch buffer.
func (e *Enhancer) Reset() {
	e.scratch = nil
	e.width, e.height = 0, 0
}

// Enhance runs the pipeline on buf with DefaultSettings adjusted by opts and
// returns a new buffer. Each call uses its own scratch memory, so Enhance is
// safe for concurrent use on distinct buffers.
func Enhance(buf *PixelBuffer, opts ...Option) (*PixelBuffer, error) {
	return NewEnhancer().Enhance(buf, NewSettings(opts...))
}

func validate(buf *PixelBuffer, s Settings) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	return s.Validate()
}

// stage is a named pipeline step.
type stage struct {
	name string
	f    filter.Filter
}

// pipeline returns the stages for s in execution order.
func pipeline(s Settings) []stage {
	stages := []stage{
		{"brightness", filter.NewBrightnessFilter(s.Brightness)},
		{"contrast", filter.NewContrastFilter(s.Contrast)},
		{"saturation", filter.NewSaturationFilter(s.Saturation)},
	}
	if s.NoiseReduction {
		stages = append(stages, stage{"noise_reduction", filter.NewMedianFilter()})
	}
	return append(stages, stage{"sharpness", filter.NewSharpenFilter(s.Sharpness)})
}

// run applies all stages to b in place. Inputs are already validated.
func (e *Enhancer) run(b *PixelBuffer, s Settings) {
	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	for _, st := range pipeline(s) {
		var start time.Time
		if debug {
			start = time.Now()
		}
		e.apply(st.f, b)
		if debug {
			log.Debug("enhance: stage done",
				"stage", st.name,
				"width", b.Width,
				"height", b.Height,
				"elapsed", time.Since(start))
		}
	}
}

// apply runs f over b. Neighborhood filters read from a snapshot and write
// interior pixels back into b, so the border keeps the previous stage's
// output.
func (e *Enhancer) apply(f filter.Filter, b *PixelBuffer) {
	src := b.Pix
	if f.Neighborhood() {
		if src = e.snapshot(b); src == nil {
			return
		}
	}
	f.Apply(src, b.Pix, b.Width, b.Height)
}

// snapshot copies b.Pix into the scratch buffer and returns it. Returns nil
// when the image has no interior pixels.
func (e *Enhancer) snapshot(b *PixelBuffer) []byte {
	if b.Width < 3 || b.Height < 3 {
		return nil
	}
	if e.scratch == nil || e.width != b.Width || e.height != b.Height {
		Logger().Debug("enhance: scratch resized",
			"from_width", e.width, "from_height", e.height,
			"width", b.Width, "height", b.Height)
		e.scratch = make([]byte, len(b.Pix))
		e.width, e.height = b.Width, b.Height
	}
	copy(e.scratch, b.Pix)
	return e.scratch
}
