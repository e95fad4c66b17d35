package enhance

import "errors"

// Errors returned by the pipeline. Both are detected before any pixel is
// written; callers should test with errors.Is since the returned error wraps
// the sentinel with details.
var (
	// ErrInvalidDimensions is returned when a buffer's length does not equal
	// width*height*4, or a dimension is negative.
	ErrInvalidDimensions = errors.New("enhance: invalid dimensions")

	// ErrInvalidSettings is returned when a numeric setting is NaN,
	// infinite or negative.
	ErrInvalidSettings = errors.New("enhance: invalid settings")
)
