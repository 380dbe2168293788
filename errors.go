package pixbridge

import "errors"

// Conversion errors. Every failing call returns one of these, possibly
// wrapped with context; test with errors.Is.
var (
	// ErrUnsupportedFormat is returned when a texture's pixel format is not
	// RGBA8Unorm, or an image cannot be described by a matrix format.
	ErrUnsupportedFormat = errors.New("pixbridge: unsupported pixel format")

	// ErrReadFailure is returned when reading texture pixels fails.
	ErrReadFailure = errors.New("pixbridge: texture read failed")

	// ErrChannelMismatch is returned when a matrix's channel count does not
	// fit the requested color space.
	ErrChannelMismatch = errors.New("pixbridge: channel count does not match color space")

	// ErrEmptySource is returned for nil or zero-sized inputs where a
	// non-empty result is required.
	ErrEmptySource = errors.New("pixbridge: empty source")

	// ErrInvalidDimensions is returned when matrix rows or cols are non-positive.
	ErrInvalidDimensions = errors.New("pixbridge: invalid dimensions")

	// ErrDataTooSmall is returned when a buffer is smaller than its declared size.
	ErrDataTooSmall = errors.New("pixbridge: data buffer too small")
)
