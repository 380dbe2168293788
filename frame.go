package pixbridge

import (
	"image"
	"sync/atomic"
)

// FrameConverter prepares camera or render frames for display, optionally
// forcing them to greyscale. The greyscale toggle can be flipped from any
// goroutine while frames are being converted.
type FrameConverter struct {
	greyscale atomic.Bool
	luma      Luma
}

// FrameOption configures a FrameConverter.
type FrameOption func(*FrameConverter)

// WithGreyscale sets the initial greyscale mode.
func WithGreyscale(on bool) FrameOption {
	return func(c *FrameConverter) {
		c.greyscale.Store(on)
	}
}

// WithFrameLuma sets the luminance weighting used in greyscale mode.
func WithFrameLuma(l Luma) FrameOption {
	return func(c *FrameConverter) {
		c.luma = l
	}
}

// NewFrameConverter creates a converter. Greyscale mode is on by default;
// pass WithGreyscale(false) to start with frames passing through unchanged.
func NewFrameConverter(opts ...FrameOption) *FrameConverter {
	c := &FrameConverter{luma: LumaBT601}
	c.greyscale.Store(true)
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// SetGreyscale enables or disables greyscale mode.
func (c *FrameConverter) SetGreyscale(on bool) {
	c.greyscale.Store(on)
}

// Greyscale reports whether greyscale mode is enabled.
func (c *FrameConverter) Greyscale() bool {
	return c.greyscale.Load()
}

// Convert returns frame unchanged, or a greyscale copy in greyscale mode.
// Empty frames return ErrEmptySource in both modes.
func (c *FrameConverter) Convert(frame image.Image) (image.Image, error) {
	if _, err := sourceBounds(frame); err != nil {
		return nil, err
	}
	if !c.greyscale.Load() {
		return frame, nil
	}
	return GreyscaleImage(frame, WithLuma(c.luma))
}
