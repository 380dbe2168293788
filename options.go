package pixbridge

import "github.com/gogpu/pixbridge/internal/pixel"

// Luma selects the luminance weighting used for greyscale conversion.
type Luma uint8

const (
	// LumaBT601 weights R, G, B by 0.299, 0.587, 0.114 (ITU-R BT.601).
	// This is the default and matches the classic video/JPEG greyscale.
	LumaBT601 Luma = iota

	// LumaBT709 weights R, G, B by 0.2126, 0.7152, 0.0722 (ITU-R BT.709).
	LumaBT709
)

// String returns "BT601", "BT709" or "Unknown".
func (l Luma) String() string {
	switch l {
	case LumaBT601:
		return "BT601"
	case LumaBT709:
		return "BT709"
	default:
		return "Unknown"
	}
}

func (l Luma) weights() pixel.Weights {
	if l == LumaBT709 {
		return pixel.BT709
	}
	return pixel.BT601
}

// ConvertOption configures a single conversion call.
//
// Example:
//
//	m, err := pixbridge.GrayscaleMat(img, pixbridge.WithLuma(pixbridge.LumaBT709))
type ConvertOption func(*convertOptions)

type convertOptions struct {
	luma Luma
	flip bool
}

func defaultConvertOptions() convertOptions {
	return convertOptions{luma: LumaBT601}
}

func applyConvertOptions(opts []ConvertOption) convertOptions {
	o := defaultConvertOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLuma sets the luminance weighting for greyscale conversions.
// Unknown values fall back to LumaBT601.
func WithLuma(l Luma) ConvertOption {
	return func(o *convertOptions) {
		o.luma = l
	}
}

// WithFlipVertical mirrors the result top to bottom. Used with
// TextureToImage for backends whose readback origin is the bottom-left.
func WithFlipVertical() ConvertOption {
	return func(o *convertOptions) {
		o.flip = true
	}
}
