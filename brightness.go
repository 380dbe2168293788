package pixbridge

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/pixbridge/internal/pixel"
)

// RowBrightness returns the mean greyscale intensity of every image row,
// top to bottom. Values lie in [0, 255].
//
// The image is first reduced with GrayscaleMat (opts select the luminance
// weights); each row is then averaged without weighting. A zero-width or
// zero-height image returns ErrEmptySource rather than a degenerate vector.
func RowBrightness(img image.Image, opts ...ConvertOption) ([]float64, error) {
	g, err := GrayscaleMat(img, opts...)
	if err != nil {
		return nil, err
	}
	return RowBrightnessMat(g)
}

// RowBrightnessMat returns the mean of every row of a single-channel matrix.
func RowBrightnessMat(m *Mat) ([]float64, error) {
	if m.Empty() {
		return nil, ErrEmptySource
	}
	if m.Channels() != 1 {
		return nil, fmt.Errorf("%w: row brightness needs 1 channel, have %d",
			ErrChannelMismatch, m.Channels())
	}

	out := make([]float64, m.rows)
	for y := range m.rows {
		out[y] = pixel.RowMean(m.Row(y))
	}
	return out, nil
}

// RowBrightnessLevels is RowBrightness rounded to whole intensity levels.
func RowBrightnessLevels(img image.Image, opts ...ConvertOption) ([]uint16, error) {
	means, err := RowBrightness(img, opts...)
	if err != nil {
		return nil, err
	}
	levels := make([]uint16, len(means))
	for i, v := range means {
		levels[i] = uint16(math.Round(v))
	}
	return levels, nil
}
