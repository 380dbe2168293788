package pixbridge

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixbridge/internal/pixel"
)

// MatToImage converts a matrix into a freshly allocated image.
//
// With Grey the matrix must have 1 channel and the result is *image.Gray.
// With Color the matrix must have 3 or 4 channels; the result is *RGB for 3
// channels and *image.NRGBA (alpha preserved, not premultiplied) for 4.
// RGB-ordered data is copied in bulk; BGR-ordered data is reordered so the
// image always reads in R, G, B order.
//
// Returns ErrEmptySource for a nil or empty matrix and ErrChannelMismatch
// if the channel count does not fit cs.
func MatToImage(m *Mat, cs ColorSpace) (image.Image, error) {
	if m.Empty() {
		return nil, ErrEmptySource
	}
	if !cs.accepts(m.Channels()) {
		return nil, fmt.Errorf("%w: %s matrix with %d channels as %s",
			ErrChannelMismatch, m.format, m.Channels(), cs)
	}

	rect := image.Rect(0, 0, m.cols, m.rows)
	n := m.rows * m.cols

	switch m.format {
	case FormatGray8:
		g := image.NewGray(rect)
		copy(g.Pix, m.data)
		return g, nil

	case FormatRGB8:
		p := NewRGB(rect)
		copy(p.Pix, m.data)
		return p, nil

	case FormatBGR8:
		p := NewRGB(rect)
		pixel.SwapRB(p.Pix, m.data, n, 3)
		return p, nil

	case FormatRGBA8:
		p := image.NewNRGBA(rect)
		copy(p.Pix, m.data)
		return p, nil

	case FormatBGRA8:
		p := image.NewNRGBA(rect)
		pixel.SwapRB(p.Pix, m.data, n, 4)
		return p, nil

	default:
		return nil, fmt.Errorf("%w: matrix format %s", ErrUnsupportedFormat, m.format)
	}
}

// ImageChannels returns the number of channels an image converts to with
// ImageToMat: 1 for greyscale images, 3 for opaque-by-type images (*RGB,
// *image.YCbCr, *image.CMYK), and 4 for everything else.
func ImageChannels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *RGB, *image.YCbCr, *image.CMYK:
		return 3
	}
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	}
	return 4
}

// ImageToMat converts an image into a matrix that keeps the image's native
// channel count (see ImageChannels). Greyscale images yield FormatGray8,
// 3-channel images FormatRGB8, and all others FormatRGBA8 with
// non-premultiplied alpha.
//
// Returns ErrEmptySource for a nil image or empty bounds.
func ImageToMat(img image.Image) (*Mat, error) {
	b, err := sourceBounds(img)
	if err != nil {
		return nil, err
	}
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		m := newMat(h, w, FormatGray8)
		for y := range h {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(m.Row(y), src.Pix[off:off+w])
		}
		return m, nil

	case *image.Gray16:
		m := newMat(h, w, FormatGray8)
		for y := range h {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := m.Row(y)
			for x := range w {
				row[x] = src.Pix[off+x*2] // high byte
			}
		}
		return m, nil

	case *RGB:
		m := newMat(h, w, FormatRGB8)
		for y := range h {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(m.Row(y), src.Pix[off:off+w*3])
		}
		return m, nil
	}

	switch ImageChannels(img) {
	case 1:
		m := newMat(h, w, FormatGray8)
		for y := range h {
			row := m.Row(y)
			for x := range w {
				row[x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			}
		}
		return m, nil

	case 3:
		nrgba := toNRGBA(img, b)
		m := newMat(h, w, FormatRGB8)
		for y := range h {
			pixel.DropAlpha(m.Row(y), nrgba.Pix[y*nrgba.Stride:], w, false)
		}
		return m, nil

	default:
		nrgba := toNRGBA(img, b)
		m := newMat(h, w, FormatRGBA8)
		pixel.PackRows(m.data, nrgba.Pix, h, w*4, nrgba.Stride)
		return m, nil
	}
}

// ImageToMat3 converts an image into a 3-channel FormatRGB8 matrix.
// Alpha is dropped outright: colour bytes are kept as stored
// (non-premultiplied) and nothing is composited against a background.
// Greyscale images are replicated into all three channels.
func ImageToMat3(img image.Image) (*Mat, error) {
	full, err := ImageToMat(img)
	if err != nil {
		return nil, err
	}

	n := full.rows * full.cols
	switch full.Channels() {
	case 3:
		return full, nil
	case 4:
		m := newMat(full.rows, full.cols, FormatRGB8)
		pixel.DropAlpha(m.data, full.data, n, false)
		return m, nil
	default:
		m := newMat(full.rows, full.cols, FormatRGB8)
		pixel.ExpandGray(m.data, full.data, n, 3)
		return m, nil
	}
}

// GrayscaleMat converts an image into a single-channel FormatGray8 matrix.
// Colour pixels are reduced with the configured luminance weights (BT.601
// unless WithLuma says otherwise) and alpha is discarded. Greyscale images
// are copied unchanged, so converting twice equals converting once.
func GrayscaleMat(img image.Image, opts ...ConvertOption) (*Mat, error) {
	full, err := ImageToMat(img)
	if err != nil {
		return nil, err
	}
	if full.Channels() == 1 {
		return full, nil
	}
	return MatToGray(full, opts...)
}

// MatToGray reduces a matrix of any format to a FormatGray8 matrix.
// A greyscale matrix is cloned.
func MatToGray(m *Mat, opts ...ConvertOption) (*Mat, error) {
	if m.Empty() {
		return nil, ErrEmptySource
	}
	if m.format.IsGrayscale() {
		return m.Clone(), nil
	}

	o := applyConvertOptions(opts)
	w := o.luma.weights()
	rOff, bOff := m.format.redBlueOffsets()
	bpp := m.Channels()

	g := newMat(m.rows, m.cols, FormatGray8)
	for y := range m.rows {
		w.GrayRow(g.Row(y), m.Row(y), bpp, rOff, bOff)
	}

	Logger().Debug("pixbridge: grayscale",
		"rows", m.rows, "cols", m.cols, "from", m.format.String(), "luma", o.luma.String())
	return g, nil
}

// MatToRGBA converts a matrix of any format to FormatRGBA8, the texture
// upload layout. Greyscale is replicated, missing alpha is set opaque and
// BGR data is reordered. A FormatRGBA8 matrix is cloned.
func MatToRGBA(m *Mat) (*Mat, error) {
	if m.Empty() {
		return nil, ErrEmptySource
	}

	n := m.rows * m.cols
	out := newMat(m.rows, m.cols, FormatRGBA8)
	switch m.format {
	case FormatGray8:
		pixel.ExpandGray(out.data, m.data, n, 4)
	case FormatRGB8, FormatBGR8:
		pixel.AddAlpha(out.data, m.data, n, m.format.IsBGR())
	case FormatRGBA8:
		copy(out.data, m.data)
	case FormatBGRA8:
		pixel.SwapRB(out.data, m.data, n, 4)
	default:
		return nil, fmt.Errorf("%w: matrix format %s", ErrUnsupportedFormat, m.format)
	}
	return out, nil
}

// GreyscaleImage converts an image into a greyscale *image.Gray using the
// same rules as GrayscaleMat.
func GreyscaleImage(img image.Image, opts ...ConvertOption) (*image.Gray, error) {
	m, err := GrayscaleMat(img, opts...)
	if err != nil {
		return nil, err
	}
	// m is freshly allocated and not retained, so the image can own its data.
	return &image.Gray{
		Pix:    m.data,
		Stride: m.cols,
		Rect:   image.Rect(0, 0, m.cols, m.rows),
	}, nil
}

// sourceBounds validates an input image and returns its bounds.
func sourceBounds(img image.Image) (image.Rectangle, error) {
	if img == nil {
		return image.Rectangle{}, ErrEmptySource
	}
	b := img.Bounds()
	if b.Empty() {
		return image.Rectangle{}, fmt.Errorf("%w: image bounds %v", ErrEmptySource, b)
	}
	return b, nil
}

// toNRGBA returns the image as non-premultiplied RGBA rows starting at the
// image's bounds minimum. *image.NRGBA sources at the origin are used as-is.
func toNRGBA(img image.Image, b image.Rectangle) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok {
		if b.Min == (image.Point{}) {
			return src
		}
		off := src.PixOffset(b.Min.X, b.Min.Y)
		return &image.NRGBA{Pix: src.Pix[off:], Stride: src.Stride, Rect: image.Rect(0, 0, b.Dx(), b.Dy())}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
