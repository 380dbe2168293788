package pixbridge

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixbridge/internal/pixel"
)

// textureBytesPerPixel is the pixel size of the only supported texture
// format, RGBA8Unorm.
const textureBytesPerPixel = 4

// readbackPool holds padded staging buffers between reads of equally
// sized textures.
var readbackPool = pixel.NewPool(4)

// Texture is a read-only view of a GPU texture.
//
// The gpu sub-package implements Texture over wgpu HAL textures;
// BufferTexture implements it over CPU memory.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// BytesPerRow returns the row pitch of the data written by ReadPixels.
	// It may exceed Width*4 when the backend pads rows for alignment.
	BytesPerRow() int

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// ReadPixels synchronously copies Height rows of BytesPerRow bytes
	// into dst, which is at least Height*BytesPerRow long.
	ReadPixels(dst []byte) error
}

// TextureToMat reads a texture into a new FormatRGBA8 matrix with
// rows == Height and cols == Width.
//
// The texture is read once into a buffer laid out with its own row pitch.
// When the pitch equals Width*4 that buffer becomes the matrix data;
// otherwise rows are re-packed from a pooled staging buffer and the
// padding discarded.
//
// Returns ErrEmptySource for a nil or zero-sized texture,
// ErrUnsupportedFormat unless the format is RGBA8Unorm, and ErrReadFailure
// if the row pitch is too small or the read fails.
func TextureToMat(tex Texture) (*Mat, error) {
	if tex == nil {
		return nil, ErrEmptySource
	}
	w, h := tex.Width(), tex.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: texture %dx%d", ErrEmptySource, w, h)
	}
	if f := tex.Format(); f != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("%w: texture format %v", ErrUnsupportedFormat, f)
	}

	rowBytes := w * textureBytesPerPixel
	stride := tex.BytesPerRow()
	if stride < rowBytes {
		return nil, fmt.Errorf("%w: bytes per row %d < %d", ErrReadFailure, stride, rowBytes)
	}

	padded := stride != rowBytes
	var buf []byte
	if padded {
		buf = readbackPool.Get(stride * h)
		defer readbackPool.Put(buf)
	} else {
		buf = make([]byte, stride*h)
	}
	if err := tex.ReadPixels(buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	Logger().Debug("pixbridge: texture read",
		"width", w, "height", h, "bytesPerRow", stride, "padded", padded)

	if !padded {
		return &Mat{data: buf, rows: h, cols: w, format: FormatRGBA8}, nil
	}

	m := newMat(h, w, FormatRGBA8)
	pixel.PackRows(m.data, buf, h, rowBytes, stride)
	return m, nil
}

// TextureToImage reads a texture into a new *image.NRGBA.
// WithFlipVertical mirrors the rows, for backends that read bottom-up.
func TextureToImage(tex Texture, opts ...ConvertOption) (image.Image, error) {
	m, err := TextureToMat(tex)
	if err != nil {
		return nil, err
	}
	o := applyConvertOptions(opts)
	if o.flip {
		pixel.FlipRows(m.data, m.rows, m.RowStride())
	}
	return MatToImage(m, Color)
}

// BufferTexture is a Texture backed by CPU memory, such as a mapped
// staging buffer. Rows are BytesPerRow apart and may carry padding.
type BufferTexture struct {
	width       int
	height      int
	bytesPerRow int
	format      gputypes.TextureFormat
	pix         []byte
}

// NewBufferTexture wraps pix as a texture. pix must hold height rows of
// bytesPerRow bytes; it is not copied.
func NewBufferTexture(width, height, bytesPerRow int, format gputypes.TextureFormat, pix []byte) (*BufferTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if bytesPerRow <= 0 {
		return nil, fmt.Errorf("%w: bytes per row %d", ErrInvalidDimensions, bytesPerRow)
	}
	if need := bytesPerRow * height; len(pix) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(pix), need)
	}
	return &BufferTexture{
		width:       width,
		height:      height,
		bytesPerRow: bytesPerRow,
		format:      format,
		pix:         pix,
	}, nil
}

// Width returns the texture width in pixels.
func (t *BufferTexture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *BufferTexture) Height() int { return t.height }

// BytesPerRow returns the row pitch of the backing buffer.
func (t *BufferTexture) BytesPerRow() int { return t.bytesPerRow }

// Format returns the declared pixel format.
func (t *BufferTexture) Format() gputypes.TextureFormat { return t.format }

// ReadPixels copies the backing buffer into dst.
func (t *BufferTexture) ReadPixels(dst []byte) error {
	n := t.bytesPerRow * t.height
	if len(dst) < n {
		return fmt.Errorf("%w: destination %d bytes, need %d", ErrDataTooSmall, len(dst), n)
	}
	copy(dst, t.pix[:n])
	return nil
}
