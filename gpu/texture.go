//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pixbridge"
)

// Texture is a hal.Texture viewed as a pixbridge.Texture.
// The texture must have been created with TextureUsageCopySrc.
type Texture struct {
	reader *Reader
	tex    hal.Texture
	width  int
	height int
	format gputypes.TextureFormat
}

// Ensure Texture implements pixbridge.Texture.
var _ pixbridge.Texture = (*Texture)(nil)

// Texture wraps tex for reading. The Reader does not take ownership.
func (r *Reader) Texture(tex hal.Texture, width, height int, format gputypes.TextureFormat) *Texture {
	return &Texture{
		reader: r,
		tex:    tex,
		width:  width,
		height: height,
		format: format,
	}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Format returns the texture pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// BytesPerRow returns the padded readback row pitch.
func (t *Texture) BytesPerRow() int { return AlignedBytesPerRow(t.width) }

// ReadPixels copies the texture into dst through a staging buffer and
// blocks until the GPU has finished.
func (t *Texture) ReadPixels(dst []byte) error {
	if t.tex == nil {
		return ErrNilTexture
	}
	if t.width <= 0 || t.height <= 0 {
		return fmt.Errorf("gpu: invalid texture size %dx%d", t.width, t.height)
	}

	r := t.reader
	//nolint:gosec // G115: dimensions are validated positive and bounded by GPU limits
	w, h, alignedBytesPerRow := uint32(t.width), uint32(t.height), uint32(t.BytesPerRow())
	stagingBufSize := uint64(alignedBytesPerRow) * uint64(h)
	if uint64(len(dst)) < stagingBufSize {
		return fmt.Errorf("%w: destination %d bytes, need %d", pixbridge.ErrDataTooSmall, len(dst), stagingBufSize)
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "pixbridge_readback_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("pixbridge_readback"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "pixbridge_readback_staging",
		Size:  stagingBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(t.tex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: t.tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, r.timeout)
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !fenceOK {
		return fmt.Errorf("%w after %v", ErrTimeout, r.timeout)
	}

	if err := r.queue.ReadBuffer(stagingBuf, 0, dst[:stagingBufSize]); err != nil {
		return fmt.Errorf("readback: %w", err)
	}

	pixbridge.Logger().Debug("gpu: texture readback",
		"width", t.width, "height", t.height, "bytesPerRow", alignedBytesPerRow)
	return nil
}

// String returns a short description of the texture.
func (t *Texture) String() string {
	return fmt.Sprintf("gpu.Texture[%dx%d %v pitch=%d]", t.width, t.height, t.format, t.BytesPerRow())
}
