//go:build !nogpu

package gpu

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pixbridge"
)

// UploadUsage is the usage of textures created by Upload. CopySrc allows
// the result to be read back with Reader.Texture.
const UploadUsage = gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding

// Upload creates an RGBA8Unorm texture with the contents of img.
// The caller owns the texture and releases it with Destroy.
func (r *Reader) Upload(img image.Image) (hal.Texture, error) {
	m, err := pixbridge.ImageToMat(img)
	if err != nil {
		return nil, err
	}
	return r.UploadMat(m)
}

// UploadMat creates an RGBA8Unorm texture with the contents of m.
// Matrices in other formats are expanded to RGBA first.
func (r *Reader) UploadMat(m *pixbridge.Mat) (hal.Texture, error) {
	rgba, err := pixbridge.MatToRGBA(m)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // G115: matrix dimensions are positive and bounded by GPU limits
	w, h := uint32(rgba.Cols()), uint32(rgba.Rows())
	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "pixbridge_upload",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         UploadUsage,
	})
	if err != nil {
		return nil, fmt.Errorf("create upload texture: %w", err)
	}

	r.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
		},
		rgba.Data(),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&size,
	)

	pixbridge.Logger().Debug("gpu: texture upload", "width", w, "height", h, "from", m.Format().String())
	return tex, nil
}

// Destroy releases a texture created by Upload.
func (r *Reader) Destroy(tex hal.Texture) {
	if tex == nil {
		return
	}
	r.device.DestroyTexture(tex)
}
