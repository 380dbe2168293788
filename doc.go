// Package pixbridge converts pixels between GPU textures, dense pixel
// matrices, and Go images.
//
// # Overview
//
// pixbridge is the glue between a GPU framework (gogpu/wgpu) and code that
// works on plain row-major pixel buffers. It has no state: every function
// takes its inputs, allocates a fresh result, and returns.
//
//   - TextureToMat reads a texture into a Mat, honoring the texture's row pitch.
//   - MatToImage and ImageToMat convert between a Mat and an image.Image,
//     tagged with a ColorSpace (Grey or Color).
//   - ImageToMat3 drops alpha; GrayscaleMat reduces to luminance.
//   - RowBrightness averages every row of the greyscale image.
//
// # Quick Start
//
//	import "github.com/gogpu/pixbridge"
//
//	m, err := pixbridge.TextureToMat(tex)
//	if err != nil {
//	    return err
//	}
//	img, err := pixbridge.MatToImage(m, pixbridge.Color)
//
//	rows, err := pixbridge.RowBrightness(img)
//
// # Matrices
//
// A Mat stores 8-bit samples, tightly packed, with 1, 3 or 4 channels
// described by its Format. BGR formats are accepted for data coming from
// computer-vision code and are reordered when converted to images; images
// produced by pixbridge are always RGB ordered.
//
// # Greyscale
//
// Greyscale conversion uses ITU-R BT.601 integer weights
// (0.299 R + 0.587 G + 0.114 B, rounded). Pass WithLuma(LumaBT709) for
// HD-video weights.
//
// # Errors
//
// Failures are reported with the sentinel errors ErrUnsupportedFormat,
// ErrReadFailure, ErrChannelMismatch and ErrEmptySource; test them with
// errors.Is.
//
// # GPU textures
//
// The gpu sub-package implements Texture over wgpu HAL textures and can
// upload images back to the GPU.
package pixbridge

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
