//go:build !nogpu

// Package gpu reads and writes wgpu HAL textures for pixbridge.
//
// A Reader wraps a shared hal.Device and hal.Queue. Reader.Texture adapts a
// hal.Texture to pixbridge.Texture so it can be passed to
// pixbridge.TextureToMat; Reader.Upload goes the other way.
//
// Readback copies the texture into a staging buffer whose rows are padded
// to the 256-byte copy pitch WebGPU requires, so BytesPerRow is usually
// larger than Width*4. pixbridge.TextureToMat strips that padding.
//
// Usage:
//
//	r, err := gpu.FromProvider(provider) // gpucontext.DeviceProvider with HAL access
//	if err != nil {
//	    return err
//	}
//	m, err := pixbridge.TextureToMat(r.Texture(tex, w, h, gputypes.TextureFormatRGBA8Unorm))
package gpu

import (
	"errors"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned by the gpu package.
var (
	// ErrNilDevice is returned when a Reader is created without a device or queue.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrProviderNotHAL is returned when a device provider does not expose
	// hal.Device and hal.Queue.
	ErrProviderNotHAL = errors.New("gpu: provider does not expose HAL device and queue")

	// ErrNilTexture is returned when reading from a nil texture.
	ErrNilTexture = errors.New("gpu: nil texture")

	// ErrTimeout is returned when the GPU does not finish a copy in time.
	ErrTimeout = errors.New("gpu: timed out waiting for GPU")
)

// DefaultTimeout bounds how long a readback waits on its fence.
const DefaultTimeout = 5 * time.Second

// copyPitchAlignment is the WebGPU (and DX12) BytesPerRow alignment for
// texture <-> buffer copies.
const copyPitchAlignment = 256

// AlignedBytesPerRow returns the row pitch of an RGBA8 readback for the
// given width: width*4 rounded up to the copy pitch alignment.
func AlignedBytesPerRow(width int) int {
	bytesPerRow := width * 4
	return (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
}

// Reader performs synchronous texture readback and upload on a shared
// device. It holds no per-call state and is safe for concurrent use as
// long as the underlying queue is.
type Reader struct {
	device  hal.Device
	queue   hal.Queue
	timeout time.Duration
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithTimeout sets the fence wait timeout for readbacks.
// Non-positive values keep DefaultTimeout.
func WithTimeout(d time.Duration) ReaderOption {
	return func(r *Reader) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewReader creates a Reader on an existing device and queue.
// The Reader never destroys them.
func NewReader(device hal.Device, queue hal.Queue, opts ...ReaderOption) (*Reader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	r := &Reader{
		device:  device,
		queue:   queue,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// FromProvider creates a Reader from a host device provider (e.g. gogpu).
// The provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
func FromProvider(provider gpucontext.DeviceProvider, opts ...ReaderOption) (*Reader, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrProviderNotHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrProviderNotHAL
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, ErrProviderNotHAL
	}
	return NewReader(device, queue, opts...)
}

// Timeout returns the fence wait timeout.
func (r *Reader) Timeout() time.Duration {
	return r.timeout
}
