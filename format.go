package pixbridge

// Format is the channel layout of a Mat. Every format stores 8 bits per
// channel, interleaved.
type Format uint8

const (
	// FormatGray8 is 8-bit greyscale (1 channel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit color in R, G, B order (3 channels).
	FormatRGB8

	// FormatBGR8 is 24-bit color in B, G, R order (3 channels).
	// This is the default layout of most computer-vision matrix libraries.
	FormatBGR8

	// FormatRGBA8 is 32-bit color in R, G, B, A order, non-premultiplied.
	// Textures are read into this format.
	FormatRGBA8

	// FormatBGRA8 is 32-bit color in B, G, R, A order, non-premultiplied.
	FormatBGRA8

	formatCount
)

// FormatInfo contains metadata about a matrix format.
type FormatInfo struct {
	// Channels is the number of bytes per pixel: 1, 3 or 4.
	Channels int

	// HasAlpha reports whether the last channel is alpha.
	HasAlpha bool

	// IsGrayscale reports whether the format is single-channel luminance.
	IsGrayscale bool

	// IsBGR reports whether red and blue are stored swapped.
	IsBGR bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {Channels: 1, IsGrayscale: true},
	FormatRGB8:  {Channels: 3},
	FormatBGR8:  {Channels: 3, IsBGR: true},
	FormatRGBA8: {Channels: 4, HasAlpha: true},
	FormatBGRA8: {Channels: 4, HasAlpha: true, IsBGR: true},
}

// Info returns the FormatInfo for this format.
// Unknown formats return the zero FormatInfo.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of channels (bytes per pixel).
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is the greyscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// IsBGR returns true if red and blue are stored in reverse order.
func (f Format) IsBGR() bool {
	return f.Info().IsBGR
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes returns the number of bytes in a tightly packed row of width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	case FormatBGR8:
		return "BGR8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// redBlueOffsets returns the byte offsets of red and blue within a pixel.
func (f Format) redBlueOffsets() (r, b int) {
	if f.IsBGR() {
		return 2, 0
	}
	return 0, 2
}
