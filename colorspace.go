package pixbridge

// ColorSpace selects how a Mat's channels are interpreted when it is
// turned into an image.
type ColorSpace uint8

const (
	// Grey marks single-channel luminance data.
	Grey ColorSpace = iota

	// Color marks 3-channel (opaque) or 4-channel (with alpha) color data.
	Color
)

// IsValid returns true for Grey and Color.
func (cs ColorSpace) IsValid() bool {
	return cs == Grey || cs == Color
}

// accepts reports whether a matrix with the given channel count can be
// rendered in this color space.
func (cs ColorSpace) accepts(channels int) bool {
	switch cs {
	case Grey:
		return channels == 1
	case Color:
		return channels == 3 || channels == 4
	default:
		return false
	}
}

// String returns "Grey", "Color" or "Unknown".
func (cs ColorSpace) String() string {
	switch cs {
	case Grey:
		return "Grey"
	case Color:
		return "Color"
	default:
		return "Unknown"
	}
}
