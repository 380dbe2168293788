// Package pixel holds the byte-level kernels behind pixbridge conversions:
// luminance reduction, channel reordering, and row (re)packing.
//
// Kernels operate on tightly packed rows and never allocate; callers own
// every slice passed in.
package pixel

// Weights are integer luminance coefficients. Y = (R*R + G*G + B*B + Div/2) / Div.
type Weights struct {
	R, G, B uint32
	Div     uint32
}

// BT601 is the ITU-R BT.601 weighting (0.299, 0.587, 0.114).
var BT601 = Weights{R: 299, G: 587, B: 114, Div: 1000}

// BT709 is the ITU-R BT.709 weighting (0.2126, 0.7152, 0.0722).
var BT709 = Weights{R: 2126, G: 7152, B: 722, Div: 10000}

// Luma returns the rounded luminance of a single pixel.
// The coefficients of both standard weightings sum to Div, so the result
// never exceeds 255.
func (w Weights) Luma(r, g, b uint8) uint8 {
	y := uint32(r)*w.R + uint32(g)*w.G + uint32(b)*w.B
	return uint8((y + w.Div/2) / w.Div)
}

// GrayRow reduces one row of interleaved color samples to luminance.
// bpp is the source bytes per pixel (3 or 4); rOff and bOff give the byte
// offsets of red and blue inside a pixel, green is always at offset 1.
// dst must hold at least len(src)/bpp bytes.
func (w Weights) GrayRow(dst, src []byte, bpp, rOff, bOff int) {
	n := len(src) / bpp
	for x := range n {
		p := src[x*bpp : x*bpp+bpp : x*bpp+bpp]
		dst[x] = w.Luma(p[rOff], p[1], p[bOff])
	}
}
