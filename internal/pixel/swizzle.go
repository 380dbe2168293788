package pixel

// SwapRB copies n pixels of bpp bytes from src to dst, exchanging the
// first and third byte of each pixel (BGR <-> RGB, BGRA <-> RGBA).
// The remaining bytes, including alpha, are copied unchanged.
// dst and src may be the same slice.
func SwapRB(dst, src []byte, n, bpp int) {
	for i := range n {
		off := i * bpp
		s := src[off : off+bpp : off+bpp]
		d := dst[off : off+bpp : off+bpp]
		r, g, b := s[2], s[1], s[0]
		d[0] = r
		d[1] = g
		d[2] = b
		if bpp == 4 {
			d[3] = s[3]
		}
	}
}

// DropAlpha copies n 4-byte pixels from src into n 3-byte pixels in dst,
// discarding the fourth byte without compositing. When swap is set the
// first and third bytes are exchanged on the way.
func DropAlpha(dst, src []byte, n int, swap bool) {
	for i := range n {
		s := src[i*4 : i*4+4 : i*4+4]
		d := dst[i*3 : i*3+3 : i*3+3]
		if swap {
			d[0], d[1], d[2] = s[2], s[1], s[0]
		} else {
			d[0], d[1], d[2] = s[0], s[1], s[2]
		}
	}
}

// AddAlpha copies n 3-byte pixels from src into n opaque 4-byte pixels in
// dst, optionally exchanging the first and third bytes.
func AddAlpha(dst, src []byte, n int, swap bool) {
	for i := range n {
		s := src[i*3 : i*3+3 : i*3+3]
		d := dst[i*4 : i*4+4 : i*4+4]
		if swap {
			d[0], d[1], d[2] = s[2], s[1], s[0]
		} else {
			d[0], d[1], d[2] = s[0], s[1], s[2]
		}
		d[3] = 0xFF
	}
}

// ExpandGray replicates n greyscale samples into bpp-byte pixels.
// With bpp == 4 the alpha byte is set to opaque.
func ExpandGray(dst, src []byte, n, bpp int) {
	for i := range n {
		v := src[i]
		d := dst[i*bpp : i*bpp+bpp : i*bpp+bpp]
		d[0], d[1], d[2] = v, v, v
		if bpp == 4 {
			d[3] = 0xFF
		}
	}
}
