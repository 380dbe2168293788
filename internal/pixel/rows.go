package pixel

// PackRows copies rows of rowBytes bytes from a strided src into a tightly
// packed dst, dropping the stride-rowBytes padding after each row.
// The final source row may be truncated to rowBytes.
func PackRows(dst, src []byte, rows, rowBytes, stride int) {
	if stride == rowBytes {
		copy(dst[:rows*rowBytes], src)
		return
	}
	for y := range rows {
		srcOff := y * stride
		dstOff := y * rowBytes
		copy(dst[dstOff:dstOff+rowBytes], src[srcOff:srcOff+rowBytes])
	}
}

// FlipRows mirrors a tightly packed buffer vertically in place.
func FlipRows(data []byte, rows, rowBytes int) {
	tmp := make([]byte, rowBytes)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := data[top*rowBytes : (top+1)*rowBytes]
		b := data[bottom*rowBytes : (bottom+1)*rowBytes]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// RowMean returns the arithmetic mean of the samples in row.
// It returns 0 for an empty row; callers reject empty input earlier.
func RowMean(row []byte) float64 {
	if len(row) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range row {
		sum += uint64(v)
	}
	return float64(sum) / float64(len(row))
}
