package pixbridge

import "fmt"

// Mat is a dense, row-major pixel matrix with 8 bits per channel.
//
// Rows are tightly packed: the sample for channel c of pixel (y, x) is at
// Data()[(y*Cols()+x)*Channels()+c]. A Mat returned by a conversion is
// freshly allocated and owned by the caller.
//
// Mat is safe for concurrent reads; writes through Data or Row require
// external synchronization.
type Mat struct {
	data   []byte
	rows   int
	cols   int
	format Format
}

// NewMat creates a zeroed matrix with the given dimensions and format.
func NewMat(rows, cols int, format Format) (*Mat, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: matrix format %d", ErrUnsupportedFormat, format)
	}
	return &Mat{
		data:   make([]byte, rows*format.RowBytes(cols)),
		rows:   rows,
		cols:   cols,
		format: format,
	}, nil
}

// MatFromBytes wraps existing tightly packed data without copying.
// The caller must not modify data while the Mat is in use elsewhere.
func MatFromBytes(data []byte, rows, cols int, format Format) (*Mat, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: matrix format %d", ErrUnsupportedFormat, format)
	}
	required := rows * format.RowBytes(cols)
	if len(data) < required {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), required)
	}
	return &Mat{
		data:   data[:required],
		rows:   rows,
		cols:   cols,
		format: format,
	}, nil
}

// newMat allocates without validation; callers have already checked
// dimensions and format.
func newMat(rows, cols int, format Format) *Mat {
	return &Mat{
		data:   make([]byte, rows*format.RowBytes(cols)),
		rows:   rows,
		cols:   cols,
		format: format,
	}
}

// Rows returns the number of rows (image height).
func (m *Mat) Rows() int {
	return m.rows
}

// Cols returns the number of columns (image width).
func (m *Mat) Cols() int {
	return m.cols
}

// Channels returns the number of channels per pixel: 1, 3 or 4.
func (m *Mat) Channels() int {
	return m.format.Channels()
}

// Format returns the channel layout.
func (m *Mat) Format() Format {
	return m.format
}

// Data returns the raw sample slice.
func (m *Mat) Data() []byte {
	return m.data
}

// RowStride returns the number of bytes per row.
func (m *Mat) RowStride() int {
	return m.format.RowBytes(m.cols)
}

// Row returns the samples of row y, or nil if y is out of range.
func (m *Mat) Row(y int) []byte {
	if y < 0 || y >= m.rows {
		return nil
	}
	stride := m.RowStride()
	return m.data[y*stride : (y+1)*stride]
}

// At returns the channel samples of pixel (y, x), or nil if out of range.
func (m *Mat) At(y, x int) []byte {
	if y < 0 || y >= m.rows || x < 0 || x >= m.cols {
		return nil
	}
	ch := m.Channels()
	off := (y*m.cols + x) * ch
	return m.data[off : off+ch : off+ch]
}

// Clone returns a deep copy of the matrix.
func (m *Mat) Clone() *Mat {
	data := make([]byte, len(m.data))
	copy(data, m.data)
	return &Mat{
		data:   data,
		rows:   m.rows,
		cols:   m.cols,
		format: m.format,
	}
}

// Empty reports whether the matrix is nil or has a zero dimension.
func (m *Mat) Empty() bool {
	return m == nil || m.rows == 0 || m.cols == 0
}

// String returns a short description such as "Mat[480x640 RGBA8]".
func (m *Mat) String() string {
	if m == nil {
		return "Mat[nil]"
	}
	return fmt.Sprintf("Mat[%dx%d %s]", m.rows, m.cols, m.format)
}
