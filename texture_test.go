package pixbridge

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gputypes"
)

// padByte fills the row padding of test textures so leaks are visible.
const padByte = 0xEE

// newTestTexture builds an RGBA8Unorm BufferTexture of w x h pixels with
// the given row pitch. fill returns the RGBA bytes of pixel (x, y); nil
// fills pixel (x, y) with (x, y, x+y, 255).
func newTestTexture(t testing.TB, w, h, stride int, fill func(x, y int) [4]byte) *BufferTexture {
	t.Helper()
	if fill == nil {
		fill = func(x, y int) [4]byte { return [4]byte{byte(x), byte(y), byte(x + y), 255} }
	}
	pix := bytes.Repeat([]byte{padByte}, stride*h)
	for y := range h {
		for x := range w {
			p := fill(x, y)
			copy(pix[y*stride+x*4:], p[:])
		}
	}
	tex, err := NewBufferTexture(w, h, stride, gputypes.TextureFormatRGBA8Unorm, pix)
	if err != nil {
		t.Fatalf("NewBufferTexture() error = %v", err)
	}
	return tex
}

// failingTexture reports a read error, like a texture that is not
// currently readable.
type failingTexture struct {
	w, h int
}

var errNotReadable = errors.New("texture not readable")

func (f failingTexture) Width() int                     { return f.w }
func (f failingTexture) Height() int                    { return f.h }
func (f failingTexture) BytesPerRow() int               { return f.w * 4 }
func (f failingTexture) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }
func (f failingTexture) ReadPixels([]byte) error        { return errNotReadable }

func TestTextureToMatDimensions(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		stride int
	}{
		{"tight 1x1", 1, 1, 4},
		{"tight 7x3", 7, 3, 28},
		{"padded 7x3", 7, 3, 32},
		{"aligned 100x2", 100, 2, 512},
		{"tall 2x50", 2, 50, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := newTestTexture(t, tt.w, tt.h, tt.stride, nil)
			m, err := TextureToMat(tex)
			if err != nil {
				t.Fatalf("TextureToMat() error = %v", err)
			}
			if m.Rows() != tt.h || m.Cols() != tt.w {
				t.Errorf("Mat size = %dx%d, want %dx%d", m.Rows(), m.Cols(), tt.h, tt.w)
			}
			if m.Channels() != 4 || m.Format() != FormatRGBA8 {
				t.Errorf("Mat format = %s/%d channels, want RGBA8/4", m.Format(), m.Channels())
			}
			if len(m.Data()) != tt.w*tt.h*4 {
				t.Errorf("len(Data()) = %d, want %d", len(m.Data()), tt.w*tt.h*4)
			}
		})
	}
}

func TestTextureToMatDropsPadding(t *testing.T) {
	tex := newTestTexture(t, 3, 2, 20, nil)
	m, err := TextureToMat(tex)
	if err != nil {
		t.Fatalf("TextureToMat() error = %v", err)
	}

	if bytes.IndexByte(m.Data(), padByte) >= 0 {
		t.Errorf("padding byte leaked into matrix data: %v", m.Data())
	}
	for y := range 2 {
		for x := range 3 {
			want := []byte{byte(x), byte(y), byte(x + y), 255}
			if got := m.At(y, x); !bytes.Equal(got, want) {
				t.Errorf("At(%d,%d) = %v, want %v", y, x, got, want)
			}
		}
	}
}

func TestTextureToMatErrors(t *testing.T) {
	rgba := newTestTexture(t, 2, 2, 8, nil)

	bgra, err := NewBufferTexture(2, 2, 8, gputypes.TextureFormatBGRA8Unorm, make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	// Declared pitch shorter than a row.
	short, err := NewBufferTexture(4, 1, 8, gputypes.TextureFormatRGBA8Unorm, make([]byte, 8))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		tex     Texture
		wantErr error
	}{
		{"nil", nil, ErrEmptySource},
		{"zero width", failingTexture{w: 0, h: 2}, ErrEmptySource},
		{"zero height", failingTexture{w: 2, h: 0}, ErrEmptySource},
		{"bgra format", bgra, ErrUnsupportedFormat},
		{"short pitch", short, ErrReadFailure},
		{"read error", failingTexture{w: 2, h: 2}, ErrReadFailure},
		{"ok", rgba, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := TextureToMat(tt.tex)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TextureToMat() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && m != nil {
				t.Error("TextureToMat() returned a matrix together with an error")
			}
		})
	}
}

func TestTextureToMatReadErrorWrapped(t *testing.T) {
	_, err := TextureToMat(failingTexture{w: 1, h: 1})
	if !errors.Is(err, errNotReadable) {
		t.Errorf("error %v does not wrap the texture's own error", err)
	}
}

func TestTextureToMatDoesNotMutateTexture(t *testing.T) {
	tex := newTestTexture(t, 4, 4, 24, nil)
	before := bytes.Clone(tex.pix)

	m, err := TextureToMat(tex)
	if err != nil {
		t.Fatal(err)
	}
	m.Data()[0] = 0x42

	if !bytes.Equal(tex.pix, before) {
		t.Error("TextureToMat modified the texture's buffer")
	}
}

func TestTextureToImage(t *testing.T) {
	tex := newTestTexture(t, 2, 3, 12, nil)

	img, err := TextureToImage(tex)
	if err != nil {
		t.Fatalf("TextureToImage() error = %v", err)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("TextureToImage() = %T, want *image.NRGBA", img)
	}
	if got := nrgba.NRGBAAt(1, 2); got.R != 1 || got.G != 2 || got.A != 255 {
		t.Errorf("NRGBAAt(1,2) = %+v, want R=1 G=2 A=255", got)
	}

	flipped, err := TextureToImage(tex, WithFlipVertical())
	if err != nil {
		t.Fatalf("TextureToImage(flip) error = %v", err)
	}
	if got := flipped.(*image.NRGBA).NRGBAAt(1, 0); got.G != 2 {
		t.Errorf("flipped NRGBAAt(1,0).G = %d, want 2 (bottom row)", got.G)
	}
}

func TestNewBufferTexture(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		stride  int
		size    int
		wantErr error
	}{
		{"valid", 2, 2, 8, 16, nil},
		{"zero width", 0, 2, 8, 16, ErrInvalidDimensions},
		{"zero stride", 2, 2, 0, 16, ErrInvalidDimensions},
		{"too small", 2, 2, 8, 15, ErrDataTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBufferTexture(tt.w, tt.h, tt.stride, gputypes.TextureFormatRGBA8Unorm, make([]byte, tt.size))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBufferTexture() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func BenchmarkTextureToMatPadded(b *testing.B) {
	tex := newTestTexture(b, 1000, 500, 4096, nil)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := TextureToMat(tex); err != nil {
			b.Fatal(err)
		}
	}
}
