package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/pixbridge"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    mode
		wantErr error
	}{
		{"info", modeInfo, nil},
		{"BRIGHTNESS", modeBrightness, nil},
		{"levels", modeLevels, nil},
		{"grey", modeGrey, nil},
		{"gray", modeGrey, nil},
		{"rgb", modeRGB, nil},
		{"sepia", "", errUnknownMode},
		{"", "", errUnknownMode},
	}

	for _, tt := range tests {
		got, err := parseMode(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("parseMode(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLuma(t *testing.T) {
	tests := []struct {
		in      string
		want    pixbridge.Luma
		wantErr error
	}{
		{"bt601", pixbridge.LumaBT601, nil},
		{"", pixbridge.LumaBT601, nil},
		{"BT709", pixbridge.LumaBT709, nil},
		{"709", pixbridge.LumaBT709, nil},
		{"bt2020", 0, errUnknownLuma},
	}

	for _, tt := range tests {
		got, err := parseLuma(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("parseLuma(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseLuma(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEncoderFor(t *testing.T) {
	for _, name := range []string{"a.png", "a.JPG", "a.jpeg", "a.bmp", "a.tif", "a.tiff"} {
		if _, err := encoderFor(name); err != nil {
			t.Errorf("encoderFor(%q) error = %v", name, err)
		}
	}
	if _, err := encoderFor("a.gif"); !errors.Is(err, errUnknownOutExt) {
		t.Errorf("encoderFor(gif) error = %v, want errUnknownOutExt", err)
	}
}

// writePNG writes a w x h image whose rows cycle through black, mid grey
// and white.
func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	shades := []uint8{0, 100, 255}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		v := shades[y%len(shades)]
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunInfo(t *testing.T) {
	in := writePNG(t, 4, 3)
	var out bytes.Buffer
	if err := run(config{in: in, mode: modeInfo}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "png 4x3, 4 channels, 12 pixels") {
		t.Errorf("info output = %q", out.String())
	}
}

func TestRunLevels(t *testing.T) {
	in := writePNG(t, 4, 3)
	var out bytes.Buffer
	if err := run(config{in: in, mode: modeLevels}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if want := "0\t0\n1\t100\n2\t255\n"; out.String() != want {
		t.Errorf("levels output = %q, want %q", out.String(), want)
	}
}

func TestRunGreyWritesOutput(t *testing.T) {
	in := writePNG(t, 4, 3)
	outPath := filepath.Join(t.TempDir(), "grey.png")
	if err := run(config{in: in, out: outPath, mode: modeGrey}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	g, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", img)
	}
	if g.GrayAt(0, 1).Y != 100 {
		t.Errorf("GrayAt(0,1) = %d, want 100", g.GrayAt(0, 1).Y)
	}
}

func TestRunRequiresOutput(t *testing.T) {
	for _, m := range []mode{modeGrey, modeRGB} {
		if err := run(config{in: "unused.png", mode: m}, &bytes.Buffer{}); !errors.Is(err, errNoOutput) {
			t.Errorf("run(%s) error = %v, want errNoOutput", m, err)
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	err := run(config{in: filepath.Join(t.TempDir(), "missing.png"), mode: modeInfo}, &bytes.Buffer{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("run(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestRunLevelsPlainIndices(t *testing.T) {
	in := writePNG(t, 1, 1001)
	var out bytes.Buffer
	if err := run(config{in: in, mode: modeLevels}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.Contains(out.String(), ",") {
		t.Error("levels output contains digit grouping")
	}
	if !strings.Contains(out.String(), "\n1000\t100\n") {
		t.Errorf("levels output missing row 1000, tail = %q", out.String()[out.Len()-20:])
	}
}

func TestPrintInfoGroupsPixelCount(t *testing.T) {
	var out bytes.Buffer
	printInfo(&out, "wide.png", "png", image.NewGray(image.Rect(0, 0, 1000, 2)))
	if want := "wide.png: png 1000x2, 1 channels, 2,000 pixels\n"; out.String() != want {
		t.Errorf("printInfo() = %q, want %q", out.String(), want)
	}
}
