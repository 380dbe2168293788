// Command pixbridge inspects and converts images with the pixbridge library.
//
// Usage:
//
//	pixbridge -in photo.jpg -mode info
//	pixbridge -in photo.jpg -mode brightness -luma bt709
//	pixbridge -in photo.jpg -mode grey -out grey.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixbridge"
)

type mode string

const (
	modeInfo       mode = "info"
	modeBrightness mode = "brightness"
	modeLevels     mode = "levels"
	modeGrey       mode = "grey"
	modeRGB        mode = "rgb"
)

var (
	errUnknownMode   = errors.New("unknown mode")
	errUnknownLuma   = errors.New("unknown luma weighting")
	errNoOutput      = errors.New("mode requires -out")
	errUnknownOutExt = errors.New("unsupported output extension")
)

func parseMode(s string) (mode, error) {
	switch m := mode(strings.ToLower(s)); m {
	case modeInfo, modeBrightness, modeLevels, modeGrey, modeRGB:
		return m, nil
	case "gray":
		return modeGrey, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownMode, s)
}

func parseLuma(s string) (pixbridge.Luma, error) {
	switch strings.ToLower(s) {
	case "bt601", "601", "":
		return pixbridge.LumaBT601, nil
	case "bt709", "709":
		return pixbridge.LumaBT709, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnknownLuma, s)
}

type config struct {
	in   string
	out  string
	mode mode
	luma pixbridge.Luma
}

func main() {
	var (
		in      = flag.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
		out     = flag.String("out", "", "output image for grey and rgb modes (png, jpg, bmp, tiff)")
		modeStr = flag.String("mode", "info", "info, brightness, levels, grey or rgb")
		lumaStr = flag.String("luma", "bt601", "luminance weighting: bt601 or bt709")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		pixbridge.SetLogger(logger)
	}

	m, err := parseMode(*modeStr)
	if err != nil {
		logger.Error("invalid flag", "err", err)
		os.Exit(2)
	}
	l, err := parseLuma(*lumaStr)
	if err != nil {
		logger.Error("invalid flag", "err", err)
		os.Exit(2)
	}
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config{in: *in, out: *out, mode: m, luma: l}
	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("pixbridge failed", "in", cfg.in, "mode", string(cfg.mode), "err", err)
		os.Exit(1)
	}
}

func run(cfg config, stdout io.Writer) error {
	if (cfg.mode == modeGrey || cfg.mode == modeRGB) && cfg.out == "" {
		return fmt.Errorf("%w: %s", errNoOutput, cfg.mode)
	}

	img, format, err := decodeFile(cfg.in)
	if err != nil {
		return err
	}
	pixbridge.Logger().Debug("decoded", "path", cfg.in, "format", format, "bounds", img.Bounds().String())

	lumaOpt := pixbridge.WithLuma(cfg.luma)

	switch cfg.mode {
	case modeInfo:
		printInfo(stdout, filepath.Base(cfg.in), format, img)
		return nil

	case modeBrightness:
		rows, err := pixbridge.RowBrightness(img, lumaOpt)
		if err != nil {
			return err
		}
		for y, v := range rows {
			fmt.Fprintf(stdout, "%d\t%.2f\n", y, v)
		}
		return nil

	case modeLevels:
		levels, err := pixbridge.RowBrightnessLevels(img, lumaOpt)
		if err != nil {
			return err
		}
		for y, v := range levels {
			fmt.Fprintf(stdout, "%d\t%d\n", y, v)
		}
		return nil

	case modeGrey:
		g, err := pixbridge.GreyscaleImage(img, lumaOpt)
		if err != nil {
			return err
		}
		return encodeFile(cfg.out, g)

	case modeRGB:
		m, err := pixbridge.ImageToMat3(img)
		if err != nil {
			return err
		}
		rgb, err := pixbridge.MatToImage(m, pixbridge.Color)
		if err != nil {
			return err
		}
		return encodeFile(cfg.out, rgb)
	}
	return fmt.Errorf("%w: %q", errUnknownMode, cfg.mode)
}

// printInfo writes a human-readable summary line. Only the pixel count is
// digit-grouped; dimensions stay in WxH form.
func printInfo(w io.Writer, name, format string, img image.Image) {
	b := img.Bounds()
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s: %s %s, %d channels, %d pixels\n",
		name, format, fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		pixbridge.ImageChannels(img), b.Dx()*b.Dy())
}

func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

func encodeFile(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := enc(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownOutExt, filepath.Ext(path))
}
