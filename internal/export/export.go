// Package export composes a camera frame with the overlay and encodes the
// result as an image file.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/internal/render"
	"golang.org/x/image/draw"
)

// Format is an output image encoding
type Format int

const (
	PNG Format = iota
	JPEG
	WebP
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case WebP:
		return "webp"
	}
	return "png"
}

// Ext returns the canonical file extension, including the dot
func (f Format) Ext() string {
	switch f {
	case JPEG:
		return ".jpg"
	case WebP:
		return ".webp"
	}
	return ".png"
}

// ParseFormat parses png, jpeg/jpg or webp
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "webp":
		return WebP, nil
	}
	return PNG, fmt.Errorf("unsupported image format %q", s)
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// DefaultSize is the output size used when there is no frame to take it from
var DefaultSize = image.Pt(1280, 720)

// Options control composition
type Options struct {
	// Size of the output; zero takes the frame size
	Size image.Point
	// Scale is output pixels per overlay unit; zero means 1
	Scale      float64
	Render     render.Options
	Background color.Color
	// Scaler resizes the frame; nil selects CatmullRom
	Scaler draw.Scaler
}

// DefaultOptions returns options for a frame-sized export
func DefaultOptions() Options {
	return Options{Render: render.DefaultOptions(), Background: color.Black}
}

// Compose draws frame scaled to cover the output, mirrored when cfg.Mirror
// is set, and the overlay on top of it. The overlay itself is never
// mirrored. frame may be nil.
func Compose(frame image.Image, cfg overlay.Config, opts Options) *image.NRGBA {
	size := opts.Size
	if size.X <= 0 || size.Y <= 0 {
		if frame != nil && !frame.Bounds().Empty() {
			size = frame.Bounds().Size()
		} else {
			size = DefaultSize
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if frame != nil && !frame.Bounds().Empty() {
		src := frame
		if cfg.Mirror {
			src = Mirror(frame)
		}
		scaler := opts.Scaler
		if scaler == nil {
			scaler = draw.CatmullRom
		}
		scaler.Scale(dst, dst.Bounds(), src, CoverRect(src.Bounds(), size), draw.Over, nil)
	}

	scene := render.Build(cfg, render.Viewport{
		Width:  float64(size.X),
		Height: float64(size.Y),
		Scale:  opts.Scale,
	}, opts.Render)
	render.NewRasterizer(dst).Draw(scene)
	return dst
}

// CoverRect returns the centered part of src with the aspect ratio of size,
// so that scaling it to size fills the output without distortion.
func CoverRect(src image.Rectangle, size image.Point) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 || size.X <= 0 || size.Y <= 0 {
		return src
	}
	// compare sw/sh with size.X/size.Y without dividing
	if sw*size.Y > size.X*sh {
		w := sh * size.X / size.Y
		x := src.Min.X + (sw-w)/2
		return image.Rect(x, src.Min.Y, x+w, src.Max.Y)
	}
	h := sw * size.Y / size.X
	y := src.Min.Y + (sh-h)/2
	return image.Rect(src.Min.X, y, src.Max.X, y+h)
}

// Mirror returns a horizontally flipped copy of img
func Mirror(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Copy(src, image.Point{}, img, b, draw.Src, nil)
		b = src.Bounds()
	}

	mirrored := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mirrored.SetNRGBA(x, y, src.NRGBAAt(b.Min.X+w-1-x, b.Min.Y+y))
		}
	}
	return mirrored
}

// Encode writes img in the given format. quality applies to JPEG only.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	var err error
	switch f {
	case JPEG:
		if quality <= 0 {
			quality = 90
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return nil
}

// WriteFile encodes img into path, picking the format from the extension
func WriteFile(path string, img image.Image, quality int) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(out, img, f, quality); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
