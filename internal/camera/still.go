package camera

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, JPEG or WebP file
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Still is a source that shows one image, e.g. a saved photo of a client
type Still struct {
	Path string
}

// Run publishes the image once and waits for ctx
func (s Still) Run(ctx context.Context, out *Latest) error {
	img, err := LoadImage(s.Path)
	if err != nil {
		return err
	}
	out.Publish(img)
	<-ctx.Done()
	return nil
}
