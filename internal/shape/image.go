package shape

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedSource is returned for image sources that are not local files.
var ErrUnsupportedSource = errors.New("unsupported image source")

// Loaded is the outcome of an image load.
type Loaded struct {
	Source string
	Image  image.Image
	Err    error
}

// Load decodes the image at src, a filesystem path or file:// URL.
func Load(ctx context.Context, src string) (image.Image, error) {
	path, err := resolvePath(src)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// Fetch loads src on its own goroutine. The returned channel receives exactly
// one result and is buffered, so abandoning it does not leak the loader.
func Fetch(ctx context.Context, src string) <-chan Loaded {
	ch := make(chan Loaded, 1)
	go func() {
		img, err := Load(ctx, src)
		ch <- Loaded{Source: src, Image: img, Err: err}
	}()
	return ch
}

func resolvePath(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", fmt.Errorf("%w: empty", ErrUnsupportedSource)
	}
	u, err := url.Parse(src)
	// Single-letter schemes are Windows drive letters.
	if err != nil || len(u.Scheme) <= 1 {
		return src, nil
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSource, u.Scheme)
	}
	if u.Path == "" {
		return u.Opaque, nil
	}
	return u.Path, nil
}
