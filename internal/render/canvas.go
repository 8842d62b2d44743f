// Package render paints dot pools onto in-memory images for headless output.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"shape-shifter/internal/core"

	"golang.org/x/image/vector"
)

// Canvas is an RGBA image implementing core.Surface.
type Canvas struct {
	img        *image.RGBA
	background core.Color
	z          *vector.Rasterizer
}

// NewCanvas allocates a canvas of the given area cleared to background.
func NewCanvas(area core.Area, background core.Color) *Canvas {
	c := &Canvas{background: background, z: vector.NewRasterizer(0, 0)}
	c.Resize(area)
	return c
}

// Resize reallocates the backing image when the area changes.
func (c *Canvas) Resize(area core.Area) {
	w, h := max(area.W, 0), max(area.H, 0)
	if c.img != nil && c.img.Rect.Dx() == w && c.img.Rect.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.Clear()
}

// Area reports the canvas size.
func (c *Canvas) Area() core.Area {
	return core.Area{W: c.img.Rect.Dx(), H: c.img.Rect.Dy()}
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the canvas with the background colour.
func (c *Canvas) Clear() { fillRGBA(c.img.Pix, c.background) }

// DrawCircle composites a filled circle of radius p.Size centred on p.
func (c *Canvas) DrawCircle(p core.Point, col core.Color) {
	if p.Size <= 0 || col.A <= 0 {
		return
	}
	b := c.img.Rect
	if b.Empty() {
		return
	}
	c.z.Reset(b.Dx(), b.Dy())
	core.TraceCircle(c.z, float32(p.X), float32(p.Y), float32(p.Size))
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// EncodePNG writes the canvas as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
