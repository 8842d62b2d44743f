package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"shape-shifter/internal/core"
)

var black = core.Color{A: 1}

func TestClearFillsBackground(t *testing.T) {
	bg := core.Color{R: 10, G: 20, B: 30, A: 1}
	c := NewCanvas(core.Area{W: 4, H: 3}, bg)
	got := c.Image().RGBAAt(3, 2)
	if got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("pixel = %+v", got)
	}
	if a := c.Area(); a.W != 4 || a.H != 3 {
		t.Fatalf("area = %+v", a)
	}
}

func TestDrawCirclePaintsDisc(t *testing.T) {
	c := NewCanvas(core.Area{W: 40, H: 40}, black)
	c.DrawCircle(core.Point{X: 20, Y: 20, Size: 8, Opacity: 1}, core.White)

	if got := c.Image().RGBAAt(20, 20); got.R != 255 || got.G != 255 {
		t.Fatalf("centre pixel = %+v", got)
	}
	if got := c.Image().RGBAAt(20, 16); got.R != 255 {
		t.Fatalf("inside pixel = %+v", got)
	}
	if got := c.Image().RGBAAt(2, 2); got.R != 0 {
		t.Fatalf("corner pixel = %+v", got)
	}
	if got := c.Image().RGBAAt(20, 30); got.R != 0 {
		t.Fatalf("outside pixel = %+v", got)
	}
}

func TestDrawCircleBlendsOpacity(t *testing.T) {
	c := NewCanvas(core.Area{W: 20, H: 20}, black)
	c.DrawCircle(core.Point{X: 10, Y: 10, Size: 6}, core.White.WithAlpha(0.5))
	got := c.Image().RGBAAt(10, 10)
	if got.R < 120 || got.R > 135 {
		t.Fatalf("half-opaque centre = %+v", got)
	}
}

func TestDrawCircleSkipsInvisible(t *testing.T) {
	c := NewCanvas(core.Area{W: 10, H: 10}, black)
	c.DrawCircle(core.Point{X: 5, Y: 5, Size: 0}, core.White)
	c.DrawCircle(core.Point{X: 5, Y: 5, Size: 3}, core.White.WithAlpha(0))
	for i, v := range c.Image().Pix {
		if i%4 != 3 && v != 0 {
			t.Fatalf("pixel byte %d = %d, want untouched", i, v)
		}
	}
}

func TestResizeKeepsImageWhenUnchanged(t *testing.T) {
	c := NewCanvas(core.Area{W: 8, H: 8}, black)
	img := c.Image()
	c.Resize(core.Area{W: 8, H: 8})
	if c.Image() != img {
		t.Fatal("same-size resize reallocated")
	}
	c.Resize(core.Area{W: 16, H: 4})
	if a := c.Area(); a.W != 16 || a.H != 4 {
		t.Fatalf("area after resize = %+v", a)
	}
}

func TestEncodePNGRoundTrips(t *testing.T) {
	c := NewCanvas(core.Area{W: 12, H: 9}, black)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("bounds = %v", b)
	}
}
