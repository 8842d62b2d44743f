package core

import "fmt"

// Point is a particle sample. Size is the rendered radius, Opacity is alpha in
// [0,1] and PopHeight counts down frames a dot lingers at a waypoint.
type Point struct {
	X, Y      float64
	Size      float64
	Opacity   float64
	PopHeight float64
}

// At returns a position-only point.
func At(x, y float64) Point { return Point{X: x, Y: y} }

// Color is an RGB triple with a floating point alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

// White is the default dot color.
var White = Color{R: 255, G: 255, B: 255, A: 1}

// Render formats the color as a css-style rgba() string.
func (c Color) Render() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.A)
}

// WithAlpha returns a copy of c using the provided alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA implements color.Color with premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := c.A
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}
