package core

// Area describes the pixel dimensions of a drawing surface.
type Area struct {
	W int
	H int
}

// Center returns the midpoint of the area.
func (a Area) Center() (float64, float64) {
	return float64(a.W) / 2, float64(a.H) / 2
}

// Empty reports whether the area has no drawable pixels.
func (a Area) Empty() bool { return a.W <= 0 || a.H <= 0 }

// Surface is the minimal contract a drawing backend must implement for the
// particle engine. Implementations own clearing and presenting frames.
type Surface interface {
	Area() Area
	DrawCircle(p Point, c Color)
}
