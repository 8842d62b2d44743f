package shape

import (
	"math"
	"strconv"
	"strings"
)

// Kind enumerates the supported shape request variants.
type Kind int

const (
	// KindText renders a string, numeric strings included.
	KindText Kind = iota
	// KindCircle renders a filled disc measured in grid units.
	KindCircle
	// KindRectangle lays out a full grid of points.
	KindRectangle
	// KindImage rasterizes the outline of a decoded image.
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Request describes what the rasterizer should draw. Only the fields used by
// Kind are consulted.
type Request struct {
	Kind     Kind
	Text     string
	Diameter int
	Width    int
	Height   int
	Source   string
}

// Text requests a text shape.
func Text(s string) Request { return Request{Kind: KindText, Text: s} }

// Circle requests a disc with the given diameter in grid units.
func Circle(d int) Request { return Request{Kind: KindCircle, Diameter: d} }

// Rectangle requests a w x h grid of points.
func Rectangle(w, h int) Request { return Request{Kind: KindRectangle, Width: w, Height: h} }

// Image requests the outline of the image at src (path or file:// URL).
func Image(src string) Request { return Request{Kind: KindImage, Source: src} }

// Clamp limits v to [0, max].
func Clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// ParseRectangle reads a "WxH" dimension pair. Anything that is not two
// integers separated by 'x' yields (max, max/2); each side is clamped to
// [0, max].
func ParseRectangle(value string, max int) (int, int) {
	parts := strings.Split(strings.TrimSpace(value), "x")
	if len(parts) != 2 {
		return max, max / 2
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil {
		return max, max / 2
	}
	return Clamp(w, max), Clamp(h, max)
}

// ParseCircle reads a diameter from the leading integer of value. Missing,
// malformed or zero values fall back to max; anything else is clamped to
// [0, max], so negative diameters draw nothing.
func ParseCircle(value string, max int) int {
	d, ok := LeadingInt(value)
	if !ok || d == 0 {
		return max
	}
	return Clamp(d, max)
}

// LeadingInt parses an optionally signed run of decimal digits at the start of
// s, ignoring leading spaces and anything after the digits. ok is false when
// no digit is found. Values beyond the int range saturate.
func LeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeft(s, " \t")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		v = math.MaxInt
	}
	if neg {
		v = -v
	}
	return v, true
}
