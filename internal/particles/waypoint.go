package particles

import "shape-shifter/internal/core"

// Mode selects how a dot travels to its target.
type Mode uint8

const (
	// Ease moves a fraction of the remaining distance every frame.
	Ease Mode = iota
	// Snap places the dot on the target in a single frame.
	Snap
)

func (m Mode) String() string {
	if m == Snap {
		return "snap"
	}
	return "ease"
}

// Waypoint is a partial point queued on a dot. Nil fields keep the dot's
// current value when the waypoint is adopted; PopHeight is always taken.
type Waypoint struct {
	X, Y      *float64
	Size      *float64
	Opacity   *float64
	PopHeight float64
	Mode      Mode
}

// Target is the point a dot is currently travelling towards.
type Target struct {
	core.Point
	Mode Mode
}

// Apply merges wp over current and returns the resulting target. The
// target's PopHeight carries the waypoint's linger countdown.
func Apply(current core.Point, wp Waypoint) Target {
	t := Target{Point: current, Mode: wp.Mode}
	if wp.X != nil {
		t.X = *wp.X
	}
	if wp.Y != nil {
		t.Y = *wp.Y
	}
	if wp.Size != nil {
		t.Size = *wp.Size
	}
	if wp.Opacity != nil {
		t.Opacity = *wp.Opacity
	}
	t.PopHeight = wp.PopHeight
	return t
}

// MoveTo returns a waypoint that travels to (x, y).
func MoveTo(x, y float64) Waypoint { return Waypoint{X: &x, Y: &y} }

// Pulse returns a waypoint that changes size and lingers in place.
func Pulse(size, popHeight float64) Waypoint {
	return Waypoint{Size: &size, PopHeight: popHeight}
}

// WithOpacity returns a copy of wp overriding opacity.
func (wp Waypoint) WithOpacity(a float64) Waypoint {
	wp.Opacity = &a
	return wp
}

// WithSize returns a copy of wp overriding size.
func (wp Waypoint) WithSize(s float64) Waypoint {
	wp.Size = &s
	return wp
}

// WithPopHeight returns a copy of wp lingering for h frames.
func (wp Waypoint) WithPopHeight(h float64) Waypoint {
	wp.PopHeight = h
	return wp
}

// Snapped returns a copy of wp that jumps instead of easing.
func (wp Waypoint) Snapped() Waypoint {
	wp.Mode = Snap
	return wp
}
