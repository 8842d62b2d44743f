package particles

import (
	"testing"

	"shape-shifter/internal/core"
)

func TestApplyKeepsCurrentForOmittedFields(t *testing.T) {
	cur := core.Point{X: 10, Y: 20, Size: 3, Opacity: 0.5, PopHeight: 7}

	got := Apply(cur, Waypoint{})
	if got.X != 10 || got.Y != 20 || got.Size != 3 || got.Opacity != 0.5 {
		t.Fatalf("empty waypoint should keep current values, got %+v", got.Point)
	}
	if got.PopHeight != 0 {
		t.Fatalf("omitted pop height must default to 0, got %v", got.PopHeight)
	}
	if got.Mode != Ease {
		t.Fatalf("default mode should be ease, got %v", got.Mode)
	}
}

func TestApplyOverridesProvidedFields(t *testing.T) {
	cur := core.Point{X: 10, Y: 20, Size: 3, Opacity: 0.5}

	got := Apply(cur, MoveTo(0, 40).WithSize(0).WithOpacity(1).WithPopHeight(12).Snapped())
	want := core.Point{X: 0, Y: 40, Size: 0, Opacity: 1, PopHeight: 12}
	if got.Point != want {
		t.Fatalf("Apply = %+v, want %+v", got.Point, want)
	}
	if got.Mode != Snap {
		t.Fatalf("expected snap mode, got %v", got.Mode)
	}
}

func TestApplyDoesNotAliasWaypoint(t *testing.T) {
	wp := MoveTo(1, 2)
	first := Apply(core.Point{}, wp)
	*wp.X = 99
	if first.X != 1 {
		t.Fatalf("target must be a copy, got x=%v", first.X)
	}
}

func TestPulseLeavesPositionUntouched(t *testing.T) {
	cur := core.Point{X: 5, Y: 6, Size: 1, Opacity: 1}
	got := Apply(cur, Pulse(20, 30))
	if got.X != 5 || got.Y != 6 {
		t.Fatalf("pulse moved the dot to (%v,%v)", got.X, got.Y)
	}
	if got.Size != 20 || got.PopHeight != 30 {
		t.Fatalf("pulse size/pop = %v/%v, want 20/30", got.Size, got.PopHeight)
	}
}
