package particles

import (
	"math"
	"testing"

	"shape-shifter/internal/core"
)

func newTestDot(x, y float64) *Dot {
	return NewDot(0, x, y, core.White, core.NewRNG(7))
}

func distance(p core.Point, x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}

func TestDotConvergesGeometrically(t *testing.T) {
	d := newTestDot(0, 0)
	d.Retarget(MoveTo(300, 400))
	d.Update() // adopt the waypoint

	start := distance(d.Point(), 300, 400)
	bound := int(math.Ceil(math.Log(start)/-math.Log(1-d.Easing()))) + 1

	for i := 0; i < bound; i++ {
		if distance(d.Point(), 300, 400) <= convergeDistance {
			return
		}
		d.Update()
	}
	if got := distance(d.Point(), 300, 400); got > convergeDistance {
		t.Fatalf("dot still %.3f away after %d updates", got, bound)
	}
}

func TestDotEasesProportionallyToDistance(t *testing.T) {
	d := newTestDot(0, 0)
	d.Retarget(MoveTo(100, 0))
	d.Update()

	d.Update()
	first := d.Point().X
	d.Update()
	second := d.Point().X - first

	if math.Abs(first-100*d.Easing()) > 1e-9 {
		t.Fatalf("first step = %v, want %v", first, 100*d.Easing())
	}
	if second >= first {
		t.Fatalf("steps must shrink as the dot approaches: %v then %v", first, second)
	}
}

func TestDotSnapJumpsToTarget(t *testing.T) {
	d := newTestDot(0, 0)
	d.active = false
	d.Retarget(MoveTo(100, 120).Snapped())

	d.Update() // adopt
	d.Update() // snap

	p := d.Point()
	if p.X != 100 || p.Y != 120 {
		t.Fatalf("snap landed at (%v,%v), want (100,120)", p.X, p.Y)
	}
	if d.Target().Mode != Ease {
		t.Fatal("snap mode must not persist after arrival")
	}
}

func TestDotLingersForPopHeight(t *testing.T) {
	d := newTestDot(0, 0)
	d.Retarget(Pulse(20, 3), MoveTo(50, 0))

	d.Update() // adopt the pulse
	if got := d.Point().PopHeight; got != 3 {
		t.Fatalf("pop height after adopt = %v, want 3", got)
	}
	for i := 0; i < 3; i++ {
		d.Update()
		if d.Target().X != 0 {
			t.Fatalf("moved on after %d lingering frames", i+1)
		}
	}
	d.Update()
	if d.Target().X != 50 {
		t.Fatalf("expected next waypoint after linger, target x=%v", d.Target().X)
	}
	if len(d.Queue()) != 0 {
		t.Fatalf("queue should be drained, got %d", len(d.Queue()))
	}
}

func TestDotSecondaryEasingRespectsFloors(t *testing.T) {
	d := newTestDot(0, 0)
	d.Retarget(Waypoint{}.WithSize(0).WithOpacity(0))

	d.Update()
	afterOne := d.Point()
	if afterOne.Opacity >= 1 || afterOne.Size >= initialSize {
		t.Fatalf("opacity/size should start relaxing, got %v/%v", afterOne.Opacity, afterOne.Size)
	}
	for i := 0; i < 500; i++ {
		d.Update()
	}
	p := d.Point()
	if p.Opacity != minOpacity {
		t.Fatalf("opacity = %v, want floor %v", p.Opacity, minOpacity)
	}
	if p.Size != minSize {
		t.Fatalf("size = %v, want floor %v", p.Size, minSize)
	}
}

func TestIdleDotWanders(t *testing.T) {
	d := newTestDot(200, 200)
	d.active = false

	d.Update()
	q := d.Queue()
	if len(q) != 1 {
		t.Fatalf("idle dot should schedule one drift waypoint, got %d", len(q))
	}
	if math.Abs(*q[0].X-200) > wanderRadius || math.Abs(*q[0].Y-200) > wanderRadius {
		t.Fatalf("drift (%v,%v) outside ±%d", *q[0].X, *q[0].Y, wanderRadius)
	}
}

func TestActiveDotJitters(t *testing.T) {
	d := newTestDot(200, 200)

	d.Update()
	p := d.Point()
	if p.X > 200 || p.X < 199 || p.Y > 200 || p.Y < 199 {
		t.Fatalf("jitter moved dot to (%v,%v)", p.X, p.Y)
	}
	if len(d.Queue()) != 0 {
		t.Fatal("active dot must not schedule drift")
	}
}

func TestRetargetDropsPendingQueue(t *testing.T) {
	d := newTestDot(0, 0)
	d.Enqueue(MoveTo(10, 10), MoveTo(20, 20))
	d.Retarget(MoveTo(30, 30))

	q := d.Queue()
	if len(q) != 1 || *q[0].X != 30 {
		t.Fatalf("retarget should replace the queue, got %d waypoints", len(q))
	}
}

type recordingSurface struct {
	area  core.Area
	calls []drawCall
}

type drawCall struct {
	p core.Point
	c core.Color
}

func (s *recordingSurface) Area() core.Area { return s.area }

func (s *recordingSurface) DrawCircle(p core.Point, c core.Color) {
	s.calls = append(s.calls, drawCall{p: p, c: c})
}

func TestDotDrawMirrorsOpacity(t *testing.T) {
	s := &recordingSurface{area: core.Area{W: 100, H: 100}}
	d := newTestDot(10, 10)
	d.Retarget(Waypoint{}.WithOpacity(0))
	d.Render(s)
	d.Render(s)

	if len(s.calls) != 2 {
		t.Fatalf("expected 2 draw calls, got %d", len(s.calls))
	}
	last := s.calls[1]
	if last.c.A != last.p.Opacity {
		t.Fatalf("color alpha %v does not mirror opacity %v", last.c.A, last.p.Opacity)
	}
	if last.p.Size != d.Point().Size {
		t.Fatal("draw radius must be the current size")
	}
}
