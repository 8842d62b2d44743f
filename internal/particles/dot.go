package particles

import (
	"math"
	"slices"

	"shape-shifter/internal/core"
)

const (
	initialEasing = 0.07
	initialSize   = 5

	// convergeDistance is how close a dot must be before it counts as arrived.
	convergeDistance = 1
	// fadeRate is the share of the remaining size/opacity gap closed per frame.
	fadeRate   = 0.05
	minOpacity = 0.1
	minSize    = 1
	// wanderRadius bounds the random step of an idle dot.
	wanderRadius = 25
)

// Dot is one persistent particle. Its identity is its index in the pool.
type Dot struct {
	index  int
	p      core.Point
	color  core.Color
	easing float64
	active bool
	target Target
	queue  []Waypoint
	rng    *core.RNG
}

// NewDot creates an active dot resting at (x, y).
func NewDot(index int, x, y float64, c core.Color, rng *core.RNG) *Dot {
	p := core.Point{X: x, Y: y, Size: initialSize, Opacity: 1}
	return &Dot{
		index:  index,
		p:      p,
		color:  c.WithAlpha(p.Opacity),
		easing: initialEasing,
		active: true,
		target: Target{Point: p},
		rng:    rng,
	}
}

// Index returns the dot's slot in its pool.
func (d *Dot) Index() int { return d.index }

// Point returns the current animation state.
func (d *Dot) Point() core.Point { return d.p }

// Target returns the point the dot is travelling towards.
func (d *Dot) Target() Target { return d.target }

// Queue returns a copy of the pending waypoints.
func (d *Dot) Queue() []Waypoint { return slices.Clone(d.queue) }

// Active reports whether the dot is part of the visible shape.
func (d *Dot) Active() bool { return d.active }

// Easing returns the fraction of the remaining distance covered per frame.
func (d *Dot) Easing() float64 { return d.easing }

// Color returns the draw color; its alpha mirrors the last drawn opacity.
func (d *Dot) Color() core.Color { return d.color }

// SetEasing changes the convergence rate. Values outside (0, 1] are ignored.
func (d *Dot) SetEasing(e float64) {
	if e <= 0 || e > 1 {
		return
	}
	d.easing = e
}

// Enqueue appends waypoints behind any already pending.
func (d *Dot) Enqueue(wps ...Waypoint) {
	d.queue = append(d.queue, wps...)
}

// Retarget abandons the in-flight target and pending queue and replaces them
// with wps. The dot picks up the first waypoint on its next update.
func (d *Dot) Retarget(wps ...Waypoint) {
	d.queue = append(d.queue[:0], wps...)
	d.target = Target{Point: d.p}
	d.target.PopHeight = 0
	d.p.PopHeight = 0
}

// Update advances the dot by one frame.
func (d *Dot) Update() {
	if d.advance() {
		switch {
		case len(d.queue) > 0:
			wp := d.queue[0]
			d.queue = slices.Delete(d.queue, 0, 1)
			d.target = Apply(d.p, wp)
			d.p.PopHeight = d.target.PopHeight
		case d.active:
			d.p.X -= math.Sin(d.rng.Float64() * math.Pi)
			d.p.Y -= math.Sin(d.rng.Float64() * math.Pi)
		default:
			d.Enqueue(MoveTo(
				d.p.X+d.rng.Range(-wanderRadius, wanderRadius),
				d.p.Y+d.rng.Range(-wanderRadius, wanderRadius),
			))
		}
	}

	d.p.Opacity = math.Max(minOpacity, d.p.Opacity-(d.p.Opacity-d.target.Opacity)*fadeRate)
	d.p.Size = math.Max(minSize, d.p.Size-(d.p.Size-d.target.Size)*fadeRate)
}

// advance moves towards the target and reports whether the dot has arrived
// and finished lingering.
func (d *Dot) advance() bool {
	if d.target.Mode == Snap {
		d.p.X, d.p.Y = d.target.X, d.target.Y
		d.target.Mode = Ease
		return true
	}

	dx := d.p.X - d.target.X
	dy := d.p.Y - d.target.Y
	dist := math.Hypot(dx, dy)
	if dist > convergeDistance {
		step := d.easing * dist
		d.p.X -= dx / dist * step
		d.p.Y -= dy / dist * step
		return false
	}
	if d.p.PopHeight > 0 {
		d.p.PopHeight--
		return false
	}
	return true
}

// Draw paints the dot onto s.
func (d *Dot) Draw(s core.Surface) {
	d.color.A = d.p.Opacity
	s.DrawCircle(d.p, d.color)
}

// Render updates then draws the dot.
func (d *Dot) Render(s core.Surface) {
	d.Update()
	d.Draw(s)
}
