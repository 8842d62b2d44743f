package particles

import (
	"slices"

	"shape-shifter/internal/core"
	"shape-shifter/internal/shape"
)

const (
	easingFast     = 0.25
	easingActive   = 0.14
	easingActivate = 0.11
	easingIdle     = 0.04

	settleSize = 5

	pulseMinSize = 10
	pulseMaxSize = 30
	popInMinSize = 5
	popInMaxSize = 10
	driftMaxSize = 4

	pulseHeight     = 18
	popInHeight     = 30
	popInFastHeight = 18
	popOutHeight    = 20

	driftOpacity = 0.3
)

// Pool owns every dot and reconciles it against requested shapes. It is not
// safe for concurrent use; one driver owns it.
type Pool struct {
	surface core.Surface
	rng     *core.RNG
	color   core.Color

	dots          []*Dot
	width, height float64
	cx, cy        float64
}

// Option customises a Pool.
type Option func(*Pool)

// WithColor sets the color newly created dots are drawn with.
func WithColor(c core.Color) Option {
	return func(p *Pool) { p.color = c }
}

// NewPool constructs an empty pool drawing onto surface. The rng drives
// target selection, pop effects and idle drift.
func NewPool(surface core.Surface, rng *core.RNG, opts ...Option) *Pool {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	p := &Pool{surface: surface, rng: rng, color: core.White}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Len returns the number of dots ever created.
func (p *Pool) Len() int { return len(p.dots) }

// Dots exposes the dots in pool order. Callers must not modify the slice.
func (p *Pool) Dots() []*Dot { return p.dots }

// ActiveCount returns the number of dots assigned to the current shape.
func (p *Pool) ActiveCount() int {
	n := 0
	for _, d := range p.dots {
		if d.active {
			n++
		}
	}
	return n
}

// Offset returns the translation applied to grid-local shape points.
func (p *Pool) Offset() (float64, float64) { return p.cx, p.cy }

// Span returns the width and height of the last requested shape.
func (p *Pool) Span() (float64, float64) { return p.width, p.height }

// SwitchShape retargets the pool at desc and returns how many dots were
// assigned. Dots are assigned in pool order, each to a uniformly random
// unclaimed point; surplus dots are sent drifting. Dots touched by the call
// drop whatever transition they were in the middle of.
func (p *Pool) SwitchShape(desc shape.Descriptor, fast bool) int {
	area := p.surface.Area()
	p.width, p.height = desc.Width, desc.Height
	p.compensate(area)

	if n := len(desc.Dots); n > len(p.dots) {
		x, y := area.Center()
		for len(p.dots) < n {
			p.dots = append(p.dots, NewDot(len(p.dots), x, y, p.color, p.rng))
		}
	}

	remaining := slices.Clone(desc.Dots)
	assigned := 0
	for len(remaining) > 0 {
		i := p.rng.IntN(len(remaining))
		pt := remaining[i]
		remaining = slices.Delete(remaining, i, i+1)

		d := p.dots[assigned]
		d.easing = assignEasing(fast, d.active)

		var pop Waypoint
		if d.active {
			pop = Pulse(p.rng.Range(pulseMinSize, pulseMaxSize), pulseHeight).WithOpacity(p.rng.Float64())
		} else {
			height := float64(popInHeight)
			if fast {
				height = popInFastHeight
			}
			pop = Pulse(p.rng.Range(popInMinSize, popInMaxSize), height)
		}
		d.active = true
		d.Retarget(pop, MoveTo(pt.X+p.cx, pt.Y+p.cy).WithOpacity(1).WithSize(settleSize))
		assigned++
	}

	for _, d := range p.dots[assigned:] {
		if !d.active {
			continue
		}
		pop := Pulse(p.rng.Range(pulseMinSize, pulseMaxSize), popOutHeight).WithOpacity(p.rng.Float64())
		d.active = false
		d.easing = easingIdle
		drift := MoveTo(p.rng.Float64()*float64(area.W), p.rng.Float64()*float64(area.H))
		d.Retarget(pop, drift.WithOpacity(driftOpacity).WithSize(p.rng.Range(0, driftMaxSize)))
	}
	return assigned
}

func assignEasing(fast, active bool) float64 {
	switch {
	case fast:
		return easingFast
	case active:
		return easingActive
	default:
		return easingActivate
	}
}

func (p *Pool) compensate(area core.Area) {
	x, y := area.Center()
	p.cx = x - p.width/2
	p.cy = y - p.height/2
}

// ShuffleIdle queues one more random drift waypoint on every inactive dot.
func (p *Pool) ShuffleIdle() {
	area := p.surface.Area()
	for _, d := range p.dots {
		if d.active {
			continue
		}
		d.Enqueue(MoveTo(p.rng.Float64()*float64(area.W), p.rng.Float64()*float64(area.H)))
	}
}

// Update advances every dot by one frame in pool order.
func (p *Pool) Update() {
	for _, d := range p.dots {
		d.Update()
	}
}

// Draw paints every dot onto the pool's surface in pool order.
func (p *Pool) Draw() {
	for _, d := range p.dots {
		d.Draw(p.surface)
	}
}

// Render updates and draws each dot in turn.
func (p *Pool) Render() {
	for _, d := range p.dots {
		d.Render(p.surface)
	}
}
