// Package script interprets action scripts such as
// "Shape|Shifter|#rectangle|#countdown 3" and feeds the resulting shapes to a
// dot pool on a clock supplied by the render loop.
package script

import (
	"context"
	"strings"
	"time"

	"shape-shifter/internal/shape"
)

const (
	// Separator splits a script into steps.
	Separator = "|"
	// Prefix marks a step as a command rather than literal text.
	Prefix = "#"

	DefaultActionInterval    = 2 * time.Second
	DefaultCountdownInterval = time.Second
	DefaultClockInterval     = time.Second
)

// Shaper receives rasterized shapes. *particles.Pool satisfies it.
type Shaper interface {
	SwitchShape(desc shape.Descriptor, fast bool) int
}

// Options tunes step timing.
type Options struct {
	ActionInterval    time.Duration
	CountdownInterval time.Duration
	ClockInterval     time.Duration
	// Clock reports wall time for the #time command.
	Clock func() time.Time
	// OnCountdown, when set, is called with each countdown digit shown.
	OnCountdown func(n int)
}

func (o Options) normalized() Options {
	if o.ActionInterval <= 0 {
		o.ActionInterval = DefaultActionInterval
	}
	if o.CountdownInterval <= 0 {
		o.CountdownInterval = DefaultCountdownInterval
	}
	if o.ClockInterval <= 0 {
		o.ClockInterval = DefaultClockInterval
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// timedAction calls fn with a counter that moves one step per delay: upwards
// from 1 to max, or downwards from max to 0 when reverse is set. A zero max
// repeats forever.
type timedAction struct {
	fn      func(index int)
	delay   time.Duration
	max     int
	reverse bool
	current int
	next    time.Time
}

func (t *timedAction) done() bool {
	if t.reverse {
		return t.current <= 0
	}
	return t.max > 0 && t.current >= t.max
}

// Director sequences script steps onto a Shaper. It shares the single
// logical thread of the render loop and is not safe for concurrent use.
type Director struct {
	ctx   context.Context
	pool  Shaper
	rast  *shape.Rasterizer
	opts  Options
	now   time.Time
	steps []string
	timer *timedAction

	shownClock string

	pending    <-chan shape.Loaded
	cancelLoad context.CancelFunc
}

// New constructs a Director. ctx bounds background image loads.
func New(ctx context.Context, pool Shaper, rast *shape.Rasterizer, opts Options) *Director {
	return &Director{ctx: ctx, pool: pool, rast: rast, opts: opts.normalized()}
}

// Split breaks a script into its steps.
func Split(script string) []string {
	return strings.Split(script, Separator)
}

// Perform appends script to the pending steps and starts playing them: the
// first immediately, then one per action interval.
func (d *Director) Perform(now time.Time, script string) {
	d.now = now
	d.perform(append(d.steps, Split(script)...))
}

// Submit discards whatever is playing and performs script.
func (d *Director) Submit(now time.Time, script string) {
	d.now = now
	d.Reset(false)
	d.perform(Split(script))
}

// Reset stops timers and pending loads. With destroy the shape is cleared.
func (d *Director) Reset(destroy bool) {
	d.timer = nil
	d.steps = nil
	d.shownClock = ""
	d.dropPending()
	if destroy {
		d.show(shape.Text(""), false)
	}
}

// Idle reports whether nothing is scheduled.
func (d *Director) Idle() bool { return d.timer == nil && d.pending == nil }

// Remaining returns the number of steps not yet played.
func (d *Director) Remaining() int { return len(d.steps) }

// Tick advances timers to now and applies finished image loads.
func (d *Director) Tick(now time.Time) {
	d.now = now
	d.pollPending()

	t := d.timer
	if t == nil || now.Before(t.next) {
		return
	}
	if t.reverse {
		t.current--
	} else {
		t.current++
	}
	t.next = t.next.Add(t.delay)
	t.fn(t.current)
	if d.timer == t && t.done() {
		d.timer = nil
	}
}

func (d *Director) perform(steps []string) {
	d.steps = steps
	d.startTimed(func(int) { d.step() }, d.opts.ActionInterval, len(d.steps), false)
}

// startTimed replaces the running timer and fires fn once immediately.
func (d *Director) startTimed(fn func(int), delay time.Duration, max int, reverse bool) {
	t := &timedAction{fn: fn, delay: delay, max: max, reverse: reverse, current: 1}
	if reverse {
		t.current = max
	}
	d.timer = t
	fn(t.current)
	if d.timer != t {
		return
	}
	if t.done() {
		d.timer = nil
		return
	}
	t.next = d.now.Add(delay)
}

func (d *Director) step() {
	if len(d.steps) == 0 {
		d.timer = nil
		return
	}
	current := d.steps[0]
	d.steps = d.steps[1:]

	name, value, ok := parseCommand(current)
	if !ok {
		d.show(shape.Text(current), false)
		return
	}
	if cmd, found := lookup(name); found {
		cmd(d, value)
		return
	}
	logf("unknown command %q", current)
	d.show(shape.Text(d.rast.Options().Fallback), false)
}

// parseCommand splits "#name value" into its parts. ok is false for literal
// text.
func parseCommand(step string) (name, value string, ok bool) {
	if !strings.HasPrefix(step, Prefix) {
		return "", "", false
	}
	name, value, _ = strings.Cut(strings.TrimPrefix(step, Prefix), " ")
	return name, strings.TrimSpace(value), true
}

func (d *Director) show(req shape.Request, fast bool) {
	d.dropPending()
	d.pool.SwitchShape(d.rast.Rasterize(d.ctx, req), fast)
}

func (d *Director) load(src string) {
	d.dropPending()
	ctx, cancel := context.WithCancel(d.ctx)
	d.cancelLoad = cancel
	d.pending = shape.Fetch(ctx, src)
}

func (d *Director) pollPending() {
	if d.pending == nil {
		return
	}
	select {
	case l := <-d.pending:
		d.dropPending()
		d.pool.SwitchShape(d.rast.Resolve(l), false)
	default:
	}
}

func (d *Director) dropPending() {
	if d.cancelLoad != nil {
		d.cancelLoad()
		d.cancelLoad = nil
	}
	d.pending = nil
}
