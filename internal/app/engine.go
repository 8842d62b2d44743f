package app

import (
	"context"
	"fmt"
	"time"

	"shape-shifter/internal/config"
	"shape-shifter/internal/core"
	"shape-shifter/internal/particles"
	"shape-shifter/internal/script"
	"shape-shifter/internal/shape"
)

// Engine wires the rasterizer, dot pool and director behind a single frame
// loop. Every front end drives one Engine from its own thread.
type Engine struct {
	cfg      *config.Config
	surface  core.Surface
	area     core.Area
	rast     *shape.Rasterizer
	pool     *particles.Pool
	director *script.Director

	lastShuffle time.Time
	started     bool
}

// EngineOption customises an Engine.
type EngineOption func(*script.Options)

// WithCountdownCue calls fn whenever a countdown digit is shown.
func WithCountdownCue(fn func(n int)) EngineOption {
	return func(o *script.Options) { o.OnCountdown = fn }
}

// WithClock overrides the wall clock used by the #time command.
func WithClock(now func() time.Time) EngineOption {
	return func(o *script.Options) { o.Clock = now }
}

// NewEngine builds an engine drawing onto surface.
func NewEngine(ctx context.Context, surface core.Surface, cfg *config.Config, opts ...EngineOption) (*Engine, error) {
	area := surface.Area()
	rast, err := shape.New(area, cfg.ShapeOptions())
	if err != nil {
		return nil, fmt.Errorf("create rasterizer: %w", err)
	}
	dirOpts := cfg.DirectorOptions()
	for _, opt := range opts {
		opt(&dirOpts)
	}
	pool := particles.NewPool(surface, core.NewRNG(cfg.Seed), particles.WithColor(cfg.DotColor()))
	return &Engine{
		cfg:      cfg,
		surface:  surface,
		area:     area,
		rast:     rast,
		pool:     pool,
		director: script.New(ctx, pool, rast, dirOpts),
	}, nil
}

// Start plays the configured start-up script.
func (e *Engine) Start(now time.Time) {
	e.started = true
	e.lastShuffle = now
	if e.cfg.Script != "" {
		e.director.Perform(now, e.cfg.Script)
	}
}

// Submit replaces whatever is playing with input.
func (e *Engine) Submit(now time.Time, input string) {
	e.director.Submit(now, input)
}

// Frame advances timers and every dot by one frame.
func (e *Engine) Frame(now time.Time) {
	if !e.started {
		e.Start(now)
	}
	if area := e.surface.Area(); area != e.area {
		e.Resize(area)
	}
	e.director.Tick(now)
	switch {
	case !e.director.Idle():
		e.lastShuffle = now
	case now.Sub(e.lastShuffle) >= e.cfg.ShuffleInterval:
		e.pool.ShuffleIdle()
		e.lastShuffle = now
	}
	e.pool.Update()
}

// Draw paints every dot onto the surface.
func (e *Engine) Draw() { e.pool.Draw() }

// Resize refits the rasterizer grid to a new drawing area. Dots keep their
// positions until the next shape is requested.
func (e *Engine) Resize(area core.Area) {
	e.area = area
	e.rast.Fit(area)
}

// Pool exposes the dot pool.
func (e *Engine) Pool() *particles.Pool { return e.pool }

// Director exposes the script director.
func (e *Engine) Director() *script.Director { return e.director }

// Close releases the rasterizer.
func (e *Engine) Close() error {
	e.director.Reset(false)
	return e.rast.Close()
}
