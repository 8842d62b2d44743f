package term

import (
	"context"
	"fmt"
	"time"

	"shape-shifter/internal/app"
	"shape-shifter/internal/config"
	"shape-shifter/internal/core"

	"github.com/gdamore/tcell/v2"
)

const (
	promptLabel = "> "
	// maxCatchUp bounds how many frames run back to back after a stall.
	maxCatchUp = 5
)

// Driver owns the terminal loop state: the engine, the command line and the
// frame clock.
type Driver struct {
	screen  tcell.Screen
	surface *Surface
	engine  *app.Engine
	step    *core.FixedStep
	now     func() time.Time

	line []rune
}

// NewDriver builds a driver rendering onto screen, which must be initialised.
func NewDriver(ctx context.Context, screen tcell.Screen, cfg *config.Config, opts ...app.EngineOption) (*Driver, error) {
	surface := NewSurface(screen, cfg.BackgroundColor())
	engine, err := app.NewEngine(ctx, surface, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Driver{
		screen:  screen,
		surface: surface,
		engine:  engine,
		step:    core.NewFixedStep(cfg.TPS),
		now:     time.Now,
	}, nil
}

// Engine exposes the underlying engine.
func (d *Driver) Engine() *app.Engine { return d.engine }

// Line returns the command line being typed.
func (d *Driver) Line() string { return string(d.line) }

// HandleEvent applies one tcell event and reports whether the user asked to
// quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			d.engine.Submit(d.now(), string(d.line))
			d.line = d.line[:0]
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(d.line) > 0 {
				d.line = d.line[:len(d.line)-1]
			}
		case tcell.KeyCtrlU:
			d.line = d.line[:0]
		case tcell.KeyRune:
			d.line = append(d.line, ev.Rune())
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

// Frame advances the engine by one frame.
func (d *Driver) Frame(now time.Time) { d.engine.Frame(now) }

// Draw paints the dots and the command line, then shows the screen.
func (d *Driver) Draw() {
	d.surface.Clear()
	d.engine.Draw()
	d.drawPrompt()
	d.screen.Show()
}

func (d *Driver) drawPrompt() {
	cols, rows := d.screen.Size()
	if rows <= 0 {
		return
	}
	y := rows - 1
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	x := 0
	for _, r := range promptLabel + string(d.line) {
		if x >= cols {
			return
		}
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
	if x < cols {
		d.screen.SetContent(x, y, '_', nil, style.Blink(true))
	}
}

// Close releases engine resources.
func (d *Driver) Close() error { return d.engine.Close() }

// Run drives the terminal until the user quits or ctx is cancelled. The
// caller owns screen and must call Fini after Run returns.
func Run(ctx context.Context, screen tcell.Screen, cfg *config.Config, opts ...app.EngineOption) error {
	d, err := NewDriver(ctx, screen, cfg, opts...)
	if err != nil {
		return fmt.Errorf("start terminal driver: %w", err)
	}
	defer d.Close()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	timer := time.NewTimer(d.step.Wait())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if d.HandleEvent(ev) {
				return nil
			}
		case <-timer.C:
			for i := 0; i < maxCatchUp && d.step.ShouldStep(); i++ {
				d.Frame(d.now())
			}
			d.Draw()
			timer.Reset(d.step.Wait())
		}
	}
}
