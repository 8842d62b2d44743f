//go:build ebiten

package app

import (
	"context"
	"time"

	"shape-shifter/internal/config"
	"shape-shifter/internal/core"
	"shape-shifter/internal/render"
	"shape-shifter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an Engine to the ebiten.Game interface.
type Game struct {
	engine  *Engine
	screen  *render.Screen
	prompt  *ui.Prompt
	overlay *ui.Overlay

	background core.Color
}

// New constructs a Game sized to the configured window.
func New(ctx context.Context, cfg *config.Config, opts ...EngineOption) (*Game, error) {
	screen := render.NewScreen(cfg.Area())
	engine, err := NewEngine(ctx, screen, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Game{
		engine:     engine,
		screen:     screen,
		prompt:     ui.NewPrompt(),
		overlay:    ui.NewOverlay(engine.Pool()),
		background: cfg.BackgroundColor(),
	}, nil
}

// Update handles input and advances the engine by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	if line, ok := g.prompt.Update(); ok {
		g.engine.Submit(now, line)
	}
	g.overlay.Update()
	g.engine.Frame(now)
	return nil
}

// Draw renders the dots, then the prompt and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.screen.SetTarget(screen)
	g.engine.Draw()
	g.screen.SetTarget(nil)
	g.prompt.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout follows the window size so shapes stay centred after a resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screen.SetArea(core.Area{W: outsideWidth, H: outsideHeight})
	return outsideWidth, outsideHeight
}

// Close releases engine resources.
func (g *Game) Close() error { return g.engine.Close() }
