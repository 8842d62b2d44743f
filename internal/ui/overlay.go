//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"shape-shifter/internal/script"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type poolStats interface {
	Len() int
	ActiveCount() int
}

// Overlay shows help and pool statistics on top of the dots. F1 toggles it.
type Overlay struct {
	stats poolStats
	show  bool
	help  string
}

// NewOverlay constructs an overlay reading from stats.
func NewOverlay(stats poolStats) *Overlay {
	return &Overlay{stats: stats, help: helpText()}
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Type text and press Enter. Separate steps with " + script.Separator + "\n")
	b.WriteString("Commands:")
	for _, name := range script.Commands() {
		b.WriteString(" " + script.Prefix + name)
	}
	b.WriteString("\nEsc quits, F1 toggles this panel")
	return b.String()
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\nDots: %d (%d active)\n%s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), o.stats.Len(), o.stats.ActiveCount(), o.help)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
