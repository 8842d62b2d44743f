//go:build ebiten

package render

import (
	"shape-shifter/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen adapts an ebiten image to core.Surface. The target is swapped in
// every frame by the game's Draw.
type Screen struct {
	target *ebiten.Image
	area   core.Area
}

// NewScreen returns a surface reporting the given logical area.
func NewScreen(area core.Area) *Screen { return &Screen{area: area} }

// SetTarget directs subsequent draws at img.
func (s *Screen) SetTarget(img *ebiten.Image) { s.target = img }

// SetArea records the logical size reported by Layout.
func (s *Screen) SetArea(area core.Area) { s.area = area }

// Area reports the logical drawing area.
func (s *Screen) Area() core.Area { return s.area }

// DrawCircle draws an anti-aliased filled circle.
func (s *Screen) DrawCircle(p core.Point, c core.Color) {
	if s.target == nil || p.Size <= 0 || c.A <= 0 {
		return
	}
	vector.FillCircle(s.target, float32(p.X), float32(p.Y), float32(p.Size), c, true)
}
