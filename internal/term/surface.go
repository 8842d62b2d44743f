// Package term renders the dot pool onto a character terminal through tcell.
package term

import (
	"math"

	"shape-shifter/internal/core"

	"github.com/gdamore/tcell/v2"
)

const (
	// CellWidth and CellHeight are the pixel size one terminal cell stands for.
	CellWidth  = 7
	CellHeight = 14

	// promptRows are reserved at the bottom of the screen for the command line.
	promptRows = 1
)

// glyphs are picked by dot radius in pixels.
var glyphs = []struct {
	maxRadius float64
	r         rune
}{
	{1.5, '·'},
	{3, '•'},
	{6, '●'},
	{math.Inf(1), '█'},
}

// Surface maps pixel coordinates onto terminal cells. Each circle lights the
// cell under its centre, plus every cell whose centre it covers.
type Surface struct {
	screen     tcell.Screen
	background core.Color
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen, background core.Color) *Surface {
	return &Surface{screen: screen, background: background}
}

// Area reports the drawable pixel area above the prompt.
func (s *Surface) Area() core.Area {
	cols, rows := s.screen.Size()
	return core.Area{W: cols * CellWidth, H: max(rows-promptRows, 0) * CellHeight}
}

// Clear blanks the drawable area.
func (s *Surface) Clear() {
	s.screen.Fill(' ', s.style(s.background))
}

// DrawCircle lights the cells covered by a circle of radius p.Size at p.
func (s *Surface) DrawCircle(p core.Point, c core.Color) {
	if p.Size <= 0 || c.A <= 0 {
		return
	}
	cols, rows := s.screen.Size()
	rows -= promptRows
	style := s.style(s.blend(c))

	cx, cy := int(p.X/CellWidth), int(p.Y/CellHeight)
	if cx >= 0 && cx < cols && cy >= 0 && cy < rows {
		s.screen.SetContent(cx, cy, glyphFor(p.Size), nil, style)
	}
	if p.Size < CellWidth/2.0 {
		return
	}

	x0, x1 := int((p.X-p.Size)/CellWidth), int((p.X+p.Size)/CellWidth)
	y0, y1 := int((p.Y-p.Size)/CellHeight), int((p.Y+p.Size)/CellHeight)
	for y := max(y0, 0); y <= min(y1, rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, cols-1); x++ {
			if x == cx && y == cy {
				continue
			}
			mx := (float64(x) + 0.5) * CellWidth
			my := (float64(y) + 0.5) * CellHeight
			if math.Hypot(mx-p.X, my-p.Y) <= p.Size {
				s.screen.SetContent(x, y, '█', nil, style)
			}
		}
	}
}

func glyphFor(radius float64) rune {
	for _, g := range glyphs {
		if radius <= g.maxRadius {
			return g.r
		}
	}
	return '█'
}

// blend mixes c over the background by its alpha.
func (s *Surface) blend(c core.Color) core.Color {
	a := math.Min(math.Max(c.A, 0), 1)
	mix := func(fg, bg uint8) uint8 {
		return uint8(math.Round(float64(bg) + (float64(fg)-float64(bg))*a))
	}
	return core.Color{
		R: mix(c.R, s.background.R),
		G: mix(c.G, s.background.G),
		B: mix(c.B, s.background.B),
		A: 1,
	}
}

func (s *Surface) style(fg core.Color) tcell.Style {
	bg := tcell.NewRGBColor(int32(s.background.R), int32(s.background.G), int32(s.background.B))
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(bg)
}
