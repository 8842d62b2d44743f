//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	promptHeight   = 22
	promptPadding  = 8
	promptTextTop  = 4
	promptLabel    = "> "

	repeatDelay    = 24
	repeatInterval = 3
)

// Prompt is the command line drawn along the bottom of the window.
type Prompt struct {
	editor *LineEditor
	face   text.Face
	panel  *ebiten.Image
	runes  []rune
	ticks  int
}

// NewPrompt constructs an empty prompt.
func NewPrompt() *Prompt {
	return &Prompt{editor: NewLineEditor(), face: text.NewGoXFace(basicfont.Face7x13)}
}

// Update consumes keyboard input. It returns the submitted line and true
// when Enter was pressed this frame.
func (p *Prompt) Update() (string, bool) {
	p.ticks++
	p.runes = ebiten.AppendInputChars(p.runes[:0])
	p.editor.Insert(p.runes...)

	if repeating(ebiten.KeyBackspace) {
		p.editor.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		p.editor.Previous()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		p.editor.Next()
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyU) {
		p.editor.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return p.editor.Submit(), true
	}
	return "", false
}

// repeating reports a key press and then auto-repeats while it is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// Draw paints the prompt strip anchored to the bottom edge of screen.
func (p *Prompt) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	if w <= 0 || h < promptHeight {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dx() != w {
		p.panel = ebiten.NewImage(w, promptHeight)
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	line := promptLabel + p.editor.String()
	if (p.ticks/30)%2 == 0 {
		line += "_"
	}
	txt := &text.DrawOptions{}
	txt.GeoM.Translate(promptPadding, promptTextTop)
	txt.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 220, B: 230, A: 255})
	text.Draw(p.panel, line, p.face, txt)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(h-promptHeight))
	screen.DrawImage(p.panel, op)
}
