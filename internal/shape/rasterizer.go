package shape

import (
	"context"
	"fmt"
	"image"
	"log"
	"math"
	"strconv"
	"strings"

	"shape-shifter/internal/core"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	// DefaultGap is the grid pitch in pixels between samples.
	DefaultGap = 14
	// DefaultMaxShapeSize bounds circle and rectangle dimensions in grid units.
	DefaultMaxShapeSize = 30
	// DefaultFontSize is the largest font size text is ever drawn at.
	DefaultFontSize = 500
	// DefaultFallback is drawn whenever a shape source cannot be rendered.
	DefaultFallback = "What?"
	// DefaultImageScale is the fraction of the drawing area an image covers.
	DefaultImageScale = 0.6

	textWidthRatio   = 0.8
	textHeightRatio  = 0.45
	digitHeightRatio = 1.0
)

// Options tunes the rasterizer grid and fallbacks.
type Options struct {
	Gap          int
	MaxShapeSize int
	FontSize     float64
	Fallback     string
	ImageScale   float64
}

// DefaultOptions returns the standard rasterizer configuration.
func DefaultOptions() Options {
	return Options{
		Gap:          DefaultGap,
		MaxShapeSize: DefaultMaxShapeSize,
		FontSize:     DefaultFontSize,
		Fallback:     DefaultFallback,
		ImageScale:   DefaultImageScale,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Gap <= 0 {
		o.Gap = def.Gap
	}
	if o.MaxShapeSize <= 0 {
		o.MaxShapeSize = def.MaxShapeSize
	}
	if o.FontSize <= 0 {
		o.FontSize = def.FontSize
	}
	if o.ImageScale <= 0 {
		o.ImageScale = def.ImageScale
	}
	return o
}

// Descriptor is a sampled point cloud in grid-local coordinates. Width and
// Height are the span the dot pool centers on the drawing surface.
type Descriptor struct {
	Dots   []core.Point
	Width  float64
	Height float64
}

// Len returns the number of sampled points.
func (d Descriptor) Len() int { return len(d.Dots) }

// Rasterizer converts shape requests into point clouds using a private
// off-screen alpha surface. It is not safe for concurrent use.
type Rasterizer struct {
	opts    Options
	area    core.Area
	surface *image.Alpha

	font    *opentype.Font
	measure font.Face
}

// New constructs a rasterizer fitted to the provided drawing area.
func New(area core.Area, opts Options) (*Rasterizer, error) {
	ft, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	opts = opts.normalized()
	measure, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: opts.FontSize, DPI: 72, Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("measure face: %w", err)
	}
	r := &Rasterizer{opts: opts, font: ft, measure: measure}
	r.Fit(area)
	return r, nil
}

// Options returns the normalized configuration in use.
func (r *Rasterizer) Options() Options { return r.opts }

// Area returns the drawing area the rasterizer was last fitted to.
func (r *Rasterizer) Area() core.Area { return r.area }

// Bounds returns the size of the off-screen surface, which is always a
// multiple of the gap in both axes.
func (r *Rasterizer) Bounds() core.Area {
	b := r.surface.Bounds()
	return core.Area{W: b.Dx(), H: b.Dy()}
}

// Fit resizes the off-screen surface to the drawing area floored to the grid.
func (r *Rasterizer) Fit(area core.Area) {
	gap := r.opts.Gap
	w := max(area.W, 0) / gap * gap
	h := max(area.H, 0) / gap * gap
	r.area = area
	if r.surface != nil && r.surface.Bounds().Dx() == w && r.surface.Bounds().Dy() == h {
		return
	}
	r.surface = image.NewAlpha(image.Rect(0, 0, w, h))
}

// Close releases font resources.
func (r *Rasterizer) Close() error {
	if r.measure == nil {
		return nil
	}
	err := r.measure.Close()
	r.measure = nil
	return err
}

// Rasterize dispatches a request. It never fails: unrenderable requests fall
// back to the configured fallback text.
func (r *Rasterizer) Rasterize(ctx context.Context, req Request) Descriptor {
	switch req.Kind {
	case KindCircle:
		return r.Circle(req.Diameter)
	case KindRectangle:
		return r.Rectangle(req.Width, req.Height)
	case KindImage:
		return r.Image(ctx, req.Source)
	default:
		return r.Letters(req.Text)
	}
}

// Letters draws s as large as fits the surface and samples it.
func (r *Rasterizer) Letters(s string) Descriptor {
	r.clear()
	b := r.surface.Bounds()
	size := r.fontSizeFor(s)
	if s == "" || size <= 0 || b.Empty() {
		return r.sample()
	}
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size: size, DPI: 72, Hinting: font.HintingNone,
	})
	if err != nil {
		log.Printf("[shape] text face %.1fpx: %v", size, err)
		return r.sample()
	}
	defer face.Close()

	m := face.Metrics()
	width := font.MeasureString(face, s)
	d := font.Drawer{
		Dst:  r.surface,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Dx()/2) - width/2,
			Y: fixed.I(b.Dy()/2) + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(s)
	return r.sample()
}

func (r *Rasterizer) fontSizeFor(s string) float64 {
	b := r.surface.Bounds()
	size := r.opts.FontSize
	if r.measure != nil {
		if measured := float64(font.MeasureString(r.measure, s)) / 64; measured > 0 {
			size = math.Min(size, float64(b.Dx())/measured*textWidthRatio*r.opts.FontSize)
		}
	}
	ratio := textHeightRatio
	if isNumber(s) {
		ratio = digitHeightRatio
	}
	return math.Min(size, float64(b.Dy())/r.opts.FontSize*ratio*r.opts.FontSize)
}

func isNumber(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Circle fills a disc of diameter d grid units anchored at the surface origin.
func (r *Rasterizer) Circle(d int) Descriptor {
	d = Clamp(d, r.opts.MaxShapeSize)
	r.clear()
	b := r.surface.Bounds()
	radius := float32(d) / 2 * float32(r.opts.Gap)
	if radius > 0 && !b.Empty() {
		z := vector.NewRasterizer(b.Dx(), b.Dy())
		core.TraceCircle(z, radius, radius, radius)
		z.Draw(r.surface, b, image.Opaque, image.Point{})
	}
	return r.sample()
}

// Rectangle lays out a w x h grid analytically without touching the surface.
func (r *Rasterizer) Rectangle(w, h int) Descriptor {
	gap := r.opts.Gap
	width := gap * Clamp(w, r.opts.MaxShapeSize)
	height := gap * Clamp(h, r.opts.MaxShapeSize)
	dots := make([]core.Point, 0, (width/gap)*(height/gap))
	for y := 0; y < height; y += gap {
		for x := 0; x < width; x += gap {
			dots = append(dots, core.At(float64(x), float64(y)))
		}
	}
	return Descriptor{Dots: dots, Width: float64(width), Height: float64(height)}
}

// Image loads src synchronously and samples it, falling back on failure.
func (r *Rasterizer) Image(ctx context.Context, src string) Descriptor {
	img, err := Load(ctx, src)
	return r.Resolve(Loaded{Source: src, Image: img, Err: err})
}

// Resolve rasterizes the outcome of an image load.
func (r *Rasterizer) Resolve(l Loaded) Descriptor {
	if l.Err != nil || l.Image == nil {
		log.Printf("[shape] image %q unavailable, drawing fallback: %v", l.Source, l.Err)
		return r.Fallback()
	}
	return r.FromImage(l.Image)
}

// FromImage scales img to a fraction of the drawing area and samples it.
func (r *Rasterizer) FromImage(img image.Image) Descriptor {
	r.clear()
	w := int(float64(r.area.W) * r.opts.ImageScale)
	h := int(float64(r.area.H) * r.opts.ImageScale)
	if w > 0 && h > 0 && !img.Bounds().Empty() {
		xdraw.BiLinear.Scale(r.surface, image.Rect(0, 0, w, h), img, img.Bounds(), xdraw.Over, nil)
	}
	return r.sample()
}

// Fallback draws the fallback text.
func (r *Rasterizer) Fallback() Descriptor { return r.Letters(r.opts.Fallback) }

func (r *Rasterizer) clear() { clear(r.surface.Pix) }

// sample walks the surface on the grid and emits one point per cell whose
// pixel is not fully transparent. The reported span is far edge plus near
// edge per axis, which is what the pool centers on.
func (r *Rasterizer) sample() Descriptor {
	b := r.surface.Bounds()
	gap := r.opts.Gap
	minX, minY := b.Dx(), b.Dy()
	maxX, maxY := 0, 0
	var dots []core.Point
	for y := 0; y < b.Dy(); y += gap {
		for x := 0; x < b.Dx(); x += gap {
			if r.surface.AlphaAt(x, y).A == 0 {
				continue
			}
			dots = append(dots, core.At(float64(x), float64(y)))
			maxX = max(maxX, x)
			maxY = max(maxY, y)
			minX = min(minX, x)
			minY = min(minY, y)
		}
	}
	return Descriptor{Dots: dots, Width: float64(maxX + minX), Height: float64(maxY + minY)}
}
