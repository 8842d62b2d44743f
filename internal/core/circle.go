package core

import "golang.org/x/image/vector"

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// TraceCircle adds a closed circular path centered at (cx, cy) to z.
func TraceCircle(z *vector.Rasterizer, cx, cy, r float32) {
	if r <= 0 {
		return
	}
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}
