// Package eyeicon rasterizes the eye glyphs used by password visibility
// toggles.
package eyeicon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Shape selects the glyph.
type Shape int

const (
	// Open is an open eye. It invites the user to reveal masked text.
	Open Shape = iota
	// Slashed is an eye with a slash through it. It invites the user to mask text.
	Slashed
)

// String returns a human-readable representation of the shape.
func (s Shape) String() string {
	switch s {
	case Open:
		return "open"
	case Slashed:
		return "slashed"
	default:
		return "unknown"
	}
}

// bezier circle constant
const kappa = 0.5522847498

// Render draws shape in c on a transparent size×size canvas.
func Render(shape Shape, c color.Color, size int) *image.RGBA {
	if size <= 0 {
		size = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	src := image.NewUniform(c)
	s := float32(size)

	z := vector.NewRasterizer(size, size)

	// Outer almond runs over the top, the inner one under the bottom so the
	// two windings cancel and leave a ring.
	z.MoveTo(0.08*s, 0.5*s)
	z.CubeTo(0.3*s, 0.15*s, 0.7*s, 0.15*s, 0.92*s, 0.5*s)
	z.CubeTo(0.7*s, 0.85*s, 0.3*s, 0.85*s, 0.08*s, 0.5*s)
	z.ClosePath()

	z.MoveTo(0.16*s, 0.5*s)
	z.CubeTo(0.35*s, 0.75*s, 0.65*s, 0.75*s, 0.84*s, 0.5*s)
	z.CubeTo(0.65*s, 0.25*s, 0.35*s, 0.25*s, 0.16*s, 0.5*s)
	z.ClosePath()

	circle(z, 0.5*s, 0.5*s, 0.14*s)
	z.Draw(dst, dst.Bounds(), src, image.Point{})

	if shape == Slashed {
		z.Reset(size, size)
		line(z, 0.15*s, 0.85*s, 0.85*s, 0.15*s, 0.08*s)
		z.Draw(dst, dst.Bounds(), src, image.Point{})
	}
	return dst
}

// Scale resizes src to w×h with Catmull-Rom resampling.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func circle(z *vector.Rasterizer, cx, cy, r float32) {
	k := float32(kappa) * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// line fills a stroke of width w from (x0, y0) to (x1, y1).
func line(z *vector.Rasterizer, x0, y0, x1, y1, w float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}
