// Package raster renders geometry into alpha masks, for previews and for
// checking areas covered by strokes and hatches.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/geoline"
)

// Canvas maps a region of geometry space onto the pixels of a mask. The y
// axis is flipped, so that larger y values end up higher in the image.
type Canvas struct {
	Bounds geoline.Rect
	// Scale is the number of pixels per unit. Zero means 1.
	Scale float64
}

func (c Canvas) scale() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}

// Size returns the size of masks drawn on c.
func (c Canvas) Size() image.Point {
	s := c.scale()
	return image.Pt(
		max(int(math.Ceil(c.Bounds.Width()*s)), 1),
		max(int(math.Ceil(c.Bounds.Height()*s)), 1),
	)
}

// Transform returns the mapping from geometry space to pixels.
func (c Canvas) Transform() geoline.Affine {
	s := c.scale()
	return geoline.Affine{N0: s, N1: 0, N2: 0, N3: -s, N4: -c.Bounds.X0 * s, N5: c.Bounds.Y1 * s}
}

// Fill draws the filled path. Overlapping subpaths winding in opposite
// directions cancel out, so holes must wind against their border.
func (c Canvas) Fill(p geoline.BezPath) *image.Alpha {
	size := c.Size()
	z := vector.NewRasterizer(size.X, size.Y)
	addPath(z, p.PathData(), c.Transform().Matrix())
	return draw(z, size)
}

// FillTriangles draws the triangles of a strip.
func (c Canvas) FillTriangles(t geoline.Triangles) *image.Alpha {
	size := c.Size()
	z := vector.NewRasterizer(size.X, size.Y)
	ctm := c.Transform().Matrix()
	for tri := range t.All() {
		a, b, d := tri[0], tri[1], tri[2]
		// a consistent winding keeps overlapping triangles from cancelling
		if b.Sub(a).Cross(d.Sub(a)) < 0 {
			b, d = d, b
		}
		z.MoveTo(device(ctm, a.PDFVec()))
		z.LineTo(device(ctm, b.PDFVec()))
		z.LineTo(device(ctm, d.PDFVec()))
		z.ClosePath()
	}
	return draw(z, size)
}

// Area estimates the area covered by a mask drawn on c, in geometry units.
func (c Canvas) Area(img *image.Alpha) float64 {
	var sum float64
	for _, a := range img.Pix {
		sum += float64(a)
	}
	s := c.scale()
	return sum / 255 / (s * s)
}

// Covered reports whether the pixel containing pt is more than half covered.
func (c Canvas) Covered(img *image.Alpha, pt geoline.Point) bool {
	q := pt.Transform(c.Transform())
	x, y := int(math.Floor(q.X)), int(math.Floor(q.Y))
	return img.AlphaAt(x, y).A > 127
}

// device maps v by the transformation matrix ctm to pixel coordinates.
func device(ctm matrix.Matrix, v vec.Vec2) (float32, float32) {
	return float32(ctm[0]*v.X + ctm[2]*v.Y + ctm[4]), float32(ctm[1]*v.X + ctm[3]*v.Y + ctm[5])
}

// addPath feeds path data, given in geometry space, to the rasterizer.
// Subpaths left open are closed, as fills always are.
func addPath(z *vector.Rasterizer, d *path.Data, ctm matrix.Matrix) {
	pt := func(v vec.Vec2) (float32, float32) { return device(ctm, v) }
	open := false
	i := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(d.Coords[i]))
			open = true
			i++
		case path.CmdLineTo:
			z.LineTo(pt(d.Coords[i]))
			i++
		case path.CmdQuadTo:
			x1, y1 := pt(d.Coords[i])
			x2, y2 := pt(d.Coords[i+1])
			z.QuadTo(x1, y1, x2, y2)
			i += 2
		case path.CmdCubeTo:
			x1, y1 := pt(d.Coords[i])
			x2, y2 := pt(d.Coords[i+1])
			x3, y3 := pt(d.Coords[i+2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
			i += 3
		case path.CmdClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

func draw(z *vector.Rasterizer, size image.Point) *image.Alpha {
	dst := image.NewAlpha(image.Rectangle{Max: size})
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}
