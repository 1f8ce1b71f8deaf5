// Package mask turns the outline of a [pathedit.BezierPath] into bitmap masks
// and uses them to cut shapes out of images.
//
// The path is implicitly closed from its tail back to its head.
package mask

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"

	"honnef.co/go/pathedit"
)

// Fill is the color of the inside of a mask composited without background.
var Fill = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// InPolygon reports whether pt lies inside poly, using the even-odd rule.
func InPolygon(poly []pathedit.Point, pt pathedit.Point) bool {
	return pathedit.IsInPolygon(poly, pt)
}

// EvenOdd returns a w×h mask that is opaque at every pixel whose integer
// coordinates lie inside the path's sampled polygon and transparent
// elsewhere.
func EvenOdd(p *pathedit.BezierPath, w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	poly := p.Polygon()
	if len(poly) < 3 {
		return m
	}
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if InPolygon(poly, pathedit.Pt(float64(x), float64(y))) {
				m.Pix[i] = 0xff
			}
			i++
		}
		i += m.Stride - w
	}
	pathedit.Logger().Debug("even-odd mask rendered", "width", w, "height", h, "vertices", len(poly))
	return m
}

// Coverage returns an anti-aliased w×h mask of the area enclosed by the
// path's curves. Unlike [EvenOdd], it rasterizes the exact curves and uses
// the non-zero winding rule.
func Coverage(p *pathedit.BezierPath, w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	if p.Len() < 2 {
		return m
	}
	r := vector.NewRasterizer(w, h)
	for cmd, pts := range p.Outline() {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdCubeTo:
			r.CubeTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y),
			)
		case path.CmdClose:
			r.ClosePath()
		}
	}
	r.ClosePath()
	r.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	pathedit.Logger().Debug("coverage mask rendered", "width", w, "height", h)
	return m
}

// Composite cuts m out of bg. bg is scaled to the size of m first. Where m is
// transparent the result is transparent. If bg is nil, the inside is filled
// with [Fill].
func Composite(bg image.Image, m *image.Alpha) *image.RGBA {
	b := m.Bounds()
	dst := image.NewRGBA(b)
	var src image.Image = image.NewUniform(Fill)
	if bg != nil {
		scaled := image.NewRGBA(b)
		draw.BiLinear.Scale(scaled, b, bg, bg.Bounds(), draw.Src, nil)
		src = scaled
	}
	draw.DrawMask(dst, b, src, b.Min, m, b.Min, draw.Src)
	return dst
}
