package pathedit

import "math"

// Drawer is the subset of a 2D canvas context the path renders itself with.
// Colors are CSS color strings.
type Drawer interface {
	Save()
	Restore()
	SetStrokeStyle(color string)
	SetFillStyle(color string)
	SetLineWidth(w float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(x1, y1, x2, y2, x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Rect(x, y, w, h float64)
	Stroke()
	Fill()
}

// DrawOptions controls [BezierPath.Draw].
type DrawOptions struct {
	HideAnchorPoints  bool
	HideControlPoints bool
	// Transformer, if set, keeps marker sizes and line widths constant on
	// screen by dividing them by its scale.
	Transformer Transformer
	// SelectionPoint, if set, is marked as the pending insertion point.
	SelectionPoint *Point
}

func (o DrawOptions) scale() float64 {
	if o.Transformer == nil {
		return 1
	}
	if sc := o.Transformer.Scale(); sc > 0 {
		return sc
	}
	return 1
}

// Draw renders the path onto d: every curve, the handles of segments whose
// control points are active and the anchor markers. It does not modify the
// path.
func (p *BezierPath) Draw(d Drawer, opts DrawOptions) {
	if p.Head == nil {
		return
	}
	sc := opts.scale()
	for seg := range p.Segments() {
		seg.drawCurve(d, sc)
	}
	for seg := range p.Segments() {
		if seg.ControlPointsActive && !opts.HideControlPoints {
			seg.drawHandles(d, sc)
		}
		if !opts.HideAnchorPoints {
			drawMarker(d, seg.Pt.Point(), seg.Pt.Radius/sc, seg.Pt.Shape, seg.Pt.Color)
		}
	}
	if opts.SelectionPoint != nil {
		drawMarker(d, *opts.SelectionPoint, p.opts.AnchorRadius/sc, ShapeCircle, p.opts.LineColor)
	}
}

func (s *LineSegment) drawCurve(d Drawer, sc float64) {
	c, ok := s.Cubic()
	if !ok {
		return
	}
	d.Save()
	d.SetStrokeStyle(s.opts.LineColor)
	d.SetLineWidth(s.opts.LineWeight / sc)
	d.BeginPath()
	d.MoveTo(c.P0.X, c.P0.Y)
	d.BezierCurveTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
	d.Stroke()
	d.Restore()
}

// drawHandles draws the two handles that sit at this segment's anchor.
func (s *LineSegment) drawHandles(d Drawer, sc float64) {
	anchor := s.Pt.Point()
	for _, h := range []*ControlHandle{s.Handle2, s.nextHandle1()} {
		if h == nil {
			continue
		}
		pos := h.Pos()
		d.Save()
		d.SetStrokeStyle(s.opts.ControlColor)
		d.SetLineWidth(s.opts.LineWeight / sc)
		d.BeginPath()
		d.MoveTo(anchor.X, anchor.Y)
		d.LineTo(pos.X, pos.Y)
		d.Stroke()
		d.Restore()
		drawMarker(d, pos, h.Radius()/sc, s.opts.ControlShape, s.opts.ControlColor)
	}
}

func (s *LineSegment) nextHandle1() *ControlHandle {
	if s.Next == nil {
		return nil
	}
	return s.Next.Handle1
}

func drawMarker(d Drawer, pt Point, r float64, shape PointShape, color string) {
	d.Save()
	d.SetFillStyle(color)
	d.BeginPath()
	switch shape {
	case ShapeCircle:
		d.Arc(pt.X, pt.Y, r, 0, 2*math.Pi)
	default:
		d.Rect(pt.X-r, pt.Y-r, 2*r, 2*r)
	}
	d.Fill()
	d.Restore()
}
