package pathedit

import (
	"fmt"
	"iter"
	"math"
)

// DefaultDivisions is the number of samples taken per segment by
// [LineSegment.InterpolateVertices] when none is given.
const DefaultDivisions = 10

// SegmentType describes the joint at a segment's anchor.
type SegmentType int

const (
	// Smooth keeps the handles on both sides of the anchor collinear.
	Smooth SegmentType = iota
	// Corner lets the handles move independently.
	Corner
)

func (typ SegmentType) String() string {
	switch typ {
	case Smooth:
		return "SMOOTH"
	case Corner:
		return "CORNER"
	default:
		return fmt.Sprintf("SegmentType(%d)", int(typ))
	}
}

func (typ SegmentType) MarshalText() ([]byte, error) {
	switch typ {
	case Smooth, Corner:
		return []byte(typ.String()), nil
	default:
		return nil, fmt.Errorf("invalid segment type %d", int(typ))
	}
}

func (typ *SegmentType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "SMOOTH":
		*typ = Smooth
	case "CORNER":
		*typ = Corner
	default:
		return fmt.Errorf("invalid segment type %q", b)
	}
	return nil
}

// SegmentOptions carries the drawing metadata of a segment's points.
type SegmentOptions struct {
	AnchorShape   PointShape
	ControlShape  PointShape
	AnchorColor   string
	ControlColor  string
	AnchorRadius  float64
	ControlRadius float64
	LineColor     string
	LineWeight    float64
	HandleLength  float64
}

// DefaultSegmentOptions returns the options used when none are given.
func DefaultSegmentOptions() SegmentOptions {
	return SegmentOptions{
		AnchorShape:   ShapeSquare,
		ControlShape:  ShapeSquare,
		AnchorColor:   "blue",
		ControlColor:  "magenta",
		AnchorRadius:  DefaultRadius,
		ControlRadius: DefaultRadius,
		LineColor:     "magenta",
		LineWeight:    1,
		HandleLength:  DefaultHandleLength,
	}
}

// withDefaults fills in zero fields.
func (o SegmentOptions) withDefaults() SegmentOptions {
	def := DefaultSegmentOptions()
	if o.AnchorColor == "" {
		o.AnchorColor = def.AnchorColor
	}
	if o.ControlColor == "" {
		o.ControlColor = def.ControlColor
	}
	if o.AnchorRadius <= 0 {
		o.AnchorRadius = def.AnchorRadius
	}
	if o.ControlRadius <= 0 {
		o.ControlRadius = def.ControlRadius
	}
	if o.LineColor == "" {
		o.LineColor = def.LineColor
	}
	if o.LineWeight <= 0 {
		o.LineWeight = def.LineWeight
	}
	if o.HandleLength <= 0 {
		o.HandleLength = def.HandleLength
	}
	return o
}

// HitOptions controls hit-testing.
type HitOptions struct {
	// HideAnchorPoints only affects drawing. Anchors stay hit-testable since
	// selecting one is how its handles become visible.
	HideAnchorPoints bool
	// HideControlPoints makes handles invisible and not hit-testable.
	HideControlPoints bool
	// Transformer, if set, scales hit radii by the inverse of its zoom.
	Transformer Transformer
}

// Vertex is a sample of the path together with its interpolated time.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T float64 `json:"t"`
}

func (v Vertex) Point() Point {
	return Point{X: v.X, Y: v.Y}
}

// NearestPoint is the projection of a position onto a segment's curve.
type NearestPoint struct {
	Pt Point
	T  float64
	// DistSq is the squared distance from the projected position.
	DistSq float64
}

// dragTarget is a point that can be dragged after a hit test.
type dragTarget interface {
	pos() Point
	translate(d Vec2, mods Modifiers)
}

// LineSegment is a node of a [BezierPath]. It represents the cubic Bézier
// from Prev's anchor to its own, with Handle1 and Handle2 as control points.
//
// Handle1 and Handle2 are non-nil exactly when Prev is non-nil.
type LineSegment struct {
	Pt      *AnchorPoint
	Prev    *LineSegment
	Next    *LineSegment
	Type    SegmentType
	Time    float64
	Handle1 *ControlHandle
	Handle2 *ControlHandle

	// ControlPointsActive makes the handles around this anchor visible and
	// hit-testable.
	ControlPointsActive bool

	opts     SegmentOptions
	selected dragTarget
}

// NewLineSegment returns a segment ending at pt. If prev is non-nil, straight
// handles are computed by [LineSegment.UpdateControlPointAngles]. The caller
// links prev.Next.
func NewLineSegment(pt *AnchorPoint, prev *LineSegment, typ SegmentType, opts SegmentOptions, time float64) *LineSegment {
	opts = opts.withDefaults()
	if pt.Color == "" {
		pt.Shape = opts.AnchorShape
		pt.Color = opts.AnchorColor
	}
	s := &LineSegment{
		Pt:   pt,
		Prev: prev,
		Type: typ,
		Time: time,
		opts: opts,
	}
	if prev != nil {
		s.UpdateControlPointAngles()
	}
	return s
}

// Options returns the segment's drawing options.
func (s *LineSegment) Options() SegmentOptions {
	return s.opts
}

// UpdateControlPointAngles replaces the handles with ones lying on the
// straight line between the previous anchor and this one. Handle1 points
// towards this anchor and Handle2 back towards the previous one, whichever
// direction the segment was drawn in.
func (s *LineSegment) UpdateControlPointAngles() {
	if s.Prev == nil {
		s.disposeHandles()
		return
	}

	var a1, a2 float64
	angle := math.Atan(s.Pt.Point().Slope(s.Prev.Pt.Point()))
	if math.IsNaN(angle) && s.Handle1 != nil && s.Handle2 != nil {
		// coincident anchors; keep the previous angles
		a1, a2 = s.Handle1.Angle(), s.Handle2.Angle()
	} else {
		if math.IsNaN(angle) {
			angle = 0
		}
		a1, a2 = angle, angle+math.Pi
		if s.Prev.Pt.X >= s.Pt.X {
			a1, a2 = a2, a1
		}
	}

	s.disposeHandles()
	s.Handle1 = NewControlHandle(a1, s.opts.HandleLength, s, true, s.opts.ControlRadius)
	s.Handle2 = NewControlHandle(a2, s.opts.HandleLength, s, false, s.opts.ControlRadius)
	if s.Type == Smooth {
		s.Handle1.UpdateNeighbor()
	}
}

func (s *LineSegment) disposeHandles() {
	if s.Handle1 != nil {
		s.Handle1.Dispose()
	}
	if s.Handle2 != nil {
		s.Handle2.Dispose()
	}
	if s.selected == dragTarget(s.Handle1) || s.selected == dragTarget(s.Handle2) {
		s.selected = nil
	}
	s.Handle1 = nil
	s.Handle2 = nil
}

// Cubic returns the curve the segment represents. It reports false for a
// segment without predecessor.
func (s *LineSegment) Cubic() (CubicBez, bool) {
	if s.Prev == nil || s.Handle1 == nil || s.Handle2 == nil {
		return CubicBez{}, false
	}
	return CubicBez{
		P0: s.Prev.Pt.Point(),
		P1: s.Handle1.Pos(),
		P2: s.Handle2.Pos(),
		P3: s.Pt.Point(),
	}, true
}

// hitRadius returns the select radius adjusted for the view's zoom.
func (s *LineSegment) hitRadius(opts HitOptions) float64 {
	r := s.Pt.SelectRadius()
	if opts.Transformer != nil {
		if sc := opts.Transformer.Scale(); sc > 0 {
			r /= sc
		}
	}
	return r
}

// FindInLineSegment hit-tests pos against, in order, the next segment's
// first handle, this segment's second handle and this segment's anchor. The
// handles, which both sit at this anchor, are only considered while
// ControlPointsActive is set. The first hit becomes the selected point.
func (s *LineSegment) FindInLineSegment(pos Point, opts HitOptions) bool {
	r := s.hitRadius(opts)
	if s.ControlPointsActive && !opts.HideControlPoints {
		if s.Next != nil && s.Next.Handle1 != nil && s.Next.Handle1.Contains(pos, r) {
			s.selected = s.Next.Handle1
			return true
		}
		if s.Handle2 != nil && s.Handle2.Contains(pos, r) {
			s.selected = s.Handle2
			return true
		}
	}
	if s.Pt != nil && s.Pt.ContainsWithin(pos, r) {
		s.selected = s.Pt
		return true
	}
	return false
}

// PathPointIntersects hit-tests pos against the anchor only. A non-positive
// radius selects the anchor's select radius.
func (s *LineSegment) PathPointIntersects(pos Point, radius float64) bool {
	return s.Pt != nil && s.Pt.ContainsWithin(pos, radius)
}

// SelectedPoint returns the location of the point picked by the last
// successful [LineSegment.FindInLineSegment].
func (s *LineSegment) SelectedPoint() (Point, bool) {
	if s.selected == nil {
		return Point{}, false
	}
	return s.selected.pos(), true
}

// SelectedHandle returns the selected point if it is a handle.
func (s *LineSegment) SelectedHandle() *ControlHandle {
	h, _ := s.selected.(*ControlHandle)
	return h
}

// ClearSelectedPoint forgets the selected point.
func (s *LineSegment) ClearSelectedPoint() {
	s.selected = nil
}

// MoveTo moves the selected point to pos. Handles honor the joint type and
// mods as described in [ControlHandle.Translate].
func (s *LineSegment) MoveTo(pos Point, mods Modifiers) bool {
	if s.selected == nil {
		return false
	}
	s.selected.translate(s.selected.pos().OffsetFrom(pos), mods)
	return true
}

// InterpolateVertices samples the segment's curve at divisions evenly spaced
// parameters in (0, 1]. The start point is omitted because it is the
// previous segment's last sample. A segment without predecessor yields its
// anchor only. T interpolates the segment times and is relative to
// pathStartTime.
func (s *LineSegment) InterpolateVertices(divisions int, pathStartTime float64) iter.Seq[Vertex] {
	if divisions <= 0 {
		divisions = DefaultDivisions
	}
	return func(yield func(Vertex) bool) {
		c, ok := s.Cubic()
		if !ok {
			yield(Vertex{X: s.Pt.X, Y: s.Pt.Y, T: s.Time - pathStartTime})
			return
		}
		t0 := s.Prev.Time
		for i := 1; i <= divisions; i++ {
			u := float64(i) / float64(divisions)
			p := c.Eval(u)
			t := t0 + (s.Time-t0)*u - pathStartTime
			if !yield(Vertex{X: p.X, Y: p.Y, T: t}) {
				return
			}
		}
	}
}

// FindNearestPointOnSegment projects pos onto the segment's curve. It
// reports false for a segment without predecessor.
func (s *LineSegment) FindNearestPointOnSegment(pos Point) (NearestPoint, bool) {
	c, ok := s.Cubic()
	if !ok {
		return NearestPoint{}, false
	}
	d, t := c.Nearest(pos)
	return NearestPoint{Pt: c.Eval(t), T: t, DistSq: d}, true
}

// Split subdivides the segment's curve at t. left ends at the split point
// and starts at s.Prev; right ends at a copy of s's anchor and starts at
// left. The caller links left into s.Prev and right into s.Next. Segment
// times are apportioned linearly. Split reports false for a segment without
// predecessor.
func (s *LineSegment) Split(t float64) (left, right *LineSegment, ok bool) {
	c, ok := s.Cubic()
	if !ok {
		return nil, nil, false
	}
	t = min(max(t, 0), 1)
	a, b := c.SubdivideAt(t)

	anchor := *s.Pt
	mid := anchor
	mid.X, mid.Y = a.P3.X, a.P3.Y

	left = &LineSegment{
		Pt:   &mid,
		Prev: s.Prev,
		Type: Smooth,
		Time: s.Prev.Time + (s.Time-s.Prev.Time)*t,
		opts: s.opts,
	}
	right = &LineSegment{
		Pt:   &anchor,
		Prev: left,
		Type: s.Type,
		Time: s.Time,
		opts: s.opts,
	}
	left.Next = right

	// Angles are seeded from the old handles so that degenerate offsets keep
	// a sensible direction.
	left.Handle1 = NewControlHandle(s.Handle1.Angle(), 0, left, true, s.opts.ControlRadius)
	left.Handle2 = NewControlHandle(s.Handle2.Angle(), 0, left, false, s.opts.ControlRadius)
	right.Handle1 = NewControlHandle(s.Handle1.Angle(), 0, right, true, s.opts.ControlRadius)
	right.Handle2 = NewControlHandle(s.Handle2.Angle(), 0, right, false, s.opts.ControlRadius)
	left.Handle1.SetXY(a.P1)
	left.Handle2.SetXY(a.P2)
	right.Handle1.SetXY(b.P1)
	right.Handle2.SetXY(b.P2)
	return left, right, true
}

// Select makes the handles around this anchor visible and hit-testable.
func (s *LineSegment) Select() {
	s.ControlPointsActive = true
}

// Deselect hides the handles again.
func (s *LineSegment) Deselect() {
	s.ControlPointsActive = false
}

// ToggleType switches the joint between smooth and corner.
func (s *LineSegment) ToggleType() {
	if s.Type == Smooth {
		s.Type = Corner
	} else {
		s.Type = Smooth
	}
}

// Dispose breaks all references held by the segment.
func (s *LineSegment) Dispose() {
	s.disposeHandles()
	s.Pt = nil
	s.Next = nil
	s.Prev = nil
	s.selected = nil
}

func (s *LineSegment) String() string {
	if s.Pt == nil {
		return "segment(disposed)"
	}
	c, ok := s.Cubic()
	if !ok {
		return fmt.Sprintf("segment(%s %s)", s.Type, s.Pt)
	}
	return fmt.Sprintf("segment(%s %s → %s, %s, %s)", s.Type, c.P0, c.P1, c.P2, c.P3)
}
