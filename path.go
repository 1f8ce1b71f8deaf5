package pathedit

import (
	"fmt"
	"iter"
	"math"
	"strings"
	"time"
)

// InsertionThreshold is the largest distance from the curve at which
// [BezierPath.FindNearestPointOnSegment] still offers an insertion point.
const InsertionThreshold = 20

// PathOption configures a BezierPath during creation.
type PathOption func(*pathOptions)

type pathOptions struct {
	startTime    float64
	hasStartTime bool
	clock        func() time.Time
	canvas       Size
	segments     SegmentOptions
}

func defaultPathOptions() pathOptions {
	return pathOptions{
		clock:    time.Now,
		segments: DefaultSegmentOptions(),
	}
}

// WithStartTime sets the path's start time in milliseconds. By default the
// clock's current time is used.
func WithStartTime(ms float64) PathOption {
	return func(o *pathOptions) {
		o.startTime = ms
		o.hasStartTime = true
	}
}

// WithClock sets the clock used to timestamp new segments.
func WithClock(clock func() time.Time) PathOption {
	return func(o *pathOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithCanvasSize fixes the width and height reported by the exporters.
// Without it, they are derived from the path's extent.
func WithCanvasSize(sz Size) PathOption {
	return func(o *pathOptions) {
		o.canvas = sz
	}
}

// WithSegmentOptions sets the drawing options of all segments the path
// creates.
func WithSegmentOptions(opts SegmentOptions) PathOption {
	return func(o *pathOptions) {
		o.segments = opts.withDefaults()
	}
}

// Timestamp converts t to the millisecond timestamps used by segments.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e6
}

// Insertion is a candidate location for [BezierPath.InsertPointOnSegment].
type Insertion struct {
	Segment *LineSegment
	Point   Point
	T       float64
}

// BezierPath is a doubly linked list of [LineSegment]s. Head has no
// predecessor and Tail no successor; both are nil for an empty path.
//
// A BezierPath is not safe for concurrent use. Read-only operations (the
// exporters, Vertices, Draw) may run concurrently with each other but not
// with a mutation.
type BezierPath struct {
	Head      *LineSegment
	Tail      *LineSegment
	StartTime float64
	// Selected is the segment picked by the last successful SelectPoint.
	Selected *LineSegment

	length    int
	opts      SegmentOptions
	canvas    Size
	clock     func() time.Time
	insertion *Insertion
}

// NewBezierPath returns a path consisting of a single segment at start.
func NewBezierPath(start Point, typ SegmentType, opts ...PathOption) *BezierPath {
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &BezierPath{
		opts:   o.segments,
		canvas: o.canvas,
		clock:  o.clock,
	}
	p.StartTime = o.startTime
	if !o.hasStartTime {
		p.StartTime = p.now()
	}
	p.AddPoint(start, typ)
	return p
}

func (p *BezierPath) now() float64 {
	return Timestamp(p.clock())
}

// Len returns the number of segments.
func (p *BezierPath) Len() int {
	return p.length
}

// SegmentOptions returns the drawing options new segments receive.
func (p *BezierPath) SegmentOptions() SegmentOptions {
	return p.opts
}

// Segments iterates the segments from head to tail. The successor is read
// before yielding, so the yielded segment may be deleted.
func (p *BezierPath) Segments() iter.Seq[*LineSegment] {
	return func(yield func(*LineSegment) bool) {
		for seg := p.Head; seg != nil; {
			next := seg.Next
			if !yield(seg) {
				return
			}
			seg = next
		}
	}
}

// Cubics iterates the curves of all segments that have a predecessor.
func (p *BezierPath) Cubics() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for seg := range p.Segments() {
			if c, ok := seg.Cubic(); ok {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// AddPoint appends a segment ending at pt, timestamped with the path's
// clock.
func (p *BezierPath) AddPoint(pt Point, typ SegmentType) *LineSegment {
	return p.addSegment(pt, typ, p.now())
}

func (p *BezierPath) addSegment(pt Point, typ SegmentType, ts float64) *LineSegment {
	seg := NewLineSegment(NewAnchorPoint(pt, p.opts.AnchorRadius), p.Tail, typ, p.opts, ts)
	if p.Tail == nil {
		p.Head = seg
		p.Tail = seg
	} else {
		p.Tail.Next = seg
		p.Tail = seg
	}
	p.length++
	Logger().Debug("segment added", "point", pt, "type", typ, "len", p.length)
	return seg
}

// SelectPoint hit-tests pos against every segment. All segments that hit are
// activated and the last one, in head-to-tail order, becomes Selected.
func (p *BezierPath) SelectPoint(pos Point, opts HitOptions) bool {
	found := false
	for seg := range p.Segments() {
		if seg.FindInLineSegment(pos, opts) {
			p.Selected = seg
			seg.Select()
			found = true
		}
	}
	return found
}

// DeselectSegments deactivates the handles of every segment.
func (p *BezierPath) DeselectSegments() {
	for seg := range p.Segments() {
		seg.Deselect()
	}
}

// ClearSelected forgets the selected segment.
func (p *BezierPath) ClearSelected() {
	if p.Selected != nil {
		p.Selected.ClearSelectedPoint()
	}
	p.Selected = nil
}

// UpdateSelected drags the selected point to pos.
func (p *BezierPath) UpdateSelected(pos Point, mods Modifiers) bool {
	if p.Selected == nil {
		return false
	}
	return p.Selected.MoveTo(pos, mods)
}

// DeletePoint deletes the first segment, head to tail, whose anchor contains
// pos.
func (p *BezierPath) DeletePoint(pos Point) bool {
	for seg := range p.Segments() {
		if seg.PathPointIntersects(pos, 0) {
			p.DeleteLineSegment(seg)
			return true
		}
	}
	return false
}

// DeleteLineSegment unlinks seg from the path and disposes it.
//
// When seg has neighbors on both sides, the right neighbor takes over seg's
// first handle, so the curve keeps its shape next to the left neighbor. A
// new head loses its handles.
func (p *BezierPath) DeleteLineSegment(seg *LineSegment) {
	left, right := seg.Prev, seg.Next
	switch {
	case left != nil && right != nil:
		left.Next = right
		if right.Handle1 != nil {
			right.Handle1.Dispose()
		}
		right.Handle1 = seg.Handle1
		if right.Handle1 != nil {
			right.Handle1.setOwner(right)
		}
		seg.Handle1 = nil
		right.Prev = left
	case left == nil:
		p.Head = right
		if right != nil {
			right.disposeHandles()
			right.Prev = nil
		} else {
			p.Tail = nil
		}
	default:
		p.Tail = left
		left.Next = nil
	}
	p.length--

	// The left neighbor may have selected seg's first handle.
	if left != nil && left.selected != nil && left.selected == dragTarget(seg.Handle1) {
		left.selected = nil
	}
	if p.Selected == seg {
		p.Selected = nil
	}
	if p.insertion != nil && p.insertion.Segment == seg {
		p.insertion = nil
	}
	seg.Dispose()
	Logger().Debug("segment deleted", "len", p.length)
}

// RecalculateControlPoints straightens every segment's handles.
func (p *BezierPath) RecalculateControlPoints() {
	for seg := range p.Segments() {
		seg.UpdateControlPointAngles()
	}
}

// FindNearestPointOnSegment finds the point on the path closest to pos. If
// it is within [InsertionThreshold], it is remembered as the candidate for
// InsertPointOnSegment and returned; otherwise any earlier candidate is
// dropped.
func (p *BezierPath) FindNearestPointOnSegment(pos Point) (Insertion, bool) {
	p.insertion = nil
	best := math.Inf(1)
	var cand Insertion
	for seg := range p.Segments() {
		np, ok := seg.FindNearestPointOnSegment(pos)
		if ok && np.DistSq < best {
			best = np.DistSq
			cand = Insertion{Segment: seg, Point: np.Pt, T: np.T}
		}
	}
	if math.Sqrt(best) > InsertionThreshold {
		return Insertion{}, false
	}
	p.insertion = &cand
	return cand, true
}

// InsertionCandidate returns the remembered insertion point, if any.
func (p *BezierPath) InsertionCandidate() (Insertion, bool) {
	if p.insertion == nil {
		return Insertion{}, false
	}
	return *p.insertion, true
}

// InsertPointOnSegment splits the segment of the remembered insertion
// candidate and returns the new segment ending at the inserted point. The
// candidate is consumed.
func (p *BezierPath) InsertPointOnSegment() (*LineSegment, bool) {
	ins := p.insertion
	p.insertion = nil
	if ins == nil || ins.Segment == nil {
		return nil, false
	}
	seg := ins.Segment
	left, right, ok := seg.Split(ins.T)
	if !ok {
		return nil, false
	}
	prev, next := seg.Prev, seg.Next
	prev.Next = left
	right.Next = next
	if next != nil {
		next.Prev = right
	} else {
		p.Tail = right
	}
	if p.Selected == seg {
		p.Selected = nil
	}
	if prev.selected != nil && prev.selected == dragTarget(seg.Handle1) {
		prev.selected = nil
	}
	seg.Dispose()
	p.length++
	Logger().Debug("point inserted", "point", ins.Point, "t", ins.T, "len", p.length)
	return left, true
}

// Vertices samples every segment with [DefaultDivisions] divisions, in
// order. Times are relative to StartTime.
func (p *BezierPath) Vertices() []Vertex {
	out := make([]Vertex, 0, p.length*DefaultDivisions)
	for seg := range p.Segments() {
		for v := range seg.InterpolateVertices(DefaultDivisions, p.StartTime) {
			out = append(out, v)
		}
	}
	return out
}

// Polygon returns the sampled vertices as a polygon for [IsInPolygon].
func (p *BezierPath) Polygon() []Point {
	vs := p.Vertices()
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = v.Point()
	}
	return out
}

// Bounds returns the bounding box of the sampled vertices. It reports false
// for an empty path.
func (p *BezierPath) Bounds() (Rect, bool) {
	vs := p.Vertices()
	if len(vs) == 0 {
		return Rect{}, false
	}
	r := NewRectFromPoints(vs[0].Point(), vs[0].Point())
	for _, v := range vs[1:] {
		r = r.UnionPoint(v.Point())
	}
	return r, true
}

// CanvasSize returns the size reported by the exporters: the configured
// canvas size, or else the extent of the path measured from the origin.
func (p *BezierPath) CanvasSize() Size {
	if !p.canvas.IsZero() {
		return p.canvas
	}
	r, ok := p.Bounds()
	if !ok {
		return Size{}
	}
	return Sz(max(r.X1, 0), max(r.Y1, 0)).Ceil()
}

func (p *BezierPath) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BezierPath(%d)", p.length)
	for seg := range p.Segments() {
		sb.WriteString("\n  ")
		sb.WriteString(seg.String())
	}
	return sb.String()
}
