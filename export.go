package pathedit

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyPath is returned when importing a document without segments.
	ErrEmptyPath = errors.New("path has no segments")
	// ErrMalformedSegment is returned when importing a segment with
	// non-finite coordinates.
	ErrMalformedSegment = errors.New("malformed segment")
)

// XY is a bare coordinate pair in exported documents.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func xy(pt Point) XY { return XY{X: pt.X, Y: pt.Y} }

func (c XY) point() Point { return Point{X: c.X, Y: c.Y} }

// ControlPointDocument is the exported form of a control handle.
type ControlPointDocument struct {
	Pt XY `json:"pt"`
}

// SegmentDocument is the exported form of a segment. The first segment has
// no control points.
type SegmentDocument struct {
	Point         XY                    `json:"point"`
	Type          SegmentType           `json:"type"`
	Time          float64               `json:"time"`
	ControlPoint1 *ControlPointDocument `json:"controlPoint1,omitempty"`
	ControlPoint2 *ControlPointDocument `json:"controlPoint2,omitempty"`
}

// Document is the JSON export of a path.
type Document struct {
	StartTime    float64           `json:"startTime"`
	Vertices     []Vertex          `json:"vertices"`
	VertexCount  int               `json:"vertexCount"`
	Segments     []SegmentDocument `json:"segments"`
	SegmentCount int               `json:"segmentCount"`
	Width        float64           `json:"width"`
	Height       float64           `json:"height"`
	OriginX      float64           `json:"originX"`
	OriginY      float64           `json:"originY"`
}

// Document returns the segment's exported form.
func (s *LineSegment) Document() SegmentDocument {
	doc := SegmentDocument{
		Point: xy(s.Pt.Point()),
		Type:  s.Type,
		Time:  s.Time,
	}
	if s.Prev != nil {
		if s.Handle1 != nil {
			doc.ControlPoint1 = &ControlPointDocument{Pt: xy(s.Handle1.Pos())}
		}
		if s.Handle2 != nil {
			doc.ControlPoint2 = &ControlPointDocument{Pt: xy(s.Handle2.Pos())}
		}
	}
	return doc
}

// ToJSON returns the segment's exported form. Segment times are absolute;
// pathStartTime only affects the times of sampled vertices, which live at
// the path level.
func (s *LineSegment) ToJSON(pathStartTime float64) SegmentDocument {
	return s.Document()
}

// Document returns the path's exported form.
func (p *BezierPath) Document() Document {
	vs := p.Vertices()
	segs := make([]SegmentDocument, 0, p.length)
	for seg := range p.Segments() {
		segs = append(segs, seg.Document())
	}
	sz := p.CanvasSize()
	return Document{
		StartTime:    p.StartTime,
		Vertices:     vs,
		VertexCount:  len(vs),
		Segments:     segs,
		SegmentCount: len(segs),
		Width:        sz.Width,
		Height:       sz.Height,
	}
}

// MarshalJSON implements json.Marshaler.
func (p *BezierPath) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Document())
}

// ParseJSON rebuilds a path from a document produced by MarshalJSON.
// Anchors, types, times and control points are restored; vertices are
// recomputed. The document's width and height become the canvas size unless
// opts override it. The document's start time always wins.
func ParseJSON(data []byte, opts ...PathOption) (*BezierPath, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding path document: %w", err)
	}
	return FromDocument(doc, opts...)
}

// FromDocument is like ParseJSON for an already decoded document.
func FromDocument(doc Document, opts ...PathOption) (*BezierPath, error) {
	if len(doc.Segments) == 0 {
		return nil, ErrEmptyPath
	}
	for i, sd := range doc.Segments {
		if !finite(sd.Point.X, sd.Point.Y, sd.Time) {
			Logger().Warn("rejecting path document", "segment", i)
			return nil, fmt.Errorf("segment %d: %w", i, ErrMalformedSegment)
		}
		for _, cp := range []*ControlPointDocument{sd.ControlPoint1, sd.ControlPoint2} {
			if cp != nil && !finite(cp.Pt.X, cp.Pt.Y) {
				Logger().Warn("rejecting path document", "segment", i)
				return nil, fmt.Errorf("segment %d control point: %w", i, ErrMalformedSegment)
			}
		}
	}

	var all []PathOption
	if doc.Width != 0 || doc.Height != 0 {
		all = append(all, WithCanvasSize(Sz(doc.Width, doc.Height)))
	}
	all = append(all, opts...)
	all = append(all, WithStartTime(doc.StartTime))

	first := doc.Segments[0]
	p := NewBezierPath(first.Point.point(), first.Type, all...)
	p.Head.Time = first.Time
	for _, sd := range doc.Segments[1:] {
		p.addSegment(sd.Point.point(), sd.Type, sd.Time)
	}

	// Handles are restored after all segments exist, as creating a smooth
	// segment rotates its predecessor's second handle.
	seg := p.Head.Next
	for _, sd := range doc.Segments[1:] {
		if sd.ControlPoint1 != nil {
			seg.Handle1.SetXY(sd.ControlPoint1.Pt.point())
		}
		if sd.ControlPoint2 != nil {
			seg.Handle2.SetXY(sd.ControlPoint2.Pt.point())
		}
		seg = seg.Next
	}
	return p, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// formatNum formats v the way a JavaScript number converts to a string, for
// the values that occur in paths.
func formatNum(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// jsRound rounds half up, unlike math.Round which rounds half away from
// zero.
func jsRound(v float64) string {
	return formatNum(math.Floor(v + 0.5))
}

// ToSVG returns a path element for the segment's curve. It reports false for
// a segment without predecessor.
func (s *LineSegment) ToSVG() (string, bool) {
	c, ok := s.Cubic()
	if !ok {
		return "", false
	}
	return fmt.Sprintf(`<path d="M%s %s C %s %s, %s %s, %s %s" stroke="black" fill="transparent"/>`,
		formatNum(c.P0.X), formatNum(c.P0.Y),
		formatNum(c.P1.X), formatNum(c.P1.Y),
		formatNum(c.P2.X), formatNum(c.P2.Y),
		formatNum(c.P3.X), formatNum(c.P3.Y)), true
}

// ToSVG returns an SVG document with one path element per curve.
func (p *BezierPath) ToSVG() string {
	sz := p.CanvasSize()
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%s" height="%s" xmlns="http://www.w3.org/2000/svg">`,
		formatNum(sz.Width), formatNum(sz.Height))
	sb.WriteByte('\n')
	for seg := range p.Segments() {
		if el, ok := seg.ToSVG(); ok {
			sb.WriteString(el)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// ToJSString returns the canvas call that draws the segment, with
// coordinates rounded to integers and offset by xoff and yoff.
func (s *LineSegment) ToJSString() string {
	c, ok := s.Cubic()
	if !ok {
		return "  ctx.moveTo(" + jsRound(s.Pt.X) + " + xoff, " + jsRound(s.Pt.Y) + " + yoff);"
	}
	return "  ctx.bezierCurveTo(" +
		jsRound(c.P1.X) + " + xoff, " +
		jsRound(c.P1.Y) + " + yoff, " +
		jsRound(c.P2.X) + " + xoff, " +
		jsRound(c.P2.Y) + " + yoff, " +
		jsRound(c.P3.X) + " + xoff, " +
		jsRound(c.P3.Y) + " + yoff);"
}

// ToJSString returns the source of a JavaScript function drawShape(ctx,
// xoff, yoff) that strokes the path on a canvas context.
func (p *BezierPath) ToJSString() string {
	lines := []string{
		"function drawShape(ctx, xoff, yoff) {",
		"  ctx.beginPath();",
	}
	for seg := range p.Segments() {
		lines = append(lines, seg.ToJSString())
	}
	lines = append(lines, "  ctx.stroke();", "}")
	return strings.Join(lines, "\n")
}
