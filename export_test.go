package pathedit

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

// straightPath returns a path from (0, 0) to (100.25, 0) whose handles both
// point right, so that every exported coordinate is exact.
func straightPath() *BezierPath {
	p := NewBezierPath(Pt(0, 0), Corner,
		WithStartTime(0),
		WithClock(fixedClock(time.UnixMilli(0))),
		WithCanvasSize(Sz(375, 375)))
	seg := p.AddPoint(Pt(100.25, 0), Corner)
	seg.Handle1.SetXY(Pt(20, 0))
	seg.Handle2.SetXY(Pt(110.25, 0))
	return p
}

func TestMarshalSinglePoint(t *testing.T) {
	p := NewBezierPath(Pt(1, 2), Smooth, WithStartTime(500), WithClock(fixedClock(time.UnixMilli(0))))
	got, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"startTime":500,"vertices":[{"x":1,"y":2,"t":500}],"vertexCount":1,` +
		`"segments":[{"point":{"x":1,"y":2},"type":"SMOOTH","time":1000}],"segmentCount":1,` +
		`"width":1,"height":2,"originX":0,"originY":0}`
	diff(t, want, string(got))
}

func TestMarshalEmptyPath(t *testing.T) {
	p := NewBezierPath(Pt(1, 2), Smooth, WithStartTime(0))
	p.DeleteLineSegment(p.Head)
	got, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"startTime":0,"vertices":[],"vertexCount":0,"segments":[],"segmentCount":0,` +
		`"width":0,"height":0,"originX":0,"originY":0}`
	diff(t, want, string(got))
}

func TestSegmentDocument(t *testing.T) {
	p := straightPath()
	if doc := p.Head.Document(); doc.ControlPoint1 != nil || doc.ControlPoint2 != nil {
		t.Error("head exported control points")
	}
	want := SegmentDocument{
		Point:         XY{100.25, 0},
		Type:          Corner,
		Time:          2000,
		ControlPoint1: &ControlPointDocument{Pt: XY{20, 0}},
		ControlPoint2: &ControlPointDocument{Pt: XY{110.25, 0}},
	}
	diff(t, want, p.Tail.Document())
	diff(t, want, p.Tail.ToJSON(p.StartTime))
}

func TestDocumentCounts(t *testing.T) {
	p := newTestPath(Corner, Pt(0, 0), Pt(10, 0), Pt(20, 10))
	doc := p.Document()
	diff(t, 3, doc.SegmentCount)
	diff(t, 21, doc.VertexCount)
	diff(t, len(doc.Vertices), doc.VertexCount)
	diff(t, len(doc.Segments), doc.SegmentCount)
}

func TestToSVG(t *testing.T) {
	p := straightPath()
	if _, ok := p.Head.ToSVG(); ok {
		t.Error("head produced a path element")
	}
	want := `<svg width="375" height="375" xmlns="http://www.w3.org/2000/svg">` + "\n" +
		`<path d="M0 0 C 20 0, 110.25 0, 100.25 0" stroke="black" fill="transparent"/>` + "\n" +
		`</svg>`
	diff(t, want, p.ToSVG())
}

func TestToJSString(t *testing.T) {
	p := straightPath()
	want := strings.Join([]string{
		"function drawShape(ctx, xoff, yoff) {",
		"  ctx.beginPath();",
		"  ctx.moveTo(0 + xoff, 0 + yoff);",
		"  ctx.bezierCurveTo(20 + xoff, 0 + yoff, 110 + xoff, 0 + yoff, 100 + xoff, 0 + yoff);",
		"  ctx.stroke();",
		"}",
	}, "\n")
	diff(t, want, p.ToJSString())
}

func TestJSRound(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{2.5, "3"},
		{2.49, "2"},
		{-2.5, "-2"},
		{-2.51, "-3"},
		{-0.4, "0"},
		{1e6 + 0.5, "1000001"},
	}
	for _, tt := range tests {
		if got := jsRound(tt.in); got != tt.want {
			t.Errorf("jsRound(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseJSONRoundTrip(t *testing.T) {
	p := newTestPath(Smooth, Pt(0, 0), Pt(50, 20), Pt(100, 0), Pt(120, 60))
	p.Head.Next.Handle1.SetXY(Pt(10, 30))
	p.Tail.Handle2.SetXY(Pt(140, 40))
	p.Tail.Type = Corner

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	q, err := ParseJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	checkLinks(t, q)
	diff(t, p.Document(), q.Document(), approx)
	diff(t, p.CanvasSize(), q.CanvasSize())
}

func TestParseJSONOptions(t *testing.T) {
	data, err := json.Marshal(newTestPath(Corner, Pt(0, 0), Pt(10, 10)))
	if err != nil {
		t.Fatal(err)
	}
	q, err := ParseJSON(data, WithCanvasSize(Sz(40, 30)), WithStartTime(7))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Sz(40, 30), q.CanvasSize())
	diff(t, 0.0, q.StartTime)
	diff(t, []float64{1000, 2000}, []float64{q.Head.Time, q.Tail.Time})
}

func TestParseJSONErrors(t *testing.T) {
	if _, err := ParseJSON([]byte(`{"segments":[]}`)); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got error %v, want ErrEmptyPath", err)
	}
	if _, err := ParseJSON([]byte(`{`)); err == nil || errors.Is(err, ErrEmptyPath) {
		t.Errorf("got error %v for truncated input", err)
	}
	if _, err := ParseJSON([]byte(`{"segments":[{"point":{"x":0,"y":0},"type":"ROUND"}]}`)); err == nil {
		t.Error("accepted unknown segment type")
	}

	doc := Document{Segments: []SegmentDocument{
		{Point: XY{0, 0}},
		{Point: XY{math.NaN(), 0}},
	}}
	_, err := FromDocument(doc)
	if !errors.Is(err, ErrMalformedSegment) {
		t.Errorf("got error %v, want ErrMalformedSegment", err)
	}
	doc.Segments[1] = SegmentDocument{
		Point:         XY{1, 1},
		ControlPoint1: &ControlPointDocument{Pt: XY{math.Inf(1), 0}},
	}
	if _, err := FromDocument(doc); !errors.Is(err, ErrMalformedSegment) {
		t.Errorf("got error %v, want ErrMalformedSegment", err)
	}
}
