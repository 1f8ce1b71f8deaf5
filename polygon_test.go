package pathedit

import (
	"testing"
)

func TestIsInPolygon(t *testing.T) {
	tri := []Point{Pt(0, 0), Pt(10, 0), Pt(5, 10)}
	if !IsInPolygon(tri, Pt(5, 5)) {
		t.Error("(5, 5) not inside triangle")
	}
	if IsInPolygon(tri, Pt(-1, -1)) {
		t.Error("(-1, -1) inside triangle")
	}
	if IsInPolygon(tri[:2], Pt(5, 0)) {
		t.Error("a segment contains points")
	}
	if IsInPolygon(nil, Pt(0, 0)) {
		t.Error("empty polygon contains points")
	}
}

func TestIsInPolygonEvenOdd(t *testing.T) {
	// A pentagram: the center is covered twice and thus outside.
	star := []Point{Pt(50, 0), Pt(79, 90), Pt(2, 35), Pt(98, 35), Pt(21, 90)}
	if IsInPolygon(star, Pt(50, 50)) {
		t.Error("center of pentagram inside")
	}
	if !IsInPolygon(star, Pt(50, 10)) {
		t.Error("tip of pentagram outside")
	}
}

func TestPathPolygon(t *testing.T) {
	p := newTestPath(Corner, Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100))
	poly := p.Polygon()
	diff(t, 1+3*DefaultDivisions, len(poly))
	if !IsInPolygon(poly, Pt(50, 50)) {
		t.Error("center not inside path")
	}
	if IsInPolygon(poly, Pt(150, 50)) {
		t.Error("outside point inside path")
	}
}
