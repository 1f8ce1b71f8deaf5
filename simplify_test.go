package pathedit

import (
	"testing"
)

func TestTriangleArea(t *testing.T) {
	diff(t, 50.0, TriangleArea(Pt(0, 0), Pt(0, 10), Pt(10, 10)))
	// Orientation does not matter.
	diff(t, 50.0, TriangleArea(Pt(10, 10), Pt(0, 10), Pt(0, 0)))
	diff(t, 0.0, TriangleArea(Pt(0, 0), Pt(5, 5), Pt(10, 10)))

	p := newTestPath(Corner, Pt(0, 0), Pt(0, 10), Pt(10, 10))
	diff(t, 50.0, p.TriangleArea(p.Head, p.Head.Next, p.Tail))
}

func TestSimplifyCollinear(t *testing.T) {
	p := newTestPath(Corner, Pt(0, 0), Pt(10, 0), Pt(20, 0))
	if !p.SimplifyPath(1e9) {
		t.Fatal("SimplifyPath reported false")
	}
	diff(t, []Point{Pt(0, 0), Pt(20, 0)}, anchors(p))
	checkLinks(t, p)
}

func TestSimplifyShortPath(t *testing.T) {
	p := newTestPath(Corner, Pt(0, 0), Pt(10, 0))
	if p.SimplifyPath(1e9) {
		t.Error("SimplifyPath of two segments reported true")
	}
	diff(t, 2, p.Len())
}

func TestSimplifyKeepsLargeTriangles(t *testing.T) {
	p := newTestPath(Corner, Pt(0, 0), Pt(10, 50), Pt(20, 0), Pt(21, 1), Pt(30, 0))
	p.SimplifyPath(10)
	// (21, 1) spans a triangle of area 5 and goes; the peak stays.
	diff(t, []Point{Pt(0, 0), Pt(10, 50), Pt(20, 0), Pt(30, 0)}, anchors(p))
	checkLinks(t, p)
}

func TestSimplifyFirstQualifyingOrder(t *testing.T) {
	// Both interior points qualify on their own. Deleting left to right
	// removes (10, 1) first; (20, 0) then spans (0,0)–(20,0)–(30,0), which is
	// collinear, and goes too.
	p := newTestPath(Corner, Pt(0, 0), Pt(10, 1), Pt(20, 0), Pt(30, 0))
	p.SimplifyPath(20)
	diff(t, []Point{Pt(0, 0), Pt(30, 0)}, anchors(p))
	checkLinks(t, p)
}

func TestSimplifyRepeatsPasses(t *testing.T) {
	// (90, 0) spans an area of 90 with its original neighbors and survives
	// the first pass, which removes (95, 2). The second pass sees it on the
	// line from (0, 0) to (100, 0).
	p := newTestPath(Corner, Pt(0, 0), Pt(90, 0), Pt(95, 2), Pt(100, 0))
	p.SimplifyPath(50)
	diff(t, []Point{Pt(0, 0), Pt(100, 0)}, anchors(p))
	checkLinks(t, p)
}

func TestSimplifySmallTolerance(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 8), Pt(20, 3), Pt(30, 10), Pt(40, 0)}
	p := newTestPath(Corner, pts...)
	p.SimplifyPath(1)
	diff(t, pts, anchors(p))

	p.SimplifyPath(1e9)
	diff(t, []Point{Pt(0, 0), Pt(40, 0)}, anchors(p))
	checkLinks(t, p)
}
