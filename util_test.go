package pathedit

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// fixedClock returns a clock that advances by one second on every call,
// starting at start.
func fixedClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

// newTestPath builds a path through pts, with timestamps one second apart
// starting at 1000 ms.
func newTestPath(typ SegmentType, pts ...Point) *BezierPath {
	start := time.UnixMilli(0)
	p := NewBezierPath(pts[0], typ, WithStartTime(0), WithClock(fixedClock(start)))
	for _, pt := range pts[1:] {
		p.AddPoint(pt, typ)
	}
	return p
}

func anchors(p *BezierPath) []Point {
	var out []Point
	for seg := range p.Segments() {
		out = append(out, seg.Pt.Point())
	}
	return out
}

// checkLinks verifies that the path's pointers are consistent.
func checkLinks(t *testing.T, p *BezierPath) {
	t.Helper()
	if p.Head == nil {
		if p.Tail != nil || p.Len() != 0 {
			t.Fatalf("empty path has tail %v and length %d", p.Tail, p.Len())
		}
		return
	}
	if p.Head.Prev != nil {
		t.Fatal("head has a predecessor")
	}
	if p.Head.Handle1 != nil || p.Head.Handle2 != nil {
		t.Fatal("head has handles")
	}
	n := 0
	var last *LineSegment
	for seg := p.Head; seg != nil; seg = seg.Next {
		n++
		if seg.Prev != last {
			t.Fatalf("segment %d has wrong predecessor", n)
		}
		if seg.Prev != nil {
			if seg.Handle1 == nil || seg.Handle2 == nil {
				t.Fatalf("segment %d lacks handles", n)
			}
			if seg.Handle1.Owner() != seg || seg.Handle2.Owner() != seg {
				t.Fatalf("segment %d has foreign handles", n)
			}
		}
		last = seg
	}
	if last != p.Tail {
		t.Fatal("tail is not the last segment")
	}
	if n != p.Len() {
		t.Fatalf("counted %d segments, length is %d", n, p.Len())
	}
}
