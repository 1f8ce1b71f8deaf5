package pathedit

import (
	"fmt"
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := CubicBez{Pt(1, 2), Pt(5, -3), Pt(8, 9), Pt(10, 4)}
	diff(t, c.Start(), c.Eval(0))
	diff(t, c.End(), c.Eval(1))
}

func TestCubicBezSubdivideAt(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 30), Pt(40, -20), Pt(50, 10)}
	for _, ts := range []float64{0.1, 0.25, 0.5, 0.9} {
		t.Run(fmt.Sprint(ts), func(t *testing.T) {
			a, b := c.SubdivideAt(ts)
			diff(t, c.P0, a.P0)
			diff(t, c.P3, b.P3)
			diff(t, a.P3, b.P0)
			assertNear(t, a.P3, c.Eval(ts), 1e-9)
			for i := range 11 {
				u := float64(i) / 10
				assertNear(t, a.Eval(u), c.Eval(u*ts), 1e-9)
				assertNear(t, b.Eval(u), c.Eval(ts+u*(1-ts)), 1e-9)
			}
		})
	}
}

func TestCubicBezNearest(t *testing.T) {
	// A straight cubic along the x axis, parametrized uniformly.
	c := CubicBez{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)}
	d, ts := c.Nearest(Pt(12, 5))
	diff(t, 25.0, d, approx)
	diff(t, 0.4, ts, approx)

	// Beyond the end the end point is nearest.
	d, ts = c.Nearest(Pt(40, 0))
	diff(t, 100.0, d, approx)
	diff(t, 1.0, ts)

	c = CubicBez{Pt(0, 0), Pt(0, 40), Pt(60, 40), Pt(60, 0)}
	pt := Pt(25, 50)
	d, ts = c.Nearest(pt)
	for i := range 1001 {
		u := float64(i) / 1000
		if dd := c.Eval(u).DistanceSquared(pt); dd < d-1e-6 {
			t.Fatalf("sample at %g is closer (%g) than the result at %g (%g)", u, dd, ts, d)
		}
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 30), Pt(40, -20), Pt(50, 10)}
	bbox := c.BoundingBox()
	diff(t, Rect{0, -20, 50, 30}, bbox)
	for i := range 101 {
		p := c.Eval(float64(i) / 100)
		if p.X < bbox.X0 || p.X > bbox.X1 || p.Y < bbox.Y0 || p.Y > bbox.Y1 {
			t.Fatalf("%v lies outside of %v", p, bbox)
		}
	}
}

func TestCubicBezIsNaN(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	if c.IsNaN() {
		t.Error("finite curve reported as NaN")
	}
	c.P2.Y = math.NaN()
	if !c.IsNaN() {
		t.Error("NaN control point not reported")
	}
}
