package pathedit

import (
	"math"
)

// nearestSamples is the number of coarse samples taken by [CubicBez.Nearest]
// before refining.
const nearestSamples = 32

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Eval evaluates B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv evaluates the first derivative B'(t).
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// deriv2 evaluates the second derivative B''(t).
func (c CubicBez) deriv2(t float64) Vec2 {
	mt := 1.0 - t
	a := Vec2(c.P2).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P0)).Mul(6 * mt)
	b := Vec2(c.P3).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P1)).Mul(6 * t)
	return a.Add(b)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SubdivideAt(0.5)
}

// SubdivideAt splits the cubic at t using de Casteljau's algorithm. The
// first result covers [0, t], the second [t, 1]; they share the point B(t).
func (c CubicBez) SubdivideAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

// Nearest finds the parameter of the point on the curve closest to pt, and
// the squared distance to it.
//
// The curve is sampled uniformly and the best sample is refined with
// Newton's method on (B(t)−pt)·B'(t). Both end points are always considered.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	bestT := 0.0
	bestD := c.P0.DistanceSquared(pt)
	for i := 1; i <= nearestSamples; i++ {
		ti := float64(i) / nearestSamples
		if d := c.Eval(ti).DistanceSquared(pt); d < bestD {
			bestD, bestT = d, ti
		}
	}

	t = bestT
	for range 8 {
		d := c.Eval(t).Sub(pt)
		d1 := c.Deriv(t)
		num := d.Dot(d1)
		den := d1.Dot(d1) + d.Dot(c.deriv2(t))
		if den == 0 || math.IsNaN(den) {
			break
		}
		next := min(max(t-num/den, 0), 1)
		if math.Abs(next-t) < 1e-12 {
			t = next
			break
		}
		t = next
	}
	if d := c.Eval(t).DistanceSquared(pt); d < bestD {
		bestD, bestT = d, t
	}
	return bestD, bestT
}

// BoundingBox returns the bounding box of the control polygon, which
// contains the curve.
func (c CubicBez) BoundingBox() Rect {
	return NewRectFromPoints(c.P0, c.P1).
		Union(NewRectFromPoints(c.P2, c.P3))
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
