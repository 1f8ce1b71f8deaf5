package pathedit

import (
	"fmt"
	"math"
)

// DefaultRadius is the drawn radius of anchor and control points.
const DefaultRadius = 3

// selectPadding is added to a point's radius to obtain its select radius.
const selectPadding = 2

// Point is a location in path space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// OffsetFrom returns the vector from pt to o.
func (pt Point) OffsetFrom(o Point) Vec2 {
	return o.Sub(pt)
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Slope returns the slope of the line through pt and o, (o.y−pt.y)/(o.x−pt.x).
//
// Vertical lines produce ±Inf and coincident points produce NaN.
func (pt Point) Slope(o Point) float64 {
	return (o.Y - pt.Y) / (o.X - pt.X)
}

// Contains reports whether o lies within the axis-aligned square of
// half-width radius centered on pt. Edges are inclusive. The test is square
// even for points drawn as circles.
func (pt Point) Contains(o Point, radius float64) bool {
	xInRange := o.X >= pt.X-radius && o.X <= pt.X+radius
	yInRange := o.Y >= pt.Y-radius && o.Y <= pt.Y+radius
	return xInRange && yInRange
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// PointShape selects how a marker is drawn.
type PointShape int

const (
	ShapeSquare PointShape = iota
	ShapeCircle
)

func (s PointShape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("PointShape(%d)", int(s))
	}
}

// AnchorPoint is a path vertex. Unlike [Point] it is mutable and carries the
// metadata needed to draw and hit-test it.
type AnchorPoint struct {
	X, Y   float64
	Radius float64
	Shape  PointShape
	Color  string
}

// NewAnchorPoint returns an anchor at pt. A non-positive radius selects
// [DefaultRadius].
func NewAnchorPoint(pt Point, radius float64) *AnchorPoint {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &AnchorPoint{X: pt.X, Y: pt.Y, Radius: radius}
}

// Point returns the anchor's current location.
func (a *AnchorPoint) Point() Point {
	return Point{X: a.X, Y: a.Y}
}

// SelectRadius returns the half-width of the hit square, which is slightly
// larger than the drawn radius.
func (a *AnchorPoint) SelectRadius() float64 {
	return a.Radius + selectPadding
}

// Contains reports whether pos hits the anchor, using the select radius.
func (a *AnchorPoint) Contains(pos Point) bool {
	return a.ContainsWithin(pos, 0)
}

// ContainsWithin is like Contains but with an explicit radius. A
// non-positive radius selects the select radius.
func (a *AnchorPoint) ContainsWithin(pos Point, radius float64) bool {
	if radius <= 0 {
		radius = a.SelectRadius()
	}
	return a.Point().Contains(pos, radius)
}

// OffsetFrom returns the vector from the anchor to pos.
func (a *AnchorPoint) OffsetFrom(pos Point) Vec2 {
	return a.Point().OffsetFrom(pos)
}

// Set moves the anchor to (x, y).
func (a *AnchorPoint) Set(x, y float64) {
	a.X = x
	a.Y = y
}

// Translate moves the anchor by (dx, dy).
func (a *AnchorPoint) Translate(dx, dy float64) {
	a.X += dx
	a.Y += dy
}

func (a *AnchorPoint) pos() Point { return a.Point() }

func (a *AnchorPoint) translate(d Vec2, _ Modifiers) { a.Translate(d.X, d.Y) }

func (a *AnchorPoint) String() string {
	return a.Point().String()
}
