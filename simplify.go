package pathedit

import "math"

// minSimplifiedLen is the number of segments simplification never goes
// below: the end points are never removed.
const minSimplifiedLen = 2

// TriangleArea returns the area of the triangle abc, using the shoelace
// formula.
func TriangleArea(a, b, c Point) float64 {
	return math.Abs(
		(a.X*(b.Y-c.Y) +
			b.X*(c.Y-a.Y) +
			c.X*(a.Y-b.Y)) / 2)
}

// TriangleArea returns the area of the triangle formed by the anchors of
// three segments.
func (p *BezierPath) TriangleArea(a, b, c *LineSegment) float64 {
	return TriangleArea(a.Pt.Point(), b.Pt.Point(), c.Pt.Point())
}

// SimplifyPath removes anchors whose triangle with their two neighbors has
// an area below minTriangleArea, in the manner of Visvalingam–Whyatt.
//
// Each pass walks the interior segments from head to tail and deletes a
// segment as soon as its own triangle qualifies; the next triangle is then
// formed with the surviving left neighbor. Passes repeat until one deletes
// nothing. Head and tail are kept. Paths with fewer than three segments are
// left alone and SimplifyPath reports false.
func (p *BezierPath) SimplifyPath(minTriangleArea float64) bool {
	if p.length < 3 {
		return false
	}
	before := p.length
	for {
		deleted := false
		for cur := p.Head.Next; cur != nil && cur != p.Tail; {
			next := cur.Next
			if p.length <= minSimplifiedLen {
				break
			}
			if p.TriangleArea(cur.Prev, cur, cur.Next) < minTriangleArea {
				p.DeleteLineSegment(cur)
				deleted = true
			}
			cur = next
		}
		if !deleted || p.length <= minSimplifiedLen {
			break
		}
	}
	Logger().Debug("path simplified", "tolerance", minTriangleArea, "before", before, "after", p.length)
	return true
}
