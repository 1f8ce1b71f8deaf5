package pathedit

// IsInPolygon reports whether pt lies inside poly under the even-odd rule.
// The polygon is implicitly closed; fewer than three vertices contain
// nothing.
//
// A horizontal ray is cast from pt and every edge it crosses flips the
// result. The cost is linear in the number of vertices.
func IsInPolygon(poly []Point, pt Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	old := poly[len(poly)-1]
	for _, cur := range poly {
		p1, p2 := cur, old
		if cur.X > old.X {
			p1, p2 = old, cur
		}
		if (cur.X < pt.X) == (pt.X <= old.X) &&
			(pt.Y-p1.Y)*(p2.X-p1.X) < (p2.Y-p1.Y)*(pt.X-p1.X) {
			inside = !inside
		}
		old = cur
	}
	return inside
}
