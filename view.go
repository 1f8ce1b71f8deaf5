package pathedit

// Transformer reports the zoom of the view a position was picked in. Hit
// tolerances are divided by it so that they stay constant on screen.
type Transformer interface {
	Scale() float64
}

// minZoom and maxZoom bound the scale a View can reach.
const (
	minZoom = 1.0 / 64
	maxZoom = 64
)

// View is a pan/zoom transform from path space to screen space.
//
// The zero value is not usable; use [NewView].
type View struct {
	aff Affine
}

// NewView returns the identity view.
func NewView() *View {
	return &View{aff: Identity}
}

// Affine returns the path-to-screen transform.
func (v *View) Affine() Affine {
	return v.aff
}

// Scale implements [Transformer].
func (v *View) Scale() float64 {
	return v.aff.ScaleFactor()
}

// Pan moves the view by a screen-space delta.
func (v *View) Pan(d Vec2) {
	v.aff = v.aff.ThenTranslate(d)
}

// ZoomAt scales the view by factor while keeping the screen point center
// fixed. The resulting scale is clamped to a sane range.
func (v *View) ZoomAt(center Point, factor float64) {
	if factor <= 0 {
		return
	}
	cur := v.Scale()
	next := min(max(cur*factor, minZoom), maxZoom)
	factor = next / cur
	c := Vec2(center)
	v.aff = v.aff.ThenTranslate(c.Negate()).ThenScale(factor, factor).ThenTranslate(c)
}

// Reset restores the identity view.
func (v *View) Reset() {
	v.aff = Identity
}

// ToScreen maps a path-space point to the screen.
func (v *View) ToScreen(pt Point) Point {
	return pt.Transform(v.aff)
}

// ToPath maps a screen point into path space.
func (v *View) ToPath(pt Point) Point {
	return pt.Transform(v.aff.Invert())
}
