package pathedit

import (
	"fmt"
	"math"
)

// DefaultHandleLength is the magnitude given to freshly computed control
// handles. It does not adapt to the length of the segment.
const DefaultHandleLength = 15

// ControlHandle is a control point stored in polar form relative to an
// anchor of its owning segment.
//
// The first handle of a segment is anchored at the previous segment's anchor,
// the second at the owner's own anchor. The absolute position is derived on
// every read and never cached, so moving an anchor moves its handles.
type ControlHandle struct {
	angle     float64
	magnitude float64
	owner     *LineSegment
	first     bool
	radius    float64
}

// NewControlHandle returns a handle of the given angle (in radians) and
// magnitude, owned by owner. A non-positive radius selects [DefaultRadius].
//
// A first handle has no origin while owner has no predecessor; callers must
// not ask for its position in that state.
func NewControlHandle(angle, magnitude float64, owner *LineSegment, first bool, radius float64) *ControlHandle {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &ControlHandle{
		angle:     angle,
		magnitude: magnitude,
		owner:     owner,
		first:     first,
		radius:    radius,
	}
}

func (h *ControlHandle) Angle() float64      { return h.angle }
func (h *ControlHandle) Magnitude() float64  { return h.magnitude }
func (h *ControlHandle) IsFirst() bool       { return h.first }
func (h *ControlHandle) Owner() *LineSegment { return h.owner }
func (h *ControlHandle) Radius() float64     { return h.radius }

// SetAngle sets the angle without touching the neighbor.
func (h *ControlHandle) SetAngle(angle float64) {
	h.angle = angle
}

// SetMagnitude sets the handle length.
func (h *ControlHandle) SetMagnitude(magnitude float64) {
	h.magnitude = magnitude
}

func (h *ControlHandle) setOwner(owner *LineSegment) {
	h.owner = owner
}

// Origin returns the anchor the handle is measured from. It reports false if
// the handle is detached or is a first handle whose owner has no predecessor.
func (h *ControlHandle) Origin() (Point, bool) {
	if h.owner == nil {
		return Point{}, false
	}
	seg := h.owner
	if h.first {
		seg = h.owner.Prev
	}
	if seg == nil || seg.Pt == nil {
		return Point{}, false
	}
	return seg.Pt.Point(), true
}

// Delta returns the Cartesian offset of the handle from its origin.
func (h *ControlHandle) Delta() Vec2 {
	return Vec2{
		X: h.magnitude * math.Cos(h.angle),
		Y: h.magnitude * math.Sin(h.angle),
	}
}

// Pos returns the absolute position of the handle. Without an origin the
// delta is measured from (0, 0).
func (h *ControlHandle) Pos() Point {
	o, _ := h.Origin()
	return o.Translate(h.Delta())
}

// SetXY recomputes the polar form so that the handle lies at pt.
func (h *ControlHandle) SetXY(pt Point) {
	o, ok := h.Origin()
	if !ok {
		return
	}
	h.setOffset(o.OffsetFrom(pt))
}

// setOffset derives magnitude and angle from a Cartesian offset. atan only
// covers half a turn, so π is added for offsets pointing left. When dx is
// zero the quotient may be NaN and the previous angle is kept.
func (h *ControlHandle) setOffset(d Vec2) {
	h.magnitude = math.Sqrt(d.X*d.X + d.Y*d.Y)
	if angle, ok := polarFromOffset(d); ok {
		h.angle = angle
	}
}

// polarFromOffset returns the angle of d as computed by atan(dy/dx), shifted
// by π when dx < 0. It reports false when the quotient is NaN.
func polarFromOffset(d Vec2) (float64, bool) {
	angle := math.Atan(d.Y / d.X)
	if math.IsNaN(angle) {
		return 0, false
	}
	if d.X < 0 {
		angle += math.Pi
	}
	return angle, true
}

// Translate moves the handle by d. If the joint the handle belongs to is
// smooth, or mods contains [ModMeta], the opposite handle across the anchor
// is rotated to stay collinear.
func (h *ControlHandle) Translate(d Vec2, mods Modifiers) {
	h.Move(d)
	if h.syncsNeighbor(mods) {
		h.UpdateNeighbor()
	}
}

// Move moves the handle by d without touching the neighbor.
func (h *ControlHandle) Move(d Vec2) {
	o, ok := h.Origin()
	if !ok {
		return
	}
	h.setOffset(o.OffsetFrom(h.Pos().Translate(d)))
}

func (h *ControlHandle) syncsNeighbor(mods Modifiers) bool {
	if mods.Has(ModMeta) {
		return true
	}
	if h.owner == nil {
		return false
	}
	if h.first {
		return h.owner.Prev != nil && h.owner.Prev.Type == Smooth
	}
	return h.owner.Type == Smooth
}

// Neighbor returns the handle on the other side of the shared anchor, if any.
func (h *ControlHandle) Neighbor() *ControlHandle {
	if h.owner == nil {
		return nil
	}
	if h.first {
		if h.owner.Prev != nil {
			return h.owner.Prev.Handle2
		}
		return nil
	}
	if h.owner.Next != nil {
		return h.owner.Next.Handle1
	}
	return nil
}

// UpdateNeighbor points the neighbor handle in the opposite direction. Its
// magnitude is left alone; only collinearity is enforced.
func (h *ControlHandle) UpdateNeighbor() {
	if n := h.Neighbor(); n != nil {
		n.SetAngle(h.angle + math.Pi)
	}
}

// SelectRadius returns the half-width of the handle's hit square.
func (h *ControlHandle) SelectRadius() float64 {
	return h.radius + selectPadding
}

// Contains reports whether pos hits the handle. A non-positive radius selects
// the select radius.
func (h *ControlHandle) Contains(pos Point, radius float64) bool {
	if _, ok := h.Origin(); !ok {
		return false
	}
	if radius <= 0 {
		radius = h.SelectRadius()
	}
	return h.Pos().Contains(pos, radius)
}

// OffsetFrom returns the vector from the handle to pos.
func (h *ControlHandle) OffsetFrom(pos Point) Vec2 {
	return h.Pos().OffsetFrom(pos)
}

// Dispose detaches the handle from its owner.
func (h *ControlHandle) Dispose() {
	h.owner = nil
}

func (h *ControlHandle) pos() Point { return h.Pos() }

func (h *ControlHandle) translate(d Vec2, mods Modifiers) { h.Translate(d, mods) }

func (h *ControlHandle) String() string {
	return fmt.Sprintf("handle(θ=%g, r=%g)", h.angle, h.magnitude)
}
