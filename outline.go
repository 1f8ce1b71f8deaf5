package pathedit

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func toVec(pt Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}

// Outline returns the path as a geom path: a MoveTo at the head's anchor
// followed by one CubeTo per curve. The path is read lazily, so it must not
// be modified while the outline is being iterated.
func (p *BezierPath) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if p.Head == nil {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{toVec(p.Head.Pt.Point())}) {
			return
		}
		for c := range p.Cubics() {
			if !yield(path.CmdCubeTo, []vec.Vec2{toVec(c.P1), toVec(c.P2), toVec(c.P3)}) {
				return
			}
		}
	}
}

// PathData returns a snapshot of the path as geom path data. If closed is
// set, the outline is closed back to the head, as for filling.
func (p *BezierPath) PathData(closed bool) *path.Data {
	d := &path.Data{}
	if p.Head == nil {
		return d
	}
	d = d.MoveTo(toVec(p.Head.Pt.Point()))
	for c := range p.Cubics() {
		d = d.CubeTo(toVec(c.P1), toVec(c.P2), toVec(c.P3))
	}
	if closed {
		d = d.Close()
	}
	return d
}
