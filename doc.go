// Package pathedit implements the model of an interactive Bézier path editor:
// a path of cubic Bézier segments that a user builds by clicking or drawing
// freehand, and then refines by dragging anchors and control handles.
//
// # Segments and handles
//
// A [BezierPath] is a doubly linked list of [LineSegment]s. Every segment owns
// an [AnchorPoint], the point the curve passes through. A segment with a
// predecessor additionally owns two [ControlHandle]s and represents the cubic
// Bézier from the predecessor's anchor to its own.
//
// Control handles are stored in polar form, as an angle and a magnitude
// relative to an anchor. The first handle of a segment is measured from the
// previous anchor, the second from the segment's own anchor. Absolute handle
// positions are derived on every read, so dragging an anchor carries its
// handles along.
//
// The joint at an anchor is either [Smooth] or [Corner]. At a smooth joint,
// moving one handle rotates the handle on the other side of the anchor so
// that both stay collinear. At a corner joint, handles move independently,
// unless [ModMeta] is held.
//
// # Editing
//
// Hit-testing uses axis-aligned squares, see [Point.Contains]. A successful
// [BezierPath.SelectPoint] remembers the point that was hit so that
// [BezierPath.UpdateSelected] can drag it. Points can be deleted with
// [BezierPath.DeletePoint], and new points can be inserted on a curve without
// changing its shape using [BezierPath.FindNearestPointOnSegment] followed by
// [BezierPath.InsertPointOnSegment].
//
// Freehand input produces many closely spaced anchors. [BezierPath.SimplifyPath]
// thins them out by repeatedly removing anchors that span a small triangle
// with their neighbors.
//
// # Output
//
// Paths can be exported as JSON ([BezierPath.MarshalJSON], read back with
// [ParseJSON]), as SVG ([BezierPath.ToSVG]), as JavaScript canvas code
// ([BezierPath.ToJSString]) and as geom paths ([BezierPath.Outline]). The
// sampled outline used by all of these is available from
// [BezierPath.Vertices], and [IsInPolygon] tests points against it. Rendering
// onto a canvas-like surface is done by [BezierPath.Draw].
//
// The mask sub-package turns paths into bitmap masks, and the tool
// sub-package implements the pointer-driven editing modes on top of this
// package.
//
// # Coordinate system
//
// Coordinates are in a y-down system, as used by canvases and images. A [View]
// maps between path coordinates and screen coordinates for panning and
// zooming.
package pathedit
