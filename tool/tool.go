// Package tool implements the pointer-driven editing modes of a Bézier path
// editor on top of package pathedit. It has no user interface of its own:
// the embedding application forwards pointer events, which carry screen
// coordinates and explicit modifiers, and renders the path with [Tool.Draw].
package tool

import (
	"encoding/json"
	"fmt"
	"image"
	"sync"
	"time"

	"go.jetify.com/typeid/v2"

	"honnef.co/go/pathedit"
	"honnef.co/go/pathedit/mask"
)

// PathPrefix is the typeid prefix of path identifiers.
const PathPrefix = "path"

func newPathID() string {
	return typeid.MustGenerate(PathPrefix).String()
}

// Mode is the interaction state of a [Tool].
type Mode int

const (
	// Adding appends a point on every click that does not hit an existing
	// one.
	Adding Mode = iota
	// Selecting picks points for dragging, deletion or type toggling.
	Selecting
	// Dragging moves the selected point until the pointer is released.
	Dragging
	// Removing deletes the point under the pointer.
	Removing
	// Drawing appends points while the pointer moves and simplifies the
	// result on release.
	Drawing
	// Panning moves the view while the pointer is held.
	Panning
	// Inserting splits the curve under the pointer.
	Inserting
)

func (m Mode) String() string {
	switch m {
	case Adding:
		return "Adding"
	case Selecting:
		return "Selecting"
	case Dragging:
		return "Dragging"
	case Removing:
		return "Removing"
	case Drawing:
		return "Drawing"
	case Panning:
		return "Panning"
	case Inserting:
		return "Inserting"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Tool translates pointer events into edits of a single path. It is safe for
// concurrent use; events are applied one at a time.
type Tool struct {
	mu sync.RWMutex

	opts     Options
	pathOpts []pathedit.PathOption
	view     *pathedit.View

	path   *pathedit.BezierPath
	pathID string
	mode   Mode

	lastDown    time.Time
	doubleClick bool
	pressed     bool
	lastScreen  pathedit.Point
}

// New returns a tool in Selecting mode without a path. pathOpts are passed to
// every path the tool creates, after the tool's own canvas size and segment
// options.
func New(opts Options, pathOpts ...pathedit.PathOption) *Tool {
	if opts.ZoomStep <= 1 {
		opts.ZoomStep = DefaultOptions().ZoomStep
	}
	return &Tool{
		opts:     opts,
		pathOpts: pathOpts,
		view:     pathedit.NewView(),
		mode:     Selecting,
	}
}

// Mode returns the current mode.
func (t *Tool) Mode() Mode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode
}

// SetMode switches modes, as a toolbar would.
func (t *Tool) SetMode(m Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setMode(m, "requested")
}

func (t *Tool) setMode(m Mode, reason string) {
	if t.mode == m {
		return
	}
	pathedit.Logger().Info("tool mode changed", "from", t.mode, "to", m, "reason", reason, "path", t.pathID)
	t.mode = m
}

// Path returns the edited path, or nil if there is none. The path must not
// be modified while events are being delivered.
func (t *Tool) Path() *pathedit.BezierPath {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.path
}

// PathID returns the identifier of the current path, or the empty string.
func (t *Tool) PathID() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pathID
}

// View returns the tool's pan/zoom view.
func (t *Tool) View() *pathedit.View {
	return t.view
}

// Options returns the tool's options.
func (t *Tool) Options() Options {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.opts
}

// SetSmoothSegments sets the joint type of subsequently created segments.
func (t *Tool) SetSmoothSegments(smooth bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.opts.SmoothSegments = smooth
}

func (t *Tool) hitOptions() pathedit.HitOptions {
	return pathedit.HitOptions{
		HideAnchorPoints:  t.opts.HideAnchorPoints,
		HideControlPoints: t.opts.HideControlPoints,
		Transformer:       t.view,
	}
}

func (t *Tool) newPath(pos pathedit.Point) {
	opts := append([]pathedit.PathOption{
		pathedit.WithCanvasSize(t.opts.canvas()),
		pathedit.WithSegmentOptions(t.opts.Segment),
	}, t.pathOpts...)
	t.path = pathedit.NewBezierPath(pos, t.opts.segmentType(), opts...)
	t.pathID = newPathID()
	pathedit.Logger().Info("path created", "path", t.pathID, "point", pos)
}

// Down handles a pointer press at the screen position screen. at is the time
// of the press and is used to detect double clicks.
func (t *Tool) Down(screen pathedit.Point, mods pathedit.Modifiers, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.doubleClick = !t.lastDown.IsZero() && at.Sub(t.lastDown) < t.opts.doubleClick()
	t.lastDown = at
	t.pressed = true
	t.lastScreen = screen
	pos := t.view.ToPath(screen)

	switch t.mode {
	case Adding:
		t.downAdd(pos, mods)
	case Selecting:
		t.downSelect(pos, mods)
	case Removing:
		t.downRemove(pos)
	case Drawing:
		t.downDraw(pos)
	case Inserting:
		t.downInsert(pos)
	}
}

func (t *Tool) downAdd(pos pathedit.Point, mods pathedit.Modifiers) {
	if t.path == nil {
		t.newPath(pos)
		return
	}
	if t.downSelect(pos, mods) {
		return
	}
	t.path.AddPoint(pos, t.opts.segmentType())
}

// downSelect reports whether a point was hit.
func (t *Tool) downSelect(pos pathedit.Point, mods pathedit.Modifiers) bool {
	if t.path == nil {
		t.setMode(Panning, "no path")
		return false
	}
	if !t.path.SelectPoint(pos, t.hitOptions()) {
		if t.mode == Selecting {
			t.path.DeselectSegments()
			t.setMode(Panning, "nothing selected")
		}
		return false
	}
	switch {
	case mods.Has(pathedit.ModAlt) || t.doubleClick:
		t.path.Selected.ToggleType()
		pathedit.Logger().Debug("segment type toggled", "path", t.pathID, "type", t.path.Selected.Type)
	case mods.Has(pathedit.ModX):
		t.deletePoint(pos)
	default:
		t.setMode(Dragging, "point selected")
	}
	return true
}

func (t *Tool) deletePoint(pos pathedit.Point) bool {
	if !t.path.DeletePoint(pos) {
		return false
	}
	if t.path.Len() == 0 {
		t.path = nil
		t.pathID = ""
	}
	return true
}

func (t *Tool) downRemove(pos pathedit.Point) {
	if t.path == nil {
		return
	}
	if !t.deletePoint(pos) {
		t.setMode(Selecting, "nothing to remove")
	}
}

func (t *Tool) downDraw(pos pathedit.Point) {
	if t.path == nil {
		t.newPath(pos)
		return
	}
	if !t.path.Tail.PathPointIntersects(pos, 0) {
		t.path.AddPoint(pos, t.opts.segmentType())
	}
}

func (t *Tool) downInsert(pos pathedit.Point) {
	if t.path == nil {
		return
	}
	if _, ok := t.path.InsertionCandidate(); !ok {
		if _, ok := t.path.FindNearestPointOnSegment(pos); !ok {
			return
		}
	}
	t.path.InsertPointOnSegment()
}

// Move handles pointer motion to the screen position screen.
func (t *Tool) Move(screen pathedit.Point, mods pathedit.Modifiers) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos := t.view.ToPath(screen)
	switch t.mode {
	case Dragging:
		if t.pressed && t.path != nil {
			t.path.UpdateSelected(pos, mods)
		}
	case Drawing:
		if t.pressed && t.path != nil && !t.path.Tail.PathPointIntersects(pos, t.opts.MinDrawSpacing) {
			t.path.AddPoint(pos, t.opts.segmentType())
		}
	case Panning:
		if t.pressed {
			t.view.Pan(t.lastScreen.OffsetFrom(screen))
		}
	case Inserting:
		if t.path != nil {
			t.path.FindNearestPointOnSegment(pos)
		}
	}
	t.lastScreen = screen
}

// Up handles a pointer release.
func (t *Tool) Up(screen pathedit.Point, mods pathedit.Modifiers) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pressed = false
	switch t.mode {
	case Dragging:
		if t.path != nil {
			t.path.ClearSelected()
		}
		t.setMode(Selecting, "drag finished")
	case Drawing:
		if t.path != nil {
			t.path.ClearSelected()
			t.path.SimplifyPath(t.opts.SimplifyTolerance)
		}
		t.setMode(Selecting, "drawing finished")
	case Panning:
		t.setMode(Selecting, "pan finished")
	}
	t.doubleClick = false
}

// Scroll zooms the view about the screen position screen: in for a positive
// delta, out for a negative one.
func (t *Tool) Scroll(screen pathedit.Point, delta float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case delta > 0:
		t.view.ZoomAt(screen, t.opts.ZoomStep)
	case delta < 0:
		t.view.ZoomAt(screen, 1/t.opts.ZoomStep)
	}
}

// RecalculateControlPoints straightens all handles of the path.
func (t *Tool) RecalculateControlPoints() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.path != nil {
		t.path.RecalculateControlPoints()
	}
}

// Clear discards the path and returns to Selecting.
func (t *Tool) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.path != nil {
		pathedit.Logger().Info("path cleared", "path", t.pathID)
	}
	t.path = nil
	t.pathID = ""
	t.setMode(Selecting, "cleared")
}

// Draw renders the path onto d, in path coordinates.
func (t *Tool) Draw(d pathedit.Drawer) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.path == nil {
		return
	}
	opts := pathedit.DrawOptions{
		HideAnchorPoints:  t.opts.HideAnchorPoints,
		HideControlPoints: t.opts.HideControlPoints,
		Transformer:       t.view,
	}
	if t.mode == Inserting {
		if ins, ok := t.path.InsertionCandidate(); ok {
			opts.SelectionPoint = &ins.Point
		}
	}
	t.path.Draw(d, opts)
}

// Snapshot is the JSON export of the tool's path, tagged with its
// identifier.
type Snapshot struct {
	ID string `json:"id"`
	pathedit.Document
}

// Snapshot exports the current path. It reports false if there is none.
func (t *Tool) Snapshot() (Snapshot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.path == nil {
		return Snapshot{}, false
	}
	return Snapshot{ID: t.pathID, Document: t.path.Document()}, true
}

// MarshalJSON implements json.Marshaler. A tool without path encodes as
// null.
func (t *Tool) MarshalJSON() ([]byte, error) {
	s, ok := t.Snapshot()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(s)
}

// Load replaces the path with one decoded from a JSON snapshot or path
// document. A missing or malformed id is replaced by a fresh one.
func (t *Tool) Load(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	p, err := pathedit.FromDocument(s.Document, t.pathOpts...)
	if err != nil {
		return err
	}
	id := s.ID
	if err := validatePathID(id); err != nil {
		if id != "" {
			pathedit.Logger().Warn("replacing invalid path id", "id", id, "error", err)
		}
		id = newPathID()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.path = p
	t.pathID = id
	t.setMode(Selecting, "loaded")
	return nil
}

func validatePathID(id string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != PathPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", PathPrefix, parsed.Prefix(), id)
	}
	return nil
}

// SVG returns the path as an SVG document. It reports false if there is no
// path.
func (t *Tool) SVG() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.path == nil {
		return "", false
	}
	return t.path.ToSVG(), true
}

// Mask returns the even-odd mask of the path at the canvas size.
func (t *Tool) Mask() *image.Alpha {
	t.mu.RLock()
	defer t.mu.RUnlock()
	w, h := int(t.opts.CanvasWidth), int(t.opts.CanvasHeight)
	if t.path == nil {
		return image.NewAlpha(image.Rect(0, 0, w, h))
	}
	return mask.EvenOdd(t.path, w, h)
}

// Cutout composites bg through the path's mask, see [mask.Composite].
func (t *Tool) Cutout(bg image.Image) *image.RGBA {
	return mask.Composite(bg, t.Mask())
}
