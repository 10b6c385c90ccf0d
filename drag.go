package easing

import (
	"fmt"
)

// Handle identifies one of the two draggable control points.
type Handle int

const (
	HandleNone Handle = iota
	HandleP1
	HandleP2
)

func (h Handle) String() string {
	switch h {
	case HandleNone:
		return "none"
	case HandleP1:
		return "P1"
	case HandleP2:
		return "P2"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

// Direction is an arrow-key direction on the host surface.
type Direction int

const (
	Left Direction = iota + 1
	Right
	Up
	Down
)

// Nudge distances in pixels.
const (
	NudgeStep       = 3
	NudgeCoarseStep = 30
)

// pixel returns the y-down pixel displacement of one unit step.
func (d Direction) pixel() (Vec2, bool) {
	switch d {
	case Left:
		return Vec(-1, 0), true
	case Right:
		return Vec(1, 0), true
	case Up:
		return Vec(0, -1), true
	case Down:
		return Vec(0, 1), true
	default:
		return Vec2{}, false
	}
}

// plotArea returns the surface's plot area, or a ValidationError if it can't
// be mapped back to unit space.
func (w *Widget) plotArea(op string) (Rect, error) {
	area := w.surface.PlotArea()
	if area.IsNaN() || area.Size().IsEmpty() {
		return Rect{}, &ValidationError{Op: op, Reason: fmt.Sprintf("degenerate plot area %v", area)}
	}
	return area, nil
}

// ToUnit maps a pixel position on the surface to the curve's unit space:
// time = clamp((px − originX) / width, 0, 1) and progress = (originY − py) /
// height, with the origin at the bottom left corner of the plot area.
func (w *Widget) ToUnit(px, py float64) (Point, error) {
	const op = "ToUnit"
	if err := w.check(op); err != nil {
		return Point{}, err
	}
	area, err := w.plotArea(op)
	if err != nil {
		return Point{}, err
	}
	return area.unitAt(Pt(px, py)).ClampX(0, 1), nil
}

// ToPixel maps a point in unit space to a pixel position on the surface.
// Hosts use it to place the handles.
func (w *Widget) ToPixel(pt Point) (Point, error) {
	const op = "ToPixel"
	if err := w.check(op); err != nil {
		return Point{}, err
	}
	area, err := w.plotArea(op)
	if err != nil {
		return Point{}, err
	}
	return pt.Transform(MapUnitCurve(area)), nil
}

// InPlotArea reports whether a pixel position lies within the plot area,
// edges included. Hosts use it to tell clicks on the unit square apart from
// clicks in the margin around it, where ClickAt would pin the handle to the
// edge of the time axis.
func (w *Widget) InPlotArea(px, py float64) (bool, error) {
	const op = "InPlotArea"
	if err := w.check(op); err != nil {
		return false, err
	}
	area, err := w.plotArea(op)
	if err != nil {
		return false, err
	}
	return area.Contains(Pt(px, py)), nil
}

// handlePixels returns the pixel positions of P1 and P2.
func (w *Widget) handlePixels(op string) (p1, p2 Point, err error) {
	area, err := w.plotArea(op)
	if err != nil {
		return Point{}, Point{}, err
	}
	aff := MapUnitCurve(area)
	return w.curve.P1().Transform(aff), w.curve.P2().Transform(aff), nil
}

// HandleAt returns the handle within the hit radius of the pixel position.
// If both are, the nearer one wins; on a tie, P1.
func (w *Widget) HandleAt(px, py float64) (Handle, bool, error) {
	const op = "HandleAt"
	if err := w.check(op); err != nil {
		return HandleNone, false, err
	}
	p1, p2, err := w.handlePixels(op)
	if err != nil {
		return HandleNone, false, err
	}
	pt := Pt(px, py)
	d1, d2 := pt.Distance(p1), pt.Distance(p2)
	r := w.handleRadius
	switch {
	case d1 <= r && d1 <= d2:
		return HandleP1, true, nil
	case d2 <= r:
		return HandleP2, true, nil
	default:
		return HandleNone, false, nil
	}
}

// BeginDrag starts dragging h. Subsequent calls to DragTo move it.
func (w *Widget) BeginDrag(h Handle) error {
	const op = "BeginDrag"
	if err := w.check(op); err != nil {
		return err
	}
	if h != HandleP1 && h != HandleP2 {
		return &ValidationError{Op: op, Reason: fmt.Sprintf("invalid handle %v", h)}
	}
	w.drag = h
	return nil
}

// DragTo moves the handle being dragged to the given pixel position. The
// change goes through the same validation as SetCoordinates, but a step that
// results in the coordinates the widget already has doesn't emit.
func (w *Widget) DragTo(px, py float64) error {
	const op = "DragTo"
	if err := w.check(op); err != nil {
		return err
	}
	if w.drag == HandleNone {
		return &ValidationError{Op: op, Reason: "no drag in progress"}
	}
	return w.moveHandle(op, w.drag, Pt(px, py))
}

// EndDrag ends the current drag, if any.
func (w *Widget) EndDrag() error {
	if err := w.check("EndDrag"); err != nil {
		return err
	}
	w.drag = HandleNone
	return nil
}

// Dragging returns the handle currently being dragged, or HandleNone.
func (w *Widget) Dragging() (Handle, error) {
	if err := w.check("Dragging"); err != nil {
		return HandleNone, err
	}
	return w.drag, nil
}

// ClickAt moves whichever handle is nearer to the pixel position onto it.
func (w *Widget) ClickAt(px, py float64) error {
	const op = "ClickAt"
	if err := w.check(op); err != nil {
		return err
	}
	p1, p2, err := w.handlePixels(op)
	if err != nil {
		return err
	}
	pt := Pt(px, py)
	h := HandleP1
	if pt.DistanceSquared(p2) < pt.DistanceSquared(p1) {
		h = HandleP2
	}
	return w.moveHandle(op, h, pt)
}

// Nudge moves a handle by NudgeStep pixels in the given direction, or by
// NudgeCoarseStep pixels if coarse is set. Like DragTo, a nudge that doesn't
// change the coordinates, for example because the handle is already at the
// edge of the time axis, doesn't emit.
func (w *Widget) Nudge(h Handle, dir Direction, coarse bool) error {
	const op = "Nudge"
	if err := w.check(op); err != nil {
		return err
	}
	v, ok := dir.pixel()
	if !ok {
		return &ValidationError{Op: op, Reason: fmt.Sprintf("invalid direction %d", int(dir))}
	}
	p1, p2, err := w.handlePixels(op)
	if err != nil {
		return err
	}
	var from Point
	switch h {
	case HandleP1:
		from = p1
	case HandleP2:
		from = p2
	default:
		return &ValidationError{Op: op, Reason: fmt.Sprintf("invalid handle %v", h)}
	}
	step := float64(NudgeStep)
	if coarse {
		step = NudgeCoarseStep
	}
	return w.moveHandle(op, h, from.Translate(v.Mul(step)))
}

// moveHandle places h at the unit-space position of the pixel position pt.
func (w *Widget) moveHandle(op string, h Handle, pt Point) error {
	area, err := w.plotArea(op)
	if err != nil {
		return w.reject(op, err)
	}
	u := area.unitAt(pt)
	if u.IsNaN() || u.IsInf() {
		return w.reject(op, &ValidationError{Op: op, Reason: fmt.Sprintf("position %v is not finite", pt)})
	}
	var next Curve
	switch h {
	case HandleP1:
		next = w.curve.WithP1(u)
	case HandleP2:
		next = w.curve.WithP2(u)
	default:
		return &ValidationError{Op: op, Reason: fmt.Sprintf("invalid handle %v", h)}
	}
	if next == w.curve {
		return nil
	}
	w.commit(op, next)
	return nil
}
