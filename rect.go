package easing

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in y-down pixel space. Hosts use it to
// describe the plot area that the unit square of a timing function is drawn
// into: time runs from X0 to X1, progress from Y1 (0) up to Y0 (1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by two opposite corners.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// NewRectFromOrigin returns the rectangle whose top left corner is origin.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, Pt(origin.X+size.Width, origin.Y+size.Height))
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X0, r.Y0, r.X1, r.Y1)
}

// BottomLeft returns the corner that unit (0, 0) is plotted at.
func (r Rect) BottomLeft() Point {
	return Pt(r.X0, r.Y1)
}

// Width returns X1 − X0. It is negative for rectangles that aren't normalized.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns Y1 − Y0. It is negative for rectangles that aren't
// normalized.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Sz(r.Width(), r.Height())
}

// Contains reports whether pt lies within r, edges included. An area with a
// NaN coordinate contains nothing.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X <= r.X1 &&
		pt.Y >= r.Y0 && pt.Y <= r.Y1
}

// UnionPoint returns the smallest rectangle containing both r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y1)
}

// unitAt maps a pixel position to the unit space of a timing function
// plotted into r:
//
//	time     = (x − X0) / width
//	progress = (Y1 − y) / height
//
// Each coordinate is rounded once, so a pixel at a whole percentage of a
// plot area lands on the matching decimal. The time coordinate is not
// clamped.
func (r Rect) unitAt(pt Point) Point {
	return Pt((pt.X-r.X0)/r.Width(), (r.Y1-pt.Y)/r.Height())
}

// Size is the pixel extent of a plot area.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsEmpty reports whether a plot area of this size can't be mapped back to
// unit space: either side is zero, negative, infinite or NaN.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0 && sz.Height > 0) ||
		math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}
