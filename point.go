package easing

import (
	"fmt"
	"math"
)

// Point is a position in either the unit space of a timing function or the
// pixel space of a host surface.
//
// In unit space, X is the time coordinate and Y the progress coordinate. In
// pixel space Y grows downwards.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pair returns the point as the two-element [time, progress] pair used in
// snapshots.
func (pt Point) Pair() [2]float64 {
	return [2]float64{pt.X, pt.Y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Pt(pt.X+v.X, pt.Y+v.Y)
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Pt(
		aff.N0*pt.X+aff.N2*pt.Y+aff.N4,
		aff.N1*pt.X+aff.N3*pt.Y+aff.N5,
	)
}

// Sub returns the displacement from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec(pt.X-o.X, pt.Y-o.Y)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared is like Distance but skips the square root, for
// comparisons.
func (pt Point) DistanceSquared(o Point) float64 {
	d := pt.Sub(o)
	return d.X*d.X + d.Y*d.Y
}

// ClampX returns a copy of pt with X clamped to [lo, hi]. Clamping a time
// coordinate this way keeps a timing function a function of time.
func (pt Point) ClampX(lo, hi float64) Point {
	pt.X = min(max(pt.X, lo), hi)
	return pt
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Vec2 is a displacement in pixel or unit space, such as a nudge step.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec(v.X*f, v.Y*f)
}
