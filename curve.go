package easing

import (
	"fmt"
	"iter"
	"math"
)

// Coordinates is the flat form of a timing function's two control points:
// [P1.time, P1.progress, P2.time, P2.progress].
type Coordinates [4]float64

func (c Coordinates) P1() Point { return Pt(c[0], c[1]) }
func (c Coordinates) P2() Point { return Pt(c[2], c[3]) }

// String returns the canonical cubic-bezier() text. See [Format].
func (c Coordinates) String() string { return Format(c) }

// Curve is a cubic Bézier timing function. Its endpoints are fixed at (0, 0)
// and (1, 1); only the two interior control points vary.
//
// The time coordinates of a Curve's control points are always within [0, 1].
// Progress coordinates are unbounded, which allows curves that overshoot or
// undershoot.
//
// The zero value has both control points at the origin.
type Curve struct {
	p1 Point
	p2 Point
}

// NewCurve returns the curve described by exactly four finite coordinates, in
// the order of [Coordinates]. Time coordinates are clamped to [0, 1].
func NewCurve(values ...float64) (Curve, error) {
	return newCurve("NewCurve", values)
}

func newCurve(op string, values []float64) (Curve, error) {
	if len(values) != 4 {
		return Curve{}, &ValidationError{
			Op:     op,
			Reason: fmt.Sprintf("need exactly 4 coordinates, got %d", len(values)),
		}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Curve{}, &ValidationError{
				Op:     op,
				Reason: fmt.Sprintf("coordinate %d is not finite", i),
			}
		}
	}
	return Curve{
		p1: Pt(values[0], values[1]).ClampX(0, 1),
		p2: Pt(values[2], values[3]).ClampX(0, 1),
	}, nil
}

// CurveOf is like NewCurve but takes the array form.
func CurveOf(c Coordinates) (Curve, error) {
	return NewCurve(c[:]...)
}

func (c Curve) P1() Point { return c.p1 }
func (c Curve) P2() Point { return c.p2 }

func (c Curve) Coordinates() Coordinates {
	return Coordinates{c.p1.X, c.p1.Y, c.p2.X, c.p2.Y}
}

// WithP1 returns a copy of c with P1 replaced, clamping its time coordinate.
func (c Curve) WithP1(pt Point) Curve {
	c.p1 = pt.ClampX(0, 1)
	return c
}

// WithP2 returns a copy of c with P2 replaced, clamping its time coordinate.
func (c Curve) WithP2(pt Point) Curve {
	c.p2 = pt.ClampX(0, 1)
	return c
}

// String returns the canonical cubic-bezier() text.
func (c Curve) String() string {
	return Format(c.Coordinates())
}

// Cubic returns the full Bézier segment, including the fixed endpoints.
func (c Curve) Cubic() CubicBez {
	return CubicBez{
		P0: Pt(0, 0),
		P1: c.p1,
		P2: c.p2,
		P3: Pt(1, 1),
	}
}

// Progress evaluates the timing function at the given time, which is clamped
// to [0, 1].
func (c Curve) Progress(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	cb := c.Cubic()
	return cb.Eval(c.paramAt(x)).Y
}

// paramAt returns the Bézier parameter t at which the curve's time coordinate
// equals x. Because both control points have time coordinates in [0, 1], the
// time coordinate is monotonic in t and there is a single such t.
func (c Curve) paramAt(x float64) float64 {
	const epsilon = 1e-12
	x0, x1, x2, x3 := cubicBezCoefficients(0, c.p1.X, c.p2.X, 1)
	evalX := func(t float64) float64 {
		return x0 + t*(x1+t*(x2+t*x3)) - x
	}
	roots, n := SolveCubic(x0-x, x1, x2, x3)
	for _, t := range roots[:n] {
		if t < -epsilon || t > 1+epsilon {
			continue
		}
		t = min(max(t, 0), 1)
		if math.Abs(evalX(t)) <= DefaultAccuracy {
			return t
		}
	}
	// The closed form lost too much precision, which happens for nearly
	// degenerate control points.
	return solveITP(evalX, 0, 1, DefaultAccuracy, -x, 1-x)
}

// ProgressRange returns the smallest and largest progress the curve reaches.
// For curves that don't overshoot this is [0, 1].
func (c Curve) ProgressRange() (lo, hi float64) {
	bbox := c.Cubic().BoundingBox()
	return bbox.Y0, bbox.Y1
}

// Samples returns n+1 evenly spaced samples of the timing function, from time
// 0 to time 1 inclusive. Values of n below 1 are treated as 1.
func (c Curve) Samples(n int) iter.Seq[Point] {
	n = max(n, 1)
	return func(yield func(Point) bool) {
		for i := range n + 1 {
			x := float64(i) / float64(n)
			if !yield(Pt(x, c.Progress(x))) {
				return
			}
		}
	}
}

// PathElements returns the curve in unit space as drawing commands.
func (c Curve) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(0, 0))) &&
			yield(CubicTo(c.p1, c.p2, Pt(1, 1)))
	}
}

// HandleElements returns the two lines connecting the endpoints to their
// control points, in unit space.
func (c Curve) HandleElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(0, 0))) &&
			yield(LineTo(c.p1)) &&
			yield(MoveTo(Pt(1, 1))) &&
			yield(LineTo(c.p2))
	}
}

// SVGPath returns SVG path data for the curve plotted into area, a y-down
// pixel rectangle.
func (c Curve) SVGPath(area Rect, opts SVGOptions) string {
	return SVG(Transform(c.PathElements(), MapUnitCurve(area)), opts)
}
