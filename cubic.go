package easing

import (
	"sort"
)

// CubicBez is a cubic Bézier segment. A timing function is the special case
// with P0 = (0, 0) and P3 = (1, 1); see [Curve.Cubic].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval returns the point at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return Pt(
		b0*c.P0.X+b1*c.P1.X+b2*c.P2.X+b3*c.P3.X,
		b0*c.P0.Y+b1*c.P1.Y+b2*c.P2.Y+b3*c.P3.Y,
	)
}

// Extrema returns the parameters in (0, 1) at which either coordinate has a
// local extremum, in increasing order. There are at most two per coordinate.
func (c CubicBez) Extrema() []float64 {
	var out []float64
	// The derivative of each coordinate is a quadratic in t with the Bernstein
	// coefficients d0, d1, d2.
	roots := func(d0, d1, d2 float64) {
		rs, n := SolveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
		for _, t := range rs[:n] {
			if t > 0 && t < 1 {
				out = append(out, t)
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	roots(d0.X, d1.X, d2.X)
	roots(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out)
	return out
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// segment for t in [0, 1].
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// cubicBezCoefficients returns the power-basis coefficients of one
// coordinate of a cubic Bézier, in increasing degree.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (c0, c1, c2, c3 float64) {
	c0 = x0
	c1 = 3 * (x1 - x0)
	c2 = 3 * (x2 - 2*x1 + x0)
	c3 = x3 - 3*x2 + 3*x1 - x0
	return c0, c1, c2, c3
}
