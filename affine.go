package easing

// Affine is a 2D affine transform. The coefficients (a, b, c, d, e, f) map
// (x, y) to (a·x + c·y + e, b·x + d·y + f), i.e. the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// It is used to plot unit space onto pixels. (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY mirrors the y axis, turning the y-up unit space into y-down pixels.
var FlipY = Affine{N0: 1, N3: -1}

// Scale returns a transform that scales x by sx and y by sy.
func Scale(sx, sy float64) Affine {
	return Affine{N0: sx, N3: sy}
}

// Translate returns a transform that moves points by v.
func Translate(v Vec2) Affine {
	return Affine{N0: 1, N3: 1, N4: v.X, N5: v.Y}
}

// Mul returns the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns aff followed by Scale(sx, sy).
func (aff Affine) ThenScale(sx, sy float64) Affine {
	return Scale(sx, sy).Mul(aff)
}

// ThenTranslate returns aff followed by Translate(v).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	return Translate(v).Mul(aff)
}

// MapUnitCurve creates the transform that takes the y-up unit square of a
// timing function onto the given y-down pixel rectangle. Time 0 lands on the
// left edge, progress 0 on the bottom edge, and progress 1 on the top edge.
// Progress outside of [0, 1] lands outside of the rectangle.
//
// Mapping pixels back to unit space is done by the widget directly from the
// rectangle; see [Widget.ToUnit].
func MapUnitCurve(area Rect) Affine {
	bl := area.BottomLeft()
	return FlipY.
		ThenScale(area.Width(), area.Height()).
		ThenTranslate(Vec(bl.X, bl.Y))
}
