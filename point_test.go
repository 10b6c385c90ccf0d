package easing

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(-3, -4), Pt(1, 2).Sub(Pt(4, 6)))
	diff(t, Vec(-6, 1), Vec(-3, 0.5).Mul(2))
	diff(t, [2]float64{0.25, 0.1}, Pt(0.25, 0.1).Pair())
	diff(t, "(0.25, 0.1)", Pt(0.25, 0.1).String())
	diff(t, "⟨3, 4⟩", Vec(3, 4).String())
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointClampX(t *testing.T) {
	tests := []struct {
		in, want Point
	}{
		{Pt(-0.5, 3), Pt(0, 3)},
		{Pt(1.5, -3), Pt(1, -3)},
		{Pt(0.25, 0.5), Pt(0.25, 0.5)},
		{Pt(0, 0), Pt(0, 0)},
		{Pt(1, 1), Pt(1, 1)},
	}
	for _, tt := range tests {
		if got := tt.in.ClampX(0, 1); got != tt.want {
			t.Errorf("%v.ClampX(0, 1) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPointNonFinite(t *testing.T) {
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("expected NaN")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("expected Inf")
	}
	if p := Pt(1, 2); p.IsNaN() || p.IsInf() {
		t.Errorf("%v reported as non-finite", p)
	}
}
