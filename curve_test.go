package easing

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewCurve(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want Coordinates
		err  bool
	}{
		{"ease", []float64{0.25, 0.1, 0.25, 1}, Coordinates{0.25, 0.1, 0.25, 1}, false},
		{"overshoot", []float64{0.68, -0.55, 0.265, 1.55}, Coordinates{0.68, -0.55, 0.265, 1.55}, false},
		{"clamped time", []float64{-0.5, 0.2, 1.5, 0.8}, Coordinates{0, 0.2, 1, 0.8}, false},
		{"too few", []float64{0, 0, 1}, Coordinates{}, true},
		{"too many", []float64{0, 0, 1, 1, 1}, Coordinates{}, true},
		{"none", nil, Coordinates{}, true},
		{"NaN", []float64{0, math.NaN(), 1, 1}, Coordinates{}, true},
		{"Inf", []float64{0, 0, 1, math.Inf(1)}, Coordinates{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCurve(tt.in...)
			if tt.err {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("got error %v, want *ValidationError", err)
				}
				if verr.Op != "NewCurve" {
					t.Errorf("got op %q, want %q", verr.Op, "NewCurve")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			diff(t, tt.want, c.Coordinates())
		})
	}
}

func TestCurveWithHandles(t *testing.T) {
	c, err := CurveOf(Coordinates{0.25, 0.1, 0.25, 1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Coordinates{1, 2, 0.25, 1}, c.WithP1(Pt(3, 2)).Coordinates())
	diff(t, Coordinates{0.25, 0.1, 0, -2}, c.WithP2(Pt(-3, -2)).Coordinates())
	// c itself is unchanged.
	diff(t, Coordinates{0.25, 0.1, 0.25, 1}, c.Coordinates())
	if got, want := c.String(), "cubic-bezier(0.25, 0.1, 0.25, 1)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCurveProgressLinear(t *testing.T) {
	c, _ := NewCurve(0, 0, 1, 1)
	for x := range c.Samples(20) {
		if d := math.Abs(x.Y - x.X); d > 1e-9 {
			t.Errorf("linear progress at %g = %g", x.X, x.Y)
		}
	}
}

func TestCurveProgress(t *testing.T) {
	ease := mustPreset(t, "ease").Curve()
	if got, want := ease.Progress(0.5), 0.8024033877399112; math.Abs(got-want) > 1e-6 {
		t.Errorf("ease(0.5) = %v, want %v", got, want)
	}

	// Point-symmetric curves pass through (0.5, 0.5).
	symmetric, _ := NewCurve(0.3, 0.1, 0.7, 0.9)
	for _, c := range []Curve{mustPreset(t, "ease-in-out").Curve(), symmetric} {
		if got := c.Progress(0.5); math.Abs(got-0.5) > 1e-9 {
			t.Errorf("%s at 0.5 = %v, want 0.5", c, got)
		}
	}

	// The time axis of ease-in-out-expo has a stationary point at 0.5, which
	// makes the progress there poorly conditioned.
	expo := mustPreset(t, "ease-in-out-expo").Curve()
	if got := expo.Progress(0.5); math.Abs(got-0.5) > 1e-3 {
		t.Errorf("ease-in-out-expo(0.5) = %v, want 0.5", got)
	}

	for _, x := range []float64{-1, 0} {
		if got := ease.Progress(x); got != 0 {
			t.Errorf("ease(%g) = %v, want 0", x, got)
		}
	}
	for _, x := range []float64{1, 2} {
		if got := ease.Progress(x); got != 1 {
			t.Errorf("ease(%g) = %v, want 1", x, got)
		}
	}
	if got := ease.Progress(math.NaN()); !math.IsNaN(got) {
		t.Errorf("ease(NaN) = %v, want NaN", got)
	}
}

func TestCurveProgressMonotonic(t *testing.T) {
	for p := range DefaultLibrary.All() {
		lo, hi := p.Curve().ProgressRange()
		if lo < 0 || hi > 1 {
			continue
		}
		t.Run(p.Name, func(t *testing.T) {
			c := p.Curve()
			samples := slices.Collect(c.Samples(100))
			if len(samples) != 101 {
				t.Fatalf("got %d samples, want 101", len(samples))
			}
			for i := 1; i < len(samples); i++ {
				if samples[i].Y < samples[i-1].Y-1e-12 {
					t.Errorf("progress decreases between %v and %v", samples[i-1], samples[i])
				}
			}
		})
	}
}

func TestCurveProgressRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"ease", 0, 1},
		{"linear", 0, 1},
	}
	for _, tt := range tests {
		lo, hi := mustPreset(t, tt.name).Curve().ProgressRange()
		diff(t, [2]float64{tt.lo, tt.hi}, [2]float64{lo, hi}, cmpopts.EquateApprox(0, 1e-12))
	}

	lo, hi := mustPreset(t, "ease-in-out-back").Curve().ProgressRange()
	if !(lo < 0) || !(hi > 1) {
		t.Errorf("ease-in-out-back range is [%g, %g], expected it to overshoot on both ends", lo, hi)
	}
	lo, hi = mustPreset(t, "ease-out-back").Curve().ProgressRange()
	if lo != 0 || !(hi > 1) {
		t.Errorf("ease-out-back range is [%g, %g], expected it to overshoot at the top only", lo, hi)
	}
}

func TestCurveSamples(t *testing.T) {
	c, _ := NewCurve(0, 0, 1, 1)
	got := slices.Collect(c.Samples(0))
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, got)

	var n int
	for range c.Samples(10) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iteration didn't stop, got %d", n)
	}
}

func TestCurveSVGPath(t *testing.T) {
	c, _ := NewCurve(0, 0, 1, 1)
	got := c.SVGPath(Rect{0, 0, 100, 100}, SVGOptions{})
	if want := "M0,100 C0,100 100,0 100,0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ease, _ := NewCurve(0.25, 0.1, 0.25, 1)
	got = ease.SVGPath(Rect{0, 0, 200, 100}, SVGOptions{})
	if want := "M0,100 C50,90 50,0 200,0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	handles := SVG(ease.HandleElements(), SVGOptions{MaxPrecision: 2})
	if want := "M0,0 L0.25,0.1 M1,1 L0.25,1"; handles != want {
		t.Errorf("got %q, want %q", handles, want)
	}
}

func mustPreset(t *testing.T, name string) Preset {
	t.Helper()
	p, ok := DefaultLibrary.Preset(name)
	if !ok {
		t.Fatalf("no preset %q", name)
	}
	return p
}
