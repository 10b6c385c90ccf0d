package easing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// fixedSurface is a Surface whose plot area can be changed between calls.
type fixedSurface struct {
	area Rect
}

func (s *fixedSurface) PlotArea() Rect { return s.area }

// newTestWidget returns a widget plotted into a 100×100 square at (10, 20).
func newTestWidget(t *testing.T, initial string) (*Widget, *fixedSurface) {
	t.Helper()
	s := &fixedSurface{area: Rect{10, 20, 110, 120}}
	w, err := New(s, initial, nil)
	if err != nil {
		t.Fatalf("New(%q) failed: %s", initial, err)
	}
	return w, s
}
