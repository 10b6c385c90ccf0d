package easing

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestDefaultLibraryKeywords(t *testing.T) {
	want := map[string]Coordinates{
		"linear":      {0, 0, 1, 1},
		"ease":        {0.25, 0.1, 0.25, 1},
		"ease-in":     {0.42, 0, 1, 1},
		"ease-out":    {0, 0, 0.58, 1},
		"ease-in-out": {0.42, 0, 0.58, 1},
	}
	got := map[string]Coordinates{}
	for p := range DefaultLibrary.InCategory(CategoryKeyword) {
		got[p.Name] = p.Coordinates
	}
	diff(t, want, got)

	if _, err := DefaultLibrary.Lookup(DefaultPreset); err != nil {
		t.Errorf("default preset %q is missing: %s", DefaultPreset, err)
	}
}

func TestDefaultLibraryFamilies(t *testing.T) {
	for _, cat := range []Category{CategoryEaseIn, CategoryEaseOut, CategoryEaseInOut} {
		var names []string
		for p := range DefaultLibrary.InCategory(cat) {
			names = append(names, p.Name)
		}
		if len(names) != 8 {
			t.Errorf("%s: got %d presets, want 8: %v", cat, len(names), names)
		}
	}
	if n := DefaultLibrary.Len(); n != 29 {
		t.Errorf("got %d presets, want 29", n)
	}
}

func TestLibraryLookup(t *testing.T) {
	c, err := DefaultLibrary.Lookup("ease-in-out-back")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Coordinates{0.68, -0.55, 0.265, 1.55}, c)

	_, err = DefaultLibrary.Lookup("EASE")
	var kerr *UnknownKeywordError
	if !errors.As(err, &kerr) {
		t.Fatalf("got error %v, want *UnknownKeywordError", err)
	}
	if kerr.Keyword != "EASE" {
		t.Errorf("got keyword %q, want %q", kerr.Keyword, "EASE")
	}

	if _, ok := DefaultLibrary.Preset("nope"); ok {
		t.Error("found preset that doesn't exist")
	}
}

func TestLibraryMatch(t *testing.T) {
	name, ok := DefaultLibrary.Match(Coordinates{0.25, 0.1, 0.25, 1})
	if !ok || name != "ease" {
		t.Errorf("got (%q, %t), want (%q, true)", name, ok, "ease")
	}
	if name, ok := DefaultLibrary.Match(Coordinates{0.25, 0.1, 0.25, 0.99}); ok {
		t.Errorf("unexpectedly matched %q", name)
	}
}

func TestNewLibraryValidation(t *testing.T) {
	tests := []struct {
		name string
		p    Preset
	}{
		{"empty name", Preset{"", CategoryCustom, Coordinates{0, 0, 1, 1}}},
		{"leading digit", Preset{"3d", CategoryCustom, Coordinates{0, 0, 1, 1}}},
		{"space", Preset{"my curve", CategoryCustom, Coordinates{0, 0, 1, 1}}},
		{"function name", Preset{"cubic-bezier", CategoryCustom, Coordinates{0, 0, 1, 1}}},
		{"NaN", Preset{"snappy", CategoryCustom, Coordinates{0, math.NaN(), 1, 1}}},
		{"P1 time", Preset{"snappy", CategoryCustom, Coordinates{-0.1, 0, 1, 1}}},
		{"P2 time", Preset{"snappy", CategoryCustom, Coordinates{0, 0, 1.1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLibrary(tt.p)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got error %v, want *ValidationError", err)
			}
		})
	}

	_, err := NewLibrary(
		Preset{"snappy", CategoryCustom, Coordinates{0, 0, 1, 1}},
		Preset{"snappy", CategoryCustom, Coordinates{0.5, 0, 1, 1}},
	)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got error %v for duplicate preset, want *ValidationError", err)
	}
}

func TestLibraryExtend(t *testing.T) {
	snappy := Preset{"snappy", CategoryCustom, Coordinates{0.2, 0.9, 0.1, 1}}
	l, err := DefaultLibrary.Extend(snappy)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != DefaultLibrary.Len()+1 {
		t.Errorf("got %d presets, want %d", l.Len(), DefaultLibrary.Len()+1)
	}
	if _, ok := DefaultLibrary.Preset("snappy"); ok {
		t.Error("Extend modified the receiver")
	}

	c, err := l.Parse("snappy")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, snappy.Coordinates, c)

	all := slices.Collect(l.All())
	diff(t, snappy, all[len(all)-1])

	if _, err := l.Extend(Preset{"ease", CategoryCustom, Coordinates{0, 0, 1, 1}}); err == nil {
		t.Error("expected error when shadowing a preset")
	}
}

func TestCategory(t *testing.T) {
	for _, cat := range []Category{CategoryCustom, CategoryKeyword, CategoryEaseIn, CategoryEaseOut, CategoryEaseInOut} {
		got, err := ParseCategory(cat.String())
		if err != nil {
			t.Errorf("ParseCategory(%q): %s", cat, err)
			continue
		}
		if got != cat {
			t.Errorf("ParseCategory(%q) = %v", cat, got)
		}
	}
	if got, err := ParseCategory(""); err != nil || got != CategoryCustom {
		t.Errorf("ParseCategory(\"\") = %v, %v", got, err)
	}
	if _, err := ParseCategory("bouncy"); err == nil {
		t.Error("expected error for unknown category")
	}
	if s := Category(42).String(); s != "Category(42)" {
		t.Errorf("got %q", s)
	}
}
