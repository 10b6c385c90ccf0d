package easing

import (
	"fmt"
	"iter"
	"math"
)

// Category groups presets the way a preset picker lists them.
type Category int

const (
	// CategoryCustom is used for presets that aren't part of a standard
	// family, such as those loaded from a preset file without a category.
	CategoryCustom Category = iota
	// CategoryKeyword holds the timing functions that CSS names with a
	// keyword.
	CategoryKeyword
	CategoryEaseIn
	CategoryEaseOut
	CategoryEaseInOut
)

var categoryNames = [...]string{
	CategoryCustom:    "custom",
	CategoryKeyword:   "keyword",
	CategoryEaseIn:    "ease-in",
	CategoryEaseOut:   "ease-out",
	CategoryEaseInOut: "ease-in-out",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory is the inverse of [Category.String]. The empty string maps to
// [CategoryCustom].
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryCustom, nil
	}
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown preset category %q", s)
}

// Preset is a named timing function.
type Preset struct {
	Name        string
	Category    Category
	Coordinates Coordinates
}

// Curve returns the preset as a curve.
func (p Preset) Curve() Curve {
	// Library validated the coordinates, so no clamping happens here.
	return Curve{p1: p.Coordinates.P1(), p2: p.Coordinates.P2()}
}

// Library is an immutable table of presets, looked up by exact,
// case-sensitive name.
type Library struct {
	presets []Preset
	byName  map[string]int
}

// NewLibrary returns a library holding presets, in the given order. Names must
// be unique, non-empty CSS identifiers; coordinates must be finite with time
// coordinates in [0, 1].
func NewLibrary(presets ...Preset) (*Library, error) {
	l := &Library{
		presets: make([]Preset, 0, len(presets)),
		byName:  make(map[string]int, len(presets)),
	}
	for _, p := range presets {
		if err := validatePreset(p); err != nil {
			return nil, err
		}
		if _, ok := l.byName[p.Name]; ok {
			return nil, &ValidationError{Op: "NewLibrary", Reason: fmt.Sprintf("duplicate preset %q", p.Name)}
		}
		l.byName[p.Name] = len(l.presets)
		l.presets = append(l.presets, p)
	}
	return l, nil
}

func validatePreset(p Preset) error {
	if !isIdent(p.Name) {
		return &ValidationError{Op: "NewLibrary", Reason: fmt.Sprintf("invalid preset name %q", p.Name)}
	}
	for i, v := range p.Coordinates {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Op: "NewLibrary", Reason: fmt.Sprintf("preset %q: coordinate %d is not finite", p.Name, i)}
		}
	}
	if x := p.Coordinates[0]; x < 0 || x > 1 {
		return &ValidationError{Op: "NewLibrary", Reason: fmt.Sprintf("preset %q: P1 time %g is outside [0, 1]", p.Name, x)}
	}
	if x := p.Coordinates[2]; x < 0 || x > 1 {
		return &ValidationError{Op: "NewLibrary", Reason: fmt.Sprintf("preset %q: P2 time %g is outside [0, 1]", p.Name, x)}
	}
	return nil
}

// isIdent reports whether s can be written as a bare keyword.
func isIdent(s string) bool {
	if s == "" || s == functionName {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_', b == '-':
		case b >= '0' && b <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Extend returns a new library with the presets of l followed by presets.
func (l *Library) Extend(presets ...Preset) (*Library, error) {
	all := make([]Preset, 0, len(l.presets)+len(presets))
	all = append(all, l.presets...)
	all = append(all, presets...)
	return NewLibrary(all...)
}

// Lookup returns the coordinates of the named preset.
func (l *Library) Lookup(name string) (Coordinates, error) {
	i, ok := l.byName[name]
	if !ok {
		return Coordinates{}, &UnknownKeywordError{Keyword: name}
	}
	return l.presets[i].Coordinates, nil
}

// Preset returns the named preset.
func (l *Library) Preset(name string) (Preset, bool) {
	i, ok := l.byName[name]
	if !ok {
		return Preset{}, false
	}
	return l.presets[i], true
}

// Match returns the name of the first preset whose coordinates equal c
// exactly.
//
// [Format] never produces keywords; callers that want to show a preset name
// for the current curve use Match.
func (l *Library) Match(c Coordinates) (string, bool) {
	for _, p := range l.presets {
		if p.Coordinates == c {
			return p.Name, true
		}
	}
	return "", false
}

// All returns the presets in definition order.
func (l *Library) All() iter.Seq[Preset] {
	return func(yield func(Preset) bool) {
		for _, p := range l.presets {
			if !yield(p) {
				return
			}
		}
	}
}

// InCategory returns the presets of one category in definition order.
func (l *Library) InCategory(cat Category) iter.Seq[Preset] {
	return func(yield func(Preset) bool) {
		for p := range l.All() {
			if p.Category == cat && !yield(p) {
				return
			}
		}
	}
}

func (l *Library) Len() int { return len(l.presets) }

// DefaultLibrary holds the CSS timing-function keywords and the common
// ease-in, ease-out and ease-in-out families.
var DefaultLibrary = mustLibrary(
	Preset{"linear", CategoryKeyword, Coordinates{0, 0, 1, 1}},
	Preset{"ease", CategoryKeyword, Coordinates{0.25, 0.1, 0.25, 1}},
	Preset{"ease-in", CategoryKeyword, Coordinates{0.42, 0, 1, 1}},
	Preset{"ease-out", CategoryKeyword, Coordinates{0, 0, 0.58, 1}},
	Preset{"ease-in-out", CategoryKeyword, Coordinates{0.42, 0, 0.58, 1}},

	Preset{"ease-in-sine", CategoryEaseIn, Coordinates{0.47, 0, 0.745, 0.715}},
	Preset{"ease-in-quad", CategoryEaseIn, Coordinates{0.55, 0.085, 0.68, 0.53}},
	Preset{"ease-in-cubic", CategoryEaseIn, Coordinates{0.55, 0.055, 0.675, 0.19}},
	Preset{"ease-in-quart", CategoryEaseIn, Coordinates{0.895, 0.03, 0.685, 0.22}},
	Preset{"ease-in-quint", CategoryEaseIn, Coordinates{0.755, 0.05, 0.855, 0.06}},
	Preset{"ease-in-expo", CategoryEaseIn, Coordinates{0.95, 0.05, 0.795, 0.035}},
	Preset{"ease-in-circ", CategoryEaseIn, Coordinates{0.6, 0.04, 0.98, 0.335}},
	Preset{"ease-in-back", CategoryEaseIn, Coordinates{0.6, -0.28, 0.735, 0.045}},

	Preset{"ease-out-sine", CategoryEaseOut, Coordinates{0.39, 0.575, 0.565, 1}},
	Preset{"ease-out-quad", CategoryEaseOut, Coordinates{0.25, 0.46, 0.45, 0.94}},
	Preset{"ease-out-cubic", CategoryEaseOut, Coordinates{0.215, 0.61, 0.355, 1}},
	Preset{"ease-out-quart", CategoryEaseOut, Coordinates{0.165, 0.84, 0.44, 1}},
	Preset{"ease-out-quint", CategoryEaseOut, Coordinates{0.23, 1, 0.32, 1}},
	Preset{"ease-out-expo", CategoryEaseOut, Coordinates{0.19, 1, 0.22, 1}},
	Preset{"ease-out-circ", CategoryEaseOut, Coordinates{0.075, 0.82, 0.165, 1}},
	Preset{"ease-out-back", CategoryEaseOut, Coordinates{0.175, 0.885, 0.32, 1.275}},

	Preset{"ease-in-out-sine", CategoryEaseInOut, Coordinates{0.445, 0.05, 0.55, 0.95}},
	Preset{"ease-in-out-quad", CategoryEaseInOut, Coordinates{0.455, 0.03, 0.515, 0.955}},
	Preset{"ease-in-out-cubic", CategoryEaseInOut, Coordinates{0.645, 0.045, 0.355, 1}},
	Preset{"ease-in-out-quart", CategoryEaseInOut, Coordinates{0.77, 0, 0.175, 1}},
	Preset{"ease-in-out-quint", CategoryEaseInOut, Coordinates{0.86, 0, 0.07, 1}},
	Preset{"ease-in-out-expo", CategoryEaseInOut, Coordinates{1, 0, 0, 1}},
	Preset{"ease-in-out-circ", CategoryEaseInOut, Coordinates{0.785, 0.135, 0.15, 0.86}},
	Preset{"ease-in-out-back", CategoryEaseInOut, Coordinates{0.68, -0.55, 0.265, 1.55}},
)

// DefaultPreset is the curve a widget starts with when no initial curve is
// given.
const DefaultPreset = "ease"

func mustLibrary(presets ...Preset) *Library {
	l, err := NewLibrary(presets...)
	if err != nil {
		panic(err)
	}
	return l
}
