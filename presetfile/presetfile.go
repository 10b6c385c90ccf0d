// Package presetfile loads timing-function presets from YAML, TOML and HCL
// documents.
//
// Every format describes a list of presets. Each preset has a name, an
// optional category (one of the names accepted by [easing.ParseCategory]) and
// exactly one of
//
//   - value, CSS timing-function text such as "cubic-bezier(0.2, 0.9, 0.1, 1)"
//     or the name of an existing preset, or
//   - coordinates, a list of four numbers.
//
// In YAML:
//
//	presets:
//	  - name: snappy
//	    category: ease-out
//	    coordinates: [0.2, 0.9, 0.1, 1]
//	  - name: gentle
//	    value: ease-in-out-sine
//
// In TOML:
//
//	[[preset]]
//	name = "snappy"
//	category = "ease-out"
//	coordinates = [0.2, 0.9, 0.1, 1.0]
//
// In HCL, where the functions css and cubic_bezier produce coordinates:
//
//	preset "snappy" {
//	  category    = "ease-out"
//	  coordinates = cubic_bezier(0.2, 0.9, 0.1, 1)
//	}
//
//	preset "gentle" {
//	  coordinates = css("ease-in-out-sine")
//	}
//
// Keywords in values resolve against the base library passed to the parse
// functions, or [easing.DefaultLibrary] if that is nil.
package presetfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/easing"
)

// Format is the syntax of a preset document.
type Format int

const (
	YAML Format = iota + 1
	TOML
	HCL
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	case HCL:
		return "HCL"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for files whose extension names no supported
// format.
var ErrUnknownFormat = errors.New("unknown preset file format")

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".hcl":
		return HCL, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads the preset file at path, choosing the format by extension. If
// base is not nil, the result holds the presets of base followed by those of
// the file; otherwise it holds only the file's presets.
func Load(path string, base *easing.Library) (*easing.Library, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	return Parse(format, path, data, base)
}

// Parse parses data in the given format. filename is only used in error
// messages.
func Parse(format Format, filename string, data []byte, base *easing.Library) (*easing.Library, error) {
	switch format {
	case YAML:
		return ParseYAML(filename, data, base)
	case TOML:
		return ParseTOML(filename, data, base)
	case HCL:
		return ParseHCL(filename, data, base)
	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrUnknownFormat)
	}
}

// entry is a preset as written in a file, before validation.
type entry struct {
	Name        string
	Category    string
	Value       *string
	Coordinates []float64
}

func resolver(base *easing.Library) *easing.Library {
	if base == nil {
		return easing.DefaultLibrary
	}
	return base
}

// build validates entries and combines them with base.
func build(filename string, entries []entry, base *easing.Library) (*easing.Library, error) {
	lib := resolver(base)
	presets := make([]easing.Preset, 0, len(entries))
	for i, e := range entries {
		p, err := e.preset(lib)
		if err != nil {
			if e.Name == "" {
				return nil, fmt.Errorf("%s: preset %d: %w", filename, i, err)
			}
			return nil, fmt.Errorf("%s: preset %q: %w", filename, e.Name, err)
		}
		presets = append(presets, p)
	}

	var out *easing.Library
	var err error
	if base == nil {
		out, err = easing.NewLibrary(presets...)
	} else {
		out, err = base.Extend(presets...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return out, nil
}

func (e entry) preset(lib *easing.Library) (easing.Preset, error) {
	cat, err := easing.ParseCategory(e.Category)
	if err != nil {
		return easing.Preset{}, err
	}
	var coords easing.Coordinates
	switch {
	case e.Value != nil && e.Coordinates != nil:
		return easing.Preset{}, errors.New("value and coordinates are mutually exclusive")
	case e.Value != nil:
		coords, err = lib.Parse(*e.Value)
		if err != nil {
			return easing.Preset{}, err
		}
	case e.Coordinates != nil:
		if len(e.Coordinates) != len(coords) {
			return easing.Preset{}, fmt.Errorf("need exactly 4 coordinates, got %d", len(e.Coordinates))
		}
		copy(coords[:], e.Coordinates)
	default:
		return easing.Preset{}, errors.New("missing value or coordinates")
	}
	return easing.Preset{Name: e.Name, Category: cat, Coordinates: coords}, nil
}
