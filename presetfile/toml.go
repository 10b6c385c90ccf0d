package presetfile

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/easing"
)

type tomlFile struct {
	Presets []tomlPreset `toml:"preset"`
}

type tomlPreset struct {
	Name        string    `toml:"name"`
	Category    string    `toml:"category"`
	Value       *string   `toml:"value"`
	Coordinates []float64 `toml:"coordinates"`
}

// ParseTOML parses a TOML preset document, in which presets form an array of
// tables named preset. Unknown keys are an error.
func ParseTOML(filename string, data []byte, base *easing.Library) (*easing.Library, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var f tomlFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse preset TOML from %s: %w", filename, err)
	}

	entries := make([]entry, len(f.Presets))
	for i, p := range f.Presets {
		entries[i] = entry(p)
	}
	return build(filename, entries, base)
}
