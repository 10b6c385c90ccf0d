package presetfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"honnef.co/go/easing"
)

type yamlFile struct {
	Presets []yamlPreset `yaml:"presets"`
}

type yamlPreset struct {
	Name        string    `yaml:"name"`
	Category    string    `yaml:"category"`
	Value       *string   `yaml:"value"`
	Coordinates []float64 `yaml:"coordinates"`
}

// ParseYAML parses a YAML preset document. Unknown keys are an error.
func ParseYAML(filename string, data []byte, base *easing.Library) (*easing.Library, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f yamlFile
	// An empty document decodes to io.EOF.
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse preset YAML from %s: %w", filename, err)
	}

	entries := make([]entry, len(f.Presets))
	for i, p := range f.Presets {
		entries[i] = entry(p)
	}
	return build(filename, entries, base)
}
