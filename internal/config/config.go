// Package config loads enhancement presets from YAML files.
//
// A preset lists any subset of the enhancement settings; omitted keys keep
// their defaults:
//
//	brightness: 1.1
//	saturation: 1.5
//	noiseReduction: false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/enhance"
)

// Load reads the preset file at path.
func Load(path string) (enhance.Patch, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return enhance.Patch{}, fmt.Errorf("config: read preset: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return enhance.Patch{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML preset. Unknown keys are rejected, and the values are
// checked by merging onto the defaults and validating the result.
func Parse(data []byte) (enhance.Patch, error) {
	var p enhance.Patch

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return enhance.Patch{}, fmt.Errorf("config: parse preset: %w", err)
	}

	if err := enhance.DefaultSettings().Merge(p).Validate(); err != nil {
		return enhance.Patch{}, err
	}
	return p, nil
}

// Marshal encodes s as a complete preset.
func Marshal(s enhance.Settings) ([]byte, error) {
	p := enhance.Patch{
		Brightness:     &s.Brightness,
		Contrast:       &s.Contrast,
		Saturation:     &s.Saturation,
		Sharpness:      &s.Sharpness,
		NoiseReduction: &s.NoiseReduction,
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("config: marshal preset: %w", err)
	}
	return data, nil
}
