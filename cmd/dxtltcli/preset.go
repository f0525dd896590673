package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is one named transform-settings combination, persisted as YAML
// so a caller can record what an auto-tune run settled on and reapply
// it later without re-running the search (spec.md §4.6's auto-tuner is
// a per-call convenience; named presets are this CLI's way of reusing
// its result across files of the same provenance).
type Preset struct {
	Name          string `yaml:"name"`
	Format        string `yaml:"format"`
	Decorrelation string `yaml:"decorrelation"`
	SplitColour   bool   `yaml:"split_colour"`
	SplitAlpha    bool   `yaml:"split_alpha,omitempty"`
}

// loadPresets reads a YAML file containing a top-level `presets:` list.
func loadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dxtltcli: reading preset file: %w", err)
	}
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dxtltcli: parsing preset file: %w", err)
	}
	return doc.Presets, nil
}

// appendPreset adds p to the presets file at path, creating it if
// necessary.
func appendPreset(path string, p Preset) error {
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("dxtltcli: parsing existing preset file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("dxtltcli: reading preset file: %w", err)
	}

	doc.Presets = append(doc.Presets, p)
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("dxtltcli: encoding preset file: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("dxtltcli: writing preset file: %w", err)
	}
	return nil
}

func findPreset(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("dxtltcli: no preset named %q", name)
}
