package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Site is one plot of land in a batch scenario. Exactly one of AreaM2 and
// AreaHa carries the size; Panel and Species optionally pick rate profiles
// for this site only.
type Site struct {
	Name    string  `yaml:"name"`
	AreaM2  float64 `yaml:"area_m2,omitempty"`
	AreaHa  float64 `yaml:"area_ha,omitempty"`
	Panel   string  `yaml:"panel,omitempty"`
	Species string  `yaml:"species,omitempty"`
}

// File is a decoded scenario document.
type File struct {
	ScenarioVersion int    `yaml:"scenario_version"`
	Sites           []Site `yaml:"sites"`
}

// Load reads and decodes a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &f, nil
}

// Validate checks structural requirements before any site is evaluated.
func (f *File) Validate() error {
	if f.ScenarioVersion != 1 {
		return fmt.Errorf("unsupported scenario_version %d (want 1)", f.ScenarioVersion)
	}
	if len(f.Sites) == 0 {
		return fmt.Errorf("scenario has no sites")
	}

	seen := make(map[string]bool, len(f.Sites))
	for i, s := range f.Sites {
		if s.Name == "" {
			return fmt.Errorf("site %d: name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("site %q: duplicate name", s.Name)
		}
		seen[s.Name] = true

		if s.AreaM2 < 0 || s.AreaHa < 0 {
			return fmt.Errorf("site %q: area must not be negative", s.Name)
		}
		if (s.AreaM2 > 0) == (s.AreaHa > 0) {
			return fmt.Errorf("site %q: exactly one of area_m2 or area_ha is required", s.Name)
		}
	}
	return nil
}
