package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog override.
type catalogFile struct {
	Profiles  []Profile  `yaml:"profiles"`
	Scenarios []Scenario `yaml:"scenarios"`
	Layers    []Layer    `yaml:"layers"`
}

// LoadFile reads a YAML catalog override and validates it through the
// same fail-fast path as the built-in dataset. Sections omitted from
// the file fall back to the built-in data, so a file may replace just
// the profiles while keeping the stock scenarios and layers.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(f.Profiles) == 0 {
		f.Profiles = defaultProfiles()
	}
	if len(f.Scenarios) == 0 {
		f.Scenarios = defaultScenarios()
	}
	if len(f.Layers) == 0 {
		f.Layers = defaultLayers()
	}
	c, err := New(f.Profiles, f.Scenarios, f.Layers)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
