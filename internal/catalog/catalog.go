// Package catalog holds the static QEC framework comparison data:
// typed framework profiles, scenario recommendations, and ecosystem
// layers. A Catalog is built once at startup, validated eagerly, and
// never mutated afterwards.
package catalog

import (
	"fmt"
	"strings"
)

// Field identifies one comparison category shared by every profile.
type Field int

const (
	FieldDeveloper Field = iota
	FieldType
	FieldPrimaryFocus
	FieldLanguage
	FieldLicense
	FieldLaunchDate
	FieldUniqueStrength
	FieldIntegration
	FieldBestFor
	FieldInstallation
	FieldDocumentation
	FieldCommunity
	FieldBackendLayer
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldDeveloper:      "Developer",
	FieldType:           "Type",
	FieldPrimaryFocus:   "Primary Focus",
	FieldLanguage:       "Language",
	FieldLicense:        "License",
	FieldLaunchDate:     "Launch Date",
	FieldUniqueStrength: "Unique Strength",
	FieldIntegration:    "Integration",
	FieldBestFor:        "Best For",
	FieldInstallation:   "Installation",
	FieldDocumentation:  "Documentation",
	FieldCommunity:      "Community",
	FieldBackendLayer:   "Backend/Layer",
}

// Label returns the human-readable category name.
func (f Field) Label() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldLabels[f]
}

// AllFields returns every recognized field in display order.
func AllFields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// ParseField resolves a category label (case-insensitive) to a Field.
// Unknown labels are rejected rather than defaulted.
func ParseField(label string) (Field, error) {
	for i, l := range fieldLabels {
		if strings.EqualFold(strings.TrimSpace(label), l) {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", label)
}

// Profile describes one QEC framework. Every field is free text and
// every field must be supplied; tabular output relies on the full set
// being present.
type Profile struct {
	Name           string `yaml:"name"`
	Developer      string `yaml:"developer"`
	Type           string `yaml:"type"`
	PrimaryFocus   string `yaml:"primary_focus"`
	Language       string `yaml:"language"`
	License        string `yaml:"license"`
	LaunchDate     string `yaml:"launch_date"`
	UniqueStrength string `yaml:"unique_strength"`
	Integration    string `yaml:"integration"`
	BestFor        string `yaml:"best_for"`
	Installation   string `yaml:"installation"`
	Documentation  string `yaml:"documentation"`
	Community      string `yaml:"community"`
	BackendLayer   string `yaml:"backend_layer"`
}

// Value returns the profile's text for one category. An out-of-range
// field is an error, never a blank cell.
func (p Profile) Value(f Field) (string, error) {
	switch f {
	case FieldDeveloper:
		return p.Developer, nil
	case FieldType:
		return p.Type, nil
	case FieldPrimaryFocus:
		return p.PrimaryFocus, nil
	case FieldLanguage:
		return p.Language, nil
	case FieldLicense:
		return p.License, nil
	case FieldLaunchDate:
		return p.LaunchDate, nil
	case FieldUniqueStrength:
		return p.UniqueStrength, nil
	case FieldIntegration:
		return p.Integration, nil
	case FieldBestFor:
		return p.BestFor, nil
	case FieldInstallation:
		return p.Installation, nil
	case FieldDocumentation:
		return p.Documentation, nil
	case FieldCommunity:
		return p.Community, nil
	case FieldBackendLayer:
		return p.BackendLayer, nil
	default:
		return "", fmt.Errorf("profile %q: unknown category %q", p.Name, f.Label())
	}
}

// Scenario pairs a hand-authored use case with a recommendation. It is
// curated data, not derived from the profiles.
type Scenario struct {
	Description string   `yaml:"description"`
	BestLabel   string   `yaml:"best_label,omitempty"` // defaults to "BEST CHOICE"
	Best        string   `yaml:"best"`
	BestNotes   []string `yaml:"best_notes,omitempty"`
	AltLabel    string   `yaml:"alternative_label,omitempty"`
	Alternative string   `yaml:"alternative,omitempty"`
	AltNotes    []string `yaml:"alternative_notes,omitempty"`
}

// Layer is one tier of the ecosystem diagram, ordered top to bottom.
type Layer struct {
	Title   string   `yaml:"title"`
	Entries []string `yaml:"entries"`
}

// Catalog is the validated, ordered dataset behind every report.
type Catalog struct {
	profiles  []Profile
	scenarios []Scenario
	layers    []Layer
}

// New validates the dataset and builds a catalog. A profile with any
// empty field is a configuration error surfaced here, before any
// rendering happens, so render paths never see incomplete rows.
func New(profiles []Profile, scenarios []Scenario, layers []Layer) (*Catalog, error) {
	for i, p := range profiles {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("profile[%d]: name is required", i)
		}
		for _, f := range AllFields() {
			v, err := p.Value(f)
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(v) == "" {
				return nil, fmt.Errorf("profile[%d] %q: missing field %q", i, p.Name, f.Label())
			}
		}
	}
	for i, s := range scenarios {
		if strings.TrimSpace(s.Description) == "" {
			return nil, fmt.Errorf("scenario[%d]: description is required", i)
		}
		if strings.TrimSpace(s.Best) == "" {
			return nil, fmt.Errorf("scenario[%d] %q: best choice is required", i, s.Description)
		}
	}
	for i, l := range layers {
		if strings.TrimSpace(l.Title) == "" {
			return nil, fmt.Errorf("layer[%d]: title is required", i)
		}
		if len(l.Entries) == 0 {
			return nil, fmt.Errorf("layer[%d] %q: at least one entry is required", i, l.Title)
		}
	}
	c := &Catalog{
		profiles:  make([]Profile, len(profiles)),
		scenarios: make([]Scenario, len(scenarios)),
		layers:    make([]Layer, len(layers)),
	}
	copy(c.profiles, profiles)
	copy(c.scenarios, scenarios)
	copy(c.layers, layers)
	return c, nil
}

// Profiles returns the profiles in declaration order.
func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// Scenarios returns the scenario guide entries in declaration order.
func (c *Catalog) Scenarios() []Scenario {
	out := make([]Scenario, len(c.scenarios))
	copy(out, c.scenarios)
	return out
}

// Layers returns the ecosystem tiers, top layer first.
func (c *Catalog) Layers() []Layer {
	out := make([]Layer, len(c.layers))
	copy(out, c.layers)
	return out
}
