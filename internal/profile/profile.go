// Package profile handles loading built-in check-suite profiles: named
// bundles of checker settings and per-gate fixtures.
package profile

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/opcritic/internal/report"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Profile defines the settings and fixtures for one check suite. Gates
// lists the operations to check; an empty list means the full registry.
type Profile struct {
	Name         string             `yaml:"name"`
	Description  string             `yaml:"description"`
	Verbosity    string             `yaml:"verbosity"`
	Tolerance    float64            `yaml:"tolerance"`
	MaxNumParams int                `yaml:"max_num_params"`
	Color        bool               `yaml:"color"`
	Gates        []string           `yaml:"gates"`
	Fixtures     map[string]Fixture `yaml:"fixtures"`
}

// Fixture supplies explicit parameters and wires for one gate,
// overriding the synthesized examples.
type Fixture struct {
	Params []float64 `yaml:"params"`
	Wires  []int     `yaml:"wires"`
}

// VerbositySeverity parses the profile's verbosity field.
func (p *Profile) VerbositySeverity() (report.Severity, error) {
	return report.ParseSeverity(p.Verbosity)
}

// LoadBuiltin loads a built-in profile by name.
func LoadBuiltin(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: unknown profile %q: %w", name, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: parse %q: %w", name, err)
	}
	if _, err := p.VerbositySeverity(); err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: %q: %w", name, err)
	}
	return &p, nil
}

// List returns the names of all available built-in profiles, sorted.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}
