package config

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type themeFile struct {
	Name     string                       `yaml:"name"`
	Version  string                       `yaml:"version"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
}

// LoadTheme reads a YAML theme manifest: name, version, tokens and
// per-variant token overrides.
func LoadTheme(path string) (*theme.Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read theme %s: %w", path, err)
	}
	var file themeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("config: parse theme %s: %w", path, err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("config: theme %s has no name", path)
	}
	manifest := &theme.Manifest{
		Name:    file.Name,
		Version: file.Version,
		Tokens:  file.Tokens,
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
		for name, tokens := range file.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: tokens}
		}
	}
	return manifest, nil
}

// ManifestSelector serves a single manifest.
type ManifestSelector struct {
	Manifest *theme.Manifest
}

var _ theme.ThemeSelector = ManifestSelector{}

// Select returns the manifest for its own name (or an empty name) and fails
// for any other theme or an unknown variant.
func (s ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.Manifest == nil {
		return nil, fmt.Errorf("config: no theme loaded")
	}
	if name != "" && name != s.Manifest.Name {
		return nil, fmt.Errorf("config: theme %q not loaded", name)
	}
	if variant != "" {
		if _, ok := s.Manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("config: theme %q has no variant %q", s.Manifest.Name, variant)
		}
	}
	return &theme.Selection{Theme: s.Manifest.Name, Variant: variant, Manifest: s.Manifest}, nil
}
