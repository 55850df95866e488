package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"merge-generator/internal/plan"
)

// ManifestVersion is written into every manifest.
const ManifestVersion = "1"

// Manifest lists the mergers Pass A emitted that belong in the registry.
type Manifest struct {
	Version string               `yaml:"version"`
	Entries []plan.RegistryEntry `yaml:"entries"`
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{Version: ManifestVersion}
}

// Add records an entry.
func (m *Manifest) Add(e plan.RegistryEntry) {
	m.Entries = append(m.Entries, e)
}

// LoadManifest reads a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m := NewManifest()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if m.Version != ManifestVersion {
		return nil, fmt.Errorf("manifest %s: unsupported version %q", path, m.Version)
	}

	return m, nil
}

// WriteFile writes the manifest as YAML.
func (m *Manifest) WriteFile(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
