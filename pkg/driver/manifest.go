package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file name a Decaf project is described by.
const ManifestName = "decaf.yml"

// Manifest models decaf.yml: project metadata plus the checkable targets.
type Manifest struct {
	Path    string // absolute path the manifest was loaded from
	Name    string
	Version string
	Targets []Target
}

// Target names an entry file that `decaf check` can analyze.
type Target struct {
	Name string `yaml:"name"`
	Main string `yaml:"main"`
}

type manifestDisk struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version,omitempty"`
	Targets []Target `yaml:"targets"`
}

// LoadManifest parses and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}

	m := &Manifest{
		Path:    abs,
		Name:    strings.TrimSpace(raw.Name),
		Version: strings.TrimSpace(raw.Version),
		Targets: raw.Targets,
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", abs, err)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	if m.Name == "" {
		return errors.New("missing name")
	}
	seen := make(map[string]struct{}, len(m.Targets))
	for i := range m.Targets {
		t := &m.Targets[i]
		t.Name = strings.TrimSpace(t.Name)
		t.Main = strings.TrimSpace(t.Main)
		if t.Name == "" {
			return fmt.Errorf("target %d missing name", i+1)
		}
		if t.Main == "" {
			return fmt.Errorf("target %s missing main", t.Name)
		}
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("duplicate target %s", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

// DefaultTarget returns the first declared target.
func (m *Manifest) DefaultTarget() (Target, bool) {
	if len(m.Targets) == 0 {
		return Target{}, false
	}
	return m.Targets[0], true
}

// Target looks a target up by name.
func (m *Manifest) Target(name string) (Target, bool) {
	for _, t := range m.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// EntryPath resolves a target's main file relative to the manifest.
func (m *Manifest) EntryPath(t Target) string {
	if filepath.IsAbs(t.Main) {
		return t.Main
	}
	return filepath.Join(filepath.Dir(m.Path), t.Main)
}

// FindManifest walks from dir toward the filesystem root looking for
// decaf.yml. It returns the empty string when no manifest exists.
func FindManifest(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(abs, ManifestName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("manifest: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", nil
		}
		abs = parent
	}
}
