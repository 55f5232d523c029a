package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadManifestBasic(t *testing.T) {
	path := writeManifest(t, `
name: decaf-course
version: "0.3.0"
targets:
  - name: hello
    main: src/hello.decaf
  - name: exam
    main: exams/final.decaf
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}

	if got, want := manifest.Name, "decaf-course"; got != want {
		t.Fatalf("Name = %q, want %q", got, want)
	}
	if got := manifest.Version; got != "0.3.0" {
		t.Fatalf("Version = %q, want 0.3.0", got)
	}
	if len(manifest.Targets) != 2 {
		t.Fatalf("Targets unexpected: %#v", manifest.Targets)
	}
	if manifest.Targets[0].Name != "hello" || manifest.Targets[0].Main != "src/hello.decaf" {
		t.Fatalf("first target unexpected: %#v", manifest.Targets[0])
	}
	if manifest.Path != path {
		t.Fatalf("Path = %q, want %q", manifest.Path, path)
	}
}

func TestLoadManifestUnknownKey(t *testing.T) {
	path := writeManifest(t, `
name: demo
entrypoints:
  - name: app
    main: app.decaf
`)

	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for unknown manifest key, got nil")
	}
}

func TestLoadManifestValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		fragment string
	}{
		{
			name: "missing name",
			contents: `
targets:
  - name: app
    main: app.decaf
`,
			fragment: "missing name",
		},
		{
			name: "target without main",
			contents: `
name: demo
targets:
  - name: app
    main: ""
`,
			fragment: "target app missing main",
		},
		{
			name: "unnamed target",
			contents: `
name: demo
targets:
  - main: app.decaf
`,
			fragment: "target 1 missing name",
		},
		{
			name: "duplicate target",
			contents: `
name: demo
targets:
  - name: app
    main: a.decaf
  - name: app
    main: b.decaf
`,
			fragment: "duplicate target app",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeManifest(t, test.contents)
			_, err := LoadManifest(path)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), test.fragment) {
				t.Fatalf("error %q missing fragment %q", err, test.fragment)
			}
		})
	}
}

func TestManifestDefaultTarget(t *testing.T) {
	path := writeManifest(t, `
name: demo
targets:
  - name: app
    main: src/app.decaf
  - name: lint
    main: spec/lint.decaf
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}

	target, ok := manifest.DefaultTarget()
	if !ok {
		t.Fatal("DefaultTarget reported no targets")
	}
	if target.Name != "app" {
		t.Fatalf("DefaultTarget = %q, want app", target.Name)
	}

	empty := &Manifest{Name: "empty"}
	if _, ok := empty.DefaultTarget(); ok {
		t.Fatal("DefaultTarget on empty manifest should report false")
	}
}

func TestManifestTargetLookup(t *testing.T) {
	path := writeManifest(t, `
name: demo
targets:
  - name: app
    main: src/app.decaf
  - name: helper
    main: src/helper.decaf
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}

	if target, ok := manifest.Target("helper"); !ok || target.Main != "src/helper.decaf" {
		t.Fatalf("Target helper failed: %#v", target)
	}
	if _, ok := manifest.Target("missing"); ok {
		t.Fatal("Target missing should report false")
	}
}

func TestManifestEntryPath(t *testing.T) {
	path := writeManifest(t, `
name: demo
targets:
  - name: app
    main: src/app.decaf
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}

	target, ok := manifest.DefaultTarget()
	if !ok {
		t.Fatal("DefaultTarget reported no targets")
	}
	want := filepath.Join(filepath.Dir(path), "src", "app.decaf")
	if got := manifest.EntryPath(target); got != want {
		t.Fatalf("EntryPath = %q, want %q", got, want)
	}
}

func TestFindManifest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(root, ManifestName)
	if err := os.WriteFile(path, []byte("name: demo\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	found, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest error: %v", err)
	}
	if found != path {
		t.Fatalf("FindManifest = %q, want %q", found, path)
	}
}

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}
