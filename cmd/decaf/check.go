package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MashPlant/decaf-go/pkg/driver"
)

func runCheck(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 2
	}

	path, err := resolveEntry(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	report, err := driver.CheckFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !report.Clean() {
		_ = driver.WriteReport(os.Stderr, report)
		return 1
	}
	fmt.Fprintln(os.Stdout, "check: ok")
	return 0
}

// resolveEntry turns check's argument list into a source path. With no
// argument the manifest's default target is used; with one argument a
// manifest target name is tried first, then a direct file path.
func resolveEntry(args []string) (string, error) {
	manifestPath, err := driver.FindManifest(".")
	if err != nil {
		return "", err
	}
	var manifest *driver.Manifest
	if manifestPath != "" {
		loaded, err := driver.LoadManifest(manifestPath)
		if err != nil {
			// A broken manifest does not block checking an explicit file.
			if len(args) == 0 {
				return "", err
			}
		} else {
			manifest = loaded
		}
	}

	if len(args) == 0 {
		if manifest == nil {
			return "", fmt.Errorf("decaf check requires a source file (no %s found)", driver.ManifestName)
		}
		target, ok := manifest.DefaultTarget()
		if !ok {
			return "", fmt.Errorf("manifest %s declares no targets", manifest.Path)
		}
		return manifest.EntryPath(target), nil
	}

	if manifest != nil {
		if target, ok := manifest.Target(args[0]); ok {
			return manifest.EntryPath(target), nil
		}
	}
	return args[0], nil
}
