package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	caseExt         = ".decaf"
	expectedExt     = ".expected"
	suiteConfigName = "suite.yml"
)

// CaseResult is the outcome of one golden case: a .decaf file checked
// against the diagnostics its sibling .expected file lists.
type CaseResult struct {
	Name    string // path relative to the suite root, without extension
	Path    string
	Skipped bool
	Failed  bool
	Got     []string
	Want    []string
}

// SuiteResult aggregates every case found under a suite directory.
type SuiteResult struct {
	Name  string
	Dir   string
	Cases []CaseResult
}

// Counts returns how many cases passed, failed and were skipped.
func (s *SuiteResult) Counts() (passed, failed, skipped int) {
	for _, c := range s.Cases {
		switch {
		case c.Skipped:
			skipped++
		case c.Failed:
			failed++
		default:
			passed++
		}
	}
	return passed, failed, skipped
}

// Ok reports whether no case failed.
func (s *SuiteResult) Ok() bool {
	_, failed, _ := s.Counts()
	return failed == 0
}

// suiteConfig models the optional suite.yml sitting next to the cases.
type suiteConfig struct {
	Name string   `yaml:"name"`
	Skip []string `yaml:"skip"`
}

// RunSuite checks every *.decaf file under dir against its sibling .expected
// file. Expected files list one rendered diagnostic per line; a missing or
// empty one means the case must check cleanly. A syntax error counts as the
// case's single diagnostic. Cases named in the suite.yml skip list are
// reported but not run.
func RunSuite(dir string) (*SuiteResult, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("suite: resolve %s: %w", dir, err)
	}
	config, err := loadSuiteConfig(abs)
	if err != nil {
		return nil, err
	}
	files, err := collectCases(abs)
	if err != nil {
		return nil, err
	}

	skip := make(map[string]struct{}, len(config.Skip))
	for _, name := range config.Skip {
		skip[name] = struct{}{}
	}

	result := &SuiteResult{Name: config.Name, Dir: abs}
	for _, path := range files {
		c := CaseResult{Name: caseName(abs, path), Path: path}
		if _, ok := skip[c.Name]; ok {
			c.Skipped = true
			result.Cases = append(result.Cases, c)
			continue
		}
		got, err := runCase(path)
		if err != nil {
			return nil, err
		}
		want, err := readExpected(path)
		if err != nil {
			return nil, err
		}
		c.Got, c.Want = got, want
		c.Failed = !equalLines(got, want)
		result.Cases = append(result.Cases, c)
	}
	return result, nil
}

func runCase(path string) ([]string, error) {
	report, err := CheckFile(path)
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			e := syntaxErr.Err
			return []string{fmt.Sprintf("%s: %s", e.Location, e.Message)}, nil
		}
		return nil, err
	}
	lines := make([]string, 0, len(report.Diagnostics))
	for _, d := range report.Diagnostics {
		lines = append(lines, d.String())
	}
	return lines, nil
}

func readExpected(casePath string) ([]string, error) {
	path := strings.TrimSuffix(casePath, caseExt) + expectedExt
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("suite: read %s: %w", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func collectCases(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), caseExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("suite: traverse %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

func caseName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return filepath.ToSlash(strings.TrimSuffix(rel, caseExt))
}

func loadSuiteConfig(dir string) (suiteConfig, error) {
	config := suiteConfig{Name: filepath.Base(dir)}
	path := filepath.Join(dir, suiteConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return suiteConfig{}, fmt.Errorf("suite: read %s: %w", path, err)
	}
	var raw suiteConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return suiteConfig{}, fmt.Errorf("suite: parse %s: %w", path, err)
	}
	if name := strings.TrimSpace(raw.Name); name != "" {
		config.Name = name
	}
	config.Skip = raw.Skip
	return config, nil
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
