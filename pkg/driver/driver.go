// Package driver ties the front end together: it loads Decaf sources, runs
// semantic analysis and renders the resulting diagnostics. It also reads the
// project manifest (decaf.yml) and runs golden diagnostic suites, which back
// both `decaf test` and the repository's own tests.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/parser"
	"github.com/MashPlant/decaf-go/pkg/typechecker"
)

// Report is the outcome of analyzing a single source file. Diagnostics are
// sorted by source position; the checker itself reports in discovery order.
type Report struct {
	Name        string // display name, usually the path the source came from
	Program     *ast.Program
	Info        *typechecker.Info
	Diagnostics []*typechecker.Diagnostic
}

// Clean reports whether analysis produced no diagnostics.
func (r *Report) Clean() bool {
	return len(r.Diagnostics) == 0
}

// CheckSource parses and analyzes source. name labels the input in errors and
// rendered diagnostics. A syntax error is returned as a *SyntaxError; semantic
// problems are not errors, they land in Report.Diagnostics.
func CheckSource(name string, source []byte) (*Report, error) {
	prog, err := parser.ParseProgram(source)
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			return nil, &SyntaxError{Path: name, Err: parseErr}
		}
		return nil, fmt.Errorf("driver: parse %s: %w", name, err)
	}
	info, diags := typechecker.New().Check(prog)
	SortDiagnostics(diags)
	return &Report{Name: name, Program: prog, Info: info, Diagnostics: diags}, nil
}

// CheckFile reads and analyzes the file at path.
func CheckFile(path string) (*Report, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	return CheckSource(path, source)
}

// SortDiagnostics orders diags by line, then column. The sort is stable, so
// diagnostics at the same position keep the order the checker found them in.
func SortDiagnostics(diags []*typechecker.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Pos.Line != diags[j].Pos.Line {
			return diags[i].Pos.Line < diags[j].Pos.Line
		}
		return diags[i].Pos.Column < diags[j].Pos.Column
	})
}

// FormatDiagnostic renders one diagnostic as "name:line:col: message".
func FormatDiagnostic(name string, d *typechecker.Diagnostic) string {
	return name + ":" + d.String()
}

// WriteReport prints every diagnostic in the report on its own line.
func WriteReport(w io.Writer, r *Report) error {
	for _, d := range r.Diagnostics {
		if _, err := fmt.Fprintln(w, FormatDiagnostic(r.Name, d)); err != nil {
			return err
		}
	}
	return nil
}

// SyntaxError is a parse failure tied to the file it came from. It wraps the
// underlying *parser.ParseError for errors.As.
type SyntaxError struct {
	Path string
	Err  *parser.ParseError
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Path, e.Err.Location, e.Err.Message)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
