package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/parser"
	"github.com/MashPlant/decaf-go/pkg/typechecker"
)

const cleanSource = `class Main {
    static void main() {
        Print("hello");
    }
}
`

func TestCheckSourceClean(t *testing.T) {
	report, err := CheckSource("hello.decaf", []byte(cleanSource))
	if err != nil {
		t.Fatalf("CheckSource returned error: %v", err)
	}
	if !report.Clean() {
		t.Fatalf("expected a clean report, got %v", report.Diagnostics)
	}
	if report.Name != "hello.decaf" {
		t.Fatalf("Name = %q, want hello.decaf", report.Name)
	}
	if report.Program == nil || report.Info == nil {
		t.Fatal("report is missing the program or the analysis tables")
	}
}

func TestCheckSourceSortsDiagnostics(t *testing.T) {
	// The duplicate field is found by the symbol pass, before the bad
	// initializer, but it renders after it.
	source := `class Main {
    static void main() {
        int x = true;
    }
    int f;
    int f;
}
`
	report, err := CheckSource("order.decaf", []byte(source))
	if err != nil {
		t.Fatalf("CheckSource returned error: %v", err)
	}
	var got []string
	for _, d := range report.Diagnostics {
		got = append(got, d.String())
	}
	want := []string{
		"3:15: incompatible operands: int = bool",
		"6:9: declaration of 'f' conflicts with a declaration at 5:9",
	}
	if len(got) != len(want) {
		t.Fatalf("diagnostics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("diagnostic %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCheckSourceSyntaxError(t *testing.T) {
	_, err := CheckSource("broken.decaf", []byte("class Main {"))
	if err == nil {
		t.Fatal("expected a syntax error, got nil")
	}
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("error %T is not a *SyntaxError", err)
	}
	if syntaxErr.Path != "broken.decaf" {
		t.Fatalf("Path = %q, want broken.decaf", syntaxErr.Path)
	}
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("syntax error does not wrap the parse error: %v", err)
	}
	if !parser.IncompleteInput(err) {
		t.Fatal("a truncated class should read as incomplete input")
	}
	if !strings.HasPrefix(err.Error(), "broken.decaf:") {
		t.Fatalf("rendered error missing file name: %v", err)
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.decaf")
	if err := os.WriteFile(path, []byte(cleanSource), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}

	report, err := CheckFile(path)
	if err != nil {
		t.Fatalf("CheckFile returned error: %v", err)
	}
	if !report.Clean() {
		t.Fatalf("expected a clean report, got %v", report.Diagnostics)
	}
	if report.Name != path {
		t.Fatalf("Name = %q, want %q", report.Name, path)
	}

	if _, err := CheckFile(filepath.Join(dir, "missing.decaf")); err == nil {
		t.Fatal("expected an error for a missing file, got nil")
	}
}

func TestSortDiagnosticsStable(t *testing.T) {
	at := func(line, col int, kind typechecker.Kind) *typechecker.Diagnostic {
		return &typechecker.Diagnostic{Pos: ast.Pos{Line: line, Column: col}, Kind: kind}
	}
	diags := []*typechecker.Diagnostic{
		at(4, 2, typechecker.UnreachableCode{}),
		at(2, 9, typechecker.BreakOutOfLoop{}),
		at(2, 9, typechecker.TestNotBool{}),
		at(2, 3, typechecker.ThisInStatic{}),
	}
	SortDiagnostics(diags)

	wantKinds := []typechecker.Kind{
		typechecker.ThisInStatic{},
		typechecker.BreakOutOfLoop{},
		typechecker.TestNotBool{},
		typechecker.UnreachableCode{},
	}
	for i, want := range wantKinds {
		if diags[i].Kind != want {
			t.Fatalf("diagnostic %d = %#v, want %#v", i, diags[i].Kind, want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	source := `class Main {
    static void main() {
        break;
    }
}
`
	report, err := CheckSource("loop.decaf", []byte(source))
	if err != nil {
		t.Fatalf("CheckSource returned error: %v", err)
	}

	var buf strings.Builder
	if err := WriteReport(&buf, report); err != nil {
		t.Fatalf("WriteReport returned error: %v", err)
	}
	want := "loop.decaf:3:9: 'break' is only allowed inside a loop\n"
	if buf.String() != want {
		t.Fatalf("WriteReport output = %q, want %q", buf.String(), want)
	}
}
