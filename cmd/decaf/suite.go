package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MashPlant/decaf-go/pkg/driver"
)

const defaultSuiteDir = "testsuite"

func runTest(args []string) int {
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{defaultSuiteDir}
	}

	failed := 0
	harnessErr := false
	for _, dir := range dirs {
		result, err := driver.RunSuite(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decaf test: %v\n", err)
			harnessErr = true
			continue
		}
		printSuite(os.Stdout, result)
		_, f, _ := result.Counts()
		failed += f
	}

	if harnessErr {
		return 2
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func printSuite(w io.Writer, result *driver.SuiteResult) {
	fmt.Fprintf(w, "suite %s: %s\n", result.Name, result.Dir)
	for _, c := range result.Cases {
		switch {
		case c.Skipped:
			fmt.Fprintf(w, "  skip %s\n", c.Name)
		case c.Failed:
			fmt.Fprintf(w, "  FAIL %s\n", c.Name)
			printCaseDiff(w, c)
		default:
			fmt.Fprintf(w, "  ok   %s\n", c.Name)
		}
	}
	passed, failed, skipped := result.Counts()
	fmt.Fprintf(w, "%d passed, %d failed, %d skipped\n", passed, failed, skipped)
}

func printCaseDiff(w io.Writer, c driver.CaseResult) {
	fmt.Fprintln(w, "       got:")
	printDiagnosticLines(w, c.Got)
	fmt.Fprintln(w, "       want:")
	printDiagnosticLines(w, c.Want)
}

func printDiagnosticLines(w io.Writer, lines []string) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "         (no diagnostics)")
		return
	}
	for _, line := range lines {
		fmt.Fprintf(w, "         %s\n", line)
	}
}
