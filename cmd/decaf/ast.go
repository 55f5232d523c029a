package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/parser"
)

func runAst(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "decaf ast requires exactly one source file")
		return 2
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", args[0], err)
		return 1
	}

	prog, err := parser.ParseProgram(source)
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(os.Stderr, "%s:%s: %s\n", args[0], parseErr.Location, parseErr.Message)
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ast.Fprint(os.Stdout, prog)
	return 0
}
