package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  decaf check [target|file.decaf]")
	fmt.Fprintln(os.Stderr, "  decaf <file.decaf>")
	fmt.Fprintln(os.Stderr, "  decaf test [dir ...]")
	fmt.Fprintln(os.Stderr, "  decaf ast <file.decaf>")
	fmt.Fprintln(os.Stderr, "  decaf repl")
	fmt.Fprintln(os.Stderr, "  decaf version")
}
