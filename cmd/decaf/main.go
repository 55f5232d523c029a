package main

import (
	"fmt"
	"os"
	"strings"
)

const cliToolVersion = "decaf 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "check":
		return runCheck(args[1:])
	case "test":
		return runTest(args[1:])
	case "ast":
		return runAst(args[1:])
	case "repl":
		return runRepl(args[1:])
	default:
		if strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(os.Stderr, "unknown flag %s\n", args[0])
			printUsage()
			return 2
		}
		// A bare file or target name means check.
		return runCheck(args)
	}
}
