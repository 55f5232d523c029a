package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/MashPlant/decaf-go/pkg/driver"
	"github.com/MashPlant/decaf-go/pkg/parser"
)

const (
	historyFile = ".decaf_history"
	promptMain  = ">>> "
	promptCont  = "... "
	replBanner  = "Decaf checker. Ctrl+C cancels the current input, Ctrl+D exits. Type :help for commands."
	replHelp    = `
REPL commands:
  :help            Show this help
  :quit / :exit    Exit
  :load <file>     Check a source file
`
)

func runRepl(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "decaf repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 2
	}

	fmt.Println(replBanner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		source, ok := readProgram(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			if done := replCommand(ln, trimmed); done {
				break
			}
			continue
		}

		checkSnippet(source)
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

func checkSnippet(source string) {
	report, err := driver.CheckSource("repl", []byte(source))
	if err != nil {
		var syntaxErr *driver.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Printf("%s: %s\n", syntaxErr.Err.Location, syntaxErr.Err.Message)
			return
		}
		fmt.Println(err)
		return
	}
	if report.Clean() {
		fmt.Println("ok")
		return
	}
	for _, d := range report.Diagnostics {
		fmt.Println(d.String())
	}
}

func replCommand(ln *liner.State, line string) (exit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		fmt.Print(replHelp)
	case ":quit", ":exit":
		return true
	case ":load":
		if len(fields) < 2 {
			fmt.Println("usage: :load <file>")
			return false
		}
		report, err := driver.CheckFile(fields[1])
		if err != nil {
			fmt.Println(err)
			return false
		}
		if report.Clean() {
			fmt.Println("ok")
		} else {
			_ = driver.WriteReport(os.Stdout, report)
		}
		ln.AppendHistory(line)
	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false
}

// readProgram accumulates lines until the buffer parses as a complete
// program. A parse error at the end of the input means "keep reading"; any
// other outcome hands the buffer to the caller, which reports it.
func readProgram(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the buffer and starts over.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		source := b.String()
		trimmed := strings.TrimSpace(source)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return source, true
		}
		if _, err := parser.ParseProgram([]byte(source)); err == nil || !parser.IncompleteInput(err) {
			return source, true
		}
	}
}
