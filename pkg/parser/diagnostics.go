package parser

import (
	"errors"

	"github.com/MashPlant/decaf-go/pkg/ast"
)

// ParseError includes a message plus a best-effort source location.
// Scanning and parsing stop at the first error.
type ParseError struct {
	Message  string
	Location ast.Pos
	AtEOF    bool // the parser ran out of input
}

func (e *ParseError) Error() string {
	return e.Message
}

// IncompleteInput reports whether err is a parse error caused by reaching
// the end of the input. Interactive callers treat this as "keep reading"
// rather than a failure.
func IncompleteInput(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr) && parseErr.AtEOF
}
