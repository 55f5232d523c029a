package parser

import "github.com/MashPlant/decaf-go/pkg/ast"

// TokenKind enumerates Decaf's lexical tokens.
type TokenKind int

const (
	EOF TokenKind = iota
	Ident
	IntConst
	StringConst

	// Keywords.
	KwBool
	KwBreak
	KwClass
	KwElse
	KwExtends
	KwFalse
	KwFor
	KwIf
	KwInstanceof
	KwInt
	KwNew
	KwNull
	KwPrint
	KwReadInteger
	KwReadLine
	KwReturn
	KwStatic
	KwString
	KwThis
	KwTrue
	KwVoid
	KwWhile

	// Operators and punctuation.
	Plus
	Minus
	Star
	Slash
	Percent
	Assign
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	AndAnd
	OrOr
	Not
	Dot
	Comma
	Semi
	LParen
	RParen
	LBrack
	RBrack
	LBrace
	RBrace
)

var keywords = map[string]TokenKind{
	"bool":        KwBool,
	"break":       KwBreak,
	"class":       KwClass,
	"else":        KwElse,
	"extends":     KwExtends,
	"false":       KwFalse,
	"for":         KwFor,
	"if":          KwIf,
	"instanceof":  KwInstanceof,
	"int":         KwInt,
	"new":         KwNew,
	"null":        KwNull,
	"Print":       KwPrint,
	"ReadInteger": KwReadInteger,
	"ReadLine":    KwReadLine,
	"return":      KwReturn,
	"static":      KwStatic,
	"string":      KwString,
	"this":        KwThis,
	"true":        KwTrue,
	"void":        KwVoid,
	"while":       KwWhile,
}

var kindNames = map[TokenKind]string{
	EOF:         "end of input",
	Ident:       "identifier",
	IntConst:    "integer constant",
	StringConst: "string constant",
	Plus:        "'+'",
	Minus:       "'-'",
	Star:        "'*'",
	Slash:       "'/'",
	Percent:     "'%'",
	Assign:      "'='",
	Eq:          "'=='",
	Ne:          "'!='",
	Lt:          "'<'",
	Le:          "'<='",
	Gt:          "'>'",
	Ge:          "'>='",
	AndAnd:      "'&&'",
	OrOr:        "'||'",
	Not:         "'!'",
	Dot:         "'.'",
	Comma:       "','",
	Semi:        "';'",
	LParen:      "'('",
	RParen:      "')'",
	LBrack:      "'['",
	RBrack:      "']'",
	LBrace:      "'{'",
	RBrace:      "'}'",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	for text, kw := range keywords {
		if kw == k {
			return "'" + text + "'"
		}
	}
	return "token"
}

// Token is one lexical token. Text holds the identifier name, the literal
// text of an integer constant, or the decoded value of a string constant;
// it is empty for fixed-spelling tokens.
type Token struct {
	Kind TokenKind
	Pos  ast.Pos
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return "'" + t.Text + "'"
	case IntConst:
		return "'" + t.Text + "'"
	case StringConst:
		return "string constant"
	}
	return t.Kind.String()
}
