package parser

import (
	"fmt"
	"strings"

	"github.com/MashPlant/decaf-go/pkg/ast"
)

type scanner struct {
	src  []byte
	off  int
	line int
	col  int
}

// scanTokens lexes the whole source up front, ending with an EOF token.
// The parser indexes into the slice, which keeps lookahead trivial.
func scanTokens(src []byte) ([]Token, *ParseError) {
	s := &scanner{src: src, line: 1, col: 1}
	var toks []Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

func (s *scanner) pos() ast.Pos {
	return ast.Pos{Line: s.line, Column: s.col}
}

func (s *scanner) peek() byte {
	if s.off >= len(s.src) {
		return 0
	}
	return s.src[s.off]
}

func (s *scanner) peekAt(i int) byte {
	if s.off+i >= len(s.src) {
		return 0
	}
	return s.src[s.off+i]
}

func (s *scanner) advance() byte {
	c := s.src[s.off]
	s.off++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func (s *scanner) errorf(pos ast.Pos, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Location: pos}
}

func (s *scanner) skipBlanks() {
	for s.off < len(s.src) {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		case '/':
			if s.peekAt(1) != '/' {
				return
			}
			for s.off < len(s.src) && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *scanner) next() (Token, *ParseError) {
	s.skipBlanks()
	pos := s.pos()
	if s.off >= len(s.src) {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	c := s.peek()
	switch {
	case isAlpha(c):
		return s.ident(pos), nil
	case isDigit(c):
		return s.number(pos)
	case c == '"':
		return s.stringConst(pos)
	}

	s.advance()
	fixed := func(kind TokenKind) (Token, *ParseError) {
		return Token{Kind: kind, Pos: pos}, nil
	}
	switch c {
	case '+':
		return fixed(Plus)
	case '-':
		return fixed(Minus)
	case '*':
		return fixed(Star)
	case '/':
		return fixed(Slash)
	case '%':
		return fixed(Percent)
	case '=':
		if s.peek() == '=' {
			s.advance()
			return fixed(Eq)
		}
		return fixed(Assign)
	case '!':
		if s.peek() == '=' {
			s.advance()
			return fixed(Ne)
		}
		return fixed(Not)
	case '<':
		if s.peek() == '=' {
			s.advance()
			return fixed(Le)
		}
		return fixed(Lt)
	case '>':
		if s.peek() == '=' {
			s.advance()
			return fixed(Ge)
		}
		return fixed(Gt)
	case '&':
		if s.peek() == '&' {
			s.advance()
			return fixed(AndAnd)
		}
		return Token{}, s.errorf(pos, "unexpected character '&'")
	case '|':
		if s.peek() == '|' {
			s.advance()
			return fixed(OrOr)
		}
		return Token{}, s.errorf(pos, "unexpected character '|'")
	case '.':
		return fixed(Dot)
	case ',':
		return fixed(Comma)
	case ';':
		return fixed(Semi)
	case '(':
		return fixed(LParen)
	case ')':
		return fixed(RParen)
	case '[':
		return fixed(LBrack)
	case ']':
		return fixed(RBrack)
	case '{':
		return fixed(LBrace)
	case '}':
		return fixed(RBrace)
	}
	return Token{}, s.errorf(pos, "unexpected character %q", c)
}

func (s *scanner) ident(pos ast.Pos) Token {
	start := s.off
	for s.off < len(s.src) && isAlnum(s.peek()) {
		s.advance()
	}
	text := string(s.src[start:s.off])
	if kw, ok := keywords[text]; ok {
		return Token{Kind: kw, Pos: pos}
	}
	return Token{Kind: Ident, Pos: pos, Text: text}
}

func (s *scanner) number(pos ast.Pos) (Token, *ParseError) {
	start := s.off
	if s.peek() == '0' && (s.peekAt(1) == 'x' || s.peekAt(1) == 'X') {
		s.advance()
		s.advance()
		if !isHexDigit(s.peek()) {
			return Token{}, s.errorf(pos, "malformed hexadecimal constant")
		}
		for s.off < len(s.src) && isHexDigit(s.peek()) {
			s.advance()
		}
	} else {
		for s.off < len(s.src) && isDigit(s.peek()) {
			s.advance()
		}
	}
	return Token{Kind: IntConst, Pos: pos, Text: string(s.src[start:s.off])}, nil
}

func (s *scanner) stringConst(pos ast.Pos) (Token, *ParseError) {
	s.advance() // opening quote
	var sb strings.Builder
	for {
		if s.off >= len(s.src) {
			return Token{}, s.errorf(pos, "unterminated string constant")
		}
		c := s.peek()
		if c == '\n' {
			return Token{}, s.errorf(pos, "string constant spans multiple lines")
		}
		escPos := s.pos()
		s.advance()
		switch c {
		case '"':
			return Token{Kind: StringConst, Pos: pos, Text: sb.String()}, nil
		case '\\':
			if s.off >= len(s.src) {
				return Token{}, s.errorf(pos, "unterminated string constant")
			}
			e := s.advance()
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				return Token{}, s.errorf(escPos, "illegal escape sequence '\\%c'", e)
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}
