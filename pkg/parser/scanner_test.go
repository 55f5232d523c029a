package parser

import (
	"testing"

	"github.com/MashPlant/decaf-go/pkg/ast"
)

func TestScanTokenKinds(t *testing.T) {
	src := `class Frame extends Base { // comment
	static int count(bool b, string s) { return 0x1f; }
}`
	toks, err := scanTokens([]byte(src))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	want := []TokenKind{
		KwClass, Ident, KwExtends, Ident, LBrace,
		KwStatic, KwInt, Ident, LParen, KwBool, Ident, Comma, KwString, Ident, RParen,
		LBrace, KwReturn, IntConst, Semi, RBrace,
		RBrace, EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Kind != want[i] {
			t.Fatalf("token %d = %s, want %s", i, tok.Kind, want[i])
		}
	}
	if toks[1].Text != "Frame" || toks[3].Text != "Base" {
		t.Fatalf("identifier texts = %q, %q", toks[1].Text, toks[3].Text)
	}
	if toks[17].Text != "0x1f" {
		t.Fatalf("integer text = %q, want 0x1f", toks[17].Text)
	}
}

func TestScanOperators(t *testing.T) {
	src := "+ - * / % = == != < <= > >= && || ! . , ; ( ) [ ] { }"
	toks, err := scanTokens([]byte(src))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	want := []TokenKind{
		Plus, Minus, Star, Slash, Percent, Assign, Eq, Ne, Lt, Le, Gt, Ge,
		AndAnd, OrOr, Not, Dot, Comma, Semi, LParen, RParen, LBrack, RBrack,
		LBrace, RBrace, EOF,
	}
	for i, tok := range toks {
		if tok.Kind != want[i] {
			t.Fatalf("token %d = %s, want %s", i, tok.Kind, want[i])
		}
	}
}

func TestScanStringEscapes(t *testing.T) {
	toks, err := scanTokens([]byte(`"a\tb\nc\"d\\e"`))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if toks[0].Kind != StringConst {
		t.Fatalf("kind = %s, want string constant", toks[0].Kind)
	}
	if got, want := toks[0].Text, "a\tb\nc\"d\\e"; got != want {
		t.Fatalf("decoded = %q, want %q", got, want)
	}
}

func TestScanPositions(t *testing.T) {
	src := "class A {\n  int x;\n}\n"
	toks, err := scanTokens([]byte(src))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	wantPos := []ast.Pos{
		{Line: 1, Column: 1},  // class
		{Line: 1, Column: 7},  // A
		{Line: 1, Column: 9},  // {
		{Line: 2, Column: 3},  // int
		{Line: 2, Column: 7},  // x
		{Line: 2, Column: 8},  // ;
		{Line: 3, Column: 1},  // }
	}
	for i, want := range wantPos {
		if toks[i].Pos != want {
			t.Fatalf("token %d at %s, want %s", i, toks[i].Pos, want)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
		pos  ast.Pos
	}{
		{"unterminated string", `int x = "abc`, "unterminated string constant", ast.Pos{Line: 1, Column: 9}},
		{"newline in string", "\"ab\ncd\"", "string constant spans multiple lines", ast.Pos{Line: 1, Column: 1}},
		{"illegal escape", `"a\qb"`, `illegal escape sequence '\q'`, ast.Pos{Line: 1, Column: 3}},
		{"stray ampersand", "a & b", "unexpected character '&'", ast.Pos{Line: 1, Column: 3}},
		{"stray pipe", "a | b", "unexpected character '|'", ast.Pos{Line: 1, Column: 3}},
		{"unknown character", "a # b", `unexpected character '#'`, ast.Pos{Line: 1, Column: 3}},
		{"malformed hex", "0xg", "malformed hexadecimal constant", ast.Pos{Line: 1, Column: 1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := scanTokens([]byte(test.src))
			if err == nil {
				t.Fatal("scan succeeded, want error")
			}
			if err.Message != test.msg {
				t.Fatalf("message = %q, want %q", err.Message, test.msg)
			}
			if err.Location != test.pos {
				t.Fatalf("location = %s, want %s", err.Location, test.pos)
			}
		})
	}
}
