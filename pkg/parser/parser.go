// Package parser turns Decaf source text into a pkg/ast syntax tree.
//
// The scanner lexes the whole input into a token slice and the parser is a
// plain recursive descent over it. Parsing stops at the first syntax error,
// which is returned as a *ParseError.
package parser

import (
	"fmt"
	"strconv"

	"github.com/MashPlant/decaf-go/pkg/ast"
)

// ParseProgram parses a whole Decaf program.
func ParseProgram(source []byte) (prog *ast.Program, err error) {
	toks, serr := scanTokens(source)
	if serr != nil {
		return nil, serr
	}
	p := &parser{toks: toks}
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()
	return p.parseProgram(), nil
}

type parser struct {
	toks []Token
	pos  int
}

// bailout carries the first syntax error out of the descent.
type bailout struct {
	err *ParseError
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) peek(i int) TokenKind {
	if p.pos+i >= len(p.toks) {
		return EOF
	}
	return p.toks[p.pos+i].Kind
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) at(kind TokenKind) bool {
	return p.cur().Kind == kind
}

func (p *parser) accept(kind TokenKind) (Token, bool) {
	if p.at(kind) {
		return p.next(), true
	}
	return Token{}, false
}

func (p *parser) expect(kind TokenKind) Token {
	if !p.at(kind) {
		p.errorf(p.cur().Pos, "expected %s, found %s", kind, p.cur())
	}
	return p.next()
}

func (p *parser) errorf(pos ast.Pos, format string, args ...any) {
	panic(bailout{&ParseError{
		Message:  "syntax error: " + fmt.Sprintf(format, args...),
		Location: pos,
		AtEOF:    p.cur().Kind == EOF,
	}})
}

func (p *parser) parseProgram() *ast.Program {
	var classes []*ast.ClassDef
	if p.at(EOF) {
		p.errorf(p.cur().Pos, "expected 'class', found %s", p.cur())
	}
	for !p.at(EOF) {
		classes = append(classes, p.parseClass())
	}
	return &ast.Program{Classes: classes}
}

func (p *parser) parseClass() *ast.ClassDef {
	kw := p.expect(KwClass)
	name := p.expect(Ident)
	c := &ast.ClassDef{Start: kw.Pos, Name: name.Text, NamePos: name.Pos}
	if _, ok := p.accept(KwExtends); ok {
		parent := p.expect(Ident)
		c.Parent = parent.Text
		c.ParentPos = parent.Pos
	}
	p.expect(LBrace)
	for !p.at(RBrace) && !p.at(EOF) {
		c.Fields = append(c.Fields, p.parseField())
	}
	p.expect(RBrace)
	return c
}

func (p *parser) parseField() ast.Field {
	start := p.cur().Pos
	_, static := p.accept(KwStatic)
	ty := p.parseSynTy()
	name := p.expect(Ident)
	if !p.at(LParen) {
		if static {
			p.errorf(p.cur().Pos, "expected '(', found %s", p.cur())
		}
		p.expect(Semi)
		return &ast.VarDef{Ty: ty, Name: name.Text, NamePos: name.Pos}
	}
	m := &ast.MethodDef{
		Start:   start,
		Static:  static,
		Ret:     ty,
		Name:    name.Text,
		NamePos: name.Pos,
	}
	p.expect(LParen)
	if !p.at(RParen) {
		for {
			m.Params = append(m.Params, p.parseParam())
			if _, ok := p.accept(Comma); !ok {
				break
			}
		}
	}
	p.expect(RParen)
	m.Body = p.parseBlock()
	return m
}

func (p *parser) parseParam() *ast.VarDef {
	ty := p.parseSynTy()
	name := p.expect(Ident)
	return &ast.VarDef{Ty: ty, Name: name.Text, NamePos: name.Pos}
}

// parseSynTy parses a type in declaration position, where every bracket
// pair is an array dimension.
func (p *parser) parseSynTy() *ast.SynTy {
	ty := p.parseBaseTy()
	for p.at(LBrack) {
		p.expect(LBrack)
		p.expect(RBrack)
		ty.Arr++
	}
	return ty
}

func (p *parser) parseBaseTy() *ast.SynTy {
	tok := p.next()
	ty := &ast.SynTy{Start: tok.Pos}
	switch tok.Kind {
	case KwInt:
		ty.Kind = ast.SynInt
	case KwBool:
		ty.Kind = ast.SynBool
	case KwString:
		ty.Kind = ast.SynString
	case KwVoid:
		ty.Kind = ast.SynVoid
	case Ident:
		ty.Kind = ast.SynClass
		ty.Name = tok.Text
	default:
		p.errorf(tok.Pos, "expected type, found %s", tok)
	}
	return ty
}

func (p *parser) parseBlock() *ast.Block {
	lbrace := p.expect(LBrace)
	b := &ast.Block{Start: lbrace.Pos}
	for !p.at(RBrace) && !p.at(EOF) {
		b.Stmts = append(b.Stmts, p.parseStmt())
	}
	p.expect(RBrace)
	return b
}

// parseBranch parses a statement used as a loop or branch body and
// normalizes it to a block, so the checker sees a uniform shape.
func (p *parser) parseBranch() *ast.Block {
	s := p.parseStmt()
	if b, ok := s.(*ast.Block); ok {
		return b
	}
	return &ast.Block{Start: s.Pos(), Stmts: []ast.Stmt{s}}
}

func (p *parser) parseStmt() ast.Stmt {
	switch p.cur().Kind {
	case LBrace:
		return p.parseBlock()
	case KwIf:
		kw := p.next()
		p.expect(LParen)
		cond := p.parseExpr()
		p.expect(RParen)
		then := p.parseBranch()
		var els *ast.Block
		if _, ok := p.accept(KwElse); ok {
			els = p.parseBranch()
		}
		return &ast.IfStmt{Start: kw.Pos, Cond: cond, Then: then, Else: els}
	case KwWhile:
		kw := p.next()
		p.expect(LParen)
		cond := p.parseExpr()
		p.expect(RParen)
		body := p.parseBranch()
		return &ast.WhileStmt{Start: kw.Pos, Cond: cond, Body: body}
	case KwFor:
		kw := p.next()
		p.expect(LParen)
		init := p.parseSimple()
		p.expect(Semi)
		cond := p.parseExpr()
		p.expect(Semi)
		update := p.parseSimple()
		p.expect(RParen)
		body := p.parseBranch()
		return &ast.ForStmt{Start: kw.Pos, Init: init, Cond: cond, Update: update, Body: body}
	case KwReturn:
		kw := p.next()
		r := &ast.ReturnStmt{Start: kw.Pos}
		if !p.at(Semi) {
			r.Expr = p.parseExpr()
		}
		p.expect(Semi)
		return r
	case KwBreak:
		kw := p.next()
		p.expect(Semi)
		return &ast.BreakStmt{Start: kw.Pos}
	case KwPrint:
		kw := p.next()
		s := &ast.PrintStmt{Start: kw.Pos}
		p.expect(LParen)
		if !p.at(RParen) {
			for {
				s.Args = append(s.Args, p.parseExpr())
				if _, ok := p.accept(Comma); !ok {
					break
				}
			}
		}
		p.expect(RParen)
		p.expect(Semi)
		return s
	}
	s := p.parseSimple()
	p.expect(Semi)
	return s
}

// parseSimple parses a simple statement: a local variable definition, an
// assignment, a bare expression, or nothing at all.
func (p *parser) parseSimple() ast.Stmt {
	if p.at(Semi) || p.at(RParen) {
		return &ast.EmptyStmt{Start: p.cur().Pos}
	}
	if p.atTypeStart() {
		ty := p.parseSynTy()
		name := p.expect(Ident)
		v := &ast.VarDef{Ty: ty, Name: name.Text, NamePos: name.Pos}
		if op, ok := p.accept(Assign); ok {
			v.AssignPos = op.Pos
			v.Init = p.parseExpr()
		}
		return v
	}
	e := p.parseExpr()
	if op, ok := p.accept(Assign); ok {
		switch e.(type) {
		case *ast.VarSel, *ast.IndexExpr:
		default:
			p.errorf(op.Pos, "destination of assignment must be a variable or an array element")
		}
		return &ast.AssignStmt{OpPos: op.Pos, Dst: e, Src: p.parseExpr()}
	}
	return &ast.ExprStmt{X: e}
}

// atTypeStart distinguishes the head of a variable definition from an
// expression. An identifier starts a type only when followed by another
// identifier (A x) or a bracket pair (A[] x).
func (p *parser) atTypeStart() bool {
	switch p.cur().Kind {
	case KwInt, KwBool, KwString, KwVoid:
		return true
	case Ident:
		if p.peek(1) == Ident {
			return true
		}
		return p.peek(1) == LBrack && p.peek(2) == RBrack
	}
	return false
}

func (p *parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *parser) parseOr() ast.Expr {
	e := p.parseAnd()
	for p.at(OrOr) {
		op := p.next()
		e = &ast.BinaryExpr{OpPos: op.Pos, Op: ast.Or, L: e, R: p.parseAnd()}
	}
	return e
}

func (p *parser) parseAnd() ast.Expr {
	e := p.parseEquality()
	for p.at(AndAnd) {
		op := p.next()
		e = &ast.BinaryExpr{OpPos: op.Pos, Op: ast.And, L: e, R: p.parseEquality()}
	}
	return e
}

func (p *parser) parseEquality() ast.Expr {
	e := p.parseRelational()
	for p.at(Eq) || p.at(Ne) {
		op := p.next()
		binOp := ast.Eq
		if op.Kind == Ne {
			binOp = ast.Ne
		}
		e = &ast.BinaryExpr{OpPos: op.Pos, Op: binOp, L: e, R: p.parseRelational()}
	}
	return e
}

func (p *parser) parseRelational() ast.Expr {
	e := p.parseAdditive()
	for {
		var binOp ast.BinOp
		switch p.cur().Kind {
		case Lt:
			binOp = ast.Lt
		case Le:
			binOp = ast.Le
		case Gt:
			binOp = ast.Gt
		case Ge:
			binOp = ast.Ge
		default:
			return e
		}
		op := p.next()
		e = &ast.BinaryExpr{OpPos: op.Pos, Op: binOp, L: e, R: p.parseAdditive()}
	}
}

func (p *parser) parseAdditive() ast.Expr {
	e := p.parseMultiplicative()
	for p.at(Plus) || p.at(Minus) {
		op := p.next()
		binOp := ast.Add
		if op.Kind == Minus {
			binOp = ast.Sub
		}
		e = &ast.BinaryExpr{OpPos: op.Pos, Op: binOp, L: e, R: p.parseMultiplicative()}
	}
	return e
}

func (p *parser) parseMultiplicative() ast.Expr {
	e := p.parseUnary()
	for {
		var binOp ast.BinOp
		switch p.cur().Kind {
		case Star:
			binOp = ast.Mul
		case Slash:
			binOp = ast.Div
		case Percent:
			binOp = ast.Mod
		default:
			return e
		}
		op := p.next()
		e = &ast.BinaryExpr{OpPos: op.Pos, Op: binOp, L: e, R: p.parseUnary()}
	}
}

func (p *parser) parseUnary() ast.Expr {
	switch p.cur().Kind {
	case Minus:
		op := p.next()
		return &ast.UnaryExpr{OpPos: op.Pos, Op: ast.Neg, X: p.parseUnary()}
	case Not:
		op := p.next()
		return &ast.UnaryExpr{OpPos: op.Pos, Op: ast.Not, X: p.parseUnary()}
	case LParen:
		// A cast binds at unary strength: (class A)expr.
		if p.peek(1) == KwClass {
			lparen := p.next()
			p.expect(KwClass)
			name := p.expect(Ident)
			p.expect(RParen)
			return &ast.CastExpr{Start: lparen.Pos, Name: name.Text, NamePos: name.Pos, X: p.parseUnary()}
		}
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case Dot:
			p.next()
			name := p.expect(Ident)
			if p.at(LParen) {
				e = &ast.CallExpr{Owner: e, Name: name.Text, NamePos: name.Pos, Args: p.parseArgs()}
			} else {
				e = &ast.VarSel{Owner: e, Name: name.Text, NamePos: name.Pos}
			}
		case LBrack:
			lbrack := p.next()
			idx := p.parseExpr()
			p.expect(RBrack)
			e = &ast.IndexExpr{Arr: e, BrackPos: lbrack.Pos, Idx: idx}
		default:
			return e
		}
	}
}

func (p *parser) parsePrimary() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case IntConst:
		p.next()
		text := tok.Text
		var v int64
		var err error
		if len(text) > 1 && (text[1] == 'x' || text[1] == 'X') {
			v, err = strconv.ParseInt(text[2:], 16, 32)
		} else {
			v, err = strconv.ParseInt(text, 10, 32)
		}
		if err != nil {
			p.errorf(tok.Pos, "integer constant '%s' out of range", text)
		}
		return &ast.IntLit{Start: tok.Pos, Value: int32(v)}
	case KwTrue:
		p.next()
		return &ast.BoolLit{Start: tok.Pos, Value: true}
	case KwFalse:
		p.next()
		return &ast.BoolLit{Start: tok.Pos, Value: false}
	case StringConst:
		p.next()
		return &ast.StringLit{Start: tok.Pos, Value: tok.Text}
	case KwNull:
		p.next()
		return &ast.NullLit{Start: tok.Pos}
	case KwThis:
		p.next()
		return &ast.ThisExpr{Start: tok.Pos}
	case KwReadInteger:
		p.next()
		p.expect(LParen)
		p.expect(RParen)
		return &ast.ReadIntExpr{Start: tok.Pos}
	case KwReadLine:
		p.next()
		p.expect(LParen)
		p.expect(RParen)
		return &ast.ReadLineExpr{Start: tok.Pos}
	case KwInstanceof:
		p.next()
		p.expect(LParen)
		x := p.parseExpr()
		p.expect(Comma)
		name := p.expect(Ident)
		p.expect(RParen)
		return &ast.InstanceOfExpr{Start: tok.Pos, X: x, Name: name.Text, NamePos: name.Pos}
	case KwNew:
		return p.parseNew()
	case Ident:
		p.next()
		if p.at(LParen) {
			return &ast.CallExpr{Name: tok.Text, NamePos: tok.Pos, Args: p.parseArgs()}
		}
		return &ast.VarSel{Name: tok.Text, NamePos: tok.Pos}
	case LParen:
		p.next()
		e := p.parseExpr()
		p.expect(RParen)
		return e
	}
	p.errorf(tok.Pos, "expected expression, found %s", tok)
	return nil
}

func (p *parser) parseNew() ast.Expr {
	kw := p.expect(KwNew)
	if p.at(Ident) && p.peek(1) == LParen {
		name := p.next()
		p.expect(LParen)
		p.expect(RParen)
		return &ast.NewClassExpr{Start: kw.Pos, Name: name.Text, NamePos: name.Pos}
	}
	elem := p.parseBaseTy()
	for p.at(LBrack) && p.peek(1) == RBrack {
		p.next()
		p.next()
		elem.Arr++
	}
	p.expect(LBrack)
	length := p.parseExpr()
	p.expect(RBrack)
	return &ast.NewArrayExpr{Start: kw.Pos, Elem: elem, Len: length}
}

func (p *parser) parseArgs() []ast.Expr {
	p.expect(LParen)
	var args []ast.Expr
	if !p.at(RParen) {
		for {
			args = append(args, p.parseExpr())
			if _, ok := p.accept(Comma); !ok {
				break
			}
		}
	}
	p.expect(RParen)
	return args
}
