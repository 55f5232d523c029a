// Package ast defines the syntax tree for Decaf programs.
//
// Nodes are plain data produced by the parser and consumed by the
// typechecker. Semantic results (types, resolved declarations) are never
// stored on nodes; the checker keeps them in side tables keyed by node.
package ast

import "fmt"

// Pos is a 1-based line/column source position. The zero value means the
// position is unknown, which is how builder-constructed trees look.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Known reports whether p carries a real source position.
func (p Pos) Known() bool {
	return p.Line > 0
}

// Before reports whether p strictly precedes q in the source.
func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() Pos
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Field is a class member: either a *VarDef or a *MethodDef.
type Field interface {
	Node
	fieldNode()
}

// Program is the root node: one or more class definitions.
type Program struct {
	Classes []*ClassDef
}

func (p *Program) Pos() Pos {
	if len(p.Classes) > 0 {
		return p.Classes[0].Pos()
	}
	return Pos{Line: 1, Column: 1}
}

// ClassDef is a class definition. Parent is empty when there is no
// extends clause.
type ClassDef struct {
	Start     Pos // position of the class keyword
	Name      string
	NamePos   Pos
	Parent    string
	ParentPos Pos
	Fields    []Field
}

func (c *ClassDef) Pos() Pos { return c.NamePos }

// VarDef declares a variable. The same node serves as a class field, a
// method parameter, and a local variable statement; only locals may carry
// an initializer. AssignPos is the position of the '=' when Init is set.
type VarDef struct {
	Ty        *SynTy
	Name      string
	NamePos   Pos
	Init      Expr
	AssignPos Pos
}

func (v *VarDef) Pos() Pos { return v.NamePos }

// MethodDef is a method definition.
type MethodDef struct {
	Start   Pos // position of the return type (or the static keyword)
	Static  bool
	Ret     *SynTy
	Name    string
	NamePos Pos
	Params  []*VarDef
	Body    *Block
}

func (m *MethodDef) Pos() Pos { return m.NamePos }

// SynTyKind enumerates the syntactic base types.
type SynTyKind int

const (
	SynInt SynTyKind = iota
	SynBool
	SynString
	SynVoid
	SynClass
)

// SynTy is a type as written in the source: a base kind plus the number of
// array dimensions. Name is set only for SynClass. Semantic types live in
// pkg/types; the checker resolves SynTy into one.
type SynTy struct {
	Start Pos
	Kind  SynTyKind
	Arr   int
	Name  string
}

func (t *SynTy) Pos() Pos { return t.Start }

func (t *SynTy) String() string {
	var base string
	switch t.Kind {
	case SynInt:
		base = "int"
	case SynBool:
		base = "bool"
	case SynString:
		base = "string"
	case SynVoid:
		base = "void"
	case SynClass:
		base = "class " + t.Name
	}
	for i := 0; i < t.Arr; i++ {
		base += "[]"
	}
	return base
}

// Statements.

// Block is a brace-delimited statement list with its own scope.
type Block struct {
	Start Pos // position of the opening brace
	Stmts []Stmt
}

// AssignStmt assigns Src to the lvalue Dst.
type AssignStmt struct {
	OpPos    Pos // position of the '='
	Dst, Src Expr
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	X Expr
}

// IfStmt is a conditional. Else is nil when absent; the parser normalizes
// both branches to blocks.
type IfStmt struct {
	Start Pos
	Cond  Expr
	Then  *Block
	Else  *Block
}

// WhileStmt is a while loop.
type WhileStmt struct {
	Start Pos
	Cond  Expr
	Body  *Block
}

// ForStmt is a for loop. Init and Update are simple statements and may be
// *EmptyStmt. Init shares the body's scope, so a loop variable declared
// there is visible throughout the body.
type ForStmt struct {
	Start  Pos
	Init   Stmt
	Cond   Expr
	Update Stmt
	Body   *Block
}

// ReturnStmt returns from the enclosing method. Expr is nil for a bare
// return.
type ReturnStmt struct {
	Start Pos
	Expr  Expr
}

// BreakStmt exits the innermost enclosing loop.
type BreakStmt struct {
	Start Pos
}

// PrintStmt is the built-in Print statement.
type PrintStmt struct {
	Start Pos
	Args  []Expr
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Start Pos
}

func (b *Block) Pos() Pos      { return b.Start }
func (a *AssignStmt) Pos() Pos { return a.OpPos }
func (e *ExprStmt) Pos() Pos   { return e.X.Pos() }
func (i *IfStmt) Pos() Pos     { return i.Start }
func (w *WhileStmt) Pos() Pos  { return w.Start }
func (f *ForStmt) Pos() Pos    { return f.Start }
func (r *ReturnStmt) Pos() Pos { return r.Start }
func (b *BreakStmt) Pos() Pos  { return b.Start }
func (p *PrintStmt) Pos() Pos  { return p.Start }
func (e *EmptyStmt) Pos() Pos  { return e.Start }

func (*Block) stmtNode()      {}
func (*VarDef) stmtNode()     {}
func (*AssignStmt) stmtNode() {}
func (*ExprStmt) stmtNode()   {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode() {}
func (*BreakStmt) stmtNode()  {}
func (*PrintStmt) stmtNode()  {}
func (*EmptyStmt) stmtNode()  {}

func (*VarDef) fieldNode()    {}
func (*MethodDef) fieldNode() {}

// Expressions.

// IntLit is an integer literal. Decaf integers are 32-bit.
type IntLit struct {
	Start Pos
	Value int32
}

type BoolLit struct {
	Start Pos
	Value bool
}

type StringLit struct {
	Start Pos
	Value string
}

type NullLit struct {
	Start Pos
}

// VarSel is a possibly qualified name: a bare identifier when Owner is
// nil, otherwise a member selection Owner.Name.
type VarSel struct {
	Owner   Expr
	Name    string
	NamePos Pos
}

// IndexExpr selects an array element.
type IndexExpr struct {
	Arr      Expr
	BrackPos Pos // position of the opening bracket
	Idx      Expr
}

// CallExpr calls the method Name, on Owner when present, otherwise
// resolved in the current class. Decaf callees are always names, never
// arbitrary expressions.
type CallExpr struct {
	Owner   Expr
	Name    string
	NamePos Pos
	Args    []Expr
}

// UnOp enumerates unary operators.
type UnOp int

const (
	Neg UnOp = iota // -
	Not             // !
)

func (op UnOp) String() string {
	if op == Neg {
		return "-"
	}
	return "!"
}

// BinOp enumerates binary operators.
type BinOp int

const (
	Add BinOp = iota // +
	Sub              // -
	Mul              // *
	Div              // /
	Mod              // %
	Lt               // <
	Le               // <=
	Gt               // >
	Ge               // >=
	Eq               // ==
	Ne               // !=
	And              // &&
	Or               // ||
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Eq:
		return "=="
	case Ne:
		return "!="
	case And:
		return "&&"
	case Or:
		return "||"
	}
	return "?"
}

type UnaryExpr struct {
	OpPos Pos
	Op    UnOp
	X     Expr
}

type BinaryExpr struct {
	OpPos Pos
	Op    BinOp
	L, R  Expr
}

// ThisExpr is the receiver reference, valid only in instance methods.
type ThisExpr struct {
	Start Pos
}

// ReadIntExpr is the built-in ReadInteger() expression.
type ReadIntExpr struct {
	Start Pos
}

// ReadLineExpr is the built-in ReadLine() expression.
type ReadLineExpr struct {
	Start Pos
}

// NewClassExpr instantiates a class: new Name().
type NewClassExpr struct {
	Start   Pos // position of the new keyword
	Name    string
	NamePos Pos
}

// NewArrayExpr allocates an array: new Elem[Len]. Elem may itself be an
// array type.
type NewArrayExpr struct {
	Start Pos
	Elem  *SynTy
	Len   Expr
}

// InstanceOfExpr is the class test instanceof(X, Name).
type InstanceOfExpr struct {
	Start   Pos
	X       Expr
	Name    string
	NamePos Pos
}

// CastExpr is the checked downcast (class Name)X.
type CastExpr struct {
	Start   Pos // position of the opening parenthesis
	Name    string
	NamePos Pos
	X       Expr
}

func (l *IntLit) Pos() Pos         { return l.Start }
func (l *BoolLit) Pos() Pos        { return l.Start }
func (l *StringLit) Pos() Pos      { return l.Start }
func (l *NullLit) Pos() Pos        { return l.Start }
func (v *VarSel) Pos() Pos         { return v.NamePos }
func (i *IndexExpr) Pos() Pos      { return i.BrackPos }
func (c *CallExpr) Pos() Pos       { return c.NamePos }
func (u *UnaryExpr) Pos() Pos      { return u.OpPos }
func (b *BinaryExpr) Pos() Pos     { return b.OpPos }
func (t *ThisExpr) Pos() Pos       { return t.Start }
func (r *ReadIntExpr) Pos() Pos    { return r.Start }
func (r *ReadLineExpr) Pos() Pos   { return r.Start }
func (n *NewClassExpr) Pos() Pos   { return n.Start }
func (n *NewArrayExpr) Pos() Pos   { return n.Start }
func (i *InstanceOfExpr) Pos() Pos { return i.Start }
func (c *CastExpr) Pos() Pos       { return c.Start }

func (*IntLit) exprNode()         {}
func (*BoolLit) exprNode()        {}
func (*StringLit) exprNode()      {}
func (*NullLit) exprNode()        {}
func (*VarSel) exprNode()         {}
func (*IndexExpr) exprNode()      {}
func (*CallExpr) exprNode()       {}
func (*UnaryExpr) exprNode()      {}
func (*BinaryExpr) exprNode()     {}
func (*ThisExpr) exprNode()       {}
func (*ReadIntExpr) exprNode()    {}
func (*ReadLineExpr) exprNode()   {}
func (*NewClassExpr) exprNode()   {}
func (*NewArrayExpr) exprNode()   {}
func (*InstanceOfExpr) exprNode() {}
func (*CastExpr) exprNode()       {}
