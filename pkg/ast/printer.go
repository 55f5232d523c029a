package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented tree rendering of n to w. It is the debugging
// view behind the ast subcommand and keeps one node per line so dumps stay
// diffable.
func Fprint(w io.Writer, n Node) {
	p := printer{w: w}
	p.node(n, 0)
}

// Dump renders n to a string.
func Dump(n Node) string {
	var sb strings.Builder
	Fprint(&sb, n)
	return sb.String()
}

type printer struct {
	w io.Writer
}

func (p *printer) line(depth int, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *printer) node(n Node, depth int) {
	switch n := n.(type) {
	case nil:
		return
	case *Program:
		p.line(depth, "Program")
		for _, c := range n.Classes {
			p.node(c, depth+1)
		}
	case *ClassDef:
		head := "Class " + n.Name
		if n.Parent != "" {
			head += " extends " + n.Parent
		}
		p.line(depth, "%s%s", head, at(n.Pos()))
		for _, f := range n.Fields {
			p.node(f, depth+1)
		}
	case *MethodDef:
		kind := "Method"
		if n.Static {
			kind = "StaticMethod"
		}
		p.line(depth, "%s %s %s%s", kind, n.Name, n.Ret, at(n.Pos()))
		for _, param := range n.Params {
			p.line(depth+1, "Param %s %s%s", param.Name, param.Ty, at(param.Pos()))
		}
		p.node(n.Body, depth+1)
	case *VarDef:
		p.line(depth, "VarDef %s %s%s", n.Name, n.Ty, at(n.Pos()))
		if n.Init != nil {
			p.node(n.Init, depth+1)
		}
	case *Block:
		p.line(depth, "Block%s", at(n.Pos()))
		for _, s := range n.Stmts {
			p.node(s, depth+1)
		}
	case *AssignStmt:
		p.line(depth, "Assign%s", at(n.Pos()))
		p.node(n.Dst, depth+1)
		p.node(n.Src, depth+1)
	case *ExprStmt:
		p.line(depth, "ExprStmt")
		p.node(n.X, depth+1)
	case *IfStmt:
		p.line(depth, "If%s", at(n.Pos()))
		p.node(n.Cond, depth+1)
		p.node(n.Then, depth+1)
		if n.Else != nil {
			p.node(n.Else, depth+1)
		}
	case *WhileStmt:
		p.line(depth, "While%s", at(n.Pos()))
		p.node(n.Cond, depth+1)
		p.node(n.Body, depth+1)
	case *ForStmt:
		p.line(depth, "For%s", at(n.Pos()))
		p.node(n.Init, depth+1)
		p.node(n.Cond, depth+1)
		p.node(n.Update, depth+1)
		p.node(n.Body, depth+1)
	case *ReturnStmt:
		p.line(depth, "Return%s", at(n.Pos()))
		if n.Expr != nil {
			p.node(n.Expr, depth+1)
		}
	case *BreakStmt:
		p.line(depth, "Break%s", at(n.Pos()))
	case *PrintStmt:
		p.line(depth, "Print%s", at(n.Pos()))
		for _, a := range n.Args {
			p.node(a, depth+1)
		}
	case *EmptyStmt:
		p.line(depth, "Empty%s", at(n.Pos()))
	case *IntLit:
		p.line(depth, "Int %d%s", n.Value, at(n.Pos()))
	case *BoolLit:
		p.line(depth, "Bool %t%s", n.Value, at(n.Pos()))
	case *StringLit:
		p.line(depth, "String %s%s", strconv.Quote(n.Value), at(n.Pos()))
	case *NullLit:
		p.line(depth, "Null%s", at(n.Pos()))
	case *VarSel:
		p.line(depth, "VarSel %s%s", n.Name, at(n.Pos()))
		if n.Owner != nil {
			p.node(n.Owner, depth+1)
		}
	case *IndexExpr:
		p.line(depth, "Index%s", at(n.Pos()))
		p.node(n.Arr, depth+1)
		p.node(n.Idx, depth+1)
	case *CallExpr:
		p.line(depth, "Call %s%s", n.Name, at(n.Pos()))
		if n.Owner != nil {
			p.node(n.Owner, depth+1)
		}
		for _, a := range n.Args {
			p.node(a, depth+1)
		}
	case *UnaryExpr:
		p.line(depth, "Unary %s%s", n.Op, at(n.Pos()))
		p.node(n.X, depth+1)
	case *BinaryExpr:
		p.line(depth, "Binary %s%s", n.Op, at(n.Pos()))
		p.node(n.L, depth+1)
		p.node(n.R, depth+1)
	case *ThisExpr:
		p.line(depth, "This%s", at(n.Pos()))
	case *ReadIntExpr:
		p.line(depth, "ReadInteger%s", at(n.Pos()))
	case *ReadLineExpr:
		p.line(depth, "ReadLine%s", at(n.Pos()))
	case *NewClassExpr:
		p.line(depth, "NewClass %s%s", n.Name, at(n.Pos()))
	case *NewArrayExpr:
		p.line(depth, "NewArray %s%s", n.Elem, at(n.Pos()))
		p.node(n.Len, depth+1)
	case *InstanceOfExpr:
		p.line(depth, "InstanceOf %s%s", n.Name, at(n.Pos()))
		p.node(n.X, depth+1)
	case *CastExpr:
		p.line(depth, "Cast %s%s", n.Name, at(n.Pos()))
		p.node(n.X, depth+1)
	default:
		p.line(depth, "%T", n)
	}
}

func at(pos Pos) string {
	if !pos.Known() {
		return ""
	}
	return " @" + pos.String()
}
