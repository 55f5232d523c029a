package typechecker

import (
	"fmt"

	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/types"
)

// block checks b's statements in b's own scope and reports whether the
// block definitely returns a value. The verdict freezes at the first
// decisive statement, one that definitely returns or is a break; exactly
// one statement after that point is reported as unreachable, while
// checking itself continues so later declarations and errors are still
// seen.
func (c *Checker) block(b *ast.Block, e env) bool {
	var ret, decided, reported bool
	c.scoped(c.info.Scopes[b], func() {
		for _, st := range b.Stmts {
			if decided && !reported {
				reported = true
				c.issue(st.Pos(), UnreachableCode{})
			}
			t := c.stmt(st, e)
			if !decided {
				if t {
					ret, decided = true, true
				} else if _, isBreak := st.(*ast.BreakStmt); isBreak {
					decided = true
				}
			}
		}
	})
	return ret
}

// stmt checks a single statement and reports whether it definitely
// returns a value. Loops never do, since their bodies may not run.
func (c *Checker) stmt(s ast.Stmt, e env) bool {
	switch s := s.(type) {
	case *ast.VarDef:
		sym := c.info.Defs[s].(*types.VarSymbol)
		if s.Init != nil {
			init := c.expr(s.Init, e.inVarDef(s))
			if !init.AssignableTo(sym.Ty) {
				c.issue(s.AssignPos, IncompatibleBinary{L: sym.Ty, Op: "=", R: init})
			}
		}
		return false

	case *ast.AssignStmt:
		dst := c.expr(s.Dst, e)
		src := c.expr(s.Src, e)
		if dst.IsFunc() || !src.AssignableTo(dst) {
			c.issue(s.OpPos, IncompatibleBinary{L: dst, Op: "=", R: src})
		}
		return false

	case *ast.ExprStmt:
		c.expr(s.X, e)
		return false

	case *ast.IfStmt:
		c.checkBool(s.Cond, e)
		t := c.block(s.Then, e)
		f := false
		if s.Else != nil {
			f = c.block(s.Else, e)
		}
		return t && f

	case *ast.WhileStmt:
		c.checkBool(s.Cond, e)
		c.block(s.Body, e.inLoop())
		return false

	case *ast.ForStmt:
		c.scoped(c.info.Scopes[s.Body], func() {
			c.stmt(s.Init, e)
			c.checkBool(s.Cond, e)
			c.stmt(s.Update, e)
			for _, st := range s.Body.Stmts {
				c.stmt(st, e)
			}
		})
		return false

	case *ast.ReturnStmt:
		actual := types.VoidTy
		if s.Expr != nil {
			actual = c.expr(s.Expr, e)
		}
		if !actual.AssignableTo(e.method.Ret) {
			c.issue(s.Start, ReturnMismatch{Expect: e.method.Ret, Actual: actual})
		}
		// Even a mismatched or bare return ends its path, so reachability
		// stays consistent after the diagnostic.
		return true

	case *ast.BreakStmt:
		if e.loops == 0 {
			c.issue(s.Start, BreakOutOfLoop{})
		}
		return false

	case *ast.PrintStmt:
		for i, a := range s.Args {
			t := c.expr(a, e)
			if t != types.IntTy && t != types.BoolTy && t != types.StringTy && !t.IsError() {
				c.issue(a.Pos(), BadPrintArg{Index: i + 1, Ty: t})
			}
		}
		return false

	case *ast.EmptyStmt:
		return false

	case *ast.Block:
		return c.block(s, e)
	}
	panic(fmt.Sprintf("typechecker: unexpected statement %T", s))
}

// checkBool requires cond to have bool type; the error type passes.
func (c *Checker) checkBool(cond ast.Expr, e env) {
	if t := c.expr(cond, e); t != types.BoolTy && !t.IsError() {
		c.issue(cond.Pos(), TestNotBool{})
	}
}
