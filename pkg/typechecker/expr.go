package typechecker

import (
	"fmt"

	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/types"
)

func (c *Checker) expr(node ast.Expr, e env) types.Ty {
	return c.exprQual(node, e, false)
}

// exprQual types one expression. qualifier is set only when node is the
// owner of a member selection, where a bare class name is legal; it is
// consumed here and never propagates to subexpressions. The resulting
// type is recorded in the Types table before returning.
func (c *Checker) exprQual(node ast.Expr, e env, qualifier bool) types.Ty {
	var ty types.Ty
	switch n := node.(type) {
	case *ast.IntLit:
		ty = types.IntTy
	case *ast.BoolLit:
		ty = types.BoolTy
	case *ast.StringLit:
		ty = types.StringTy
	case *ast.NullLit:
		ty = types.NullTy
	case *ast.ReadIntExpr:
		ty = types.IntTy
	case *ast.ReadLineExpr:
		ty = types.StringTy

	case *ast.ThisExpr:
		if e.method.Static() {
			c.issue(n.Start, ThisInStatic{})
			ty = types.ErrorTy
		} else {
			ty = types.ObjectOf(e.class)
		}

	case *ast.VarSel:
		ty = c.varSel(n, e, qualifier)

	case *ast.IndexExpr:
		arr := c.expr(n.Arr, e)
		idx := c.expr(n.Idx, e)
		if idx != types.IntTy && !idx.IsError() {
			c.issue(n.BrackPos, IndexNotInt{})
		}
		switch {
		case arr.IsArray():
			ty = arr.Elem()
		case arr.IsError():
			ty = types.ErrorTy
		default:
			c.issue(n.Arr.Pos(), IndexNotArray{})
			ty = types.ErrorTy
		}

	case *ast.UnaryExpr:
		t := c.expr(n.X, e)
		switch n.Op {
		case ast.Neg:
			if t != types.IntTy && !t.IsError() {
				c.issue(n.OpPos, IncompatibleUnary{Op: n.Op, Ty: t})
			}
			ty = types.IntTy
		case ast.Not:
			if t != types.BoolTy && !t.IsError() {
				c.issue(n.OpPos, IncompatibleUnary{Op: n.Op, Ty: t})
			}
			ty = types.BoolTy
		}

	case *ast.BinaryExpr:
		ty = c.binary(n, e)

	case *ast.CallExpr:
		ty = c.call(n, e)

	case *ast.NewClassExpr:
		if cls := c.lookupClass(n.Name); cls != nil {
			c.info.Uses[n] = cls
			ty = types.ObjectOf(cls)
		} else {
			c.issue(n.Start, NoSuchClass{Name: n.Name})
			ty = types.ErrorTy
		}

	case *ast.NewArrayExpr:
		elem := c.resolveSynTy(n.Elem)
		if elem.IsVoid() {
			c.issue(n.Elem.Pos(), VoidArrayElement{})
			elem = types.ErrorTy
		}
		if ln := c.expr(n.Len, e); ln != types.IntTy && !ln.IsError() {
			c.issue(n.Len.Pos(), NewArrayNotInt{})
		}
		if elem.IsError() {
			ty = types.ErrorTy
		} else {
			ty = types.ArrayOf(elem)
		}

	case *ast.InstanceOfExpr:
		t := c.expr(n.X, e)
		if !t.IsObject() && !t.IsError() {
			c.issue(n.Start, NotObject{Ty: t})
		}
		if cls := c.lookupClass(n.Name); cls != nil {
			c.info.Uses[n] = cls
		} else {
			c.issue(n.Start, NoSuchClass{Name: n.Name})
		}
		ty = types.BoolTy

	case *ast.CastExpr:
		t := c.expr(n.X, e)
		if !t.IsObject() && !t.IsError() {
			c.issue(n.Start, NotObject{Ty: t})
		}
		if cls := c.lookupClass(n.Name); cls != nil {
			c.info.Uses[n] = cls
			ty = types.ObjectOf(cls)
		} else {
			c.issue(n.Start, NoSuchClass{Name: n.Name})
			ty = types.ErrorTy
		}

	default:
		panic(fmt.Sprintf("typechecker: unexpected expression %T", node))
	}
	c.info.Types[node] = ty
	return ty
}

// varSel resolves a name. Bare names go through the scope stack with the
// declare-before-use rule; qualified names resolve against the owner's
// class. A field reached through an object is only accessible when the
// current class derives from the owner expression's class.
func (c *Checker) varSel(n *ast.VarSel, e env, qualifier bool) types.Ty {
	if n.Owner == nil {
		cutoff := n.NamePos
		if e.varDef != nil {
			cutoff = e.varDef.Pos()
		}
		switch sym := c.scopes.lookupBefore(n.Name, cutoff, e.varDef).(type) {
		case *types.VarSymbol:
			c.info.Uses[n] = sym
			if sym.IsField() && e.method.Static() {
				c.issue(n.NamePos, RefInStatic{Field: n.Name, Func: e.method.Name()})
			}
			return sym.Ty
		case *types.MethodSymbol:
			c.info.Uses[n] = sym
			if e.method.Static() && !sym.Static() {
				c.issue(n.NamePos, RefInStatic{Field: n.Name, Func: e.method.Name()})
			}
			return types.FuncOf(sym)
		case *types.ThisSymbol:
			c.info.Uses[n] = sym
			return types.ObjectOf(e.class)
		case *types.ClassSymbol:
			if qualifier {
				return types.ClassOf(sym)
			}
		}
		c.issue(n.NamePos, UndeclaredVar{Name: n.Name})
		return types.ErrorTy
	}

	owner := c.exprQual(n.Owner, e, true)
	if owner.IsError() {
		return types.ErrorTy
	}
	if owner.IsObject() {
		switch sym := owner.Class.Lookup(n.Name).(type) {
		case *types.VarSymbol:
			c.info.Uses[n] = sym
			if !e.class.DerivesFrom(owner.Class) {
				c.issue(n.NamePos, PrivateFieldAccess{Name: n.Name, Owner: owner})
			}
			return sym.Ty
		case *types.MethodSymbol:
			c.info.Uses[n] = sym
			return types.FuncOf(sym)
		case nil:
			c.issue(n.NamePos, NoSuchField{Name: n.Name, Owner: owner})
			return types.ErrorTy
		}
	}
	c.issue(n.NamePos, BadFieldAccess{Name: n.Name, Owner: owner})
	return types.ErrorTy
}

// binary types a binary expression. The result type depends only on the
// operator, so one bad operand never cascades. When either side already
// has the error type the operand check is skipped entirely.
func (c *Checker) binary(n *ast.BinaryExpr, e env) types.Ty {
	l := c.expr(n.L, e)
	r := c.expr(n.R, e)
	var ok bool
	var ret types.Ty
	switch n.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod:
		ok = l == types.IntTy && r == types.IntTy
		ret = types.IntTy
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		ok = l == types.IntTy && r == types.IntTy
		ret = types.BoolTy
	case ast.Eq, ast.Ne:
		ok = l.AssignableTo(r) || r.AssignableTo(l)
		ret = types.BoolTy
	case ast.And, ast.Or:
		ok = l == types.BoolTy && r == types.BoolTy
		ret = types.BoolTy
	}
	if !ok && !l.IsError() && !r.IsError() {
		c.issue(n.OpPos, IncompatibleBinary{L: l, Op: n.Op.String(), R: r})
	}
	return ret
}
