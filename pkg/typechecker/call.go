package typechecker

import (
	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/types"
)

// lengthMethod is the built-in nullary method every array type carries.
const lengthMethod = "length"

// call types a method call. An unqualified call resolves through the
// current class rather than the scope stack, so locals never shadow
// methods in call position. array.length() is handled before member
// lookup; its arguments are not visited when the arity is wrong.
func (c *Checker) call(n *ast.CallExpr, e env) types.Ty {
	if n.Owner == nil {
		return c.checkCall(n, e.class.Lookup(n.Name), types.ObjectOf(e.class), e)
	}
	owner := c.exprQual(n.Owner, e, true)
	if owner.IsError() {
		return types.ErrorTy
	}
	if n.Name == lengthMethod && owner.IsArray() {
		if len(n.Args) > 0 {
			c.issue(n.NamePos, LengthWithArgument{Count: len(n.Args)})
		}
		return types.IntTy
	}
	if owner.IsObject() || owner.IsClass() {
		return c.checkCall(n, owner.Class.Lookup(n.Name), owner, e)
	}
	c.issue(n.NamePos, BadFieldAccess{Name: n.Name, Owner: owner})
	return types.ErrorTy
}

// checkCall validates the resolved callee and the arguments. owner is the
// type the name was resolved against, used in messages and to enforce the
// static call rules. On an arity mismatch the arguments are skipped; the
// result is the callee's return type even then.
func (c *Checker) checkCall(n *ast.CallExpr, sym types.Symbol, owner types.Ty, e env) types.Ty {
	if sym == nil {
		c.issue(n.NamePos, NoSuchField{Name: n.Name, Owner: owner})
		return types.ErrorTy
	}
	m, ok := sym.(*types.MethodSymbol)
	if !ok {
		c.issue(n.NamePos, NotFunc{Name: n.Name, Owner: owner})
		return types.ErrorTy
	}
	c.info.Uses[n] = m
	if n.Owner == nil {
		if e.method.Static() && !m.Static() {
			c.issue(n.NamePos, RefInStatic{Field: n.Name, Func: e.method.Name()})
		}
	} else if owner.IsClass() && !m.Static() {
		c.issue(n.NamePos, BadFieldAccess{Name: n.Name, Owner: owner})
	}
	if len(n.Args) != len(m.Params) {
		c.issue(n.NamePos, ArgcMismatch{Name: n.Name, Expect: len(m.Params), Actual: len(n.Args)})
		return m.Ret
	}
	for i, a := range n.Args {
		at := c.expr(a, e)
		if !at.AssignableTo(m.Params[i].Ty) {
			c.issue(a.Pos(), ArgMismatch{Index: i + 1, Arg: at, Param: m.Params[i].Ty})
		}
	}
	return m.Ret
}
