package typechecker

import (
	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/types"
)

// Info holds the results of a check as side tables keyed by syntax node.
// Each entry is written exactly once; consumers may read them freely
// without further synchronization.
type Info struct {
	// Types maps every visited expression to its type. Expressions the
	// checker skips, such as arguments of a call with the wrong arity,
	// have no entry.
	Types map[ast.Expr]types.Ty

	// Defs maps each declaration node to the symbol it introduces.
	Defs map[ast.Node]types.Symbol

	// Uses maps name references to the declaration they resolved to:
	// variable selectors to variables, calls to methods, and class name
	// references in new, instanceof and cast expressions to classes.
	Uses map[ast.Node]types.Symbol

	// Scopes maps scope-owning nodes to their scope: the program to the
	// global scope, classes to their member scope, methods to their
	// parameter scope and blocks to their local scope. A for statement's
	// body block also holds the declarations of the for header.
	Scopes map[ast.Node]*types.Scope
}

func newInfo() *Info {
	return &Info{
		Types:  make(map[ast.Expr]types.Ty),
		Defs:   make(map[ast.Node]types.Symbol),
		Uses:   make(map[ast.Node]types.Symbol),
		Scopes: make(map[ast.Node]*types.Scope),
	}
}

// Checker runs the two semantic passes over a program: the symbol pass,
// which builds scopes and declarations, and the type pass, which types
// every expression and enforces the statement rules. A Checker is used
// for a single program and then discarded.
type Checker struct {
	info   *Info
	diags  []*Diagnostic
	global *types.Scope
	scopes scopeStack
}

func New() *Checker {
	return &Checker{info: newInfo()}
}

// Check analyzes prog and returns the collected side tables along with
// every diagnostic, in the order the passes encountered them. The tree is
// not modified. Checking always runs to completion; an erroneous
// subexpression gets the error type, which silences follow-on complaints
// about its uses.
func (c *Checker) Check(prog *ast.Program) (*Info, []*Diagnostic) {
	c.resolve(prog)
	c.checkProgram(prog)
	return c.info, c.diags
}

func (c *Checker) issue(pos ast.Pos, kind Kind) {
	c.diags = append(c.diags, &Diagnostic{Pos: pos, Kind: kind})
}

// scoped runs fn with sc pushed on the scope stack.
func (c *Checker) scoped(sc *types.Scope, fn func()) {
	c.scopes.push(sc)
	defer c.scopes.pop()
	fn()
}

func (c *Checker) lookupClass(name string) *types.ClassSymbol {
	if sym, ok := c.global.Get(name).(*types.ClassSymbol); ok {
		return sym
	}
	return nil
}

// env carries the traversal context of the type pass: the enclosing class
// and method, the number of enclosing while statements, and the local
// variable whose initializer is being checked, if any. It is copied by
// value at every call, so entering a loop or an initializer changes the
// context for that subtree only.
type env struct {
	class  *types.ClassSymbol
	method *types.MethodSymbol
	loops  int
	varDef *ast.VarDef
}

func (e env) inLoop() env {
	e.loops++
	return e
}

func (e env) inVarDef(v *ast.VarDef) env {
	e.varDef = v
	return e
}

// resolveSynTy maps a syntactic type to a semantic one. An unknown class
// name or a void array element is reported and yields the error type.
// Plain void is allowed; callers that declare variables reject it.
func (c *Checker) resolveSynTy(t *ast.SynTy) types.Ty {
	if t.Kind == ast.SynVoid && t.Arr > 0 {
		c.issue(t.Pos(), VoidArrayElement{})
		return types.ErrorTy
	}
	var base types.Ty
	switch t.Kind {
	case ast.SynInt:
		base = types.IntTy
	case ast.SynBool:
		base = types.BoolTy
	case ast.SynString:
		base = types.StringTy
	case ast.SynVoid:
		base = types.VoidTy
	case ast.SynClass:
		cls := c.lookupClass(t.Name)
		if cls == nil {
			c.issue(t.Pos(), NoSuchClass{Name: t.Name})
			return types.ErrorTy
		}
		base = types.ObjectOf(cls)
	}
	base.Arr = t.Arr
	return base
}

// resolveVarTy resolves the declared type of a variable, rejecting void.
func (c *Checker) resolveVarTy(v *ast.VarDef) types.Ty {
	ty := c.resolveSynTy(v.Ty)
	if ty == types.VoidTy {
		c.issue(v.Pos(), VoidVar{Name: v.Name})
		return types.ErrorTy
	}
	return ty
}

// checkProgram is the type pass. It revisits every method body with the
// scopes the symbol pass built and types each statement and expression.
func (c *Checker) checkProgram(prog *ast.Program) {
	c.scoped(c.global, func() {
		for _, cd := range prog.Classes {
			sym, ok := c.info.Defs[cd].(*types.ClassSymbol)
			if !ok {
				continue // duplicate class, only the first declaration counts
			}
			c.scoped(sym.Members, func() {
				for _, f := range cd.Fields {
					md, ok := f.(*ast.MethodDef)
					if !ok {
						continue
					}
					m := c.info.Defs[md].(*types.MethodSymbol)
					c.scoped(c.info.Scopes[md], func() {
						e := env{class: sym, method: m}
						returns := c.block(md.Body, e)
						if !returns && m.Ret != types.VoidTy && !m.Ret.IsError() {
							c.issue(md.Body.Pos(), NoReturn{})
						}
					})
				}
			})
		}
	})
}
