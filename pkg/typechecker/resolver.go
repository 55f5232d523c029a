package typechecker

import (
	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/types"
)

const (
	mainClass  = "Main"
	mainMethod = "main"
)

// resolve is the symbol pass. It declares every class, links the
// inheritance graph and severs cycles, declares members parents-first so
// inherited names are visible for conflict checks, builds the scopes of
// every method body, and finally verifies the entry point.
func (c *Checker) resolve(prog *ast.Program) {
	c.global = types.NewScope(types.GlobalScope)
	c.info.Scopes[prog] = c.global

	for _, cd := range prog.Classes {
		sym := &types.ClassSymbol{Def: cd, Members: types.NewScope(types.ClassScope)}
		sym.Members.Class = sym
		if prev := c.global.Insert(sym); prev != nil {
			c.issue(cd.Pos(), ConflictDeclaration{Name: cd.Name, Earlier: prev.Pos()})
			continue
		}
		c.info.Defs[cd] = sym
		c.info.Scopes[cd] = sym.Members
	}

	for _, cd := range prog.Classes {
		sym, ok := c.info.Defs[cd].(*types.ClassSymbol)
		if !ok || cd.Parent == "" {
			continue
		}
		if parent := c.lookupClass(cd.Parent); parent != nil {
			sym.Parent = parent
		} else {
			c.issue(cd.ParentPos, NoSuchClass{Name: cd.Parent})
		}
	}

	c.breakCycles(prog)

	declared := make(map[*types.ClassSymbol]bool)
	var declare func(sym *types.ClassSymbol)
	declare = func(sym *types.ClassSymbol) {
		if declared[sym] {
			return
		}
		declared[sym] = true
		if sym.Parent != nil {
			declare(sym.Parent)
		}
		c.declareMembers(sym)
	}
	c.scoped(c.global, func() {
		for _, cd := range prog.Classes {
			if sym, ok := c.info.Defs[cd].(*types.ClassSymbol); ok {
				declare(sym)
			}
		}
	})

	c.checkMain(prog)
}

// breakCycles reports every class on an inheritance cycle and severs its
// parent link so ancestor walks terminate.
func (c *Checker) breakCycles(prog *ast.Program) {
	// 0 unvisited, 1 on the current chain, 2 finished
	state := make(map[*types.ClassSymbol]int)
	for _, cd := range prog.Classes {
		sym, ok := c.info.Defs[cd].(*types.ClassSymbol)
		if !ok || state[sym] != 0 {
			continue
		}
		var chain []*types.ClassSymbol
		cur := sym
		for cur != nil && state[cur] == 0 {
			state[cur] = 1
			chain = append(chain, cur)
			cur = cur.Parent
		}
		if cur != nil && state[cur] == 1 {
			i := 0
			for chain[i] != cur {
				i++
			}
			for _, on := range chain[i:] {
				c.issue(on.Pos(), CyclicInheritance{})
				on.Parent = nil
			}
		}
		for _, seen := range chain {
			state[seen] = 2
		}
	}
}

func (c *Checker) declareMembers(sym *types.ClassSymbol) {
	c.scoped(sym.Members, func() {
		for _, f := range sym.Def.Fields {
			switch f := f.(type) {
			case *ast.VarDef:
				c.declareField(sym, f)
			case *ast.MethodDef:
				c.declareMethod(sym, f)
			}
		}
	})
}

func (c *Checker) declareField(cls *types.ClassSymbol, v *ast.VarDef) {
	fld := &types.VarSymbol{Def: v, Ty: c.resolveVarTy(v)}
	c.info.Defs[v] = fld
	if prev := cls.Members.Get(v.Name); prev != nil {
		c.issue(v.Pos(), ConflictDeclaration{Name: v.Name, Earlier: prev.Pos()})
		return
	}
	if cls.Parent != nil {
		switch prev := cls.Parent.Lookup(v.Name).(type) {
		case *types.VarSymbol:
			c.issue(v.Pos(), OverrideVar{Name: v.Name})
			return
		case *types.MethodSymbol:
			c.issue(v.Pos(), ConflictDeclaration{Name: v.Name, Earlier: prev.Pos()})
			return
		}
	}
	cls.Members.Insert(fld)
}

// declareMethod declares md in cls and builds its parameter and body
// scopes. The scopes are built even when the method itself conflicts with
// an earlier member, since its body is still checked.
func (c *Checker) declareMethod(cls *types.ClassSymbol, md *ast.MethodDef) {
	m := &types.MethodSymbol{Def: md, Class: cls, Ret: c.resolveSynTy(md.Ret)}
	c.info.Defs[md] = m

	params := types.NewScope(types.ParamScope)
	c.info.Scopes[md] = params
	c.scoped(params, func() {
		if !md.Static {
			params.Insert(&types.ThisSymbol{Method: m})
		}
		for _, p := range md.Params {
			v := &types.VarSymbol{Def: p, Ty: c.resolveVarTy(p)}
			c.info.Defs[p] = v
			m.Params = append(m.Params, v)
			if prev := params.Get(p.Name); prev != nil {
				c.issue(p.Pos(), ConflictDeclaration{Name: p.Name, Earlier: prev.Pos()})
				continue
			}
			params.Insert(v)
		}
		c.blockScope(md.Body)
	})

	if prev := cls.Members.Get(md.Name); prev != nil {
		c.issue(md.Pos(), ConflictDeclaration{Name: md.Name, Earlier: prev.Pos()})
		return
	}
	if cls.Parent != nil {
		switch prev := cls.Parent.Lookup(md.Name).(type) {
		case *types.VarSymbol:
			c.issue(md.Pos(), ConflictDeclaration{Name: md.Name, Earlier: prev.Pos()})
			return
		case *types.MethodSymbol:
			if md.Static || prev.Static() {
				c.issue(md.Pos(), ConflictDeclaration{Name: md.Name, Earlier: prev.Pos()})
				return
			}
			if !overrideCompatible(m, prev) {
				c.issue(md.Pos(), BadOverride{Name: md.Name})
				return
			}
		}
	}
	cls.Members.Insert(m)
}

// overrideCompatible reports whether child may override parent: same
// arity, covariant return type and contravariant parameter types.
func overrideCompatible(child, parent *types.MethodSymbol) bool {
	if len(child.Params) != len(parent.Params) {
		return false
	}
	if !child.Ret.AssignableTo(parent.Ret) {
		return false
	}
	for i, p := range parent.Params {
		if !p.Ty.AssignableTo(child.Params[i].Ty) {
			return false
		}
	}
	return true
}

// blockScope builds the local scope of b and declares the variables of
// its statements, recursing into nested blocks.
func (c *Checker) blockScope(b *ast.Block) {
	sc := types.NewScope(types.LocalScope)
	c.info.Scopes[b] = sc
	c.scoped(sc, func() {
		for _, st := range b.Stmts {
			c.stmtScope(st)
		}
	})
}

func (c *Checker) stmtScope(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.VarDef:
		c.declareLocal(s)
	case *ast.Block:
		c.blockScope(s)
	case *ast.IfStmt:
		c.blockScope(s.Then)
		if s.Else != nil {
			c.blockScope(s.Else)
		}
	case *ast.WhileStmt:
		c.blockScope(s.Body)
	case *ast.ForStmt:
		// The header's declarations share the body's scope.
		sc := types.NewScope(types.LocalScope)
		c.info.Scopes[s.Body] = sc
		c.scoped(sc, func() {
			c.stmtScope(s.Init)
			c.stmtScope(s.Update)
			for _, st := range s.Body.Stmts {
				c.stmtScope(st)
			}
		})
	}
}

func (c *Checker) declareLocal(v *ast.VarDef) {
	sym := &types.VarSymbol{Def: v, Ty: c.resolveVarTy(v)}
	c.info.Defs[v] = sym
	if prev := c.scopes.conflictingLocal(v.Name); prev != nil {
		c.issue(v.Pos(), ConflictDeclaration{Name: v.Name, Earlier: prev.Pos()})
		return
	}
	c.scopes.top().Insert(sym)
}

// checkMain verifies the entry point: a class named Main with a static,
// parameterless void method named main.
func (c *Checker) checkMain(prog *ast.Program) {
	if cls := c.lookupClass(mainClass); cls != nil {
		if m, ok := cls.Lookup(mainMethod).(*types.MethodSymbol); ok {
			if m.Static() && m.Ret == types.VoidTy && len(m.Params) == 0 {
				return
			}
		}
	}
	c.issue(prog.Pos(), NoMainClass{})
}
