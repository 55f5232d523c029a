package typechecker

import (
	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/types"
)

// scopeStack is the chain of scopes enclosing the current traversal point,
// global scope at the bottom. Both passes walk the program with the same
// stack discipline, so a name resolves against exactly the scopes a reader
// sees around it.
type scopeStack struct {
	stack []*types.Scope
}

func (s *scopeStack) push(sc *types.Scope) {
	s.stack = append(s.stack, sc)
}

func (s *scopeStack) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *scopeStack) top() *types.Scope {
	return s.stack[len(s.stack)-1]
}

// lookupBefore resolves a bare name at pos. Walking innermost-out, a
// parameter or local that is the very definition currently being
// initialized fails the lookup outright, so an initializer can never see
// its own variable. Any other local declared at or after pos is invisible
// but transparent: the search keeps going, so a use written before an
// inner shadowing declaration still reaches the earlier outer one. Fields
// and classes are never position-filtered, and neither are declarations
// without positions, which is how builder-made trees look.
func (s *scopeStack) lookupBefore(name string, pos ast.Pos, cur *ast.VarDef) types.Symbol {
	for i := len(s.stack) - 1; i >= 0; i-- {
		sym := s.stack[i].Get(name)
		if sym == nil {
			continue
		}
		if v, ok := sym.(*types.VarSymbol); ok && !v.IsField() {
			if cur != nil && v.Def == cur {
				return nil
			}
			if v.Pos().Known() && !v.Pos().Before(pos) {
				continue
			}
		}
		return sym
	}
	return nil
}

// conflictingLocal returns the declaration that blocks introducing name in
// the innermost scope: a same-named parameter or local anywhere in the
// enclosing scopes of the current method. Fields may be shadowed, so the
// walk stops at the class scope.
func (s *scopeStack) conflictingLocal(name string) types.Symbol {
	for i := len(s.stack) - 1; i >= 0; i-- {
		sc := s.stack[i]
		if sc.Kind != types.LocalScope && sc.Kind != types.ParamScope {
			break
		}
		if sym := sc.Get(name); sym != nil {
			return sym
		}
	}
	return nil
}
