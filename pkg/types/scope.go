package types

// ScopeKind identifies what a scope belongs to.
type ScopeKind int

const (
	GlobalScope ScopeKind = iota // classes of the program
	ClassScope                   // members of one class
	ParamScope                   // parameters of one method, plus this
	LocalScope                   // locals of one block
)

func (k ScopeKind) String() string {
	switch k {
	case GlobalScope:
		return "global"
	case ClassScope:
		return "class"
	case ParamScope:
		return "param"
	case LocalScope:
		return "local"
	}
	return "?"
}

// Scope is a flat name-to-symbol table. Nesting is not stored here: the
// checker walks an explicit scope stack, and class scopes chain through
// ClassSymbol.Parent instead.
type Scope struct {
	Kind  ScopeKind
	Class *ClassSymbol // owning class, set for ClassScope
	syms  map[string]Symbol
}

func NewScope(kind ScopeKind) *Scope {
	return &Scope{Kind: kind, syms: make(map[string]Symbol)}
}

// Get returns the symbol declared under name, or nil.
func (s *Scope) Get(name string) Symbol {
	return s.syms[name]
}

// Insert declares sym in s. If the name is already taken the existing
// symbol is returned and the scope is unchanged; on success Insert returns
// nil and records s as the owner of a variable symbol.
func (s *Scope) Insert(sym Symbol) Symbol {
	name := sym.Name()
	if prev, ok := s.syms[name]; ok {
		return prev
	}
	if v, ok := sym.(*VarSymbol); ok {
		v.Owner = s
	}
	s.syms[name] = sym
	return nil
}

// Len returns the number of symbols declared directly in s.
func (s *Scope) Len() int {
	return len(s.syms)
}
