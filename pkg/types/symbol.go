package types

import (
	"strings"

	"github.com/MashPlant/decaf-go/pkg/ast"
)

// Symbol is a declared entity: a class, a variable (field, parameter, or
// local), a method, or the implicit this binding. The set is closed;
// consumers dispatch with exhaustive type switches.
type Symbol interface {
	Name() string
	Pos() ast.Pos
	symbol()
}

// ClassSymbol is a declared class. Parent is nil for root classes and for
// classes whose extends link was severed to break an inheritance cycle, so
// ancestor walks always terminate.
type ClassSymbol struct {
	Def     *ast.ClassDef
	Parent  *ClassSymbol
	Members *Scope
}

func (c *ClassSymbol) Name() string { return c.Def.Name }
func (c *ClassSymbol) Pos() ast.Pos { return c.Def.Pos() }

// Lookup resolves a member name against c and then its ancestors, nearest
// class first. It returns nil when no ancestor declares the name.
func (c *ClassSymbol) Lookup(name string) Symbol {
	for cur := c; cur != nil; cur = cur.Parent {
		if sym := cur.Members.Get(name); sym != nil {
			return sym
		}
	}
	return nil
}

// DerivesFrom reports whether c is other or a descendant of other.
func (c *ClassSymbol) DerivesFrom(other *ClassSymbol) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// VarSymbol is a declared variable. Owner is the scope it was declared in,
// which distinguishes fields from parameters and locals.
type VarSymbol struct {
	Def   *ast.VarDef
	Ty    Ty
	Owner *Scope
}

func (v *VarSymbol) Name() string { return v.Def.Name }
func (v *VarSymbol) Pos() ast.Pos { return v.Def.Pos() }

// IsField reports whether v is a class field.
func (v *VarSymbol) IsField() bool {
	return v.Owner != nil && v.Owner.Kind == ClassScope
}

// MethodSymbol is a declared method. Class is the defining class; Params
// holds the declared parameters in order, excluding the this binding.
type MethodSymbol struct {
	Def    *ast.MethodDef
	Class  *ClassSymbol
	Ret    Ty
	Params []*VarSymbol
}

func (m *MethodSymbol) Name() string { return m.Def.Name }
func (m *MethodSymbol) Pos() ast.Pos { return m.Def.Pos() }

// Static reports whether m is a static method.
func (m *MethodSymbol) Static() bool { return m.Def.Static }

func (m *MethodSymbol) sigString() string {
	var sb strings.Builder
	sb.WriteString(m.Ret.String())
	sb.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Ty.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// ThisSymbol is the implicit receiver binding declared in the parameter
// scope of every instance method.
type ThisSymbol struct {
	Method *MethodSymbol
}

func (t *ThisSymbol) Name() string { return "this" }
func (t *ThisSymbol) Pos() ast.Pos { return t.Method.Pos() }

func (*ClassSymbol) symbol()  {}
func (*VarSymbol) symbol()    {}
func (*MethodSymbol) symbol() {}
func (*ThisSymbol) symbol()   {}
