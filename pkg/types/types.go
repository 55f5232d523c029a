// Package types defines Decaf's semantic type model: the Ty value, the
// assignability relation between types, and the symbols and scopes that
// name resolution works against.
package types

import "strings"

// Kind enumerates the base kinds a Ty can have. The zero value is Error so
// that an uninitialized Ty is already the absorbing error type.
type Kind int

const (
	Error Kind = iota // already diagnosed; absorbs further checks
	Int
	Bool
	String
	Void
	Null
	Object // instance of a class
	Class  // class name used as a value, only valid as a qualifier
	Func   // method used as a value, never callable data
)

// Ty is a semantic type: a base kind plus an array nesting depth. Tys are
// small comparable values; == is structural equality, with class and
// method references compared by declaration identity. Arr is positive only
// for element-bearing kinds.
type Ty struct {
	Arr    int
	Kind   Kind
	Class  *ClassSymbol  // for Object and Class kinds
	Method *MethodSymbol // for the Func kind
}

var (
	ErrorTy  = Ty{Kind: Error}
	IntTy    = Ty{Kind: Int}
	BoolTy   = Ty{Kind: Bool}
	StringTy = Ty{Kind: String}
	VoidTy   = Ty{Kind: Void}
	NullTy   = Ty{Kind: Null}
)

// ObjectOf returns the instance type of class c.
func ObjectOf(c *ClassSymbol) Ty {
	return Ty{Kind: Object, Class: c}
}

// ClassOf returns the type of the class name c used as a value.
func ClassOf(c *ClassSymbol) Ty {
	return Ty{Kind: Class, Class: c}
}

// FuncOf returns the type of method m used as a value.
func FuncOf(m *MethodSymbol) Ty {
	return Ty{Kind: Func, Method: m}
}

// ArrayOf returns elem with one more array dimension.
func ArrayOf(elem Ty) Ty {
	elem.Arr++
	return elem
}

// Elem returns the element type of an array, stripping one dimension.
// It must only be called when IsArray reports true.
func (t Ty) Elem() Ty {
	t.Arr--
	return t
}

func (t Ty) IsError() bool { return t.Kind == Error }

func (t Ty) IsVoid() bool { return t.Arr == 0 && t.Kind == Void }

func (t Ty) IsArray() bool { return t.Arr > 0 }

// IsObject reports whether t is a class instance type (not an array of
// instances).
func (t Ty) IsObject() bool { return t.Arr == 0 && t.Kind == Object }

// IsClass reports whether t is a class name used as a value.
func (t Ty) IsClass() bool { return t.Arr == 0 && t.Kind == Class }

// IsFunc reports whether t is a method used as a value.
func (t Ty) IsFunc() bool { return t.Arr == 0 && t.Kind == Func }

// AssignableTo reports whether a value of type t can be assigned to a
// location of type dst. The relation is reflexive; Error absorbs both
// sides; an object type widens to any ancestor class; null assigns to any
// object or array type. Arrays are invariant, and Func and Class values
// assign only to themselves.
func (t Ty) AssignableTo(dst Ty) bool {
	if t == dst {
		return true
	}
	if t.Kind == Error || dst.Kind == Error {
		return true
	}
	if t.IsObject() && dst.IsObject() {
		return t.Class.DerivesFrom(dst.Class)
	}
	if t.Arr == 0 && t.Kind == Null && (dst.IsObject() || dst.IsArray()) {
		return true
	}
	return false
}

func (t Ty) String() string {
	var base string
	switch t.Kind {
	case Error:
		base = "error"
	case Int:
		base = "int"
	case Bool:
		base = "bool"
	case String:
		base = "string"
	case Void:
		base = "void"
	case Null:
		base = "null"
	case Object, Class:
		base = "class " + t.Class.Name()
	case Func:
		base = t.Method.sigString()
	}
	if t.Arr > 0 {
		base += strings.Repeat("[]", t.Arr)
	}
	return base
}
