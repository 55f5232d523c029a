package types

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/MashPlant/decaf-go/pkg/ast"
)

func newClass(name string, parent *ClassSymbol) *ClassSymbol {
	c := &ClassSymbol{
		Def:     ast.Class(name, ""),
		Parent:  parent,
		Members: NewScope(ClassScope),
	}
	c.Members.Class = c
	return c
}

func newMethod(c *ClassSymbol, name string, ret Ty, params ...Ty) *MethodSymbol {
	m := &MethodSymbol{
		Def:   ast.Fn(name, ast.TVoid(), nil, ast.Blk()),
		Class: c,
		Ret:   ret,
	}
	for _, p := range params {
		m.Params = append(m.Params, &VarSymbol{Def: ast.Var(ast.TInt(), "p"), Ty: p})
	}
	return m
}

func TestAssignableTo(t *testing.T) {
	animal := newClass("Animal", nil)
	dog := newClass("Dog", animal)
	pug := newClass("Pug", dog)
	cat := newClass("Cat", animal)
	feed := newMethod(animal, "feed", VoidTy, IntTy)
	play := newMethod(animal, "play", VoidTy, IntTy)

	tests := []struct {
		name     string
		src, dst Ty
		expected bool
	}{
		{"int to int", IntTy, IntTy, true},
		{"bool to bool", BoolTy, BoolTy, true},
		{"string to string", StringTy, StringTy, true},
		{"void to void", VoidTy, VoidTy, true},
		{"int to bool", IntTy, BoolTy, false},
		{"string to int", StringTy, IntTy, false},
		{"error to int", ErrorTy, IntTy, true},
		{"int to error", IntTy, ErrorTy, true},
		{"error to object", ErrorTy, ObjectOf(dog), true},
		{"object to same class", ObjectOf(dog), ObjectOf(dog), true},
		{"object to parent", ObjectOf(dog), ObjectOf(animal), true},
		{"object to grandparent", ObjectOf(pug), ObjectOf(animal), true},
		{"parent to child", ObjectOf(animal), ObjectOf(dog), false},
		{"sibling classes", ObjectOf(dog), ObjectOf(cat), false},
		{"null to object", NullTy, ObjectOf(dog), true},
		{"null to array", NullTy, ArrayOf(IntTy), true},
		{"null to object array", NullTy, ArrayOf(ObjectOf(dog)), true},
		{"null to int", NullTy, IntTy, false},
		{"null to null", NullTy, NullTy, true},
		{"object to null", ObjectOf(dog), NullTy, false},
		{"int array to int array", ArrayOf(IntTy), ArrayOf(IntTy), true},
		{"arrays are invariant", ArrayOf(ObjectOf(dog)), ArrayOf(ObjectOf(animal)), false},
		{"array to element", ArrayOf(IntTy), IntTy, false},
		{"element to array", IntTy, ArrayOf(IntTy), false},
		{"nested array depth mismatch", ArrayOf(ArrayOf(IntTy)), ArrayOf(IntTy), false},
		{"method value to itself", FuncOf(feed), FuncOf(feed), true},
		{"method value to other method", FuncOf(feed), FuncOf(play), false},
		{"method value to int", FuncOf(feed), IntTy, false},
		{"class value to itself", ClassOf(dog), ClassOf(dog), true},
		{"class value to object", ClassOf(dog), ObjectOf(dog), false},
		{"object to class value", ObjectOf(dog), ClassOf(dog), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			be.Equal(t, test.expected, test.src.AssignableTo(test.dst))
		})
	}
}

func TestTyString(t *testing.T) {
	c := newClass("Animal", nil)
	m := newMethod(c, "feed", IntTy, IntTy, BoolTy)

	tests := []struct {
		name     string
		ty       Ty
		expected string
	}{
		{"int", IntTy, "int"},
		{"null", NullTy, "null"},
		{"object", ObjectOf(c), "class Animal"},
		{"class value", ClassOf(c), "class Animal"},
		{"int array", ArrayOf(IntTy), "int[]"},
		{"nested string array", ArrayOf(ArrayOf(StringTy)), "string[][]"},
		{"object array", ArrayOf(ObjectOf(c)), "class Animal[]"},
		{"method value", FuncOf(m), "int(int, bool)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			be.Equal(t, test.expected, test.ty.String())
		})
	}
}

func TestElem(t *testing.T) {
	arr := ArrayOf(ArrayOf(IntTy))
	be.Equal(t, ArrayOf(IntTy), arr.Elem())
	be.Equal(t, IntTy, arr.Elem().Elem())
}

func TestClassLookup(t *testing.T) {
	animal := newClass("Animal", nil)
	dog := newClass("Dog", animal)

	legs := &VarSymbol{Def: ast.Var(ast.TInt(), "legs"), Ty: IntTy}
	animal.Members.Insert(legs)
	animalSpeak := newMethod(animal, "speak", VoidTy)
	animal.Members.Insert(animalSpeak)
	dogSpeak := newMethod(dog, "speak", VoidTy)
	dog.Members.Insert(dogSpeak)

	if got := dog.Lookup("legs"); got != Symbol(legs) {
		t.Fatalf("inherited field lookup = %v, want legs", got)
	}
	if got := dog.Lookup("speak"); got != Symbol(dogSpeak) {
		t.Fatalf("override lookup = %v, want the nearest declaration", got)
	}
	if got := animal.Lookup("speak"); got != Symbol(animalSpeak) {
		t.Fatalf("own lookup = %v, want Animal.speak", got)
	}
	if dog.Lookup("missing") != nil {
		t.Fatal("lookup of an undeclared member must return nil")
	}
}

func TestDerivesFrom(t *testing.T) {
	animal := newClass("Animal", nil)
	dog := newClass("Dog", animal)
	cat := newClass("Cat", animal)

	be.True(t, dog.DerivesFrom(dog))
	be.True(t, dog.DerivesFrom(animal))
	be.Equal(t, false, animal.DerivesFrom(dog))
	be.Equal(t, false, dog.DerivesFrom(cat))
}

func TestScopeInsert(t *testing.T) {
	s := NewScope(LocalScope)
	x := &VarSymbol{Def: ast.Var(ast.TInt(), "x"), Ty: IntTy}

	if prev := s.Insert(x); prev != nil {
		t.Fatalf("first insert returned %v, want nil", prev)
	}
	if x.Owner != s {
		t.Fatal("insert must record the owning scope on the symbol")
	}

	dup := &VarSymbol{Def: ast.Var(ast.TBool(), "x"), Ty: BoolTy}
	if prev := s.Insert(dup); prev != Symbol(x) {
		t.Fatalf("duplicate insert returned %v, want the existing symbol", prev)
	}
	if got := s.Get("x"); got != Symbol(x) {
		t.Fatalf("Get after duplicate insert = %v, want the original", got)
	}
	if s.Get("y") != nil {
		t.Fatal("Get of an undeclared name must return nil")
	}
}
