package typechecker

import (
	"fmt"

	"github.com/MashPlant/decaf-go/pkg/ast"
	"github.com/MashPlant/decaf-go/pkg/types"
)

// Diagnostic is one semantic error: a position plus a Kind describing what
// went wrong. Checking never stops at a diagnostic; the checker collects
// them all in encounter order.
type Diagnostic struct {
	Pos  ast.Pos
	Kind Kind
}

func (d *Diagnostic) String() string {
	return d.Pos.String() + ": " + d.Kind.Message()
}

// Kind is the closed set of semantic error kinds. Every kind is a small
// comparable value struct, so tests can match on exact payloads.
type Kind interface {
	Message() string
	diagKind()
}

// Declaration conflicts and class structure, reported by the symbol pass.

// ConflictDeclaration reports a name declared twice in the same scope, or
// a local colliding with a parameter or an outer local of the same method.
type ConflictDeclaration struct {
	Name    string
	Earlier ast.Pos
}

// NoSuchClass reports a reference to an undeclared class.
type NoSuchClass struct {
	Name string
}

// CyclicInheritance reports a class on an extends cycle.
type CyclicInheritance struct{}

// VoidVar reports a variable declared with type void.
type VoidVar struct {
	Name string
}

// VoidArrayElement reports an array type with void elements.
type VoidArrayElement struct{}

// OverrideVar reports a field shadowing an inherited field.
type OverrideVar struct {
	Name string
}

// BadOverride reports a method override with an incompatible signature or
// a static/instance mix.
type BadOverride struct {
	Name string
}

// NoMainClass reports that no Main class with a static void main() without
// parameters exists.
type NoMainClass struct{}

// Name and member resolution, reported by the type pass.

// UndeclaredVar reports an unresolved bare name.
type UndeclaredVar struct {
	Name string
}

// NoSuchField reports a member lookup that found nothing in the owner
// class or its ancestors.
type NoSuchField struct {
	Name  string
	Owner types.Ty
}

// NotFunc reports a call to a member that is not a method.
type NotFunc struct {
	Name  string
	Owner types.Ty
}

// PrivateFieldAccess reports a field access from outside the field's class
// hierarchy.
type PrivateFieldAccess struct {
	Name  string
	Owner types.Ty
}

// RefInStatic reports an instance member referenced without a receiver
// from inside a static method.
type RefInStatic struct {
	Field string
	Func  string
}

// BadFieldAccess reports member access on a value that has no members: a
// primitive or array owner, or an instance member reached through a class
// name.
type BadFieldAccess struct {
	Name  string
	Owner types.Ty
}

// ThisInStatic reports this used inside a static method.
type ThisInStatic struct{}

// Statements.

// BreakOutOfLoop reports break at loop depth zero.
type BreakOutOfLoop struct{}

// TestNotBool reports a non-bool loop or branch condition.
type TestNotBool struct{}

// ReturnMismatch reports a return value not assignable to the method's
// return type.
type ReturnMismatch struct {
	Expect types.Ty
	Actual types.Ty
}

// NoReturn reports a non-void method whose body may finish without
// returning.
type NoReturn struct{}

// UnreachableCode reports the first statement after a point no execution
// can pass.
type UnreachableCode struct{}

// BadPrintArg reports a Print argument that is not int, bool, or string.
// Index is 1-based.
type BadPrintArg struct {
	Index int
	Ty    types.Ty
}

// Expressions.

// IncompatibleUnary reports a unary operand of the wrong type.
type IncompatibleUnary struct {
	Op ast.UnOp
	Ty types.Ty
}

// IncompatibleBinary reports mismatched binary operands. Op is the operator
// spelling; assignment reuses this kind with "=".
type IncompatibleBinary struct {
	L  types.Ty
	Op string
	R  types.Ty
}

// NewArrayNotInt reports a non-int length in a new array expression.
type NewArrayNotInt struct{}

// IndexNotArray reports indexing applied to a non-array.
type IndexNotArray struct{}

// IndexNotInt reports a non-int array subscript.
type IndexNotInt struct{}

// ArgcMismatch reports a call with the wrong number of arguments.
type ArgcMismatch struct {
	Name   string
	Expect int
	Actual int
}

// ArgMismatch reports one argument not assignable to its parameter.
// Index is 1-based.
type ArgMismatch struct {
	Index int
	Arg   types.Ty
	Param types.Ty
}

// LengthWithArgument reports arguments passed to the built-in length().
type LengthWithArgument struct {
	Count int
}

// NotObject reports an instanceof or cast operand that is not an object.
type NotObject struct {
	Ty types.Ty
}

func (k ConflictDeclaration) Message() string {
	return fmt.Sprintf("declaration of '%s' conflicts with a declaration at %s", k.Name, k.Earlier)
}

func (k NoSuchClass) Message() string {
	return fmt.Sprintf("class '%s' not found", k.Name)
}

func (k CyclicInheritance) Message() string {
	return "illegal cyclic inheritance"
}

func (k VoidVar) Message() string {
	return fmt.Sprintf("cannot declare variable '%s' with void type", k.Name)
}

func (k VoidArrayElement) Message() string {
	return "array element type cannot be void"
}

func (k OverrideVar) Message() string {
	return fmt.Sprintf("overriding inherited field '%s' is not allowed", k.Name)
}

func (k BadOverride) Message() string {
	return fmt.Sprintf("overriding method '%s' has an incompatible signature", k.Name)
}

func (k NoMainClass) Message() string {
	return "no legal 'Main' class with 'static void main()' found"
}

func (k UndeclaredVar) Message() string {
	return fmt.Sprintf("undeclared variable '%s'", k.Name)
}

func (k NoSuchField) Message() string {
	return fmt.Sprintf("field '%s' not found in '%s'", k.Name, k.Owner)
}

func (k NotFunc) Message() string {
	return fmt.Sprintf("'%s' is not a method in '%s'", k.Name, k.Owner)
}

func (k PrivateFieldAccess) Message() string {
	return fmt.Sprintf("field '%s' of '%s' is not accessible here", k.Name, k.Owner)
}

func (k RefInStatic) Message() string {
	return fmt.Sprintf("cannot reference field '%s' from static method '%s'", k.Field, k.Func)
}

func (k BadFieldAccess) Message() string {
	return fmt.Sprintf("cannot access field '%s' on '%s'", k.Name, k.Owner)
}

func (k ThisInStatic) Message() string {
	return "cannot use 'this' in a static method"
}

func (k BreakOutOfLoop) Message() string {
	return "'break' is only allowed inside a loop"
}

func (k TestNotBool) Message() string {
	return "test expression must have bool type"
}

func (k ReturnMismatch) Message() string {
	return fmt.Sprintf("incompatible return: %s given, %s expected", k.Actual, k.Expect)
}

func (k NoReturn) Message() string {
	return "missing return statement: control reaches end of non-void method"
}

func (k UnreachableCode) Message() string {
	return "unreachable code"
}

func (k BadPrintArg) Message() string {
	return fmt.Sprintf("incompatible argument %d: %s given, int/bool/string expected", k.Index, k.Ty)
}

func (k IncompatibleUnary) Message() string {
	return fmt.Sprintf("incompatible operand: %s %s", k.Op, k.Ty)
}

func (k IncompatibleBinary) Message() string {
	return fmt.Sprintf("incompatible operands: %s %s %s", k.L, k.Op, k.R)
}

func (k NewArrayNotInt) Message() string {
	return "new array length must be an integer"
}

func (k IndexNotArray) Message() string {
	return "'[]' can only be applied to arrays"
}

func (k IndexNotInt) Message() string {
	return "array subscript must be an integer"
}

func (k ArgcMismatch) Message() string {
	return fmt.Sprintf("method '%s' expects %d argument(s), got %d", k.Name, k.Expect, k.Actual)
}

func (k ArgMismatch) Message() string {
	return fmt.Sprintf("incompatible argument %d: %s given, %s expected", k.Index, k.Arg, k.Param)
}

func (k LengthWithArgument) Message() string {
	return fmt.Sprintf("length() expects 0 argument(s), got %d", k.Count)
}

func (k NotObject) Message() string {
	return fmt.Sprintf("expected an object type, found %s", k.Ty)
}

func (ConflictDeclaration) diagKind() {}
func (NoSuchClass) diagKind()         {}
func (CyclicInheritance) diagKind()   {}
func (VoidVar) diagKind()             {}
func (VoidArrayElement) diagKind()    {}
func (OverrideVar) diagKind()         {}
func (BadOverride) diagKind()         {}
func (NoMainClass) diagKind()         {}
func (UndeclaredVar) diagKind()       {}
func (NoSuchField) diagKind()         {}
func (NotFunc) diagKind()             {}
func (PrivateFieldAccess) diagKind()  {}
func (RefInStatic) diagKind()         {}
func (BadFieldAccess) diagKind()      {}
func (ThisInStatic) diagKind()        {}
func (BreakOutOfLoop) diagKind()      {}
func (TestNotBool) diagKind()         {}
func (ReturnMismatch) diagKind()      {}
func (NoReturn) diagKind()            {}
func (UnreachableCode) diagKind()     {}
func (BadPrintArg) diagKind()         {}
func (IncompatibleUnary) diagKind()   {}
func (IncompatibleBinary) diagKind()  {}
func (NewArrayNotInt) diagKind()      {}
func (IndexNotArray) diagKind()       {}
func (IndexNotInt) diagKind()         {}
func (ArgcMismatch) diagKind()        {}
func (LengthWithArgument) diagKind()  {}
func (ArgMismatch) diagKind()         {}
func (NotObject) diagKind()           {}
