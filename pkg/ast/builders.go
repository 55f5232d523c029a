package ast

// Construction helpers for building trees in tests and tools. They leave
// every position zero; ClearPositions makes parsed trees comparable with
// trees built this way.

// Prog builds a program from class definitions.
func Prog(classes ...*ClassDef) *Program {
	return &Program{Classes: classes}
}

// Class builds a class definition. parent may be empty.
func Class(name, parent string, fields ...Field) *ClassDef {
	return &ClassDef{Name: name, Parent: parent, Fields: fields}
}

// Fn builds an instance method.
func Fn(name string, ret *SynTy, params []*VarDef, body *Block) *MethodDef {
	return &MethodDef{Ret: ret, Name: name, Params: params, Body: body}
}

// StaticFn builds a static method.
func StaticFn(name string, ret *SynTy, params []*VarDef, body *Block) *MethodDef {
	m := Fn(name, ret, params, body)
	m.Static = true
	return m
}

// Var builds an uninitialized variable definition (field, parameter, or
// local).
func Var(ty *SynTy, name string) *VarDef {
	return &VarDef{Ty: ty, Name: name}
}

// VarInit builds a local variable definition with an initializer.
func VarInit(ty *SynTy, name string, init Expr) *VarDef {
	return &VarDef{Ty: ty, Name: name, Init: init}
}

// Blk builds a block.
func Blk(stmts ...Stmt) *Block {
	return &Block{Stmts: stmts}
}

func TInt() *SynTy { return &SynTy{Kind: SynInt} }

func TBool() *SynTy { return &SynTy{Kind: SynBool} }

func TString() *SynTy { return &SynTy{Kind: SynString} }

func TVoid() *SynTy { return &SynTy{Kind: SynVoid} }

func TClass(name string) *SynTy {
	return &SynTy{Kind: SynClass, Name: name}
}

// TArray wraps elem in one more array dimension.
func TArray(elem *SynTy) *SynTy {
	t := *elem
	t.Arr++
	return &t
}

func Int(v int32) *IntLit { return &IntLit{Value: v} }

func Bool(v bool) *BoolLit { return &BoolLit{Value: v} }

func Str(v string) *StringLit { return &StringLit{Value: v} }

func Null() *NullLit { return &NullLit{} }

func This() *ThisExpr { return &ThisExpr{} }

func ID(name string) *VarSel { return &VarSel{Name: name} }

// Sel builds the member selection owner.name.
func Sel(owner Expr, name string) *VarSel {
	return &VarSel{Owner: owner, Name: name}
}

// Index builds arr[idx].
func Index(arr, idx Expr) *IndexExpr {
	return &IndexExpr{Arr: arr, Idx: idx}
}

// Call builds a call; owner may be nil for an unqualified call.
func Call(owner Expr, name string, args ...Expr) *CallExpr {
	return &CallExpr{Owner: owner, Name: name, Args: args}
}

func Un(op UnOp, x Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, X: x}
}

func Bin(l Expr, op BinOp, r Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, L: l, R: r}
}

func NewObj(name string) *NewClassExpr {
	return &NewClassExpr{Name: name}
}

func NewArr(elem *SynTy, length Expr) *NewArrayExpr {
	return &NewArrayExpr{Elem: elem, Len: length}
}

func InstanceOf(x Expr, name string) *InstanceOfExpr {
	return &InstanceOfExpr{X: x, Name: name}
}

func Cast(name string, x Expr) *CastExpr {
	return &CastExpr{Name: name, X: x}
}

// Assign builds dst = src.
func Assign(dst, src Expr) *AssignStmt {
	return &AssignStmt{Dst: dst, Src: src}
}

// Eval wraps an expression as a statement.
func Eval(x Expr) *ExprStmt {
	return &ExprStmt{X: x}
}

// If builds an if statement; els may be nil.
func If(cond Expr, then, els *Block) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els}
}

func While(cond Expr, body *Block) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body}
}

func For(init Stmt, cond Expr, update Stmt, body *Block) *ForStmt {
	return &ForStmt{Init: init, Cond: cond, Update: update, Body: body}
}

// Ret builds a return statement; x may be nil for a bare return.
func Ret(x Expr) *ReturnStmt {
	return &ReturnStmt{Expr: x}
}

func Break() *BreakStmt { return &BreakStmt{} }

func Print(args ...Expr) *PrintStmt {
	return &PrintStmt{Args: args}
}
