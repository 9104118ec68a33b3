package syntax

// Node construction helpers. These are the entry points an external parser
// uses to build a tree; every node starts with an unknown position and type.
// Absent children, including nil pointers of a concrete node type, are
// stored as nil; nil list elements are dropped.

// NewTranslationUnit returns a unit holding items in order.
func NewTranslationUnit(items ...Node) *TranslationUnit {
	u := &TranslationUnit{}
	for _, item := range items {
		u.Append(item)
	}
	return u
}

// Append adds item to the end of the unit's item list.
func (u *TranslationUnit) Append(item Node) {
	if IsNil(item) {
		return
	}
	u.Items = append(u.Items, item)
}

// NewFuncDef returns a function definition. body may be nil.
func NewFuncDef(ret *TypeSpecifier, name string, params []*ParamDecl, body *CompoundStmt) *FuncDef {
	fn := &FuncDef{ReturnType: ret, Name: name, Body: body}
	for _, p := range params {
		if p != nil {
			fn.Params = append(fn.Params, p)
		}
	}
	return fn
}

// NewVarDecl returns a variable declaration. init may be nil.
func NewVarDecl(typ *TypeSpecifier, name string, init Expr) *VarDecl {
	return &VarDecl{TypeName: typ, Name: name, Init: absentExpr(init)}
}

// NewParamDecl returns a parameter declaration.
func NewParamDecl(typ *TypeSpecifier, name string) *ParamDecl {
	return &ParamDecl{TypeName: typ, Name: name}
}

// NewTypeSpecifier returns a type specifier for name.
func NewTypeSpecifier(name string) *TypeSpecifier {
	return &TypeSpecifier{Name: name}
}

// NewStructDef returns a struct definition.
func NewStructDef(name string, fields ...*VarDecl) *StructDef {
	sd := &StructDef{Name: name}
	for _, f := range fields {
		if f != nil {
			sd.Fields = append(sd.Fields, f)
		}
	}
	return sd
}

// NewCompoundStmt returns a statement list.
func NewCompoundStmt(stmts ...Stmt) *CompoundStmt {
	c := &CompoundStmt{}
	for _, s := range stmts {
		c.Append(s)
	}
	return c
}

// Append adds s to the end of the statement list.
func (c *CompoundStmt) Append(s Stmt) {
	if IsNil(s) {
		return
	}
	c.Stmts = append(c.Stmts, s)
}

// NewIfStmt returns an if statement. els may be nil.
func NewIfStmt(cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{Cond: absentExpr(cond), Then: absentStmt(then), Else: absentStmt(els)}
}

// NewWhileStmt returns a while loop.
func NewWhileStmt(cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{Cond: absentExpr(cond), Body: absentStmt(body)}
}

// NewForStmt returns a for loop.
func NewForStmt(init Stmt, cond, post Expr, body Stmt) *ForStmt {
	return &ForStmt{Init: absentStmt(init), Cond: absentExpr(cond), Post: absentExpr(post), Body: absentStmt(body)}
}

// NewReturnStmt returns a return statement. value may be nil.
func NewReturnStmt(value Expr) *ReturnStmt {
	return &ReturnStmt{Value: absentExpr(value)}
}

// NewExprStmt wraps x as a statement.
func NewExprStmt(x Expr) *ExprStmt {
	return &ExprStmt{X: absentExpr(x)}
}

// NewBinaryExpr returns x op y.
func NewBinaryExpr(op Operator, x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, X: absentExpr(x), Y: absentExpr(y)}
}

// NewAssign returns the assignment lhs = rhs.
func NewAssign(lhs string, rhs Expr) *BinaryExpr {
	return NewBinaryExpr(Assign, NewVarRef(lhs), rhs)
}

// NewUnaryExpr returns op x.
func NewUnaryExpr(op Operator, x Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, X: absentExpr(x)}
}

// NewFuncCall returns name(args...).
func NewFuncCall(name string, args ...Expr) *FuncCall {
	call := &FuncCall{Name: name}
	for _, a := range args {
		if !IsNil(a) {
			call.Args = append(call.Args, a)
		}
	}
	return call
}

// NewVarRef returns a reference to name.
func NewVarRef(name string) *VarRef {
	return &VarRef{Name: name}
}

// NewMemberAccess returns x.member.
func NewMemberAccess(x Expr, member string) *MemberAccess {
	return &MemberAccess{X: absentExpr(x), Member: member}
}

// NewIntConst returns an integer literal.
func NewIntConst(v int64) *IntConst {
	return &IntConst{Value: v}
}

// NewFloatConst returns a float literal.
func NewFloatConst(v float32) *FloatConst {
	return &FloatConst{Value: v}
}

// NewBoolConst returns a bool literal.
func NewBoolConst(v bool) *BoolConst {
	return &BoolConst{Value: v}
}
