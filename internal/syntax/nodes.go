// Package syntax defines the shader AST consumed by the compiler, together
// with the construction helpers used by front ends, a tree walker, a typed
// dump and the YAML/JSON interchange format.
package syntax

import "github.com/you-not-fish/prism/internal/types"

// ----------------------------------------------------------------------------
// Interfaces
//
// All nodes implement Node. Expressions, statements and declarations further
// implement Expr, Stmt and Decl. A VarDecl is both a Decl and a Stmt since it
// may appear at top level and inside a compound statement.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos               // position of the node, zero if unknown
	SetPos(Pos)             // set by front ends after construction
	Type() types.DataType   // resolved type, types.Unknown before checking
	SetType(types.DataType) // set by semantic analysis
	aNode()                 // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
	typ types.DataType
}

func (n *node) Pos() Pos                   { return n.pos }
func (n *node) SetPos(p Pos)               { n.pos = p }
func (n *node) Type() types.DataType       { return n.typ }
func (n *node) SetType(typ types.DataType) { n.typ = typ }
func (n *node) aNode()                     {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Translation unit and declarations

// TranslationUnit is the root of a shader program. Items are kept in source
// order; they are usually declarations but any node is accepted.
type TranslationUnit struct {
	node
	Items []Node
}

// FuncDef represents a function definition: ReturnType Name(Params) Body
type FuncDef struct {
	decl
	ReturnType *TypeSpecifier
	Name       string
	Params     []*ParamDecl
	Body       *CompoundStmt // nil for a prototype
}

// VarDecl represents a variable declaration: TypeName Name [= Init]
type VarDecl struct {
	decl
	TypeName *TypeSpecifier
	Name     string
	Init     Expr // nil if none
}

func (*VarDecl) aStmt() {}

// ParamDecl represents a function parameter.
type ParamDecl struct {
	decl
	TypeName *TypeSpecifier
	Name     string
}

// TypeSpecifier names a type in source, e.g. "vec3".
type TypeSpecifier struct {
	node
	Name string
}

// StructDef represents a struct definition. Structs are carried through the
// pipeline but not lowered.
type StructDef struct {
	decl
	Name   string
	Fields []*VarDecl
}

// ----------------------------------------------------------------------------
// Statements

// CompoundStmt represents a braced statement list. It opens a lexical scope.
type CompoundStmt struct {
	stmt
	Stmts []Stmt
}

// IfStmt represents if (Cond) Then [else Else].
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

// WhileStmt represents while (Cond) Body.
type WhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

// ForStmt represents for (Init; Cond; Post) Body. Any part may be nil.
type ForStmt struct {
	stmt
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
}

// ReturnStmt represents return [Value].
type ReturnStmt struct {
	stmt
	Value Expr // nil for a bare return
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// ----------------------------------------------------------------------------
// Expressions

// BinaryExpr represents X Op Y. Assignment is a binary expression whose left
// operand is a VarRef.
type BinaryExpr struct {
	expr
	Op   Operator
	X, Y Expr
}

// UnaryExpr represents Op X.
type UnaryExpr struct {
	expr
	Op Operator
	X  Expr
}

// FuncCall represents Name(Args...). Constructor calls such as vec3(...)
// are function calls too.
type FuncCall struct {
	expr
	Name string
	Args []Expr
}

// VarRef is a reference to a named variable.
type VarRef struct {
	expr
	Name string
}

// MemberAccess represents X.Member, including swizzles such as v.xyz.
type MemberAccess struct {
	expr
	X      Expr
	Member string
}

// IntConst is an integer literal.
type IntConst struct {
	expr
	Value int64
}

// FloatConst is a floating point literal.
type FloatConst struct {
	expr
	Value float32
}

// BoolConst is a boolean literal.
type BoolConst struct {
	expr
	Value bool
}

// IsNil reports whether n is absent: either a nil interface or a nil
// pointer of a concrete node type.
func IsNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *TranslationUnit:
		return n == nil
	case *FuncDef:
		return n == nil
	case *VarDecl:
		return n == nil
	case *ParamDecl:
		return n == nil
	case *TypeSpecifier:
		return n == nil
	case *StructDef:
		return n == nil
	case *CompoundStmt:
		return n == nil
	case *IfStmt:
		return n == nil
	case *WhileStmt:
		return n == nil
	case *ForStmt:
		return n == nil
	case *ReturnStmt:
		return n == nil
	case *ExprStmt:
		return n == nil
	case *BinaryExpr:
		return n == nil
	case *UnaryExpr:
		return n == nil
	case *FuncCall:
		return n == nil
	case *VarRef:
		return n == nil
	case *MemberAccess:
		return n == nil
	case *IntConst:
		return n == nil
	case *FloatConst:
		return n == nil
	case *BoolConst:
		return n == nil
	}
	return false
}

// absentExpr and absentStmt turn a nil pointer held in an interface into a
// nil interface.
func absentExpr(x Expr) Expr {
	if IsNil(x) {
		return nil
	}
	return x
}

func absentStmt(s Stmt) Stmt {
	if IsNil(s) {
		return nil
	}
	return s
}
