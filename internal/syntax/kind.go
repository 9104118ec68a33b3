package syntax

import "fmt"

// Kind is the tag of a node. It names the node in dumps and in the
// interchange format.
type Kind int

const (
	BadKind Kind = iota
	KindTranslationUnit
	KindFuncDef
	KindVarDecl
	KindParamDecl
	KindTypeSpecifier
	KindStructDef
	KindCompoundStmt
	KindIfStmt
	KindWhileStmt
	KindForStmt
	KindReturnStmt
	KindExprStmt
	KindBinaryExpr
	KindUnaryExpr
	KindFuncCall
	KindVarRef
	KindMemberAccess
	KindIntConst
	KindFloatConst
	KindBoolConst
)

var kindNames = [...]string{
	BadKind:             "Bad",
	KindTranslationUnit: "TranslationUnit",
	KindFuncDef:         "FuncDef",
	KindVarDecl:         "VarDecl",
	KindParamDecl:       "ParamDecl",
	KindTypeSpecifier:   "TypeSpecifier",
	KindStructDef:       "StructDef",
	KindCompoundStmt:    "CompoundStmt",
	KindIfStmt:          "IfStmt",
	KindWhileStmt:       "WhileStmt",
	KindForStmt:         "ForStmt",
	KindReturnStmt:      "ReturnStmt",
	KindExprStmt:        "ExprStmt",
	KindBinaryExpr:      "BinaryExpr",
	KindUnaryExpr:       "UnaryExpr",
	KindFuncCall:        "FuncCall",
	KindVarRef:          "VarRef",
	KindMemberAccess:    "MemberAccess",
	KindIntConst:        "IntConst",
	KindFloatConst:      "FloatConst",
	KindBoolConst:       "BoolConst",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// lookupKind maps a kind name back to its tag.
func lookupKind(name string) Kind {
	for k, s := range kindNames {
		if s == name && Kind(k) != BadKind {
			return Kind(k)
		}
	}
	return BadKind
}

// KindOf returns the tag of n, or BadKind for nil.
func KindOf(n Node) Kind {
	switch n.(type) {
	case *TranslationUnit:
		return KindTranslationUnit
	case *FuncDef:
		return KindFuncDef
	case *VarDecl:
		return KindVarDecl
	case *ParamDecl:
		return KindParamDecl
	case *TypeSpecifier:
		return KindTypeSpecifier
	case *StructDef:
		return KindStructDef
	case *CompoundStmt:
		return KindCompoundStmt
	case *IfStmt:
		return KindIfStmt
	case *WhileStmt:
		return KindWhileStmt
	case *ForStmt:
		return KindForStmt
	case *ReturnStmt:
		return KindReturnStmt
	case *ExprStmt:
		return KindExprStmt
	case *BinaryExpr:
		return KindBinaryExpr
	case *UnaryExpr:
		return KindUnaryExpr
	case *FuncCall:
		return KindFuncCall
	case *VarRef:
		return KindVarRef
	case *MemberAccess:
		return KindMemberAccess
	case *IntConst:
		return KindIntConst
	case *FloatConst:
		return KindFloatConst
	case *BoolConst:
		return KindBoolConst
	}
	return BadKind
}

// Operator is the operator of a BinaryExpr or UnaryExpr.
type Operator int

const (
	BadOp  Operator = iota
	Add             // +
	Sub             // -
	Mul             // *
	Div             // /
	Assign          // =
	Eq              // ==
	Ne              // !=
	Gt              // >
	Lt              // <
	Not             // !
)

var opNames = [...]string{
	BadOp:  "?",
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Assign: "=",
	Eq:     "==",
	Ne:     "!=",
	Gt:     ">",
	Lt:     "<",
	Not:    "!",
}

func (op Operator) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// LookupOperator returns the operator spelled s, or BadOp.
func LookupOperator(s string) Operator {
	for op, name := range opNames {
		if name == s && Operator(op) != BadOp {
			return Operator(op)
		}
	}
	return BadOp
}

// IsComparison reports whether op yields a boolean.
func (op Operator) IsComparison() bool {
	return op == Eq || op == Ne || op == Gt || op == Lt
}
