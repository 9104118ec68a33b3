package syntax

import (
	"reflect"
	"testing"
)

func sampleUnit() *TranslationUnit {
	return NewTranslationUnit(
		NewVarDecl(NewTypeSpecifier("vec3"), "v_pos", nil),
		NewFuncDef(NewTypeSpecifier("void"), "main", nil, NewCompoundStmt(
			NewVarDecl(NewTypeSpecifier("float"), "a", NewFloatConst(1.5)),
			NewIfStmt(
				NewBinaryExpr(Gt, NewVarRef("a"), NewIntConst(0)),
				NewCompoundStmt(NewExprStmt(NewAssign("a", NewIntConst(2)))),
				nil,
			),
		)),
	)
}

func TestWalkOrder(t *testing.T) {
	var got []Kind
	Inspect(sampleUnit(), func(n Node) bool {
		got = append(got, KindOf(n))
		return true
	})

	want := []Kind{
		KindTranslationUnit,
		KindVarDecl, KindTypeSpecifier,
		KindFuncDef, KindTypeSpecifier, KindCompoundStmt,
		KindVarDecl, KindTypeSpecifier, KindFloatConst,
		KindIfStmt, KindBinaryExpr, KindVarRef, KindIntConst,
		KindCompoundStmt, KindExprStmt, KindBinaryExpr, KindVarRef, KindIntConst,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("walk order = %v\nwant %v", got, want)
	}
}

func TestWalkPrune(t *testing.T) {
	count := 0
	Inspect(sampleUnit(), func(n Node) bool {
		count++
		_, isFunc := n.(*FuncDef)
		return !isFunc
	})
	// unit, v_pos decl, its type specifier, main
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}
}

func TestWalkNil(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool {
		called = true
		return true
	})
	if called {
		t.Error("visitor called for nil node")
	}
}

func TestAppendSkipsNil(t *testing.T) {
	unit := NewTranslationUnit()
	unit.Append(NewVarDecl(NewTypeSpecifier("int"), "x", nil))
	unit.Append(nil)
	unit.Append(NewVarDecl(NewTypeSpecifier("int"), "y", nil))

	if len(unit.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(unit.Items))
	}
	if got := unit.Items[1].(*VarDecl).Name; got != "y" {
		t.Errorf("Items[1] = %q, want y", got)
	}
}

func TestOperatorLookup(t *testing.T) {
	for op := Add; op <= Not; op++ {
		if got := LookupOperator(op.String()); got != op {
			t.Errorf("LookupOperator(%q) = %v, want %v", op.String(), got, op)
		}
	}
	if got := LookupOperator("%"); got != BadOp {
		t.Errorf("LookupOperator(%%) = %v, want BadOp", got)
	}
}

func TestKindNames(t *testing.T) {
	for k := KindTranslationUnit; k <= KindBoolConst; k++ {
		if got := lookupKind(k.String()); got != k {
			t.Errorf("lookupKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if got := lookupKind("Bad"); got != BadKind {
		t.Errorf("lookupKind(Bad) = %v, want BadKind", got)
	}
}
