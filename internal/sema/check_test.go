package sema

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/syntax"
	"github.com/you-not-fish/prism/internal/types"
)

// check runs the analyzer and returns its info together with the warning
// text written to the sink.
func check(t *testing.T, unit *syntax.TranslationUnit) (*Info, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	sink := diag.DefaultSink(&stdout, &stderr, diag.FormatOptions{})
	info := Check(unit, &Config{Diag: sink})
	require.Equal(t, info.Warnings(), sink.Warnings(), "sink and info disagree")
	return info, stderr.String()
}

func spec(name string) *syntax.TypeSpecifier { return syntax.NewTypeSpecifier(name) }

func TestVarRefResolvesDeclaredType(t *testing.T) {
	ref := syntax.NewVarRef("v_pos")
	unit := syntax.NewTranslationUnit(
		syntax.NewVarDecl(spec("vec3"), "v_pos", nil),
		syntax.NewFuncDef(spec("void"), "main", nil, syntax.NewCompoundStmt(
			syntax.NewExprStmt(ref),
		)),
	)

	info, out := check(t, unit)
	assert.Empty(t, out)
	assert.Equal(t, types.Vec3, ref.Type())
	assert.Equal(t, types.Vec3, info.Uses[ref].Type())
	assert.Equal(t, 0, info.Warnings())
}

func TestRedefinitionWarns(t *testing.T) {
	first := syntax.NewVarDecl(spec("int"), "x", nil)
	second := syntax.NewVarDecl(spec("float"), "x", nil)
	second.SetPos(syntax.NewPos("s.glsl", 3, 1))
	ref := syntax.NewVarRef("x")
	unit := syntax.NewTranslationUnit(first, second, syntax.NewExprStmt(ref))

	info, out := check(t, unit)
	assert.Equal(t, 1, info.Redefinitions)
	assert.Equal(t, "s.glsl:3:1: warning PC100: Variable 'x' redefinition\n", out)

	// The duplicate still records its declared type, but the first
	// declaration stays in the table.
	assert.Equal(t, types.Float, second.Type())
	assert.Equal(t, types.Int, ref.Type())
}

func TestShadowingInNestedScope(t *testing.T) {
	inner := syntax.NewVarRef("x")
	outer := syntax.NewVarRef("x")
	unit := syntax.NewTranslationUnit(
		syntax.NewVarDecl(spec("int"), "x", nil),
		syntax.NewFuncDef(spec("void"), "main", nil, syntax.NewCompoundStmt(
			syntax.NewCompoundStmt(
				syntax.NewVarDecl(spec("float"), "x", nil),
				syntax.NewExprStmt(inner),
			),
			syntax.NewExprStmt(outer),
		)),
	)

	info, out := check(t, unit)
	assert.Empty(t, out)
	assert.Equal(t, types.Float, inner.Type())
	assert.Equal(t, types.Int, outer.Type())
	assert.Equal(t, 0, info.Redefinitions)
}

func TestUnresolvedReference(t *testing.T) {
	ref := syntax.NewVarRef("y")
	add := syntax.NewBinaryExpr(syntax.Add, ref, syntax.NewIntConst(1))
	unit := syntax.NewTranslationUnit(syntax.NewExprStmt(add))

	info, out := check(t, unit)
	assert.Equal(t, 1, info.Unresolved)
	assert.Contains(t, out, "warning PC101: Symbol 'y' could not be found")
	assert.Equal(t, types.Error, ref.Type())
	// The left operand's marker propagates.
	assert.Equal(t, types.Error, add.Type())

	errs := ErrorNodes(unit)
	require.Len(t, errs, 3)
	assert.Same(t, syntax.Node(unit.Items[0]), errs[0])
	assert.Same(t, syntax.Node(add), errs[1])
	assert.Same(t, syntax.Node(ref), errs[2])
}

func TestBinaryTakesLeftType(t *testing.T) {
	tests := []struct {
		name string
		x, y syntax.Expr
		want types.DataType
	}{
		{"int+float", syntax.NewIntConst(1), syntax.NewFloatConst(2), types.Int},
		{"float+int", syntax.NewFloatConst(1), syntax.NewIntConst(2), types.Float},
		{"bool+int", syntax.NewBoolConst(true), syntax.NewIntConst(2), types.Bool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := syntax.NewBinaryExpr(syntax.Add, tt.x, tt.y)
			check(t, syntax.NewTranslationUnit(syntax.NewExprStmt(e)))
			assert.Equal(t, tt.want, e.Type())
		})
	}
}

func TestComparisonIsBool(t *testing.T) {
	for _, op := range []syntax.Operator{syntax.Eq, syntax.Ne, syntax.Gt, syntax.Lt} {
		t.Run(op.String(), func(t *testing.T) {
			e := syntax.NewBinaryExpr(op, syntax.NewFloatConst(1), syntax.NewIntConst(2))
			check(t, syntax.NewTranslationUnit(syntax.NewExprStmt(e)))
			assert.Equal(t, types.Bool, e.Type())
		})
	}

	// An unresolved operand keeps the error type.
	e := syntax.NewBinaryExpr(syntax.Gt, syntax.NewVarRef("missing"), syntax.NewIntConst(2))
	info, _ := check(t, syntax.NewTranslationUnit(syntax.NewExprStmt(e)))
	assert.Equal(t, types.Error, e.Type())
	assert.Equal(t, 1, info.Unresolved)
}

func TestFunctionScope(t *testing.T) {
	param := syntax.NewVarRef("k")
	fn := syntax.NewFuncDef(spec("float"), "scale",
		[]*syntax.ParamDecl{syntax.NewParamDecl(spec("float"), "k")},
		syntax.NewCompoundStmt(
			syntax.NewVarDecl(spec("vec4"), "tmp", nil),
			syntax.NewReturnStmt(param),
		))
	call := syntax.NewFuncCall("scale", syntax.NewFloatConst(2))
	after := syntax.NewVarRef("tmp")
	unit := syntax.NewTranslationUnit(fn, syntax.NewExprStmt(call), syntax.NewExprStmt(after))

	info, out := check(t, unit)
	assert.Equal(t, types.Float, fn.Type())
	assert.Equal(t, types.Float, param.Type())
	assert.Equal(t, types.Float, call.Type())

	// Locals are gone once the function's scopes are popped.
	assert.Equal(t, types.Error, after.Type())
	assert.Equal(t, 1, info.Unresolved)
	assert.Contains(t, out, "Symbol 'tmp' could not be found")

	// The function name lives in the enclosing (global) scope.
	assert.NotNil(t, info.Global.Lookup("scale"))
	assert.Nil(t, info.Global.Lookup("k"))
	assert.NotNil(t, info.Scopes[fn].Lookup("k"))
	assert.NotNil(t, info.Scopes[fn.Body].Lookup("tmp"))
}

func TestFunctionRedefinition(t *testing.T) {
	unit := syntax.NewTranslationUnit(
		syntax.NewFuncDef(spec("void"), "main", nil, nil),
		syntax.NewFuncDef(spec("void"), "main", nil, nil),
	)
	info, out := check(t, unit)
	assert.Equal(t, 1, info.Redefinitions)
	assert.Contains(t, out, "warning PC103: Function 'main' redefinition")
}

func TestUnknownTypeSuggestion(t *testing.T) {
	decl := syntax.NewVarDecl(spec("flaot"), "f", nil)
	ref := syntax.NewVarRef("f")
	unit := syntax.NewTranslationUnit(decl, syntax.NewExprStmt(ref))

	info, out := check(t, unit)
	assert.Equal(t, 1, info.UnknownTypes)
	assert.Contains(t, out, "warning PC102: Unknown type 'flaot'; did you mean 'float'?")
	assert.Equal(t, types.Unknown, decl.Type())
	// The symbol is still defined, so the reference resolves.
	assert.Equal(t, types.Unknown, ref.Type())
	assert.Equal(t, 0, info.Unresolved)
}

func TestIfHasNoScope(t *testing.T) {
	ref := syntax.NewVarRef("z")
	unit := syntax.NewTranslationUnit(
		syntax.NewIfStmt(syntax.NewBoolConst(true),
			syntax.NewVarDecl(spec("int"), "z", nil),
			nil),
		syntax.NewExprStmt(ref),
	)
	info, _ := check(t, unit)
	assert.Equal(t, types.Int, ref.Type())
	assert.Equal(t, 0, info.Warnings())
}

func TestSwizzleAndConstructor(t *testing.T) {
	xy := syntax.NewMemberAccess(syntax.NewVarRef("p"), "xy")
	r := syntax.NewMemberAccess(syntax.NewVarRef("p"), "r")
	bad := syntax.NewMemberAccess(syntax.NewVarRef("p"), "w")
	ctor := syntax.NewFuncCall("vec4", syntax.NewFloatConst(1))
	unit := syntax.NewTranslationUnit(
		syntax.NewVarDecl(spec("vec3"), "p", nil),
		syntax.NewExprStmt(xy),
		syntax.NewExprStmt(r),
		syntax.NewExprStmt(bad),
		syntax.NewExprStmt(ctor),
	)
	check(t, unit)
	assert.Equal(t, types.Vec2, xy.Type())
	assert.Equal(t, types.Float, r.Type())
	assert.Equal(t, types.Unknown, bad.Type())
	assert.Equal(t, types.Vec4, ctor.Type())
}

func TestStructFields(t *testing.T) {
	def := syntax.NewStructDef("Light",
		syntax.NewVarDecl(spec("vec3"), "dir", nil),
		syntax.NewVarDecl(spec("float"), "dir", nil),
	)
	use := syntax.NewVarDecl(spec("Light"), "sun", nil)
	unit := syntax.NewTranslationUnit(def, use)

	info, out := check(t, unit)
	assert.Equal(t, types.Struct, def.Type())
	assert.Equal(t, types.Struct, use.Type())
	assert.Equal(t, 1, info.Redefinitions)
	assert.Equal(t, 0, info.UnknownTypes)
	assert.Equal(t, 1, strings.Count(out, "PC100"))
}

func TestReusedSymbolTableIsReset(t *testing.T) {
	st := types.NewSymbolTable()
	Check(syntax.NewTranslationUnit(syntax.NewVarDecl(spec("int"), "x", nil)), &Config{Symbols: st})

	// An independent compilation does not see x.
	ref := syntax.NewVarRef("x")
	info := Check(syntax.NewTranslationUnit(syntax.NewExprStmt(ref)), &Config{Symbols: st})
	assert.Equal(t, types.Error, ref.Type())
	assert.Equal(t, 1, info.Unresolved)
	assert.Equal(t, 1, st.Depth())
}

func TestNilInputs(t *testing.T) {
	info := Check(nil, nil)
	require.NotNil(t, info)
	assert.Equal(t, 0, info.Warnings())

	unit := syntax.NewTranslationUnit(
		syntax.NewVarDecl(nil, "a", nil),
		syntax.NewFuncDef(nil, "f", nil, nil),
		syntax.NewIfStmt(nil, nil, nil),
		syntax.NewExprStmt(nil),
		syntax.NewForStmt(nil, nil, nil, nil),
	)
	info = Check(unit, nil)
	assert.Equal(t, 0, info.Warnings())
}
