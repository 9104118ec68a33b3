package syntax

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The interchange format is a YAML document (JSON is accepted too, being a
// YAML subset) in which every node is a mapping with a "kind" key naming its
// Kind. For example:
//
//	kind: TranslationUnit
//	items:
//	  - kind: VarDecl
//	    type: vec3
//	    name: v_pos
//	  - kind: FuncDef
//	    type: void
//	    name: main
//	    body:
//	      kind: CompoundStmt
//	      stmts:
//	        - kind: ExprStmt
//	          x: {kind: BinaryExpr, op: "=", x: {kind: VarRef, name: a}, y: {kind: IntConst, value: 1}}
//
// Declarations carry their type name in "type". Positions are optional and
// use the Pos.String form.
type document struct {
	Kind   string      `yaml:"kind"`
	Pos    string      `yaml:"pos,omitempty"`
	Type   string      `yaml:"type,omitempty"`
	Name   string      `yaml:"name,omitempty"`
	Op     string      `yaml:"op,omitempty"`
	Member string      `yaml:"member,omitempty"`
	Value  interface{} `yaml:"value,omitempty"`

	Items  []*document `yaml:"items,omitempty"`
	Params []*document `yaml:"params,omitempty"`
	Fields []*document `yaml:"fields,omitempty"`
	Stmts  []*document `yaml:"stmts,omitempty"`
	Args   []*document `yaml:"args,omitempty"`

	Init *document `yaml:"init,omitempty"`
	Cond *document `yaml:"cond,omitempty"`
	Then *document `yaml:"then,omitempty"`
	Else *document `yaml:"else,omitempty"`
	Post *document `yaml:"post,omitempty"`
	Body *document `yaml:"body,omitempty"`
	X    *document `yaml:"x,omitempty"`
	Y    *document `yaml:"y,omitempty"`
}

// Decode reads one translation unit in the interchange format from r.
func Decode(r io.Reader) (*TranslationUnit, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty AST document")
		}
		return nil, errors.Wrap(err, "reading AST document")
	}
	n, err := doc.node("$")
	if err != nil {
		return nil, err
	}
	unit, ok := n.(*TranslationUnit)
	if !ok {
		return nil, errors.Errorf("$: root node is %s, want TranslationUnit", KindOf(n))
	}
	return unit, nil
}

// Encode writes unit to w in the interchange format. Resolved types are not
// written.
func Encode(w io.Writer, unit *TranslationUnit) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(unit)); err != nil {
		return errors.Wrap(err, "writing AST document")
	}
	return errors.Wrap(enc.Close(), "writing AST document")
}

func (d *document) node(path string) (Node, error) {
	if d == nil {
		return nil, nil
	}
	pos, err := ParsePos(d.Pos)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	n, err := d.build(path)
	if err != nil {
		return nil, err
	}
	n.SetPos(pos)
	// Type names are inline strings and share their declaration's position.
	switch n := n.(type) {
	case *FuncDef:
		inheritPos(n.ReturnType, pos)
	case *VarDecl:
		inheritPos(n.TypeName, pos)
	case *ParamDecl:
		inheritPos(n.TypeName, pos)
	}
	return n, nil
}

func inheritPos(t *TypeSpecifier, pos Pos) {
	if t != nil {
		t.SetPos(pos)
	}
}

func (d *document) build(path string) (Node, error) {
	switch kind := lookupKind(d.Kind); kind {
	case KindTranslationUnit:
		unit := NewTranslationUnit()
		for i, item := range d.Items {
			n, err := item.node(index(path, "items", i))
			if err != nil {
				return nil, err
			}
			unit.Append(n)
		}
		return unit, nil

	case KindFuncDef:
		fn := NewFuncDef(d.typeSpec(), d.Name, nil, nil)
		for i, p := range d.Params {
			n, err := p.node(index(path, "params", i))
			if err != nil {
				return nil, err
			}
			param, ok := n.(*ParamDecl)
			if !ok {
				return nil, mismatch(index(path, "params", i), n, "ParamDecl")
			}
			fn.Params = append(fn.Params, param)
		}
		if d.Body != nil {
			n, err := d.Body.node(path + ".body")
			if err != nil {
				return nil, err
			}
			body, ok := n.(*CompoundStmt)
			if !ok {
				return nil, mismatch(path+".body", n, "CompoundStmt")
			}
			fn.Body = body
		}
		return fn, nil

	case KindVarDecl:
		init, err := d.Init.expr(path + ".init")
		if err != nil {
			return nil, err
		}
		return NewVarDecl(d.typeSpec(), d.Name, init), nil

	case KindParamDecl:
		return NewParamDecl(d.typeSpec(), d.Name), nil

	case KindTypeSpecifier:
		return NewTypeSpecifier(d.Name), nil

	case KindStructDef:
		def := NewStructDef(d.Name)
		for i, f := range d.Fields {
			n, err := f.node(index(path, "fields", i))
			if err != nil {
				return nil, err
			}
			field, ok := n.(*VarDecl)
			if !ok {
				return nil, mismatch(index(path, "fields", i), n, "VarDecl")
			}
			def.Fields = append(def.Fields, field)
		}
		return def, nil

	case KindCompoundStmt:
		block := NewCompoundStmt()
		for i, s := range d.Stmts {
			st, err := s.stmt(index(path, "stmts", i))
			if err != nil {
				return nil, err
			}
			block.Append(st)
		}
		return block, nil

	case KindIfStmt:
		cond, err := d.Cond.expr(path + ".cond")
		if err != nil {
			return nil, err
		}
		then, err := d.Then.stmt(path + ".then")
		if err != nil {
			return nil, err
		}
		els, err := d.Else.stmt(path + ".else")
		if err != nil {
			return nil, err
		}
		return NewIfStmt(cond, then, els), nil

	case KindWhileStmt:
		cond, err := d.Cond.expr(path + ".cond")
		if err != nil {
			return nil, err
		}
		body, err := d.Body.stmt(path + ".body")
		if err != nil {
			return nil, err
		}
		return NewWhileStmt(cond, body), nil

	case KindForStmt:
		init, err := d.Init.stmt(path + ".init")
		if err != nil {
			return nil, err
		}
		cond, err := d.Cond.expr(path + ".cond")
		if err != nil {
			return nil, err
		}
		post, err := d.Post.expr(path + ".post")
		if err != nil {
			return nil, err
		}
		body, err := d.Body.stmt(path + ".body")
		if err != nil {
			return nil, err
		}
		return NewForStmt(init, cond, post, body), nil

	case KindReturnStmt:
		value, err := d.X.expr(path + ".x")
		if err != nil {
			return nil, err
		}
		return NewReturnStmt(value), nil

	case KindExprStmt:
		x, err := d.X.expr(path + ".x")
		if err != nil {
			return nil, err
		}
		return NewExprStmt(x), nil

	case KindBinaryExpr:
		op := LookupOperator(d.Op)
		if op == BadOp || op == Not {
			return nil, errors.Errorf("%s: unknown binary operator %q", path, d.Op)
		}
		x, err := d.X.expr(path + ".x")
		if err != nil {
			return nil, err
		}
		y, err := d.Y.expr(path + ".y")
		if err != nil {
			return nil, err
		}
		return NewBinaryExpr(op, x, y), nil

	case KindUnaryExpr:
		op := LookupOperator(d.Op)
		if op != Sub && op != Not {
			return nil, errors.Errorf("%s: unknown unary operator %q", path, d.Op)
		}
		x, err := d.X.expr(path + ".x")
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, x), nil

	case KindFuncCall:
		call := NewFuncCall(d.Name)
		for i, a := range d.Args {
			arg, err := a.expr(index(path, "args", i))
			if err != nil {
				return nil, err
			}
			if arg != nil {
				call.Args = append(call.Args, arg)
			}
		}
		return call, nil

	case KindVarRef:
		return NewVarRef(d.Name), nil

	case KindMemberAccess:
		x, err := d.X.expr(path + ".x")
		if err != nil {
			return nil, err
		}
		return NewMemberAccess(x, d.Member), nil

	case KindIntConst:
		switch v := d.Value.(type) {
		case int:
			return NewIntConst(int64(v)), nil
		case nil:
			return NewIntConst(0), nil
		}
		return nil, errors.Errorf("%s: IntConst value %v is not an integer", path, d.Value)

	case KindFloatConst:
		switch v := d.Value.(type) {
		case float64:
			return NewFloatConst(float32(v)), nil
		case int:
			return NewFloatConst(float32(v)), nil
		case nil:
			return NewFloatConst(0), nil
		}
		return nil, errors.Errorf("%s: FloatConst value %v is not a number", path, d.Value)

	case KindBoolConst:
		switch v := d.Value.(type) {
		case bool:
			return NewBoolConst(v), nil
		case nil:
			return NewBoolConst(false), nil
		}
		return nil, errors.Errorf("%s: BoolConst value %v is not a boolean", path, d.Value)

	default:
		return nil, errors.Errorf("%s: unknown node kind %q", path, d.Kind)
	}
}

func (d *document) expr(path string) (Expr, error) {
	n, err := d.node(path)
	if err != nil || n == nil {
		return nil, err
	}
	x, ok := n.(Expr)
	if !ok {
		return nil, mismatch(path, n, "an expression")
	}
	return x, nil
}

func (d *document) stmt(path string) (Stmt, error) {
	n, err := d.node(path)
	if err != nil || n == nil {
		return nil, err
	}
	s, ok := n.(Stmt)
	if !ok {
		return nil, mismatch(path, n, "a statement")
	}
	return s, nil
}

func (d *document) typeSpec() *TypeSpecifier {
	if d.Type == "" {
		return nil
	}
	return NewTypeSpecifier(d.Type)
}

func index(path, field string, i int) string {
	return path + "." + field + "[" + strconv.Itoa(i) + "]"
}

func mismatch(path string, n Node, want string) error {
	return errors.Errorf("%s: found %s, want %s", path, KindOf(n), want)
}

// toDocument is the inverse of document.node.
func toDocument(n Node) *document {
	if IsNil(n) {
		return nil
	}
	d := &document{Kind: KindOf(n).String()}
	if n.Pos().IsValid() {
		d.Pos = n.Pos().String()
	}

	switch n := n.(type) {
	case *TranslationUnit:
		for _, item := range n.Items {
			d.Items = append(d.Items, toDocument(item))
		}
	case *FuncDef:
		d.Type, d.Name = specName(n.ReturnType), n.Name
		for _, p := range n.Params {
			if p != nil {
				d.Params = append(d.Params, toDocument(p))
			}
		}
		if n.Body != nil {
			d.Body = toDocument(n.Body)
		}
	case *VarDecl:
		d.Type, d.Name = specName(n.TypeName), n.Name
		d.Init = toDocument(n.Init)
	case *ParamDecl:
		d.Type, d.Name = specName(n.TypeName), n.Name
	case *TypeSpecifier:
		d.Name = n.Name
	case *StructDef:
		d.Name = n.Name
		for _, f := range n.Fields {
			if f != nil {
				d.Fields = append(d.Fields, toDocument(f))
			}
		}
	case *CompoundStmt:
		for _, s := range n.Stmts {
			d.Stmts = append(d.Stmts, toDocument(s))
		}
	case *IfStmt:
		d.Cond, d.Then, d.Else = toDocument(n.Cond), toDocument(n.Then), toDocument(n.Else)
	case *WhileStmt:
		d.Cond, d.Body = toDocument(n.Cond), toDocument(n.Body)
	case *ForStmt:
		d.Init, d.Cond, d.Post, d.Body = toDocument(n.Init), toDocument(n.Cond), toDocument(n.Post), toDocument(n.Body)
	case *ReturnStmt:
		d.X = toDocument(n.Value)
	case *ExprStmt:
		d.X = toDocument(n.X)
	case *BinaryExpr:
		d.Op, d.X, d.Y = n.Op.String(), toDocument(n.X), toDocument(n.Y)
	case *UnaryExpr:
		d.Op, d.X = n.Op.String(), toDocument(n.X)
	case *FuncCall:
		d.Name = n.Name
		for _, a := range n.Args {
			d.Args = append(d.Args, toDocument(a))
		}
	case *VarRef:
		d.Name = n.Name
	case *MemberAccess:
		d.X, d.Member = toDocument(n.X), n.Member
	case *IntConst:
		d.Value = n.Value
	case *FloatConst:
		d.Value = float64(n.Value)
	case *BoolConst:
		d.Value = n.Value
	}
	return d
}

func specName(t *TypeSpecifier) string {
	if t == nil {
		return ""
	}
	return t.Name
}
