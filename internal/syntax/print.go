package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a typed dump of the AST to w: one line per node, children
// indented below their parent, each line ending with the node's resolved
// type in angle brackets.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// Sprint returns the dump produced by Fprint.
func Sprint(node Node) string {
	var sb strings.Builder
	Fprint(&sb, node)
	return sb.String()
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) line(n Node, detail string) {
	if detail != "" {
		detail = " " + detail
	}
	at := ""
	if n.Pos().IsValid() {
		at = " @" + n.Pos().String()
	}
	p.printf("%s%s <%s>%s\n", KindOf(n), detail, n.Type(), at)
}

// labeled prints child under a "label:" line. Nil children are omitted.
func (p *printer) labeled(label string, child Node) {
	if IsNil(child) {
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	p.print(child)
	p.indent--
}

func (p *printer) print(node Node) {
	if IsNil(node) {
		return
	}

	switch n := node.(type) {
	case *TranslationUnit:
		p.line(n, "")
		p.indent++
		for _, item := range n.Items {
			p.print(item)
		}
		p.indent--

	case *FuncDef:
		p.line(n, fmt.Sprintf("%s %s(%s)", typeName(n.ReturnType), n.Name, paramList(n.Params)))
		if n.Body != nil {
			p.indent++
			p.print(n.Body)
			p.indent--
		}

	case *VarDecl:
		p.line(n, typeName(n.TypeName)+" "+n.Name)
		if n.Init != nil {
			p.indent++
			p.labeled("Init", n.Init)
			p.indent--
		}

	case *ParamDecl:
		p.line(n, typeName(n.TypeName)+" "+n.Name)

	case *TypeSpecifier:
		p.line(n, n.Name)

	case *StructDef:
		p.line(n, n.Name)
		p.indent++
		for _, f := range n.Fields {
			if f != nil {
				p.print(f)
			}
		}
		p.indent--

	case *CompoundStmt:
		p.line(n, "")
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.line(n, "")
		p.indent++
		p.labeled("Cond", n.Cond)
		p.labeled("Then", n.Then)
		p.labeled("Else", n.Else)
		p.indent--

	case *WhileStmt:
		p.line(n, "")
		p.indent++
		p.labeled("Cond", n.Cond)
		p.labeled("Body", n.Body)
		p.indent--

	case *ForStmt:
		p.line(n, "")
		p.indent++
		p.labeled("Init", n.Init)
		p.labeled("Cond", n.Cond)
		p.labeled("Post", n.Post)
		p.labeled("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.line(n, "")
		if n.Value != nil {
			p.indent++
			p.print(n.Value)
			p.indent--
		}

	case *ExprStmt:
		p.line(n, "")
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		p.line(n, n.Op.String())
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *UnaryExpr:
		p.line(n, n.Op.String())
		p.indent++
		p.print(n.X)
		p.indent--

	case *FuncCall:
		p.line(n, n.Name)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *VarRef:
		p.line(n, n.Name)

	case *MemberAccess:
		p.line(n, "."+n.Member)
		p.indent++
		p.print(n.X)
		p.indent--

	case *IntConst:
		p.line(n, fmt.Sprint(n.Value))

	case *FloatConst:
		p.line(n, fmt.Sprint(n.Value))

	case *BoolConst:
		p.line(n, fmt.Sprint(n.Value))

	default:
		p.printf("Unknown node %T\n", n)
	}
}

func typeName(t *TypeSpecifier) string {
	if t == nil {
		return "?"
	}
	return t.Name
}

func paramList(params []*ParamDecl) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		parts = append(parts, typeName(p.TypeName)+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}
