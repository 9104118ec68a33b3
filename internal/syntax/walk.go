package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, children in source order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if IsNil(node) || !v(node) {
		return
	}

	switch n := node.(type) {
	case *TranslationUnit:
		for _, item := range n.Items {
			Walk(item, v)
		}

	case *FuncDef:
		if n.ReturnType != nil {
			Walk(n.ReturnType, v)
		}
		for _, p := range n.Params {
			if p != nil {
				Walk(p, v)
			}
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *VarDecl:
		if n.TypeName != nil {
			Walk(n.TypeName, v)
		}
		Walk(n.Init, v)

	case *ParamDecl:
		if n.TypeName != nil {
			Walk(n.TypeName, v)
		}

	case *StructDef:
		for _, f := range n.Fields {
			if f != nil {
				Walk(f, v)
			}
		}

	case *CompoundStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ForStmt:
		Walk(n.Init, v)
		Walk(n.Cond, v)
		Walk(n.Post, v)
		Walk(n.Body, v)

	case *ReturnStmt:
		Walk(n.Value, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *FuncCall:
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *MemberAccess:
		Walk(n.X, v)

		// Leaf nodes: TypeSpecifier, VarRef, IntConst, FloatConst, BoolConst
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
