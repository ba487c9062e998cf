package ast

// Inspect traverses the tree rooted at node in depth-first, source order.
// It calls f(node) first, and only visits the children of node if f returns true.
//
// Type annotations are visited too, but the Lit inside a LitAnn is not
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	walkChildren(node, func(child Node) { Inspect(child, f) })
}

// InspectPost traverses the tree rooted at node in depth-first, source order,
// calling f(node) after all the children of node were visited
func InspectPost(node Node, f func(Node)) {
	if node == nil {
		return
	}
	walkChildren(node, func(child Node) { InspectPost(child, f) })
	f(node)
}

func walkChildren(node Node, visit func(Node)) {
	visitExpr := func(e Expr) {
		if e != nil {
			visit(e)
		}
	}
	visitAnn := func(a TypeAnn) {
		if a != nil {
			visit(a)
		}
	}
	visitParams := func(params []Param) {
		for _, p := range params {
			visitAnn(p.TypeAnn)
		}
	}
	switch n := node.(type) {
	case *Module:
		for _, s := range n.Body {
			visit(s)
		}
	case *ExprStmt:
		visitExpr(n.X)
	case *VarDecl:
		visitAnn(n.TypeAnn)
		visitExpr(n.Init)
	case *BlockStmt:
		for _, s := range n.Body {
			visit(s)
		}
	case *IfStmt:
		visitExpr(n.Test)
		visit(n.Cons)
		if n.Alt != nil {
			visit(n.Alt)
		}
	case *ReturnStmt:
		visitExpr(n.Arg)
	case *FuncDecl:
		visitParams(n.Params)
		visitAnn(n.Result)
		if n.Body != nil {
			visit(n.Body)
		}
	case *BadStmt:
		for _, s := range n.Body {
			visit(s)
		}

	case *TemplateLit:
		for _, e := range n.Exprs {
			visitExpr(e)
		}
	case *ParenExpr:
		visitExpr(n.X)
	case *AsExpr:
		visitExpr(n.X)
		visitAnn(n.Type)
	case *UnaryExpr:
		visitExpr(n.Operand)
	case *BinaryExpr:
		visitExpr(n.Left)
		visitExpr(n.Right)
	case *CondExpr:
		visitExpr(n.Test)
		visitExpr(n.Cons)
		visitExpr(n.Alt)
	case *CallExpr:
		visitExpr(n.Callee)
		for _, a := range n.Args {
			visitExpr(a)
		}
	case *MemberExpr:
		visitExpr(n.X)
	case *ArrayLit:
		for _, e := range n.Elems {
			visitExpr(e)
		}
	case *ObjectLit:
		for _, p := range n.Props {
			visitExpr(p.Value)
		}
	case *AssignExpr:
		visitExpr(n.Target)
		visitExpr(n.Value)
	case *FuncExpr:
		visitParams(n.Params)
		visitAnn(n.Result)
		if n.Body != nil {
			visit(n.Body)
		}
		visitExpr(n.Expr)
	case *BadExpr:
		for _, s := range n.Body {
			visit(s)
		}

	case *UnionAnn:
		for _, m := range n.Members {
			visitAnn(m)
		}
	case *RefAnn:
		for _, a := range n.Args {
			visitAnn(a)
		}
	case *ArrayAnn:
		visitAnn(n.Elem)
	case *TupleAnn:
		for _, e := range n.Elems {
			visitAnn(e)
		}
	case *FuncAnn:
		visitParams(n.Params)
		visitAnn(n.Result)
	case *ObjectAnn:
		for _, m := range n.Members {
			visitAnn(m.Type)
		}
	case *ParenAnn:
		visitAnn(n.Inner)
	}
}
