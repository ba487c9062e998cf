package parser

import (
	"github.com/cottand/tsck/frontend/ast"
	sitter "github.com/tree-sitter/go-tree-sitter"
	"go/token"
	"strconv"
	"strings"
)

// converter builds ast nodes out of the tree-sitter concrete syntax tree of a single file
type converter struct {
	src  []byte
	file *token.File
}

func (c *converter) rangeOf(n *sitter.Node) ast.Range {
	return ast.Range{
		PosStart: c.file.Pos(int(n.StartByte())),
		PosEnd:   c.file.Pos(int(n.EndByte())),
	}
}

func (c *converter) text(n *sitter.Node) string {
	return string(c.src[n.StartByte():n.EndByte()])
}

// named returns the named children of n, without comments
func (c *converter) named(n *sitter.Node) []*sitter.Node {
	var children []*sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil || child.IsExtra() || child.Kind() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func (c *converter) firstNamed(n *sitter.Node) *sitter.Node {
	if children := c.named(n); len(children) > 0 {
		return children[0]
	}
	return nil
}

// hasToken reports whether n has an anonymous child spelled tok, like the `?` of `a?: T`
func (c *converter) hasToken(n *sitter.Node, tok string) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil && !child.IsNamed() && child.Kind() == tok {
			return true
		}
	}
	return false
}

// describe turns a grammar node kind into words, for ast.BadExpr and friends
func describe(kind string) string {
	if kind == "ERROR" {
		return "invalid"
	}
	return strings.ReplaceAll(kind, "_", " ")
}

// statements

func (c *converter) stmts(n *sitter.Node) []ast.Stmt {
	var body []ast.Stmt
	for _, child := range c.named(n) {
		body = append(body, c.stmt(child)...)
	}
	return body
}

// stmt converts a single statement node, which may declare several variables
func (c *converter) stmt(n *sitter.Node) []ast.Stmt {
	switch n.Kind() {
	case "expression_statement":
		x := c.firstNamed(n)
		if x == nil {
			return []ast.Stmt{&ast.BadStmt{Range: c.rangeOf(n), Kind: "empty expression"}}
		}
		return []ast.Stmt{&ast.ExprStmt{Range: c.rangeOf(n), X: c.expr(x)}}

	case "lexical_declaration", "variable_declaration":
		return c.varDecls(n, false)

	case "ambient_declaration":
		inner := c.firstNamed(n)
		if inner == nil {
			break
		}
		switch inner.Kind() {
		case "lexical_declaration", "variable_declaration":
			return c.varDecls(inner, true)
		case "function_signature", "function_declaration":
			return []ast.Stmt{c.funcDecl(inner)}
		}
		return []ast.Stmt{&ast.BadStmt{Range: c.rangeOf(n), Kind: "ambient " + describe(inner.Kind())}}

	case "statement_block":
		return []ast.Stmt{&ast.BlockStmt{Range: c.rangeOf(n), Body: c.stmts(n)}}

	case "if_statement":
		s := &ast.IfStmt{
			Range: c.rangeOf(n),
			Test:  c.condition(n),
			Cons:  c.single(n.ChildByFieldName("consequence"), n),
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			// the alternative is an else_clause wrapping the statement
			if alt.Kind() == "else_clause" {
				alt = c.firstNamed(alt)
			}
			if alt != nil {
				s.Alt = c.single(alt, n)
			}
		}
		return []ast.Stmt{s}

	case "return_statement":
		s := &ast.ReturnStmt{Range: c.rangeOf(n)}
		if arg := c.firstNamed(n); arg != nil {
			s.Arg = c.expr(arg)
		}
		return []ast.Stmt{s}

	case "function_declaration", "function_signature":
		return []ast.Stmt{c.funcDecl(n)}

	case "export_statement":
		if decl := n.ChildByFieldName("declaration"); decl != nil {
			return c.stmt(decl)
		}
		if value := n.ChildByFieldName("value"); value != nil {
			return []ast.Stmt{&ast.ExprStmt{Range: c.rangeOf(n), X: c.expr(value)}}
		}

	case "empty_statement":
		return nil

	case "ERROR":
		return []ast.Stmt{&ast.BadStmt{Range: c.rangeOf(n), Kind: describe(n.Kind())}}
	}
	binds, body := c.contents(n)
	return []ast.Stmt{&ast.BadStmt{
		Range:    c.rangeOf(n),
		Kind:     describe(n.Kind()),
		Declares: c.declaredNames(n),
		Binds:    binds,
		Body:     body,
	}}
}

// condition is the test of an if statement, without the parentheses the grammar requires
func (c *converter) condition(n *sitter.Node) ast.Expr {
	cond := n.ChildByFieldName("condition")
	if cond != nil && cond.Kind() == "parenthesized_expression" {
		if inner := c.firstNamed(cond); inner != nil {
			return c.expr(inner)
		}
	}
	return c.exprField(n, "condition")
}

// single converts n into exactly one statement, wrapping it in a block if needed
func (c *converter) single(n *sitter.Node, parent *sitter.Node) ast.Stmt {
	if n == nil {
		return &ast.BlockStmt{Range: c.rangeOf(parent)}
	}
	stmts := c.stmt(n)
	if len(stmts) == 1 {
		return stmts[0]
	}
	return &ast.BlockStmt{Range: c.rangeOf(n), Body: stmts}
}

func (c *converter) varDecls(n *sitter.Node, declare bool) []ast.Stmt {
	kind := ast.DeclVar
	if first := n.Child(0); first != nil {
		switch c.text(first) {
		case "const":
			kind = ast.DeclConst
		case "let":
			kind = ast.DeclLet
		}
	}
	var decls []ast.Stmt
	for _, declarator := range c.named(n) {
		if declarator.Kind() != "variable_declarator" {
			continue
		}
		name := declarator.ChildByFieldName("name")
		if name == nil || name.Kind() != "identifier" {
			bad := &ast.BadStmt{Range: c.rangeOf(declarator), Kind: "destructuring"}
			if name != nil {
				bad.Declares = c.bindingNames(name)
			}
			if value := declarator.ChildByFieldName("value"); value != nil {
				bad.Body = []ast.Stmt{&ast.ExprStmt{Range: c.rangeOf(value), X: c.expr(value)}}
			}
			decls = append(decls, bad)
			continue
		}
		decl := &ast.VarDecl{
			Range:   c.rangeOf(declarator),
			Kind:    kind,
			Name:    c.text(name),
			TypeAnn: c.typeAnnOf(declarator.ChildByFieldName("type")),
			Declare: declare,
		}
		if value := declarator.ChildByFieldName("value"); value != nil {
			decl.Init = c.expr(value)
		}
		decls = append(decls, decl)
	}
	return decls
}

func (c *converter) funcDecl(n *sitter.Node) *ast.FuncDecl {
	fn := &ast.FuncDecl{
		Range:  c.rangeOf(n),
		Params: c.params(n.ChildByFieldName("parameters")),
		Result: c.typeAnnOf(n.ChildByFieldName("return_type")),
	}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.Name = c.text(name)
	}
	if body := n.ChildByFieldName("body"); body != nil && body.Kind() == "statement_block" {
		fn.Body = &ast.BlockStmt{Range: c.rangeOf(body), Body: c.stmts(body)}
	}
	return fn
}

func (c *converter) params(n *sitter.Node) []ast.Param {
	if n == nil {
		return nil
	}
	var params []ast.Param
	for _, p := range c.named(n) {
		param := ast.Param{
			Range:    c.rangeOf(p),
			Optional: p.Kind() == "optional_parameter" || p.ChildByFieldName("value") != nil,
		}
		if pattern := p.ChildByFieldName("pattern"); pattern != nil {
			param.Name = c.text(pattern)
			if pattern.Kind() != "identifier" {
				param.Bound = c.bindingNames(pattern)
			}
		} else {
			param.Name = c.text(p)
		}
		param.TypeAnn = c.typeAnnOf(p.ChildByFieldName("type"))
		params = append(params, param)
	}
	return params
}

// expressions

// exprField converts the child of n called field, which the grammar requires but may be missing from broken source
func (c *converter) exprField(n *sitter.Node, field string) ast.Expr {
	child := n.ChildByFieldName(field)
	if child == nil {
		return &ast.BadExpr{Range: c.rangeOf(n), Kind: "missing", SyntaxError: true}
	}
	return c.expr(child)
}

func (c *converter) expr(n *sitter.Node) ast.Expr {
	r := c.rangeOf(n)
	if n.IsMissing() {
		return &ast.BadExpr{Range: r, Kind: "missing", SyntaxError: true}
	}
	switch n.Kind() {
	case "identifier":
		return &ast.Ident{Range: r, Name: c.text(n)}
	case "undefined":
		return &ast.UndefinedLit{Range: r}
	case "null":
		return &ast.NullLit{Range: r}
	case "true", "false":
		return &ast.BoolLit{Range: r, Value: n.Kind() == "true"}
	case "number":
		return c.number(n)
	case "string":
		return &ast.StrLit{Range: r, Value: c.stringValue(n)}
	case "template_string":
		return c.template(n)

	case "parenthesized_expression":
		inner := c.firstNamed(n)
		if inner == nil {
			break
		}
		return &ast.ParenExpr{Range: r, X: c.expr(inner)}

	case "as_expression":
		children := c.named(n)
		if len(children) == 0 {
			break
		}
		as := &ast.AsExpr{Range: r, X: c.expr(children[0])}
		if len(children) > 1 {
			as.Type = c.typeAnn(children[1])
		}
		return as

	case "type_assertion":
		// <T>x
		children := c.named(n)
		if len(children) != 2 {
			break
		}
		typ := c.firstNamed(children[0])
		if typ == nil {
			break
		}
		return &ast.AsExpr{Range: r, X: c.expr(children[1]), Type: c.typeAnn(typ)}

	case "satisfies_expression":
		// `x satisfies T` has the type of x
		if inner := c.firstNamed(n); inner != nil {
			return c.expr(inner)
		}

	case "unary_expression":
		op, ok := ast.ParseUnaryOp(c.fieldText(n, "operator"))
		if !ok {
			break
		}
		return &ast.UnaryExpr{Range: r, Operator: op, Operand: c.exprField(n, "argument")}

	case "binary_expression":
		op, ok := ast.ParseBinaryOp(c.fieldText(n, "operator"))
		if !ok {
			break
		}
		return &ast.BinaryExpr{
			Range:    r,
			Left:     c.exprField(n, "left"),
			Operator: op,
			Right:    c.exprField(n, "right"),
		}

	case "ternary_expression":
		return &ast.CondExpr{
			Range: r,
			Test:  c.exprField(n, "condition"),
			Cons:  c.exprField(n, "consequence"),
			Alt:   c.exprField(n, "alternative"),
		}

	case "call_expression":
		args := n.ChildByFieldName("arguments")
		if args == nil || args.Kind() != "arguments" || c.isOptionalChain(n) {
			break
		}
		call := &ast.CallExpr{Range: r, Callee: c.exprField(n, "function")}
		for _, arg := range c.named(args) {
			call.Args = append(call.Args, c.expr(arg))
		}
		return call

	case "member_expression":
		prop := n.ChildByFieldName("property")
		if prop == nil || c.isOptionalChain(n) {
			break
		}
		return &ast.MemberExpr{Range: r, X: c.exprField(n, "object"), Prop: c.text(prop)}

	case "subscript_expression":
		index := n.ChildByFieldName("index")
		if index == nil || index.Kind() != "string" || c.isOptionalChain(n) {
			return c.badExpr(n, "element access")
		}
		return &ast.MemberExpr{Range: r, X: c.exprField(n, "object"), Prop: c.stringValue(index)}

	case "array":
		arr := &ast.ArrayLit{Range: r}
		for _, elem := range c.named(n) {
			arr.Elems = append(arr.Elems, c.expr(elem))
		}
		return arr

	case "object":
		return c.object(n)

	case "assignment_expression":
		return &ast.AssignExpr{Range: r, Target: c.exprField(n, "left"), Value: c.exprField(n, "right")}

	case "arrow_function", "function_expression", "function":
		return c.funcExpr(n)

	case "ERROR":
		return &ast.BadExpr{Range: r, Kind: describe(n.Kind()), SyntaxError: true}
	}
	return c.badExpr(n, describe(n.Kind()))
}

// badExpr is an unsupported expression, which still holds what could be converted inside it
func (c *converter) badExpr(n *sitter.Node, kind string) *ast.BadExpr {
	binds, body := c.contents(n)
	return &ast.BadExpr{Range: c.rangeOf(n), Kind: kind, Binds: binds, Body: body}
}

func (c *converter) funcExpr(n *sitter.Node) ast.Expr {
	fn := &ast.FuncExpr{
		Range:  c.rangeOf(n),
		Params: c.params(n.ChildByFieldName("parameters")),
		Result: c.typeAnnOf(n.ChildByFieldName("return_type")),
		Async:  c.hasToken(n, "async"),
	}
	// x => x + 1
	if param := n.ChildByFieldName("parameter"); param != nil {
		fn.Params = []ast.Param{{Range: c.rangeOf(param), Name: c.text(param)}}
	}
	body := n.ChildByFieldName("body")
	switch {
	case body == nil:
		fn.Body = &ast.BlockStmt{Range: fn.Range}
	case body.Kind() == "statement_block":
		fn.Body = &ast.BlockStmt{Range: c.rangeOf(body), Body: c.stmts(body)}
	default:
		fn.Expr = c.expr(body)
	}
	return fn
}

func (c *converter) fieldText(n *sitter.Node, field string) string {
	child := n.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return c.text(child)
}

func (c *converter) isOptionalChain(n *sitter.Node) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil && (child.Kind() == "optional_chain" || child.Kind() == "?.") {
			return true
		}
	}
	return false
}

func (c *converter) number(n *sitter.Node) ast.Expr {
	raw := c.text(n)
	if strings.HasSuffix(raw, "n") {
		digits, err := parseBigInt(raw)
		if err != nil {
			logger.Warn("could not parse bigint literal", "raw", raw, "error", err)
			return &ast.BadExpr{Range: c.rangeOf(n), Kind: "invalid bigint"}
		}
		return &ast.BigIntLit{Range: c.rangeOf(n), Digits: digits}
	}
	value, err := parseNumber(raw)
	if err != nil {
		logger.Warn("could not parse number literal", "raw", raw, "error", err)
		return &ast.BadExpr{Range: c.rangeOf(n), Kind: "invalid number"}
	}
	return &ast.NumLit{Range: c.rangeOf(n), Value: value, Raw: raw}
}

// stringValue is the unescaped contents of a string node
func (c *converter) stringValue(n *sitter.Node) string {
	sb := &strings.Builder{}
	for _, part := range c.named(n) {
		switch part.Kind() {
		case "escape_sequence":
			sb.WriteString(unescape(c.text(part)))
		default:
			sb.WriteString(c.text(part))
		}
	}
	return sb.String()
}

func (c *converter) template(n *sitter.Node) ast.Expr {
	lit := &ast.TemplateLit{Range: c.rangeOf(n)}
	quasi := &strings.Builder{}
	for _, part := range c.named(n) {
		switch part.Kind() {
		case "template_substitution":
			lit.Quasis = append(lit.Quasis, quasi.String())
			quasi.Reset()
			if inner := c.firstNamed(part); inner != nil {
				lit.Exprs = append(lit.Exprs, c.expr(inner))
			} else {
				lit.Exprs = append(lit.Exprs, &ast.BadExpr{Range: c.rangeOf(part), Kind: "missing", SyntaxError: true})
			}
		case "escape_sequence":
			quasi.WriteString(unescape(c.text(part)))
		default:
			quasi.WriteString(c.text(part))
		}
	}
	lit.Quasis = append(lit.Quasis, quasi.String())
	return lit
}

func (c *converter) object(n *sitter.Node) ast.Expr {
	obj := &ast.ObjectLit{Range: c.rangeOf(n)}
	for _, member := range c.named(n) {
		switch member.Kind() {
		case "pair":
			key, ok := c.propertyName(member.ChildByFieldName("key"))
			if !ok {
				return c.badExpr(n, "object literal with computed keys")
			}
			obj.Props = append(obj.Props, ast.Prop{
				Range: c.rangeOf(member),
				Key:   key,
				Value: c.exprField(member, "value"),
			})
		case "shorthand_property_identifier":
			name := c.text(member)
			obj.Props = append(obj.Props, ast.Prop{
				Range: c.rangeOf(member),
				Key:   name,
				Value: &ast.Ident{Range: c.rangeOf(member), Name: name},
			})
		default:
			return c.badExpr(n, "object literal with "+describe(member.Kind()))
		}
	}
	return obj
}

// propertyName is the name of a non-computed property key
func (c *converter) propertyName(key *sitter.Node) (string, bool) {
	if key == nil {
		return "", false
	}
	switch key.Kind() {
	case "property_identifier", "private_property_identifier":
		return c.text(key), true
	case "string":
		return c.stringValue(key), true
	case "number":
		if num, ok := c.number(key).(*ast.NumLit); ok {
			return strconv.FormatFloat(num.Value, 'g', -1, 64), true
		}
	}
	return "", false
}
