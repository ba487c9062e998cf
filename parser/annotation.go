package parser

import (
	"github.com/cottand/tsck/frontend/ast"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// typeAnnOf converts an optional type position, unwrapping the `: T` of a type_annotation
func (c *converter) typeAnnOf(n *sitter.Node) ast.TypeAnn {
	if n == nil {
		return nil
	}
	if n.Kind() == "type_annotation" {
		inner := c.firstNamed(n)
		if inner == nil {
			return &ast.BadAnn{Range: c.rangeOf(n), Kind: "missing"}
		}
		n = inner
	}
	return c.typeAnn(n)
}

func (c *converter) typeAnn(n *sitter.Node) ast.TypeAnn {
	r := c.rangeOf(n)
	switch n.Kind() {
	case "predefined_type":
		return &ast.KeywordAnn{Range: r, Keyword: c.text(n)}

	case "type_identifier", "nested_type_identifier":
		return &ast.RefAnn{Range: r, Name: c.text(n)}

	case "generic_type":
		ref := &ast.RefAnn{Range: r, Name: c.fieldText(n, "name")}
		if args := n.ChildByFieldName("type_arguments"); args != nil {
			for _, arg := range c.named(args) {
				ref.Args = append(ref.Args, c.typeAnn(arg))
			}
		}
		return ref

	case "union_type":
		// `A | B | C` nests to the left, and may have a leading `|`
		union := &ast.UnionAnn{Range: r}
		for _, member := range c.named(n) {
			ann := c.typeAnn(member)
			if nested, ok := ann.(*ast.UnionAnn); ok && member.Kind() == "union_type" {
				union.Members = append(union.Members, nested.Members...)
				continue
			}
			union.Members = append(union.Members, ann)
		}
		return union

	case "array_type":
		elem := c.firstNamed(n)
		if elem == nil {
			break
		}
		return &ast.ArrayAnn{Range: r, Elem: c.typeAnn(elem)}

	case "tuple_type":
		tuple := &ast.TupleAnn{Range: r}
		for _, elem := range c.named(n) {
			tuple.Elems = append(tuple.Elems, c.typeAnn(elem))
		}
		return tuple

	case "function_type":
		return &ast.FuncAnn{
			Range:  r,
			Params: c.params(n.ChildByFieldName("parameters")),
			Result: c.typeAnnOf(n.ChildByFieldName("return_type")),
		}

	case "object_type":
		obj := &ast.ObjectAnn{Range: r}
		for _, member := range c.named(n) {
			if member.Kind() != "property_signature" {
				return &ast.BadAnn{Range: r, Kind: "object with " + describe(member.Kind())}
			}
			name, ok := c.propertyName(member.ChildByFieldName("name"))
			if !ok {
				return &ast.BadAnn{Range: r, Kind: "object with computed keys"}
			}
			obj.Members = append(obj.Members, ast.PropAnn{
				Range:    c.rangeOf(member),
				Name:     name,
				Type:     c.typeAnnOf(member.ChildByFieldName("type")),
				Optional: c.hasToken(member, "?"),
			})
		}
		return obj

	case "parenthesized_type":
		inner := c.firstNamed(n)
		if inner == nil {
			break
		}
		return &ast.ParenAnn{Range: r, Inner: c.typeAnn(inner)}

	case "literal_type":
		if lit := c.literalType(n); lit != nil {
			return &ast.LitAnn{Range: r, Lit: lit}
		}
	}
	return &ast.BadAnn{Range: r, Kind: describe(n.Kind())}
}

// literalType converts the literal inside a literal_type, or returns nil
func (c *converter) literalType(n *sitter.Node) ast.Expr {
	inner := c.firstNamed(n)
	if inner == nil {
		return nil
	}
	switch inner.Kind() {
	case "unary_expression":
		// only `-1` and `-1n` are literal types
		arg := inner.ChildByFieldName("argument")
		if c.fieldText(inner, "operator") != "-" || arg == nil || arg.Kind() != "number" {
			return nil
		}
		switch lit := c.number(arg).(type) {
		case *ast.NumLit:
			return &ast.NumLit{Range: c.rangeOf(inner), Value: -lit.Value, Raw: "-" + lit.Raw}
		case *ast.BigIntLit:
			digits := "-" + lit.Digits
			if lit.Digits == "0" {
				digits = "0"
			}
			return &ast.BigIntLit{Range: c.rangeOf(inner), Digits: digits}
		}
		return nil
	case "string", "number", "true", "false", "null", "undefined":
		return c.expr(inner)
	}
	return nil
}
