package parser

import (
	"github.com/cottand/tsck/frontend/ast"
	sitter "github.com/tree-sitter/go-tree-sitter"
	"strings"
)

// contents converts the statements and expressions found inside n, a node that is not
// converted itself, so that they are still checked. Expressions are wrapped in an ast.ExprStmt.
//
// binds are the names n makes visible to its contents, like loop variables or parameters.
// Clauses that bind names of their own, like a catch clause, become a nested ast.BadStmt
func (c *converter) contents(n *sitter.Node) (binds []string, body []ast.Stmt) {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil || !child.IsNamed() || child.IsExtra() || child.Kind() == "comment" {
			continue
		}
		field := n.FieldNameForChild(uint32(i))
		switch {
		case c.isBinding(n, field):
			binds = append(binds, c.bindingNames(child)...)
		case child.Kind() == "formal_parameters":
			binds = append(binds, c.bindingNames(child)...)
		case isStatement(child.Kind()):
			body = append(body, c.stmt(child)...)
		case isExpression(child.Kind()):
			body = append(body, &ast.ExprStmt{Range: c.rangeOf(child), X: c.expr(child)})
		case child.Kind() == "ERROR":
			// reported as a syntax error, and not checked
		default:
			innerBinds, innerBody := c.contents(child)
			if len(innerBinds) == 0 {
				body = append(body, innerBody...)
				continue
			}
			body = append(body, &ast.BadStmt{
				Range: c.rangeOf(child),
				Kind:  describe(child.Kind()),
				Binds: innerBinds,
				Body:  innerBody,
			})
		}
	}
	return binds, body
}

// isBinding reports whether the child of n called field declares names rather than referring to them
func (c *converter) isBinding(n *sitter.Node, field string) bool {
	switch n.Kind() {
	case "for_in_statement":
		// `for (x of xs)` assigns to an existing x
		return field == "left" && (c.hasToken(n, "const") || c.hasToken(n, "let") || c.hasToken(n, "var"))
	case "catch_clause":
		return field == "parameter"
	default:
		return false
	}
}

// declaredNames are the value names a statement that is not converted adds to its scope
func (c *converter) declaredNames(n *sitter.Node) []string {
	switch n.Kind() {
	case "import_statement":
		var names []string
		for _, child := range c.named(n) {
			if child.Kind() == "import_clause" {
				names = append(names, c.bindingNames(child)...)
			}
		}
		return names
	case "class_declaration", "abstract_class_declaration", "enum_declaration",
		"generator_function_declaration", "internal_module", "module":
		name := n.ChildByFieldName("name")
		if name != nil && (name.Kind() == "identifier" || name.Kind() == "type_identifier") {
			return []string{c.text(name)}
		}
	}
	return nil
}

// bindingNames are the names a binding pattern declares, like a, b and c in `{a, b: [b, c = 1]}`
func (c *converter) bindingNames(n *sitter.Node) []string {
	var field string
	switch n.Kind() {
	case "identifier", "shorthand_property_identifier_pattern":
		return []string{c.text(n)}
	case "pair_pattern":
		field = "value"
	case "assignment_pattern", "object_assignment_pattern":
		field = "left"
	case "required_parameter", "optional_parameter":
		field = "pattern"
	case "import_specifier":
		if alias := n.ChildByFieldName("alias"); alias != nil {
			return c.bindingNames(alias)
		}
		field = "name"
	case "type_annotation":
		return nil
	default:
		var names []string
		for _, child := range c.named(n) {
			names = append(names, c.bindingNames(child)...)
		}
		return names
	}
	if child := n.ChildByFieldName(field); child != nil {
		return c.bindingNames(child)
	}
	return nil
}

func isStatement(kind string) bool {
	switch kind {
	case "statement_block", "function_signature":
		return true
	}
	return strings.HasSuffix(kind, "_statement") || strings.HasSuffix(kind, "_declaration")
}

func isExpression(kind string) bool {
	switch kind {
	case "identifier", "this", "super", "number", "string", "template_string", "regex",
		"true", "false", "null", "undefined", "array", "object", "class",
		"arrow_function", "function_expression", "function", "generator_function":
		return true
	}
	return strings.HasSuffix(kind, "_expression")
}
