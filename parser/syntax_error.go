package parser

import (
	"fmt"
	"github.com/cottand/tsck/frontend/ilerr"
	sitter "github.com/tree-sitter/go-tree-sitter"
	"strings"
)

// collectSyntaxErrors reports every ERROR and MISSING node under root, in source order.
// The contents of an ERROR node are not reported again
func collectSyntaxErrors(root *sitter.Node, c *converter) *ilerr.Errors {
	errs := &ilerr.Errors{}
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch {
		case n.IsMissing():
			errs = errs.With(ilerr.New(ilerr.NewParse{
				Positioner:    c.rangeOf(n),
				ParserMessage: fmt.Sprintf("syntax error: missing %s", describeKind(n.Kind())),
			}))
			return
		case n.IsError():
			errs = errs.With(ilerr.New(ilerr.NewParse{
				Positioner:    c.rangeOf(n),
				ParserMessage: fmt.Sprintf("syntax error: unexpected %s", describeUnexpected(c.text(n))),
			}))
			return
		case !n.HasError():
			return
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			if child := n.Child(i); child != nil {
				walk(child)
			}
		}
	}
	walk(root)
	return errs
}

func describeKind(kind string) string {
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return "token"
	}
	if strings.ContainsFunc(trimmed, func(r rune) bool { return r == '_' || ('a' <= r && r <= 'z') }) && !isKeyword(trimmed) {
		return strings.ReplaceAll(trimmed, "_", " ")
	}
	return "'" + trimmed + "'"
}

func describeUnexpected(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "end of input"
	}
	if first, _, found := strings.Cut(text, "\n"); found {
		text = first
	}
	const maxLen = 20
	if len(text) > maxLen {
		text = text[:maxLen] + "..."
	}
	return "'" + text + "'"
}

func isKeyword(s string) bool {
	switch s {
	case "const", "let", "var", "function", "return", "if", "else", "as", "in", "typeof", "void", "declare":
		return true
	default:
		return false
	}
}
