// Package parser turns TypeScript source into an ast.Module, using the tree-sitter TypeScript grammar.
//
// Only the syntax the checker analyses is converted. Other statements,
// expressions and type annotations become ast.BadStmt, ast.BadExpr and ast.BadAnn
// nodes rather than failures, so a file always yields a Module.
package parser

import (
	"fmt"
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/internal/log"
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
	"go/token"
)

var logger = log.DefaultLogger.With("section", "parser")

// ParseFile parses src as the TypeScript file called name, and adds it to fset so that
// the positions in the returned Module can be resolved.
//
// Syntax errors are returned as ilerr.Parse errors alongside the Module, which still contains
// whatever could be recovered. The error is only non-nil if the grammar could not be loaded
func ParseFile(fset *token.FileSet, name string, src []byte) (*ast.Module, *ilerr.Errors, error) {
	p := sitter.NewParser()
	defer p.Close()
	if err := p.SetLanguage(sitter.NewLanguage(typescript.LanguageTypescript())); err != nil {
		return nil, nil, fmt.Errorf("load typescript grammar: %w", err)
	}

	tree := p.Parse(src, nil)
	if tree == nil {
		return nil, nil, fmt.Errorf("parse %s: tree-sitter returned no tree", name)
	}
	defer tree.Close()

	file := fset.AddFile(name, -1, len(src))
	file.SetLinesForContent(src)

	root := tree.RootNode()
	c := &converter{src: src, file: file}
	var syntaxErrs *ilerr.Errors
	if root.HasError() {
		syntaxErrs = collectSyntaxErrors(root, c)
		logger.Debug("syntax errors", "file", name, "errors", syntaxErrs)
	}

	module := &ast.Module{
		Range: c.rangeOf(root),
		Name:  name,
		Body:  c.stmts(root),
	}
	return module, syntaxErrs, nil
}
