package ast

import "strings"

// Node is the base interface for all nodes of the syntax tree.
//
// The tree is built once by the parser and is read-only afterward:
// nothing downstream of the parser mutates a Node.
type Node interface {
	Positioner
	// Describe is what to call this node in error messages
	Describe() string
}

// Expr is the interface for all expression nodes in the AST.
type Expr interface {
	Node
	exprNode() // Marker method to distinguish expressions
}

// Stmt is the interface for all statement nodes in the AST.
type Stmt interface {
	Node
	stmtNode() // Marker method to distinguish statements
}

// TypeAnn is the interface for all type annotation nodes in the AST,
// as written by the user (`x: string | number`).
//
// A TypeAnn is not a types.Type: annotations are converted to types during inference
type TypeAnn interface {
	Node
	typeAnnNode() // Marker method to distinguish type annotations
}

// Module represents a single source file
type Module struct {
	Range
	// Name is the file name the module was parsed from
	Name string
	Body []Stmt
}

func (m *Module) Describe() string { return "module" }

// withNoun appends noun to kind, unless kind already ends with it
// ("member expression" stays as is, "regex" becomes "regex expression")
func withNoun(kind, noun string) string {
	if kind == noun || strings.HasSuffix(kind, " "+noun) {
		return kind
	}
	return kind + " " + noun
}
