package ast

var (
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*VarDecl)(nil)
	_ Stmt = (*BlockStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*FuncDecl)(nil)
	_ Stmt = (*BadStmt)(nil)
)

func (*ExprStmt) stmtNode()   {}
func (*VarDecl) stmtNode()    {}
func (*BlockStmt) stmtNode()  {}
func (*IfStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode() {}
func (*FuncDecl) stmtNode()   {}
func (*BadStmt) stmtNode()    {}

func (s *ExprStmt) Describe() string   { return "expression statement" }
func (s *VarDecl) Describe() string    { return s.Kind.String() + " declaration" }
func (s *BlockStmt) Describe() string  { return "block" }
func (s *IfStmt) Describe() string     { return "if statement" }
func (s *ReturnStmt) Describe() string { return "return statement" }
func (s *FuncDecl) Describe() string   { return "function declaration" }
func (s *BadStmt) Describe() string    { return withNoun(s.Kind, "statement") }

type ExprStmt struct {
	Range
	X Expr
}

type DeclKind uint8

const (
	DeclConst DeclKind = iota
	DeclLet
	DeclVar
)

func (k DeclKind) String() string {
	switch k {
	case DeclConst:
		return "const"
	case DeclLet:
		return "let"
	case DeclVar:
		return "var"
	default:
		return "invalid"
	}
}

// VarDecl is a single declarator of a `const`, `let` or `var` statement.
// Statements declaring several names are split into one VarDecl per name.
type VarDecl struct {
	Range
	Kind DeclKind
	Name string
	// TypeAnn is optional
	TypeAnn TypeAnn
	// Init is optional
	Init Expr
	// Declare is true for ambient declarations (`declare const x: T`)
	Declare bool
}

type BlockStmt struct {
	Range
	Body []Stmt
}

type IfStmt struct {
	Range
	Test Expr
	Cons Stmt
	// Alt is optional
	Alt Stmt
}

type ReturnStmt struct {
	Range
	// Arg is optional
	Arg Expr
}

// FuncDecl is a `function` declaration. Body is nil for ambient declarations
type FuncDecl struct {
	Range
	Name   string
	Params []Param
	// Result is optional
	Result TypeAnn
	Body   *BlockStmt
}

// Param represents a function parameter.
type Param struct {
	Range
	// Name is the parameter as written, which may be a destructuring pattern
	Name string
	// Bound are the names a destructuring pattern binds, and is empty for plain names
	Bound []string
	// TypeAnn is optional
	TypeAnn  TypeAnn
	Optional bool
}

// BadStmt is a statement kind that is not analysed, or had a syntax error.
//
// Body holds the statements found inside it in source order, with expressions
// wrapped in an ExprStmt, so that they are still checked.
// Declares are the names the statement binds in the enclosing scope, like a class name,
// and Binds the names only visible from Body, like loop variables. The types of both are unknown
type BadStmt struct {
	Range
	Kind     string
	Declares []string
	Binds    []string
	Body     []Stmt
}
