package ast

var (
	_ Expr = (*Ident)(nil)
	_ Expr = (*StrLit)(nil)
	_ Expr = (*NumLit)(nil)
	_ Expr = (*BigIntLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*NullLit)(nil)
	_ Expr = (*UndefinedLit)(nil)
	_ Expr = (*TemplateLit)(nil)
	_ Expr = (*ParenExpr)(nil)
	_ Expr = (*AsExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*CondExpr)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*MemberExpr)(nil)
	_ Expr = (*ArrayLit)(nil)
	_ Expr = (*ObjectLit)(nil)
	_ Expr = (*AssignExpr)(nil)
	_ Expr = (*FuncExpr)(nil)
	_ Expr = (*BadExpr)(nil)
)

func (e *Ident) Describe() string        { return "identifier" }
func (e *StrLit) Describe() string       { return "string literal" }
func (e *NumLit) Describe() string       { return "number literal" }
func (e *BigIntLit) Describe() string    { return "bigint literal" }
func (e *BoolLit) Describe() string      { return "boolean literal" }
func (e *NullLit) Describe() string      { return "null" }
func (e *UndefinedLit) Describe() string { return "undefined" }
func (e *TemplateLit) Describe() string  { return "template literal" }
func (e *ParenExpr) Describe() string    { return "parenthesized expression" }
func (e *AsExpr) Describe() string       { return "type assertion" }
func (e *UnaryExpr) Describe() string    { return "unary expression" }
func (e *BinaryExpr) Describe() string   { return "binary expression" }
func (e *CondExpr) Describe() string     { return "conditional expression" }
func (e *CallExpr) Describe() string     { return "function call" }
func (e *MemberExpr) Describe() string   { return "property access" }
func (e *ArrayLit) Describe() string     { return "array literal" }
func (e *ObjectLit) Describe() string    { return "object literal" }
func (e *AssignExpr) Describe() string   { return "assignment" }
func (e *FuncExpr) Describe() string     { return "function expression" }
func (e *BadExpr) Describe() string      { return withNoun(e.Kind, "expression") }

func (*Ident) exprNode()        {}
func (*StrLit) exprNode()       {}
func (*NumLit) exprNode()       {}
func (*BigIntLit) exprNode()    {}
func (*BoolLit) exprNode()      {}
func (*NullLit) exprNode()      {}
func (*UndefinedLit) exprNode() {}
func (*TemplateLit) exprNode()  {}
func (*ParenExpr) exprNode()    {}
func (*AsExpr) exprNode()       {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*CondExpr) exprNode()     {}
func (*CallExpr) exprNode()     {}
func (*MemberExpr) exprNode()   {}
func (*ArrayLit) exprNode()     {}
func (*ObjectLit) exprNode()    {}
func (*AssignExpr) exprNode()   {}
func (*FuncExpr) exprNode()     {}
func (*BadExpr) exprNode()      {}

// Ident represents a reference to a variable or function name.
type Ident struct {
	Range
	Name string
}

// StrLit is a string literal, with Value already unescaped
type StrLit struct {
	Range
	Value string
}

// NumLit is a number literal. Raw keeps the syntax as written (`0x1F`, `1_000`)
type NumLit struct {
	Range
	Value float64
	Raw   string
}

// BigIntLit is a bigint literal such as `10n`. Digits is the canonical
// decimal representation without the trailing `n`
type BigIntLit struct {
	Range
	Digits string
}

type BoolLit struct {
	Range
	Value bool
}

type NullLit struct{ Range }

type UndefinedLit struct{ Range }

// TemplateLit is a template string. Quasis holds the
// literal chunks, and there is always one more quasi than there are Exprs
type TemplateLit struct {
	Range
	Quasis []string
	Exprs  []Expr
}

// ParenExpr represents a parenthesized expression.
type ParenExpr struct {
	Range
	X Expr
}

// AsExpr is a type assertion `X as Type`. Type is nil for `X as const`
type AsExpr struct {
	Range
	X    Expr
	Type TypeAnn
}

// IsConst is true for `as const` assertions
func (e *AsExpr) IsConst() bool { return e.Type == nil }

// UnaryExpr represents a prefix unary operation (!a, -b, typeof c, etc.).
type UnaryExpr struct {
	Range
	Operator UnaryOp
	Operand  Expr
}

// BinaryExpr represents a binary operation (a + b, a === b, etc.).
type BinaryExpr struct {
	Range
	Left     Expr
	Operator BinaryOp
	Right    Expr
}

// CondExpr is the ternary `Test ? Cons : Alt`
type CondExpr struct {
	Range
	Test Expr
	Cons Expr
	Alt  Expr
}

// CallExpr represents a function call (f(x, y)).
type CallExpr struct {
	Range
	Callee Expr
	Args   []Expr
}

// MemberExpr represents a property access (a.b).
//
// Computed accesses (a["b"]) are only represented when the key is a string literal
type MemberExpr struct {
	Range
	X    Expr
	Prop string
}

// ArrayLit represents an array literal ([a, b, c]).
type ArrayLit struct {
	Range
	Elems []Expr
}

// ObjectLit represents an object literal ({a: 1, b: 2}).
type ObjectLit struct {
	Range
	Props []Prop
}

// Prop is a single `Key: Value` entry in an ObjectLit. Shorthand properties
// (`{a}`) have Value set to an Ident
type Prop struct {
	Range
	Key   string
	Value Expr
}

// AssignExpr is a plain assignment `Target = Value`
type AssignExpr struct {
	Range
	Target Expr
	Value  Expr
}

// FuncExpr is an arrow function or a function expression.
// Exactly one of Body and Expr is set
type FuncExpr struct {
	Range
	Params []Param
	// Result is optional
	Result TypeAnn
	Body   *BlockStmt
	// Expr is the body of arrow functions like `x => x + 1`
	Expr  Expr
	Async bool
}

// BadExpr is an expression the parser could not convert, either because
// the source had a syntax error or because the shape is not supported.
//
// Kind is the name of the unsupported syntax, for error messages.
// Body holds what could still be converted inside the expression, see BadStmt
type BadExpr struct {
	Range
	Kind  string
	Binds []string
	Body  []Stmt
	// SyntaxError is set when the parser already reported why the expression is bad
	SyntaxError bool
}
