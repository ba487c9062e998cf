package ast

var (
	_ TypeAnn = (*KeywordAnn)(nil)
	_ TypeAnn = (*LitAnn)(nil)
	_ TypeAnn = (*UnionAnn)(nil)
	_ TypeAnn = (*RefAnn)(nil)
	_ TypeAnn = (*ArrayAnn)(nil)
	_ TypeAnn = (*TupleAnn)(nil)
	_ TypeAnn = (*FuncAnn)(nil)
	_ TypeAnn = (*ObjectAnn)(nil)
	_ TypeAnn = (*ParenAnn)(nil)
	_ TypeAnn = (*BadAnn)(nil)
)

func (*KeywordAnn) typeAnnNode() {}
func (*LitAnn) typeAnnNode()     {}
func (*UnionAnn) typeAnnNode()   {}
func (*RefAnn) typeAnnNode()     {}
func (*ArrayAnn) typeAnnNode()   {}
func (*TupleAnn) typeAnnNode()   {}
func (*FuncAnn) typeAnnNode()    {}
func (*ObjectAnn) typeAnnNode()  {}
func (*ParenAnn) typeAnnNode()   {}
func (*BadAnn) typeAnnNode()     {}

func (a *KeywordAnn) Describe() string { return "'" + a.Keyword + "' type" }
func (a *LitAnn) Describe() string     { return "literal type" }
func (a *UnionAnn) Describe() string   { return "union type" }
func (a *RefAnn) Describe() string     { return "type reference" }
func (a *ArrayAnn) Describe() string   { return "array type" }
func (a *TupleAnn) Describe() string   { return "tuple type" }
func (a *FuncAnn) Describe() string    { return "function type" }
func (a *ObjectAnn) Describe() string  { return "object type" }
func (a *ParenAnn) Describe() string   { return "parenthesized type" }
func (a *BadAnn) Describe() string     { return withNoun(a.Kind, "type") }

// KeywordAnn is a predefined type such as `string` or `unknown`
type KeywordAnn struct {
	Range
	Keyword string
}

// LitAnn is a literal type (`"foo"`, `1`, `true`). Lit is one of
// StrLit, NumLit, BigIntLit, BoolLit, NullLit or UndefinedLit
type LitAnn struct {
	Range
	Lit Expr
}

// UnionAnn is `A | B | C`, with members in source order
type UnionAnn struct {
	Range
	Members []TypeAnn
}

// RefAnn is a named type, optionally with type arguments (`Promise<T>`)
type RefAnn struct {
	Range
	Name string
	Args []TypeAnn
}

type ArrayAnn struct {
	Range
	Elem TypeAnn
}

type TupleAnn struct {
	Range
	Elems []TypeAnn
}

type FuncAnn struct {
	Range
	Params []Param
	Result TypeAnn
}

type ObjectAnn struct {
	Range
	Members []PropAnn
}

// PropAnn is a property signature within an ObjectAnn
type PropAnn struct {
	Range
	Name     string
	Type     TypeAnn
	Optional bool
}

type ParenAnn struct {
	Range
	Inner TypeAnn
}

type BadAnn struct {
	Range
	Kind string
}
