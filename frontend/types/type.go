// Package types is the model of statically known TypeScript types the checker reasons about.
//
// A Type is immutable once constructed: the same value may be shared by several
// expressions, so nothing may modify a Type (or a slice reachable from it)
// after it has been returned by a constructor.
package types

import (
	"fmt"
	"github.com/benbjohnson/immutable"
	"github.com/cottand/tsck/frontend/ast"
	"math"
	"strconv"
)

// Type is a closed set of type shapes. The variants are Literal, Union,
// and the 'other' shapes: Keyword, Ref, Array, Tuple, Function and Object.
type Type interface {
	fmt.Stringer
	// Hash ignores spans, so that EqIgnoreSpan(a, b) implies a.Hash() == b.Hash()
	Hash() uint64
	// Span is where this type was written or inferred from, and
	// may be the zero ast.Range
	Span() ast.Range

	withSpan(ast.Range) Type
}

var (
	_ Type = (*Literal)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*Keyword)(nil)
	_ Type = (*Ref)(nil)
	_ Type = (*Array)(nil)
	_ Type = (*Tuple)(nil)
	_ Type = (*Function)(nil)
	_ Type = (*Object)(nil)
)

type spanned struct {
	span ast.Range
}

func (w spanned) Span() ast.Range { return w.span }

// At returns a copy of t located at p. t itself is not modified
func At(t Type, p ast.Positioner) Type {
	if t == nil {
		return nil
	}
	return t.withSpan(ast.RangeOf(p))
}

type LitKind uint8

const (
	LitString LitKind = iota
	LitNumber
	LitBoolean
	LitBigInt
)

// LitValue is the value of a Literal. Only the field matching Kind is meaningful
type LitValue struct {
	Kind LitKind
	Str  string // strings, and the decimal digits of bigints
	Num  float64
	Bool bool
}

// Equal compares the underlying literal values. Numbers compare numerically,
// and NaN is considered equal to itself so that Equal is reflexive
func (v LitValue) Equal(other LitValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case LitString, LitBigInt:
		return v.Str == other.Str
	case LitNumber:
		return v.Num == other.Num || (math.IsNaN(v.Num) && math.IsNaN(other.Num))
	case LitBoolean:
		return v.Bool == other.Bool
	default:
		return false
	}
}

func (v LitValue) String() string {
	switch v.Kind {
	case LitString:
		return strconv.Quote(v.Str)
	case LitNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case LitBoolean:
		return strconv.FormatBool(v.Bool)
	case LitBigInt:
		return v.Str + "n"
	default:
		return "<invalid literal>"
	}
}

// Literal is a type inhabited by exactly one value, like `"foo"` or `42`
type Literal struct {
	Value LitValue
	spanned
}

func (t *Literal) withSpan(r ast.Range) Type {
	copied := *t
	copied.span = r
	return &copied
}

func StringLit(s string) *Literal  { return &Literal{Value: LitValue{Kind: LitString, Str: s}} }
func NumberLit(n float64) *Literal { return &Literal{Value: LitValue{Kind: LitNumber, Num: n}} }
func BoolLit(b bool) *Literal      { return &Literal{Value: LitValue{Kind: LitBoolean, Bool: b}} }

// BigIntLit takes digits in canonical decimal form, without the `n` suffix
func BigIntLit(digits string) *Literal {
	return &Literal{Value: LitValue{Kind: LitBigInt, Str: digits}}
}

// Union is satisfied by any one of its members.
//
// Member order is not semantically significant, but it is preserved
// for stable diagnostics, and EqIgnoreSpan compares unions member by member in order
type Union struct {
	members *immutable.List[Type]
	spanned
}

func (t *Union) withSpan(r ast.Range) Type {
	copied := *t
	copied.span = r
	return &copied
}

// Len is the number of members of the union
func (t *Union) Len() int {
	if t.members == nil {
		return 0
	}
	return t.members.Len()
}

// At returns the i-th member of the union
func (t *Union) At(i int) Type { return t.members.Get(i) }

type KeywordKind uint8

const (
	KwAny KeywordKind = iota
	KwUnknown
	KwNever
	KwVoid
	KwUndefined
	KwNull
	KwString
	KwNumber
	KwBoolean
	KwBigInt
	KwSymbol
	KwObject
	// KwIndeterminate is what the checker binds names whose type
	// could not be found to. It is not a TypeScript type, and cannot be written
	KwIndeterminate
)

var keywordNames = [...]string{
	KwAny:           "any",
	KwUnknown:       "unknown",
	KwNever:         "never",
	KwVoid:          "void",
	KwUndefined:     "undefined",
	KwNull:          "null",
	KwString:        "string",
	KwNumber:        "number",
	KwBoolean:       "boolean",
	KwBigInt:        "bigint",
	KwSymbol:        "symbol",
	KwObject:        "object",
	KwIndeterminate: "<indeterminate>",
}

func (k KeywordKind) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "<invalid keyword>"
}

// ParseKeyword returns the KeywordKind named name, if any
func ParseKeyword(name string) (KeywordKind, bool) {
	for k, n := range keywordNames {
		if n == name && KeywordKind(k) != KwIndeterminate {
			return KeywordKind(k), true
		}
	}
	return 0, false
}

// Keyword is a predefined type such as `string` or `unknown`
type Keyword struct {
	Kind KeywordKind
	spanned
}

func (t *Keyword) withSpan(r ast.Range) Type {
	copied := *t
	copied.span = r
	return &copied
}

func KeywordOf(kind KeywordKind) *Keyword { return &Keyword{Kind: kind} }

var (
	Any       = KeywordOf(KwAny)
	Unknown   = KeywordOf(KwUnknown)
	Never     = KeywordOf(KwNever)
	Void      = KeywordOf(KwVoid)
	Undefined = KeywordOf(KwUndefined)
	Null      = KeywordOf(KwNull)
	String    = KeywordOf(KwString)
	Number    = KeywordOf(KwNumber)
	Boolean   = KeywordOf(KwBoolean)
	BigInt    = KeywordOf(KwBigInt)

	Indeterminate = KeywordOf(KwIndeterminate)
)

// Ref is a reference to a named type, such as `Date` or `Promise<string>`.
// Names are not resolved: two Refs are the same type iff names and arguments match
type Ref struct {
	Name string
	Args []Type
	spanned
}

func (t *Ref) withSpan(r ast.Range) Type {
	copied := *t
	copied.span = r
	return &copied
}

type Array struct {
	Elem Type
	spanned
}

func (t *Array) withSpan(r ast.Range) Type {
	copied := *t
	copied.span = r
	return &copied
}

type Tuple struct {
	Elems []Type
	spanned
}

func (t *Tuple) withSpan(r ast.Range) Type {
	copied := *t
	copied.span = r
	return &copied
}

// Param is a Function parameter. Its Name is kept for display only
type Param struct {
	Name     string
	Type     Type
	Optional bool
}

type Function struct {
	Params []Param
	Result Type
	spanned
}

func (t *Function) withSpan(r ast.Range) Type {
	copied := *t
	copied.span = r
	return &copied
}

type Property struct {
	Name     string
	Type     Type
	Optional bool
}

// Object is an object type. Props are sorted by name, use NewObject to build one
type Object struct {
	Props []Property
	spanned
}

func (t *Object) withSpan(r ast.Range) Type {
	copied := *t
	copied.span = r
	return &copied
}

// Prop returns the property called name, if present
func (t *Object) Prop(name string) (Property, bool) {
	for _, p := range t.Props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}
