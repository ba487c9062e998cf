package types_test

import (
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/types"
	"github.com/stretchr/testify/assert"
	"go/token"
	"testing"
)

func at(start, end int) ast.Range {
	return ast.Range{PosStart: token.Pos(start), PosEnd: token.Pos(end)}
}

func TestEqIgnoreSpanLiterals(t *testing.T) {
	assert.True(t, types.EqIgnoreSpan(types.StringLit("foo"), types.StringLit("foo")))
	assert.False(t, types.EqIgnoreSpan(types.StringLit("foo"), types.StringLit("bar")))
	assert.True(t, types.EqIgnoreSpan(types.NumberLit(1), types.NumberLit(1.0)))
	assert.True(t, types.EqIgnoreSpan(types.NumberLit(0), types.NumberLit(-0.0)))
	assert.False(t, types.EqIgnoreSpan(types.NumberLit(1), types.StringLit("1")))
	assert.False(t, types.EqIgnoreSpan(types.BoolLit(true), types.BoolLit(false)))
	assert.True(t, types.EqIgnoreSpan(types.BigIntLit("10"), types.BigIntLit("10")))
	assert.False(t, types.EqIgnoreSpan(types.BigIntLit("10"), types.NumberLit(10)))
}

func TestEqIgnoreSpanIgnoresSpans(t *testing.T) {
	cases := []types.Type{
		types.StringLit("x"),
		types.Number,
		types.UnionOf(types.StringLit("a"), types.Number),
		&types.Array{Elem: types.String},
		&types.Ref{Name: "Promise", Args: []types.Type{types.String}},
		&types.Tuple{Elems: []types.Type{types.Number, types.BoolLit(true)}},
		&types.Function{Params: []types.Param{{Name: "a", Type: types.String}}, Result: types.Void},
		types.NewObject(types.Property{Name: "a", Type: types.Number}),
	}
	for _, c := range cases {
		t.Run(c.String(), func(t *testing.T) {
			moved := types.At(c, at(10, 20))
			assert.True(t, types.EqIgnoreSpan(c, c), "reflexive")
			assert.True(t, types.EqIgnoreSpan(c, moved))
			assert.True(t, types.EqIgnoreSpan(moved, c))
			assert.Equal(t, c.Hash(), moved.Hash())
			assert.Equal(t, at(10, 20), moved.Span())
			assert.False(t, c.Span().IsValid(), "At must not modify the original")
		})
	}
}

func TestEqIgnoreSpanNestedSpans(t *testing.T) {
	a := types.UnionOf(types.At(types.StringLit("a"), at(1, 4)), types.Number)
	b := types.UnionOf(types.StringLit("a"), types.At(types.Number, at(5, 11)))
	assert.True(t, types.EqIgnoreSpan(a, b))
}

func TestEqIgnoreSpanUnionOrderMatters(t *testing.T) {
	ab := types.UnionOf(types.StringLit("a"), types.StringLit("b"))
	ba := types.UnionOf(types.StringLit("b"), types.StringLit("a"))
	assert.False(t, types.EqIgnoreSpan(ab, ba))
	assert.False(t, types.EqIgnoreSpan(ab, types.UnionOf(types.StringLit("a"))))
}

func TestEqIgnoreSpanFunctionParamNames(t *testing.T) {
	f1 := &types.Function{Params: []types.Param{{Name: "a", Type: types.String}}, Result: types.Number}
	f2 := &types.Function{Params: []types.Param{{Name: "b", Type: types.String}}, Result: types.Number}
	f3 := &types.Function{Params: []types.Param{{Name: "a", Type: types.String, Optional: true}}, Result: types.Number}
	assert.True(t, types.EqIgnoreSpan(f1, f2))
	assert.False(t, types.EqIgnoreSpan(f1, f3))
}

func TestEqIgnoreSpanOtherShapes(t *testing.T) {
	assert.False(t, types.EqIgnoreSpan(types.String, types.Number))
	assert.False(t, types.EqIgnoreSpan(&types.Ref{Name: "Date"}, &types.Ref{Name: "RegExp"}))
	assert.False(t, types.EqIgnoreSpan(&types.Array{Elem: types.String}, &types.Array{Elem: types.Number}))
	assert.False(t, types.EqIgnoreSpan(
		types.NewObject(types.Property{Name: "a", Type: types.Number}),
		types.NewObject(types.Property{Name: "a", Type: types.Number, Optional: true}),
	))
	assert.True(t, types.EqIgnoreSpan(
		types.NewObject(types.Property{Name: "b", Type: types.String}, types.Property{Name: "a", Type: types.Number}),
		types.NewObject(types.Property{Name: "a", Type: types.Number}, types.Property{Name: "b", Type: types.String}),
	))
}

func TestNewUnion(t *testing.T) {
	flattened := types.NewUnion(
		types.StringLit("a"),
		types.UnionOf(types.Number, types.StringLit("a")),
		types.At(types.Number, at(3, 9)),
		types.Boolean,
	)
	assert.Equal(t, `"a" | number | boolean`, flattened.String())

	assert.Same(t, types.String, types.NewUnion(types.String, types.String))
	assert.Equal(t, types.Never, types.NewUnion())
}

func TestWiden(t *testing.T) {
	assert.Equal(t, "string", types.Widen(types.StringLit("a")).String())
	assert.Equal(t, "number", types.Widen(types.NumberLit(3)).String())
	assert.Equal(t, "string | boolean", types.Widen(types.UnionOf(types.StringLit("a"), types.StringLit("b"), types.BoolLit(true))).String())
	assert.Equal(t, at(1, 3), types.Widen(types.At(types.StringLit("a"), at(1, 3))).Span())
	assert.Same(t, types.Number, types.Widen(types.Number))
}

func TestShow(t *testing.T) {
	cases := map[string]types.Type{
		`"foo"`:                     types.StringLit("foo"),
		`(string | number)[]`:       &types.Array{Elem: types.UnionOf(types.String, types.Number)},
		`((a: string) => void) | 1`: types.UnionOf(&types.Function{Params: []types.Param{{Name: "a", Type: types.String}}, Result: types.Void}, types.NumberLit(1)),
		`Map<string, 10n>`:          &types.Ref{Name: "Map", Args: []types.Type{types.String, types.BigIntLit("10")}},
		`{ a: number; b?: string }`: types.NewObject(types.Property{Name: "b", Type: types.String, Optional: true}, types.Property{Name: "a", Type: types.Number}),
		`[number, true]`:            &types.Tuple{Elems: []types.Type{types.Number, types.BoolLit(true)}},
	}
	for expected, typ := range cases {
		assert.Equal(t, expected, typ.String())
	}
}

func TestKeywords(t *testing.T) {
	kind, ok := types.ParseKeyword("unknown")
	assert.True(t, ok)
	assert.Equal(t, types.KwUnknown, kind)
	_, ok = types.ParseKeyword("Number")
	assert.False(t, ok)

	assert.True(t, types.IsTop(types.Any))
	assert.True(t, types.IsTop(types.Unknown))
	assert.False(t, types.IsTop(types.Never))
	assert.True(t, types.IsStringLike(types.UnionOf(types.String, types.StringLit("a"))))
	assert.False(t, types.IsStringLike(types.UnionOf(types.String, types.Number)))
}

func TestIndeterminate(t *testing.T) {
	_, ok := types.ParseKeyword(types.KwIndeterminate.String())
	assert.False(t, ok, "indeterminate cannot be written")
	assert.False(t, types.IsTop(types.Indeterminate))

	assert.True(t, types.IsIndeterminate(types.Indeterminate))
	assert.True(t, types.IsIndeterminate(types.At(types.Indeterminate, ast.Range{})))
	assert.True(t, types.IsIndeterminate(types.UnionOf(types.String, types.Indeterminate)))
	assert.True(t, types.IsIndeterminate(&types.Array{Elem: types.Indeterminate}))
	assert.True(t, types.IsIndeterminate(&types.Function{Result: types.Indeterminate}))
	assert.True(t, types.IsIndeterminate(types.NewObject(types.Property{Name: "p", Type: types.Indeterminate})))
	assert.False(t, types.IsIndeterminate(types.Any))
	assert.False(t, types.IsIndeterminate(&types.Ref{Name: "Promise", Args: []types.Type{types.Unknown}}))
}
