package builtins_test

import (
	"github.com/cottand/tsck/frontend/builtins"
	"github.com/cottand/tsck/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLoad(t *testing.T) {
	ns, err := builtins.Load()
	require.NoError(t, err)

	cases := map[string]string{
		"NaN":      "number",
		"Infinity": "number",
		"isNaN":    "(n: number) => boolean",
		"parseInt": "(s: string, radix?: number) => number",
		"JSON":     "{ parse: (text: string) => any; stringify: (value: any) => string }",
		"Symbol":   "(description?: string | number) => symbol",
	}
	for name, expected := range cases {
		t.Run(name, func(t *testing.T) {
			typ, ok := ns.Lookup(name)
			require.True(t, ok)
			assert.Equal(t, expected, typ.String())
		})
	}

	_, ok := ns.Lookup("window")
	assert.False(t, ok)

	again, err := builtins.Load()
	require.NoError(t, err)
	assert.Same(t, ns, again)
}

func TestNamespaceEnv(t *testing.T) {
	ns, err := builtins.Load()
	require.NoError(t, err)

	names := ns.Names()
	assert.IsNonDecreasing(t, names)
	assert.Len(t, names, ns.Len())

	env := ns.Env(nil)
	assert.Equal(t, names, env.Names())
	typ, ok := env.Lookup("Math")
	require.True(t, ok)
	assert.Contains(t, typ.String(), "PI: number")

	var empty *builtins.Namespace
	assert.Equal(t, 0, empty.Env(nil).Len())
	assert.Empty(t, empty.Names())
}

func TestTypeNodeRoundTrip(t *testing.T) {
	cases := map[string]types.Type{
		"keyword":        types.Number,
		"string literal": types.StringLit(""),
		"number literal": types.NumberLit(0),
		"false":          types.BoolLit(false),
		"bigint":         types.BigIntLit("10"),
		"union":          types.UnionOf(types.String, types.Undefined, types.NumberLit(1)),
		"ref":            &types.Ref{Name: "Promise", Args: []types.Type{types.String}},
		"bare ref":       &types.Ref{Name: "Date"},
		"array":          &types.Array{Elem: types.UnionOf(types.String, types.Null)},
		"tuple":          &types.Tuple{Elems: []types.Type{types.String, types.BoolLit(true)}},
		"function": &types.Function{
			Params: []types.Param{{Name: "s", Type: types.String}, {Name: "radix", Type: types.Number, Optional: true}},
			Result: types.Void,
		},
		"object": types.NewObject(
			types.Property{Name: "b", Type: &types.Array{Elem: types.Any}, Optional: true},
			types.Property{Name: "a", Type: &types.Function{Result: types.Never}},
		),
	}
	for name, typ := range cases {
		t.Run(name, func(t *testing.T) {
			node, err := builtins.EncodeType(typ)
			require.NoError(t, err)

			artifact := &builtins.Artifact{Globals: []builtins.Global{{Name: "x", Kind: "const", Type: node}}}
			data, err := artifact.Marshal()
			require.NoError(t, err)
			decoded, err := builtins.Decode(data)
			require.NoError(t, err)

			ns, err := decoded.Bind()
			require.NoError(t, err)
			got, ok := ns.Lookup("x")
			require.True(t, ok)
			assert.True(t, types.EqIgnoreSpan(typ, got), "expected %s, got %s", typ, got)
			assert.Equal(t, typ.String(), got.String())
		})
	}
}

func TestEncodeRejectsIndeterminate(t *testing.T) {
	_, err := builtins.EncodeType(types.Indeterminate)
	assert.Error(t, err)
	_, err = builtins.EncodeType(&types.Array{Elem: types.Indeterminate})
	assert.Error(t, err)
	_, err = builtins.EncodeType(nil)
	assert.Error(t, err)
}

func TestDecodeRejectsInvalidArtifacts(t *testing.T) {
	cases := map[string]string{
		"not yaml":          "globals: [",
		"missing name":      "globals:\n  - kind: var\n    type: {keyword: number}\n",
		"missing type":      "globals:\n  - name: x\n    kind: var\n",
		"bad kind":          "globals:\n  - name: x\n    kind: class\n    type: {keyword: number}\n",
		"unknown keyword":   "globals:\n  - name: x\n    type: {keyword: integer}\n",
		"indeterminate":     "globals:\n  - name: x\n    type: {keyword: <indeterminate>}\n",
		"two shapes":        "globals:\n  - name: x\n    type: {keyword: number, array: {keyword: string}}\n",
		"empty shape":       "globals:\n  - name: x\n    type: {}\n",
		"one member union":  "globals:\n  - name: x\n    type: {union: [{keyword: number}]}\n",
		"two literals":      "globals:\n  - name: x\n    type: {literal: {string: a, number: 1}}\n",
		"unknown field":     "globals:\n  - name: x\n    type: {keyword: number, nullable: true}\n",
		"nested bad result": "globals:\n  - name: x\n    type: {function: {params: []}}\n",
		"text type":         "globals:\n  - name: x\n    type: number\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builtins.Decode([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestBindKeepsFirstDeclaration(t *testing.T) {
	artifact := &builtins.Artifact{Globals: []builtins.Global{
		{Name: "x", Kind: "var", Type: &builtins.TypeNode{Keyword: "string"}},
		{Name: "x", Kind: "var", Type: &builtins.TypeNode{Keyword: "number"}},
	}}
	ns, err := artifact.Bind()
	require.NoError(t, err)
	x, ok := ns.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "string", x.String())

	bad := &builtins.Artifact{Globals: []builtins.Global{{Name: "y", Type: &builtins.TypeNode{}}}}
	_, err = bad.Bind()
	assert.Error(t, err)
}
