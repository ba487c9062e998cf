package dts_test

import (
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/builtins"
	"github.com/cottand/tsck/frontend/builtins/dts"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/frontend/infer"
	"github.com/cottand/tsck/frontend/types"
	"github.com/cottand/tsck/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go/token"
	"testing"
)

const lib = `
declare var NaN: number;
declare const version: "1.0";
declare function parseInt(s: string, radix?: number): number;
declare function untyped(x);
declare function parseInt(s: string): number;
declare let unsupported: keyof Foo;
declare const shapes: { kind: "a" | "b"; tags?: string[]; pair: [number, bigint]; at: Date };
const notAmbient = 1;
function notAmbientEither() {}
`

func typeStrings(t *testing.T, artifact *builtins.Artifact) map[string]string {
	t.Helper()
	strs := make(map[string]string, len(artifact.Globals))
	for _, g := range artifact.Globals {
		typ, err := g.Type.Type()
		require.NoError(t, err, g.Name)
		strs[g.Name] = typ.String()
	}
	return strs
}

func TestGenerate(t *testing.T) {
	fset := token.NewFileSet()
	artifact, errs, err := dts.Generate(fset, "lib.d.ts", []byte(lib))
	require.NoError(t, err)

	require.Equal(t, 1, errs.Len())
	assert.Len(t, errs.OfCode(ilerr.UnsupportedTypeAnn), 1)
	assert.Equal(t, 7, fset.Position(errs.Errors()[0].Pos()).Line)

	assert.Equal(t, "lib.d.ts", artifact.Source)
	names := make([]string, 0, len(artifact.Globals))
	kinds := make([]string, 0, len(artifact.Globals))
	for _, g := range artifact.Globals {
		names = append(names, g.Name)
		kinds = append(kinds, g.Kind)
	}
	assert.Equal(t, []string{"NaN", "version", "parseInt", "untyped", "shapes"}, names)
	assert.Equal(t, []string{"var", "const", "function", "function", "const"}, kinds)
	assert.Equal(t, map[string]string{
		"NaN":      "number",
		"version":  `"1.0"`,
		"parseInt": "(s: string, radix?: number) => number",
		"untyped":  "(x: any) => any",
		"shapes":   `{ at: Date; kind: "a" | "b"; pair: [number, bigint]; tags?: string[] }`,
	}, typeStrings(t, artifact))
}

// declared binds every `declare` in src the way infer resolves its annotation
func declared(t *testing.T, src string) map[string]types.Type {
	t.Helper()
	module, errs, err := parser.ParseFile(token.NewFileSet(), "lib.d.ts", []byte(src))
	require.NoError(t, err)
	require.False(t, errs.HasError())
	env := infer.NewEnv()
	resolved := make(map[string]types.Type)
	for _, stmt := range module.Body {
		decl, ok := stmt.(*ast.VarDecl)
		if !ok || decl.TypeAnn == nil {
			continue
		}
		typ, annErr := env.TypeOfAnn(decl.TypeAnn)
		if annErr != nil {
			continue
		}
		resolved[decl.Name] = typ
	}
	return resolved
}

func TestGenerateRoundTrip(t *testing.T) {
	src := `
declare var a: string | undefined;
declare const b: -1;
declare let c: Array<string>;
declare var d: Promise<{ ok: true }>;
declare var e: (x?: number, y?: string[]) => void;
declare var f: [1n, null];
`
	expected := declared(t, src)
	require.Len(t, expected, 6)

	artifact, errs, err := dts.Generate(token.NewFileSet(), "lib.d.ts", []byte(src))
	require.NoError(t, err)
	require.False(t, errs.HasError(), "%v", errs.Errors())

	data, err := artifact.Marshal()
	require.NoError(t, err)
	decoded, err := builtins.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, artifact, decoded)

	ns, err := decoded.Bind()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, ns.Names())
	for name, typ := range expected {
		got, ok := ns.Lookup(name)
		require.True(t, ok, name)
		assert.True(t, types.EqIgnoreSpan(typ, got), "%s: expected %s, got %s", name, typ, got)
	}
}
