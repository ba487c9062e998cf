package ast_test

import (
	"github.com/cottand/tsck/frontend/ast"
	"github.com/stretchr/testify/assert"
	"go/token"
	"testing"
)

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

func TestExprString(t *testing.T) {
	cases := map[string]ast.Expr{
		`a === "b"`:  &ast.BinaryExpr{Left: ident("a"), Operator: ast.BinStrictEq, Right: &ast.StrLit{Value: "b"}},
		`typeof x`:   &ast.UnaryExpr{Operator: ast.UnaryTypeOf, Operand: ident("x")},
		`-1`:         &ast.UnaryExpr{Operator: ast.UnaryMinus, Operand: &ast.NumLit{Value: 1}},
		`0x10`:       &ast.NumLit{Value: 16, Raw: "0x10"},
		`10n`:        &ast.BigIntLit{Digits: "10"},
		"`a${b}c`":   &ast.TemplateLit{Quasis: []string{"a", "c"}, Exprs: []ast.Expr{ident("b")}},
		`x as const`: &ast.AsExpr{X: ident("x")},
		`f(1, o.p)`: &ast.CallExpr{Callee: ident("f"), Args: []ast.Expr{
			&ast.NumLit{Value: 1},
			&ast.MemberExpr{X: ident("o"), Prop: "p"},
		}},
		`{a: [null, undefined]}`: &ast.ObjectLit{Props: []ast.Prop{{Key: "a", Value: &ast.ArrayLit{Elems: []ast.Expr{&ast.NullLit{}, &ast.UndefinedLit{}}}}}},
		`<element access>`:       &ast.BadExpr{Kind: "element access"},
		`(x, y?) => x`:           &ast.FuncExpr{Params: []ast.Param{{Name: "x"}, {Name: "y", Optional: true}}, Expr: ident("x")},
		`(): void => {...}`:      &ast.FuncExpr{Result: &ast.KeywordAnn{Keyword: "void"}, Body: &ast.BlockStmt{}},
		`nil`:                    nil,
	}
	for expected, expr := range cases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, ast.ExprString(expr))
		})
	}
}

func TestDescribe(t *testing.T) {
	cases := map[string]ast.Node{
		"member expression":       &ast.BadExpr{Kind: "member expression"},
		"regex expression":        &ast.BadExpr{Kind: "regex"},
		"for statement":           &ast.BadStmt{Kind: "for statement"},
		"destructuring statement": &ast.BadStmt{Kind: "destructuring"},
		"conditional type":        &ast.BadAnn{Kind: "conditional type"},
		"index signature type":    &ast.BadAnn{Kind: "index signature"},
		"function expression":     &ast.FuncExpr{},
	}
	for expected, node := range cases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, node.Describe())
		})
	}
}

func TestAnnString(t *testing.T) {
	cases := map[string]ast.TypeAnn{
		`string | 1`: &ast.UnionAnn{Members: []ast.TypeAnn{&ast.KeywordAnn{Keyword: "string"}, &ast.LitAnn{Lit: &ast.NumLit{Value: 1}}}},
		`Map<string, T[]>`: &ast.RefAnn{Name: "Map", Args: []ast.TypeAnn{
			&ast.KeywordAnn{Keyword: "string"},
			&ast.ArrayAnn{Elem: &ast.RefAnn{Name: "T"}},
		}},
		`(a?: number) => void`: &ast.FuncAnn{
			Params: []ast.Param{{Name: "a", Optional: true, TypeAnn: &ast.KeywordAnn{Keyword: "number"}}},
			Result: &ast.KeywordAnn{Keyword: "void"},
		},
		`{ a: [boolean]; b?: (unknown) }`: &ast.ObjectAnn{Members: []ast.PropAnn{
			{Name: "a", Type: &ast.TupleAnn{Elems: []ast.TypeAnn{&ast.KeywordAnn{Keyword: "boolean"}}}},
			{Name: "b", Optional: true, Type: &ast.ParenAnn{Inner: &ast.KeywordAnn{Keyword: "unknown"}}},
		}},
	}
	for expected, ann := range cases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, ast.AnnString(ann))
		})
	}
}

func testModule() *ast.Module {
	return &ast.Module{Body: []ast.Stmt{
		&ast.VarDecl{Name: "x", TypeAnn: &ast.KeywordAnn{Keyword: "number"}, Init: &ast.NumLit{Value: 1}},
		&ast.IfStmt{
			Test: &ast.BinaryExpr{Left: ident("x"), Operator: ast.BinStrictEq, Right: &ast.NumLit{Value: 2}},
			Cons: &ast.ExprStmt{X: ident("y")},
		},
	}}
}

func TestInspect(t *testing.T) {
	var visited []string
	ast.Inspect(testModule(), func(n ast.Node) bool {
		visited = append(visited, n.Describe())
		// do not go into the if statement
		_, isIf := n.(*ast.IfStmt)
		return !isIf
	})
	assert.Equal(t, []string{"module", "const declaration", "'number' type", "number literal", "if statement"}, visited)
}

func TestInspectPost(t *testing.T) {
	var visited []string
	ast.InspectPost(testModule(), func(n ast.Node) {
		if e, ok := n.(ast.Expr); ok {
			visited = append(visited, ast.ExprString(e))
		}
	})
	assert.Equal(t, []string{"1", "x", "2", "x === 2", "y"}, visited)

	assert.NotPanics(t, func() { ast.InspectPost(nil, func(ast.Node) { t.Fail() }) })
}

func TestRange(t *testing.T) {
	r := ast.Range{PosStart: token.Pos(3), PosEnd: token.Pos(7)}
	assert.True(t, r.IsValid())
	assert.Equal(t, r, ast.RangeOf(&ast.Ident{Range: r}))
	assert.Equal(t, ast.Range{}, ast.RangeOf(nil))
	assert.Equal(t, ast.Range{PosStart: 3, PosEnd: 9}, ast.RangeBetween(r, ast.Range{PosStart: 8, PosEnd: 9}))

	var invalid ast.Range
	assert.False(t, invalid.IsValid())
	assert.Equal(t, r, invalid.OrElse(r))
	assert.Equal(t, r, r.OrElse(ast.Range{PosStart: 1, PosEnd: 2}))
}
