package ilerr

import (
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/types"
	"github.com/stretchr/testify/assert"
	"go/token"
	"testing"
)

type fileSetProvider struct{ fset *token.FileSet }

func (p fileSetProvider) FileSet() *token.FileSet { return p.fset }

func TestErrorsNilSafe(t *testing.T) {
	var errs *Errors
	assert.False(t, errs.HasError())
	assert.Equal(t, 0, errs.Len())
	assert.Nil(t, errs.Errors())
	assert.Nil(t, errs.Merge(nil))

	errs = errs.With(NewUndefinedVariable{Name: "a"})
	assert.True(t, errs.HasError())
	assert.Equal(t, 1, errs.Len())
}

func TestErrorsKeepOrder(t *testing.T) {
	first := NewUndefinedVariable{Name: "a"}
	second := NewNoOverlap{LeftType: types.StringLit("a"), RightType: types.StringLit("b")}
	third := NewUnsupportedExpr{Describe: "regex expression"}

	errs := (&Errors{}).With(first)
	other := (&Errors{}).With(second, third)
	errs = errs.Merge(other)

	assert.Equal(t, []IleError{first, second, third}, errs.Errors())
	assert.Equal(t, []IleError{second}, errs.OfCode(NoOverlap))
	assert.Empty(t, errs.OfCode(Parse))
}

func TestNoOverlapMessage(t *testing.T) {
	alwaysFalse := NewNoOverlap{LeftType: types.StringLit("foo"), RightType: types.StringLit("bar")}
	assert.Equal(t,
		`(E007) this comparison appears to be unintentional because the types '"foo"' and '"bar"' have no overlap`,
		FormatWithCode(alwaysFalse),
	)
	alwaysTrue := alwaysFalse
	alwaysTrue.Value = true
	assert.Contains(t, alwaysTrue.Error(), "will always return 'true'")
}

func TestFormatWithCodeAndSource(t *testing.T) {
	fset := token.NewFileSet()
	f := fset.AddFile("main.ts", -1, 20)
	f.SetLinesForContent([]byte("let a = 1\nb === 2\n"))
	err := NewUndefinedVariable{Positioner: ast.Range{PosStart: f.Pos(10), PosEnd: f.Pos(11)}, Name: "b"}

	assert.Equal(t, "main.ts:2:1: (E002) cannot find name 'b'", FormatWithCodeAndSource(err, fileSetProvider{fset}))
	assert.Equal(t, "(E002) cannot find name 'b'", FormatWithCodeAndSource(err, nil))
}

func TestNewRecordsStackOnlyWhenEnabled(t *testing.T) {
	err := New(NewUndefinedVariable{Name: "a"})
	assert.Nil(t, err.getStack())

	EnableDebugStacks = true
	defer func() { EnableDebugStacks = false }()
	err = New(NewUndefinedVariable{Name: "a"})
	assert.NotNil(t, err.getStack())
	assert.Equal(t, UndefinedVariable, err.Code())
}
