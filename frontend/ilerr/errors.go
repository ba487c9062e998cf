package ilerr

import (
	"fmt"
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/types"
	"go/token"
	"runtime/debug"
	"strings"
)

// EnableDebugStacks makes New record the stacktrace of where an
// error was created, and FormatWithCode print where it comes from.
//
// It is off by default so that the same program always produces identical diagnostics
var EnableDebugStacks = false

const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	UndefinedVariable
	UnsupportedExpr
	UnsupportedTypeAnn
	NotCallable
	UnknownProperty
	NoOverlap
)

// IleError is a problem found in the user's program.
//
// IleErrors are accumulated in Errors rather than returned up the stack:
// finding one never aborts analysis
type IleError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) IleError
	getStack() []byte
}

func FormatWithCode(e IleError) string {
	if e.getStack() != nil {
		stack := string(e.getStack())
		if lines := strings.Split(stack, "\n"); !enableDebugFullStacktrace && len(lines) > 6 {
			stack = lines[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// SourceProvider is able to resolve positions into file locations
type SourceProvider interface {
	FileSet() *token.FileSet
}

// FormatWithCodeAndSource is like FormatWithCode, but prefixed with
// the file:line:column at which e starts
func FormatWithCodeAndSource(e IleError, provider SourceProvider) string {
	if provider == nil || provider.FileSet() == nil || !e.Pos().IsValid() {
		return FormatWithCode(e)
	}
	position := provider.FileSet().Position(e.Pos())
	return fmt.Sprintf("%s: %s", position, FormatWithCode(e))
}

// New returns err, with its stacktrace recorded when EnableDebugStacks is set
func New[E IleError](err E) IleError {
	if !EnableDebugStacks {
		return err
	}
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewParse struct {
	ast.Positioner
	ParserMessage string
	stack         []byte
}

func (e NewParse) Error() string    { return e.ParserMessage }
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Code() ErrCode { return UndefinedVariable }
func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("cannot find name '%s'", e.Name)
}
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewUnsupportedExpr is reported when the type of an expression cannot be
// determined because inference does not handle its shape
type NewUnsupportedExpr struct {
	ast.Positioner
	// Describe is what the expression is called, see ast.Node
	Describe string
	stack    []byte
}

func (e NewUnsupportedExpr) Code() ErrCode { return UnsupportedExpr }
func (e NewUnsupportedExpr) Error() string {
	return fmt.Sprintf("cannot infer the type of %s: not supported", e.Describe)
}
func (e NewUnsupportedExpr) getStack() []byte { return e.stack }
func (e NewUnsupportedExpr) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnsupportedTypeAnn struct {
	ast.Positioner
	Describe string
	stack    []byte
}

func (e NewUnsupportedTypeAnn) Code() ErrCode { return UnsupportedTypeAnn }
func (e NewUnsupportedTypeAnn) Error() string {
	return fmt.Sprintf("%s is not supported in type annotations", e.Describe)
}
func (e NewUnsupportedTypeAnn) getStack() []byte { return e.stack }
func (e NewUnsupportedTypeAnn) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNotCallable struct {
	ast.Positioner
	Callee types.Type
	stack  []byte
}

func (e NewNotCallable) Code() ErrCode { return NotCallable }
func (e NewNotCallable) Error() string {
	return fmt.Sprintf("this expression is not callable: type '%s' has no call signatures", e.Callee)
}
func (e NewNotCallable) getStack() []byte { return e.stack }
func (e NewNotCallable) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnknownProperty struct {
	ast.Positioner
	Prop  string
	On    types.Type
	stack []byte
}

func (e NewUnknownProperty) Code() ErrCode { return UnknownProperty }
func (e NewUnknownProperty) Error() string {
	return fmt.Sprintf("property '%s' does not exist on type '%s'", e.Prop, e.On)
}
func (e NewUnknownProperty) getStack() []byte { return e.stack }
func (e NewUnknownProperty) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewNoOverlap is reported for a strict-equality comparison (=== or !==) whose
// operand types can never hold equal values, so the comparison always has the same result
type NewNoOverlap struct {
	// Range is the span of the whole comparison
	ast.Range
	// Value is true when the operator was !==, in which case the comparison is always true.
	// For ===, Value is false and the comparison is always false
	Value bool
	// Left and Right point at the operand types
	Left, Right         ast.Range
	LeftType, RightType types.Type
	stack               []byte
}

func (e NewNoOverlap) Code() ErrCode { return NoOverlap }
func (e NewNoOverlap) Error() string {
	if e.Value {
		return fmt.Sprintf("this condition will always return 'true' since the types '%s' and '%s' have no overlap", e.LeftType, e.RightType)
	}
	return fmt.Sprintf("this comparison appears to be unintentional because the types '%s' and '%s' have no overlap", e.LeftType, e.RightType)
}
func (e NewNoOverlap) getStack() []byte { return e.stack }
func (e NewNoOverlap) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}
