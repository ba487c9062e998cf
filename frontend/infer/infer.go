package infer

import (
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/frontend/types"
	"strings"
)

// typeofResult is the union of every string `typeof x` may evaluate to
var typeofResult = types.NewUnion(
	types.StringLit("string"),
	types.StringLit("number"),
	types.StringLit("bigint"),
	types.StringLit("boolean"),
	types.StringLit("symbol"),
	types.StringLit("undefined"),
	types.StringLit("object"),
	types.StringLit("function"),
)

// TypeOf infers the type of expr in e.
//
// The returned type is located at expr, except for parenthesised expressions and
// type assertions, which keep the location of what they wrap.
// An expression shape TypeOf does not know is an ilerr.UnsupportedExpr
func (e *Env) TypeOf(expr ast.Expr) (types.Type, ilerr.IleError) {
	if expr == nil {
		return nil, ilerr.New(ilerr.NewUnsupportedExpr{Positioner: ast.Range{}, Describe: "missing expression"})
	}
	t, err := e.typeOf(expr)
	if err != nil {
		logger.Debug("inference failed", "expr", ast.Slog(expr), "error", err.Error())
		return nil, err
	}
	logger.Debug("inferred", "expr", ast.Slog(expr), "type", types.Slog(t))
	return t, nil
}

func (e *Env) typeOf(expr ast.Expr) (types.Type, ilerr.IleError) {
	if lit, ok := literalType(expr); ok {
		return types.At(lit, expr), nil
	}
	switch expr := expr.(type) {
	case *ast.Ident:
		t, ok := e.Lookup(expr.Name)
		if !ok {
			return nil, ilerr.New(ilerr.NewUndefinedVariable{Positioner: expr, Name: expr.Name})
		}
		return types.At(t, expr), nil

	case *ast.TemplateLit:
		for _, sub := range expr.Exprs {
			if _, err := e.TypeOf(sub); err != nil {
				return nil, err
			}
		}
		return types.At(types.String, expr), nil

	case *ast.ParenExpr:
		return e.TypeOf(expr.X)

	case *ast.AsExpr:
		operand, err := e.TypeOf(expr.X)
		if err != nil {
			return nil, err
		}
		if expr.IsConst() {
			return operand, nil
		}
		return e.TypeOfAnn(expr.Type)

	case *ast.UnaryExpr:
		return e.typeOfUnary(expr)

	case *ast.BinaryExpr:
		return e.typeOfBinary(expr)

	case *ast.CondExpr:
		cons, err := e.TypeOf(expr.Cons)
		if err != nil {
			return nil, err
		}
		alt, err := e.TypeOf(expr.Alt)
		if err != nil {
			return nil, err
		}
		return types.At(types.NewUnion(cons, alt), expr), nil

	case *ast.CallExpr:
		callee, err := e.TypeOf(expr.Callee)
		if err != nil {
			return nil, err
		}
		if types.IsIndeterminate(callee) {
			return types.At(types.Indeterminate, expr), nil
		}
		if types.IsTop(callee) {
			return types.At(types.Any, expr), nil
		}
		fn, ok := callee.(*types.Function)
		if !ok {
			return nil, ilerr.New(ilerr.NewNotCallable{Positioner: expr.Callee, Callee: callee})
		}
		if fn.Result == nil {
			return types.At(types.Void, expr), nil
		}
		return types.At(fn.Result, expr), nil

	case *ast.MemberExpr:
		return e.typeOfMember(expr)

	case *ast.ArrayLit:
		elems := make([]types.Type, 0, len(expr.Elems))
		for _, elem := range expr.Elems {
			t, err := e.TypeOf(elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, types.Widen(t))
		}
		return types.At(&types.Array{Elem: types.NewUnion(elems...)}, expr), nil

	case *ast.ObjectLit:
		props := make([]types.Property, 0, len(expr.Props))
		for _, p := range expr.Props {
			t, err := e.TypeOf(p.Value)
			if err != nil {
				return nil, err
			}
			props = append(props, types.Property{Name: p.Key, Type: types.Widen(t)})
		}
		return types.At(types.NewObject(props...), expr), nil

	case *ast.AssignExpr:
		return e.TypeOf(expr.Value)

	case *ast.FuncExpr:
		return e.typeOfFunc(expr)

	case *ast.BadExpr:
		if expr.SyntaxError {
			return types.At(types.Indeterminate, expr), nil
		}
		return nil, ilerr.New(ilerr.NewUnsupportedExpr{Positioner: expr, Describe: expr.Describe()})

	default:
		return nil, ilerr.New(ilerr.NewUnsupportedExpr{Positioner: expr, Describe: expr.Describe()})
	}
}

// typeOfFunc is the signature of a function expression. Without a result annotation,
// the result of an arrow function with an expression body is the widened type of that expression.
// Otherwise it is types.Indeterminate, since return statements are not inferred
func (e *Env) typeOfFunc(expr *ast.FuncExpr) (types.Type, ilerr.IleError) {
	sig, err := e.Signature(expr.Params, expr.Result)
	if err != nil {
		return nil, err
	}
	if expr.Result == nil {
		sig.Result = types.Indeterminate
		if expr.Expr != nil && !expr.Async {
			if result, err := e.DeclareParams(expr.Params).TypeOf(expr.Expr); err == nil {
				sig.Result = types.Widen(result)
			}
		}
	}
	return types.At(sig, expr), nil
}

func (e *Env) typeOfUnary(expr *ast.UnaryExpr) (types.Type, ilerr.IleError) {
	switch expr.Operator {
	case ast.UnaryTypeOf:
		// typeof is allowed on names that were never declared
		if ident, ok := expr.Operand.(*ast.Ident); ok {
			if _, declared := e.Lookup(ident.Name); !declared {
				return types.At(typeofResult, expr), nil
			}
		}
		if _, err := e.TypeOf(expr.Operand); err != nil {
			return nil, err
		}
		return types.At(typeofResult, expr), nil
	case ast.UnaryDelete:
		return types.At(types.Boolean, expr), nil
	}

	operand, err := e.TypeOf(expr.Operand)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.UnaryNot:
		return types.At(types.Boolean, expr), nil
	case ast.UnaryVoid:
		return types.At(types.Undefined, expr), nil
	case ast.UnaryMinus, ast.UnaryPlus:
		if lit, ok := operand.(*types.Literal); ok {
			if signed, ok := applySign(lit.Value, expr.Operator == ast.UnaryMinus); ok {
				return types.At(signed, expr), nil
			}
		}
		if expr.Operator == ast.UnaryMinus && isBigIntLike(operand) {
			return types.At(types.BigInt, expr), nil
		}
		return types.At(types.Number, expr), nil
	case ast.UnaryBitNot:
		if isBigIntLike(operand) {
			return types.At(types.BigInt, expr), nil
		}
		return types.At(types.Number, expr), nil
	default:
		return nil, ilerr.New(ilerr.NewUnsupportedExpr{Positioner: expr, Describe: "'" + expr.Operator.String() + "' expression"})
	}
}

// applySign returns the literal `-v` (or `+v`) when it is a literal too
func applySign(v types.LitValue, negate bool) (types.Type, bool) {
	switch v.Kind {
	case types.LitNumber:
		if negate {
			return types.NumberLit(-v.Num), true
		}
		return types.NumberLit(v.Num), true
	case types.LitBigInt:
		// unary + throws on bigints
		if !negate {
			return nil, false
		}
		switch {
		case v.Str == "0":
			return types.BigIntLit("0"), true
		case strings.HasPrefix(v.Str, "-"):
			return types.BigIntLit(strings.TrimPrefix(v.Str, "-")), true
		default:
			return types.BigIntLit("-" + v.Str), true
		}
	default:
		return nil, false
	}
}

func (e *Env) typeOfBinary(expr *ast.BinaryExpr) (types.Type, ilerr.IleError) {
	if expr.Operator == ast.BinInvalid {
		return nil, ilerr.New(ilerr.NewUnsupportedExpr{Positioner: expr, Describe: expr.Describe()})
	}
	// comparisons are boolean whatever their operands are
	if expr.Operator.IsRelational() {
		return types.At(types.Boolean, expr), nil
	}
	left, err := e.TypeOf(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.TypeOf(expr.Right)
	if err != nil {
		return nil, err
	}
	switch {
	case expr.Operator.IsLogical():
		return types.At(types.NewUnion(left, right), expr), nil
	case expr.Operator == ast.BinAdd && (types.IsStringLike(left) || types.IsStringLike(right)):
		return types.At(types.String, expr), nil
	case types.IsIndeterminate(left) || types.IsIndeterminate(right):
		return types.At(types.Indeterminate, expr), nil
	case types.IsTop(left) || types.IsTop(right):
		return types.At(types.Any, expr), nil
	case expr.Operator == ast.BinUShr:
		return types.At(types.Number, expr), nil
	case isBigIntLike(left) && isBigIntLike(right):
		return types.At(types.BigInt, expr), nil
	default:
		return types.At(types.Number, expr), nil
	}
}

func (e *Env) typeOfMember(expr *ast.MemberExpr) (types.Type, ilerr.IleError) {
	object, err := e.TypeOf(expr.X)
	if err != nil {
		return nil, err
	}
	if types.IsIndeterminate(object) {
		return types.At(types.Indeterminate, expr), nil
	}
	if types.IsTop(object) {
		return types.At(types.Any, expr), nil
	}
	if obj, ok := object.(*types.Object); ok {
		if prop, ok := obj.Prop(expr.Prop); ok {
			if prop.Optional {
				return types.At(types.NewUnion(prop.Type, types.Undefined), expr), nil
			}
			return types.At(prop.Type, expr), nil
		}
	}
	if expr.Prop == "length" {
		switch object.(type) {
		case *types.Array, *types.Tuple:
			return types.At(types.Number, expr), nil
		}
		if types.IsStringLike(object) {
			return types.At(types.Number, expr), nil
		}
	}
	return nil, ilerr.New(ilerr.NewUnknownProperty{Positioner: expr, Prop: expr.Prop, On: object})
}

func isBigIntLike(t types.Type) bool {
	switch t := t.(type) {
	case *types.Keyword:
		return t.Kind == types.KwBigInt
	case *types.Literal:
		return t.Value.Kind == types.LitBigInt
	default:
		return false
	}
}
