package infer

import (
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/frontend/types"
)

// TypeOfAnn converts a type annotation into the Type it denotes.
// A nil annotation is an omitted one, and denotes any
func (e *Env) TypeOfAnn(ann ast.TypeAnn) (types.Type, ilerr.IleError) {
	if ann == nil {
		return types.Any, nil
	}
	switch ann := ann.(type) {
	case *ast.KeywordAnn:
		kind, ok := types.ParseKeyword(ann.Keyword)
		if !ok {
			return nil, ilerr.New(ilerr.NewUnsupportedTypeAnn{Positioner: ann, Describe: ann.Describe()})
		}
		return types.At(types.KeywordOf(kind), ann), nil

	case *ast.LitAnn:
		t, ok := literalType(ann.Lit)
		if !ok {
			return nil, ilerr.New(ilerr.NewUnsupportedTypeAnn{Positioner: ann, Describe: ann.Describe()})
		}
		return types.At(t, ann), nil

	case *ast.UnionAnn:
		members, err := e.typesOfAnns(ann.Members)
		if err != nil {
			return nil, err
		}
		return types.At(types.NewUnion(members...), ann), nil

	case *ast.RefAnn:
		// the grammar does not treat every keyword type as predefined, `bigint` and `undefined` among them
		if kind, ok := types.ParseKeyword(ann.Name); ok && len(ann.Args) == 0 {
			return types.At(types.KeywordOf(kind), ann), nil
		}
		args, err := e.typesOfAnns(ann.Args)
		if err != nil {
			return nil, err
		}
		if ann.Name == "Array" && len(args) == 1 {
			return types.At(&types.Array{Elem: args[0]}, ann), nil
		}
		return types.At(&types.Ref{Name: ann.Name, Args: args}, ann), nil

	case *ast.ArrayAnn:
		elem, err := e.TypeOfAnn(ann.Elem)
		if err != nil {
			return nil, err
		}
		return types.At(&types.Array{Elem: elem}, ann), nil

	case *ast.TupleAnn:
		elems, err := e.typesOfAnns(ann.Elems)
		if err != nil {
			return nil, err
		}
		return types.At(&types.Tuple{Elems: elems}, ann), nil

	case *ast.FuncAnn:
		if ann.Result == nil {
			return nil, ilerr.New(ilerr.NewUnsupportedTypeAnn{Positioner: ann, Describe: "function type without a return type"})
		}
		fn, err := e.Signature(ann.Params, ann.Result)
		if err != nil {
			return nil, err
		}
		return types.At(fn, ann), nil

	case *ast.ObjectAnn:
		props := make([]types.Property, 0, len(ann.Members))
		for _, m := range ann.Members {
			t, err := e.TypeOfAnn(m.Type)
			if err != nil {
				return nil, err
			}
			props = append(props, types.Property{Name: m.Name, Type: t, Optional: m.Optional})
		}
		return types.At(types.NewObject(props...), ann), nil

	case *ast.ParenAnn:
		return e.TypeOfAnn(ann.Inner)

	default:
		return nil, ilerr.New(ilerr.NewUnsupportedTypeAnn{Positioner: ann, Describe: ann.Describe()})
	}
}

// Signature is the Function type of a declaration with params and result.
// Parameters and results without annotations are any
func (e *Env) Signature(params []ast.Param, result ast.TypeAnn) (*types.Function, ilerr.IleError) {
	fn := &types.Function{Params: make([]types.Param, 0, len(params))}
	for _, p := range params {
		t, err := e.TypeOfAnn(p.TypeAnn)
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, types.Param{Name: p.Name, Type: t, Optional: p.Optional})
	}
	resultT, err := e.TypeOfAnn(result)
	if err != nil {
		return nil, err
	}
	fn.Result = resultT
	return fn, nil
}

func (e *Env) typesOfAnns(anns []ast.TypeAnn) ([]types.Type, ilerr.IleError) {
	ts := make([]types.Type, 0, len(anns))
	for _, a := range anns {
		t, err := e.TypeOfAnn(a)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// literalType is the type of a literal expression, if expr is one
func literalType(expr ast.Expr) (types.Type, bool) {
	switch expr := expr.(type) {
	case *ast.StrLit:
		return types.StringLit(expr.Value), true
	case *ast.NumLit:
		return types.NumberLit(expr.Value), true
	case *ast.BigIntLit:
		return types.BigIntLit(expr.Digits), true
	case *ast.BoolLit:
		return types.BoolLit(expr.Value), true
	case *ast.NullLit:
		return types.Null, true
	case *ast.UndefinedLit:
		return types.Undefined, true
	case *ast.TemplateLit:
		if len(expr.Exprs) == 0 && len(expr.Quasis) <= 1 {
			var s string
			if len(expr.Quasis) == 1 {
				s = expr.Quasis[0]
			}
			return types.StringLit(s), true
		}
		return nil, false
	default:
		return nil, false
	}
}
