package builtins

import (
	"errors"
	"fmt"
	"github.com/cottand/tsck/frontend/types"
)

// TypeNode is the serialised form of a types.Type. Exactly one field is set
type TypeNode struct {
	Keyword  string        `yaml:"keyword,omitempty"`
	Literal  *LiteralNode  `yaml:"literal,omitempty"`
	Union    []*TypeNode   `yaml:"union,omitempty"`
	Ref      *RefNode      `yaml:"ref,omitempty"`
	Array    *TypeNode     `yaml:"array,omitempty"`
	Tuple    *TupleNode    `yaml:"tuple,omitempty"`
	Function *FunctionNode `yaml:"function,omitempty"`
	Object   *ObjectNode   `yaml:"object,omitempty"`
}

// LiteralNode is a literal type. Exactly one field is set
type LiteralNode struct {
	String  *string  `yaml:"string,omitempty"`
	Number  *float64 `yaml:"number,omitempty"`
	Boolean *bool    `yaml:"boolean,omitempty"`
	// BigInt holds decimal digits, without the `n`
	BigInt *string `yaml:"bigint,omitempty"`
}

type RefNode struct {
	Name string      `yaml:"name"`
	Args []*TypeNode `yaml:"args,omitempty"`
}

type TupleNode struct {
	Elems []*TypeNode `yaml:"elems"`
}

type FunctionNode struct {
	Params []FieldNode `yaml:"params"`
	Result *TypeNode   `yaml:"result"`
}

type ObjectNode struct {
	Props []FieldNode `yaml:"props"`
}

// FieldNode is a function parameter or an object property
type FieldNode struct {
	Name     string    `yaml:"name"`
	Optional bool      `yaml:"optional,omitempty"`
	Type     *TypeNode `yaml:"type"`
}

var errEmptyNode = errors.New("type has no shape")

// EncodeType turns t into a TypeNode. Spans are not kept
func EncodeType(t types.Type) (*TypeNode, error) {
	switch t := t.(type) {
	case *types.Keyword:
		if t.Kind == types.KwIndeterminate {
			return nil, fmt.Errorf("cannot encode %s", t)
		}
		return &TypeNode{Keyword: t.Kind.String()}, nil
	case *types.Literal:
		lit := &LiteralNode{}
		switch v := t.Value; v.Kind {
		case types.LitString:
			lit.String = &v.Str
		case types.LitNumber:
			lit.Number = &v.Num
		case types.LitBoolean:
			lit.Boolean = &v.Bool
		case types.LitBigInt:
			lit.BigInt = &v.Str
		default:
			return nil, fmt.Errorf("cannot encode literal %s", t)
		}
		return &TypeNode{Literal: lit}, nil
	case *types.Union:
		members := make([]types.Type, t.Len())
		for i := range members {
			members[i] = t.At(i)
		}
		nodes, err := encodeAll(members)
		if err != nil {
			return nil, err
		}
		return &TypeNode{Union: nodes}, nil
	case *types.Ref:
		args, err := encodeAll(t.Args)
		if err != nil {
			return nil, err
		}
		return &TypeNode{Ref: &RefNode{Name: t.Name, Args: args}}, nil
	case *types.Array:
		elem, err := EncodeType(t.Elem)
		if err != nil {
			return nil, err
		}
		return &TypeNode{Array: elem}, nil
	case *types.Tuple:
		elems, err := encodeAll(t.Elems)
		if err != nil {
			return nil, err
		}
		return &TypeNode{Tuple: &TupleNode{Elems: elems}}, nil
	case *types.Function:
		fn := &FunctionNode{Params: make([]FieldNode, 0, len(t.Params))}
		for _, p := range t.Params {
			node, err := EncodeType(p.Type)
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, FieldNode{Name: p.Name, Optional: p.Optional, Type: node})
		}
		result := t.Result
		if result == nil {
			result = types.Void
		}
		node, err := EncodeType(result)
		if err != nil {
			return nil, err
		}
		fn.Result = node
		return &TypeNode{Function: fn}, nil
	case *types.Object:
		obj := &ObjectNode{Props: make([]FieldNode, 0, len(t.Props))}
		for _, p := range t.Props {
			node, err := EncodeType(p.Type)
			if err != nil {
				return nil, err
			}
			obj.Props = append(obj.Props, FieldNode{Name: p.Name, Optional: p.Optional, Type: node})
		}
		return &TypeNode{Object: obj}, nil
	case nil:
		return nil, errors.New("cannot encode a nil type")
	default:
		return nil, fmt.Errorf("cannot encode %T", t)
	}
}

func encodeAll(ts []types.Type) ([]*TypeNode, error) {
	var nodes []*TypeNode
	for _, t := range ts {
		node, err := EncodeType(t)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Type builds the types.Type n stands for
func (n *TypeNode) Type() (types.Type, error) {
	if n == nil {
		return nil, errEmptyNode
	}
	if set := n.shapes(); set != 1 {
		if set == 0 {
			return nil, errEmptyNode
		}
		return nil, fmt.Errorf("type has %d shapes, expected one", set)
	}
	switch {
	case n.Keyword != "":
		kind, ok := types.ParseKeyword(n.Keyword)
		if !ok {
			return nil, fmt.Errorf("unknown keyword type '%s'", n.Keyword)
		}
		return types.KeywordOf(kind), nil
	case n.Literal != nil:
		return n.Literal.literal()
	case n.Union != nil:
		members, err := typesOf(n.Union)
		if err != nil {
			return nil, fmt.Errorf("union: %w", err)
		}
		if len(members) < 2 {
			return nil, fmt.Errorf("union has %d members, expected at least two", len(members))
		}
		return types.UnionOf(members...), nil
	case n.Ref != nil:
		if n.Ref.Name == "" {
			return nil, errors.New("type reference has no name")
		}
		args, err := typesOf(n.Ref.Args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Ref.Name, err)
		}
		if len(args) == 0 {
			args = nil
		}
		return &types.Ref{Name: n.Ref.Name, Args: args}, nil
	case n.Array != nil:
		elem, err := n.Array.Type()
		if err != nil {
			return nil, fmt.Errorf("array: %w", err)
		}
		return &types.Array{Elem: elem}, nil
	case n.Tuple != nil:
		elems, err := typesOf(n.Tuple.Elems)
		if err != nil {
			return nil, fmt.Errorf("tuple: %w", err)
		}
		return &types.Tuple{Elems: elems}, nil
	case n.Function != nil:
		fn := &types.Function{Params: make([]types.Param, 0, len(n.Function.Params))}
		for _, p := range n.Function.Params {
			t, err := p.Type.Type()
			if err != nil {
				return nil, fmt.Errorf("parameter '%s': %w", p.Name, err)
			}
			fn.Params = append(fn.Params, types.Param{Name: p.Name, Type: t, Optional: p.Optional})
		}
		result, err := n.Function.Result.Type()
		if err != nil {
			return nil, fmt.Errorf("result: %w", err)
		}
		fn.Result = result
		return fn, nil
	default:
		props := make([]types.Property, 0, len(n.Object.Props))
		for _, p := range n.Object.Props {
			if p.Name == "" {
				return nil, errors.New("property has no name")
			}
			t, err := p.Type.Type()
			if err != nil {
				return nil, fmt.Errorf("property '%s': %w", p.Name, err)
			}
			props = append(props, types.Property{Name: p.Name, Type: t, Optional: p.Optional})
		}
		return types.NewObject(props...), nil
	}
}

func (n *TypeNode) shapes() int {
	set := 0
	for _, isSet := range []bool{
		n.Keyword != "",
		n.Literal != nil,
		n.Union != nil,
		n.Ref != nil,
		n.Array != nil,
		n.Tuple != nil,
		n.Function != nil,
		n.Object != nil,
	} {
		if isSet {
			set++
		}
	}
	return set
}

func (l *LiteralNode) literal() (types.Type, error) {
	var lit types.Type
	set := 0
	if l.String != nil {
		lit = types.StringLit(*l.String)
		set++
	}
	if l.Number != nil {
		lit = types.NumberLit(*l.Number)
		set++
	}
	if l.Boolean != nil {
		lit = types.BoolLit(*l.Boolean)
		set++
	}
	if l.BigInt != nil {
		lit = types.BigIntLit(*l.BigInt)
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("literal has %d values, expected one", set)
	}
	return lit, nil
}

func typesOf(nodes []*TypeNode) ([]types.Type, error) {
	ts := make([]types.Type, 0, len(nodes))
	for _, node := range nodes {
		t, err := node.Type()
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}
