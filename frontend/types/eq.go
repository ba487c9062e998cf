package types

import (
	"slices"
)

// EqIgnoreSpan is structural equality of a and b, disregarding where either was written.
//
// It is reflexive, symmetric and total. Unions are equal only if they are pairwise
// equal in their stored member order, which is intentionally stricter than
// semantic equality of union types (`A | B` is not EqIgnoreSpan to `B | A`)
func EqIgnoreSpan(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Value.Equal(b.Value)
	case *Union:
		b, ok := b.(*Union)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !EqIgnoreSpan(a.At(i), b.At(i)) {
				return false
			}
		}
		return true
	case *Keyword:
		b, ok := b.(*Keyword)
		return ok && a.Kind == b.Kind
	case *Ref:
		b, ok := b.(*Ref)
		return ok && a.Name == b.Name && slices.EqualFunc(a.Args, b.Args, EqIgnoreSpan)
	case *Array:
		b, ok := b.(*Array)
		return ok && EqIgnoreSpan(a.Elem, b.Elem)
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && slices.EqualFunc(a.Elems, b.Elems, EqIgnoreSpan)
	case *Function:
		b, ok := b.(*Function)
		// parameter names do not take part in the identity of a function type
		return ok &&
			EqIgnoreSpan(a.Result, b.Result) &&
			slices.EqualFunc(a.Params, b.Params, func(p1, p2 Param) bool {
				return p1.Optional == p2.Optional && EqIgnoreSpan(p1.Type, p2.Type)
			})
	case *Object:
		b, ok := b.(*Object)
		return ok && slices.EqualFunc(a.Props, b.Props, func(p1, p2 Property) bool {
			return p1.Name == p2.Name && p1.Optional == p2.Optional && EqIgnoreSpan(p1.Type, p2.Type)
		})
	default:
		return false
	}
}
