package types

import (
	"cmp"
	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"
	"slices"
)

// UnionOf builds a Union with exactly members, in order, without any normalisation.
//
// members is copied, so the caller may reuse the slice
func UnionOf(members ...Type) *Union {
	return &Union{members: immutable.NewList(members...)}
}

// NewUnion builds the union of members the way inference wants it:
// nested unions are flattened, members that are EqIgnoreSpan to an earlier member are dropped,
// and first-occurrence order is kept.
// A single remaining member is returned as-is, and no members at all is never
func NewUnion(members ...Type) Type {
	seen := set.NewHashSet[Type, uint64](len(members))
	var flat []Type
	var add func(t Type)
	add = func(t Type) {
		if u, ok := t.(*Union); ok {
			for i := 0; i < u.Len(); i++ {
				add(u.At(i))
			}
			return
		}
		// hashes may collide, so confirm with EqIgnoreSpan before dropping t
		if !seen.Insert(t) && slices.ContainsFunc(flat, func(other Type) bool { return EqIgnoreSpan(t, other) }) {
			return
		}
		flat = append(flat, t)
	}
	for _, m := range members {
		if m != nil {
			add(m)
		}
	}
	switch len(flat) {
	case 0:
		return Never
	case 1:
		return flat[0]
	default:
		return UnionOf(flat...)
	}
}

// NewObject builds an Object with props sorted by name.
// When a name repeats, the last property wins, like in an object literal
func NewObject(props ...Property) *Object {
	byName := make(map[string]int, len(props))
	var sorted []Property
	for _, p := range props {
		if i, ok := byName[p.Name]; ok {
			sorted[i] = p
			continue
		}
		byName[p.Name] = len(sorted)
		sorted = append(sorted, p)
	}
	slices.SortStableFunc(sorted, func(a, b Property) int { return cmp.Compare(a.Name, b.Name) })
	return &Object{Props: sorted}
}

// Widen maps literal types to the primitive they belong to (`"a"` to `string`),
// which is the type TypeScript gives to mutable bindings initialised with a literal
func Widen(t Type) Type {
	switch t := t.(type) {
	case *Literal:
		var widened Type
		switch t.Value.Kind {
		case LitString:
			widened = String
		case LitNumber:
			widened = Number
		case LitBoolean:
			widened = Boolean
		case LitBigInt:
			widened = BigInt
		default:
			return t
		}
		return widened.withSpan(t.Span())
	case *Union:
		members := make([]Type, t.Len())
		for i := range members {
			members[i] = Widen(t.At(i))
		}
		return At(NewUnion(members...), t.Span())
	default:
		return t
	}
}

// IsStringLike is true for `string`, string literals, and unions made only of those
func IsStringLike(t Type) bool {
	switch t := t.(type) {
	case *Keyword:
		return t.Kind == KwString
	case *Literal:
		return t.Value.Kind == LitString
	case *Union:
		for i := 0; i < t.Len(); i++ {
			if !IsStringLike(t.At(i)) {
				return false
			}
		}
		return t.Len() > 0
	default:
		return false
	}
}

// IsTop is true for `any` and `unknown`, which every value inhabits
func IsTop(t Type) bool {
	kw, ok := t.(*Keyword)
	return ok && (kw.Kind == KwAny || kw.Kind == KwUnknown)
}

// IsIndeterminate is true when t is Indeterminate, or is built out of it
func IsIndeterminate(t Type) bool {
	switch t := t.(type) {
	case *Keyword:
		return t.Kind == KwIndeterminate
	case *Union:
		for i := 0; i < t.Len(); i++ {
			if IsIndeterminate(t.At(i)) {
				return true
			}
		}
	case *Ref:
		return slices.ContainsFunc(t.Args, IsIndeterminate)
	case *Array:
		return IsIndeterminate(t.Elem)
	case *Tuple:
		return slices.ContainsFunc(t.Elems, IsIndeterminate)
	case *Function:
		if t.Result != nil && IsIndeterminate(t.Result) {
			return true
		}
		return slices.ContainsFunc(t.Params, func(p Param) bool { return IsIndeterminate(p.Type) })
	case *Object:
		return slices.ContainsFunc(t.Props, func(p Property) bool { return IsIndeterminate(p.Type) })
	}
	return false
}
