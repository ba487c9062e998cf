package analyzer

import (
	"github.com/cottand/tsck/frontend/types"
)

// Rule is a one-directional relation between two types: it returns true when it
// establishes that a relates to b, and false when it has no information about the pair
type Rule func(a, b types.Type) bool

// Comparator makes an asymmetric Rule usable symmetrically: Take tries the
// rule with Left and Right in both orders.
type Comparator struct {
	Left, Right types.Type
}

// Take returns true if rule(Left, Right) or rule(Right, Left) holds.
// The reverse order is only tried if the first one has no information
func (c Comparator) Take(rule Rule) bool {
	return rule(c.Left, c.Right) || rule(c.Right, c.Left)
}

// StrictEqualityRule reports whether a value of type a may be === to a value of type b.
//
// It only ever rules out overlap between two different literals: a literal
// checked against a broader type may be one of its members, so it may overlap.
// Unions always may overlap, their members are not inspected.
// Any other pair is no information
func StrictEqualityRule(a, b types.Type) bool {
	switch a := a.(type) {
	case *types.Literal:
		if b, ok := b.(*types.Literal); ok {
			return types.EqIgnoreSpan(a, b)
		}
		return true
	case *types.Union:
		return true
	default:
		return false
	}
}

// HasOverlap reports whether a strict-equality comparison between a value
// of type left and one of type right may ever be true.
//
// Types that are structurally equal always overlap. Otherwise, StrictEqualityRule decides
func HasOverlap(left, right types.Type) bool {
	if types.EqIgnoreSpan(left, right) {
		return true
	}
	return Comparator{Left: left, Right: right}.Take(StrictEqualityRule)
}
