package ast

import (
	"fmt"
	"go/token"
)

// Positioner allows finding the location in the original source file.
// The easiest way to be a Positioner is to embed a Range
type Positioner interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Range represents a range of positions in the source code.
//
// The zero Range is not a valid location, and is used by types which
// were not written in the source (builtins, types synthesised during inference)
type Range struct {
	PosStart token.Pos
	PosEnd   token.Pos
}

func (r Range) Pos() token.Pos { return r.PosStart }
func (r Range) End() token.Pos { return r.PosEnd }

// IsValid reports whether r points somewhere in a file
func (r Range) IsValid() bool { return r.PosStart.IsValid() }

func (r Range) String() string {
	if r.PosStart == r.PosEnd {
		return fmt.Sprintf("%v", r.PosStart)
	}
	return fmt.Sprintf("%v-%v", r.PosStart, r.PosEnd)
}

// RangeBetween creates a Range spanning from the start of fst to the end of snd.
func RangeBetween(fst, snd Positioner) Range {
	return Range{fst.Pos(), snd.End()}
}

// RangeOf creates a Range from a Positioner.
func RangeOf(p Positioner) Range {
	if p == nil {
		return Range{}
	}
	if asRange, ok := p.(*Range); ok {
		return *asRange
	}
	if asRange, ok := p.(Range); ok {
		return asRange
	}
	return Range{p.Pos(), p.End()}
}

// OrElse returns r unless it is not valid, in which case it returns the range of other
func (r Range) OrElse(other Positioner) Range {
	if r.IsValid() {
		return r
	}
	return RangeOf(other)
}
