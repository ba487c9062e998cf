package types

import (
	"strconv"
	"strings"
)

// precedences for showing types, mirroring how TypeScript parses them
const (
	precFunction uint8 = iota
	precUnion
	precArray
)

func show(t Type, outer uint8) string {
	sb := &strings.Builder{}
	showIn(sb, t, outer)
	return sb.String()
}

func showIn(sb *strings.Builder, t Type, outer uint8) {
	if t == nil {
		sb.WriteString("<nil>")
		return
	}
	switch t := t.(type) {
	case *Literal:
		sb.WriteString(t.Value.String())
	case *Keyword:
		sb.WriteString(t.Kind.String())
	case *Union:
		if t.Len() == 0 {
			sb.WriteString("never")
			return
		}
		if outer > precUnion {
			sb.WriteString("(")
		}
		for i := 0; i < t.Len(); i++ {
			if i > 0 {
				sb.WriteString(" | ")
			}
			showIn(sb, t.At(i), precUnion+1)
		}
		if outer > precUnion {
			sb.WriteString(")")
		}
	case *Ref:
		sb.WriteString(t.Name)
		if len(t.Args) > 0 {
			sb.WriteString("<")
			for i, arg := range t.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				showIn(sb, arg, precFunction)
			}
			sb.WriteString(">")
		}
	case *Array:
		showIn(sb, t.Elem, precArray)
		sb.WriteString("[]")
	case *Tuple:
		sb.WriteString("[")
		for i, elem := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			showIn(sb, elem, precFunction)
		}
		sb.WriteString("]")
	case *Function:
		if outer > precFunction {
			sb.WriteString("(")
		}
		sb.WriteString("(")
		for i, param := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			name := param.Name
			if name == "" {
				name = "arg" + strconv.Itoa(i)
			}
			sb.WriteString(name)
			if param.Optional {
				sb.WriteString("?")
			}
			sb.WriteString(": ")
			showIn(sb, param.Type, precFunction)
		}
		sb.WriteString(") => ")
		showIn(sb, t.Result, precFunction)
		if outer > precFunction {
			sb.WriteString(")")
		}
	case *Object:
		if len(t.Props) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, prop := range t.Props {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(prop.Name)
			if prop.Optional {
				sb.WriteString("?")
			}
			sb.WriteString(": ")
			showIn(sb, prop.Type, precFunction)
		}
		sb.WriteString(" }")
	default:
		sb.WriteString("<unknown type>")
	}
}

func (t *Literal) String() string  { return show(t, precFunction) }
func (t *Union) String() string    { return show(t, precFunction) }
func (t *Keyword) String() string  { return show(t, precFunction) }
func (t *Ref) String() string      { return show(t, precFunction) }
func (t *Array) String() string    { return show(t, precFunction) }
func (t *Tuple) String() string    { return show(t, precFunction) }
func (t *Function) String() string { return show(t, precFunction) }
func (t *Object) String() string   { return show(t, precFunction) }
