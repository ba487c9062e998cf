package ast

import (
	"strconv"
	"strings"
)

// ExprString renders expr back into TypeScript-like syntax, for logging and error messages.
//
// The output is not guaranteed to be the original source text
func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExpr(expr)
	return ctx.String()
}

// AnnString renders a type annotation the way it would be written in source
func AnnString(ann TypeAnn) string {
	ctx := newShowContext()
	ctx.showAnn(ann)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func newShowContext() *showContext {
	return &showContext{Builder: &strings.Builder{}}
}

func (ctx *showContext) showList(n int, sep string, show func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			ctx.WriteString(sep)
		}
		show(i)
	}
}

func (ctx *showContext) showExpr(expr Expr) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case *Ident:
		ctx.WriteString(expr.Name)
	case *StrLit:
		ctx.WriteString(strconv.Quote(expr.Value))
	case *NumLit:
		if expr.Raw != "" {
			ctx.WriteString(expr.Raw)
		} else {
			ctx.WriteString(strconv.FormatFloat(expr.Value, 'g', -1, 64))
		}
	case *BigIntLit:
		ctx.WriteString(expr.Digits + "n")
	case *BoolLit:
		ctx.WriteString(strconv.FormatBool(expr.Value))
	case *NullLit:
		ctx.WriteString("null")
	case *UndefinedLit:
		ctx.WriteString("undefined")
	case *TemplateLit:
		ctx.WriteString("`")
		for i, quasi := range expr.Quasis {
			ctx.WriteString(quasi)
			if i < len(expr.Exprs) {
				ctx.WriteString("${")
				ctx.showExpr(expr.Exprs[i])
				ctx.WriteString("}")
			}
		}
		ctx.WriteString("`")
	case *ParenExpr:
		ctx.WriteString("(")
		ctx.showExpr(expr.X)
		ctx.WriteString(")")
	case *AsExpr:
		ctx.showExpr(expr.X)
		ctx.WriteString(" as ")
		if expr.IsConst() {
			ctx.WriteString("const")
		} else {
			ctx.showAnn(expr.Type)
		}
	case *UnaryExpr:
		ctx.WriteString(expr.Operator.String())
		if expr.Operator >= UnaryTypeOf {
			ctx.WriteString(" ")
		}
		ctx.showExpr(expr.Operand)
	case *BinaryExpr:
		ctx.showExpr(expr.Left)
		ctx.WriteString(" " + expr.Operator.String() + " ")
		ctx.showExpr(expr.Right)
	case *CondExpr:
		ctx.showExpr(expr.Test)
		ctx.WriteString(" ? ")
		ctx.showExpr(expr.Cons)
		ctx.WriteString(" : ")
		ctx.showExpr(expr.Alt)
	case *CallExpr:
		ctx.showExpr(expr.Callee)
		ctx.WriteString("(")
		ctx.showList(len(expr.Args), ", ", func(i int) { ctx.showExpr(expr.Args[i]) })
		ctx.WriteString(")")
	case *MemberExpr:
		ctx.showExpr(expr.X)
		ctx.WriteString("." + expr.Prop)
	case *ArrayLit:
		ctx.WriteString("[")
		ctx.showList(len(expr.Elems), ", ", func(i int) { ctx.showExpr(expr.Elems[i]) })
		ctx.WriteString("]")
	case *ObjectLit:
		ctx.WriteString("{")
		ctx.showList(len(expr.Props), ", ", func(i int) {
			ctx.WriteString(expr.Props[i].Key + ": ")
			ctx.showExpr(expr.Props[i].Value)
		})
		ctx.WriteString("}")
	case *AssignExpr:
		ctx.showExpr(expr.Target)
		ctx.WriteString(" = ")
		ctx.showExpr(expr.Value)
	case *FuncExpr:
		ctx.showParams(expr.Params)
		if expr.Result != nil {
			ctx.WriteString(": ")
			ctx.showAnn(expr.Result)
		}
		ctx.WriteString(" => ")
		if expr.Expr != nil {
			ctx.showExpr(expr.Expr)
		} else {
			ctx.WriteString("{...}")
		}
	case *BadExpr:
		ctx.WriteString("<" + expr.Kind + ">")
	default:
		ctx.WriteString("<" + expr.Describe() + ">")
	}
}

func (ctx *showContext) showParams(params []Param) {
	ctx.WriteString("(")
	ctx.showList(len(params), ", ", func(i int) {
		ctx.WriteString(params[i].Name)
		if params[i].Optional {
			ctx.WriteString("?")
		}
		if params[i].TypeAnn != nil {
			ctx.WriteString(": ")
			ctx.showAnn(params[i].TypeAnn)
		}
	})
	ctx.WriteString(")")
}

func (ctx *showContext) showAnn(ann TypeAnn) {
	if ann == nil {
		ctx.WriteString("nil")
		return
	}
	switch ann := ann.(type) {
	case *KeywordAnn:
		ctx.WriteString(ann.Keyword)
	case *LitAnn:
		ctx.showExpr(ann.Lit)
	case *UnionAnn:
		ctx.showList(len(ann.Members), " | ", func(i int) { ctx.showAnn(ann.Members[i]) })
	case *RefAnn:
		ctx.WriteString(ann.Name)
		if len(ann.Args) > 0 {
			ctx.WriteString("<")
			ctx.showList(len(ann.Args), ", ", func(i int) { ctx.showAnn(ann.Args[i]) })
			ctx.WriteString(">")
		}
	case *ArrayAnn:
		ctx.showAnn(ann.Elem)
		ctx.WriteString("[]")
	case *TupleAnn:
		ctx.WriteString("[")
		ctx.showList(len(ann.Elems), ", ", func(i int) { ctx.showAnn(ann.Elems[i]) })
		ctx.WriteString("]")
	case *FuncAnn:
		ctx.showParams(ann.Params)
		ctx.WriteString(" => ")
		ctx.showAnn(ann.Result)
	case *ObjectAnn:
		ctx.WriteString("{ ")
		ctx.showList(len(ann.Members), "; ", func(i int) {
			ctx.WriteString(ann.Members[i].Name)
			if ann.Members[i].Optional {
				ctx.WriteString("?")
			}
			ctx.WriteString(": ")
			ctx.showAnn(ann.Members[i].Type)
		})
		ctx.WriteString(" }")
	case *ParenAnn:
		ctx.WriteString("(")
		ctx.showAnn(ann.Inner)
		ctx.WriteString(")")
	case *BadAnn:
		ctx.WriteString("<" + ann.Kind + ">")
	default:
		ctx.WriteString("<" + ann.Describe() + ">")
	}
}
