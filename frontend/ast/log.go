package ast

import (
	"log/slog"
)

// Slog wraps a Node as a slog.LogValuer to not render expression strings
// unless they definitely need to be logged
func Slog(node Node) slog.LogValuer {
	return nodeLogValuer{node}
}

type nodeLogValuer struct{ Node }

func (l nodeLogValuer) LogValue() slog.Value {
	var str string
	switch n := l.Node.(type) {
	case Expr:
		str = ExprString(n)
	case TypeAnn:
		str = AnnString(n)
	default:
		str = n.Describe()
	}
	return slog.GroupValue(
		slog.String("str", str),
		slog.String("pos", RangeOf(l.Node).String()),
		slog.String("name", l.Describe()),
	)
}
