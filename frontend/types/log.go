package types

import (
	"fmt"
	"log/slog"
)

// Slog wraps a Type as a slog.LogValuer so that it is only rendered if it gets logged
func Slog(t Type) slog.LogValuer { return typeLogValuer{t} }

type typeLogValuer struct{ Type }

func (l typeLogValuer) LogValue() slog.Value {
	if l.Type == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.String("str", l.String()),
		slog.String("hash", fmt.Sprintf("%x", l.Hash())),
		slog.String("pos", l.Span().String()),
	)
}
