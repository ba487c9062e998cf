package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
)

// Sections are the values of the "section" attribute loggers across the module are created with
var Sections = []string{
	"analyzer",
	"infer",
	"parser",
	"program",
	"builtins",
}

var (
	level = new(slog.LevelVar)

	mu              sync.RWMutex
	enabledSections = slices.Clone(Sections)
)

func init() {
	level.Set(slog.LevelWarn)
}

var LoggerOpts = &slog.HandlerOptions{
	AddSource: true,
	Level:     level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

// DefaultLogger writes to stderr, so that diagnostics printed on stdout stay clean
var DefaultLogger = New(os.Stderr)

func New(w io.Writer) *slog.Logger {
	return slog.New(&filteringHandler{underlying: slog.NewTextHandler(w, LoggerOpts)})
}

// SetLevel sets the minimum level of every logger created by this package
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetSections restricts records below warning level to the given sections.
// An empty list enables every section
func SetSections(sections ...string) {
	mu.Lock()
	defer mu.Unlock()
	if len(sections) == 0 {
		enabledSections = slices.Clone(Sections)
		return
	}
	enabledSections = slices.Clone(sections)
}

func sectionEnabled(section string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return slices.ContainsFunc(enabledSections, func(enabled string) bool {
		return strings.HasPrefix(section, enabled)
	})
}

var _ slog.Handler = &filteringHandler{}

type filteringHandler struct {
	underlying slog.Handler
	sections   []string
}

func (f filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.underlying.Enabled(ctx, level)
}

func (f filteringHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return f.underlying.Handle(ctx, record)
	}
	wantSection := slices.ContainsFunc(f.sections, sectionEnabled)
	record.Attrs(func(attr slog.Attr) bool {
		wantSection = wantSection || attr.Key == "section" && sectionEnabled(attr.Value.String())
		// iterate as long as we have not found our section
		return !wantSection
	})
	if !wantSection {
		return nil
	}
	return f.underlying.Handle(ctx, record)
}

func (f filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sections := slices.Clone(f.sections)
	for _, attr := range attrs {
		if attr.Key == "section" {
			sections = append(sections, attr.Value.String())
		}
	}
	return &filteringHandler{
		underlying: f.underlying.WithAttrs(attrs),
		sections:   sections,
	}
}

func (f filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{
		underlying: f.underlying.WithGroup(name),
		sections:   f.sections,
	}
}
