package log

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

func TestSectionFiltering(t *testing.T) {
	SetLevel(slog.LevelDebug)
	defer SetLevel(slog.LevelWarn)
	defer SetSections()

	buf := &bytes.Buffer{}
	logger := New(buf)

	SetSections("infer")
	logger.With("section", "infer").Debug("kept")
	logger.With("section", "parser").Debug("dropped")
	logger.Debug("inline section", "section", "infer")
	logger.With("section", "parser").Warn("warnings are always kept")

	out := buf.String()
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "section=infer")
	assert.Contains(t, out, "inline section")
	assert.Contains(t, out, "warnings are always kept")
	assert.NotContains(t, out, "dropped")
}

func TestLevel(t *testing.T) {
	defer SetLevel(slog.LevelWarn)
	buf := &bytes.Buffer{}
	logger := New(buf).With("section", "analyzer")

	SetLevel(slog.LevelError)
	logger.Warn("too quiet")
	assert.Empty(t, buf.String())

	SetLevel(slog.LevelInfo)
	logger.Info("loud enough")
	assert.Contains(t, buf.String(), "loud enough")
}
