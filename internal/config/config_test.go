package config_test

import (
	"github.com/cottand/tsck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
log_level: debug
log_sections: [analyzer, infer]
debug_stacks: true
disable_builtins: true
`))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		LogLevel:        "debug",
		LogSections:     []string{"analyzer", "infer"},
		DebugStacks:     true,
		DisableBuiltins: true,
	}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestDecodeDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "colour: true",
		"bad level":    "log_level: loud",
		"wrong type":   "debug_stacks: [1]",
		"invalid yaml": "log_level: [",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.LoadOptional(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\n"), 0o600))
	cfg, err = config.LoadOptional(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
