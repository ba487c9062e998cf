// Package config reads the optional tsck.yaml configuration file
package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"log/slog"
	"os"
	"strings"
)

// FileName is the configuration file looked up in the checked directory when none is given
const FileName = "tsck.yaml"

type Config struct {
	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level"`
	// LogSections restricts debug and info logs to these sections. Empty means all
	LogSections []string `yaml:"log_sections"`
	// DebugStacks records where each diagnostic was raised, see ilerr.EnableDebugStacks
	DebugStacks bool `yaml:"debug_stacks"`
	// DisableBuiltins leaves globals such as NaN or parseInt undeclared
	DisableBuiltins bool `yaml:"disable_builtins"`
}

func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Load reads the configuration at path. Keys not set in the file keep their default
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is like Load, but returns the default configuration if there is no file at path
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level is the slog.Level named by LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	return level, nil
}
