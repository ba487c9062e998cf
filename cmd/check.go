package cmd

import (
	"fmt"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/internal/config"
	"github.com/cottand/tsck/internal/log"
	"github.com/cottand/tsck/tsck"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"path/filepath"
)

var CheckCmd = &cobra.Command{
	Use:          "check ./folder|file.ts",
	Short:        "Report comparisons whose result is known statically",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	logLevel        *int
	configPath      *string
	dumpAST         *bool
	disableBuiltins *bool
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func init() {
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelWarn), "log level")
	configPath = CheckCmd.Flags().StringP("config", "c", "", "configuration file (default <folder>/"+config.FileName+")")
	dumpAST = CheckCmd.Flags().Bool("dump-ast", false, "print the syntax tree of every file")
	disableBuiltins = CheckCmd.Flags().Bool("disable-builtins", false, "do not declare globals such as NaN")
}

// ErrProblemsFound is returned by check when the program has diagnostics
type ErrProblemsFound struct {
	Count int
}

func (e ErrProblemsFound) Error() string {
	if e.Count == 1 {
		return "found 1 problem"
	}
	return fmt.Sprintf("found %d problems", e.Count)
}

func runCheck(cmd *cobra.Command, args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("could not get absolute path of target: %w", err)
	}

	stat, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("could not stat target: %w", err)
	}

	var rootDir string
	var files []string
	if stat.IsDir() {
		rootDir = target
	} else {
		rootDir = filepath.Dir(target)
		files = []string{filepath.Base(target)}
	}

	cfg, err := loadConfig(cmd, rootDir)
	if err != nil {
		return err
	}

	prog, err := tsck.LoadProgram(os.DirFS(rootDir), tsck.LoadSettings{
		Files:           files,
		MetadataRootDir: displayRoot(rootDir),
		DisableBuiltins: cfg.DisableBuiltins,
	})
	if err != nil {
		return fmt.Errorf("could not load program (this is a bug and not a type error): %w", err)
	}

	if *dumpAST {
		for _, module := range prog.Modules() {
			dumpConfig.Fdump(cmd.OutOrStdout(), module)
		}
	}

	for _, e := range prog.Errors().Errors() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), ilerr.FormatWithCodeAndSource(e, prog))
	}
	if prog.Errors().HasError() {
		return ErrProblemsFound{Count: prog.Errors().Len()}
	}
	return nil
}

// loadConfig reads the configuration file, applies the flags set on top of it,
// and sets up logging and debug stacks accordingly
func loadConfig(cmd *cobra.Command, rootDir string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadOptional(filepath.Join(rootDir, config.FileName))
	}
	if err != nil {
		return nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		level = slog.Level(*logLevel)
	}
	if cmd.Flags().Changed("disable-builtins") {
		cfg.DisableBuiltins = *disableBuiltins
	}

	log.SetLevel(level)
	log.SetSections(cfg.LogSections...)
	ilerr.EnableDebugStacks = cfg.DebugStacks
	return cfg, nil
}

// displayRoot is how rootDir is shown in positions: relative to the working directory when possible
func displayRoot(rootDir string) string {
	wd, err := os.Getwd()
	if err != nil {
		return filepath.ToSlash(rootDir)
	}
	rel, err := filepath.Rel(wd, rootDir)
	if err != nil {
		return filepath.ToSlash(rootDir)
	}
	return filepath.ToSlash(rel)
}
