// Package tsck loads TypeScript programs and checks them.
//
// A Program is the result of running every phase over a directory: its files are
// decoded, parsed, and analysed with the builtin globals in scope.
package tsck

import (
	"errors"
	"fmt"
	"github.com/cottand/tsck/frontend/analyzer"
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/builtins"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/frontend/infer"
	"github.com/cottand/tsck/internal/log"
	"github.com/cottand/tsck/parser"
	"go/token"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"io/fs"
	"path"
	"slices"
	"strings"
	"testing/fstest"
)

var programLogger = log.DefaultLogger.With("section", "program")

// ErrNoSources is returned when there are no files to check
var ErrNoSources = errors.New("no .ts files to check")

var _ ilerr.SourceProvider = (*Program)(nil)

// Program is a set of checked source files. Files are checked independently
// from each other, so declarations in one are not visible from another
type Program struct {
	modules []*ast.Module
	fSet    *token.FileSet
	errors  *ilerr.Errors
}

type LoadSettings struct {
	// Dir is the path of the folder in the filesystem where the program is located
	// the default is `.`
	Dir string
	// Files restricts the program to these files of Dir. By default, every .ts file of Dir is loaded
	Files []string
	// MetadataRootDir is prefixed to file names in positions, so that they resolve outside the fs.FS
	MetadataRootDir string
	// DisableBuiltins leaves globals such as NaN undeclared
	DisableBuiltins bool
	// Checks run on every expression after the strict equality check
	Checks []analyzer.ExprCheck
}

// LoadProgram reads, parses and checks the .ts files of fsys, in lexical order.
//
// Problems in the program itself are in Program.Errors. The error is only non-nil
// if the program could not be read, or the checker could not be set up
func LoadProgram(fsys fs.FS, settings LoadSettings) (*Program, error) {
	dir := settings.Dir
	if dir == "" {
		dir = "."
	}
	names, err := sourceFiles(fsys, dir, settings.Files)
	if err != nil {
		return nil, err
	}

	globals := infer.NewEnv()
	if !settings.DisableBuiltins {
		ns, err := builtins.Load()
		if err != nil {
			return nil, fmt.Errorf("load builtins: %w", err)
		}
		globals = ns.Env(globals)
	}
	checker := analyzer.New(globals, settings.Checks...)

	prog := &Program{fSet: token.NewFileSet()}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		src, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}

		// parse phase
		displayName := path.Join(settings.MetadataRootDir, dir, name)
		module, syntaxErrs, err := parser.ParseFile(prog.fSet, displayName, src)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		prog.errors = prog.errors.Merge(syntaxErrs)

		// analysis phase
		prog.errors = prog.errors.Merge(checker.Check(module))
		prog.modules = append(prog.modules, module)
		programLogger.Debug("checked file", "file", displayName, "errors", prog.errors.Len())
	}
	return prog, nil
}

func sourceFiles(fsys fs.FS, dir string, only []string) ([]string, error) {
	if len(only) > 0 {
		names := slices.Clone(only)
		slices.Sort(names)
		return slices.Compact(names), nil
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".ts") {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoSources)
	}
	// fs.ReadDir already sorts by name
	return names, nil
}

// decode returns the UTF-8 contents of a source file, which may be
// UTF-8 or UTF-16 with a byte order mark. The mark is removed
func decode(data []byte) ([]byte, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	return decoded, err
}

func (p *Program) Errors() *ilerr.Errors {
	return p.errors
}

func (p *Program) FileSet() *token.FileSet {
	return p.fSet
}

func (p *Program) Modules() []*ast.Module {
	return p.modules
}

// NewProgramFromBytes does all passes end-to-end for a single file, meant for testing
func NewProgramFromBytes(data []byte, filename string) (*Program, *ilerr.Errors, error) {
	filesystem := fstest.MapFS{
		filename: &fstest.MapFile{
			Data: data,
		},
	}
	prog, err := LoadProgram(filesystem, LoadSettings{})
	if err != nil {
		return nil, nil, err
	}
	return prog, prog.errors, nil
}
