// Package dts turns the ambient declarations of a TypeScript declaration file into a builtins.Artifact
package dts

import (
	"fmt"
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/builtins"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/frontend/infer"
	"github.com/cottand/tsck/internal/log"
	"github.com/cottand/tsck/parser"
	"go/token"
)

var logger = log.DefaultLogger.With("section", "builtins.dts")

// Generate builds an Artifact out of the ambient declarations of a declaration file,
// such as `declare var NaN: number` or `declare function isNaN(n: number): boolean`.
//
// Other statements are ignored. Declarations whose type is not supported are reported and
// left out, and only the first declaration of each name is kept
func Generate(fset *token.FileSet, name string, src []byte) (*builtins.Artifact, *ilerr.Errors, error) {
	module, errs, err := parser.ParseFile(fset, name, src)
	if err != nil {
		return nil, nil, fmt.Errorf("generate builtins: %w", err)
	}
	artifact := &builtins.Artifact{Source: name}
	env := infer.NewEnv()
	seen := make(map[string]bool)

	add := func(name, kind string, ann ast.TypeAnn) error {
		if seen[name] {
			logger.Debug("skipping redeclaration", "name", name)
			return nil
		}
		t, annErr := env.TypeOfAnn(ann)
		if annErr != nil {
			errs = errs.With(annErr)
			return nil
		}
		node, err := builtins.EncodeType(t)
		if err != nil {
			return fmt.Errorf("generate builtins: global '%s': %w", name, err)
		}
		seen[name] = true
		artifact.Globals = append(artifact.Globals, builtins.Global{Name: name, Kind: kind, Type: node})
		return nil
	}

	for _, stmt := range module.Body {
		switch stmt := stmt.(type) {
		case *ast.VarDecl:
			if !stmt.Declare {
				continue
			}
			ann := stmt.TypeAnn
			if ann == nil {
				ann = &ast.KeywordAnn{Range: stmt.Range, Keyword: "any"}
			}
			err = add(stmt.Name, stmt.Kind.String(), ann)
		case *ast.FuncDecl:
			if stmt.Body != nil {
				continue
			}
			result := stmt.Result
			if result == nil {
				result = &ast.KeywordAnn{Range: stmt.Range, Keyword: "any"}
			}
			err = add(stmt.Name, "function", &ast.FuncAnn{Range: stmt.Range, Params: stmt.Params, Result: result})
		default:
			logger.Debug("skipping statement", "stmt", ast.Slog(stmt))
		}
		if err != nil {
			return nil, nil, err
		}
	}
	return artifact, errs, nil
}
