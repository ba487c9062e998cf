// Package infer assigns types to expressions.
//
// It is intentionally shallow: it knows literals, declared bindings and a handful of
// operators, and reports any other expression as ilerr.UnsupportedExpr rather
// than guessing its type.
package infer

import (
	"github.com/benbjohnson/immutable"
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/frontend/types"
	"github.com/cottand/tsck/internal/log"
	"slices"
)

var logger = log.DefaultLogger.With("section", "infer")

// Inferer determines the static type of an expression, or why it cannot.
//
// Implementations must not modify expr, and must be safe to call repeatedly on the same tree
type Inferer interface {
	TypeOf(expr ast.Expr) (types.Type, ilerr.IleError)
}

var _ Inferer = (*Env)(nil)

// Env is a lexical scope: the types of the names visible at some point of a program.
//
// Env is persistent. Declare returns a new Env and leaves the receiver untouched, so
// an Env can be shared freely, and leaving a block is simply going back to the outer Env.
// A nil *Env is a valid empty scope
type Env struct {
	vars *immutable.Map[string, types.Type]
}

func NewEnv() *Env {
	return &Env{vars: immutable.NewMap[string, types.Type](nil)}
}

// Declare binds name to t in a new Env, shadowing any previous binding of name
func (e *Env) Declare(name string, t types.Type) *Env {
	if e == nil {
		e = NewEnv()
	}
	logger.Debug("declare", "name", name, "type", types.Slog(t))
	return &Env{vars: e.vars.Set(name, t)}
}

func (e *Env) Lookup(name string) (types.Type, bool) {
	if e == nil {
		return nil, false
	}
	return e.vars.Get(name)
}

func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return e.vars.Len()
}

// Names returns the names bound in e, sorted
func (e *Env) Names() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, e.vars.Len())
	itr := e.vars.Iterator()
	for !itr.Done() {
		name, _, _ := itr.Next()
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DeclareParams binds the parameters of a function in a new Env, the way its body sees them.
//
// Optional parameters may also be undefined. The names of a destructuring pattern, and
// parameters whose annotation is not supported, are types.Indeterminate
func (e *Env) DeclareParams(params []ast.Param) *Env {
	inner := e
	for _, param := range params {
		if len(param.Bound) > 0 {
			for _, name := range param.Bound {
				inner = inner.Declare(name, types.At(types.Indeterminate, param))
			}
			continue
		}
		t, err := e.TypeOfAnn(param.TypeAnn)
		if err != nil {
			t = types.Indeterminate
		}
		if param.Optional {
			t = types.NewUnion(t, types.Undefined)
		}
		inner = inner.Declare(param.Name, types.At(t, param))
	}
	return inner
}
