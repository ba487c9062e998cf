// Package analyzer walks modules and reports problems in them, most
// notably strict-equality comparisons that can never be true (or never be false).
package analyzer

import (
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/frontend/infer"
	"github.com/cottand/tsck/frontend/types"
	"github.com/cottand/tsck/internal/log"
)

var logger = log.DefaultLogger.With("section", "analyzer")

// ExprCheck inspects a single expression, after all its subexpressions were checked,
// and returns errs extended with whatever it found.
//
// Checks must not modify expr, and must not fail: problems are reported by adding to errs
type ExprCheck func(in infer.Inferer, expr ast.Expr, errs *ilerr.Errors) *ilerr.Errors

// Analyzer runs its checks over modules. It holds no state between calls to Check
type Analyzer struct {
	globals *infer.Env
	checks  []ExprCheck
}

// New returns an Analyzer which resolves free names in globals, and
// runs CheckStrictEquality followed by extra on every expression.
func New(globals *infer.Env, extra ...ExprCheck) *Analyzer {
	if globals == nil {
		globals = infer.NewEnv()
	}
	return &Analyzer{
		globals: globals,
		checks:  append([]ExprCheck{CheckStrictEquality}, extra...),
	}
}

// Check analyses module in a single depth-first walk and returns the errors
// found, in the order they were found.
//
// Every call uses a new accumulator, so checking the same module twice yields the same errors
func (a *Analyzer) Check(module *ast.Module) *ilerr.Errors {
	p := &pass{checks: a.checks, errs: &ilerr.Errors{}}
	if module != nil {
		logger.Debug("checking module", "name", module.Name, "stmts", len(module.Body))
		p.stmts(a.globals, module.Body)
	}
	return p.errs
}

// pass is the state of a single Check
type pass struct {
	checks []ExprCheck
	errs   *ilerr.Errors
}

// stmts visits a list of statements forming a block, and returns the scope at its end.
// Function declarations are hoisted: they are in scope for the whole block
func (p *pass) stmts(env *infer.Env, stmts []ast.Stmt) *infer.Env {
	for _, s := range stmts {
		if fn, ok := s.(*ast.FuncDecl); ok {
			env = env.Declare(fn.Name, p.signature(env, fn))
		}
	}
	for _, s := range stmts {
		env = p.stmt(env, s)
	}
	return env
}

func (p *pass) stmt(env *infer.Env, s ast.Stmt) *infer.Env {
	switch s := s.(type) {
	case *ast.ExprStmt:
		p.expr(env, s.X)
	case *ast.VarDecl:
		p.expr(env, s.Init)
		return env.Declare(s.Name, p.declaredType(env, s))
	case *ast.BlockStmt:
		p.stmts(env, s.Body)
	case *ast.IfStmt:
		p.expr(env, s.Test)
		p.branch(env, s.Cons)
		p.branch(env, s.Alt)
	case *ast.ReturnStmt:
		p.expr(env, s.Arg)
	case *ast.FuncDecl:
		if s.Body == nil {
			return env
		}
		// errors in parameter types were reported with the signature
		p.stmts(env.DeclareParams(s.Params), s.Body.Body)
	case *ast.BadStmt:
		logger.Debug("checking the contents of statement", "stmt", ast.Slog(s), "stmts", len(s.Body))
		env = declareIndeterminate(env, s.Declares)
		p.stmts(declareIndeterminate(env, s.Binds), s.Body)
	}
	return env
}

// declareIndeterminate binds names whose type the checker does not know
func declareIndeterminate(env *infer.Env, names []string) *infer.Env {
	for _, name := range names {
		env = env.Declare(name, types.Indeterminate)
	}
	return env
}

// branch visits a statement in its own scope, which is discarded afterward
func (p *pass) branch(env *infer.Env, s ast.Stmt) {
	if s != nil {
		p.stmts(env, []ast.Stmt{s})
	}
}

// expr runs every check on every expression of the tree rooted at e, children first.
// The statements in the bodies of functions and unsupported expressions are visited in their own scope
func (p *pass) expr(env *infer.Env, e ast.Expr) {
	if e == nil {
		return
	}
	switch e := e.(type) {
	case *ast.FuncExpr:
		inner := env.DeclareParams(e.Params)
		if e.Body != nil {
			p.stmts(inner, e.Body.Body)
		}
		p.expr(inner, e.Expr)
	case *ast.BadExpr:
		p.stmts(declareIndeterminate(env, e.Binds), e.Body)
	default:
		ast.Inspect(e, func(n ast.Node) bool {
			if n == ast.Node(e) {
				return true
			}
			if sub, ok := n.(ast.Expr); ok {
				p.expr(env, sub)
			}
			return false
		})
	}
	for _, check := range p.checks {
		p.errs = check(env, e, p.errs)
	}
}

// declaredType is the type a variable declaration binds its name to.
//
// The annotation wins over the initializer. Bindings other than const are widened,
// because they may later be assigned any value of the same primitive type.
// When the type cannot be determined, the error is reported and the binding is
// types.Indeterminate, so that later uses of the name are not reported again
func (p *pass) declaredType(env *infer.Env, decl *ast.VarDecl) types.Type {
	var t types.Type
	var err ilerr.IleError
	switch {
	case decl.TypeAnn != nil:
		t, err = env.TypeOfAnn(decl.TypeAnn)
	case decl.Init != nil:
		t, err = env.TypeOf(decl.Init)
		if err == nil && decl.Kind != ast.DeclConst {
			t = types.Widen(t)
		}
	default:
		t = types.Any
	}
	if err != nil {
		p.errs = p.errs.With(err)
		return types.At(types.Indeterminate, decl)
	}
	return t
}

// signature is the type a function declaration binds its name to.
// Results are not inferred from return statements, so an omitted result is indeterminate
func (p *pass) signature(env *infer.Env, fn *ast.FuncDecl) types.Type {
	sig, err := env.Signature(fn.Params, fn.Result)
	if err != nil {
		p.errs = p.errs.With(err)
		return types.At(types.Indeterminate, fn)
	}
	if fn.Result == nil && fn.Body != nil {
		sig.Result = types.Indeterminate
	}
	return types.At(sig, fn)
}
