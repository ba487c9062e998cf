package analyzer

import (
	"github.com/cottand/tsck/frontend/ast"
	"github.com/cottand/tsck/frontend/ilerr"
	"github.com/cottand/tsck/frontend/infer"
	"github.com/cottand/tsck/frontend/types"
)

// CheckStrictEquality reports === and !== comparisons which always have the same result,
// because the types of their operands have no overlap.
//
// Both operands are inferred even when one of them fails. Inference failures are
// added to errs first, and a comparison with an operand of unknown type is never reported.
// Neither is one whose operand is types.Indeterminate, because its failure was reported already
func CheckStrictEquality(in infer.Inferer, expr ast.Expr, errs *ilerr.Errors) *ilerr.Errors {
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok || !bin.Operator.IsStrictEquality() {
		return errs
	}

	left, leftErr := in.TypeOf(bin.Left)
	if leftErr != nil {
		errs = errs.With(leftErr)
	}
	right, rightErr := in.TypeOf(bin.Right)
	if rightErr != nil {
		errs = errs.With(rightErr)
	}
	if leftErr != nil || rightErr != nil {
		return errs
	}

	if types.IsIndeterminate(left) || types.IsIndeterminate(right) {
		return errs
	}
	if HasOverlap(left, right) {
		return errs
	}
	logger.Debug("no overlap",
		"expr", ast.Slog(bin),
		"left", types.Slog(left),
		"right", types.Slog(right),
	)
	return errs.With(ilerr.New(ilerr.NewNoOverlap{
		Range:     bin.Range,
		Value:     bin.Operator != ast.BinStrictEq,
		Left:      left.Span().OrElse(bin.Left),
		Right:     right.Span().OrElse(bin.Right),
		LeftType:  left,
		RightType: right,
	}))
}
