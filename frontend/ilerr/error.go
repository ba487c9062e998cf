package ilerr

import (
	"fmt"
	"log/slog"
)

// Errors is the diagnostic accumulator of an analysis pass.
//
// It is append-only: errors keep the order in which they were detected, and
// are never replaced or removed. A nil *Errors is a valid empty accumulator
type Errors struct {
	errs []IleError
}

// With appends err and returns the accumulator, allocating it if r is nil
func (r *Errors) With(err ...IleError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil {
		return r
	}
	if len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []IleError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

func (r *Errors) Len() int {
	if r == nil {
		return 0
	}
	return len(r.errs)
}

// OfCode returns the errors with the given code, in order
func (r *Errors) OfCode(code ErrCode) []IleError {
	var found []IleError
	for _, e := range r.Errors() {
		if e.Code() == code {
			found = append(found, e)
		}
	}
	return found
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
