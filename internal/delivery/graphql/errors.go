package graphql

import (
	"context"
	"errors"
	"inventory_dashboard/internal/domain"
)

const (
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeCancelled         = "CANCELLED"
	CodeInternal          = "INTERNAL"
)

// gqlError surfaces the failure kind under extensions.code.
type gqlError struct {
	err  error
	code string
}

func (e *gqlError) Error() string { return e.err.Error() }
func (e *gqlError) Unwrap() error { return e.err }

func (e *gqlError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	code := CodeInternal
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = CodeNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		code = CodeInsufficientStock
	case errors.Is(err, domain.ErrInvalidInput):
		code = CodeInvalidInput
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = CodeCancelled
	}
	return &gqlError{err: err, code: code}
}
