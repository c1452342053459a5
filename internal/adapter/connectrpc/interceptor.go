package connectrpc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/eslsoft/lexiroad/internal/adapter/mapping"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewValidationInterceptor rejects requests whose message fails its validate tags.
func NewValidationInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if msg := req.Any(); msg != nil {
				if err := validate.Struct(msg); err != nil {
					return nil, connect.NewError(connect.CodeInvalidArgument, describeValidation(err))
				}
			}
			return next(ctx, req)
		}
	}
}

// NewErrorInterceptor translates domain errors returned by handlers into connect codes.
func NewErrorInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			resp, err := next(ctx, req)
			if err != nil {
				return nil, mapping.ToConnectError(err)
			}
			return resp, nil
		}
	}
}

func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid request: %s", strings.Join(parts, "; "))
}
