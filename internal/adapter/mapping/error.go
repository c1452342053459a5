package mapping

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// ToConnectError maps domain sentinels onto connect codes. Errors that already carry a code pass through.
func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	return connect.NewError(codeOf(err), err)
}

func codeOf(err error) connect.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	case errors.Is(err, entity.ErrNotAuthenticated):
		return connect.CodeUnauthenticated
	case errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrDictionaryNotFound),
		errors.Is(err, entity.ErrGrammarNotFound),
		errors.Is(err, entity.ErrRoadmapNotFound),
		errors.Is(err, entity.ErrStepNotFound):
		return connect.CodeNotFound
	case errors.Is(err, entity.ErrUserAlreadyExists),
		errors.Is(err, entity.ErrAlreadyEnrolled),
		errors.Is(err, entity.ErrDuplicateID):
		return connect.CodeAlreadyExists
	case errors.Is(err, entity.ErrNotEnrolled),
		errors.Is(err, entity.ErrStepAlreadyCompleted):
		return connect.CodeFailedPrecondition
	case errors.Is(err, entity.ErrInvalidUserName),
		errors.Is(err, entity.ErrInvalidUserEmail),
		errors.Is(err, entity.ErrInvalidName),
		errors.Is(err, entity.ErrInvalidTerm),
		errors.Is(err, entity.ErrInvalidRuleTitle),
		errors.Is(err, entity.ErrInvalidLevel),
		errors.Is(err, entity.ErrInvalidStepType),
		errors.Is(err, entity.ErrInvalidStepTitle),
		errors.Is(err, entity.ErrEmptyRoadmap),
		errors.Is(err, entity.ErrInvalidStepOrder),
		errors.Is(err, entity.ErrInvalidViewMode),
		errors.Is(err, entity.ErrInvalidID),
		errors.Is(err, entity.ErrInvalidQuery):
		return connect.CodeInvalidArgument
	default:
		return connect.CodeInternal
	}
}
