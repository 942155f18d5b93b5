package service

import (
	"context"
	"errors"
	"fmt"

	"pharma-dashboard/internal/cache"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/pkg/logger"
	"pharma-dashboard/pkg/validator"
)

// ValidationError reports a payload that does not satisfy the entity schema.
type ValidationError struct {
	Message string
	Details []*validator.ErrorResponse
	Err     error
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	first := e.Details[0]
	return fmt.Sprintf("%s: field '%s' failed on tag '%s'", e.Message, first.FailedField, first.Tag)
}

func validateInput(entity string, input interface{}) error {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return &ValidationError{
			Message: fmt.Sprintf("Invalid %s data", entity),
			Details: errs,
		}
	}
	return nil
}

// checkDuplicate turns a uniqueness violation into a validation failure on
// field; other errors are wrapped with op.
func checkDuplicate(err error, entity, field, op string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return &ValidationError{
			Message: fmt.Sprintf("Invalid %s data", entity),
			Details: []*validator.ErrorResponse{{FailedField: field, Tag: "unique"}},
			Err:     err,
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// invalidateSummary drops the cached dashboard after a write. Cache errors are
// logged and never returned to the caller.
func invalidateSummary(ctx context.Context, c cache.DashboardSummaryCache, reason string) {
	if err := c.Invalidate(ctx); err != nil {
		logger.Log.Warn().Err(err).Str("reason", reason).Msg("failed to invalidate dashboard cache")
	}
}
