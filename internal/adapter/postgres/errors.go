package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// constraintFields names the input field behind each CHECK constraint in
// migrations/, so a check violation surfaces as a field-level ValidationError.
var constraintFields = map[string]domain.FieldError{
	"expenses_amount_positive": {Field: "amount", Message: "must be greater than zero"},
	"expenses_description_len": {Field: "description", Message: "must be between 1 and 200 characters"},
	"expenses_category_check":  {Field: "category", Message: "unknown category"},
	"users_email_lower":        {Field: "email", Message: "must be lower-case"},
}

// MapError converts pgx/pgconn errors to domain errors. Repositories call it
// with the entity name and the id involved (uuid.Nil when the lookup is by
// another key).
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			if fe, ok := constraintFields[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s %s: %w", entity, id, domain.NewValidationError(fe.Field, fe.Message))
			}
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
