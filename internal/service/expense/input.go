package expense

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// CreateInput holds the parameters for recording an expense.
type CreateInput struct {
	Description string
	Amount      decimal.Decimal
	Category    domain.Category
	Date        time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = appendDescriptionErrors(errs, i.Description)
	errs = appendAmountErrors(errs, i.Amount)
	errs = appendCategoryErrors(errs, i.Category)
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for changing an expense. Nil fields are left unchanged.
type UpdateInput struct {
	ID          uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Category    *domain.Category
	Date        *time.Time
}

// Validate checks the ID and every field that is set.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Description == nil && i.Amount == nil && i.Category == nil && i.Date == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Description != nil {
		errs = appendDescriptionErrors(errs, *i.Description)
	}
	if i.Amount != nil {
		errs = appendAmountErrors(errs, *i.Amount)
	}
	if i.Category != nil {
		errs = appendCategoryErrors(errs, *i.Category)
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Patch converts the input into a store patch with the description trimmed.
func (i UpdateInput) Patch() domain.ExpensePatch {
	patch := domain.ExpensePatch{
		Amount:   i.Amount,
		Category: i.Category,
		Date:     i.Date,
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		patch.Description = &d
	}
	return patch
}

func appendDescriptionErrors(errs []domain.FieldError, description string) []domain.FieldError {
	d := strings.TrimSpace(description)
	switch {
	case d == "":
		return append(errs, domain.FieldError{Field: "description", Message: "required"})
	case utf8.RuneCountInString(d) > domain.MaxDescriptionLength:
		return append(errs, domain.FieldError{Field: "description", Message: "max 200 characters"})
	}
	return errs
}

func appendAmountErrors(errs []domain.FieldError, amount decimal.Decimal) []domain.FieldError {
	switch {
	case !amount.IsPositive():
		return append(errs, domain.FieldError{Field: "amount", Message: "must be greater than zero"})
	case amount.GreaterThan(domain.MaxAmount):
		return append(errs, domain.FieldError{Field: "amount", Message: "too large"})
	case !amount.Equal(amount.Round(2)):
		return append(errs, domain.FieldError{Field: "amount", Message: "at most 2 decimal places"})
	}
	return errs
}

func appendCategoryErrors(errs []domain.FieldError, category domain.Category) []domain.FieldError {
	if !category.IsValid() {
		return append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	return errs
}
