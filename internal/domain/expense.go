package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxDescriptionLength is the longest description accepted, in runes.
	MaxDescriptionLength = 200
)

// MaxAmount is the largest amount a single expense may carry (NUMERIC(12,2)).
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Expense is a single spending record owned by a user.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    Category
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpensePatch holds the mutable fields of an expense. Nil fields are left unchanged.
type ExpensePatch struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *Category
	Date        *time.Time
}

// IsEmpty returns true if the patch changes nothing.
func (p ExpensePatch) IsEmpty() bool {
	return p.Description == nil && p.Amount == nil && p.Category == nil && p.Date == nil
}

// Apply merges the non-nil fields of p into e.
func (e *Expense) Apply(p ExpensePatch) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
}

// SortExpensesDesc orders expenses newest first. The sort is stable, so
// expenses sharing a date keep their relative order.
func SortExpensesDesc(expenses []Expense) {
	slices.SortStableFunc(expenses, func(a, b Expense) int {
		return b.Date.Compare(a.Date)
	})
}

// SortExpensesAsc orders expenses oldest first. The sort is stable.
func SortExpensesAsc(expenses []Expense) {
	slices.SortStableFunc(expenses, func(a, b Expense) int {
		return a.Date.Compare(b.Date)
	})
}
