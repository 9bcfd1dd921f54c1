// Package report aggregates expenses into totals and category breakdowns
// and builds period-filtered reports for export.
package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category domain.Category
	Total    decimal.Decimal
}

// TotalOf returns the sum of all amounts. An empty list sums to zero.
func TotalOf(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotals sums amounts per category. Categories without expenses are absent.
func CategoryTotals(expenses []domain.Expense) map[domain.Category]decimal.Decimal {
	totals := make(map[domain.Category]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// TopCategory returns the category with the largest total, or CategoryNone
// for an empty list. On a tie the category seen first in expenses wins.
func TopCategory(expenses []domain.Expense) domain.Category {
	totals := CategoryTotals(expenses)

	top := domain.CategoryNone
	var best decimal.Decimal
	seen := make(map[domain.Category]bool, len(totals))
	for _, e := range expenses {
		if seen[e.Category] {
			continue
		}
		seen[e.Category] = true

		if t := totals[e.Category]; top == domain.CategoryNone || t.GreaterThan(best) {
			top, best = e.Category, t
		}
	}
	return top
}

// Breakdown returns the category totals ordered by category name.
func Breakdown(expenses []domain.Expense) []CategoryTotal {
	totals := CategoryTotals(expenses)

	out := make([]CategoryTotal, 0, len(totals))
	for c, t := range totals {
		out = append(out, CategoryTotal{Category: c, Total: t})
	}
	slices.SortFunc(out, func(a, b CategoryTotal) int {
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// FilterByPeriod returns the expenses dated within period, bounds included,
// as a new slice sorted oldest first. Expenses on the same date keep their
// input order. An inverted period is a validation error.
func FilterByPeriod(expenses []domain.Expense, period domain.Period) ([]domain.Expense, error) {
	if period.End.Before(period.Start) {
		return nil, domain.NewValidationError("end", "end date must not be before start date")
	}

	// Expense dates are calendar days stored at UTC midnight, so the bounds
	// are compared by wall clock rather than by instant.
	window := domain.Period{Start: wallClockUTC(period.Start), End: wallClockUTC(period.End)}

	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if window.Contains(e.Date) {
			out = append(out, e)
		}
	}
	domain.SortExpensesAsc(out)
	return out, nil
}

func wallClockUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
