package report

import (
	"time"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// Build filters expenses to period and assembles the report document.
// Returns domain.ErrNoData when no expense falls in the period.
func Build(expenses []domain.Expense, period domain.Period, generatedAt time.Time) (*domain.Report, error) {
	rows, err := FilterByPeriod(expenses, period)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}

	return &domain.Report{
		Title:       period.Title,
		Description: period.Description,
		Rows:        rows,
		Total:       TotalOf(rows),
		GeneratedAt: generatedAt,
	}, nil
}
