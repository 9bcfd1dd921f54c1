package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// RecentLimit is the number of latest expenses shown in a summary.
const RecentLimit = 10

type expenseLister interface {
	List(ctx context.Context) ([]domain.Expense, error)
}

type renderer interface {
	Render(report *domain.Report) ([]byte, error)
	ContentType() string
}

// Service computes summaries and exports for the authenticated user.
type Service struct {
	expenses expenseLister
	renderer renderer
	loc      *time.Location
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a report service. Periods are resolved in loc.
func NewService(log *slog.Logger, expenses expenseLister, renderer renderer, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		expenses: expenses,
		renderer: renderer,
		loc:      loc,
		now:      time.Now,
		log:      log.With("service", "report"),
	}
}

// Summary is the dashboard view of a user's spending.
type Summary struct {
	Total       decimal.Decimal
	Count       int
	TopCategory domain.Category
	Breakdown   []CategoryTotal
	Recent      []domain.Expense
}

// ExportInput selects the report period. Start and End apply to PeriodCustom only.
type ExportInput struct {
	Period domain.PeriodPreset
	Start  *time.Time
	End    *time.Time
}

// Export is a rendered report ready for download.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Summary aggregates all expenses of the current user.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.Summary: %w", err)
	}

	domain.SortExpensesDesc(expenses)
	recent := expenses
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	return &Summary{
		Total:       TotalOf(expenses),
		Count:       len(expenses),
		TopCategory: TopCategory(expenses),
		Breakdown:   Breakdown(expenses),
		Recent:      recent,
	}, nil
}

// Export renders the current user's expenses for the requested period.
// Returns domain.ErrNoData when the period holds no expenses.
func (s *Service) Export(ctx context.Context, input ExportInput) (*Export, error) {
	if !input.Period.IsValid() {
		return nil, domain.NewValidationError("period", "unknown period")
	}

	now := s.now().In(s.loc)
	period, err := ResolvePeriod(input.Period, now, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.Export: %w", err)
	}

	report, err := Build(expenses, period, now)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(report)
	if err != nil {
		return nil, fmt.Errorf("report.Export render: %w", err)
	}

	s.log.InfoContext(ctx, "report exported",
		slog.String("period", period.Preset.String()),
		slog.Int("rows", len(report.Rows)),
		slog.Int("bytes", len(data)),
	)

	return &Export{
		Filename:    report.Filename(),
		ContentType: s.renderer.ContentType(),
		Data:        data,
	}, nil
}
