// Package expense manages a user's expenses: the owner-scoped store
// operations and a local mirror that stays sorted for display.
package expense

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

type expenseRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Expense, error)
	Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.ExpensePatch) (*domain.Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Service provides expense operations for the authenticated user.
type Service struct {
	expenses  expenseRepo
	tx        txManager
	publisher eventPublisher
	log       *slog.Logger
}

// NewService creates a new expense service. publisher may be nil.
func NewService(
	log *slog.Logger,
	expenses expenseRepo,
	tx txManager,
	publisher eventPublisher,
) *Service {
	return &Service{
		expenses:  expenses,
		tx:        tx,
		publisher: publisher,
		log:       log.With("service", "expense"),
	}
}

func (s *Service) publish(ctx context.Context, e domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "event publish failed",
			slog.String("type", e.Type.String()),
			slog.String("user_id", e.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}
