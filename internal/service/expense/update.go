package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// Update changes the given fields of an expense owned by the current user.
// An expense of another user is reported as ErrNotFound.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.expenses.Update(ctx, userID, input.ID, input.Patch())
	if err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	s.log.InfoContext(ctx, "expense updated",
		slog.String("user_id", userID.String()),
		slog.String("expense_id", updated.ID.String()),
	)

	s.publish(ctx, domain.NewEvent(domain.EventExpenseUpdated, userID, &updated.ID))

	return updated, nil
}
