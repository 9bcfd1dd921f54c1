package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// Delete removes an expense owned by the current user.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.expenses.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	s.log.InfoContext(ctx, "expense deleted",
		slog.String("user_id", userID.String()),
		slog.String("expense_id", id.String()),
	)

	s.publish(ctx, domain.NewEvent(domain.EventExpenseDeleted, userID, &id))

	return nil
}

// DeleteAll removes every expense of the current user in one transaction.
// Either all rows go or none do.
func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	var deletedCount int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deletedCount, err = s.expenses.DeleteAllByUser(txCtx, userID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete all expenses: %w", err)
	}

	s.log.InfoContext(ctx, "all expenses deleted",
		slog.String("user_id", userID.String()),
		slog.Int("deleted_count", deletedCount),
	)

	s.publish(ctx, domain.NewEvent(domain.EventExpensePurged, userID, nil))

	return deletedCount, nil
}
