package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// Create records a new expense for the current user. The ID is assigned by the store.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.expenses.Create(ctx, &domain.Expense{
		UserID:      userID,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	s.log.InfoContext(ctx, "expense created",
		slog.String("user_id", userID.String()),
		slog.String("expense_id", created.ID.String()),
		slog.String("category", created.Category.String()),
	)

	s.publish(ctx, domain.NewEvent(domain.EventExpenseCreated, userID, &created.ID))

	return created, nil
}
