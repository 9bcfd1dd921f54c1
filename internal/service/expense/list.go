package expense

import (
	"context"
	"fmt"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// List returns all expenses of the current user, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	expenses, err := s.expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	domain.SortExpensesDesc(expenses)
	return expenses, nil
}
