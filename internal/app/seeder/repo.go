package seeder

import (
	"context"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/internal/service/auth"
	"github.com/heartmarshall/expense-tracker/internal/service/expense"
)

// AccountService creates or signs in the demo account.
type AccountService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

// ExpenseService stores expenses for the user carried in ctx.
type ExpenseService interface {
	Create(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	DeleteAll(ctx context.Context) (int, error)
}
