package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts an enabled user with a unique email and a placeholder hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedExpense inserts an expense owned by userID.
func SeedExpense(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, amount string, category domain.Category, date time.Time) domain.Expense {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Description: "seed " + uniqueSuffix(),
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        date.UTC().Truncate(time.Microsecond),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO expenses (id, user_id, description, amount, category, date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.UserID, e.Description, e.Amount, string(e.Category), e.Date, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExpense: %v", err)
	}

	return e
}

// CountExpenses returns how many expenses userID owns.
func CountExpenses(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM expenses WHERE user_id = $1`, userID,
	).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountExpenses: %v", err)
	}
	return n
}
