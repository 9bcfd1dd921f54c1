// Package expense implements the Expense repository using PostgreSQL.
// Fixed queries are raw SQL; the partial update is built with squirrel.
package expense

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/expense-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// Repo provides expense persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new expense repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const expenseColumns = `id, user_id, description, amount, category, date, created_at, updated_at`

const createSQL = `
INSERT INTO expenses (user_id, description, amount, category, date)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + expenseColumns

const getByIDSQL = `
SELECT ` + expenseColumns + `
FROM expenses
WHERE id = $1 AND user_id = $2`

const listByUserSQL = `
SELECT ` + expenseColumns + `
FROM expenses
WHERE user_id = $1
ORDER BY date DESC, created_at DESC`

const deleteSQL = `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

const deleteAllByUserSQL = `DELETE FROM expenses WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an expense owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Expense, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanExpense(querier.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "expense", id)
	}

	return e, nil
}

// ListByUser returns all of the user's expenses, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Expense, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "expense", uuid.Nil)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "expense", uuid.Nil)
	}

	return expenses, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new expense. The id and timestamps are assigned by the database.
func (r *Repo) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, e.UserID, e.Description, e.Amount, string(e.Category), e.Date)

	created, err := scanExpense(row)
	if err != nil {
		return nil, postgres.MapError(err, "expense", uuid.Nil)
	}

	return created, nil
}

// Update applies the non-nil fields of patch to the expense owned by userID
// and returns the updated row.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch domain.ExpensePatch) (*domain.Expense, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, userID, id)
	}

	q := r.sb.Update("expenses").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + expenseColumns)

	if patch.Description != nil {
		q = q.Set("description", *patch.Description)
	}
	if patch.Amount != nil {
		q = q.Set("amount", *patch.Amount)
	}
	if patch.Category != nil {
		q = q.Set("category", string(*patch.Category))
	}
	if patch.Date != nil {
		q = q.Set("date", *patch.Date)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update expense: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanExpense(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "expense", id)
	}

	return e, nil
}

// Delete removes an expense owned by userID.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "expense", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteAllByUser removes every expense of the user in a single statement
// and returns how many rows were deleted.
func (r *Repo) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteAllByUserSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "expense", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		e        domain.Expense
		category string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &category, &e.Date, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Category = domain.Category(category)
	// pgx decodes timestamptz in the host zone; dates are UTC calendar days.
	e.Date = e.Date.UTC()
	return &e, nil
}
