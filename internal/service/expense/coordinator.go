package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/internal/session"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// store is the expense store the coordinator mirrors. *Service satisfies it.
type store interface {
	Create(ctx context.Context, input CreateInput) (*domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	Update(ctx context.Context, input UpdateInput) (*domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int, error)
}

var _ store = (*Service)(nil)

// Coordinator keeps a local list of the signed-in user's expenses in step
// with the store. The list is always sorted newest first. A failed store
// call leaves the list unchanged.
type Coordinator struct {
	store store
	log   *slog.Logger

	mu       sync.Mutex
	expenses []domain.Expense
	// gen counts local changes. Reload drops a snapshot taken before one.
	gen uint64
}

const maxReloadAttempts = 3

var errReloadStale = errors.New("local list changed during every reload attempt")

// NewCoordinator creates a coordinator with an empty local list.
func NewCoordinator(log *slog.Logger, store store) *Coordinator {
	return &Coordinator{
		store: store,
		log:   log.With("component", "expense_coordinator"),
	}
}

// Expenses returns a copy of the local list.
func (c *Coordinator) Expenses() []domain.Expense {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.expenses)
}

// Create validates input, stores the expense and adds the stored record locally.
func (c *Coordinator) Create(ctx context.Context, input CreateInput) (*domain.Expense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := c.store.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("coordinator create: %w", err)
	}

	c.mu.Lock()
	c.expenses = append(c.expenses, *created)
	domain.SortExpensesDesc(c.expenses)
	c.gen++
	c.mu.Unlock()

	return created, nil
}

// Update validates the changed fields, applies them in the store and merges
// them into the local record.
func (c *Coordinator) Update(ctx context.Context, input UpdateInput) (*domain.Expense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := c.store.Update(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("coordinator update: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(input.ID); i >= 0 {
		c.expenses[i].Apply(input.Patch())
		c.expenses[i].UpdatedAt = updated.UpdatedAt
	} else {
		c.expenses = append(c.expenses, *updated)
	}
	domain.SortExpensesDesc(c.expenses)
	c.gen++

	return updated, nil
}

// Delete removes the expense from the store, then locally.
func (c *Coordinator) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("coordinator delete: %w", err)
	}

	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		c.expenses = slices.Delete(c.expenses, i, i+1)
	}
	c.gen++
	c.mu.Unlock()

	return nil
}

// DeleteAll removes every expense of the user in one atomic store call.
// The local list is emptied only when the store call succeeds.
func (c *Coordinator) DeleteAll(ctx context.Context) (int, error) {
	n, err := c.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("coordinator delete all: %w", err)
	}

	c.mu.Lock()
	c.expenses = nil
	c.gen++
	c.mu.Unlock()

	return n, nil
}

// Reload replaces the local list with the store contents. A snapshot that
// overlaps a local change is discarded and listed again.
func (c *Coordinator) Reload(ctx context.Context) error {
	for range maxReloadAttempts {
		c.mu.Lock()
		gen := c.gen
		c.mu.Unlock()

		expenses, err := c.store.List(ctx)
		if err != nil {
			return fmt.Errorf("coordinator reload: %w", err)
		}
		domain.SortExpensesDesc(expenses)

		c.mu.Lock()
		if c.gen == gen {
			c.expenses = expenses
			c.gen++
			c.mu.Unlock()
			return nil
		}
		c.mu.Unlock()
	}

	return fmt.Errorf("coordinator reload: %w", errReloadStale)
}

// Watch follows session changes until ctx is done or events is closed:
// a sign-in reloads the list for that user, a sign-out clears it.
func (c *Coordinator) Watch(ctx context.Context, events <-chan session.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handle(ctx, ev)
		}
	}
}

func (c *Coordinator) handle(ctx context.Context, ev session.Event) {
	if ev.State != session.Authenticated || ev.User == nil {
		c.mu.Lock()
		c.expenses = nil
		c.gen++
		c.mu.Unlock()
		return
	}

	userCtx := ctxutil.WithUserID(ctx, ev.User.ID)
	if err := c.Reload(userCtx); err != nil {
		c.log.WarnContext(ctx, "reload after sign-in failed",
			slog.String("user_id", ev.User.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// indexOf must be called with mu held.
func (c *Coordinator) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(c.expenses, func(e domain.Expense) bool { return e.ID == id })
}
