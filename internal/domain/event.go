package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a domain event published after a successful mutation.
type EventType string

const (
	EventExpenseCreated EventType = "expense.created"
	EventExpenseUpdated EventType = "expense.updated"
	EventExpenseDeleted EventType = "expense.deleted"
	EventExpensePurged  EventType = "expense.purged"
	EventUserDeleted    EventType = "user.deleted"
)

func (t EventType) String() string { return string(t) }

// Event is a notification that something changed for a user.
// ExpenseID is nil for user-level events and bulk deletes.
type Event struct {
	ID         uuid.UUID
	Type       EventType
	UserID     uuid.UUID
	ExpenseID  *uuid.UUID
	OccurredAt time.Time
}

// NewEvent creates an event stamped with a fresh ID and the current time.
func NewEvent(t EventType, userID uuid.UUID, expenseID *uuid.UUID) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		UserID:     userID,
		ExpenseID:  expenseID,
		OccurredAt: time.Now().UTC(),
	}
}
