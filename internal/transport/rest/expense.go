package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/internal/service/expense"
)

// dateLayout is the wire format of expense dates and report bounds.
const dateLayout = "2006-01-02"

type expenseService interface {
	Create(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	Update(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int, error)
}

// ExpenseHandler serves the expense CRUD endpoints.
type ExpenseHandler struct {
	svc expenseService
	log *slog.Logger
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(svc expenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{svc: svc, log: logger.With("handler", "expense")}
}

type createExpenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

type updateExpenseRequest struct {
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
}

type expenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List handles GET /api/expenses.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]expenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, toExpenseResponse(&expenses[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": out, "count": len(out)})
}

// Create handles POST /api/expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(created))
}

// Update handles PATCH /api/expenses/{id}.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req updateExpenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input, err := req.toInput(id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponse(updated))
}

// Delete handles DELETE /api/expenses/{id}.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/expenses.
func (h *ExpenseHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}

func (req createExpenseRequest) toInput() (expense.CreateInput, error) {
	var errs []domain.FieldError

	amount, _ := parseAmountField(req.Amount, &errs)
	date := parseDateField(req.Date, &errs)

	if len(errs) > 0 {
		return expense.CreateInput{}, domain.NewValidationErrors(errs)
	}
	return expense.CreateInput{
		Description: req.Description,
		Amount:      amount,
		Category:    parseCategory(req.Category),
		Date:        date,
	}, nil
}

func (req updateExpenseRequest) toInput(id uuid.UUID) (expense.UpdateInput, error) {
	input := expense.UpdateInput{ID: id, Description: req.Description}
	var errs []domain.FieldError

	if req.Amount != nil {
		if amount, ok := parseAmountField(*req.Amount, &errs); ok {
			input.Amount = &amount
		}
	}
	if req.Category != nil {
		category := parseCategory(*req.Category)
		input.Category = &category
	}
	if req.Date != nil {
		date := parseDateField(*req.Date, &errs)
		input.Date = &date
	}

	if len(errs) > 0 {
		return expense.UpdateInput{}, domain.NewValidationErrors(errs)
	}
	return input, nil
}

func parseAmountField(s string, errs *[]domain.FieldError) (decimal.Decimal, bool) {
	if s == "" {
		*errs = append(*errs, domain.FieldError{Field: "amount", Message: "required"})
		return decimal.Zero, false
	}
	amount, err := domain.ParseAmount(s)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: "amount", Message: "must be a decimal number"})
		return decimal.Zero, false
	}
	return amount, true
}

// parseCategory matches case-insensitively. Unknown names pass through
// unchanged and are rejected by the service.
func parseCategory(s string) domain.Category {
	if c, ok := domain.ParseCategory(s); ok {
		return c
	}
	return domain.Category(s)
}

// parseDateField leaves an empty date zero so the service reports it as required.
func parseDateField(s string, errs *[]domain.FieldError) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		return time.Time{}
	}
	return t
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func toExpenseResponse(e *domain.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		Category:    e.Category.String(),
		Date:        e.Date.UTC().Format(dateLayout),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
