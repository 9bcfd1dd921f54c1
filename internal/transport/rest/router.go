package rest

import (
	"net/http"

	"github.com/heartmarshall/expense-tracker/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Expense *ExpenseHandler
	Report  *ReportHandler
	Health  *HealthHandler
}

// NewRouter registers every route. authLimit wraps the /auth endpoints;
// the bearer-token middleware is applied by the caller around the whole mux.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(fn http.HandlerFunc) http.Handler {
		if authLimit == nil {
			return fn
		}
		return authLimit(fn)
	}

	mux.Handle("POST /auth/register", limited(h.Auth.Register))
	mux.Handle("POST /auth/login", limited(h.Auth.Login))
	mux.Handle("POST /auth/refresh", limited(h.Auth.Refresh))
	mux.Handle("POST /auth/logout", authenticated(h.Auth.Logout))
	mux.Handle("POST /auth/password", limited(authenticated(h.Auth.ChangePassword)))
	mux.Handle("DELETE /auth/account", limited(authenticated(h.Auth.DeleteAccount)))

	mux.Handle("GET /api/me", authenticated(h.Auth.Me))

	mux.Handle("GET /api/expenses", authenticated(h.Expense.List))
	mux.Handle("POST /api/expenses", authenticated(h.Expense.Create))
	mux.Handle("DELETE /api/expenses", authenticated(h.Expense.DeleteAll))
	mux.Handle("PATCH /api/expenses/{id}", authenticated(h.Expense.Update))
	mux.Handle("DELETE /api/expenses/{id}", authenticated(h.Expense.Delete))

	mux.Handle("GET /api/summary", authenticated(h.Report.Summary))
	mux.Handle("GET /api/reports", authenticated(h.Report.Export))

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}

// authenticated rejects requests the Auth middleware let through anonymously.
func authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := requireUser(r); err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
			return
		}
		next(w, r)
	}
}
