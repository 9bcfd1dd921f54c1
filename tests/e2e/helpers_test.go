//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/expense-tracker/internal/adapter/amqp"
	"github.com/heartmarshall/expense-tracker/internal/adapter/pdf"
	"github.com/heartmarshall/expense-tracker/internal/adapter/postgres"
	expenserepo "github.com/heartmarshall/expense-tracker/internal/adapter/postgres/expense"
	"github.com/heartmarshall/expense-tracker/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/heartmarshall/expense-tracker/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/expense-tracker/internal/adapter/postgres/user"
	"github.com/heartmarshall/expense-tracker/internal/app"
	authpkg "github.com/heartmarshall/expense-tracker/internal/auth"
	"github.com/heartmarshall/expense-tracker/internal/config"
	authsvc "github.com/heartmarshall/expense-tracker/internal/service/auth"
	expensesvc "github.com/heartmarshall/expense-tracker/internal/service/expense"
	reportsvc "github.com/heartmarshall/expense-tracker/internal/service/report"
	"github.com/heartmarshall/expense-tracker/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). Redis and AMQP are left
// out: the denylist is in memory and events are dropped.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret-at-least-32-chars-long!!",
			JWTIssuer:         "test-issuer",
			AccessTokenTTL:    15 * time.Minute,
			RefreshTokenTTL:   720 * time.Hour,
			PasswordHashCost:  bcrypt.MinCost,
			MinPasswordLength: 6,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, CleanupInterval: time.Minute},
	}

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	expenses := expenserepo.New(pool)
	publisher := amqp.NopPublisher{}

	c := &app.Container{Pool: pool, Users: users, Renderer: pdf.NewRenderer()}
	c.Auth = authsvc.NewService(logger, authsvc.Deps{
		Users:     users,
		Tokens:    tokenrepo.New(pool),
		Expenses:  expenses,
		Tx:        txm,
		JWT:       authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Denylist:  authpkg.NewMemoryDenylist(),
		Publisher: publisher,
	}, cfg.Auth)
	c.Expenses = expensesvc.NewService(logger, expenses, txm, publisher)
	c.Reports = reportsvc.NewService(logger, c.Expenses, c.Renderer, time.UTC)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, c, limiter))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// restRequest sends a JSON request. An empty token sends no Authorization header.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// restJSON sends a request, checks the status and decodes the JSON body into a map.
func restJSON(t *testing.T, ts *testServer, method, path, token string, body any, wantStatus int) map[string]any {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", raw)

	if len(raw) == 0 {
		return nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// uniqueEmail returns an address no other test uses; the database is shared.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

// account is a registered and signed-in user.
type account struct {
	Email        string
	Password     string
	UserID       string
	AccessToken  string
	RefreshToken string
}

// registerAndLogin creates an account through the API and signs in.
func registerAndLogin(t *testing.T, ts *testServer, prefix string) account {
	t.Helper()

	acc := account{Email: uniqueEmail(prefix), Password: "securepassword123"}
	creds := map[string]string{"email": acc.Email, "password": acc.Password}

	restJSON(t, ts, http.MethodPost, "/auth/register", "", creds, http.StatusCreated)
	body := restJSON(t, ts, http.MethodPost, "/auth/login", "", creds, http.StatusOK)

	acc.AccessToken = body["accessToken"].(string)
	acc.RefreshToken = body["refreshToken"].(string)
	acc.UserID = body["user"].(map[string]any)["id"].(string)
	return acc
}

// createExpense records an expense through the API and returns its id.
func createExpense(t *testing.T, ts *testServer, token, description, amount, category, date string) string {
	t.Helper()

	body := restJSON(t, ts, http.MethodPost, "/api/expenses", token, map[string]string{
		"description": description,
		"amount":      amount,
		"category":    category,
		"date":        date,
	}, http.StatusCreated)
	return body["id"].(string)
}

// errorCode extracts the machine-readable code from an error body.
func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	code, ok := body["code"].(string)
	require.True(t, ok, "expected code in error body: %v", body)
	return code
}
