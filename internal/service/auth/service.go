// Package auth implements registration, login, token rotation and the
// password-protected account operations.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/expense-tracker/internal/auth"
	"github.com/heartmarshall/expense-tracker/internal/config"
	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteExpired(ctx context.Context) (int, error)
}

// expenseRepo is the slice of the expense repository needed for account deletion.
type expenseRepo interface {
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// denylist remembers access tokens revoked before their expiry.
type denylist interface {
	Deny(ctx context.Context, tokenID string, until time.Time) error
	IsDenied(ctx context.Context, tokenID string) (bool, error)
}

// eventPublisher delivers domain events after a successful mutation.
type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Deps groups the collaborators of the auth service.
type Deps struct {
	Users     userRepo
	Tokens    tokenRepo
	Expenses  expenseRepo
	Tx        txManager
	JWT       jwtManager
	Denylist  denylist
	Publisher eventPublisher
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	tokens    tokenRepo
	expenses  expenseRepo
	tx        txManager
	jwt       jwtManager
	denylist  denylist
	publisher eventPublisher
	cfg       config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, deps Deps, cfg config.AuthConfig) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     deps.Users,
		tokens:    deps.Tokens,
		expenses:  deps.Expenses,
		tx:        deps.Tx,
		jwt:       deps.JWT,
		denylist:  deps.Denylist,
		publisher: deps.Publisher,
		cfg:       cfg,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, time.Now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
		User:         user,
	}, nil
}

// publish sends an event and logs a failure instead of returning it.
func (s *Service) publish(ctx context.Context, e domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "event publish failed",
			slog.String("type", e.Type.String()),
			slog.String("user_id", e.UserID.String()),
			slog.String("error", err.Error()))
	}
}
