package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// Logout revokes all refresh tokens of the user the access token belongs to
// and denylists that access token until it expires.
// Returns ErrUnauthorized if the access token is invalid.
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwt.ValidateAccessToken(accessToken)
	if err != nil {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, claims.UserID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	if err := s.denylist.Deny(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("auth.Logout deny access token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", claims.UserID.String()))
	return nil
}

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid, expired or logged out.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}

	denied, err := s.denylist.IsDenied(ctx, claims.TokenID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if denied {
		return uuid.Nil, domain.ErrUnauthorized
	}

	return claims.UserID, nil
}

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// CleanupExpiredTokens removes all expired or revoked refresh tokens from the database.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
