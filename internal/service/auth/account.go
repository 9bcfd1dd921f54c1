package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// DeleteAccount permanently removes the authenticated user after
// re-verifying the password. Expenses, refresh tokens and the user row are
// deleted in that order inside one transaction, so a failure leaves
// everything in place. Returns ErrWrongPassword without deleting anything
// when the password does not match.
func (s *Service) DeleteAccount(ctx context.Context, input DeleteAccountInput) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.reauthenticate(ctx, input.CurrentPassword)
	if err != nil {
		return fmt.Errorf("auth.DeleteAccount: %w", err)
	}

	var expenses, tokens int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if expenses, err = s.expenses.DeleteAllByUser(txCtx, user.ID); err != nil {
			return fmt.Errorf("delete expenses: %w", err)
		}
		if tokens, err = s.tokens.DeleteByUser(txCtx, user.ID); err != nil {
			return fmt.Errorf("delete refresh tokens: %w", err)
		}
		if err := s.users.Delete(txCtx, user.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.DeleteAccount: %w", err)
	}

	// The access token may still be presented until it expires.
	if token := ctxutil.AccessTokenFromCtx(ctx); token != "" {
		if claims, err := s.jwt.ValidateAccessToken(token); err == nil {
			if err := s.denylist.Deny(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
				s.log.WarnContext(ctx, "deny access token after account deletion",
					slog.String("user_id", user.ID.String()),
					slog.String("error", err.Error()))
			}
		}
	}

	s.publish(ctx, domain.NewEvent(domain.EventUserDeleted, user.ID, nil))

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", user.ID.String()),
		slog.Int("expenses", expenses),
		slog.Int("refresh_tokens", tokens))

	return nil
}
