package shell

import (
	"context"
	"errors"
	"log/slog"

	authsvc "github.com/heartmarshall/expense-tracker/internal/service/auth"
	"github.com/heartmarshall/expense-tracker/internal/session"
)

func (s *Shell) cmdRegister(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: register <email>")
	}
	if state, _ := s.session.Current(); state == session.Authenticated {
		return errors.New("already signed in, 'logout' first")
	}

	password, err := s.readNewPassword("Password: ")
	if err != nil {
		return err
	}

	user, err := s.session.Register(ctx, authsvc.RegisterInput{Email: args[0], Password: password})
	if err != nil {
		return err
	}

	s.printf("Account %s created. Sign in with 'login %s'.\n", user.Email, user.Email)
	return nil
}

func (s *Shell) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: login <email>")
	}
	if state, _ := s.session.Current(); state == session.Authenticated {
		return errors.New("already signed in, 'logout' first")
	}

	password, err := s.readSecret("Password: ")
	if err != nil {
		return err
	}

	user, err := s.session.Login(ctx, authsvc.LoginInput{Email: args[0], Password: password})
	if err != nil {
		return err
	}

	s.persist()
	s.syncExpenses(ctx)
	s.printf("Signed in as %s.\n", user.Email)
	return nil
}

func (s *Shell) cmdLogout(ctx context.Context, _ []string) error {
	err := s.session.Logout(ctx)
	s.persist()
	s.println("Signed out.")
	if err != nil {
		// The local session is gone either way.
		s.log.WarnContext(ctx, "logout", slog.String("error", err.Error()))
	}
	return nil
}

func (s *Shell) cmdPasswd(ctx context.Context, _ []string) error {
	current, err := s.readSecret("Current password: ")
	if err != nil {
		return err
	}
	next, err := s.readNewPassword("New password: ")
	if err != nil {
		return err
	}

	if err := s.session.ChangePassword(ctx, authsvc.ChangePasswordInput{
		CurrentPassword: current,
		NewPassword:     next,
	}); err != nil {
		return err
	}

	s.println("Password changed.")
	return nil
}

func (s *Shell) cmdDeleteAccount(ctx context.Context, _ []string) error {
	if !s.confirm("Delete your account and all of its expenses?") {
		s.println("Cancelled.")
		return nil
	}

	current, err := s.readSecret("Current password: ")
	if err != nil {
		return err
	}

	if err := s.session.DeleteAccount(ctx, authsvc.DeleteAccountInput{CurrentPassword: current}); err != nil {
		return err
	}

	s.persist()
	s.println("Account deleted.")
	return nil
}

// readNewPassword asks twice and requires both entries to match.
func (s *Shell) readNewPassword(prompt string) (string, error) {
	first, err := s.readSecret(prompt)
	if err != nil {
		return "", err
	}
	second, err := s.readSecret("Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passwords do not match")
	}
	return first, nil
}

// syncExpenses loads the signed-in user's expenses right away so the first
// command after sign-in does not race the background watcher.
func (s *Shell) syncExpenses(ctx context.Context) {
	authCtx, err := s.session.Context(ctx)
	if err != nil {
		return
	}
	if err := s.expenses.Reload(authCtx); err != nil {
		s.printf("warning: could not load expenses: %s\n", describe(err))
	}
}
