package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/expense-tracker/internal/session"
)

// restore signs in from the saved refresh token, if any. A rejected token
// is discarded.
func (s *Shell) restore(ctx context.Context) {
	token, err := readSessionFile(s.sessionFile)
	if err != nil {
		s.log.WarnContext(ctx, "read session file", slog.String("error", err.Error()))
		return
	}
	if token == "" {
		return
	}

	user, err := s.session.Restore(ctx, token)
	if err != nil {
		s.log.InfoContext(ctx, "saved session rejected", slog.String("error", err.Error()))
		s.forget()
		s.println("Saved session has expired, please sign in.")
		return
	}

	s.persist()
	s.syncExpenses(ctx)
	s.printf("Welcome back, %s.\n", user.Email)
}

// persist saves the current refresh token, or removes the file when signed out.
func (s *Shell) persist() {
	if s.sessionFile == "" {
		return
	}
	state, _ := s.session.Current()
	token := s.session.RefreshToken()
	if state != session.Authenticated || token == "" {
		s.forget()
		return
	}
	if err := writeSessionFile(s.sessionFile, token); err != nil {
		s.log.Warn("write session file", slog.String("error", err.Error()))
	}
}

func (s *Shell) forget() {
	if s.sessionFile == "" {
		return
	}
	if err := os.Remove(s.sessionFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("remove session file", slog.String("error", err.Error()))
	}
}

func readSessionFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// writeSessionFile stores the token with owner-only permissions.
func writeSessionFile(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
