// Command expensectl is an interactive terminal client for the expense
// tracker. It talks to the database directly through the same services as
// the API server and keeps the refresh token in a session file so a later
// run resumes the same sign-in.
//
// Flags:
//
//	--session-file  where the refresh token is kept (default: user config dir)
//	--export-dir    where PDF reports are written (default: current directory)
//	--log-file      write diagnostics to this file instead of stderr
//	--log-level     diagnostic level (default: warn)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/heartmarshall/expense-tracker/internal/app"
	"github.com/heartmarshall/expense-tracker/internal/app/shell"
	"github.com/heartmarshall/expense-tracker/internal/config"
	"github.com/heartmarshall/expense-tracker/internal/service/expense"
	"github.com/heartmarshall/expense-tracker/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	sessionFile := flag.String("session-file", defaultSessionFile(), "file that keeps the refresh token")
	exportDir := flag.String("export-dir", ".", "directory for exported reports")
	logFile := flag.String("log-file", "", "write diagnostics to this file")
	logLevel := flag.String("log-level", "warn", "diagnostic level: debug, info, warn, error")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logOut io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := app.NewCLILogger(logOut, *logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer c.Close()

	lifecycle := session.NewLifecycle(logger, c.Auth)
	coordinator := expense.NewCoordinator(logger, c.Expenses)

	events, unsubscribe := lifecycle.Subscribe()
	defer unsubscribe()
	go coordinator.Watch(ctx, events)

	sh := shell.New(logger, lifecycle, coordinator, c.Renderer, shell.Options{
		In:          os.Stdin,
		Out:         os.Stdout,
		Password:    passwordReader(os.Stdin),
		SessionFile: *sessionFile,
		Location:    cfg.Report.Location(),
		ExportDir:   *exportDir,
	})
	return sh.Run(ctx)
}

// passwordReader reads secrets without echo when stdin is a terminal.
// For pipes it returns nil so the shell reads secrets as ordinary lines.
func passwordReader(stdin *os.File) shell.PasswordFunc {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return func(prompt string) (string, error) {
		fmt.Fprint(os.Stdout, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stdout)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "expensectl", "session")
}
