// Package shell is the interactive expensectl client. It drives the session
// lifecycle and the expense coordinator in-process and renders reports to
// local files.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	authsvc "github.com/heartmarshall/expense-tracker/internal/service/auth"
	"github.com/heartmarshall/expense-tracker/internal/service/expense"
	"github.com/heartmarshall/expense-tracker/internal/session"
)

type sessionManager interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input authsvc.LoginInput) (*domain.User, error)
	Restore(ctx context.Context, refreshToken string) (*domain.User, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, input authsvc.ChangePasswordInput) error
	DeleteAccount(ctx context.Context, input authsvc.DeleteAccountInput) error
	Current() (session.State, *domain.User)
	RefreshToken() string
	Context(ctx context.Context) (context.Context, error)
}

type expenseStore interface {
	Expenses() []domain.Expense
	Create(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	Update(ctx context.Context, input expense.UpdateInput) (*domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int, error)
	Reload(ctx context.Context) error
}

type renderer interface {
	Render(report *domain.Report) ([]byte, error)
}

// PasswordFunc reads a secret without echoing it.
type PasswordFunc func(prompt string) (string, error)

// Options configures a Shell.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Password reads secrets. When nil, secrets are read as plain input lines.
	Password PasswordFunc
	// SessionFile persists the refresh token between runs. Empty disables it.
	SessionFile string
	// Location is used for "today" and report periods. Defaults to time.Local.
	Location *time.Location
	// ExportDir is where reports are written unless --out is given.
	ExportDir string
}

// Shell is a line-oriented command interpreter.
type Shell struct {
	session  sessionManager
	expenses expenseStore
	renderer renderer
	log      *slog.Logger

	in          *bufio.Scanner
	out         io.Writer
	password    PasswordFunc
	sessionFile string
	loc         *time.Location
	exportDir   string
	now         func() time.Time

	commands map[string]command
}

type command struct {
	usage   string
	summary string
	authed  bool
	run     func(ctx context.Context, args []string) error
}

var errQuit = errors.New("quit")

// New creates a shell.
func New(log *slog.Logger, sess sessionManager, expenses expenseStore, r renderer, opts Options) *Shell {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	s := &Shell{
		session:     sess,
		expenses:    expenses,
		renderer:    r,
		log:         log.With("component", "shell"),
		in:          bufio.NewScanner(opts.In),
		out:         opts.Out,
		password:    opts.Password,
		sessionFile: opts.SessionFile,
		loc:         loc,
		exportDir:   exportDir,
		now:         time.Now,
	}
	s.commands = s.registerCommands()
	return s
}

func (s *Shell) registerCommands() map[string]command {
	return map[string]command{
		"register":       {usage: "register <email>", summary: "create an account", run: s.cmdRegister},
		"login":          {usage: "login <email>", summary: "sign in", run: s.cmdLogin},
		"logout":         {usage: "logout", summary: "sign out", authed: true, run: s.cmdLogout},
		"passwd":         {usage: "passwd", summary: "change your password", authed: true, run: s.cmdPasswd},
		"delete-account": {usage: "delete-account", summary: "delete your account and all expenses", authed: true, run: s.cmdDeleteAccount},
		"add": {
			usage:   "add [--date YYYY-MM-DD] <amount> <category> <description...>",
			summary: "record an expense",
			authed:  true,
			run:     s.cmdAdd,
		},
		"edit": {
			usage:   "edit <id> [--amount N] [--category C] [--date YYYY-MM-DD] [--description D]",
			summary: "change an expense",
			authed:  true,
			run:     s.cmdEdit,
		},
		"rm":      {usage: "rm <id>", summary: "delete an expense", authed: true, run: s.cmdRemove},
		"clear":   {usage: "clear", summary: "delete all of your expenses", authed: true, run: s.cmdClear},
		"ls":      {usage: "ls", summary: "list expenses, newest first", authed: true, run: s.cmdList},
		"summary": {usage: "summary", summary: "totals and category breakdown", authed: true, run: s.cmdSummary},
		"export": {
			usage:   "export <current_week|current_month|last_month|current_year|custom> [--start YYYY-MM-DD] [--end YYYY-MM-DD] [--out FILE]",
			summary: "write a PDF report",
			authed:  true,
			run:     s.cmdExport,
		},
		"categories": {usage: "categories", summary: "list categories", run: s.cmdCategories},
		"help":       {usage: "help", summary: "show this help", run: s.cmdHelp},
		"quit":       {usage: "quit", summary: "leave the shell", run: func(context.Context, []string) error { return errQuit }},
	}
}

// Run restores a saved session, then reads and executes commands until
// quit, EOF or ctx cancellation. The refresh token is saved on exit.
func (s *Shell) Run(ctx context.Context) error {
	s.restore(ctx)
	defer s.persist()

	s.println("Type 'help' for commands.")
	for {
		if ctx.Err() != nil {
			return nil
		}
		s.prompt()

		line, ok := s.readLine()
		if !ok {
			s.println("")
			return s.in.Err()
		}

		err := s.Exec(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.printf("error: %s\n", describe(err))
		}
	}
}

// Exec runs a single command line.
func (s *Shell) Exec(ctx context.Context, line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	if name == "exit" {
		name = "quit"
	}
	cmd, ok := s.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", args[0])
	}

	if cmd.authed {
		authCtx, err := s.session.Context(ctx)
		if err != nil {
			return errors.New("not signed in, use 'login <email>'")
		}
		ctx = authCtx
	}

	s.log.DebugContext(ctx, "exec", slog.String("command", name))
	return cmd.run(ctx, args[1:])
}

func (s *Shell) cmdHelp(context.Context, []string) error {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := s.commands[name]
		s.printf("  %-16s %s\n", name, c.summary)
		if c.usage != name {
			s.printf("  %-16s   %s\n", "", c.usage)
		}
	}
	return nil
}

func (s *Shell) cmdCategories(context.Context, []string) error {
	for _, c := range domain.Categories() {
		s.println("  " + c.String())
	}
	return nil
}

func (s *Shell) prompt() {
	state, user := s.session.Current()
	if state == session.Authenticated && user != nil {
		s.printf("%s> ", user.Email)
		return
	}
	s.printf("> ")
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) readSecret(prompt string) (string, error) {
	if s.password != nil {
		return s.password(prompt)
	}
	s.printf("%s", prompt)
	line, ok := s.readLine()
	if !ok {
		return "", io.ErrUnexpectedEOF
	}
	return line, nil
}

// confirm asks a yes/no question; anything but y/yes is a no.
func (s *Shell) confirm(question string) bool {
	s.printf("%s [y/N] ", question)
	line, ok := s.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	}
	return false
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

// describe turns service errors into messages for the terminal.
func describe(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		parts := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			parts = append(parts, fe.Field+": "+fe.Message)
		}
		return strings.Join(parts, "; ")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, domain.ErrWrongPassword):
		return "current password is incorrect"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "this account is disabled"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "an account with this email already exists"
	case errors.Is(err, domain.ErrNoData):
		return "no expenses in the selected period"
	case errors.Is(err, domain.ErrNotFound):
		return "not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return "session expired, please sign in again"
	}
	return err.Error()
}
