package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/internal/service/auth"
	"github.com/heartmarshall/expense-tracker/pkg/ctxutil"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"account", "expenses"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Deleted  int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline seeds a demo account and its expenses.
type Pipeline struct {
	log      *slog.Logger
	accounts AccountService
	expenses ExpenseService
	cfg      Config
	userID   uuid.UUID
	results  map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, accounts AccountService, expenses ExpenseService, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		accounts: accounts,
		expenses: expenses,
		cfg:      cfg,
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// UserID returns the demo account ID resolved by the account phase.
func (p *Pipeline) UserID() uuid.UUID {
	return p.userID
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run. The expenses phase needs the account phase and is skipped without it.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no known phases in %v", phases)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "account":
			result = p.runAccount(ctx)
		case "expenses":
			result = p.runExpenses(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			// Later phases depend on earlier ones.
			break
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("deleted", result.Deleted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(p.results)))
	return nil
}

// runAccount registers the demo account, or signs in if it already exists.
func (p *Pipeline) runAccount(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		p.userID = uuid.New()
		return PhaseResult{Skipped: 1}
	}

	user, err := p.accounts.Register(ctx, auth.RegisterInput{Email: p.cfg.Email, Password: p.cfg.Password})
	if err == nil {
		p.userID = user.ID
		return PhaseResult{Inserted: 1}
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return PhaseResult{Err: fmt.Errorf("register demo account: %w", err)}
	}

	res, err := p.accounts.Login(ctx, auth.LoginInput{Email: p.cfg.Email, Password: p.cfg.Password})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("sign in to existing demo account: %w", err)}
	}
	p.userID = res.User.ID
	return PhaseResult{Skipped: 1}
}

func (p *Pipeline) runExpenses(ctx context.Context) PhaseResult {
	demo := DemoExpenses()
	if p.userID == uuid.Nil {
		return PhaseResult{Err: errors.New("expenses phase requires the account phase")}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(demo)}
	}

	ctx = ctxutil.WithUserID(ctx, p.userID)

	var result PhaseResult
	if p.cfg.Reset {
		n, err := p.expenses.DeleteAll(ctx)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("reset expenses: %w", err)}
		}
		result.Deleted = n
	}

	for _, in := range demo {
		if _, err := p.expenses.Create(ctx, in); err != nil {
			result.Err = fmt.Errorf("create %q: %w", in.Description, err)
			return result
		}
		result.Inserted++
	}
	return result
}
