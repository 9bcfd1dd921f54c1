package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/expense-tracker/internal/adapter/amqp"
	"github.com/heartmarshall/expense-tracker/internal/adapter/pdf"
	"github.com/heartmarshall/expense-tracker/internal/adapter/postgres"
	expenserepo "github.com/heartmarshall/expense-tracker/internal/adapter/postgres/expense"
	tokenrepo "github.com/heartmarshall/expense-tracker/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/expense-tracker/internal/adapter/postgres/user"
	redisadapter "github.com/heartmarshall/expense-tracker/internal/adapter/redis"
	"github.com/heartmarshall/expense-tracker/internal/auth"
	"github.com/heartmarshall/expense-tracker/internal/config"
	"github.com/heartmarshall/expense-tracker/internal/domain"
	authsvc "github.com/heartmarshall/expense-tracker/internal/service/auth"
	expensesvc "github.com/heartmarshall/expense-tracker/internal/service/expense"
	reportsvc "github.com/heartmarshall/expense-tracker/internal/service/report"
	"github.com/heartmarshall/expense-tracker/internal/transport/rest"
)

type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

type tokenDenylist interface {
	Deny(ctx context.Context, tokenID string, until time.Time) error
	IsDenied(ctx context.Context, tokenID string) (bool, error)
}

// Container holds the infrastructure and services shared by the server and
// the command-line tools.
type Container struct {
	Pool     *pgxpool.Pool
	Redis    *goredis.Client
	Users    *userrepo.Repo
	Auth     *authsvc.Service
	Expenses *expensesvc.Service
	Reports  *reportsvc.Service
	Renderer *pdf.Renderer

	closers []func()
}

// NewContainer connects to the database (and Redis and AMQP when configured)
// and builds the services. Close must be called to release connections.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.Pool = pool
	c.closers = append(c.closers, pool.Close)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	var denylist tokenDenylist = auth.NewMemoryDenylist()
	if cfg.Redis.Addr != "" {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Redis = client
		c.closers = append(c.closers, func() { _ = client.Close() })
		denylist = redisadapter.NewDenylist(client)
	} else {
		logger.Warn("redis not configured, token denylist is process-local")
	}

	var publisher eventPublisher = amqp.NopPublisher{}
	if cfg.AMQP.URL != "" {
		p, err := amqp.NewPublisher(logger, cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			c.Close()
			return nil, err
		}
		publisher = p
		c.closers = append(c.closers, func() { _ = p.Close() })
	}

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	expenses := expenserepo.New(pool)
	c.Users = users

	c.Auth = authsvc.NewService(logger, authsvc.Deps{
		Users:     users,
		Tokens:    tokens,
		Expenses:  expenses,
		Tx:        txm,
		JWT:       auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Denylist:  denylist,
		Publisher: publisher,
	}, cfg.Auth)
	c.Expenses = expensesvc.NewService(logger, expenses, txm, publisher)
	c.Renderer = pdf.NewRenderer()
	c.Reports = reportsvc.NewService(logger, c.Expenses, c.Renderer, cfg.Report.Location())

	return c, nil
}

// Close releases connections in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// HealthChecks returns the probes for every connected dependency.
func (c *Container) HealthChecks() []rest.Check {
	checks := []rest.Check{{Name: "database", Ping: c.Pool.Ping}}
	if c.Redis != nil {
		checks = append(checks, rest.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return c.Redis.Ping(ctx).Err() },
		})
	}
	return checks
}
