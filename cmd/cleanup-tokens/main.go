// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Configuration is loaded the same way as for the server.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/heartmarshall/expense-tracker/internal/app"
	"github.com/heartmarshall/expense-tracker/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Database.AutoMigrate = false

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("initialize: %v", err)
	}
	defer c.Close()

	n, err := c.Auth.CleanupExpiredTokens(ctx)
	if err != nil {
		log.Fatalf("cleanup tokens: %v", err)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", n)
}
