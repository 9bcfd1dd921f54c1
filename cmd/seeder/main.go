// Command seeder creates a demo account filled with the dashboard sample
// expenses (July 2024). Running it again signs in to the existing account
// and adds the expenses once more unless --reset is given.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--reset          delete the demo account's expenses first
//	--dry-run        report what would be written without touching the DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/expense-tracker/internal/app"
	"github.com/heartmarshall/expense-tracker/internal/app/seeder"
	"github.com/heartmarshall/expense-tracker/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	resetFlag := flag.Bool("reset", false, "delete existing demo expenses first")
	dryRunFlag := flag.Bool("dry-run", false, "do not write to the database")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *resetFlag {
		seederCfg.Reset = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, appCfg, logger)
	if err != nil {
		logger.Error("initialize", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	pipeline := seeder.NewPipeline(logger, c.Auth, c.Expenses, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("demo data ready",
		slog.String("email", seederCfg.Email),
		slog.String("user_id", pipeline.UserID().String()),
	)
}
