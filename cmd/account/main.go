// Command account disables or re-enables a user by email address.
// A disabled user cannot sign in or refresh tokens until re-enabled.
//
// Usage:
//
//	account --email=user@example.com --disable
//	account --email=user@example.com --enable
//
// Configuration is loaded the same way as for the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/expense-tracker/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/expense-tracker/internal/adapter/postgres/user"
	"github.com/heartmarshall/expense-tracker/internal/config"
	"github.com/heartmarshall/expense-tracker/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account")
	disable := flag.Bool("disable", false, "disable the account")
	enable := flag.Bool("enable", false, "re-enable the account")
	flag.Parse()

	if *email == "" || *disable == *enable {
		fmt.Fprintln(os.Stderr, "Usage: account --email=user@example.com --disable|--enable")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	user, err := userrepo.New(pool).SetDisabled(ctx, strings.ToLower(strings.TrimSpace(*email)), *disable)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update account: %v", err)
	}

	state := "enabled"
	if user.IsDisabled() {
		state = "disabled"
	}
	fmt.Printf("User %q is now %s.\n", user.Email, state)
}
