// Ruthwik | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ruthwik2/storefront-admin/internal/admin"
	"github.com/ruthwik2/storefront-admin/internal/config"
	"github.com/ruthwik2/storefront-admin/internal/core"
)

// bootstrap creates the initial administrator account. The system
// needs at least one admin to be usable; this is the out-of-band path
// that seeds it.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	email := flag.String("email", "", "administrator email")
	password := flag.String("password", "", "administrator password")
	reset := flag.Bool("reset", false, "delete an existing account with this email and recreate it")
	flag.Parse()

	if err := run(*configPath, *email, *password, *reset); err != nil {
		slog.Error("bootstrap error", "error", err)
		os.Exit(1)
	}
}

func run(configPath, email, password string, reset bool) error {
	if email == "" || password == "" {
		return fmt.Errorf("-email and -password are required")
	}

	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	repo := admin.NewRepository(db.DB)
	svc := admin.NewService(repo)

	existing, err := repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return err
	}

	if existing != nil {
		if !reset {
			slog.Info("administrator already exists, nothing to do",
				"email", existing.Email,
			)
			return nil
		}

		if err := repo.Delete(ctx, existing.ID); err != nil {
			return err
		}
		slog.Info("deleted existing administrator", "email", existing.Email)
	}

	info, err := svc.Create(ctx, email, password)
	if err != nil {
		return err
	}

	slog.Info("administrator created",
		"id", info.ID,
		"email", info.Email,
		"role", info.Role,
	)

	admins, err := svc.List(ctx)
	if err != nil {
		return err
	}

	for _, a := range admins {
		slog.Info("current administrator", "email", a.Email, "role", a.Role)
	}

	return nil
}
