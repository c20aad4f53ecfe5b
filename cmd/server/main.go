package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/padelmx/mexicano/internal/config"
	"github.com/padelmx/mexicano/internal/database"
	"github.com/padelmx/mexicano/internal/migrations"
	"github.com/padelmx/mexicano/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Admin ---
	admin := server.NewAdminSQLStore(db)
	if err := admin.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	// --- Tournament store ---
	var store server.TournamentStore
	switch cfg.Store {
	case "sqlite":
		store = server.NewSQLiteStore(db)
	case "memory":
		store = server.NewMemoryStore()
	case "firestore":
		fs, err := server.NewFirestoreStore(ctx, cfg.FirestoreProject, cfg.FirestoreCredentials)
		if err != nil {
			return fmt.Errorf("connecting to firestore: %w", err)
		}
		defer fs.Close()
		store = fs
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store)
	}
	logger.Info("tournament store ready", "backend", cfg.Store)

	// --- HTTP Server ---
	defaults := server.Defaults{
		PlayerPool: cfg.PlayerPool,
		CourtCount: cfg.CourtCount,
	}
	srv := server.New(cfg.HTTPAddr, logger, store, admin, db, defaults, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
