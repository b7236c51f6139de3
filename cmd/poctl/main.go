// Package main provides the poctl CLI entry point. poctl is the operator's
// tool for the purchase-order intake service: run a scan on demand, list
// stored orders, or export them to a workbook.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/adewale-s/po-intake/internal/common"
	repo "github.com/adewale-s/po-intake/internal/repository"
)

var (
	inmem   bool
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "poctl",
		Short: "Purchase-order intake utilities",
		Long: `poctl manages the purchase-order intake service from the command line.

It talks directly to the order database; set DB_URL (or pass --inmem for a
throwaway in-memory database when experimenting).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&inmem, "inmem", false, "use an in-memory SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(NewScanCommand())
	rootCmd.AddCommand(NewOrdersCommand())
	rootCmd.AddCommand(NewExportCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openDatabase loads config, opens the configured database, and runs
// migrations. Callers must invoke the returned cleanup.
func openDatabase(ctx context.Context, logger *slog.Logger) (*common.Config, *sql.DB, func(), error) {
	cfg := common.LoadConfig()

	dsn := cfg.Database.DSN
	if inmem {
		dsn = ":memory:"
	}
	if dsn == "" {
		return nil, nil, nil, fmt.Errorf("DB_URL is required unless --inmem is set")
	}

	db, cleanup, err := repo.Open(ctx, repo.Config{
		DSN:              dsn,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := repo.Migrate(ctx, db); err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("migrating database: %w", err)
	}
	return cfg, db, cleanup, nil
}
