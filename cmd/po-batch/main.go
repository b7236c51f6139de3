package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adewale-s/po-intake/internal/attach"
	"github.com/adewale-s/po-intake/internal/common"
	"github.com/adewale-s/po-intake/internal/export"
	"github.com/adewale-s/po-intake/internal/extract"
	"github.com/adewale-s/po-intake/internal/mailsrc"
	"github.com/adewale-s/po-intake/internal/ner"
	"github.com/adewale-s/po-intake/internal/pipeline"
	repo "github.com/adewale-s/po-intake/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process order emails from (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "orders.xlsx")
	}

	// Parse date filters
	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	dsn := cfg.Database.DSN
	if *inmem {
		dsn = ":memory:"
	}
	if dsn == "" {
		printError("Error: DB_URL is required unless --inmem is set\n")
		os.Exit(1)
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
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := repo.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Wire the pipeline over the given directory
	orders := repo.NewOrderRepository(db, logger)
	extractor := extract.New(ner.NewProseRecognizer(), cfg.Extract.MinNameTokens, logger)
	att := attach.NewExtractor(cfg.Extract.TesseractBin, logger)
	source := mailsrc.NewDirSource(*dir, att, logger)
	pipe := pipeline.New(source, orders, extractor, logger)

	result, err := pipe.Run(ctx)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("batch run finished",
		"added", result.Added, "skipped", result.Skipped, "failed", result.Failed)

	// Export what we have
	svc := export.NewService(orders, logger)
	xlsx, err := svc.ExportOrdersXLSX(ctx, from, to)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("writing workbook failed", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", *out)
}
