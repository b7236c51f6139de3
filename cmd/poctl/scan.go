package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adewale-s/po-intake/internal/attach"
	"github.com/adewale-s/po-intake/internal/extract"
	"github.com/adewale-s/po-intake/internal/mailsrc"
	"github.com/adewale-s/po-intake/internal/ner"
	"github.com/adewale-s/po-intake/internal/pipeline"
	repo "github.com/adewale-s/po-intake/internal/repository"
)

// NewScanCommand creates the scan command: fetch one batch of order emails
// and run it through the pipeline.
func NewScanCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Process one batch of order emails",
		Long: `Fetch pending order emails from the source directory and run them through
extraction, validation, scoring, and duplicate detection.

Examples:
  # Scan the configured MAIL_SOURCE_DIR
  poctl scan

  # Scan a specific directory into a throwaway database
  poctl scan --dir ./samples --inmem`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger()

			cfg, db, cleanup, err := openDatabase(ctx, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			if dir == "" {
				dir = cfg.Scan.SourceDir
			}

			orders := repo.NewOrderRepository(db, logger)
			extractor := extract.New(ner.NewProseRecognizer(), cfg.Extract.MinNameTokens, logger)
			att := attach.NewExtractor(cfg.Extract.TesseractBin, logger)
			source := mailsrc.NewDirSource(dir, att, logger)
			pipe := pipeline.New(source, orders, extractor, logger)

			result, err := pipe.Run(ctx)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
			fmt.Printf("added %d, skipped %d duplicates, %d failed\n",
				result.Added, result.Skipped, result.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "mail source directory (defaults to MAIL_SOURCE_DIR)")
	return cmd
}
