package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adewale-s/po-intake/internal/export"
	repo "github.com/adewale-s/po-intake/internal/repository"
)

// NewExportCommand creates the export command: write stored orders to an
// XLSX workbook.
func NewExportCommand() *cobra.Command {
	var out, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export purchase orders to an XLSX workbook",
		Long: `Export purchase orders to an XLSX workbook, optionally restricted to a
creation date window.

Examples:
  poctl export --out orders.xlsx
  poctl export --out august.xlsx --from 2026-08-01 --to 2026-08-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger()

			from, to, err := parseWindow(fromStr, toStr)
			if err != nil {
				return err
			}

			_, db, cleanup, err := openDatabase(ctx, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			orders := repo.NewOrderRepository(db, logger)
			svc := export.NewService(orders, logger)
			xlsx, err := svc.ExportOrdersXLSX(ctx, from, to)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			if err := os.WriteFile(out, xlsx, 0o644); err != nil {
				return fmt.Errorf("writing workbook: %w", err)
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "orders.xlsx", "output XLSX path")
	cmd.Flags().StringVar(&fromStr, "from", "", "from date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "to date YYYY-MM-DD")
	return cmd
}
