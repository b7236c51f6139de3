package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	repo "github.com/adewale-s/po-intake/internal/repository"
)

// NewOrdersCommand creates the orders command: list stored purchase orders.
func NewOrdersCommand() *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List stored purchase orders",
		Long: `List purchase orders, newest first, optionally restricted to a creation
date window.

Examples:
  poctl orders
  poctl orders --from 2026-08-01 --to 2026-08-31`,
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
			list, err := orders.ListOrders(ctx, from, to)
			if err != nil {
				return fmt.Errorf("listing orders: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tPRODUCT\tQTY\tDUE\tSTATUS\tPRIORITY\tCONFIDENCE")
			for _, o := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f\n",
					o.OrderNumber,
					deref(o.Product),
					deref(o.Quantity),
					deref(o.DueDate),
					o.OrderStatus,
					o.PriorityLevel,
					o.ConfidenceScore,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "from date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "to date YYYY-MM-DD")
	return cmd
}

func parseWindow(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --from date, use YYYY-MM-DD: %w", err)
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --to date, use YYYY-MM-DD: %w", err)
		}
		to = &t
	}
	return from, to, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
