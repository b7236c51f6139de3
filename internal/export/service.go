// Package export produces XLSX workbooks of stored purchase orders.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adewale-s/po-intake/internal/repository"
)

// Service is a tiny façade over the order repository that produces XLSX bytes.
type Service struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

func NewService(orders repository.OrderRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{orders: orders, logger: logger}
}

// ExportOrdersXLSX returns an XLSX workbook (as bytes) for the given creation
// date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all orders.
func (s *Service) ExportOrdersXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	orders, err := s.orders.ListOrders(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Orders"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Order Number",
		"Product",
		"Quantity",
		"Due Date",
		"Retailer Name",
		"Retailer Email",
		"Retailer Address",
		"Confidence",
		"Priority",
		"Status",
		"Remarks",
		"Received",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, o := range orders {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, o.OrderNumber)
		write(2, orEmpty(o.Product))
		write(3, orEmpty(o.Quantity))
		write(4, orEmpty(o.DueDate))
		write(5, orEmpty(o.RetailerName))
		write(6, orEmpty(o.RetailerEmail))
		write(7, orEmpty(o.RetailerAddress))
		write(8, o.ConfidenceScore)
		write(9, string(o.PriorityLevel))
		write(10, string(o.OrderStatus))
		write(11, truncate(orEmpty(o.Remarks), 140))
		if !o.CreatedAt.IsZero() {
			write(12, o.CreatedAt.Format("2006-01-02"))
		} else {
			write(12, "")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 22) // order number
	_ = f.SetColWidth(sheet, "B", "B", 32) // product
	_ = f.SetColWidth(sheet, "C", "D", 12) // quantity, due date
	_ = f.SetColWidth(sheet, "E", "G", 28) // retailer fields
	_ = f.SetColWidth(sheet, "H", "J", 14) // scores and decisions
	_ = f.SetColWidth(sheet, "K", "K", 48) // remarks
	_ = f.SetColWidth(sheet, "L", "L", 12) // received

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(orders),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
