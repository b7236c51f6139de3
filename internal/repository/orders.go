package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adewale-s/po-intake/constants"
	"github.com/adewale-s/po-intake/internal/common"
	"github.com/adewale-s/po-intake/internal/entity"
)

type OrderRepository interface {
	// ExistsByHash reports whether a record with the given fingerprint is
	// already persisted. An error here is fatal to the caller's batch:
	// "assume not duplicate" would double-process.
	ExistsByHash(ctx context.Context, hash string) (bool, error)
	// Create persists one order. The repository assigns the primary key,
	// order number, and timestamps. A fingerprint collision surfaces as
	// common.ErrDuplicate.
	Create(ctx context.Context, o *entity.Order) (*entity.Order, error)
	// ListOrders returns orders newest first, optionally bounded by an
	// inclusive creation-date window.
	ListOrders(ctx context.Context, from, to *time.Time) ([]*entity.Order, error)
	GetByHash(ctx context.Context, hash string) (*entity.Order, error)
}

type orderRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewOrderRepository(db *sql.DB, logger *slog.Logger) OrderRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderRepository{db: db, logger: logger}
}

const orderColumns = `id, order_number, product, quantity, unit, due_date,
	retailer_name, retailer_email, retailer_address, raw_text, email_hash,
	duplicate_flag, confidence_score, priority_level, order_status,
	source_of_order, remarks, client_email_subject, created_at, processed_at`

func (r *orderRepository) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM purchase_orders WHERE email_hash = $1`, hash).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		r.logger.Error("duplicate check failed", "email_hash", hash, "error", err)
		return false, common.NewAppError("DB_ERROR", "duplicate check failed", err)
	default:
		return true, nil
	}
}

func (r *orderRepository) Create(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.ProcessedAt = now
	if o.OrderNumber == "" {
		o.OrderNumber = fmt.Sprintf("PO-%d", now.UnixNano())
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO purchase_orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		o.ID.String(), o.OrderNumber, o.Product, o.Quantity, o.Unit, o.DueDate,
		o.RetailerName, o.RetailerEmail, o.RetailerAddress, o.RawText, o.EmailHash,
		o.DuplicateFlag, o.ConfidenceScore, string(o.PriorityLevel), string(o.OrderStatus),
		o.SourceOfOrder, o.Remarks, o.EmailSubject, o.CreatedAt, o.ProcessedAt)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn("order already persisted", "email_hash", o.EmailHash)
			return nil, common.NewAppError("DUPLICATE_ORDER", "fingerprint already persisted", common.ErrDuplicate)
		}
		r.logger.Error("order insert failed", "email_hash", o.EmailHash, "error", err)
		return nil, common.NewAppError("DB_ERROR", "order insert failed", err)
	}

	r.logger.Info("order persisted",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"status", o.OrderStatus,
		"confidence", o.ConfidenceScore,
	)
	return o, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, from, to *time.Time) ([]*entity.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM purchase_orders`
	var (
		conds []string
		args  []any
	)
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.logger.Error("failed to list orders", "error", err)
		return nil, common.NewAppError("DB_ERROR", "listing orders failed", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *orderRepository) GetByHash(ctx context.Context, hash string) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM purchase_orders WHERE email_hash = $1`, hash)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return o, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	var (
		o        entity.Order
		id       string
		priority string
		status   string
	)
	err := row.Scan(&id, &o.OrderNumber, &o.Product, &o.Quantity, &o.Unit, &o.DueDate,
		&o.RetailerName, &o.RetailerEmail, &o.RetailerAddress, &o.RawText, &o.EmailHash,
		&o.DuplicateFlag, &o.ConfidenceScore, &priority, &status, &o.SourceOfOrder,
		&o.Remarks, &o.EmailSubject, &o.CreatedAt, &o.ProcessedAt)
	if err != nil {
		return nil, err
	}
	o.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	o.PriorityLevel = constants.PriorityLevel(priority)
	o.OrderStatus = constants.OrderStatus(status)
	return &o, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// modernc.org/sqlite reports constraint violations in the error text
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
