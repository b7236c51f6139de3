package repository

import (
	"context"
	"database/sql"

	"github.com/adewale-s/po-intake/internal/common"
)

// ordersDDL is kept to types that mean the same thing on Postgres and
// SQLite. The unique index on email_hash is what makes the
// check-then-insert duplicate guard safe: the database, not the pipeline,
// is the arbiter of uniqueness.
const ordersDDL = `
CREATE TABLE IF NOT EXISTS purchase_orders (
	id                   TEXT PRIMARY KEY,
	order_number         TEXT NOT NULL UNIQUE,
	product              TEXT,
	quantity             TEXT,
	unit                 TEXT,
	due_date             TEXT,
	retailer_name        TEXT,
	retailer_email       TEXT,
	retailer_address     TEXT,
	raw_text             TEXT NOT NULL,
	email_hash           TEXT NOT NULL UNIQUE,
	duplicate_flag       BOOLEAN NOT NULL DEFAULT FALSE,
	confidence_score     REAL NOT NULL,
	priority_level       TEXT NOT NULL,
	order_status         TEXT NOT NULL,
	source_of_order      TEXT NOT NULL DEFAULT 'Email',
	remarks              TEXT,
	client_email_subject TEXT,
	created_at           TIMESTAMP NOT NULL,
	processed_at         TIMESTAMP NOT NULL
)`

const ordersStatusIdxDDL = `
CREATE INDEX IF NOT EXISTS idx_purchase_orders_status ON purchase_orders (order_status)`

// Migrate creates the purchase_orders table when missing. Statements run one
// at a time; pgx's extended protocol rejects multi-statement exec.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{ordersDDL, ordersStatusIdxDDL} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return common.WrapError(err, "applying purchase_orders schema")
		}
	}
	return nil
}
