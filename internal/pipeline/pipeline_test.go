package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewale-s/po-intake/constants"
	"github.com/adewale-s/po-intake/internal/entity"
	"github.com/adewale-s/po-intake/internal/extract"
	"github.com/adewale-s/po-intake/internal/mailsrc"
	"github.com/adewale-s/po-intake/internal/repository"
)

// sliceSource feeds a fixed batch; it stands in for a mailbox.
type sliceSource struct {
	msgs []mailsrc.Message
	err  error
}

func (s sliceSource) Fetch(context.Context) ([]mailsrc.Message, error) {
	return s.msgs, s.err
}

func newTestPipeline(t *testing.T, src mailsrc.Source) (*Pipeline, repository.OrderRepository) {
	t.Helper()
	ctx := context.Background()

	db, cleanup, err := repository.Open(ctx,
		repository.Config{DSN: filepath.Join(t.TempDir(), "orders.db")}, nil)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	require.NoError(t, repository.Migrate(ctx, db))

	orders := repository.NewOrderRepository(db, nil)
	ex := extract.New(nil, 2, nil)
	ex.Now = func() time.Time { return time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC) }
	return New(src, orders, ex, nil), orders
}

var labeledMsg = mailsrc.Message{
	Subject: "Purchase order",
	Body: `Product: Dell XPS 13 Laptop
Quantity: 10
Due Date: 14/11/2025
Retailer Name: TechWorld Supplies
Email: purchase@techworld.example
Address: 12 Park Street, Kolkata`,
}

var junkMsg = mailsrc.Message{
	Subject: "hello",
	Body:    "hi team, please check the attached file.",
}

func TestRunPersistsDecidedOrders(t *testing.T) {
	p, orders := newTestPipeline(t, sliceSource{msgs: []mailsrc.Message{labeledMsg, junkMsg}})
	ctx := context.Background()

	res, err := p.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 2}, res)

	list, err := orders.ListOrders(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)

	var approved, rejected *entity.Order
	for _, o := range list {
		switch o.OrderStatus {
		case constants.StatusApproved:
			approved = o
		case constants.StatusRejected:
			rejected = o
		}
	}

	require.NotNil(t, approved, "complete email should be approved")
	assert.Equal(t, 100.0, approved.ConfidenceScore)
	assert.Equal(t, constants.PriorityNormal, approved.PriorityLevel)
	assert.Equal(t, constants.SourceEmail, approved.SourceOfOrder)
	require.NotNil(t, approved.DueDate)
	assert.Equal(t, "2025-11-14", *approved.DueDate)
	// unit is never extracted from free text, so every record carries the
	// missing-unit remark
	require.NotNil(t, approved.Remarks)
	assert.Contains(t, *approved.Remarks, "missing-unit")

	require.NotNil(t, rejected, "junk email should be rejected")
	assert.Equal(t, 0.0, rejected.ConfidenceScore)
	require.NotNil(t, rejected.Remarks)
	assert.Contains(t, *rejected.Remarks, "missing-quantity")
}

func TestRunIsIdempotent(t *testing.T) {
	src := sliceSource{msgs: []mailsrc.Message{labeledMsg}}
	p, orders := newTestPipeline(t, src)
	ctx := context.Background()

	first, err := p.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 1}, first)

	second, err := p.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 1}, second)

	list, err := orders.ListOrders(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRunDuplicateWithinBatch(t *testing.T) {
	p, orders := newTestPipeline(t, sliceSource{msgs: []mailsrc.Message{labeledMsg, labeledMsg}})
	ctx := context.Background()

	res, err := p.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 1, Skipped: 1}, res)

	list, err := orders.ListOrders(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRunSchemaGateAcceptsPersistedRecords(t *testing.T) {
	// the gate must see the record after the repository assigns the order
	// number, id, and timestamps; healthy traffic logs no schema errors
	p, _ := newTestPipeline(t, sliceSource{msgs: []mailsrc.Message{labeledMsg, junkMsg}})

	var buf bytes.Buffer
	p.Log = slog.New(slog.NewTextHandler(&buf, nil))

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Added: 2}, res)
	assert.NotContains(t, buf.String(), "failed schema check")
	assert.NotContains(t, buf.String(), "level=ERROR")
}

func TestRunFetchErrorIsFatal(t *testing.T) {
	p, _ := newTestPipeline(t, sliceSource{err: errors.New("mailbox unreachable")})

	res, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, Result{}, res)
}

func TestRunEmptyBatch(t *testing.T) {
	p, _ := newTestPipeline(t, sliceSource{})

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

// failingRepo simulates a repository whose duplicate check cannot be trusted.
type failingRepo struct {
	repository.OrderRepository
	existsErr error
	createErr error
}

func (f failingRepo) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.OrderRepository.ExistsByHash(ctx, hash)
}

func (f failingRepo) Create(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.OrderRepository.Create(ctx, o)
}

func TestRunDuplicateCheckErrorAbortsBatch(t *testing.T) {
	p, orders := newTestPipeline(t, sliceSource{msgs: []mailsrc.Message{labeledMsg, junkMsg}})
	p.Orders = failingRepo{OrderRepository: orders, existsErr: errors.New("db down")}

	res, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, Result{}, res)
}

func TestRunPersistFailureDropsOnlyThatDocument(t *testing.T) {
	p, orders := newTestPipeline(t, sliceSource{msgs: []mailsrc.Message{labeledMsg, junkMsg}})
	p.Orders = failingRepo{OrderRepository: orders, createErr: errors.New("disk full")}

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Failed: 2}, res)
}
