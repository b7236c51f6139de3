// Package pipeline sequences extraction, validation, scoring, classification,
// and the status decision for each fetched email, and hands the surviving
// records to the order repository. Documents in a batch are processed
// strictly in order so a duplicate produced early in the batch is visible to
// the duplicate check of a later one.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/adewale-s/po-intake/constants"
	"github.com/adewale-s/po-intake/internal/classify"
	"github.com/adewale-s/po-intake/internal/common"
	"github.com/adewale-s/po-intake/internal/dedupe"
	"github.com/adewale-s/po-intake/internal/entity"
	"github.com/adewale-s/po-intake/internal/extract"
	"github.com/adewale-s/po-intake/internal/mailsrc"
	"github.com/adewale-s/po-intake/internal/repository"
	"github.com/adewale-s/po-intake/internal/score"
	"github.com/adewale-s/po-intake/internal/validate"
)

// Result is what one batch run reports. The split exists so callers can tell
// "nothing new" from "all duplicates" from "everything failed".
type Result struct {
	Added   int
	Skipped int
	Failed  int
}

type Pipeline struct {
	Source    mailsrc.Source
	Orders    repository.OrderRepository
	Extractor *extract.Extractor
	Log       *slog.Logger

	orderSchema map[string]any
}

func New(src mailsrc.Source, orders repository.OrderRepository, ex *extract.Extractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		Source:      src,
		Orders:      orders,
		Extractor:   ex,
		Log:         log,
		orderSchema: extract.BuildOrderJSONSchema(),
	}
}

// Run fetches a batch and processes it. A transport or duplicate-check
// failure aborts the whole batch; a single document failing to persist does
// not.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	var res Result

	msgs, err := p.Source.Fetch(ctx)
	if err != nil {
		p.Log.Error("mail fetch failed", "error", err)
		return res, common.WrapError(err, "fetching mail batch")
	}
	if len(msgs) == 0 {
		p.Log.Info("no new messages")
		return res, nil
	}

	for _, msg := range msgs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		added, err := p.processOne(ctx, msg, &res)
		if err != nil {
			// fatal: repository unreachable. "Assume not duplicate" would
			// double-process, so the batch stops here.
			return res, err
		}
		if added {
			res.Added++
		}
	}

	p.Log.Info("batch complete", "added", res.Added, "skipped", res.Skipped, "failed", res.Failed)
	return res, nil
}

func (p *Pipeline) processOne(ctx context.Context, msg mailsrc.Message, res *Result) (bool, error) {
	hash := dedupe.Fingerprint(msg.Subject, msg.Body)
	log := p.Log.With("email_hash", hash[:12], "subject", msg.Subject)

	exists, err := p.Orders.ExistsByHash(ctx, hash)
	if err != nil {
		return false, err
	}
	if exists {
		log.Info("duplicate message, skipping")
		duplicatesSkipped.Inc()
		res.Skipped++
		return false, nil
	}

	fields := p.Extractor.Extract(msg.Body, msg.Subject)
	checked := validate.Check(fields)
	confidence := score.Confidence(fields)
	status := score.Status(confidence)
	priority := classify.Priority(msg.Subject + " " + msg.Body)

	order := &entity.Order{
		Product:         fields.Product,
		Quantity:        fields.Quantity,
		Unit:            fields.Unit,
		DueDate:         fields.DueDate,
		RetailerName:    fields.RetailerName,
		RetailerEmail:   fields.RetailerEmail,
		RetailerAddress: fields.RetailerAddress,
		RawText:         msg.Body,
		EmailHash:       hash,
		ConfidenceScore: confidence,
		PriorityLevel:   priority,
		OrderStatus:     status,
		SourceOfOrder:   constants.SourceEmail,
		EmailSubject:    msg.Subject,
	}
	if len(checked.Issues) > 0 {
		remarks := strings.Join(checked.Issues, ", ")
		order.Remarks = &remarks
	}

	created, err := p.Orders.Create(ctx, order)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			// lost the race to another writer; same outcome as the pre-check
			log.Info("fingerprint inserted concurrently, skipping")
			duplicatesSkipped.Inc()
			res.Skipped++
			return false, nil
		}
		log.Error("persist failed, dropping document", "error", err)
		documentsFailed.Inc()
		res.Failed++
		return false, nil
	}

	// gate the persisted record: the repository has assigned the id, order
	// number, and timestamps by now, so the full shape is checkable
	p.schemaGate(created, log)

	ordersProcessed.WithLabelValues(string(status)).Inc()
	log.Info("order recorded",
		"status", status,
		"priority", priority,
		"confidence", confidence,
	)
	return true, nil
}

// schemaGate checks the persisted record against the order JSON schema.
// A mismatch is a bug in assembly, not in the email, so it is logged loudly
// but does not drop the document.
func (p *Pipeline) schemaGate(order *entity.Order, log *slog.Logger) {
	b, err := json.Marshal(order)
	if err != nil {
		log.Error("order marshal failed", "error", err)
		return
	}
	if err := extract.ValidateJSONAgainstSchema(p.orderSchema, b); err != nil {
		log.Error("order record failed schema check", "error", err)
	}
}
