package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "po_intake_orders_processed_total",
		Help: "Orders persisted, by decided status.",
	}, []string{"status"})

	duplicatesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "po_intake_duplicates_skipped_total",
		Help: "Messages skipped because their fingerprint was already stored.",
	})

	documentsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "po_intake_documents_failed_total",
		Help: "Documents dropped after a persistence failure.",
	})
)
