package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CheckoutsCompleted counts checkouts where every line committed and the
	// basket was cleared
	CheckoutsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ufund_checkouts_completed_total",
		Help: "Number of fully committed checkouts.",
	})

	// CheckoutsIncomplete counts checkouts where at least one line failed and
	// the basket was left intact
	CheckoutsIncomplete = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ufund_checkouts_incomplete_total",
		Help: "Number of checkouts with at least one failed line.",
	})

	// CheckoutLinesApplied counts basket lines converted into fulfillment
	// progress and ledger entries
	CheckoutLinesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ufund_checkout_lines_applied_total",
		Help: "Number of checkout lines committed.",
	})

	// CheckoutLinesFailed counts basket lines that exhausted their retries
	CheckoutLinesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ufund_checkout_lines_failed_total",
		Help: "Number of checkout lines that failed after retries.",
	})

	// DroppedLines counts basket lines discarded because their need no
	// longer resolves against the catalog
	DroppedLines = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ufund_basket_dropped_lines_total",
		Help: "Number of basket lines dropped due to deleted needs.",
	})
)

// Handler returns the HTTP handler exposing the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
