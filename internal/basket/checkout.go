package basket

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/ufund-io/ufund-v2/internal/domain"
	"github.com/ufund-io/ufund-v2/internal/events"
	"github.com/ufund-io/ufund-v2/internal/logger"
	"github.com/ufund-io/ufund-v2/internal/metrics"
)

// CheckoutConfig tunes the checkout commit machinery
type CheckoutConfig struct {
	// Workers is the size of the per-checkout worker pool
	Workers int
	// CallTimeout bounds each collaborator call
	CallTimeout time.Duration
	// RetryInitialInterval is the first retry backoff delay
	RetryInitialInterval time.Duration
	// RetryMaxInterval caps the retry backoff delay
	RetryMaxInterval time.Duration
	// RetryMaxElapsed is the total retry time limit per operation
	RetryMaxElapsed time.Duration
}

// LineOutcome reports what happened to a single basket line during checkout.
type LineOutcome struct {
	NeedID   int64 `json:"needId"`
	Quantity int64 `json:"quantity"`
	// Fulfilled is set when the need's fulfillment increment committed
	Fulfilled bool `json:"fulfilled"`
	// Recorded is set when the profile ledger addition committed
	Recorded bool `json:"recorded"`
	// Error carries the last failure when either operation did not commit
	Error string `json:"error,omitempty"`
}

// Committed reports whether both side effects of the line went through.
func (o LineOutcome) Committed() bool {
	return o.Fulfilled && o.Recorded
}

// CheckoutResult is the full outcome of one checkout attempt.
type CheckoutResult struct {
	AttemptID string `json:"attemptId"`
	// Completed is set when every line committed and the basket was cleared
	Completed bool          `json:"completed"`
	Lines     []LineOutcome `json:"lines"`
	// Basket is the post-checkout view, freshly loaded from the store
	Basket *Snapshot `json:"basket"`
}

// Coordinator drives checkout: it converts resolved basket lines into
// fulfillment progress and ledger entries, then clears the basket. Every
// attempt carries a ULID idempotency key, so retried operations never
// double-apply. The basket is cleared only after every line committed.
type Coordinator struct {
	catalog    NeedCatalog
	ledger     ProfileLedger
	baskets    BasketStore
	reconciler *Reconciler
	publisher  events.Publisher
	config     CheckoutConfig
}

// NewCoordinator creates a checkout coordinator.
func NewCoordinator(
	catalog NeedCatalog,
	ledger ProfileLedger,
	baskets BasketStore,
	reconciler *Reconciler,
	publisher events.Publisher,
	config CheckoutConfig,
) *Coordinator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.CallTimeout == 0 {
		config.CallTimeout = 10 * time.Second
	}
	if config.RetryInitialInterval == 0 {
		config.RetryInitialInterval = 200 * time.Millisecond
	}
	if config.RetryMaxInterval == 0 {
		config.RetryMaxInterval = 5 * time.Second
	}
	if config.RetryMaxElapsed == 0 {
		config.RetryMaxElapsed = 15 * time.Second
	}

	return &Coordinator{
		catalog:    catalog,
		ledger:     ledger,
		baskets:    baskets,
		reconciler: reconciler,
		publisher:  publisher,
		config:     config,
	}
}

// Checkout commits the current basket contents for the given helper.
//
// Lines are committed concurrently and independently: one line's failure
// never blocks another line. When every line committed, the stored basket is
// cleared, the local view reset and reloaded, and a completion event
// published. When any line failed, the committed lines are removed from the
// basket and the failed ones kept, so a retried checkout only re-runs the
// failed work; the per-line outcomes report exactly what happened.
func (c *Coordinator) Checkout(ctx context.Context, userName string, basketID int64) (*CheckoutResult, error) {
	snapshot, err := c.reconciler.Load(ctx, basketID)
	if err != nil {
		return nil, err
	}

	attemptID := ulid.MustNewDefault(time.Now()).String()
	result := &CheckoutResult{
		AttemptID: attemptID,
		Lines:     make([]LineOutcome, len(snapshot.Lines)),
	}

	logger.InfoCtx(ctx, "Starting checkout",
		zap.String("attempt_id", attemptID),
		zap.String("user_name", userName),
		zap.Int64("basket_id", basketID),
		zap.Int("lines", len(snapshot.Lines)),
	)

	if len(snapshot.Lines) == 0 {
		result.Completed = true
		result.Basket = snapshot
		return result, nil
	}

	pool := pond.NewPool(c.config.Workers, pond.WithContext(ctx))
	for i, line := range snapshot.Lines {
		pool.Submit(func() {
			result.Lines[i] = c.commitLine(ctx, attemptID, userName, line)
		})
	}
	pool.StopAndWait()

	completed := true
	for _, outcome := range result.Lines {
		if outcome.Committed() {
			metrics.CheckoutLinesApplied.Inc()
			c.publish(ctx, &events.Event{
				ID:        uuid.NewString(),
				Type:      events.TypeNeedFulfilled,
				AttemptID: attemptID,
				UserName:  userName,
				BasketID:  basketID,
				NeedID:    outcome.NeedID,
				Quantity:  outcome.Quantity,
				Timestamp: time.Now().UTC(),
			})
		} else {
			metrics.CheckoutLinesFailed.Inc()
			completed = false
		}
	}

	if !completed {
		metrics.CheckoutsIncomplete.Inc()
		logger.WarnCtx(ctx, "Checkout left incomplete",
			zap.String("attempt_id", attemptID),
			zap.Int64("basket_id", basketID),
		)
		// Committed lines come out of the basket so a retried checkout only
		// re-runs the failed ones; the rest stay for the retry
		for _, outcome := range result.Lines {
			if !outcome.Committed() {
				continue
			}
			if err := c.baskets.DeleteBasketLine(ctx, basketID, outcome.NeedID); err != nil {
				logger.WarnCtx(ctx, "Failed to remove committed line from basket",
					zap.String("attempt_id", attemptID),
					zap.Int64("basket_id", basketID),
					zap.Int64("need_id", outcome.NeedID),
					zap.Error(err),
				)
			}
		}
		c.reconciler.Reset(basketID)
		result.Basket, err = c.reconciler.Load(ctx, basketID)
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := c.baskets.ClearBasket(ctx, basketID); err != nil {
		return nil, err
	}
	c.reconciler.Reset(basketID)

	result.Basket, err = c.reconciler.Load(ctx, basketID)
	if err != nil {
		return nil, err
	}
	result.Completed = true

	c.publish(ctx, &events.Event{
		ID:        uuid.NewString(),
		Type:      events.TypeCheckoutCompleted,
		AttemptID: attemptID,
		UserName:  userName,
		BasketID:  basketID,
		Timestamp: time.Now().UTC(),
	})
	metrics.CheckoutsCompleted.Inc()

	logger.InfoCtx(ctx, "Checkout completed",
		zap.String("attempt_id", attemptID),
		zap.Int64("basket_id", basketID),
	)
	return result, nil
}

// commitLine applies both side effects of one line. The two operations are
// independent: a fulfillment failure does not stop the ledger addition.
func (c *Coordinator) commitLine(ctx context.Context, attemptID string, userName string, line domain.ResolvedLine) LineOutcome {
	outcome := LineOutcome{NeedID: line.Need.ID, Quantity: line.Quantity}

	err := c.withRetry(ctx, "increment fulfilled", func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
		defer cancel()
		_, err := c.catalog.IncrementFulfilled(callCtx, attemptID, userName, line.Need.ID, line.Quantity)
		return err
	})
	if err != nil {
		outcome.Error = err.Error()
	} else {
		outcome.Fulfilled = true
	}

	err = c.withRetry(ctx, "add contribution", func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
		defer cancel()
		return c.ledger.AddContribution(callCtx, attemptID, userName, line.Need.ID, line.Quantity)
	})
	if err != nil {
		outcome.Error = err.Error()
	} else {
		outcome.Recorded = true
	}

	return outcome
}

// withRetry runs the operation with exponential backoff until it succeeds or
// the elapsed retry time is exhausted.
func (c *Coordinator) withRetry(ctx context.Context, name string, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.RetryInitialInterval
	b.MaxInterval = c.config.RetryMaxInterval
	b.MaxElapsedTime = c.config.RetryMaxElapsed
	b.RandomizationFactor = 0.5 // jitter to avoid bursty retries

	backoffWithContext := backoff.WithContext(b, ctx)

	notifyOnError := func(err error, duration time.Duration) {
		logger.WarnCtx(ctx, "Checkout operation failed, retrying",
			zap.String("operation", name),
			zap.Error(err),
			zap.Duration("next_retry_in", duration),
		)
	}

	return backoff.RetryNotify(operation, backoffWithContext, notifyOnError)
}

// publish sends an event when a broker is configured. Publish failures are
// logged, never surfaced: events are an observability feature, not part of
// the checkout contract.
func (c *Coordinator) publish(ctx context.Context, event *events.Event) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to publish event"),
			zap.String("event_type", event.Type),
		)
	}
}
