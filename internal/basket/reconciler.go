package basket

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ufund-io/ufund-v2/internal/domain"
	"github.com/ufund-io/ufund-v2/internal/logger"
	"github.com/ufund-io/ufund-v2/internal/metrics"
)

// Snapshot is the resolved view of one basket at a point in time.
type Snapshot struct {
	// BasketID identifies the basket
	BasketID int64 `json:"basketId"`
	// Lines are the catalog-resolved basket lines, ordered by need ID
	Lines []domain.ResolvedLine `json:"lines"`
	// Dropped lists need IDs that were in the basket but no longer resolve
	// against the catalog. They are purged from the stored basket on load.
	Dropped []int64 `json:"dropped,omitempty"`
	// Total is the sum of price times quantity over the resolved lines
	Total domain.Money `json:"total"`
}

// Reconciler keeps the resolved view of baskets consistent with the need
// catalog and the stored basket lines. All mutations of the same basket are
// serialized on a per-basket lock, so concurrent adjustments never interleave
// into lost updates.
type Reconciler struct {
	catalog NeedCatalog
	baskets BasketStore

	mu     sync.Mutex
	locks  map[int64]*sync.Mutex
	cached map[int64]*Snapshot
}

// NewReconciler creates a basket reconciler.
func NewReconciler(catalog NeedCatalog, baskets BasketStore) *Reconciler {
	return &Reconciler{
		catalog: catalog,
		baskets: baskets,
		locks:   map[int64]*sync.Mutex{},
		cached:  map[int64]*Snapshot{},
	}
}

// lock acquires the per-basket mutex and returns the unlock function.
func (r *Reconciler) lock(basketID int64) func() {
	r.mu.Lock()
	m, ok := r.locks[basketID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[basketID] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Load fetches the stored lines for a basket, resolves them against the
// catalog in one batched lookup and recomputes the total. Lines whose need
// was deleted are dropped from the stored basket and reported on the
// snapshot rather than surfaced as an error. An empty or absent stored
// basket yields an empty snapshot, not an error.
func (r *Reconciler) Load(ctx context.Context, basketID int64) (*Snapshot, error) {
	defer r.lock(basketID)()
	return r.refresh(ctx, basketID)
}

// refresh rebuilds and caches the snapshot. Callers must hold the basket lock.
func (r *Reconciler) refresh(ctx context.Context, basketID int64) (*Snapshot, error) {
	raw, err := r.baskets.GetBasketLines(ctx, basketID)
	if err != nil {
		// An absent remote basket reads as empty, not as a failure
		if errors.Is(err, domain.ErrBasketNotFound) {
			raw = map[int64]int64{}
		} else {
			return nil, err
		}
	}

	needIDs := make([]int64, 0, len(raw))
	for needID := range raw {
		needIDs = append(needIDs, needID)
	}

	needs, err := r.catalog.GetNeedsByIDs(ctx, needIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve basket needs: %w", err)
	}

	resolved, dropped := ResolveLines(raw, needs)
	for _, needID := range dropped {
		logger.WarnCtx(ctx, "Dropping basket line for deleted need",
			zap.Int64("basket_id", basketID),
			zap.Int64("need_id", needID),
		)
		metrics.DroppedLines.Inc()
		if err := r.baskets.DeleteBasketLine(ctx, basketID, needID); err != nil {
			return nil, fmt.Errorf("failed to drop stale basket line: %w", err)
		}
	}

	snapshot := &Snapshot{
		BasketID: basketID,
		Lines:    resolved,
		Dropped:  dropped,
		Total:    ComputeTotal(resolved),
	}
	r.mu.Lock()
	r.cached[basketID] = snapshot
	r.mu.Unlock()
	return snapshot, nil
}

// AddLine puts quantity units of a need into the basket, folding into an
// existing line when the need is already present. The quantity must be
// positive and must not exceed the need's remaining capacity.
func (r *Reconciler) AddLine(ctx context.Context, basketID int64, needID int64, quantity int64) (*Snapshot, error) {
	defer r.lock(basketID)()

	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	need, err := r.catalog.GetNeedByID(ctx, needID)
	if err != nil {
		return nil, err
	}
	if need == nil {
		return nil, domain.ErrNeedNotFound
	}

	remaining := need.QuantityNeeded - need.QuantityFulfilled
	if quantity > remaining {
		return nil, domain.ErrInvalidQuantity
	}

	if _, err := r.baskets.UpsertBasketLine(ctx, basketID, needID, quantity); err != nil {
		return nil, err
	}

	return r.refresh(ctx, basketID)
}

// AdjustLine applies a delta to an existing line. A resulting quantity below
// 1 removes the line, like RemoveLine. Adjusting an absent line is an error.
func (r *Reconciler) AdjustLine(ctx context.Context, basketID int64, needID int64, delta int64) (*Snapshot, error) {
	defer r.lock(basketID)()

	if _, err := r.baskets.AddBasketLineQuantity(ctx, basketID, needID, delta); err != nil {
		return nil, err
	}

	return r.refresh(ctx, basketID)
}

// RemoveLine deletes a line from the basket. Removing an absent line is a
// no-op, not an error.
func (r *Reconciler) RemoveLine(ctx context.Context, basketID int64, needID int64) (*Snapshot, error) {
	defer r.lock(basketID)()

	if err := r.baskets.DeleteBasketLine(ctx, basketID, needID); err != nil {
		return nil, err
	}

	return r.refresh(ctx, basketID)
}

// TotalPrice returns the total of the last loaded snapshot without touching
// the store or the catalog. Baskets never loaded total to zero.
func (r *Reconciler) TotalPrice(basketID int64) domain.Money {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.cached[basketID]; ok {
		return s.Total
	}
	return 0
}

// Reset discards the cached view of a basket, setting it back to empty.
func (r *Reconciler) Reset(basketID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached[basketID] = &Snapshot{BasketID: basketID}
}
