package basket

import (
	"context"

	"github.com/ufund-io/ufund-v2/internal/store/schema"
)

// NeedCatalog is the slice of the catalog the basket subsystem depends on.
//
//go:generate mockgen -source=clients.go -destination=../mocks/basket_clients.go -package=mocks
type NeedCatalog interface {
	// GetNeedByID retrieves a need, nil when it does not exist
	GetNeedByID(ctx context.Context, needID int64) (*schema.Need, error)
	// GetNeedsByIDs retrieves multiple needs in one batched lookup
	GetNeedsByIDs(ctx context.Context, needIDs []int64) ([]*schema.Need, error)
	// IncrementFulfilled atomically increases a need's fulfilled quantity,
	// idempotent per attemptID
	IncrementFulfilled(ctx context.Context, attemptID string, userName string, needID int64, quantity int64) (*schema.Need, error)
}

// ProfileLedger records cumulative contributions on helper profiles.
type ProfileLedger interface {
	// AddContribution adds quantity to the helper's ledger entry for a need,
	// idempotent per attemptID
	AddContribution(ctx context.Context, attemptID string, userName string, needID int64, quantity int64) error
}

// BasketStore is the persistent backing for basket contents.
type BasketStore interface {
	// GetBasketOwner returns the user name owning the basket
	GetBasketOwner(ctx context.Context, basketID int64) (string, error)
	// GetBasketLines returns the raw need ID to quantity map
	GetBasketLines(ctx context.Context, basketID int64) (map[int64]int64, error)
	// UpsertBasketLine adds quantity to a line, creating it when absent
	UpsertBasketLine(ctx context.Context, basketID int64, needID int64, quantity int64) (int64, error)
	// AddBasketLineQuantity atomically applies a delta to an existing line
	AddBasketLineQuantity(ctx context.Context, basketID int64, needID int64, delta int64) (int64, error)
	// DeleteBasketLine removes a line, a no-op when the line is absent
	DeleteBasketLine(ctx context.Context, basketID int64, needID int64) error
	// ClearBasket removes every line from the basket
	ClearBasket(ctx context.Context, basketID int64) error
}
