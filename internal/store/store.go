package store

import (
	"context"

	"github.com/ufund-io/ufund-v2/internal/store/schema"
)

// Store defines the interface for database operations
type Store interface {
	// CreateNeed inserts a new need into the catalog
	CreateNeed(ctx context.Context, need *schema.Need) error
	// GetNeedByID retrieves a need by its ID
	GetNeedByID(ctx context.Context, needID int64) (*schema.Need, error)
	// GetNeedsByIDs retrieves multiple needs in one query
	GetNeedsByIDs(ctx context.Context, needIDs []int64) ([]*schema.Need, error)
	// ListNeeds retrieves all needs, optionally filtered by a name substring
	ListNeeds(ctx context.Context, nameFilter string) ([]*schema.Need, error)
	// UpdateNeed replaces the mutable fields of an existing need
	UpdateNeed(ctx context.Context, need *schema.Need) error
	// DeleteNeed removes a need from the catalog
	DeleteNeed(ctx context.Context, needID int64) error
	// IncrementFulfilled atomically increases a need's fulfilled quantity.
	// The attemptID makes the increment idempotent: replaying the same
	// attempt is a no-op. The updated need is returned either way.
	IncrementFulfilled(ctx context.Context, attemptID string, userName string, needID int64, quantity int64) (*schema.Need, error)

	// GetBasketByID retrieves a basket by its ID
	GetBasketByID(ctx context.Context, basketID int64) (*schema.Basket, error)
	// GetBasketByUserName retrieves a helper's basket
	GetBasketByUserName(ctx context.Context, userName string) (*schema.Basket, error)
	// GetBasketOwner returns the user name owning the given basket
	GetBasketOwner(ctx context.Context, basketID int64) (string, error)
	// GetBasketLines returns the basket's lines as a need ID to quantity map
	GetBasketLines(ctx context.Context, basketID int64) (map[int64]int64, error)
	// UpsertBasketLine adds quantity to a basket line, creating the line if
	// the need is not yet in the basket. Returns the resulting quantity.
	UpsertBasketLine(ctx context.Context, basketID int64, needID int64, quantity int64) (int64, error)
	// AddBasketLineQuantity atomically applies a delta to an existing line.
	// When the resulting quantity would drop below 1 the line is removed.
	// Returns the resulting quantity, 0 when the line was removed.
	AddBasketLineQuantity(ctx context.Context, basketID int64, needID int64, delta int64) (int64, error)
	// DeleteBasketLine removes a line from the basket. Removing a line that
	// does not exist is not an error.
	DeleteBasketLine(ctx context.Context, basketID int64, needID int64) error
	// ClearBasket removes every line from the basket
	ClearBasket(ctx context.Context, basketID int64) error

	// CreateProfile creates a helper profile together with its basket
	CreateProfile(ctx context.Context, profile *schema.Profile) (*schema.Basket, error)
	// GetProfile retrieves a profile with its contributions
	GetProfile(ctx context.Context, userName string) (*schema.Profile, error)
	// ListProfiles retrieves all profiles, excluding private ones unless
	// includePrivate is set
	ListProfiles(ctx context.Context, includePrivate bool) ([]*schema.Profile, error)
	// UpdateProfile replaces the mutable fields of an existing profile
	UpdateProfile(ctx context.Context, profile *schema.Profile) error
	// SetProfilePrivacy toggles whether the profile is publicly listed
	SetProfilePrivacy(ctx context.Context, userName string, private bool) error
	// DeleteProfile removes a profile, its contributions and its basket
	DeleteProfile(ctx context.Context, userName string) error
	// AddContribution adds quantity to a helper's cumulative contribution
	// toward a need. Idempotent per attemptID like IncrementFulfilled.
	AddContribution(ctx context.Context, attemptID string, userName string, needID int64, quantity int64) error
}
