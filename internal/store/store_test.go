package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/ufund-io/ufund-v2/internal/domain"
	"github.com/ufund-io/ufund-v2/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestNeed creates a need ready for insertion
func buildTestNeed(name string) *schema.Need {
	return &schema.Need{
		Name:           name,
		Type:           domain.NeedTypeGoods,
		Description:    "ten kilogram bags of rice",
		PriceCents:     1250,
		QuantityNeeded: 10,
		Urgency:        domain.UrgencyLow,
		Images:         datatypes.JSON([]byte(`["assets/images/blank.jpg"]`)),
	}
}

// buildTestProfile creates a profile ready for insertion
func buildTestProfile(userName string) *schema.Profile {
	return &schema.Profile{
		UserName:  userName,
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     userName + "@example.org",
		Country:   "NL",
	}
}

// createTestHelper creates a profile and returns its basket
func createTestHelper(t *testing.T, store Store, userName string) *schema.Basket {
	t.Helper()
	basket, err := store.CreateProfile(context.Background(), buildTestProfile(userName))
	require.NoError(t, err)
	require.NotNil(t, basket)
	return basket
}

// =============================================================================
// Need catalog
// =============================================================================

func testCreateAndGetNeed(t *testing.T, store Store) {
	ctx := context.Background()

	need := buildTestNeed("rice")
	require.NoError(t, store.CreateNeed(ctx, need))
	assert.NotZero(t, need.ID)

	got, err := store.GetNeedByID(ctx, need.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "rice", got.Name)
	assert.Equal(t, domain.NeedTypeGoods, got.Type)
	assert.Equal(t, int64(1250), got.PriceCents)
	assert.Equal(t, int64(10), got.QuantityNeeded)
	assert.Equal(t, int64(0), got.QuantityFulfilled)

	// Duplicate names are rejected
	err = store.CreateNeed(ctx, buildTestNeed("rice"))
	assert.ErrorIs(t, err, domain.ErrNeedExists)

	// Missing needs resolve to nil without an error
	got, err = store.GetNeedByID(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testGetNeedsByIDs(t *testing.T, store Store) {
	ctx := context.Background()

	rice := buildTestNeed("rice")
	beans := buildTestNeed("beans")
	require.NoError(t, store.CreateNeed(ctx, rice))
	require.NoError(t, store.CreateNeed(ctx, beans))

	needs, err := store.GetNeedsByIDs(ctx, []int64{rice.ID, beans.ID, 999999})
	require.NoError(t, err)
	assert.Len(t, needs, 2)

	needs, err = store.GetNeedsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, needs)
}

func testListNeeds(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateNeed(ctx, buildTestNeed("rice")))
	require.NoError(t, store.CreateNeed(ctx, buildTestNeed("brown rice")))
	require.NoError(t, store.CreateNeed(ctx, buildTestNeed("beans")))

	all, err := store.ListNeeds(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := store.ListNeeds(ctx, "RICE")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	none, err := store.ListNeeds(ctx, "tents")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testUpdateNeed(t *testing.T, store Store) {
	ctx := context.Background()

	need := buildTestNeed("rice")
	require.NoError(t, store.CreateNeed(ctx, need))

	need.Name = "rice (25kg)"
	need.PriceCents = 2000
	need.Urgency = domain.UrgencyHigh
	require.NoError(t, store.UpdateNeed(ctx, need))

	got, err := store.GetNeedByID(ctx, need.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "rice (25kg)", got.Name)
	assert.Equal(t, int64(2000), got.PriceCents)
	assert.Equal(t, domain.UrgencyHigh, got.Urgency)

	missing := buildTestNeed("ghost")
	missing.ID = 999999
	assert.ErrorIs(t, store.UpdateNeed(ctx, missing), domain.ErrNeedNotFound)
}

func testDeleteNeed(t *testing.T, store Store) {
	ctx := context.Background()

	need := buildTestNeed("rice")
	require.NoError(t, store.CreateNeed(ctx, need))

	require.NoError(t, store.DeleteNeed(ctx, need.ID))

	got, err := store.GetNeedByID(ctx, need.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, store.DeleteNeed(ctx, need.ID), domain.ErrNeedNotFound)
}

func testIncrementFulfilled(t *testing.T, store Store) {
	ctx := context.Background()

	need := buildTestNeed("rice")
	require.NoError(t, store.CreateNeed(ctx, need))

	updated, err := store.IncrementFulfilled(ctx, "attempt-1", "jo", need.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.QuantityFulfilled)

	// Replaying the same attempt does not double-apply
	updated, err = store.IncrementFulfilled(ctx, "attempt-1", "jo", need.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.QuantityFulfilled)

	// A fresh attempt applies on top
	updated, err = store.IncrementFulfilled(ctx, "attempt-2", "jo", need.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.QuantityFulfilled)

	_, err = store.IncrementFulfilled(ctx, "attempt-3", "jo", 999999, 1)
	assert.ErrorIs(t, err, domain.ErrNeedNotFound)

	// An increment past the remaining capacity is rejected and leaves the
	// fulfilled count untouched
	_, err = store.IncrementFulfilled(ctx, "attempt-4", "jo", need.ID, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	got, err := store.GetNeedByID(ctx, need.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.QuantityFulfilled)

	// Filling exactly to the target is still allowed
	updated, err = store.IncrementFulfilled(ctx, "attempt-5", "jo", need.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.QuantityFulfilled)
}

// =============================================================================
// Baskets
// =============================================================================

func testCreateProfileAndBasket(t *testing.T, store Store) {
	ctx := context.Background()

	basket := createTestHelper(t, store, "jo")
	assert.NotZero(t, basket.ID)
	assert.Equal(t, "jo", basket.UserName)

	_, err := store.CreateProfile(ctx, buildTestProfile("jo"))
	assert.ErrorIs(t, err, domain.ErrProfileExists)

	byUser, err := store.GetBasketByUserName(ctx, "jo")
	require.NoError(t, err)
	require.NotNil(t, byUser)
	assert.Equal(t, basket.ID, byUser.ID)

	byID, err := store.GetBasketByID(ctx, basket.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "jo", byID.UserName)

	owner, err := store.GetBasketOwner(ctx, basket.ID)
	require.NoError(t, err)
	assert.Equal(t, "jo", owner)

	_, err = store.GetBasketOwner(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrBasketNotFound)
}

func testUpsertBasketLine(t *testing.T, store Store) {
	ctx := context.Background()

	basket := createTestHelper(t, store, "jo")
	need := buildTestNeed("rice")
	require.NoError(t, store.CreateNeed(ctx, need))

	qty, err := store.UpsertBasketLine(ctx, basket.ID, need.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), qty)

	// Adding the same need again folds into the existing line
	qty, err = store.UpsertBasketLine(ctx, basket.ID, need.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), qty)

	lines, err := store.GetBasketLines(ctx, basket.ID)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{need.ID: 5}, lines)

	_, err = store.UpsertBasketLine(ctx, basket.ID, need.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = store.UpsertBasketLine(ctx, 999999, need.ID, 1)
	assert.ErrorIs(t, err, domain.ErrBasketNotFound)

	_, err = store.GetBasketLines(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrBasketNotFound)
}

func testAddBasketLineQuantity(t *testing.T, store Store) {
	ctx := context.Background()

	basket := createTestHelper(t, store, "jo")
	need := buildTestNeed("rice")
	require.NoError(t, store.CreateNeed(ctx, need))

	_, err := store.UpsertBasketLine(ctx, basket.ID, need.ID, 2)
	require.NoError(t, err)

	qty, err := store.AddBasketLineQuantity(ctx, basket.ID, need.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), qty)

	qty, err = store.AddBasketLineQuantity(ctx, basket.ID, need.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), qty)

	// Dropping below 1 removes the line entirely
	qty, err = store.AddBasketLineQuantity(ctx, basket.ID, need.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty)

	lines, err := store.GetBasketLines(ctx, basket.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = store.AddBasketLineQuantity(ctx, basket.ID, need.ID, 1)
	assert.ErrorIs(t, err, domain.ErrLineNotFound)
}

func testDeleteBasketLine(t *testing.T, store Store) {
	ctx := context.Background()

	basket := createTestHelper(t, store, "jo")
	need := buildTestNeed("rice")
	require.NoError(t, store.CreateNeed(ctx, need))

	_, err := store.UpsertBasketLine(ctx, basket.ID, need.ID, 2)
	require.NoError(t, err)

	require.NoError(t, store.DeleteBasketLine(ctx, basket.ID, need.ID))

	lines, err := store.GetBasketLines(ctx, basket.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Removing an absent line is a no-op
	require.NoError(t, store.DeleteBasketLine(ctx, basket.ID, need.ID))
}

func testClearBasket(t *testing.T, store Store) {
	ctx := context.Background()

	basket := createTestHelper(t, store, "jo")
	rice := buildTestNeed("rice")
	beans := buildTestNeed("beans")
	require.NoError(t, store.CreateNeed(ctx, rice))
	require.NoError(t, store.CreateNeed(ctx, beans))

	_, err := store.UpsertBasketLine(ctx, basket.ID, rice.ID, 2)
	require.NoError(t, err)
	_, err = store.UpsertBasketLine(ctx, basket.ID, beans.ID, 1)
	require.NoError(t, err)

	require.NoError(t, store.ClearBasket(ctx, basket.ID))

	lines, err := store.GetBasketLines(ctx, basket.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	assert.ErrorIs(t, store.ClearBasket(ctx, 999999), domain.ErrBasketNotFound)
}

// =============================================================================
// Profiles and contributions
// =============================================================================

func testProfileLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	createTestHelper(t, store, "jo")
	createTestHelper(t, store, "sam")

	profile, err := store.GetProfile(ctx, "jo")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Jo", profile.FirstName)
	assert.Empty(t, profile.Contributions)

	profile.FirstName = "Joanna"
	profile.Country = "BE"
	require.NoError(t, store.UpdateProfile(ctx, profile))

	profile, err = store.GetProfile(ctx, "jo")
	require.NoError(t, err)
	assert.Equal(t, "Joanna", profile.FirstName)
	assert.Equal(t, "BE", profile.Country)

	require.NoError(t, store.SetProfilePrivacy(ctx, "sam", true))

	public, err := store.ListProfiles(ctx, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "jo", public[0].UserName)

	all, err := store.ListProfiles(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, store.DeleteProfile(ctx, "sam"))

	gone, err := store.GetProfile(ctx, "sam")
	require.NoError(t, err)
	assert.Nil(t, gone)

	basket, err := store.GetBasketByUserName(ctx, "sam")
	require.NoError(t, err)
	assert.Nil(t, basket)

	assert.ErrorIs(t, store.DeleteProfile(ctx, "sam"), domain.ErrProfileNotFound)
	assert.ErrorIs(t, store.SetProfilePrivacy(ctx, "sam", false), domain.ErrProfileNotFound)

	missing := buildTestProfile("sam")
	assert.ErrorIs(t, store.UpdateProfile(ctx, missing), domain.ErrProfileNotFound)
}

func testAddContribution(t *testing.T, store Store) {
	ctx := context.Background()

	createTestHelper(t, store, "jo")
	need := buildTestNeed("rice")
	require.NoError(t, store.CreateNeed(ctx, need))

	require.NoError(t, store.AddContribution(ctx, "attempt-1", "jo", need.ID, 3))

	// Replaying the same attempt does not double-count
	require.NoError(t, store.AddContribution(ctx, "attempt-1", "jo", need.ID, 3))

	profile, err := store.GetProfile(ctx, "jo")
	require.NoError(t, err)
	require.Len(t, profile.Contributions, 1)
	assert.Equal(t, need.ID, profile.Contributions[0].NeedID)
	assert.Equal(t, int64(3), profile.Contributions[0].Quantity)

	// A later checkout accumulates onto the same row
	require.NoError(t, store.AddContribution(ctx, "attempt-2", "jo", need.ID, 2))

	profile, err = store.GetProfile(ctx, "jo")
	require.NoError(t, err)
	require.Len(t, profile.Contributions, 1)
	assert.Equal(t, int64(5), profile.Contributions[0].Quantity)
}

// RunStoreTests runs the store test suite against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateAndGetNeed", testCreateAndGetNeed},
		{"GetNeedsByIDs", testGetNeedsByIDs},
		{"ListNeeds", testListNeeds},
		{"UpdateNeed", testUpdateNeed},
		{"DeleteNeed", testDeleteNeed},
		{"IncrementFulfilled", testIncrementFulfilled},
		{"CreateProfileAndBasket", testCreateProfileAndBasket},
		{"UpsertBasketLine", testUpsertBasketLine},
		{"AddBasketLineQuantity", testAddBasketLineQuantity},
		{"DeleteBasketLine", testDeleteBasketLine},
		{"ClearBasket", testClearBasket},
		{"ProfileLifecycle", testProfileLifecycle},
		{"AddContribution", testAddContribution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
