package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/ufund-io/ufund-v2/internal/api/middleware"
	"github.com/ufund-io/ufund-v2/internal/api/shared/dto"
	"github.com/ufund-io/ufund-v2/internal/basket"
	"github.com/ufund-io/ufund-v2/internal/domain"
	"github.com/ufund-io/ufund-v2/internal/store"
	"github.com/ufund-io/ufund-v2/internal/store/schema"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListNeeds retrieves the need catalog, optionally filtered by name
	// GET /api/v1/needs?name=<substring>
	ListNeeds(c *gin.Context)

	// GetNeed retrieves a single need by ID
	// GET /api/v1/needs/:id
	GetNeed(c *gin.Context)

	// BatchNeeds retrieves multiple needs in one request
	// POST /api/v1/needs/batch
	BatchNeeds(c *gin.Context)

	// CreateNeed creates a catalog need (manager only)
	// POST /api/v1/needs
	CreateNeed(c *gin.Context)

	// UpdateNeed replaces a need's fields (manager only)
	// PUT /api/v1/needs/:id
	UpdateNeed(c *gin.Context)

	// DeleteNeed removes a need from the catalog (manager only)
	// DELETE /api/v1/needs/:id
	DeleteNeed(c *gin.Context)

	// FulfillNeed manually increments a need's fulfilled quantity (manager only)
	// POST /api/v1/needs/:id/fulfill
	FulfillNeed(c *gin.Context)

	// GetBasket returns the authenticated helper's resolved basket
	// GET /api/v1/baskets/me
	GetBasket(c *gin.Context)

	// AddBasketLine puts a need into the helper's basket
	// POST /api/v1/baskets/me/lines
	AddBasketLine(c *gin.Context)

	// AdjustBasketLine applies a quantity delta to a basket line
	// PATCH /api/v1/baskets/me/lines/:needId
	AdjustBasketLine(c *gin.Context)

	// RemoveBasketLine deletes a line from the basket
	// DELETE /api/v1/baskets/me/lines/:needId
	RemoveBasketLine(c *gin.Context)

	// ClearBasket empties the basket without checking out
	// DELETE /api/v1/baskets/me
	ClearBasket(c *gin.Context)

	// Checkout converts the basket into fulfillment progress and ledger entries
	// POST /api/v1/baskets/me/checkout
	Checkout(c *gin.Context)

	// CreateProfile registers a helper and creates their basket
	// POST /api/v1/profiles
	CreateProfile(c *gin.Context)

	// ListProfiles lists public supporter profiles
	// GET /api/v1/profiles
	ListProfiles(c *gin.Context)

	// GetProfile returns the public view of a profile
	// GET /api/v1/profiles/:userName
	GetProfile(c *gin.Context)

	// GetMyProfile returns the authenticated helper's full profile
	// GET /api/v1/profiles/me
	GetMyProfile(c *gin.Context)

	// UpdateProfile edits the authenticated helper's profile
	// PUT /api/v1/profiles/me
	UpdateProfile(c *gin.Context)

	// SetPrivacy toggles whether the profile is publicly listed
	// PUT /api/v1/profiles/me/privacy
	SetPrivacy(c *gin.Context)

	// DeleteProfile removes the authenticated helper's profile and basket
	// DELETE /api/v1/profiles/me
	DeleteProfile(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store       store.Store
	reconciler  *basket.Reconciler
	coordinator *basket.Coordinator
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, reconciler *basket.Reconciler, coordinator *basket.Coordinator) Handler {
	return &handler{
		store:       st,
		reconciler:  reconciler,
		coordinator: coordinator,
	}
}

// parseIDParam extracts a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respondBadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// ownBasket resolves the authenticated helper's basket
func (h *handler) ownBasket(c *gin.Context) (*schema.Basket, bool) {
	userName := middleware.AuthUser(c)
	b, err := h.store.GetBasketByUserName(c.Request.Context(), userName)
	if err != nil {
		respondInternalError(c, err, "Failed to resolve basket")
		return nil, false
	}
	if b == nil {
		respondNotFound(c, "No basket for user", userName)
		return nil, false
	}
	return b, true
}

func (h *handler) ListNeeds(c *gin.Context) {
	needs, err := h.store.ListNeeds(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondInternalError(c, err, "Failed to list needs")
		return
	}

	result := make([]*domain.Need, 0, len(needs))
	for _, n := range needs {
		result = append(result, basket.NeedFromSchema(n))
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetNeed(c *gin.Context) {
	needID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	need, err := h.store.GetNeedByID(c.Request.Context(), needID)
	if err != nil {
		respondInternalError(c, err, "Failed to get need")
		return
	}
	if need == nil {
		respondNotFound(c, "Need not found")
		return
	}
	c.JSON(http.StatusOK, basket.NeedFromSchema(need))
}

func (h *handler) BatchNeeds(c *gin.Context) {
	var req dto.BatchNeedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	needs, err := h.store.GetNeedsByIDs(c.Request.Context(), req.NeedIDs)
	if err != nil {
		respondInternalError(c, err, "Failed to get needs")
		return
	}

	result := make([]*domain.Need, 0, len(needs))
	for _, n := range needs {
		result = append(result, basket.NeedFromSchema(n))
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) CreateNeed(c *gin.Context) {
	var req dto.CreateNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	need, err := basket.NeedToSchema(req.ToDomain())
	if err != nil {
		respondInternalError(c, err, "Failed to encode need")
		return
	}

	if err := h.store.CreateNeed(c.Request.Context(), need); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, basket.NeedFromSchema(need))
}

func (h *handler) UpdateNeed(c *gin.Context) {
	needID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	need, err := basket.NeedToSchema(req.ToDomain(needID))
	if err != nil {
		respondInternalError(c, err, "Failed to encode need")
		return
	}

	if err := h.store.UpdateNeed(c.Request.Context(), need); err != nil {
		respondDomainError(c, err)
		return
	}

	updated, err := h.store.GetNeedByID(c.Request.Context(), needID)
	if err != nil || updated == nil {
		respondInternalError(c, err, "Failed to reload need")
		return
	}
	c.JSON(http.StatusOK, basket.NeedFromSchema(updated))
}

func (h *handler) DeleteNeed(c *gin.Context) {
	needID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteNeed(c.Request.Context(), needID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) FulfillNeed(c *gin.Context) {
	needID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.FulfillNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Manual fulfillments get their own attempt key so each call applies once
	attemptID := ulid.MustNewDefault(time.Now()).String()
	need, err := h.store.IncrementFulfilled(c.Request.Context(), attemptID, middleware.AuthUser(c), needID, req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, basket.NeedFromSchema(need))
}

func (h *handler) GetBasket(c *gin.Context) {
	b, ok := h.ownBasket(c)
	if !ok {
		return
	}

	snapshot, err := h.reconciler.Load(c.Request.Context(), b.ID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *handler) AddBasketLine(c *gin.Context) {
	b, ok := h.ownBasket(c)
	if !ok {
		return
	}

	var req dto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	snapshot, err := h.reconciler.AddLine(c.Request.Context(), b.ID, req.NeedID, req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *handler) AdjustBasketLine(c *gin.Context) {
	b, ok := h.ownBasket(c)
	if !ok {
		return
	}

	needID, ok := parseIDParam(c, "needId")
	if !ok {
		return
	}

	var req dto.AdjustLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	snapshot, err := h.reconciler.AdjustLine(c.Request.Context(), b.ID, needID, req.Delta)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *handler) RemoveBasketLine(c *gin.Context) {
	b, ok := h.ownBasket(c)
	if !ok {
		return
	}

	needID, ok := parseIDParam(c, "needId")
	if !ok {
		return
	}

	snapshot, err := h.reconciler.RemoveLine(c.Request.Context(), b.ID, needID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *handler) ClearBasket(c *gin.Context) {
	b, ok := h.ownBasket(c)
	if !ok {
		return
	}

	if err := h.store.ClearBasket(c.Request.Context(), b.ID); err != nil {
		respondDomainError(c, err)
		return
	}
	h.reconciler.Reset(b.ID)

	snapshot, err := h.reconciler.Load(c.Request.Context(), b.ID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *handler) Checkout(c *gin.Context) {
	b, ok := h.ownBasket(c)
	if !ok {
		return
	}

	result, err := h.coordinator.Checkout(c.Request.Context(), middleware.AuthUser(c), b.ID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) CreateProfile(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	profile := &schema.Profile{
		UserName:  req.UserName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Country:   req.Country,
		Private:   req.Private,
	}

	b, err := h.store.CreateProfile(c.Request.Context(), profile)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile":  dto.NewProfileResponse(profile),
		"basketId": b.ID,
	})
}

func (h *handler) ListProfiles(c *gin.Context) {
	profiles, err := h.store.ListProfiles(c.Request.Context(), false)
	if err != nil {
		respondInternalError(c, err, "Failed to list profiles")
		return
	}

	result := make([]*dto.PublicProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, dto.NewPublicProfileResponse(p))
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) GetProfile(c *gin.Context) {
	userName := c.Param("userName")
	if userName == "" {
		respondBadRequest(c, "User name is required")
		return
	}

	profile, err := h.store.GetProfile(c.Request.Context(), userName)
	if err != nil {
		respondInternalError(c, err, "Failed to get profile")
		return
	}
	// Private profiles are indistinguishable from absent ones
	if profile == nil || profile.Private {
		respondNotFound(c, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, dto.NewPublicProfileResponse(profile))
}

func (h *handler) GetMyProfile(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Request.Context(), middleware.AuthUser(c))
	if err != nil {
		respondInternalError(c, err, "Failed to get profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

func (h *handler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	profile := &schema.Profile{
		UserName:  middleware.AuthUser(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Country:   req.Country,
		Private:   req.Private,
	}
	if err := h.store.UpdateProfile(c.Request.Context(), profile); err != nil {
		respondDomainError(c, err)
		return
	}

	updated, err := h.store.GetProfile(c.Request.Context(), profile.UserName)
	if err != nil || updated == nil {
		respondInternalError(c, err, "Failed to reload profile")
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(updated))
}

func (h *handler) SetPrivacy(c *gin.Context) {
	var req dto.SetPrivacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.store.SetProfilePrivacy(c.Request.Context(), middleware.AuthUser(c), *req.Private); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) DeleteProfile(c *gin.Context) {
	if err := h.store.DeleteProfile(c.Request.Context(), middleware.AuthUser(c)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthCheckResponse{Status: "ok"})
}
