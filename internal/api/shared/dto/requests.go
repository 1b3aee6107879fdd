package dto

import (
	"fmt"
	"strings"

	"github.com/ufund-io/ufund-v2/internal/api/shared/constants"
	apierrors "github.com/ufund-io/ufund-v2/internal/api/shared/errors"
	"github.com/ufund-io/ufund-v2/internal/domain"
)

// CreateNeedRequest represents the request body for creating a catalog need
type CreateNeedRequest struct {
	Name           string            `json:"name"`
	Type           domain.NeedType   `json:"type"`
	Description    string            `json:"description"`
	Price          domain.Money      `json:"price"`
	QuantityNeeded int64             `json:"quantityNeeded"`
	Urgency        domain.UrgencyTag `json:"urgency"`
	Images         []string          `json:"images,omitempty"`
}

// Validate validates the request body
func (r *CreateNeedRequest) Validate() error {
	return validateNeedFields(r.Name, r.Type, r.Description, r.Price, r.QuantityNeeded, 0, r.Urgency, r.Images)
}

// ToDomain converts the request into a domain need
func (r *CreateNeedRequest) ToDomain() *domain.Need {
	return &domain.Need{
		Name:           strings.TrimSpace(r.Name),
		Type:           r.Type,
		Description:    r.Description,
		Price:          r.Price,
		QuantityNeeded: r.QuantityNeeded,
		Urgency:        r.Urgency,
		UrgencyImage:   r.Urgency.Image(),
		Images:         r.Images,
	}
}

// UpdateNeedRequest represents the request body for replacing a need's fields
type UpdateNeedRequest struct {
	Name              string            `json:"name"`
	Type              domain.NeedType   `json:"type"`
	Description       string            `json:"description"`
	Price             domain.Money      `json:"price"`
	QuantityNeeded    int64             `json:"quantityNeeded"`
	QuantityFulfilled int64             `json:"quantityFulfilled"`
	Urgency           domain.UrgencyTag `json:"urgency"`
	Images            []string          `json:"images,omitempty"`
}

// Validate validates the request body
func (r *UpdateNeedRequest) Validate() error {
	return validateNeedFields(r.Name, r.Type, r.Description, r.Price, r.QuantityNeeded, r.QuantityFulfilled, r.Urgency, r.Images)
}

// ToDomain converts the request into a domain need with the given ID
func (r *UpdateNeedRequest) ToDomain(needID int64) *domain.Need {
	return &domain.Need{
		ID:                needID,
		Name:              strings.TrimSpace(r.Name),
		Type:              r.Type,
		Description:       r.Description,
		Price:             r.Price,
		QuantityNeeded:    r.QuantityNeeded,
		QuantityFulfilled: r.QuantityFulfilled,
		Urgency:           r.Urgency,
		UrgencyImage:      r.Urgency.Image(),
		Images:            r.Images,
	}
}

func validateNeedFields(name string, needType domain.NeedType, description string, price domain.Money, quantityNeeded, quantityFulfilled int64, urgency domain.UrgencyTag, images []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apierrors.NewValidationError("name is required")
	}
	if len(name) > constants.MAX_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("name must be at most %d characters", constants.MAX_NAME_LENGTH))
	}
	if !domain.IsValidNeedType(needType) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid need type: %s", needType))
	}
	if len(description) > constants.MAX_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description must be at most %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	if price.Negative() {
		return apierrors.NewValidationError("price must not be negative")
	}
	if quantityNeeded < 1 {
		return apierrors.NewValidationError("quantityNeeded must be at least 1")
	}
	if quantityFulfilled < 0 {
		return apierrors.NewValidationError("quantityFulfilled must not be negative")
	}
	if !domain.IsValidUrgency(urgency) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid urgency tag: %s", urgency))
	}
	if len(images) > constants.MAX_IMAGES_PER_NEED {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d images allowed", constants.MAX_IMAGES_PER_NEED))
	}
	return nil
}

// BatchNeedsRequest represents the request body for a batched need lookup
type BatchNeedsRequest struct {
	NeedIDs []int64 `json:"needIds"`
}

// Validate validates the request body
func (r *BatchNeedsRequest) Validate() error {
	if len(r.NeedIDs) == 0 {
		return apierrors.NewValidationError("needIds is required")
	}
	if len(r.NeedIDs) > constants.MAX_NEED_IDS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d need IDs allowed", constants.MAX_NEED_IDS_PER_REQUEST))
	}
	for _, id := range r.NeedIDs {
		if id < 1 {
			return apierrors.NewValidationError(fmt.Sprintf("invalid need ID: %d", id))
		}
	}
	return nil
}

// FulfillNeedRequest represents the request body for a manual fulfillment
// increment on a need
type FulfillNeedRequest struct {
	Quantity int64 `json:"quantity"`
}

// Validate validates the request body
func (r *FulfillNeedRequest) Validate() error {
	if r.Quantity < 1 {
		return apierrors.NewValidationError("quantity must be at least 1")
	}
	return nil
}

// AddLineRequest represents the request body for putting a need into the basket
type AddLineRequest struct {
	NeedID   int64 `json:"needId"`
	Quantity int64 `json:"quantity"`
}

// Validate validates the request body
func (r *AddLineRequest) Validate() error {
	if r.NeedID < 1 {
		return apierrors.NewValidationError("needId is required")
	}
	if r.Quantity < 1 {
		return apierrors.NewValidationError("quantity must be at least 1")
	}
	return nil
}

// AdjustLineRequest represents the request body for applying a quantity delta
// to an existing basket line
type AdjustLineRequest struct {
	Delta int64 `json:"delta"`
}

// Validate validates the request body
func (r *AdjustLineRequest) Validate() error {
	if r.Delta == 0 {
		return apierrors.NewValidationError("delta must not be zero")
	}
	return nil
}

// CreateProfileRequest represents the request body for registering a helper
type CreateProfileRequest struct {
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Country   string `json:"country"`
	Private   bool   `json:"private"`
}

// Validate validates the request body
func (r *CreateProfileRequest) Validate() error {
	userName := strings.TrimSpace(r.UserName)
	if userName == "" {
		return apierrors.NewValidationError("userName is required")
	}
	if len(userName) > constants.MAX_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("userName must be at most %d characters", constants.MAX_NAME_LENGTH))
	}
	if strings.ContainsAny(userName, " \t\n/") {
		return apierrors.NewValidationError("userName must not contain whitespace or slashes")
	}
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return apierrors.NewValidationError(fmt.Sprintf("invalid email: %s", r.Email))
	}
	return nil
}

// UpdateProfileRequest represents the request body for editing a profile
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Country   string `json:"country"`
	Private   bool   `json:"private"`
}

// Validate validates the request body
func (r *UpdateProfileRequest) Validate() error {
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return apierrors.NewValidationError(fmt.Sprintf("invalid email: %s", r.Email))
	}
	return nil
}

// SetPrivacyRequest represents the request body for toggling profile privacy
type SetPrivacyRequest struct {
	Private *bool `json:"private"`
}

// Validate validates the request body
func (r *SetPrivacyRequest) Validate() error {
	if r.Private == nil {
		return apierrors.NewValidationError("private is required")
	}
	return nil
}
