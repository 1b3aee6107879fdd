package dto

import (
	"time"

	"github.com/ufund-io/ufund-v2/internal/store/schema"
)

// HealthCheckResponse is the body of the health endpoint
type HealthCheckResponse struct {
	Status string `json:"status"`
}

// ProfileResponse represents a helper profile with its contribution ledger
type ProfileResponse struct {
	UserName      string          `json:"userName"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email,omitempty"`
	Country       string          `json:"country,omitempty"`
	Private       bool            `json:"private"`
	Contributions map[int64]int64 `json:"contributions"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewProfileResponse builds a profile response from the stored profile
func NewProfileResponse(p *schema.Profile) *ProfileResponse {
	contributions := make(map[int64]int64, len(p.Contributions))
	for _, c := range p.Contributions {
		contributions[c.NeedID] = c.Quantity
	}

	return &ProfileResponse{
		UserName:      p.UserName,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Country:       p.Country,
		Private:       p.Private,
		Contributions: contributions,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// PublicProfileResponse is the supporter-listing view of a profile: contact
// details are withheld
type PublicProfileResponse struct {
	UserName      string          `json:"userName"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Country       string          `json:"country,omitempty"`
	Contributions map[int64]int64 `json:"contributions"`
}

// NewPublicProfileResponse builds the public view of a stored profile
func NewPublicProfileResponse(p *schema.Profile) *PublicProfileResponse {
	contributions := make(map[int64]int64, len(p.Contributions))
	for _, c := range p.Contributions {
		contributions[c.NeedID] = c.Quantity
	}

	return &PublicProfileResponse{
		UserName:      p.UserName,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Country:       p.Country,
		Contributions: contributions,
	}
}
