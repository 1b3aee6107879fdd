package domain

import (
	"fmt"
	"time"
)

// Role is the access level carried by a session.
type Role string

const (
	RoleHelper  Role = "helper"
	RoleManager Role = "manager"
)

// IsValidRole checks if a role is valid
func IsValidRole(r Role) bool {
	return r == RoleHelper || r == RoleManager
}

// NeedType classifies what kind of help a need asks for.
type NeedType string

const (
	NeedTypeGoods     NeedType = "goods"
	NeedTypeServices  NeedType = "services"
	NeedTypeMonetary  NeedType = "monetary"
	NeedTypeVolunteer NeedType = "volunteer"
)

// IsValidNeedType checks if a need type is valid
func IsValidNeedType(t NeedType) bool {
	return t == NeedTypeGoods ||
		t == NeedTypeServices ||
		t == NeedTypeMonetary ||
		t == NeedTypeVolunteer
}

// UrgencyTag marks how urgently a need should be funded.
type UrgencyTag string

const (
	UrgencyHigh UrgencyTag = "high"
	UrgencyLow  UrgencyTag = "low"
)

// IsValidUrgency checks if an urgency tag is valid
func IsValidUrgency(u UrgencyTag) bool {
	return u == UrgencyHigh || u == UrgencyLow
}

// Image returns the display image associated with the urgency tag.
func (u UrgencyTag) Image() string {
	if u == UrgencyHigh {
		return "assets/images/urgent.jpg"
	}
	return "assets/images/blank.jpg"
}

// Need is a fundable catalog item with a price and a target quantity.
// The id is assigned by the store and immutable once created.
type Need struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Type              NeedType   `json:"type"`
	Description       string     `json:"description"`
	Price             Money      `json:"price"`
	QuantityNeeded    int64      `json:"quantityNeeded"`
	QuantityFulfilled int64      `json:"quantityFulfilled"`
	Urgency           UrgencyTag `json:"urgency"`
	UrgencyImage      string     `json:"urgencyImage"`
	Images            []string   `json:"images"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Validate checks the need's invariants before it is persisted.
func (n *Need) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("need name is required")
	}
	if !IsValidNeedType(n.Type) {
		return fmt.Errorf("invalid need type: %s", n.Type)
	}
	if n.Price.Negative() {
		return fmt.Errorf("need price must not be negative")
	}
	if n.QuantityNeeded < 1 {
		return fmt.Errorf("quantity needed must be at least 1")
	}
	if n.QuantityFulfilled < 0 {
		return fmt.Errorf("quantity fulfilled must not be negative")
	}
	if !IsValidUrgency(n.Urgency) {
		return fmt.Errorf("invalid urgency tag: %s", n.Urgency)
	}
	return nil
}

// Remaining returns the unfulfilled capacity of the need. It never goes below
// zero even if the fulfilled quantity has overshot the target.
func (n *Need) Remaining() int64 {
	remaining := n.QuantityNeeded - n.QuantityFulfilled
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BasketLine is one (need, quantity) association within a basket. A line with
// quantity below 1 does not exist; it is removed, never stored.
type BasketLine struct {
	NeedID   int64 `json:"needId"`
	Quantity int64 `json:"quantity"`
}

// Basket identifies a user's funding basket. Line items live in the store and
// are resolved into a BasketView on demand.
type Basket struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ResolvedLine pairs a catalog-resolved need with the basket quantity.
type ResolvedLine struct {
	Need     *Need `json:"need"`
	Quantity int64 `json:"quantity"`
}

// Subtotal returns quantity times the need's unit price.
func (l *ResolvedLine) Subtotal() Money {
	return l.Need.Price.Mul(l.Quantity)
}

// Profile is a helper's user profile with its contribution ledger.
type Profile struct {
	UserName      string          `json:"userName"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	Country       string          `json:"country"`
	Private       bool            `json:"isPrivate"`
	Contributions map[int64]int64 `json:"contributions"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Validate checks the profile's required fields.
func (p *Profile) Validate() error {
	if p.UserName == "" {
		return fmt.Errorf("user name is required")
	}
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}
