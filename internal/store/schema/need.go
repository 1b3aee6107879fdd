package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ufund-io/ufund-v2/internal/domain"
)

// Need represents the needs table - the catalog of funding needs helpers can
// contribute toward.
type Need struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the unique human-readable name of the need
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// Type classifies the need (goods, services, monetary, volunteer)
	Type domain.NeedType `gorm:"column:type;not null;type:text"`
	// Description is free-form text shown on the need detail page
	Description string `gorm:"column:description;type:text"`
	// PriceCents is the unit price in integer cents
	PriceCents int64 `gorm:"column:price_cents;not null"`
	// QuantityNeeded is the total quantity requested for this need
	QuantityNeeded int64 `gorm:"column:quantity_needed;not null"`
	// QuantityFulfilled is the quantity already contributed via checkout
	QuantityFulfilled int64 `gorm:"column:quantity_fulfilled;not null;default:0"`
	// Urgency marks the need as high or low urgency
	Urgency domain.UrgencyTag `gorm:"column:urgency;not null;type:text"`
	// Images holds display image paths as a JSON array
	Images datatypes.JSON `gorm:"column:images;type:jsonb"`
	// CreatedAt is the timestamp when the need was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last modification
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the database table name for GORM
func (Need) TableName() string {
	return "needs"
}
