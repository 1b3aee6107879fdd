package schema

import (
	"time"
)

// Basket represents the baskets table - one funding basket per helper.
type Basket struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserName is the owning helper's user name
	UserName string `gorm:"column:user_name;not null;uniqueIndex;type:text"`
	// CreatedAt is the timestamp when the basket was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Lines []BasketLine `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for GORM
func (Basket) TableName() string {
	return "baskets"
}

// BasketLine represents the basket_lines table - one row per need in a basket.
// The (basket_id, need_id) pair is unique so a need never appears twice in the
// same basket, and quantity is kept >= 1 by a CHECK constraint.
type BasketLine struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BasketID references the owning basket
	BasketID int64 `gorm:"column:basket_id;not null;uniqueIndex:idx_basket_lines_basket_need,priority:1"`
	// NeedID references the need this line is for
	NeedID int64 `gorm:"column:need_id;not null;uniqueIndex:idx_basket_lines_basket_need,priority:2"`
	// Quantity is the desired contribution quantity, always >= 1
	Quantity int64 `gorm:"column:quantity;not null;check:quantity >= 1"`
	// UpdatedAt is the timestamp of the last quantity change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the database table name for GORM
func (BasketLine) TableName() string {
	return "basket_lines"
}
