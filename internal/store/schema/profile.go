package schema

import (
	"time"
)

// Profile represents the profiles table - public information about a helper.
type Profile struct {
	// UserName is the primary key and login name of the helper
	UserName string `gorm:"column:user_name;primaryKey;type:text"`
	// FirstName is the helper's first name
	FirstName string `gorm:"column:first_name;type:text"`
	// LastName is the helper's last name
	LastName string `gorm:"column:last_name;type:text"`
	// Email is the helper's contact address
	Email string `gorm:"column:email;type:text"`
	// Country is the helper's self-reported country
	Country string `gorm:"column:country;type:text"`
	// Private hides the profile from the public supporter listing when true
	Private bool `gorm:"column:private;not null;default:false"`
	// CreatedAt is the timestamp when the profile was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last modification
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Contributions []Contribution `gorm:"foreignKey:UserName;references:UserName;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for GORM
func (Profile) TableName() string {
	return "profiles"
}

// Contribution represents the contributions table - cumulative quantities a
// helper has contributed toward a need across all checkouts.
type Contribution struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserName references the contributing helper's profile
	UserName string `gorm:"column:user_name;not null;uniqueIndex:idx_contributions_user_need,priority:1;type:text"`
	// NeedID references the need contributed toward
	NeedID int64 `gorm:"column:need_id;not null;uniqueIndex:idx_contributions_user_need,priority:2"`
	// Quantity is the cumulative contributed quantity
	Quantity int64 `gorm:"column:quantity;not null"`
	// UpdatedAt is the timestamp of the most recent contribution
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the database table name for GORM
func (Contribution) TableName() string {
	return "contributions"
}
