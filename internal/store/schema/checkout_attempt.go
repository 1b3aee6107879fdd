package schema

import (
	"time"
)

// CheckoutOp identifies which side effect of a checkout line an attempt row
// guards.
type CheckoutOp string

const (
	// CheckoutOpFulfill guards the need fulfillment increment
	CheckoutOpFulfill CheckoutOp = "fulfill"
	// CheckoutOpContribute guards the profile contribution record
	CheckoutOpContribute CheckoutOp = "contribute"
)

// CheckoutAttempt represents the checkout_attempts table - an idempotency
// ledger keyed by (attempt_id, need_id, op). Inserting a row claims the
// operation; a conflict means the same attempt already applied it, so retries
// never double-apply a checkout side effect.
type CheckoutAttempt struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AttemptID is the ULID assigned to one checkout run
	AttemptID string `gorm:"column:attempt_id;not null;uniqueIndex:idx_checkout_attempts_key,priority:1;type:text"`
	// NeedID references the need the guarded operation applies to
	NeedID int64 `gorm:"column:need_id;not null;uniqueIndex:idx_checkout_attempts_key,priority:2"`
	// Op names the guarded side effect (fulfill, contribute)
	Op CheckoutOp `gorm:"column:op;not null;uniqueIndex:idx_checkout_attempts_key,priority:3;type:text"`
	// UserName is the helper who ran the checkout, kept for auditing
	UserName string `gorm:"column:user_name;not null;type:text"`
	// Quantity is the quantity applied by the guarded operation
	Quantity int64 `gorm:"column:quantity;not null"`
	// CreatedAt is the timestamp when the operation was applied
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the database table name for GORM
func (CheckoutAttempt) TableName() string {
	return "checkout_attempts"
}
