package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is a closed enumeration; the legal progression is strictly
// linear (placed → under_process → served → completed → paid) and is
// enforced by the services package, never by string comparison in handlers.
type OrderStatus string

const (
	OrderPlaced       OrderStatus = "placed"
	OrderUnderProcess OrderStatus = "under_process"
	OrderServed       OrderStatus = "served"
	OrderCompleted    OrderStatus = "completed"
	OrderPaid         OrderStatus = "paid"
)

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RestaurantID uint        `gorm:"index;column:restaurant_id" json:"restaurant_id"`
	TableID      uint        `gorm:"index;column:table_id" json:"tableId"`
	UserID       uint        `gorm:"index;column:user_id" json:"userId"`
	Status       OrderStatus `gorm:"size:32;column:status" json:"status"`

	// ReferenceCode is the short human-readable code printed on receipts.
	ReferenceCode string `gorm:"size:16;column:reference_code" json:"referenceCode"`

	// ActiveTableKey mirrors TableID while the order is in an active status
	// and is NULLed on the transition to paid. The unique index on it is the
	// storage-level guarantee that two concurrent creates for the same table
	// cannot both commit (MySQL has no partial indexes; NULLs are exempt
	// from unique checks, which gives the same effect).
	ActiveTableKey *uint `gorm:"uniqueIndex;column:active_table_key" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Table   Table       `gorm:"foreignKey:TableID;references:ID" json:"table,omitempty"`
	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payment *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
}
