package models

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Payment is created exactly once, when its order reaches completed, with
// Amount frozen to the sum of item price×quantity in minor currency units.
type Payment struct {
	ID      uint          `gorm:"primaryKey" json:"id"`
	OrderID uint          `gorm:"uniqueIndex;column:order_id" json:"orderId"`
	Amount  int64         `gorm:"column:amount" json:"amount"`
	Status  PaymentStatus `gorm:"size:32;default:pending" json:"status"`
	PaidAt  *time.Time    `gorm:"column:paid_at" json:"paidAt,omitempty"`

	// TransactionRef comes back from the payment gateway on settlement.
	TransactionRef string `gorm:"size:64;column:transaction_ref" json:"transactionRef,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
