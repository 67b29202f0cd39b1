package models

import "time"

// OrderItem captures the menu item's price at order-creation time. The
// snapshot is immutable: later menu price edits must not change what an
// already-placed order owes.
type OrderItem struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	OrderID    uint  `gorm:"index;column:order_id" json:"order_id"`
	MenuItemID uint  `gorm:"column:menu_item_id" json:"menuItemId"`
	Quantity   int   `gorm:"column:quantity" json:"quantity"`
	Price      int64 `gorm:"column:price" json:"price"`

	CreatedAt time.Time `json:"created_at"`

	MenuItem MenuItem `gorm:"foreignKey:MenuItemID;references:ID" json:"menuItem,omitempty"`
}
