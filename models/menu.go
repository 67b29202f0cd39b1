package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"index;column:restaurant_id" json:"restaurant_id"`
	Name         string    `gorm:"size:100" json:"name"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"created_at"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

// MenuItem price is stored in minor currency units (satang/cents) so order
// totals stay exact integer arithmetic.
type MenuItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CategoryID  uint   `gorm:"index;column:category_id" json:"categoryId"`
	Name        string `gorm:"size:150" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       int64  `gorm:"column:price" json:"price"`
	IsAvailable bool   `gorm:"column:is_available;default:true" json:"isAvailable"`

	// Tags is a free-form JSON array ("spicy", "vegan", ...) rendered by the
	// customer menu UI.
	Tags datatypes.JSON `gorm:"column:tags" json:"tags,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
