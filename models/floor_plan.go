package models

import (
	"time"

	"gorm.io/gorm"
)

// FloorPlan is one physical level of the restaurant, sized in grid units.
// Width/Height are the bounds every TableConfig rectangle must respect.
type FloorPlan struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RestaurantID uint           `gorm:"index:idx_floor_plans_restaurant_floor,unique;column:restaurant_id" json:"restaurant_id"`
	FloorNumber  int            `gorm:"index:idx_floor_plans_restaurant_floor,unique;column:floor_number" json:"floorNumber"`
	Name         string         `gorm:"size:100" json:"name"`
	Width        int            `gorm:"column:width" json:"width"`
	Height       int            `gorm:"column:height" json:"height"`
	IsActive     bool           `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	TableConfigs []TableConfig `gorm:"foreignKey:FloorPlanID" json:"tableConfigs,omitempty"`
}
