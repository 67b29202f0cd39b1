package models

import (
	"time"

	"gorm.io/gorm"
)

type TableShape string

const (
	ShapeRectangle TableShape = "rectangle"
	ShapeRound     TableShape = "round"
)

// TableConfig holds the geometric placement of one Table on a FloorPlan grid.
// XPosition/YPosition are the top-left corner; the whole rectangle must keep
// the edge clearance enforced by services.ValidatePlacement.
type TableConfig struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TableID     uint       `gorm:"uniqueIndex;column:table_id" json:"table_id"`
	FloorPlanID uint       `gorm:"index;column:floor_plan_id" json:"floorPlanId"`
	XPosition   int        `gorm:"column:x_position" json:"xPosition"`
	YPosition   int        `gorm:"column:y_position" json:"yPosition"`
	Width       int        `gorm:"column:width" json:"width"`
	Height      int        `gorm:"column:height" json:"height"`
	Shape       TableShape `gorm:"size:32;default:rectangle" json:"shape"`
	Seats       int        `gorm:"column:seats" json:"seats"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"isActive"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Table Table `gorm:"foreignKey:TableID;references:ID" json:"-"`
}
