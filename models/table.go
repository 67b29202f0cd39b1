package models

import (
	"time"

	"gorm.io/gorm"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
	TableOccupied  TableStatus = "occupied"
)

// Table is a physical dining table. TableNumber is unique per restaurant and
// is what customers resolve when scanning the table's QR code.
type Table struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RestaurantID uint        `gorm:"index:idx_tables_restaurant_number,unique;column:restaurant_id" json:"restaurant_id"`
	TableNumber  int         `gorm:"index:idx_tables_restaurant_number,unique;column:table_number" json:"tableNumber"`
	FloorNumber  int         `gorm:"index;column:floor_number" json:"floorNumber"`
	Status       TableStatus `gorm:"size:32;default:available" json:"status"`

	// QRCodeURL is generated once at creation and never rewritten; printed
	// QR stickers must stay valid for the table's lifetime.
	QRCodeURL string `gorm:"column:qr_code_url;size:255" json:"qrCodeUrl"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Config *TableConfig `gorm:"foreignKey:TableID" json:"config,omitempty"`
}
