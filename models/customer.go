package models

import (
	"gorm.io/gorm"
)

// Customer is the person behind a scanned-QR ordering session.
type Customer struct {
	gorm.Model

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`
}
