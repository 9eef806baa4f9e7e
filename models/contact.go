package models

import (
	"time"

	"gorm.io/gorm"
)

type Contact struct {
	gorm.Model
	Reference   string     `gorm:"unique;not null" json:"reference"`
	Name        string     `gorm:"not null" json:"name"`
	Email       string     `gorm:"not null" json:"email"`
	Phone       string     `gorm:"not null" json:"phone"`
	Subject     string     `gorm:"not null" json:"subject"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	Type        string     `gorm:"default:general" json:"type"` // general, volunteer, partnership, support, complaint
	Status      string     `gorm:"default:new" json:"status"`   // new, read, responded, resolved
	Response    string     `gorm:"type:text" json:"response,omitempty"`
	RespondedBy *uint      `json:"responded_by,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}
