package models

import (
	"time"

	"gorm.io/gorm"
)

type BoardMember struct {
	gorm.Model
	Name          string    `gorm:"not null" json:"name"`
	Position      string    `gorm:"not null" json:"position"`   // president, secretary, supervisor, member
	BoardType     string    `gorm:"not null" json:"board_type"` // health, education, city-development, social-justice, outreach
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Bio           string    `gorm:"type:text" json:"bio,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	ImagePublicID string    `json:"-"`
	LinkedIn      string    `json:"linked_in,omitempty"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	JoinedAt      time.Time `json:"joined_at"`
}
