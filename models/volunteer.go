package models

import (
	"time"

	"gorm.io/gorm"
)

type Volunteer struct {
	gorm.Model
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"not null" json:"email"`
	Phone        string     `gorm:"not null" json:"phone"`
	Age          int        `gorm:"not null" json:"age"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	Occupation   string     `json:"occupation,omitempty"`
	Education    string     `json:"education,omitempty"`
	Skills       string     `json:"skills,omitempty"`    // comma-separated
	Interests    string     `json:"interests,omitempty"` // comma-separated: healthcare, education, rural-development, social-justice, events, fundraising
	Availability string     `json:"availability,omitempty"` // weekends, weekdays, flexible, full-time
	Experience   string     `gorm:"type:text" json:"experience,omitempty"`
	Reason       string     `gorm:"type:text;not null" json:"reason"`
	Status       string     `gorm:"default:pending" json:"status"` // pending, approved, rejected, active, inactive
	ReviewedBy   *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	ReviewNotes  string     `json:"review_notes,omitempty"`
}
