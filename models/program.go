package models

import "time"

// Program is keyed by its public slug ("healthcare", "education", ...), the
// same identifier the donation form submits.
type Program struct {
	ID             string              `gorm:"primaryKey;size:64" json:"id"`
	Title          string              `gorm:"not null" json:"title"`
	Description    string              `gorm:"type:text;not null" json:"description"`
	ImageURL       string              `json:"image_url,omitempty"`
	ImagePublicID  string              `json:"-"`
	Category       string              `gorm:"default:other" json:"category"` // healthcare, education, rural-development, social-justice, environment, other
	TargetAudience string              `json:"target_audience,omitempty"`
	Location       string              `json:"location,omitempty"`
	Duration       string              `json:"duration,omitempty"`
	Order          int                 `gorm:"column:display_order;default:0" json:"order"`
	IsActive       bool                `gorm:"default:true" json:"is_active"`
	Initiatives    []ProgramInitiative `gorm:"foreignKey:ProgramID" json:"initiatives"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type ProgramInitiative struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProgramID   string `gorm:"index;size:64" json:"-"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
