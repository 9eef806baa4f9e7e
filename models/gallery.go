package models

import "gorm.io/gorm"

type GalleryItem struct {
	gorm.Model
	Title         string `gorm:"not null" json:"title"`
	Description   string `json:"description,omitempty"`
	Type          string `gorm:"not null" json:"type"` // image, video
	MediaURL      string `gorm:"not null" json:"media_url"`
	MediaPublicID string `json:"-"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	Category      string `gorm:"default:general" json:"category"` // healthcare, education, development, justice, events, general
	Tags          string `json:"tags,omitempty"`                  // comma-separated
	UploadedBy    uint   `json:"uploaded_by"`
	Featured      bool   `gorm:"default:false" json:"featured"`
	Order         int    `gorm:"column:display_order;default:0" json:"order"`
}
