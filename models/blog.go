package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Blog struct {
	gorm.Model
	Title         string     `gorm:"not null" json:"title"`
	Slug          string     `gorm:"unique" json:"slug"`
	Content       string     `gorm:"type:longtext;not null" json:"content"`
	Excerpt       string     `gorm:"size:220" json:"excerpt,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	ImagePublicID string     `json:"-"`
	Category      string     `gorm:"default:general" json:"category"` // healthcare, education, development, justice, events, success-story, general
	Tags          string     `json:"tags,omitempty"`                  // comma-separated
	AuthorID      uint       `gorm:"not null" json:"author_id"`
	Author        User       `json:"author"`
	Published     bool       `gorm:"default:false" json:"published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	Views         int        `gorm:"default:0" json:"views"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a blog title into its URL slug.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// BeforeSave derives the slug and excerpt like the public site expects.
func (b *Blog) BeforeSave(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = Slugify(b.Title)
	}

	if b.Excerpt == "" && b.Content != "" {
		excerpt := b.Content
		if len(excerpt) > 200 {
			excerpt = excerpt[:200]
		}
		b.Excerpt = strings.TrimSpace(excerpt) + "..."
	}

	return nil
}
