package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "blood-donation-camp-2026", Slugify("Blood Donation Camp 2026"))
	assert.Equal(t, "health-wellness", Slugify("Health & Wellness!"))
	assert.Equal(t, "already-a-slug", Slugify("already-a-slug"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestBlogBeforeSaveDerivesSlugAndExcerpt(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Blog{}))

	author := User{Name: "Admin", Email: "admin@example.com", Password: "x", Phone: "9999999999", Role: "admin", IsActive: true}
	require.NoError(t, db.Create(&author).Error)

	blog := Blog{
		Title:    "Scholarships for Rural Students",
		Content:  "The foundation opened applications for its annual scholarship.",
		AuthorID: author.ID,
	}
	require.NoError(t, db.Create(&blog).Error)

	assert.Equal(t, "scholarships-for-rural-students", blog.Slug)
	assert.Equal(t, "The foundation opened applications for its annual scholarship....", blog.Excerpt)
}

func TestBlogBeforeSaveKeepsExplicitSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Blog{}))

	blog := Blog{Title: "Some Title", Slug: "custom-slug", Content: "body", AuthorID: 1}
	require.NoError(t, db.Create(&blog).Error)

	assert.Equal(t, "custom-slug", blog.Slug)
}
