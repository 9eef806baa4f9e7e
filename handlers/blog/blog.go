package blog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aydf-backend/handlers/auth"
	"aydf-backend/models"
	"aydf-backend/utils"
)

// ListBlogs returns published posts, newest first, with a category filter.
func ListBlogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := utils.DB.Model(&models.Blog{}).Where("published = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blogs"})
		return
	}

	var blogs []models.Blog
	if err := query.Preload("Author").Order("published_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blogs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs":        blogs,
		"total":        count,
		"total_pages":  (count + int64(limit) - 1) / int64(limit),
		"current_page": page,
	})
}

// GetBlogBySlug returns a published post and bumps its view counter.
func GetBlogBySlug(c *gin.Context) {
	var blog models.Blog
	if err := utils.DB.Preload("Author").Where("slug = ? AND published = ?", c.Param("slug"), true).First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
		return
	}

	utils.DB.Model(&blog).UpdateColumn("views", gorm.Expr("views + 1"))
	blog.Views++

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// CreateBlog creates a post from a multipart form, uploading the featured
// image to the media host when one is attached (admin).
func CreateBlog(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	blog := models.Blog{
		Title:    title,
		Content:  content,
		Category: c.DefaultPostForm("category", "general"),
		Tags:     c.PostForm("tags"),
		AuthorID: user.ID,
	}

	if published, _ := strconv.ParseBool(c.PostForm("published")); published {
		now := time.Now()
		blog.Published = true
		blog.PublishedAt = &now
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read uploaded image"})
			return
		}
		defer file.Close()

		result, err := utils.UploadMedia(file, "aydf/blog")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image", "error": err.Error()})
			return
		}
		blog.ImageURL = result.URL
		blog.ImagePublicID = result.PublicID
	}

	if err := utils.DB.Create(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create blog"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Blog created successfully", "blog": blog})
}
