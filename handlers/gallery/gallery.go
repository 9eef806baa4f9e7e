package gallery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
	"aydf-backend/models"
	"aydf-backend/utils"
)

// ListGallery returns gallery items for the public site.
func ListGallery(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := utils.DB.Model(&models.GalleryItem{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if mediaType := c.Query("type"); mediaType != "" {
		query = query.Where("type = ?", mediaType)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch gallery"})
		return
	}

	var items []models.GalleryItem
	if err := query.Order("display_order ASC, created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch gallery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        items,
		"total":        count,
		"total_pages":  (count + int64(limit) - 1) / int64(limit),
		"current_page": page,
	})
}

// CreateGalleryItem uploads a media file and stores its record (admin).
func CreateGalleryItem(c *gin.Context) {
	title := c.PostForm("title")
	mediaType := c.PostForm("type")
	if title == "" || (mediaType != "image" && mediaType != "video") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and a media type of image or video are required"})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A media file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := utils.UploadMedia(file, "aydf/gallery")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload media", "error": err.Error()})
		return
	}

	order, _ := strconv.Atoi(c.PostForm("order"))
	featured, _ := strconv.ParseBool(c.PostForm("featured"))

	item := models.GalleryItem{
		Title:         title,
		Description:   c.PostForm("description"),
		Type:          mediaType,
		MediaURL:      result.URL,
		MediaPublicID: result.PublicID,
		Category:      c.DefaultPostForm("category", "general"),
		Tags:          c.PostForm("tags"),
		UploadedBy:    user.ID,
		Featured:      featured,
		Order:         order,
	}

	if err := utils.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save gallery item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Gallery item created successfully", "item": item})
}

// DeleteGalleryItem removes a record and its hosted media (admin).
func DeleteGalleryItem(c *gin.Context) {
	var item models.GalleryItem
	if err := utils.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Gallery item not found"})
		return
	}

	if err := utils.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete gallery item"})
		return
	}

	go utils.DeleteMedia(item.MediaPublicID)

	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted successfully"})
}
