package contact

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aydf-backend/handlers/auth"
	"aydf-backend/models"
	"aydf-backend/utils"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

var validTypes = map[string]bool{
	"general":     true,
	"volunteer":   true,
	"partnership": true,
	"support":     true,
	"complaint":   true,
}

var validStatuses = map[string]bool{
	"new":       true,
	"read":      true,
	"responded": true,
	"resolved":  true,
}

// Submit accepts a public contact form message and hands back a ticket
// reference the sender can quote later.
func Submit(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone" binding:"required"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
		Type    string `json:"type"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, a valid email, phone, subject and message are required"})
		return
	}

	if !phonePattern.MatchString(input.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a valid 10-digit phone number"})
		return
	}

	if input.Type == "" {
		input.Type = "general"
	}
	if !validTypes[input.Type] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown message type"})
		return
	}

	contact := models.Contact{
		Reference: "CON-" + strings.ToUpper(uuid.NewString()[:8]),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		Type:      input.Type,
		Status:    "new",
	}

	if err := utils.DB.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Message received. We will get back to you soon.",
		"reference": contact.Reference,
	})
}

// ListContacts returns a paginated admin view with status/type filters.
func ListContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := utils.DB.Model(&models.Contact{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if msgType := c.Query("type"); msgType != "" {
		query = query.Where("type = ?", msgType)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}

	var contacts []models.Contact
	if err := query.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts":     contacts,
		"total":        count,
		"total_pages":  (count + int64(limit) - 1) / int64(limit),
		"current_page": page,
	})
}

// GetContact returns a single message and marks a new one as read (admin).
func GetContact(c *gin.Context) {
	var contact models.Contact
	if err := utils.DB.First(&contact, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	if contact.Status == "new" {
		contact.Status = "read"
		utils.DB.Save(&contact)
	}

	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// UpdateContactStatus records a response or a status change (admin).
func UpdateContactStatus(c *gin.Context) {
	var input struct {
		Status   string `json:"status" binding:"required"`
		Response string `json:"response"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !validStatuses[input.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid status is required"})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var contact models.Contact
	if err := utils.DB.First(&contact, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	contact.Status = input.Status
	if input.Response != "" {
		now := time.Now()
		contact.Response = input.Response
		contact.RespondedBy = &user.ID
		contact.RespondedAt = &now
	}

	if err := utils.DB.Save(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message updated", "contact": contact})
}

// DeleteContact removes a message (admin).
func DeleteContact(c *gin.Context) {
	var contact models.Contact
	if err := utils.DB.First(&contact, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	if err := utils.DB.Delete(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
