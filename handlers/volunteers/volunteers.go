package volunteers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
	"aydf-backend/models"
	"aydf-backend/utils"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

var validStatuses = map[string]bool{
	"pending":  true,
	"approved": true,
	"rejected": true,
	"active":   true,
	"inactive": true,
}

type applyRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone" binding:"required"`
	Age          int      `json:"age" binding:"required,min=16"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Occupation   string   `json:"occupation"`
	Education    string   `json:"education"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Availability string   `json:"availability"`
	Experience   string   `json:"experience"`
	Reason       string   `json:"reason" binding:"required"`
}

// Apply accepts a public volunteer application.
func Apply(c *gin.Context) {
	var input applyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, a valid email, phone, age of at least 16 and a reason are required"})
		return
	}

	if !phonePattern.MatchString(input.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a valid 10-digit phone number"})
		return
	}

	volunteer := models.Volunteer{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Age:          input.Age,
		City:         input.City,
		State:        input.State,
		Occupation:   input.Occupation,
		Education:    input.Education,
		Skills:       strings.Join(input.Skills, ","),
		Interests:    strings.Join(input.Interests, ","),
		Availability: input.Availability,
		Experience:   input.Experience,
		Reason:       input.Reason,
		Status:       "pending",
	}

	if err := utils.DB.Create(&volunteer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Application submission failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully! We will contact you soon.",
		"volunteer": gin.H{
			"id":    volunteer.ID,
			"name":  volunteer.Name,
			"email": volunteer.Email,
		},
	})
}

// ListVolunteers returns a paginated admin view with a status filter.
func ListVolunteers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := utils.DB.Model(&models.Volunteer{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if interest := c.Query("interest"); interest != "" {
		query = query.Where("interests LIKE ?", "%"+interest+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch volunteers"})
		return
	}

	var volunteers []models.Volunteer
	if err := query.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&volunteers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch volunteers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"volunteers":   volunteers,
		"total":        count,
		"total_pages":  (count + int64(limit) - 1) / int64(limit),
		"current_page": page,
	})
}

// GetVolunteer returns a single application by ID (admin).
func GetVolunteer(c *gin.Context) {
	var volunteer models.Volunteer
	if err := utils.DB.First(&volunteer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Volunteer application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteer": volunteer})
}

// Approve marks an application approved.
func Approve(c *gin.Context) {
	review(c, "approved", "Volunteer application approved successfully")
}

// Reject marks an application rejected.
func Reject(c *gin.Context) {
	review(c, "rejected", "Volunteer application rejected")
}

func review(c *gin.Context, status, message string) {
	var input struct {
		Notes string `json:"notes"`
	}
	c.ShouldBindJSON(&input)

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var volunteer models.Volunteer
	if err := utils.DB.First(&volunteer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Volunteer application not found"})
		return
	}

	now := time.Now()
	volunteer.Status = status
	volunteer.ReviewNotes = input.Notes
	volunteer.ReviewedBy = &user.ID
	volunteer.ReviewedAt = &now

	if err := utils.DB.Save(&volunteer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "volunteer": volunteer})
}

// UpdateStatus sets an arbitrary valid status on an application (admin).
func UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
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

	var volunteer models.Volunteer
	if err := utils.DB.First(&volunteer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Volunteer application not found"})
		return
	}

	now := time.Now()
	volunteer.Status = input.Status
	if input.Notes != "" {
		volunteer.ReviewNotes = input.Notes
	}
	volunteer.ReviewedBy = &user.ID
	volunteer.ReviewedAt = &now

	if err := utils.DB.Save(&volunteer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update volunteer status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Volunteer status updated", "volunteer": volunteer})
}
