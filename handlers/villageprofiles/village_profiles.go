package villageprofiles

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aydf-backend/models"
	"aydf-backend/utils"
)

type profileRequest struct {
	Name        string `json:"name" binding:"required"`
	Photo       string `json:"photo"`
	Village     string `json:"village" binding:"required"`
	CurrentCity string `json:"current_city" binding:"required"`
	Occupation  string `json:"occupation" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	Bio         string `json:"bio"`
}

// ListProfiles returns active profiles with search and village/city filters.
func ListProfiles(c *gin.Context) {
	listProfiles(c, false)
}

// ListAllProfiles includes inactive profiles (admin).
func ListAllProfiles(c *gin.Context) {
	listProfiles(c, true)
}

func listProfiles(c *gin.Context, includeInactive bool) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := utils.DB.Model(&models.VillageProfile{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR village LIKE ? OR current_city LIKE ? OR occupation LIKE ?", like, like, like, like)
	}
	if village := c.Query("village"); village != "" {
		query = query.Where("village = ?", village)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("current_city = ?", city)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch profiles"})
		return
	}

	var profiles []models.VillageProfile
	if err := query.Order("name ASC").Limit(limit).Offset((page - 1) * limit).Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch profiles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles":     profiles,
		"total":        count,
		"total_pages":  (count + int64(limit) - 1) / int64(limit),
		"current_page": page,
	})
}

// FilterOptions returns the distinct villages and cities for the search UI.
func FilterOptions(c *gin.Context) {
	var villages, cities []string

	if err := utils.DB.Model(&models.VillageProfile{}).Where("is_active = ?", true).Distinct("village").Order("village ASC").Pluck("village", &villages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch filter options"})
		return
	}
	if err := utils.DB.Model(&models.VillageProfile{}).Where("is_active = ?", true).Distinct("current_city").Order("current_city ASC").Pluck("current_city", &cities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch filter options"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"villages": villages, "cities": cities})
}

// GetProfile returns one active profile.
func GetProfile(c *gin.Context) {
	var profile models.VillageProfile
	if err := utils.DB.Where("id = ? AND is_active = ?", c.Param("id"), true).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// CreateProfile adds a village profile (admin).
func CreateProfile(c *gin.Context) {
	var input profileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, village, current city and occupation are required"})
		return
	}

	profile := models.VillageProfile{
		Name:        input.Name,
		Photo:       input.Photo,
		Village:     input.Village,
		CurrentCity: input.CurrentCity,
		Occupation:  input.Occupation,
		Phone:       input.Phone,
		Email:       input.Email,
		Whatsapp:    input.Whatsapp,
		Bio:         input.Bio,
		IsActive:    true,
	}

	if err := utils.DB.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Profile created successfully", "profile": profile})
}

// UpdateProfile edits a village profile (admin).
func UpdateProfile(c *gin.Context) {
	var profile models.VillageProfile
	if err := utils.DB.First(&profile, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}

	var input struct {
		profileRequest
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, village, current city and occupation are required"})
		return
	}

	profile.Name = input.Name
	profile.Photo = input.Photo
	profile.Village = input.Village
	profile.CurrentCity = input.CurrentCity
	profile.Occupation = input.Occupation
	profile.Phone = input.Phone
	profile.Email = input.Email
	profile.Whatsapp = input.Whatsapp
	profile.Bio = input.Bio
	if input.IsActive != nil {
		profile.IsActive = *input.IsActive
	}

	if err := utils.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": profile})
}

// DeleteProfile removes a village profile (admin).
func DeleteProfile(c *gin.Context) {
	var profile models.VillageProfile
	if err := utils.DB.First(&profile, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}

	if err := utils.DB.Delete(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}
