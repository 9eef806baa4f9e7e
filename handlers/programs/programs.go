package programs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aydf-backend/models"
	"aydf-backend/utils"
)

// ListPrograms returns all active programs with their initiatives.
func ListPrograms(c *gin.Context) {
	var programs []models.Program
	if err := utils.DB.Preload("Initiatives").Where("is_active = ?", true).Order("display_order ASC").Find(&programs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch programs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// GetProgram returns one program by its public slug.
func GetProgram(c *gin.Context) {
	var program models.Program
	if err := utils.DB.Preload("Initiatives").Where("id = ? AND is_active = ?", c.Param("id"), true).First(&program).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Program not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"program": program})
}
