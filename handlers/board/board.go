package board

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"aydf-backend/models"
	"aydf-backend/utils"
)

var validPositions = map[string]bool{
	"president":  true,
	"secretary":  true,
	"supervisor": true,
	"member":     true,
}

var validBoardTypes = map[string]bool{
	"health":           true,
	"education":        true,
	"city-development": true,
	"social-justice":   true,
	"outreach":         true,
}

// ListBoard returns active board members for the public site, grouped by
// board and ordered within each.
func ListBoard(c *gin.Context) {
	query := utils.DB.Model(&models.BoardMember{}).Where("is_active = ?", true)
	if boardType := c.Query("board_type"); boardType != "" {
		query = query.Where("board_type = ?", boardType)
	}

	var board []models.BoardMember
	if err := query.Order("board_type ASC, display_order ASC").Find(&board).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch board members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": board})
}

// ListAllBoard returns every board member, active or not (admin).
func ListAllBoard(c *gin.Context) {
	var board []models.BoardMember
	if err := utils.DB.Order("board_type ASC, display_order ASC").Find(&board).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch board members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": board})
}

// CreateBoardMember adds a board member from a multipart form (admin).
func CreateBoardMember(c *gin.Context) {
	name := c.PostForm("name")
	position := c.PostForm("position")
	boardType := c.PostForm("board_type")

	if name == "" || !validPositions[position] || !validBoardTypes[boardType] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, a valid position and a valid board type are required"})
		return
	}

	order, _ := strconv.Atoi(c.PostForm("order"))

	member := models.BoardMember{
		Name:      name,
		Position:  position,
		BoardType: boardType,
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
		Bio:       c.PostForm("bio"),
		LinkedIn:  c.PostForm("linked_in"),
		Order:     order,
		IsActive:  true,
		JoinedAt:  time.Now(),
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read uploaded image"})
			return
		}
		defer file.Close()

		result, err := utils.UploadMedia(file, "aydf/board")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image", "error": err.Error()})
			return
		}
		member.ImageURL = result.URL
		member.ImagePublicID = result.PublicID
	}

	if err := utils.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create board member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Board member added successfully", "board_member": member})
}

// UpdateBoardMember edits a board member (admin).
func UpdateBoardMember(c *gin.Context) {
	var member models.BoardMember
	if err := utils.DB.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Board member not found"})
		return
	}

	var input struct {
		Name      string `json:"name"`
		Position  string `json:"position"`
		BoardType string `json:"board_type"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Bio       string `json:"bio"`
		LinkedIn  string `json:"linked_in"`
		Order     *int   `json:"order"`
		IsActive  *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if input.Position != "" && !validPositions[input.Position] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown position"})
		return
	}
	if input.BoardType != "" && !validBoardTypes[input.BoardType] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown board type"})
		return
	}

	if input.Name != "" {
		member.Name = input.Name
	}
	if input.Position != "" {
		member.Position = input.Position
	}
	if input.BoardType != "" {
		member.BoardType = input.BoardType
	}
	if input.Email != "" {
		member.Email = input.Email
	}
	if input.Phone != "" {
		member.Phone = input.Phone
	}
	if input.Bio != "" {
		member.Bio = input.Bio
	}
	if input.LinkedIn != "" {
		member.LinkedIn = input.LinkedIn
	}
	if input.Order != nil {
		member.Order = *input.Order
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := utils.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update board member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board member updated successfully", "board_member": member})
}

// DeleteBoardMember removes a board member and their hosted image (admin).
func DeleteBoardMember(c *gin.Context) {
	var member models.BoardMember
	if err := utils.DB.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Board member not found"})
		return
	}

	if err := utils.DB.Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete board member"})
		return
	}

	go utils.DeleteMedia(member.ImagePublicID)

	c.JSON(http.StatusOK, gin.H{"message": "Board member deleted successfully"})
}
