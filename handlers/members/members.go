package members

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
	"aydf-backend/models"
	"aydf-backend/utils"
)

// Gateway is the payment gateway client, injected from main (or a test).
var Gateway *utils.RazorpayClient

// Annual membership fee in rupees.
const membershipAmount = 500

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

type registerMemberRequest struct {
	UserID  uint `json:"user_id" binding:"required"`
	Address struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		Pincode string `json:"pincode"`
	} `json:"address"`
	Occupation  string `json:"occupation"`
	DateOfBirth string `json:"date_of_birth"` // ISO 8601 date
}

// RegisterMember creates a gateway order and a pending membership record.
func RegisterMember(c *gin.Context) {
	var input registerMemberRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user_id is required"})
		return
	}

	if input.Address.Pincode != "" && !pincodePattern.MatchString(input.Address.Pincode) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a valid 6-digit pincode"})
		return
	}

	var dateOfBirth *time.Time
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "date_of_birth must be a YYYY-MM-DD date"})
			return
		}
		dateOfBirth = &dob
	}

	var user models.User
	if err := utils.DB.First(&user, input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var existing models.Member
	if err := utils.DB.Where("user_id = ?", input.UserID).First(&existing).Error; err == nil && existing.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User is already an active member"})
		return
	}

	receiptID := fmt.Sprintf("MEM%d", time.Now().UnixMilli())
	order, err := Gateway.CreateOrder(membershipAmount, receiptID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Membership registration failed", "error": err.Error()})
		return
	}

	member := models.Member{
		UserID:               input.UserID,
		Street:               input.Address.Street,
		City:                 input.Address.City,
		State:                input.Address.State,
		Pincode:              input.Address.Pincode,
		Occupation:           input.Occupation,
		DateOfBirth:          dateOfBirth,
		MembershipExpiryDate: time.Now().AddDate(1, 0, 0),
		Payment: models.PaymentDetails{
			OrderID: order.OrderID,
			Status:  models.PaymentStatusPending,
		},
	}

	if err := utils.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Membership registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Membership registration initiated",
		"member": gin.H{
			"id":            member.ID,
			"membership_id": member.MembershipID,
		},
		"order": gin.H{
			"order_id": order.OrderID,
			"amount":   order.Amount,
			"currency": order.Currency,
			"key":      Gateway.KeyID(),
		},
	})
}

// VerifyMembershipPayment confirms the gateway signature, activates the
// membership and upgrades the user's role. Same idempotent transition as the
// donation flow: a duplicate submission cannot re-activate or re-send the
// receipt.
func VerifyMembershipPayment(c *gin.Context) {
	var input struct {
		MemberID  uint   `json:"member_id" binding:"required"`
		OrderID   string `json:"order_id" binding:"required"`
		PaymentID string `json:"payment_id" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "member_id, order_id, payment_id and signature are required"})
		return
	}

	if !Gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment signature"})
		return
	}

	now := time.Now()
	res := utils.DB.Model(&models.Member{}).
		Where("id = ? AND payment_status = ?", input.MemberID, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_payment_id": input.PaymentID,
			"payment_status":     models.PaymentStatusCompleted,
			"payment_paid_at":    now,
			"is_active":          true,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment verification failed"})
		return
	}

	var member models.Member
	if err := utils.DB.Preload("User").First(&member, input.MemberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Member not found"})
		return
	}

	if res.RowsAffected == 0 {
		if member.Payment.Status == models.PaymentStatusCompleted {
			c.JSON(http.StatusOK, gin.H{"message": "Payment already verified", "member": memberResponse(member)})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"message": "Membership payment is not pending"})
		return
	}

	if err := utils.DB.Model(&models.User{}).Where("id = ?", member.UserID).Update("role", "member").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment verification failed"})
		return
	}

	go utils.SendMembershipReceipt(utils.MembershipReceipt{
		Name:         member.User.Name,
		Email:        member.User.Email,
		MembershipID: member.MembershipID,
		Amount:       membershipAmount,
		PaymentID:    input.PaymentID,
		ExpiryDate:   member.MembershipExpiryDate,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified successfully",
		"member":  memberResponse(member),
	})
}

func memberResponse(member models.Member) gin.H {
	return gin.H{
		"id":            member.ID,
		"membership_id": member.MembershipID,
		"expiry_date":   member.MembershipExpiryDate,
		"user": gin.H{
			"id":    member.User.ID,
			"name":  member.User.Name,
			"email": member.User.Email,
			"phone": member.User.Phone,
		},
	}
}

// GetProfile returns the authenticated user's membership.
func GetProfile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var member models.Member
	if err := utils.DB.Preload("User").Where("user_id = ?", user.ID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Member profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

// ListMembers returns a paginated admin view with an active filter.
func ListMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := utils.DB.Model(&models.Member{})
	if status := c.Query("status"); status != "" {
		query = query.Where("is_active = ?", status == "active")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch members"})
		return
	}

	var members []models.Member
	if err := query.Preload("User").Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members":      members,
		"total":        count,
		"total_pages":  (count + int64(limit) - 1) / int64(limit),
		"current_page": page,
	})
}

// GetMember returns a single member by ID (admin).
func GetMember(c *gin.Context) {
	var member models.Member
	if err := utils.DB.Preload("User").First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

// UpdateMemberStatus activates or deactivates a membership (admin).
// Deactivation demotes the user's role back to "user".
func UpdateMemberStatus(c *gin.Context) {
	var input struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "is_active is required"})
		return
	}

	var member models.Member
	if err := utils.DB.Preload("User").First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Member not found"})
		return
	}

	member.IsActive = *input.IsActive
	if err := utils.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update member status"})
		return
	}

	if !member.IsActive {
		utils.DB.Model(&models.User{}).Where("id = ?", member.UserID).Update("role", "user")
	}

	action := "deactivated"
	if member.IsActive {
		action = "activated"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Member %s successfully", action),
		"member":  member,
	})
}

// DeleteMember removes a membership and demotes the user (admin).
func DeleteMember(c *gin.Context) {
	var member models.Member
	if err := utils.DB.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Member not found"})
		return
	}

	utils.DB.Model(&models.User{}).Where("id = ?", member.UserID).Update("role", "user")

	if err := utils.DB.Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
