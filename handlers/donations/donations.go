package donations

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"aydf-backend/models"
	"aydf-backend/utils"
)

// Gateway is the payment gateway client, injected from main (or a test).
var Gateway *utils.RazorpayClient

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

var validPrograms = map[string]bool{
	"healthcare":        true,
	"education":         true,
	"rural-development": true,
	"social-justice":    true,
	"general":           true,
}

type createDonationRequest struct {
	Donor struct {
		Name      string `json:"name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone" binding:"required"`
		PANNumber string `json:"pan_number"`
	} `json:"donor" binding:"required"`
	Amount      int    `json:"amount" binding:"required,min=1"`
	Program     string `json:"program"`
	Message     string `json:"message"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// CreateDonation creates a gateway order and a pending donation record.
func CreateDonation(c *gin.Context) {
	var input createDonationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Donor name, a valid email, phone number and an amount of at least ₹1 are required"})
		return
	}

	if !phonePattern.MatchString(input.Donor.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a valid 10-digit phone number"})
		return
	}

	program := input.Program
	if program == "" {
		program = "general"
	}
	if !validPrograms[program] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown program"})
		return
	}

	receiptID := fmt.Sprintf("DON%d", time.Now().UnixMilli())
	order, err := Gateway.CreateOrder(input.Amount, receiptID)
	if err != nil {
		log.Printf("Failed to create donation order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create donation", "error": err.Error()})
		return
	}

	donation := models.Donation{
		DonorName:   input.Donor.Name,
		DonorEmail:  input.Donor.Email,
		DonorPhone:  input.Donor.Phone,
		PANNumber:   input.Donor.PANNumber,
		Amount:      input.Amount,
		Program:     program,
		Message:     input.Message,
		IsAnonymous: input.IsAnonymous,
		Payment: models.PaymentDetails{
			OrderID: order.OrderID,
			Status:  models.PaymentStatusPending,
		},
	}

	if err := utils.DB.Create(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Donation order created",
		"donation": gin.H{"id": donation.ID},
		"order": gin.H{
			"order_id": order.OrderID,
			"amount":   order.Amount,
			"currency": order.Currency,
			"key":      Gateway.KeyID(),
		},
	})
}

// VerifyDonation confirms the gateway signature and completes the payment.
// The status transition is a conditional update on the pending state, so a
// duplicate submission can neither re-transition the record nor re-send the
// receipt.
func VerifyDonation(c *gin.Context) {
	var input struct {
		DonationID uint   `json:"donation_id" binding:"required"`
		OrderID    string `json:"order_id" binding:"required"`
		PaymentID  string `json:"payment_id" binding:"required"`
		Signature  string `json:"signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "donation_id, order_id, payment_id and signature are required"})
		return
	}

	if !Gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment signature"})
		return
	}

	now := time.Now()
	res := utils.DB.Model(&models.Donation{}).
		Where("id = ? AND payment_status = ?", input.DonationID, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_payment_id": input.PaymentID,
			"payment_status":     models.PaymentStatusCompleted,
			"payment_paid_at":    now,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment verification failed"})
		return
	}

	var donation models.Donation
	if err := utils.DB.First(&donation, input.DonationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Donation not found"})
		return
	}

	if res.RowsAffected == 0 {
		if donation.Payment.Status == models.PaymentStatusCompleted {
			c.JSON(http.StatusOK, gin.H{"message": "Payment already verified", "donation": donation})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"message": "Donation payment is not pending"})
		return
	}

	if !donation.IsAnonymous {
		go utils.SendDonationReceipt(utils.DonationReceipt{
			DonorName:  donation.DonorName,
			DonorEmail: donation.DonorEmail,
			Amount:     donation.Amount,
			PaymentID:  input.PaymentID,
			DonationID: donation.ID,
			Program:    donation.Program,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Donation successful! Thank you for your contribution.",
		"donation": donation,
	})
}

// ListDonations returns a paginated admin view with status/program filters.
func ListDonations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := utils.DB.Model(&models.Donation{})
	if status := c.Query("status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}
	if program := c.Query("program"); program != "" {
		query = query.Where("program = ?", program)
	}
	if dateFrom := c.Query("date_from"); dateFrom != "" {
		query = query.Where("created_at >= ?", dateFrom)
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		query = query.Where("created_at <= ?", dateTo)
	}
	if minAmount := c.Query("min_amount"); minAmount != "" {
		query = query.Where("amount >= ?", minAmount)
	}
	if maxAmount := c.Query("max_amount"); maxAmount != "" {
		query = query.Where("amount <= ?", maxAmount)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch donations"})
		return
	}

	var donations []models.Donation
	if err := query.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&donations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch donations"})
		return
	}

	var totalAmount int64
	utils.DB.Model(&models.Donation{}).
		Where("payment_status = ?", models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalAmount)

	c.JSON(http.StatusOK, gin.H{
		"donations":    donations,
		"total":        count,
		"total_pages":  (count + int64(limit) - 1) / int64(limit),
		"current_page": page,
		"total_amount": totalAmount,
	})
}

// ExportDonations streams completed donations as CSV.
func ExportDonations(c *gin.Context) {
	query := utils.DB.Model(&models.Donation{}).Where("payment_status = ?", models.PaymentStatusCompleted)
	if program := c.Query("program"); program != "" {
		query = query.Where("program = ?", program)
	}
	if dateFrom := c.Query("date_from"); dateFrom != "" {
		query = query.Where("created_at >= ?", dateFrom)
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		query = query.Where("created_at <= ?", dateTo)
	}

	var donations []models.Donation
	if err := query.Order("created_at DESC").Find(&donations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export donations"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=donations-%d.csv", time.Now().UnixMilli()))

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{"Date", "Donor Name", "Email", "Phone", "Amount", "Program", "Payment ID", "Anonymous"})
	for _, d := range donations {
		name, email, phone := d.DonorName, d.DonorEmail, d.DonorPhone
		anonymous := "No"
		if d.IsAnonymous {
			name, email, phone = "Anonymous", "", ""
			anonymous = "Yes"
		}
		w.Write([]string{
			d.CreatedAt.Format("02/01/2006"),
			name,
			email,
			phone,
			strconv.Itoa(d.Amount),
			d.Program,
			d.Payment.PaymentID,
			anonymous,
		})
	}
}

// DonationStats returns completed donation totals grouped by program.
func DonationStats(c *gin.Context) {
	type programStat struct {
		Program     string `json:"program"`
		TotalAmount int64  `json:"total_amount"`
		Count       int64  `json:"count"`
	}

	var stats []programStat
	if err := utils.DB.Model(&models.Donation{}).
		Select("program, COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS count").
		Where("payment_status = ?", models.PaymentStatusCompleted).
		Group("program").
		Scan(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
		return
	}

	var totalDonations, totalAmount int64
	for _, s := range stats {
		totalDonations += s.Count
		totalAmount += s.TotalAmount
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_donations": totalDonations,
			"total_amount":    totalAmount,
			"by_program":      stats,
		},
	})
}
