package donations

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aydf-backend/models"
	"aydf-backend/utils"
)

const testSecret = "test_secret"

func setupTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Donation{}))
	utils.DB = db

	Gateway = utils.NewRazorpayClient(utils.RazorpayConfig{KeyID: "rzp_test_key", KeySecret: testSecret})

	r := gin.New()
	RegisterDonationRoutes(r.Group("/api/donations"))
	return r
}

func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func seedPendingDonation(t *testing.T, orderID string) models.Donation {
	donation := models.Donation{
		DonorName:   "Asha Rao",
		DonorEmail:  "asha@example.com",
		DonorPhone:  "9876543210",
		Amount:      500,
		Program:     "education",
		IsAnonymous: true,
		Payment: models.PaymentDetails{
			OrderID: orderID,
			Status:  models.PaymentStatusPending,
		},
	}
	require.NoError(t, utils.DB.Create(&donation).Error)
	return donation
}

func TestCreateDonationRejectsInvalidBody(t *testing.T) {
	r := setupTest(t)

	w := performRequest(r, http.MethodPost, "/api/donations/create", gin.H{"amount": 100}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	utils.DB.Model(&models.Donation{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateDonationGatewayNotConfigured(t *testing.T) {
	r := setupTest(t)
	Gateway = utils.NewRazorpayClient(utils.RazorpayConfig{})

	body := gin.H{
		"donor":  gin.H{"name": "Asha Rao", "email": "asha@example.com", "phone": "9876543210"},
		"amount": 500,
	}
	w := performRequest(r, http.MethodPost, "/api/donations/create", body, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var count int64
	utils.DB.Model(&models.Donation{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestVerifyDonationInvalidSignature(t *testing.T) {
	r := setupTest(t)
	donation := seedPendingDonation(t, "order_123")

	body := gin.H{
		"donation_id": donation.ID,
		"order_id":    "order_123",
		"payment_id":  "pay_abc",
		"signature":   "bogus",
	}
	w := performRequest(r, http.MethodPost, "/api/donations/verify", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment signature")

	var reloaded models.Donation
	require.NoError(t, utils.DB.First(&reloaded, donation.ID).Error)
	assert.Equal(t, models.PaymentStatusPending, reloaded.Payment.Status)
	assert.Empty(t, reloaded.Payment.PaymentID)
}

func TestVerifyDonationUnknownRecord(t *testing.T) {
	r := setupTest(t)

	body := gin.H{
		"donation_id": 999,
		"order_id":    "order_123",
		"payment_id":  "pay_abc",
		"signature":   signature("order_123", "pay_abc"),
	}
	w := performRequest(r, http.MethodPost, "/api/donations/verify", body, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyDonationCompletesPending(t *testing.T) {
	r := setupTest(t)
	donation := seedPendingDonation(t, "order_123")

	body := gin.H{
		"donation_id": donation.ID,
		"order_id":    "order_123",
		"payment_id":  "pay_abc",
		"signature":   signature("order_123", "pay_abc"),
	}
	w := performRequest(r, http.MethodPost, "/api/donations/verify", body, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Donation
	require.NoError(t, utils.DB.First(&reloaded, donation.ID).Error)
	assert.Equal(t, models.PaymentStatusCompleted, reloaded.Payment.Status)
	assert.Equal(t, "pay_abc", reloaded.Payment.PaymentID)
	require.NotNil(t, reloaded.Payment.PaidAt)
}

func TestVerifyDonationIdempotent(t *testing.T) {
	r := setupTest(t)
	donation := seedPendingDonation(t, "order_123")

	body := gin.H{
		"donation_id": donation.ID,
		"order_id":    "order_123",
		"payment_id":  "pay_abc",
		"signature":   signature("order_123", "pay_abc"),
	}

	first := performRequest(r, http.MethodPost, "/api/donations/verify", body, "")
	assert.Equal(t, http.StatusOK, first.Code)

	var afterFirst models.Donation
	require.NoError(t, utils.DB.First(&afterFirst, donation.ID).Error)

	second := performRequest(r, http.MethodPost, "/api/donations/verify", body, "")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "Payment already verified")

	var afterSecond models.Donation
	require.NoError(t, utils.DB.First(&afterSecond, donation.ID).Error)
	assert.Equal(t, afterFirst.Payment.PaymentID, afterSecond.Payment.PaymentID)
	require.NotNil(t, afterSecond.Payment.PaidAt)
	assert.Equal(t, afterFirst.Payment.PaidAt.Unix(), afterSecond.Payment.PaidAt.Unix())
}

func TestVerifyDonationNotPending(t *testing.T) {
	r := setupTest(t)

	donation := models.Donation{
		DonorName:  "Asha Rao",
		DonorEmail: "asha@example.com",
		DonorPhone: "9876543210",
		Amount:     500,
		Payment: models.PaymentDetails{
			OrderID: "order_123",
			Status:  models.PaymentStatusFailed,
		},
	}
	require.NoError(t, utils.DB.Create(&donation).Error)

	body := gin.H{
		"donation_id": donation.ID,
		"order_id":    "order_123",
		"payment_id":  "pay_abc",
		"signature":   signature("order_123", "pay_abc"),
	}
	w := performRequest(r, http.MethodPost, "/api/donations/verify", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDonationStatsCountsCompletedOnly(t *testing.T) {
	r := setupTest(t)

	seedPendingDonation(t, "order_pending")

	completed := seedPendingDonation(t, "order_done")
	body := gin.H{
		"donation_id": completed.ID,
		"order_id":    "order_done",
		"payment_id":  "pay_done",
		"signature":   signature("order_done", "pay_done"),
	}
	w := performRequest(r, http.MethodPost, "/api/donations/verify", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	stats := performRequest(r, http.MethodGet, "/api/donations/stats", nil, "")
	assert.Equal(t, http.StatusOK, stats.Code)

	var resp struct {
		Stats struct {
			TotalDonations int64 `json:"total_donations"`
			TotalAmount    int64 `json:"total_amount"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(stats.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Stats.TotalDonations)
	assert.EqualValues(t, 500, resp.Stats.TotalAmount)
}

func TestListDonationsRequiresAdmin(t *testing.T) {
	r := setupTest(t)

	w := performRequest(r, http.MethodGet, "/api/donations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListDonationsAsAdmin(t *testing.T) {
	r := setupTest(t)

	admin := models.User{Name: "Admin", Email: "admin@example.com", Password: "x", Phone: "9999999999", Role: "admin", IsActive: true}
	require.NoError(t, utils.DB.Create(&admin).Error)

	token, err := utils.GenerateToken(admin.ID, admin.Role)
	require.NoError(t, err)

	seedPendingDonation(t, "order_123")

	w := performRequest(r, http.MethodGet, "/api/donations?status=pending", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Donations []models.Donation `json:"donations"`
		Total     int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Total)
	require.Len(t, resp.Donations, 1)
	assert.Equal(t, "order_123", resp.Donations[0].Payment.OrderID)
}

func TestExportDonationsCSV(t *testing.T) {
	r := setupTest(t)

	admin := models.User{Name: "Admin", Email: "admin@example.com", Password: "x", Phone: "9999999999", Role: "admin", IsActive: true}
	require.NoError(t, utils.DB.Create(&admin).Error)
	token, err := utils.GenerateToken(admin.ID, admin.Role)
	require.NoError(t, err)

	donation := seedPendingDonation(t, "order_csv")
	body := gin.H{
		"donation_id": donation.ID,
		"order_id":    "order_csv",
		"payment_id":  "pay_csv",
		"signature":   signature("order_csv", "pay_csv"),
	}
	require.Equal(t, http.StatusOK, performRequest(r, http.MethodPost, "/api/donations/verify", body, "").Code)

	w := performRequest(r, http.MethodGet, "/api/donations/export", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "pay_csv")
	// anonymous donor is redacted in the export
	assert.Contains(t, w.Body.String(), fmt.Sprintf("Anonymous,,,%d", donation.Amount))
}
