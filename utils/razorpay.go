package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// ErrGatewayNotConfigured is returned when order creation is attempted without
// Razorpay credentials in the environment.
var ErrGatewayNotConfigured = errors.New("razorpay is not configured: set RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET")

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

func RazorpayConfigFromEnv() RazorpayConfig {
	return RazorpayConfig{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}
}

// orderAPI and paymentAPI are the slices of the Razorpay SDK the client uses,
// so tests can substitute a fake gateway.
type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type paymentAPI interface {
	Fetch(paymentID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayClient wraps the Razorpay order-creation and payment-fetch calls.
// Credentials are injected at construction; a client built without them returns
// ErrGatewayNotConfigured from every gateway call instead of failing at startup.
type RazorpayClient struct {
	cfg      RazorpayConfig
	orders   orderAPI
	payments paymentAPI
}

func NewRazorpayClient(cfg RazorpayConfig) *RazorpayClient {
	rc := &RazorpayClient{cfg: cfg}
	if cfg.KeyID != "" && cfg.KeySecret != "" {
		sdk := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
		sdk.SetTimeout(15) // seconds
		rc.orders = sdk.Order
		rc.payments = sdk.Payment
	}
	return rc
}

// Order is the subset of a Razorpay order the frontend checkout needs.
type Order struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
}

// KeyID exposes the public key for the checkout widget.
func (rc *RazorpayClient) KeyID() string {
	return rc.cfg.KeyID
}

// CreateOrder creates a Razorpay order for the given amount in rupees.
// Razorpay expects the amount in paise.
func (rc *RazorpayClient) CreateOrder(amount int, receipt string) (*Order, error) {
	if rc.orders == nil {
		return nil, ErrGatewayNotConfigured
	}

	data := map[string]interface{}{
		"amount":   amount * 100,
		"currency": "INR",
		"receipt":  receipt,
		"notes": map[string]interface{}{
			"organization": "AYDF",
		},
	}

	body, err := rc.orders.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	order := &Order{Currency: "INR"}
	if id, ok := body["id"].(string); ok {
		order.OrderID = id
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	switch amt := body["amount"].(type) {
	case float64:
		order.Amount = int64(amt)
	case int64:
		order.Amount = amt
	case int:
		order.Amount = int64(amt)
	}

	return order, nil
}

// FetchPayment looks up payment details on the gateway.
func (rc *RazorpayClient) FetchPayment(paymentID string) (map[string]interface{}, error) {
	if rc.payments == nil {
		return nil, ErrGatewayNotConfigured
	}

	payment, err := rc.payments.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment details: %w", err)
	}

	return payment, nil
}

// VerifySignature checks that the checkout callback signature belongs to this
// order/payment pair.
func (rc *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(orderID, paymentID, signature, rc.cfg.KeySecret)
}

// VerifyPaymentSignature reports whether signature is the hex HMAC-SHA256 of
// "orderID|paymentID" under secret. The comparison is constant-time. It always
// returns a boolean, never panics.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	if _, err := mac.Write([]byte(orderID + "|" + paymentID)); err != nil {
		return false
	}
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
