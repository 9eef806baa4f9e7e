package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderAPI struct {
	lastData map[string]interface{}
	response map[string]interface{}
	err      error
}

func (f *fakeOrderAPI) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	f.lastData = data
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func signature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "test_secret"
	orderID := "order_123"
	paymentID := "pay_abc"

	valid := signature(orderID, paymentID, secret)

	assert.True(t, VerifyPaymentSignature(orderID, paymentID, valid, secret))
	assert.False(t, VerifyPaymentSignature(orderID, paymentID, "", secret))
	assert.False(t, VerifyPaymentSignature(orderID, paymentID, "deadbeef", secret))
	assert.False(t, VerifyPaymentSignature(orderID, paymentID, valid+"0", secret))
	assert.False(t, VerifyPaymentSignature(orderID, paymentID, valid, "wrong_secret"))
	assert.False(t, VerifyPaymentSignature("order_456", paymentID, valid, secret))
	assert.False(t, VerifyPaymentSignature(orderID, paymentID, valid, ""))
	assert.False(t, VerifyPaymentSignature(orderID, paymentID, "not-even-hex!", secret))
}

func TestClientVerifySignature(t *testing.T) {
	rc := NewRazorpayClient(RazorpayConfig{KeyID: "rzp_test_key", KeySecret: "test_secret"})

	valid := signature("order_123", "pay_abc", "test_secret")
	assert.True(t, rc.VerifySignature("order_123", "pay_abc", valid))
	assert.False(t, rc.VerifySignature("order_123", "pay_abc", "bogus"))
}

func TestCreateOrderConvertsToPaise(t *testing.T) {
	fake := &fakeOrderAPI{
		response: map[string]interface{}{
			"id":       "order_123",
			"amount":   float64(50000),
			"currency": "INR",
		},
	}
	rc := &RazorpayClient{
		cfg:    RazorpayConfig{KeyID: "rzp_test_key", KeySecret: "test_secret"},
		orders: fake,
	}

	order, err := rc.CreateOrder(500, "MEM123")
	require.NoError(t, err)

	assert.Equal(t, 50000, fake.lastData["amount"])
	assert.Equal(t, "INR", fake.lastData["currency"])
	assert.Equal(t, "MEM123", fake.lastData["receipt"])

	assert.Equal(t, "order_123", order.OrderID)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestCreateOrderMinimumAmount(t *testing.T) {
	fake := &fakeOrderAPI{
		response: map[string]interface{}{
			"id":       "order_min",
			"amount":   float64(100),
			"currency": "INR",
		},
	}
	rc := &RazorpayClient{orders: fake}

	order, err := rc.CreateOrder(1, "DON1")
	require.NoError(t, err)

	assert.Equal(t, 100, fake.lastData["amount"])
	assert.Equal(t, int64(100), order.Amount)
}

func TestCreateOrderNotConfigured(t *testing.T) {
	rc := NewRazorpayClient(RazorpayConfig{})

	_, err := rc.CreateOrder(500, "DON1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGatewayNotConfigured))
}

func TestCreateOrderGatewayError(t *testing.T) {
	fake := &fakeOrderAPI{err: errors.New("BAD_REQUEST_ERROR: amount too small")}
	rc := &RazorpayClient{orders: fake}

	_, err := rc.CreateOrder(500, "DON1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create razorpay order")
}

func TestFetchPaymentNotConfigured(t *testing.T) {
	rc := NewRazorpayClient(RazorpayConfig{})

	_, err := rc.FetchPayment("pay_abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGatewayNotConfigured))
}
