package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// PaymentDetails tracks an external payment from order creation to
// confirmation. It is embedded in the record that owns the payment; the status
// only ever moves pending -> completed (or failed), and PaymentID/PaidAt are
// set exactly when the payment completes.
type PaymentDetails struct {
	OrderID   string     `gorm:"column:order_id" json:"order_id"`
	PaymentID string     `gorm:"column:payment_id" json:"payment_id,omitempty"`
	Status    string     `gorm:"column:status;default:pending" json:"status"` // pending, completed, failed, refunded
	Method    string     `gorm:"column:method" json:"method,omitempty"`
	PaidAt    *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
}
