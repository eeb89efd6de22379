package models

import "time"

// Payment status values shared by every fee-bearing entity.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentFailed     = "failed"
	PaymentCancelled  = "cancelled"
)

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed, PaymentCancelled:
		return true
	}
	return false
}

// Payment is the per-record payment sub-state. It is embedded without a
// column prefix so the columns read payment_method, payment_status, ...
type Payment struct {
	PaymentMethod string     `json:"paymentMethod"`
	PaymentStatus string     `gorm:"index;default:pending" json:"paymentStatus"`
	TransactionID *string    `json:"transactionId"`
	PaymentDate   *time.Time `json:"paymentDate"`
}
