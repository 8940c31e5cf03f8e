package models

import "time"

type PaymentMethod string
type PaymentStatus string

const (
	// Payment methods
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPaypal     PaymentMethod = "paypal"
	PaymentMethodApplePay   PaymentMethod = "apple_pay"
	PaymentMethodCard       PaymentMethod = "card" // legacy rows only

	// Payment statuses
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// Payment exists only for orders that were not cancelled; its amount
// always matches the order total.
type Payment struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	OrderID   uint          `gorm:"not null;uniqueIndex" json:"order_id"`
	Amount    float64       `gorm:"not null" json:"amount"`
	Method    PaymentMethod `gorm:"type:VARCHAR(20)" json:"method"`
	Status    PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
