package models

import "time"

type OrderStatus string

const (
	// Order statuses
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting fulfilment
	OrderStatusCompleted OrderStatus = "completed" // Delivered and paid
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled, never paid
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      string      `gorm:"not null;index" json:"user_id"`
	User        User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Payment     *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	// Price is the product price at order time, not a live reference.
	Price float64 `gorm:"not null" json:"price"`
}
