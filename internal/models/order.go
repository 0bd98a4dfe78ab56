package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CustomerName  string          `json:"customerName" gorm:"not null"`
	CustomerEmail string          `json:"customerEmail" gorm:"not null"`
	CustomerPhone string          `json:"customerPhone"`
	ProductID     *uint           `json:"productId"`
	Quantity      int             `json:"quantity" gorm:"not null;default:1"`
	TotalAmount   decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2);not null"`
	OrderType     string          `json:"orderType" gorm:"not null"` // syrup
	Status        string          `json:"status" gorm:"not null;default:'pending'"`
	Notes         string          `json:"notes"`
	StreetAddress string          `json:"streetAddress"`
	City          string          `json:"city"`
	PostalCode    string          `json:"postalCode"`
	Country       string          `json:"country" gorm:"default:'Nederland'"`
	DeliveryMethod string         `json:"deliveryMethod" gorm:"not null;default:'pickup'"` // pickup, delivery
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}
