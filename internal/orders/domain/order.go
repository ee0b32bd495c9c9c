package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusRegistered OrderStatus = "registered"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

type OrderItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Subtotal    int64  `json:"subtotal"`
}

// Order is a placed order: an immutable snapshot of the cart at checkout
// time plus the shipping charge that applied.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	UserID       int64       `json:"user_id"`
	Status       OrderStatus `json:"status"`
	Items        []OrderItem `json:"items"`
	TotalAmount  int64       `json:"total_amount"`
	ShippingCost int64       `json:"shipping_cost"`
	FinalAmount  int64       `json:"final_amount"`
	CreatedAt    time.Time   `json:"created_at"`
}
