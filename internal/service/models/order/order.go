package order

import (
	"time"

	"github.com/laptopstore/oms/internal/service/models/orderitem"
	"github.com/shopspring/decimal"
)

// Order represents an order aggregate in the system. TotalAmount is fixed at
// placement time as the sum of its items' total prices and never recomputed.
type Order struct {
	ID          string                `json:"orderId"`
	UserID      string                `json:"userId"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Status      Status                `json:"status"`
	CreatedAt   time.Time             `json:"timestamp"`
	OrderItems  []orderitem.OrderItem `json:"orderItems"`
}
