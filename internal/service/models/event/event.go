package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies an order lifecycle event.
type Kind string

const (
	KindOrderPlaced Kind = "order.placed"
	KindOrderPaid   Kind = "order.paid"
	KindOrderReaped Kind = "order.reaped"
)

// OrderEvent is the payload published to RabbitMQ on order lifecycle changes.
type OrderEvent struct {
	Kind        Kind            `json:"kind"`
	OrderID     string          `json:"orderId"`
	UserID      string          `json:"userId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	OccurredAt  time.Time       `json:"occurredAt"`
}
