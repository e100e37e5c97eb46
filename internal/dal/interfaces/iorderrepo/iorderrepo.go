package iorderrepo

import (
	"context"

	"github.com/laptopstore/oms/internal/service/models/order"
)

// IOrderRepository is an interface for order postgres repository.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status order.Status) error

	// DeleteByIds removes the orders in one batch; their items go with them
	// through the foreign-key cascade.
	DeleteByIds(ctx context.Context, orderIDs []string) error
}
