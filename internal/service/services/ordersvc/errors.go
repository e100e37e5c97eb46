package ordersvc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyOrder is returned when a placement request carries no items.
var ErrEmptyOrder = errors.New("order must contain at least one item")

// StockInsufficientError is returned when a requested quantity exceeds the
// remaining stock of a laptop. Placement aborts entirely; no stock is touched.
type StockInsufficientError struct {
	LaptopID  string
	Requested int
	Available int
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf(
		"requested quantity %d for laptop %s exceeds available stock %d",
		e.Requested, e.LaptopID, e.Available,
	)
}

// LaptopNotFoundError is returned when a placement references laptop ids that
// do not exist. The whole request is rejected rather than silently charging
// for the subset that resolved.
type LaptopNotFoundError struct {
	LaptopIDs []string
}

func (e *LaptopNotFoundError) Error() string {
	return "laptops not found: " + strings.Join(e.LaptopIDs, ", ")
}

// OrderNotFoundError is returned when an operation references an unknown order.
type OrderNotFoundError struct {
	OrderID string
}

func (e *OrderNotFoundError) Error() string {
	return "order not found: " + e.OrderID
}

// AlreadyPaidError is returned when an order is marked as paid twice.
// Paying a paid order is a conflict, not a no-op.
type AlreadyPaidError struct {
	OrderID string
}

func (e *AlreadyPaidError) Error() string {
	return "order already paid: " + e.OrderID
}
