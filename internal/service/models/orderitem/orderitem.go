package orderitem

import (
	"github.com/shopspring/decimal"
)

// OrderItem represents a line within an order. Quantity is the amount ordered,
// not the remaining stock. Brand, model and unit price are snapshotted from the
// laptop at placement time; TotalPrice = UnitPrice * Quantity, frozen.
type OrderItem struct {
	ID          string          `json:"orderItemId"`
	OrderID     string          `json:"-"`
	LaptopID    string          `json:"laptopId"`
	LaptopBrand string          `json:"brand"`
	LaptopModel string          `json:"model"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}
