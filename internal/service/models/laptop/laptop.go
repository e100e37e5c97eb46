package laptop

import (
	"time"

	"github.com/shopspring/decimal"
)

// Laptop represents a stock-keeping unit in the ledger. Quantity is the
// remaining stock, mutated only by order placement and the unpaid-order sweep.
type Laptop struct {
	ID        string          `json:"laptopId"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Processor string          `json:"processor"`
	RAM       int             `json:"ram"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
}
