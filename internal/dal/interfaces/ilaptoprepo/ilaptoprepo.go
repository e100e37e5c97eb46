package ilaptoprepo

import (
	"context"

	"github.com/laptopstore/oms/internal/service/models/laptop"
)

// ILaptopRepository is an interface for laptop postgres repository.
type ILaptopRepository interface {
	Insert(ctx context.Context, l laptop.Laptop) (laptop.Laptop, error)
	Query(ctx context.Context, filter *laptop.QueryLaptopsModel) ([]laptop.Laptop, error)

	// ReserveStock decrements a laptop's quantity by qty in a single
	// conditional update and reports whether the decrement applied.
	// False means the remaining stock was below qty.
	ReserveStock(ctx context.Context, laptopID string, qty int) (bool, error)

	// RestoreStock adds the given quantities back to the ledger in one batch.
	RestoreStock(ctx context.Context, adjustments []laptop.StockAdjustment) error
}
