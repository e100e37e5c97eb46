package laptop

// QueryLaptopsModel represents filter parameters for querying laptops.
type QueryLaptopsModel struct {
	Ids    []string `json:"ids,omitempty"`
	Limit  int      `json:"limit,omitempty"`
	Offset int      `json:"offset,omitempty"`
}

// StockAdjustment is a per-laptop quantity delta applied in one batch,
// used when the sweep returns reserved stock to the ledger.
type StockAdjustment struct {
	LaptopID string
	Quantity int
}
