package orderitem

// QueryOrderItemsModel represents filter parameters for querying order items.
type QueryOrderItemsModel struct {
	Ids       []string `json:"ids,omitempty"`
	OrderIds  []string `json:"orderIds,omitempty"`
	LaptopIds []string `json:"laptopIds,omitempty"`
}
