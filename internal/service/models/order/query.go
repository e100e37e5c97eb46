package order

import "time"

// QueryOrdersModel represents filter parameters for querying orders.
type QueryOrdersModel struct {
	Ids             []string  `json:"ids,omitempty"`
	Status          Status    `json:"status,omitempty"`
	CreatedBefore   time.Time `json:"createdBefore,omitempty"`
	Limit           int       `json:"limit,omitempty"`
	Offset          int       `json:"offset,omitempty"`
	LockForDeletion bool      `json:"-"`
}
