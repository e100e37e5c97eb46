package placeorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/laptopstore/oms/internal/service/models/order"
	"github.com/laptopstore/oms/internal/service/services/ordersvc"
)

// service is an interface for the service layer.
type service interface {
	PlaceOrder(ctx context.Context, userID string, items []ordersvc.PlacementItem) (order.Order, error)
}

var validate = validator.New()

type placeOrderItem struct {
	LaptopID string `json:"laptopId" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type placeOrderRequest struct {
	UserID     string           `json:"userId" validate:"required,uuid"`
	OrderItems []placeOrderItem `json:"orderItems" validate:"required,min=1,dive"`
}

func (req *placeOrderRequest) ToModel() []ordersvc.PlacementItem {
	items := make([]ordersvc.PlacementItem, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, ordersvc.PlacementItem{
			LaptopID: it.LaptopID,
			Quantity: it.Quantity,
		})
	}

	return items
}

// PlaceOrder handles the order placement request.
func PlaceOrder(w http.ResponseWriter, r *http.Request, service service) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for place order", "error", err)

		return
	}

	if err := validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	placed, err := service.PlaceOrder(r.Context(), req.UserID, req.ToModel())
	if err != nil {
		status := http.StatusInternalServerError

		var stockErr *ordersvc.StockInsufficientError
		var notFoundErr *ordersvc.LaptopNotFoundError
		switch {
		case errors.As(err, &stockErr):
			status = http.StatusConflict
		case errors.As(err, &notFoundErr):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, ordersvc.ErrEmptyOrder):
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)
		if status == http.StatusInternalServerError {
			slog.Error("Error placing order", "error", err)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(placed); err != nil {
		slog.Error("Error sending response for place order", "error", err)
	}
}
