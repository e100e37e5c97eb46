package payorder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/laptopstore/oms/internal/service/services/ordersvc"
)

// service is an interface for the service layer.
type service interface {
	MarkOrderAsPaid(ctx context.Context, orderID string) error
}

// PayOrder handles the mark-order-as-paid request.
func PayOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderID := chi.URLParam(r, "orderId")
	if _, err := uuid.Parse(orderID); err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)

		return
	}

	if err := service.MarkOrderAsPaid(r.Context(), orderID); err != nil {
		status := http.StatusInternalServerError

		var notFoundErr *ordersvc.OrderNotFoundError
		var alreadyPaidErr *ordersvc.AlreadyPaidError
		switch {
		case errors.As(err, &notFoundErr):
			status = http.StatusNotFound
		case errors.As(err, &alreadyPaidErr):
			status = http.StatusConflict
		}

		http.Error(w, err.Error(), status)
		if status == http.StatusInternalServerError {
			slog.Error("Error marking order as paid", "error", err)
		}

		return
	}

	w.WriteHeader(http.StatusOK)
}
