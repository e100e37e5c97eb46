package listlaptops

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/laptopstore/oms/internal/service/models/laptop"
)

type service interface {
	GetLaptops(ctx context.Context, page, size int) ([]laptop.Laptop, error)
}

type listLaptopsRequest struct {
	Page int `schema:"page,omitempty"`
	Size int `schema:"size,omitempty"`
}

// ListLaptops handles the laptop listing request with pagination.
func ListLaptops(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &listLaptopsRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	laptops, err := service.GetLaptops(r.Context(), query.Page, query.Size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting laptops", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(laptops); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
