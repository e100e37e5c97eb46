package createlaptop

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/laptopstore/oms/internal/service/models/laptop"
	"github.com/shopspring/decimal"
)

// service is an interface for the service layer.
type service interface {
	CreateLaptop(ctx context.Context, l laptop.Laptop) (laptop.Laptop, error)
}

var validate = validator.New()

type createLaptopRequest struct {
	Brand     string          `json:"brand" validate:"required"`
	Model     string          `json:"model" validate:"required"`
	Processor string          `json:"processor" validate:"required"`
	RAM       int             `json:"ram" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
}

func (req *createLaptopRequest) ToModel() laptop.Laptop {
	return laptop.Laptop{
		Brand:     req.Brand,
		Model:     req.Model,
		Processor: req.Processor,
		RAM:       req.RAM,
		Price:     req.Price,
		Quantity:  req.Quantity,
	}
}

// CreateLaptop handles the laptop registration request.
func CreateLaptop(w http.ResponseWriter, r *http.Request, service service) {
	var req createLaptopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create laptop", "error", err)

		return
	}

	if err := validate.Struct(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	// validator tags don't reach into decimal.Decimal, check the bound here.
	if req.Price.LessThan(decimal.NewFromInt(1)) {
		http.Error(w, "price must be at least 1", http.StatusBadRequest)

		return
	}

	created, err := service.CreateLaptop(r.Context(), req.ToModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating laptop", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error sending response for create laptop", "error", err)
	}
}
