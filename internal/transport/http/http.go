package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/laptopstore/oms/internal/service/models/laptop"
	"github.com/laptopstore/oms/internal/service/models/order"
	"github.com/laptopstore/oms/internal/service/services/ordersvc"
	createlaptop "github.com/laptopstore/oms/internal/transport/http/create_laptop"
	listlaptops "github.com/laptopstore/oms/internal/transport/http/list_laptops"
	payorder "github.com/laptopstore/oms/internal/transport/http/pay_order"
	placeorder "github.com/laptopstore/oms/internal/transport/http/place_order"
	"github.com/laptopstore/oms/pkg/http/middleware/trace"
	"github.com/laptopstore/oms/pkg/logger"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type laptopService interface {
	CreateLaptop(ctx context.Context, l laptop.Laptop) (laptop.Laptop, error)
	GetLaptops(ctx context.Context, page, size int) ([]laptop.Laptop, error)
}

type orderService interface {
	PlaceOrder(ctx context.Context, userID string, items []ordersvc.PlacementItem) (order.Order, error)
	MarkOrderAsPaid(ctx context.Context, orderID string) error
}

type HTTPTransport struct {
	server    *http.Server
	router    *chi.Mux
	laptopSvc laptopService
	orderSvc  orderService
}

func NewHTTPTransport(laptopSvc laptopService, orderSvc orderService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:    server,
		router:    router,
		laptopSvc: laptopSvc,
		orderSvc:  orderSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Post("/laptops", h.createLaptop)
		r.Get("/laptops", h.listLaptops)
		r.Post("/orders/place", h.placeOrder)
		r.Post("/orders/{orderId}/pay", h.payOrder)
	})

	h.router.Get("/api/docs/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, viper.GetString("server.http.openapi_path"))
	})
	h.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/api/docs/openapi.json"),
	))
}

func (h *HTTPTransport) createLaptop(w http.ResponseWriter, r *http.Request) {
	createlaptop.CreateLaptop(w, r, h.laptopSvc)
}

func (h *HTTPTransport) listLaptops(w http.ResponseWriter, r *http.Request) {
	listlaptops.ListLaptops(w, r, h.laptopSvc)
}

func (h *HTTPTransport) placeOrder(w http.ResponseWriter, r *http.Request) {
	placeorder.PlaceOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) payOrder(w http.ResponseWriter, r *http.Request) {
	payorder.PayOrder(w, r, h.orderSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
