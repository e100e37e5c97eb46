package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/laptopstore/oms/internal/dal/postgres"
	"github.com/laptopstore/oms/internal/dal/rabbitmq"
	"github.com/laptopstore/oms/internal/dal/repositories/events"
	outboxrepo "github.com/laptopstore/oms/internal/dal/repositories/outbox/postgres"
	"github.com/laptopstore/oms/internal/otel"
	"github.com/laptopstore/oms/internal/service/services/laptopsvc"
	"github.com/laptopstore/oms/internal/service/services/ordersvc"
	httptransport "github.com/laptopstore/oms/internal/transport/http"
	outboxworker "github.com/laptopstore/oms/internal/worker/outbox"
	"github.com/laptopstore/oms/internal/worker/reaper"
)

// App represents the application.
type App struct {
	laptopSvc      *laptopsvc.LaptopService
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	reaperWorker   *reaper.Worker
	outboxWorker   *outboxworker.Worker
	postgresClient *postgres.Client
	rabbitClient   *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	postgresClient := postgres.MustNewClient()
	rabbitClient := rabbitmq.MustNewClient()

	outboxRepo := outboxrepo.NewPostgresOutboxRepository(postgresClient.Pool())
	eventRepo := events.NewEventRabbitMQRepository(rabbitClient, outboxRepo)

	laptopSvc := laptopsvc.MustNewLaptopService(
		laptopsvc.WithPostgresClient(postgresClient),
	)
	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithPostgresClient(postgresClient),
		ordersvc.WithEventRepository(eventRepo),
	)

	transport := httptransport.NewHTTPTransport(laptopSvc, orderSvc)
	transport.RegisterRoutes()

	return &App{
		laptopSvc:      laptopSvc,
		orderSvc:       orderSvc,
		transport:      transport,
		reaperWorker:   reaper.NewWorker(orderSvc),
		outboxWorker:   outboxworker.NewWorker(outboxRepo, rabbitClient),
		postgresClient: postgresClient,
		rabbitClient:   rabbitClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())

	go a.reaperWorker.Start(workerCtx)
	go a.outboxWorker.Start(workerCtx)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.rabbitClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Tracer provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
