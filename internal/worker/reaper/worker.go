package reaper

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// service is the slice of the order service the reaper needs.
type service interface {
	DeleteNotPaidOrders(ctx context.Context) error
}

// Worker triggers the unpaid-order sweep on a fixed interval. The sweep
// itself is idempotent; a failed run is simply reattempted on the next tick.
type Worker struct {
	service  service
	interval time.Duration
	stopCh   chan struct{}
}

// NewWorker creates a new reaper worker.
func NewWorker(service service) *Worker {
	intervalSeconds := viper.GetInt("reaper.interval_seconds")
	if intervalSeconds == 0 {
		intervalSeconds = 60
	}

	return &Worker{
		service:  service,
		interval: time.Duration(intervalSeconds) * time.Second,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the fixed-interval sweep loop.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Reaper worker started", "interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reaper worker shutting down")

			return
		case <-w.stopCh:
			slog.Info("Reaper worker stopped")

			return
		case <-ticker.C:
			if err := w.service.DeleteNotPaidOrders(ctx); err != nil {
				slog.Error("Unpaid order sweep failed, will retry next tick", "error", err)
			}
		}
	}
}

// Stop stops the worker.
func (w *Worker) Stop() {
	close(w.stopCh)
}
