package ieventrepo

import (
	"context"

	"github.com/laptopstore/oms/internal/service/models/event"
)

// IEventRepository publishes order lifecycle events. Delivery is best-effort;
// implementations must not fail the business operation on broker trouble.
type IEventRepository interface {
	PublishOrderEvents(ctx context.Context, events []event.OrderEvent) error
}
