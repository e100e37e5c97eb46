package ordersvc

import (
	"context"
	"log/slog"
	"time"

	"github.com/laptopstore/oms/internal/dal/interfaces/ieventrepo"
	"github.com/laptopstore/oms/internal/dal/interfaces/ilaptoprepo"
	"github.com/laptopstore/oms/internal/dal/interfaces/iorderitemrepo"
	"github.com/laptopstore/oms/internal/dal/interfaces/iorderrepo"
	"github.com/laptopstore/oms/internal/dal/postgres"
	"github.com/laptopstore/oms/internal/dal/uow"
	"github.com/laptopstore/oms/internal/service/models/event"
	"github.com/laptopstore/oms/internal/service/models/laptop"
	"github.com/laptopstore/oms/internal/service/models/order"
	"github.com/laptopstore/oms/internal/service/models/orderitem"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// defaultUnpaidTTL is how long a PENDING order may stay unpaid before the
// sweep reclaims its stock.
const defaultUnpaidTTL = 10 * time.Minute

// PlacementItem is one requested line of an order: a laptop and how many
// units of it to reserve.
type PlacementItem struct {
	LaptopID string
	Quantity int
}

// OrderService owns order placement, payment transitions and the
// unpaid-order sweep.
type OrderService struct {
	pgClient   *postgres.Client
	eventRepo  ieventrepo.IEventRepository
	uowFactory func() unitOfWork
	unpaidTTL  time.Duration
}

func (s *OrderService) newUOW() unitOfWork {
	if s.uowFactory != nil {
		return s.uowFactory()
	}
	return uow.NewUnitOfWork(s.pgClient)
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	LaptopRepository() ilaptoprepo.ILaptopRepository
	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{
		unpaidTTL: defaultUnpaidTTL,
	}

	if minutes := viper.GetInt("reaper.unpaid_ttl_minutes"); minutes > 0 {
		s.unpaidTTL = time.Duration(minutes) * time.Minute
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithEventRepository sets the order event publisher for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventRepository(eventRepo ieventrepo.IEventRepository) option {
	return func(s *OrderService) {
		s.eventRepo = eventRepo
	}
}

// PlaceOrder validates the requested quantities against the stock ledger,
// reserves the stock, and persists the order with its items in one
// transaction. The returned order is PENDING.
//
// Validation is all-or-nothing: any unknown laptop id or any shortfall
// aborts the whole placement with stock untouched.
func (s *OrderService) PlaceOrder(
	ctx context.Context,
	userID string,
	items []PlacementItem,
) (order.Order, error) {
	if len(items) == 0 {
		return order.Order{}, ErrEmptyOrder
	}

	// An order may reference the same laptop across several lines; stock
	// checks and decrements run over the summed quantities.
	requested := make(map[string]int, len(items))
	laptopIDs := make([]string, 0, len(items))
	for _, it := range items {
		if _, seen := requested[it.LaptopID]; !seen {
			laptopIDs = append(laptopIDs, it.LaptopID)
		}
		requested[it.LaptopID] += it.Quantity
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return order.Order{}, err
	}
	defer func() { _ = work.Rollback(ctx) }()

	laptops, err := work.LaptopRepository().Query(ctx, &laptop.QueryLaptopsModel{Ids: laptopIDs})
	if err != nil {
		return order.Order{}, err
	}

	laptopByID := make(map[string]laptop.Laptop, len(laptops))
	for _, l := range laptops {
		laptopByID[l.ID] = l
	}

	var missing []string
	for _, id := range laptopIDs {
		if _, ok := laptopByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return order.Order{}, &LaptopNotFoundError{LaptopIDs: missing}
	}

	// Check every laptop before mutating anything.
	for _, id := range laptopIDs {
		l := laptopByID[id]
		if requested[id] > l.Quantity {
			return order.Order{}, &StockInsufficientError{
				LaptopID:  id,
				Requested: requested[id],
				Available: l.Quantity,
			}
		}
	}

	orderItems := make([]orderitem.OrderItem, 0, len(items))
	totalAmount := decimal.Zero
	for _, it := range items {
		l := laptopByID[it.LaptopID]
		totalPrice := l.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		totalAmount = totalAmount.Add(totalPrice)

		orderItems = append(orderItems, orderitem.OrderItem{
			LaptopID:    l.ID,
			LaptopBrand: l.Brand,
			LaptopModel: l.Model,
			UnitPrice:   l.Price,
			Quantity:    it.Quantity,
			TotalPrice:  totalPrice,
		})
	}

	// The floor check repeats inside the conditional update, so a
	// concurrent placement that won the race surfaces here instead of
	// overselling.
	for _, id := range laptopIDs {
		ok, err := work.LaptopRepository().ReserveStock(ctx, id, requested[id])
		if err != nil {
			return order.Order{}, err
		}
		if !ok {
			return order.Order{}, &StockInsufficientError{
				LaptopID:  id,
				Requested: requested[id],
				Available: laptopByID[id].Quantity,
			}
		}
	}

	ord, err := work.OrderRepository().Insert(ctx, order.Order{
		UserID:      userID,
		TotalAmount: totalAmount,
		Status:      order.StatusPending,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return order.Order{}, err
	}

	for i := range orderItems {
		orderItems[i].OrderID = ord.ID
	}
	orderItems, err = work.OrderItemRepository().BulkInsert(ctx, orderItems)
	if err != nil {
		return order.Order{}, err
	}
	ord.OrderItems = orderItems

	if err := work.Commit(ctx); err != nil {
		return order.Order{}, err
	}

	s.publishEvents(ctx, []event.OrderEvent{{
		Kind:        event.KindOrderPlaced,
		OrderID:     ord.ID,
		UserID:      ord.UserID,
		TotalAmount: ord.TotalAmount,
		Status:      ord.Status.String(),
		OccurredAt:  time.Now(),
	}})

	return ord, nil
}

// DeleteNotPaidOrders reclaims stock from PENDING orders older than the
// unpaid TTL and deletes them, all in one transaction. A sweep that finds
// nothing performs no writes. Safe to call on every scheduler tick.
func (s *OrderService) DeleteNotPaidOrders(ctx context.Context) error {
	cutoff := time.Now().Add(-s.unpaidTTL)

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = work.Rollback(ctx) }()

	stale, err := work.OrderRepository().Query(ctx, &order.QueryOrdersModel{
		Status:          order.StatusPending,
		CreatedBefore:   cutoff,
		LockForDeletion: true,
	})
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	orderIDs := make([]string, len(stale))
	for i, o := range stale {
		orderIDs[i] = o.ID
	}

	staleItems, err := work.OrderItemRepository().Query(ctx, &orderitem.QueryOrderItemsModel{
		OrderIds: orderIDs,
	})
	if err != nil {
		return err
	}

	// An order can reference the same laptop in several items; the restock
	// quantities must be summed, not overwritten.
	restockByID := make(map[string]int)
	var restockOrder []string
	for _, item := range staleItems {
		if _, seen := restockByID[item.LaptopID]; !seen {
			restockOrder = append(restockOrder, item.LaptopID)
		}
		restockByID[item.LaptopID] += item.Quantity
	}

	adjustments := make([]laptop.StockAdjustment, 0, len(restockOrder))
	for _, id := range restockOrder {
		adjustments = append(adjustments, laptop.StockAdjustment{
			LaptopID: id,
			Quantity: restockByID[id],
		})
	}

	if err := work.LaptopRepository().RestoreStock(ctx, adjustments); err != nil {
		return err
	}

	if err := work.OrderRepository().DeleteByIds(ctx, orderIDs); err != nil {
		return err
	}

	if err := work.Commit(ctx); err != nil {
		return err
	}

	events := make([]event.OrderEvent, 0, len(stale))
	for _, o := range stale {
		events = append(events, event.OrderEvent{
			Kind:        event.KindOrderReaped,
			OrderID:     o.ID,
			UserID:      o.UserID,
			TotalAmount: o.TotalAmount,
			Status:      o.Status.String(),
			OccurredAt:  time.Now(),
		})
	}
	s.publishEvents(ctx, events)

	slog.Info("Unpaid orders reaped", "count", len(stale))

	return nil
}

// MarkOrderAsPaid transitions a PENDING order to PAID. Paying an unknown
// order fails with OrderNotFoundError; paying twice fails with
// AlreadyPaidError. Stock is not touched, it was reserved at placement.
func (s *OrderService) MarkOrderAsPaid(ctx context.Context, orderID string) error {
	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = work.Rollback(ctx) }()

	orders, err := work.OrderRepository().Query(ctx, &order.QueryOrdersModel{
		Ids: []string{orderID},
	})
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return &OrderNotFoundError{OrderID: orderID}
	}

	ord := orders[0]
	if ord.Status == order.StatusPaid {
		return &AlreadyPaidError{OrderID: orderID}
	}
	if !order.CanTransition(ord.Status, order.StatusPaid) {
		return order.ErrInvalidStatus
	}

	if err := work.OrderRepository().UpdateStatus(ctx, orderID, order.StatusPaid); err != nil {
		return err
	}

	if err := work.Commit(ctx); err != nil {
		return err
	}

	s.publishEvents(ctx, []event.OrderEvent{{
		Kind:        event.KindOrderPaid,
		OrderID:     ord.ID,
		UserID:      ord.UserID,
		TotalAmount: ord.TotalAmount,
		Status:      order.StatusPaid.String(),
		OccurredAt:  time.Now(),
	}})

	return nil
}

// publishEvents is best-effort: broker trouble is logged, never surfaced to
// the caller of the business operation.
func (s *OrderService) publishEvents(ctx context.Context, events []event.OrderEvent) {
	if s.eventRepo == nil || len(events) == 0 {
		return
	}
	if err := s.eventRepo.PublishOrderEvents(ctx, events); err != nil {
		slog.Error("Failed to publish order events", "error", err)
	}
}
