package ordersvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/laptopstore/oms/internal/dal/interfaces/ilaptoprepo"
	"github.com/laptopstore/oms/internal/dal/interfaces/iorderitemrepo"
	"github.com/laptopstore/oms/internal/dal/interfaces/iorderrepo"
	"github.com/laptopstore/oms/internal/service/models/event"
	"github.com/laptopstore/oms/internal/service/models/laptop"
	"github.com/laptopstore/oms/internal/service/models/order"
	"github.com/laptopstore/oms/internal/service/models/orderitem"
)

// fakeStore is shared in-memory state behind the fake repositories.
type fakeStore struct {
	laptops map[string]laptop.Laptop
	orders  map[string]order.Order
	items   map[string]orderitem.OrderItem

	laptopWrites int
	orderWrites  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		laptops: make(map[string]laptop.Laptop),
		orders:  make(map[string]order.Order),
		items:   make(map[string]orderitem.OrderItem),
	}
}

func (s *fakeStore) addLaptop(l laptop.Laptop) laptop.Laptop {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	s.laptops[l.ID] = l
	return l
}

type fakeLaptopRepo struct {
	store *fakeStore
}

func (r *fakeLaptopRepo) Insert(_ context.Context, l laptop.Laptop) (laptop.Laptop, error) {
	r.store.laptopWrites++
	return r.store.addLaptop(l), nil
}

func (r *fakeLaptopRepo) Query(_ context.Context, filter *laptop.QueryLaptopsModel) ([]laptop.Laptop, error) {
	var result []laptop.Laptop
	if len(filter.Ids) > 0 {
		for _, id := range filter.Ids {
			if l, ok := r.store.laptops[id]; ok {
				result = append(result, l)
			}
		}
		return result, nil
	}
	for _, l := range r.store.laptops {
		result = append(result, l)
	}
	return result, nil
}

func (r *fakeLaptopRepo) ReserveStock(_ context.Context, laptopID string, qty int) (bool, error) {
	l, ok := r.store.laptops[laptopID]
	if !ok || l.Quantity < qty {
		return false, nil
	}
	l.Quantity -= qty
	r.store.laptops[laptopID] = l
	r.store.laptopWrites++
	return true, nil
}

func (r *fakeLaptopRepo) RestoreStock(_ context.Context, adjustments []laptop.StockAdjustment) error {
	for _, adj := range adjustments {
		l := r.store.laptops[adj.LaptopID]
		l.Quantity += adj.Quantity
		r.store.laptops[adj.LaptopID] = l
		r.store.laptopWrites++
	}
	return nil
}

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) Insert(_ context.Context, o order.Order) (order.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	r.store.orders[o.ID] = o
	r.store.orderWrites++
	return o, nil
}

func (r *fakeOrderRepo) Query(_ context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	var result []order.Order
	for _, o := range r.store.orders {
		if len(filter.Ids) > 0 && !contains(filter.Ids, o.ID) {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if !filter.CreatedBefore.IsZero() && !o.CreatedAt.Before(filter.CreatedBefore) {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID string, status order.Status) error {
	o := r.store.orders[orderID]
	o.Status = status
	r.store.orders[orderID] = o
	r.store.orderWrites++
	return nil
}

func (r *fakeOrderRepo) DeleteByIds(_ context.Context, orderIDs []string) error {
	for _, id := range orderIDs {
		delete(r.store.orders, id)
		for itemID, item := range r.store.items {
			if item.OrderID == id {
				delete(r.store.items, itemID)
			}
		}
		r.store.orderWrites++
	}
	return nil
}

type fakeOrderItemRepo struct {
	store *fakeStore
}

func (r *fakeOrderItemRepo) BulkInsert(_ context.Context, items []orderitem.OrderItem) ([]orderitem.OrderItem, error) {
	result := make([]orderitem.OrderItem, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		r.store.items[item.ID] = item
		result = append(result, item)
	}
	return result, nil
}

func (r *fakeOrderItemRepo) Query(_ context.Context, filter *orderitem.QueryOrderItemsModel) ([]orderitem.OrderItem, error) {
	var result []orderitem.OrderItem
	for _, item := range r.store.items {
		if len(filter.OrderIds) > 0 && !contains(filter.OrderIds, item.OrderID) {
			continue
		}
		if len(filter.Ids) > 0 && !contains(filter.Ids, item.ID) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

type fakeUnitOfWork struct {
	store *fakeStore

	began      bool
	committed  bool
	rolledBack bool
}

func newFakeUnitOfWork(store *fakeStore) *fakeUnitOfWork {
	return &fakeUnitOfWork{store: store}
}

func (u *fakeUnitOfWork) Begin(context.Context) error {
	u.began = true
	return nil
}

func (u *fakeUnitOfWork) Commit(context.Context) error {
	u.committed = true
	return nil
}

func (u *fakeUnitOfWork) Rollback(context.Context) error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *fakeUnitOfWork) LaptopRepository() ilaptoprepo.ILaptopRepository {
	return &fakeLaptopRepo{store: u.store}
}

func (u *fakeUnitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return &fakeOrderRepo{store: u.store}
}

func (u *fakeUnitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return &fakeOrderItemRepo{store: u.store}
}

type fakeEventRepo struct {
	published []event.OrderEvent
}

func (r *fakeEventRepo) PublishOrderEvents(_ context.Context, events []event.OrderEvent) error {
	r.published = append(r.published, events...)
	return nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
