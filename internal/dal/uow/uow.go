package uow

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/laptopstore/oms/internal/dal/interfaces/ilaptoprepo"
	"github.com/laptopstore/oms/internal/dal/interfaces/iorderitemrepo"
	"github.com/laptopstore/oms/internal/dal/interfaces/iorderrepo"
	"github.com/laptopstore/oms/internal/dal/interfaces/ioutboxrepo"
	"github.com/laptopstore/oms/internal/dal/postgres"
	laptoprepo "github.com/laptopstore/oms/internal/dal/repositories/laptop/postgres"
	orderrepo "github.com/laptopstore/oms/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/laptopstore/oms/internal/dal/repositories/orderitem/postgres"
	outboxrepo "github.com/laptopstore/oms/internal/dal/repositories/outbox/postgres"
)

type unitOfWork struct {
	client *postgres.Client
	tx     pgx.Tx

	laptopRepo    ilaptoprepo.ILaptopRepository
	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
}

// NewUnitOfWork creates a unit of work bound to the pool. Until Begin is
// called, repositories run outside a transaction.
func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	return &unitOfWork{
		client:        client,
		laptopRepo:    laptoprepo.NewPostgresLaptopRepository(client.Pool()),
		orderRepo:     orderrepo.NewPostgresOrderRepository(client.Pool()),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(client.Pool()),
		outboxRepo:    outboxrepo.NewPostgresOutboxRepository(client.Pool()),
	}
}

func (u *unitOfWork) LaptopRepository() ilaptoprepo.ILaptopRepository {
	return u.laptopRepo
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

func (u *unitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	u.tx = tx
	u.laptopRepo = laptoprepo.NewPostgresLaptopRepository(tx)
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)
	u.outboxRepo = outboxrepo.NewPostgresOutboxRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}
