package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/laptopstore/oms/internal/dal/postgres"
	"github.com/laptopstore/oms/internal/service/models/orderitem"
	"github.com/shopspring/decimal"
)

// OrderItemDal represents order item data access layer model.
type OrderItemDal struct {
	Id          string          `db:"id"`
	OrderId     string          `db:"order_id"`
	LaptopId    string          `db:"laptop_id"`
	LaptopBrand string          `db:"laptop_brand"`
	LaptopModel string          `db:"laptop_model"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
	TotalPrice  decimal.Decimal `db:"total_price"`
}

// ToModel converts OrderItemDal to service layer OrderItem model.
func (oi *OrderItemDal) ToModel() *orderitem.OrderItem {
	return &orderitem.OrderItem{
		ID:          oi.Id,
		OrderID:     oi.OrderId,
		LaptopID:    oi.LaptopId,
		LaptopBrand: oi.LaptopBrand,
		LaptopModel: oi.LaptopModel,
		UnitPrice:   oi.UnitPrice,
		Quantity:    oi.Quantity,
		TotalPrice:  oi.TotalPrice,
	}
}

// OrderItemDalFromModel converts service layer OrderItem model to OrderItemDal.
func OrderItemDalFromModel(oi *orderitem.OrderItem) *OrderItemDal {
	return &OrderItemDal{
		Id:          oi.ID,
		OrderId:     oi.OrderID,
		LaptopId:    oi.LaptopID,
		LaptopBrand: oi.LaptopBrand,
		LaptopModel: oi.LaptopModel,
		UnitPrice:   oi.UnitPrice,
		Quantity:    oi.Quantity,
		TotalPrice:  oi.TotalPrice,
	}
}

// PostgresOrderItemRepository represents a Postgres order item repository.
type PostgresOrderItemRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderItemRepository creates a new Postgres order item repository.
func NewPostgresOrderItemRepository(conn postgres.GenericConn) *PostgresOrderItemRepository {
	return &PostgresOrderItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// BulkInsert inserts multiple order items in one statement and returns them
// with generated ids.
func (r *PostgresOrderItemRepository) BulkInsert(
	ctx context.Context,
	items []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	if len(items) == 0 {
		return []orderitem.OrderItem{}, nil
	}

	builder := r.sb.
		Insert("order_items").
		Columns("id", "order_id", "laptop_id", "laptop_brand", "laptop_model", "unit_price", "quantity", "total_price")

	result := make([]orderitem.OrderItem, 0, len(items))
	for i := range items {
		dal := OrderItemDalFromModel(&items[i])
		if dal.Id == "" {
			dal.Id = uuid.NewString()
		}
		builder = builder.Values(
			dal.Id,
			dal.OrderId,
			dal.LaptopId,
			dal.LaptopBrand,
			dal.LaptopModel,
			dal.UnitPrice,
			dal.Quantity,
			dal.TotalPrice,
		)
		result = append(result, *dal.ToModel())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to bulk insert order items: %w", err)
	}

	return result, nil
}

// Query retrieves order items based on filter criteria.
func (r *PostgresOrderItemRepository) Query(
	ctx context.Context,
	filter *orderitem.QueryOrderItemsModel,
) ([]orderitem.OrderItem, error) {
	query := r.sb.
		Select("id", "order_id", "laptop_id", "laptop_brand", "laptop_model", "unit_price", "quantity", "total_price").
		From("order_items")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.OrderIds) > 0 {
		query = query.Where(sq.Eq{"order_id": filter.OrderIds})
	}

	if len(filter.LaptopIds) > 0 {
		query = query.Where(sq.Eq{"laptop_id": filter.LaptopIds})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.LaptopId,
			&dal.LaptopBrand,
			&dal.LaptopModel,
			&dal.UnitPrice,
			&dal.Quantity,
			&dal.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
