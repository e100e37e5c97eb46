package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/laptopstore/oms/internal/dal/postgres"
	"github.com/laptopstore/oms/internal/service/models/laptop"
	"github.com/shopspring/decimal"
)

// LaptopDal represents laptop data access layer model.
type LaptopDal struct {
	Id        string          `db:"id"`
	Brand     string          `db:"brand"`
	Model     string          `db:"model"`
	Processor string          `db:"processor"`
	Ram       int             `db:"ram"`
	Price     decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
	CreatedAt time.Time       `db:"created_at"`
}

// ToModel converts LaptopDal to service layer Laptop model.
func (l *LaptopDal) ToModel() *laptop.Laptop {
	return &laptop.Laptop{
		ID:        l.Id,
		Brand:     l.Brand,
		Model:     l.Model,
		Processor: l.Processor,
		RAM:       l.Ram,
		Price:     l.Price,
		Quantity:  l.Quantity,
		CreatedAt: l.CreatedAt,
	}
}

// LaptopDalFromModel converts service layer Laptop model to LaptopDal.
func LaptopDalFromModel(l *laptop.Laptop) *LaptopDal {
	return &LaptopDal{
		Id:        l.ID,
		Brand:     l.Brand,
		Model:     l.Model,
		Processor: l.Processor,
		Ram:       l.RAM,
		Price:     l.Price,
		Quantity:  l.Quantity,
		CreatedAt: l.CreatedAt,
	}
}

// PostgresLaptopRepository represents a Postgres laptop repository.
type PostgresLaptopRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresLaptopRepository creates a new Postgres laptop repository.
func NewPostgresLaptopRepository(conn postgres.GenericConn) *PostgresLaptopRepository {
	return &PostgresLaptopRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert persists a new laptop and returns it with its generated id.
func (r *PostgresLaptopRepository) Insert(ctx context.Context, l laptop.Laptop) (laptop.Laptop, error) {
	dal := LaptopDalFromModel(&l)
	if dal.Id == "" {
		dal.Id = uuid.NewString()
	}

	query, args, err := r.sb.
		Insert("laptops").
		Columns("id", "brand", "model", "processor", "ram", "price", "quantity", "created_at").
		Values(dal.Id, dal.Brand, dal.Model, dal.Processor, dal.Ram, dal.Price, dal.Quantity, dal.CreatedAt).
		ToSql()
	if err != nil {
		return laptop.Laptop{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return laptop.Laptop{}, fmt.Errorf("failed to insert laptop: %w", err)
	}

	return *dal.ToModel(), nil
}

// Query retrieves laptops based on filter criteria, in insertion order.
func (r *PostgresLaptopRepository) Query(
	ctx context.Context,
	filter *laptop.QueryLaptopsModel,
) ([]laptop.Laptop, error) {
	query := r.sb.
		Select("id", "brand", "model", "processor", "ram", "price", "quantity", "created_at").
		From("laptops").
		OrderBy("created_at ASC")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query laptops: %w", err)
	}
	defer rows.Close()

	var result []laptop.Laptop
	for rows.Next() {
		var dal LaptopDal
		err := rows.Scan(
			&dal.Id,
			&dal.Brand,
			&dal.Model,
			&dal.Processor,
			&dal.Ram,
			&dal.Price,
			&dal.Quantity,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan laptop: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// ReserveStock decrements a laptop's quantity in a single conditional update.
// The quantity floor check lives in the WHERE clause, so two concurrent
// placements cannot both take the last unit.
func (r *PostgresLaptopRepository) ReserveStock(ctx context.Context, laptopID string, qty int) (bool, error) {
	query, args, err := r.sb.
		Update("laptops").
		Set("quantity", sq.Expr("quantity - ?", qty)).
		Where(sq.Eq{"id": laptopID}).
		Where(sq.GtOrEq{"quantity": qty}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build reserve query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to reserve stock: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// RestoreStock adds the summed quantities back to the ledger in one batch
// using an unnest join.
func (r *PostgresLaptopRepository) RestoreStock(
	ctx context.Context,
	adjustments []laptop.StockAdjustment,
) error {
	if len(adjustments) == 0 {
		return nil
	}

	ids := make([]string, len(adjustments))
	quantities := make([]int, len(adjustments))
	for i, adj := range adjustments {
		ids[i] = adj.LaptopID
		quantities[i] = adj.Quantity
	}

	sql := `
		UPDATE laptops AS l
		SET quantity = l.quantity + t.qty
		FROM unnest($1::uuid[], $2::int[]) AS t(laptop_id, qty)
		WHERE l.id = t.laptop_id
	`

	if _, err := r.conn.Exec(ctx, sql, ids, quantities); err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}

	return nil
}
