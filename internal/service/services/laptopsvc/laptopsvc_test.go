package laptopsvc

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/laptopstore/oms/internal/service/models/laptop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLaptopRepo struct {
	inserted   []laptop.Laptop
	lastFilter *laptop.QueryLaptopsModel
	result     []laptop.Laptop
}

func (r *fakeLaptopRepo) Insert(_ context.Context, l laptop.Laptop) (laptop.Laptop, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	r.inserted = append(r.inserted, l)
	return l, nil
}

func (r *fakeLaptopRepo) Query(_ context.Context, filter *laptop.QueryLaptopsModel) ([]laptop.Laptop, error) {
	r.lastFilter = filter
	return r.result, nil
}

func (r *fakeLaptopRepo) ReserveStock(context.Context, string, int) (bool, error) {
	return false, nil
}

func (r *fakeLaptopRepo) RestoreStock(context.Context, []laptop.StockAdjustment) error {
	return nil
}

func TestCreateLaptop_StampsCreationTimeAndGeneratesId(t *testing.T) {
	repo := &fakeLaptopRepo{}
	svc := MustNewLaptopService(WithLaptopRepository(repo))

	start := time.Now()
	created, err := svc.CreateLaptop(context.Background(), laptop.Laptop{
		Brand:     "HP",
		Model:     "ZBook 14",
		Processor: "Intel i5",
		RAM:       16,
		Price:     decimal.RequireFromString("1400.00"),
		Quantity:  34,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "HP", created.Brand)
	assert.Equal(t, "ZBook 14", created.Model)
	assert.Equal(t, "Intel i5", created.Processor)
	assert.Equal(t, 16, created.RAM)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("1400.00")))
	assert.Equal(t, 34, created.Quantity)
	assert.False(t, created.CreatedAt.Before(start))
	assert.True(t, created.CreatedAt.Before(start.Add(2*time.Second)))
}

func TestGetLaptops_PaginationDefaults(t *testing.T) {
	repo := &fakeLaptopRepo{}
	svc := MustNewLaptopService(WithLaptopRepository(repo))

	laptops, err := svc.GetLaptops(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 20, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
	assert.NotNil(t, laptops, "empty page must serialize as [] not null")
}

func TestGetLaptops_PageToOffset(t *testing.T) {
	repo := &fakeLaptopRepo{}
	svc := MustNewLaptopService(WithLaptopRepository(repo))

	_, err := svc.GetLaptops(context.Background(), 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, repo.lastFilter.Limit)
	assert.Equal(t, 20, repo.lastFilter.Offset)
}
