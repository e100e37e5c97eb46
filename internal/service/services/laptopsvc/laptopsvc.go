package laptopsvc

import (
	"context"
	"time"

	"github.com/laptopstore/oms/internal/dal/interfaces/ilaptoprepo"
	"github.com/laptopstore/oms/internal/dal/postgres"
	laptoprepo "github.com/laptopstore/oms/internal/dal/repositories/laptop/postgres"
	"github.com/laptopstore/oms/internal/service/models/laptop"
)

const (
	defaultPage = 1
	defaultSize = 20
)

// LaptopService owns the stock ledger: registering laptops and listing them.
// Stock mutations belong to the order service.
type LaptopService struct {
	pgClient   *postgres.Client
	laptopRepo ilaptoprepo.ILaptopRepository
}

// option is a function that configures the LaptopService.
type option func(*LaptopService)

// MustNewLaptopService creates a new LaptopService.
func MustNewLaptopService(opts ...option) *LaptopService {
	s := &LaptopService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.laptopRepo == nil {
		s.laptopRepo = laptoprepo.NewPostgresLaptopRepository(s.pgClient.Pool())
	}

	return s
}

// WithPostgresClient sets the Postgres client for the LaptopService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *LaptopService) {
		s.pgClient = pgClient
	}
}

// WithLaptopRepository sets the laptop repository for the LaptopService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithLaptopRepository(repo ilaptoprepo.ILaptopRepository) option {
	return func(s *LaptopService) {
		s.laptopRepo = repo
	}
}

// CreateLaptop registers a new laptop with the given stock and price.
// Field bounds are the transport's concern; the service only stamps the
// creation time.
func (s *LaptopService) CreateLaptop(ctx context.Context, l laptop.Laptop) (laptop.Laptop, error) {
	l.CreatedAt = time.Now()

	return s.laptopRepo.Insert(ctx, l)
}

// GetLaptops returns one page of laptops in insertion order. Page is
// 1-based; non-positive page or size fall back to the defaults.
func (s *LaptopService) GetLaptops(ctx context.Context, page, size int) ([]laptop.Laptop, error) {
	if page <= 0 {
		page = defaultPage
	}
	if size <= 0 {
		size = defaultSize
	}

	laptops, err := s.laptopRepo.Query(ctx, &laptop.QueryLaptopsModel{
		Limit:  size,
		Offset: (page - 1) * size,
	})
	if err != nil {
		return nil, err
	}

	if laptops == nil {
		laptops = []laptop.Laptop{}
	}

	return laptops, nil
}
