package listlaptops

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/laptopstore/oms/internal/service/models/laptop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	laptops []laptop.Laptop
	gotPage int
	gotSize int
}

func (s *stubService) GetLaptops(_ context.Context, page, size int) ([]laptop.Laptop, error) {
	s.gotPage = page
	s.gotSize = size
	return s.laptops, nil
}

func TestListLaptops_PassesPaginationThrough(t *testing.T) {
	svc := &stubService{laptops: []laptop.Laptop{}}

	req := httptest.NewRequest(http.MethodGet, "/api/laptops?page=3&size=5", nil)
	rec := httptest.NewRecorder()
	ListLaptops(rec, req, svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.gotPage)
	assert.Equal(t, 5, svc.gotSize)
}

func TestListLaptops_ReturnsJSONArray(t *testing.T) {
	svc := &stubService{laptops: []laptop.Laptop{
		{
			ID:    "9c7b7a46-3b5a-4cce-b1b3-0f14c1f1a001",
			Brand: "Lenovo",
			Model: "ThinkPad X1",
			Price: decimal.RequireFromString("1400.00"),
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/laptops", nil)
	rec := httptest.NewRecorder()
	ListLaptops(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Lenovo", resp[0]["brand"])
	assert.Equal(t, "9c7b7a46-3b5a-4cce-b1b3-0f14c1f1a001", resp[0]["laptopId"])
}

func TestListLaptops_EmptyStoreIsAnEmptyArray(t *testing.T) {
	svc := &stubService{laptops: []laptop.Laptop{}}

	req := httptest.NewRequest(http.MethodGet, "/api/laptops", nil)
	rec := httptest.NewRecorder()
	ListLaptops(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
