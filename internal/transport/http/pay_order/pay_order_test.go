package payorder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/laptopstore/oms/internal/service/services/ordersvc"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	gotID string
	calls int
}

func (s *stubService) MarkOrderAsPaid(_ context.Context, orderID string) error {
	s.gotID = orderID
	s.calls++
	return s.err
}

func do(t *testing.T, svc *stubService, orderID string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Post("/api/orders/{orderId}/pay", func(w http.ResponseWriter, r *http.Request) {
		PayOrder(w, r, svc)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/pay", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestPayOrder_Success(t *testing.T) {
	svc := &stubService{}

	rec := do(t, svc, "5f1c98f1-8a4c-4be3-b86f-0f7b09e2a201")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5f1c98f1-8a4c-4be3-b86f-0f7b09e2a201", svc.gotID)
}

func TestPayOrder_InvalidIdIsRejectedBeforeTheService(t *testing.T) {
	svc := &stubService{}

	rec := do(t, svc, "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestPayOrder_UnknownOrder(t *testing.T) {
	svc := &stubService{err: &ordersvc.OrderNotFoundError{OrderID: "5f1c98f1-8a4c-4be3-b86f-0f7b09e2a201"}}

	rec := do(t, svc, "5f1c98f1-8a4c-4be3-b86f-0f7b09e2a201")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayOrder_SecondPaymentIsAConflict(t *testing.T) {
	svc := &stubService{err: &ordersvc.AlreadyPaidError{OrderID: "5f1c98f1-8a4c-4be3-b86f-0f7b09e2a201"}}

	rec := do(t, svc, "5f1c98f1-8a4c-4be3-b86f-0f7b09e2a201")

	assert.Equal(t, http.StatusConflict, rec.Code)
}
