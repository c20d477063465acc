package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gift_contribution/internal/adapter/http/handlers/mocks"
	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFulfillmentRouter(t *testing.T) (*gin.Engine, *mocks.MockIFulfillmentUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFulfillmentUseCase(ctrl)
	h := NewFulfillmentHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.POST("/v1/orders/:id/status", h.UpdateOrderStatus)
	return r, uc
}

func sampleOrder(status entities.OrderStatus) entities.FulfillmentOrder {
	o := entities.NewFulfillmentOrder(sampleContribution(), time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	o.Status = status
	return o
}

func TestFulfillmentHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("packing tab", func(t *testing.T) {
		r, uc := newFulfillmentRouter(t)
		uc.EXPECT().ListByTab(gomock.Any(), "Packing").Return([]entities.FulfillmentOrder{sampleOrder(entities.OrderStatusPaid)}, nil)

		w := serve(r, http.MethodGet, "/v1/orders?tab=Packing", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []struct {
			Status string `json:"status"`
			Tab    string `json:"tab"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(res) != 1 || res[0].Status != "Paid" || res[0].Tab != "Packing" {
			t.Fatalf("unexpected body %+v", res)
		}
	})

	t.Run("unknown tab", func(t *testing.T) {
		r, uc := newFulfillmentRouter(t)
		uc.EXPECT().ListByTab(gomock.Any(), "Archive").Return(nil, entities.ErrInvalidTab)

		w := serve(r, http.MethodGet, "/v1/orders?tab=Archive", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_TAB" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestFulfillmentHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, uc := newFulfillmentRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "ord-x").Return(entities.FulfillmentOrder{}, usecase.ErrOrderNotFound)

	w := serve(r, http.MethodGet, "/v1/orders/ord-x", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestFulfillmentHandler_UpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		r, _ := newFulfillmentRouter(t)
		w := serve(r, http.MethodPost, "/v1/orders/ord-c-1/status", `{}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("skipped step", func(t *testing.T) {
		r, uc := newFulfillmentRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-c-1", gomock.Any()).Return(entities.FulfillmentOrder{}, entities.ErrInvalidTransition)

		w := serve(r, http.MethodPost, "/v1/orders/ord-c-1/status", `{"status":"Packing"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		r, uc := newFulfillmentRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-c-1", gomock.Any()).Return(entities.FulfillmentOrder{}, entities.ErrInvalidOrderStatus)

		w := serve(r, http.MethodPost, "/v1/orders/ord-c-1/status", `{"status":"Lost"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFulfillmentRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.UpdateOrderStatusInput) (entities.FulfillmentOrder, error) {
				if in.Status != "Paid" || in.UpdatedBy != "staff-1" || in.TrackingNumber != "BR1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return sampleOrder(entities.OrderStatusPaid), nil
			})

		w := serve(r, http.MethodPost, "/v1/orders/ord-c-1/status", `{"status":"Paid","trackingNumber":"BR1"}`, map[string]string{HeaderUserID: "staff-1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
