package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/http/handlers/mocks"
	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillHandler_GetBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/:user_id", h.GetBill)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/u-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/:user_id", h.GetBill)

		uc.EXPECT().GetBill(gomock.Any(), "u-1", "2025-08").Return(entities.Bill{}, usecase.ErrBillNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/u-1?period=2025-08", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/:user_id", h.GetBill)

		now := time.Now().UTC()
		bill := entities.Bill{
			BillID:      "b-1",
			UserID:      "u-1",
			Period:      "2025-08",
			PeriodStart: now,
			PeriodEnd:   now,
			TotalAmount: 240,
			Currency:    "TRY",
			Items: []entities.BillItem{
				{Category: entities.CategoryPlan, Subtype: "monthly_fee", Amount: 200},
			},
		}
		uc.EXPECT().GetBill(gomock.Any(), "u-1", "2025-08").Return(bill, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/u-1?period=2025-08", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].(map[string]any)
		if data["bill_id"] != "b-1" || data["total_amount"] != float64(240) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBillHandler_GetBillByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/id/:bill_id", h.GetBillByID)

		uc.EXPECT().GetBillByID(gomock.Any(), "b-missing").Return(entities.Bill{}, usecase.ErrBillNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/id/b-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/id/:bill_id", h.GetBillByID)

		uc.EXPECT().GetBillByID(gomock.Any(), "b-1").Return(entities.Bill{BillID: "b-1", UserID: "u-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/id/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapBillError(t *testing.T) {
	if got := mapBillError(usecase.ErrInvalidBillID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBillError(usecase.ErrBillNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBillError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
