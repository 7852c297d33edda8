package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/http/handlers/mocks"
	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWhatIfHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWhatIfUseCase(ctrl)
		h := NewWhatIfHandler(uc)

		r := gin.New()
		r.POST("/v1/whatif/:user_id", h.Calculate)

		req := httptest.NewRequest(http.MethodPost, "/v1/whatif/u-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty scenario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWhatIfUseCase(ctrl)
		h := NewWhatIfHandler(uc)

		r := gin.New()
		r.POST("/v1/whatif/:user_id", h.Calculate)

		req := httptest.NewRequest(http.MethodPost, "/v1/whatif/u-1", bytes.NewBufferString(`{"period":"2025-08","scenario":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("plan not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWhatIfUseCase(ctrl)
		h := NewWhatIfHandler(uc)

		r := gin.New()
		r.POST("/v1/whatif/:user_id", h.Calculate)

		uc.EXPECT().CalculateWhatIf(gomock.Any(), "u-1", "2025-08", entities.Scenario{PlanID: "p-ghost"}).
			Return(entities.WhatIfResult{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/whatif/u-1", bytes.NewBufferString(`{"period":"2025-08","scenario":{"plan_id":"p-ghost"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWhatIfUseCase(ctrl)
		h := NewWhatIfHandler(uc)

		r := gin.New()
		r.POST("/v1/whatif/:user_id", h.Calculate)

		result := entities.WhatIfResult{
			CurrentTotal:  240,
			NewTotal:      120,
			Saving:        120,
			SavingPercent: 50,
			Breakdown:     map[string]float64{"monthly_fee": 100, "tax": 20},
		}
		uc.EXPECT().CalculateWhatIf(gomock.Any(), "u-1", "2025-08", entities.Scenario{PlanID: "p-mini"}).
			Return(result, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/whatif/u-1", bytes.NewBufferString(`{"period":"2025-08","scenario":{"plan_id":"p-mini"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].(map[string]any)
		if data["user_id"] != "u-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		inner, _ := data["result"].(map[string]any)
		if inner["saving"] != float64(120) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWhatIfHandler_Compare(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("too many scenarios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWhatIfUseCase(ctrl)
		h := NewWhatIfHandler(uc)

		r := gin.New()
		r.POST("/v1/whatif/:user_id/compare", h.Compare)

		payload := `{"period":"2025-08","scenarios":[{"plan_id":"a"},{"plan_id":"b"},{"plan_id":"c"},{"plan_id":"d"},{"plan_id":"e"},{"plan_id":"f"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/whatif/u-1/compare", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty scenario in list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWhatIfUseCase(ctrl)
		h := NewWhatIfHandler(uc)

		r := gin.New()
		r.POST("/v1/whatif/:user_id/compare", h.Compare)

		payload := `{"period":"2025-08","scenarios":[{"plan_id":"a"},{}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/whatif/u-1/compare", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWhatIfUseCase(ctrl)
		h := NewWhatIfHandler(uc)

		r := gin.New()
		r.POST("/v1/whatif/:user_id/compare", h.Compare)

		comparison := entities.ScenarioComparison{
			Scenarios: []entities.ScenarioOutcome{
				{Rank: 1, Scenario: entities.Scenario{PlanID: "p-mini"}, Type: "plan_change"},
				{Rank: 2, Scenario: entities.Scenario{DisableVAS: true}, Type: "cost_reduction"},
			},
			Summary: "best scenario saves 120.00; spread between best and worst is 95.00",
		}
		uc.EXPECT().CompareScenarios(gomock.Any(), "u-1", "2025-08",
			[]entities.Scenario{{PlanID: "p-mini"}, {DisableVAS: true}}).Return(comparison, nil)

		payload := `{"period":"2025-08","scenarios":[{"plan_id":"p-mini"},{"disable_vas":true}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/whatif/u-1/compare", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].(map[string]any)
		ranked, _ := data["scenarios"].([]any)
		if len(ranked) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapWhatIfError(t *testing.T) {
	if got := mapWhatIfError(usecase.ErrInvalidScenarioCount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWhatIfError(usecase.ErrUserNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWhatIfError(usecase.ErrPlanNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWhatIfError(usecase.ErrBillNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWhatIfError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
