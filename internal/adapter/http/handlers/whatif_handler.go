package handlers

import (
	"errors"
	"net/http"

	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/http/dto/request"
	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/http/dto/response"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase"
	"github.com/MAZTEK-CODENIGHT/backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWhatIfPayload = pkg.NewDomainErrorSimple("INVALID_WHATIF_INPUT", "Invalid what-if payload", http.StatusBadRequest)

// WhatIfHandler handles HTTP requests for scenario simulation.

type WhatIfHandler struct {
	usecase usecase.IWhatIfUseCase
}

func NewWhatIfHandler(uc usecase.IWhatIfUseCase) *WhatIfHandler {
	return &WhatIfHandler{usecase: uc}
}

// Calculate re-prices the user's bill for a single scenario.
//
//	POST /v1/whatif/:user_id
func (h *WhatIfHandler) Calculate(c *gin.Context) {
	var payload request.WhatIfRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWhatIfPayload.HTTPStatus, errInvalidWhatIfPayload.ToHTTPError())
		return
	}
	if err := payload.Scenario.Validate(); err != nil {
		appErr := pkg.NewDomainError("INVALID_SCENARIO", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	userID := c.Param("user_id")
	scenario := payload.Scenario.ToScenario()
	result, err := h.usecase.CalculateWhatIf(c.Request.Context(), userID, payload.Period, scenario)
	if err != nil {
		appErr := mapWhatIfError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWhatIfResult(userID, payload.Period, scenario, result))
}

// Compare ranks up to five scenarios by saving.
//
//	POST /v1/whatif/:user_id/compare
func (h *WhatIfHandler) Compare(c *gin.Context) {
	var payload request.CompareRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWhatIfPayload.HTTPStatus, errInvalidWhatIfPayload.ToHTTPError())
		return
	}
	scenarios, err := payload.ToScenarios()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_SCENARIO", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	userID := c.Param("user_id")
	comparison, err := h.usecase.CompareScenarios(c.Request.Context(), userID, payload.Period, scenarios)
	if err != nil {
		appErr := mapWhatIfError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScenarioComparison(comparison))
}

func mapWhatIfError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidPeriod),
		errors.Is(err, usecase.ErrInvalidScenarioCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "No bill found for this user and period", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found or not active", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
