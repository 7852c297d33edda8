package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/http/dto/response"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase"
	"github.com/MAZTEK-CODENIGHT/backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidThresholdParam = pkg.NewDomainErrorSimple("INVALID_THRESHOLD", "Threshold must be a number in [0,5]", http.StatusBadRequest)
	errInvalidMonthsParam    = pkg.NewDomainErrorSimple("INVALID_MONTHS", "Months must be a positive integer", http.StatusBadRequest)
	errMissingPeriodParam    = pkg.NewDomainErrorSimple("MISSING_PERIOD", "Query parameter period (YYYY-MM) is required", http.StatusBadRequest)
)

// AnalysisHandler handles HTTP requests for bill anomaly detection.

type AnalysisHandler struct {
	usecase usecase.IAnomalyUseCase
}

func NewAnalysisHandler(uc usecase.IAnomalyUseCase) *AnalysisHandler {
	return &AnalysisHandler{usecase: uc}
}

// GetAnomalies returns the anomaly report for a user and period.
//
//	GET /v1/analysis/anomalies/:user_id?period=YYYY-MM&threshold=0.8
func (h *AnalysisHandler) GetAnomalies(c *gin.Context) {
	userID := c.Param("user_id")
	period := c.Query("period")
	if period == "" {
		c.JSON(errMissingPeriodParam.HTTPStatus, errMissingPeriodParam.ToHTTPError())
		return
	}

	threshold := usecase.DefaultAnomalyThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(errInvalidThresholdParam.HTTPStatus, errInvalidThresholdParam.ToHTTPError())
			return
		}
		threshold = parsed
	}

	report, err := h.usecase.DetectAnomalies(c.Request.Context(), userID, period, threshold)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAnomalyReport(userID, report))
}

// GetDetailedAnalysis returns the report with insights, trend and risk
// assessment.
//
//	GET /v1/analysis/anomalies/:user_id/detailed?period=YYYY-MM
func (h *AnalysisHandler) GetDetailedAnalysis(c *gin.Context) {
	userID := c.Param("user_id")
	period := c.Query("period")
	if period == "" {
		c.JSON(errMissingPeriodParam.HTTPStatus, errMissingPeriodParam.ToHTTPError())
		return
	}

	analysis, err := h.usecase.GetDetailedAnalysis(c.Request.Context(), userID, period)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDetailedAnalysis(userID, analysis))
}

// GetAnomalyHistory returns per-period anomaly counts for the trailing
// months.
//
//	GET /v1/analysis/anomalies/:user_id/history?months=6
func (h *AnalysisHandler) GetAnomalyHistory(c *gin.Context) {
	userID := c.Param("user_id")

	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidMonthsParam.HTTPStatus, errInvalidMonthsParam.ToHTTPError())
			return
		}
		months = parsed
	}

	history, err := h.usecase.GetAnomalyHistory(c.Request.Context(), userID, months)
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAnomalyHistory(history))
}

func mapAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidPeriod),
		errors.Is(err, usecase.ErrInvalidThreshold), errors.Is(err, usecase.ErrInvalidMonths):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "No bill found for this user and period", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
