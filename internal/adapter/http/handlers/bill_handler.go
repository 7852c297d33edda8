package handlers

import (
	"errors"
	"net/http"

	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/http/dto/response"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase"
	"github.com/MAZTEK-CODENIGHT/backend/pkg"

	"github.com/gin-gonic/gin"
)

// BillHandler handles HTTP requests for bill snapshots.

type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

// GetBill returns the user's bill for a period.
//
//	GET /v1/bills/:user_id?period=YYYY-MM
func (h *BillHandler) GetBill(c *gin.Context) {
	period := c.Query("period")
	if period == "" {
		c.JSON(errMissingPeriodParam.HTTPStatus, errMissingPeriodParam.ToHTTPError())
		return
	}

	bill, err := h.usecase.GetBill(c.Request.Context(), c.Param("user_id"), period)
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromBill(bill)))
}

// GetBillByID returns one bill by its id.
//
//	GET /v1/bills/id/:bill_id
func (h *BillHandler) GetBillByID(c *gin.Context) {
	bill, err := h.usecase.GetBillByID(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromBill(bill)))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidBillID),
		errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
