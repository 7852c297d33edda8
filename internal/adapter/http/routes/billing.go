package routes

import (
	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBills    = "/bills"
	PathAnalysis = "/analysis"
	PathWhatIf   = "/whatif"
)

func addBillingRoutes(rg *gin.RouterGroup, billHandler *handlers.BillHandler, analysisHandler *handlers.AnalysisHandler, whatIfHandler *handlers.WhatIfHandler) {
	bills := rg.Group(PathBills)
	{
		bills.GET("/id/:bill_id", billHandler.GetBillByID)
		bills.GET("/:user_id", billHandler.GetBill)
	}

	analysis := rg.Group(PathAnalysis)
	{
		analysis.GET("/anomalies/:user_id", analysisHandler.GetAnomalies)
		analysis.GET("/anomalies/:user_id/detailed", analysisHandler.GetDetailedAnalysis)
		analysis.GET("/anomalies/:user_id/history", analysisHandler.GetAnomalyHistory)
	}

	whatif := rg.Group(PathWhatIf)
	{
		whatif.POST("/:user_id", whatIfHandler.Calculate)
		whatif.POST("/:user_id/compare", whatIfHandler.Compare)
	}
}
