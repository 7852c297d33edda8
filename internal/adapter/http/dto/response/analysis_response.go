package response

import (
	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
)

// Envelope is the uniform success wrapper for analysis endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// AnomalyReportResponse decorates the engine report with the subject user.
type AnomalyReportResponse struct {
	UserID string `json:"user_id"`
	entities.AnomalyReport
}

func FromAnomalyReport(userID string, report entities.AnomalyReport) Envelope {
	return OK(AnomalyReportResponse{UserID: userID, AnomalyReport: report})
}

// DetailedAnalysisResponse decorates the detailed analysis with the
// subject user.
type DetailedAnalysisResponse struct {
	UserID string `json:"user_id"`
	entities.DetailedAnalysis
}

func FromDetailedAnalysis(userID string, analysis entities.DetailedAnalysis) Envelope {
	return OK(DetailedAnalysisResponse{UserID: userID, DetailedAnalysis: analysis})
}

func FromAnomalyHistory(history entities.AnomalyHistory) Envelope {
	return OK(history)
}

// WhatIfResponse decorates a scenario result with its inputs.
type WhatIfResponse struct {
	UserID   string                `json:"user_id"`
	Period   string                `json:"period"`
	Scenario entities.Scenario     `json:"scenario"`
	Result   entities.WhatIfResult `json:"result"`
}

func FromWhatIfResult(userID, period string, scenario entities.Scenario, result entities.WhatIfResult) Envelope {
	return OK(WhatIfResponse{UserID: userID, Period: period, Scenario: scenario, Result: result})
}

func FromScenarioComparison(comparison entities.ScenarioComparison) Envelope {
	return OK(comparison)
}
