package entities

// AnomalyType tags which detection rule produced a finding.
type AnomalyType string

const (
	AnomalyStatistical        AnomalyType = "statistical"
	AnomalyPercentageIncrease AnomalyType = "percentage_increase"
	AnomalyNewItem            AnomalyType = "new_item"
	AnomalyRoamingNew         AnomalyType = "roaming_new"
	AnomalyRoamingExcessive   AnomalyType = "roaming_excessive"
	AnomalyUsageSpike         AnomalyType = "usage_spike"
)

// AnomalySeverity grades a finding.
type AnomalySeverity string

const (
	SeverityLow    AnomalySeverity = "low"
	SeverityMedium AnomalySeverity = "medium"
	SeverityHigh   AnomalySeverity = "high"
)

// AnomalyRecord is one detected anomaly. Ephemeral engine output, never
// persisted.
type AnomalyRecord struct {
	Type              AnomalyType     `json:"type"`
	Category          ItemCategory    `json:"category"`
	CurrentAmount     float64         `json:"current_amount"`
	HistoricalAverage float64         `json:"historical_average"`
	Delta             string          `json:"delta"`
	Severity          AnomalySeverity `json:"severity"`
	Reason            string          `json:"reason"`
	SuggestedAction   string          `json:"suggested_action"`
	FirstOccurrence   bool            `json:"first_occurrence"`
	ZScore            *float64        `json:"z_score,omitempty"`
}

// AnomalyReport is the full result of one detection run.
type AnomalyReport struct {
	Anomalies        []AnomalyRecord `json:"anomalies"`
	TotalAnomalies   int             `json:"total_anomalies"`
	RiskScore        float64         `json:"risk_score"`
	AnalysisPeriod   string          `json:"analysis_period"`
	ComparisonMonths int             `json:"comparison_months"`
	ThresholdUsed    float64         `json:"threshold_used"`
}

// CategoryInsight summarizes the findings of one category for the detailed
// analysis view.
type CategoryInsight struct {
	Category   ItemCategory `json:"category"`
	Count      int          `json:"count"`
	TotalDelta float64      `json:"total_delta"`
	Insight    string       `json:"insight"`
}

// TrendSummary describes how the risk score moved across recent periods.
type TrendSummary struct {
	Direction  string    `json:"direction"` // increasing, decreasing, stable
	Periods    []string  `json:"periods"`
	RiskScores []float64 `json:"risk_scores"`
}

// CostImpact aggregates the money effect of all findings.
type CostImpact struct {
	Increase float64 `json:"increase"`
	Decrease float64 `json:"decrease"`
	Net      float64 `json:"net"`
}

// RiskAssessment is the composite score for the detailed analysis view.
type RiskAssessment struct {
	Financial    float64 `json:"financial"`
	UsagePattern float64 `json:"usage_pattern"`
	Trend        float64 `json:"trend"`
	Overall      float64 `json:"overall"`
	Level        string  `json:"level"`
}

// DetailedAnalysis wraps an AnomalyReport with interpretation.
type DetailedAnalysis struct {
	Report          AnomalyReport     `json:"report"`
	Insights        []CategoryInsight `json:"insights"`
	Recommendations []string          `json:"recommendations"`
	Trend           TrendSummary      `json:"trend"`
	CostImpact      CostImpact        `json:"cost_impact"`
	Prevention      map[string]string `json:"prevention"`
	RiskAssessment  RiskAssessment    `json:"risk_assessment"`
}

// AnomalyHistoryEntry is one period's slice of the anomaly history.
// Periods with no findable bill degrade to a zero-anomaly entry.
type AnomalyHistoryEntry struct {
	Period       string          `json:"period"`
	AnomalyCount int             `json:"anomaly_count"`
	RiskScore    float64         `json:"risk_score"`
	HighSeverity []AnomalyRecord `json:"high_severity"`
}

// AnomalyHistory is the trailing-months anomaly overview for a user.
type AnomalyHistory struct {
	UserID  string                `json:"user_id"`
	Months  int                   `json:"months"`
	Entries []AnomalyHistoryEntry `json:"entries"`
}
