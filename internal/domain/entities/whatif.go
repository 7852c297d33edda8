package entities

// Scenario is a hypothetical set of tariff choices to re-price a bill
// against. Absent fields mean "keep current". Input only, never persisted.
type Scenario struct {
	PlanID             string   `json:"plan_id,omitempty"`
	AddOns             []string `json:"addons,omitempty"`
	DisableVAS         bool     `json:"disable_vas,omitempty"`
	BlockPremiumSMS    bool     `json:"block_premium_sms,omitempty"`
	EnableRoamingBlock bool     `json:"enable_roaming_block,omitempty"`
}

// IsEmpty reports whether the scenario changes nothing. An empty scenario
// is still computable: every current cost is carried forward.
func (s Scenario) IsEmpty() bool {
	return s.PlanID == "" && len(s.AddOns) == 0 &&
		!s.DisableVAS && !s.BlockPremiumSMS && !s.EnableRoamingBlock
}

// WhatIfDetail is one explained line of a scenario recomputation.
// Amount is positive for costs and negative for savings.
type WhatIfDetail struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// WhatIfResult is the re-priced bill with its diff against the current one.
type WhatIfResult struct {
	CurrentTotal    float64            `json:"current_total"`
	NewTotal        float64            `json:"new_total"`
	Saving          float64            `json:"saving"`
	SavingPercent   float64            `json:"saving_percent"`
	Details         []WhatIfDetail     `json:"details"`
	Breakdown       map[string]float64 `json:"breakdown"`
	Recommendations []string           `json:"recommendations"`
	RiskFactors     []string           `json:"risk_factors"`
}

// ScenarioOutcome is one scenario's entry in a multi-scenario comparison.
// Errored scenarios keep rank 999 and carry the error message instead of a
// result.
type ScenarioOutcome struct {
	Rank        int           `json:"rank"`
	Scenario    Scenario      `json:"scenario"`
	Type        string        `json:"type"`
	Feasibility string        `json:"feasibility"`
	RiskLevel   string        `json:"risk_level"`
	Result      *WhatIfResult `json:"result,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// ScenarioComparison ranks up to five scenarios by saving.
type ScenarioComparison struct {
	Scenarios []ScenarioOutcome `json:"scenarios"`
	Summary   string            `json:"summary"`
}
