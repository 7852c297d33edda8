package entities

// Plan is a tariff from the plan catalog. Overage rates are the price per
// unit consumed over the corresponding quota.
type Plan struct {
	PlanID       string  `json:"plan_id"`
	Name         string  `json:"name,omitempty"`
	Type         string  `json:"type,omitempty"`
	QuotaGB      float64 `json:"quota_gb"`
	QuotaMin     float64 `json:"quota_min"`
	QuotaSMS     float64 `json:"quota_sms"`
	MonthlyPrice float64 `json:"monthly_price"`
	OverageGB    float64 `json:"overage_gb"`
	OverageMin   float64 `json:"overage_min"`
	OverageSMS   float64 `json:"overage_sms"`
	Active       bool    `json:"active"`
}

// AddOnPack is a purchasable quota extension from the add-on catalog.
type AddOnPack struct {
	AddonID         string   `json:"addon_id"`
	Name            string   `json:"name,omitempty"`
	ExtraGB         float64  `json:"extra_gb"`
	ExtraMin        float64  `json:"extra_min"`
	ExtraSMS        float64  `json:"extra_sms"`
	Price           float64  `json:"price"`
	CompatiblePlans []string `json:"compatible_plans,omitempty"`
}

// CompatibleWith reports whether the pack lists planID as compatible.
// An empty list means the pack is unrestricted.
func (a AddOnPack) CompatibleWith(planID string) bool {
	if len(a.CompatiblePlans) == 0 {
		return true
	}
	for _, id := range a.CompatiblePlans {
		if id == planID {
			return true
		}
	}
	return false
}

// User is the subscriber record; CurrentPlanID resolves against the plan
// catalog.
type User struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name,omitempty"`
	MSISDN        string `json:"msisdn,omitempty"`
	CurrentPlanID string `json:"current_plan_id"`
}
