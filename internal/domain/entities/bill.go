package entities

import "time"

// ItemCategory classifies bill line items and the category keys used by the
// analysis engines. Both engines share this enum so the category lists
// cannot drift apart.
//
// Domain notes:
//   - Bill items carry one of the base categories (data..tax).
//   - Statistics additionally aggregate over the derived keys
//     (monthly_fee, data_overage, voice_overage, plan), which appear as
//     item subtypes on real bills.
type ItemCategory string

const (
	CategoryData       ItemCategory = "data"
	CategoryVoice      ItemCategory = "voice"
	CategorySMS        ItemCategory = "sms"
	CategoryPremiumSMS ItemCategory = "premium_sms"
	CategoryVAS        ItemCategory = "vas"
	CategoryRoaming    ItemCategory = "roaming"
	CategoryOneOff     ItemCategory = "one_off"
	CategoryDiscount   ItemCategory = "discount"
	CategoryTax        ItemCategory = "tax"

	CategoryMonthlyFee   ItemCategory = "monthly_fee"
	CategoryDataOverage  ItemCategory = "data_overage"
	CategoryVoiceOverage ItemCategory = "voice_overage"
	CategoryPlan         ItemCategory = "plan"
)

// StatCategories is the fixed, ordered key set the anomaly engine compares
// against history. Order matters for report reproducibility.
var StatCategories = []ItemCategory{
	CategoryData,
	CategoryVoice,
	CategorySMS,
	CategoryPremiumSMS,
	CategoryVAS,
	CategoryRoaming,
	CategoryMonthlyFee,
	CategoryDataOverage,
	CategoryVoiceOverage,
	CategoryPlan,
	CategoryOneOff,
	CategoryDiscount,
}

// BillItem is one charge line on a bill. Amount is non-negative except for
// the discount category, which is a cost reduction.
type BillItem struct {
	Category    ItemCategory `json:"category"`
	Subtype     string       `json:"subtype,omitempty"`
	Description string       `json:"description,omitempty"`
	Amount      float64      `json:"amount"`
	UnitPrice   float64      `json:"unit_price,omitempty"`
	Quantity    float64      `json:"quantity,omitempty"`
	TaxRate     float64      `json:"tax_rate,omitempty"`
}

// Bill is an immutable monthly bill snapshot read from storage.
//
// Storage model (DynamoDB):
//   - PK: user_id, SK: period (YYYY-MM)
//   - GSI (bill_id-index): bill_id
type Bill struct {
	BillID      string     `json:"bill_id"`
	UserID      string     `json:"user_id"`
	Period      string     `json:"period"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	TotalAmount float64    `json:"total_amount"`
	Subtotal    float64    `json:"subtotal"`
	Taxes       float64    `json:"taxes"`
	Currency    string     `json:"currency"`
	Items       []BillItem `json:"items"`
}

// CategoryTotal sums item amounts whose category equals key.
func (b Bill) CategoryTotal(key ItemCategory) float64 {
	var total float64
	for _, it := range b.Items {
		if it.Category == key {
			total += it.Amount
		}
	}
	return total
}

// StatTotal sums item amounts for a statistics key. Derived keys
// (monthly_fee, data_overage, ...) live in the item subtype on real bills,
// so a key matches either the category or the subtype.
func (b Bill) StatTotal(key ItemCategory) float64 {
	var total float64
	for _, it := range b.Items {
		if it.Category == key || it.Subtype == string(key) {
			total += it.Amount
		}
	}
	return total
}

// OverageQuantity sums the quantity column of items with the given overage
// subtype (units over the plan quota, e.g. GB for data_overage).
func (b Bill) OverageQuantity(subtype ItemCategory) float64 {
	var qty float64
	for _, it := range b.Items {
		if it.Subtype == string(subtype) {
			qty += it.Quantity
		}
	}
	return qty
}
