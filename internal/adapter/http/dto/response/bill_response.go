package response

import (
	"time"

	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
)

type BillItemResponse struct {
	Category    string  `json:"category"`
	Subtype     string  `json:"subtype,omitempty"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	TaxRate     float64 `json:"tax_rate,omitempty"`
}

type BillResponse struct {
	BillID      string             `json:"bill_id"`
	UserID      string             `json:"user_id"`
	Period      string             `json:"period"`
	PeriodStart time.Time          `json:"period_start"`
	PeriodEnd   time.Time          `json:"period_end"`
	TotalAmount float64            `json:"total_amount"`
	Subtotal    float64            `json:"subtotal"`
	Taxes       float64            `json:"taxes"`
	Currency    string             `json:"currency"`
	Items       []BillItemResponse `json:"items"`
}

func FromBill(b entities.Bill) BillResponse {
	items := make([]BillItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BillItemResponse{
			Category:    string(it.Category),
			Subtype:     it.Subtype,
			Description: it.Description,
			Amount:      it.Amount,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			TaxRate:     it.TaxRate,
		})
	}
	return BillResponse{
		BillID:      b.BillID,
		UserID:      b.UserID,
		Period:      b.Period,
		PeriodStart: b.PeriodStart,
		PeriodEnd:   b.PeriodEnd,
		TotalAmount: b.TotalAmount,
		Subtotal:    b.Subtotal,
		Taxes:       b.Taxes,
		Currency:    b.Currency,
		Items:       items,
	}
}
