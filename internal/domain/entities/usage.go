package entities

import "time"

// UsageDailyRecord is one user's consumption for a single calendar day.
//
// Storage model (DynamoDB):
//   - PK: user_id, SK: usage_date (YYYY-MM-DD)
type UsageDailyRecord struct {
	UserID      string    `json:"user_id"`
	UsageDate   time.Time `json:"usage_date"`
	MBUsed      float64   `json:"mb_used"`
	MinutesUsed float64   `json:"minutes_used"`
	SMSUsed     int       `json:"sms_used"`
	RoamingMB   float64   `json:"roaming_mb"`
}
