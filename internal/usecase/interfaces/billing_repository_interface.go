package interfaces

import (
	"context"
	"time"

	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
)

// IBillingRepository abstracts the document store the analysis engines read
// from. Everything is read-only: the engines never write.
//
// Conventions:
//   - Not-found resolves to a zero-value entity, not an error. Use cases
//     translate empty results into their own sentinel errors.
//   - GetHistoricalBills returns bills strictly before beforePeriod, newest
//     first, bounded by minMonths; fewer months than requested is not an
//     error.
//
//go:generate mockgen -source=billing_repository_interface.go -destination=mocks/billing_repository_mock.go -package=mock_interfaces

type IBillingRepository interface {
	GetBill(ctx context.Context, userID, period string) (entities.Bill, error)
	GetBillByID(ctx context.Context, billID string) (entities.Bill, error)
	GetHistoricalBills(ctx context.Context, userID, beforePeriod string, minMonths int) ([]entities.Bill, error)
	GetDailyUsage(ctx context.Context, userID string, from, to time.Time) ([]entities.UsageDailyRecord, error)
	GetUser(ctx context.Context, userID string) (entities.User, error)
	GetPlan(ctx context.Context, planID string) (entities.Plan, error)
	GetAddOn(ctx context.Context, addonID string) (entities.AddOnPack, error)
}
