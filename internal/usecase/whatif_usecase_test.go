package usecase

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
	mock_interfaces "github.com/MAZTEK-CODENIGHT/backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	basicPlan = entities.Plan{
		PlanID: "p-basic", Name: "Basic 10GB", QuotaGB: 10, QuotaMin: 500, QuotaSMS: 250,
		MonthlyPrice: 200, OverageGB: 15, OverageMin: 0.5, OverageSMS: 0.25, Active: true,
	}
	miniPlan = entities.Plan{
		PlanID: "p-mini", Name: "Mini 20GB", QuotaGB: 20, QuotaMin: 250, QuotaSMS: 100,
		MonthlyPrice: 100, OverageGB: 20, OverageMin: 0.8, OverageSMS: 0.3, Active: true,
	}
	testUser = entities.User{UserID: "u-1", Name: "Test User", CurrentPlanID: "p-basic"}
)

// whatIfRepo wires the standard fixture: a user on p-basic with the given
// bill, and both catalog plans resolvable.
func whatIfRepo(t *testing.T, ctrl *gomock.Controller, bill entities.Bill) *mock_interfaces.MockIBillingRepository {
	t.Helper()
	repo := mock_interfaces.NewMockIBillingRepository(ctrl)
	repo.EXPECT().GetBill(gomock.Any(), "u-1", bill.Period).Return(bill, nil).AnyTimes()
	repo.EXPECT().GetUser(gomock.Any(), "u-1").Return(testUser, nil).AnyTimes()
	repo.EXPECT().GetPlan(gomock.Any(), "p-basic").Return(basicPlan, nil).AnyTimes()
	repo.EXPECT().GetPlan(gomock.Any(), "p-mini").Return(miniPlan, nil).AnyTimes()
	return repo
}

func feeOnlyBill(period string, total float64) entities.Bill {
	return entities.Bill{
		BillID: "b-1", UserID: "u-1", Period: period, TotalAmount: total,
		Currency: "TRY",
		Items: []entities.BillItem{
			{Category: entities.CategoryPlan, Subtype: "monthly_fee", Amount: 200},
		},
	}
}

func TestWhatIfUseCase_CalculateWhatIf_Validation(t *testing.T) {
	uc := NewWhatIfUseCase(nil)
	ctx := context.Background()

	t.Run("empty user id", func(t *testing.T) {
		_, err := uc.CalculateWhatIf(ctx, "", monthsAgo(1), entities.Scenario{PlanID: "p-mini"})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := uc.CalculateWhatIf(ctx, "u-1", "not-a-period", entities.Scenario{PlanID: "p-mini"})
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
	})
}

func TestWhatIfUseCase_CalculateWhatIf_NotFound(t *testing.T) {
	ctx := context.Background()
	period := monthsAgo(1)

	t.Run("bill not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingRepository(ctrl)
		repo.EXPECT().GetBill(gomock.Any(), "u-1", period).Return(entities.Bill{}, nil)
		repo.EXPECT().GetUser(gomock.Any(), "u-1").Return(testUser, nil)

		_, err := NewWhatIfUseCase(repo).CalculateWhatIf(ctx, "u-1", period, entities.Scenario{PlanID: "p-mini"})
		if !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingRepository(ctrl)
		repo.EXPECT().GetBill(gomock.Any(), "u-1", period).Return(feeOnlyBill(period, 240), nil)
		repo.EXPECT().GetUser(gomock.Any(), "u-1").Return(entities.User{}, nil)

		_, err := NewWhatIfUseCase(repo).CalculateWhatIf(ctx, "u-1", period, entities.Scenario{PlanID: "p-mini"})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("current plan not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingRepository(ctrl)
		repo.EXPECT().GetBill(gomock.Any(), "u-1", period).Return(feeOnlyBill(period, 240), nil)
		repo.EXPECT().GetUser(gomock.Any(), "u-1").Return(testUser, nil)
		repo.EXPECT().GetPlan(gomock.Any(), "p-basic").Return(entities.Plan{}, nil)

		_, err := NewWhatIfUseCase(repo).CalculateWhatIf(ctx, "u-1", period, entities.Scenario{PlanID: "p-mini"})
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("scenario plan inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingRepository(ctrl)
		repo.EXPECT().GetBill(gomock.Any(), "u-1", period).Return(feeOnlyBill(period, 240), nil)
		repo.EXPECT().GetUser(gomock.Any(), "u-1").Return(testUser, nil)
		repo.EXPECT().GetPlan(gomock.Any(), "p-basic").Return(basicPlan, nil)
		retired := miniPlan
		retired.Active = false
		repo.EXPECT().GetPlan(gomock.Any(), "p-mini").Return(retired, nil)

		_, err := NewWhatIfUseCase(repo).CalculateWhatIf(ctx, "u-1", period, entities.Scenario{PlanID: "p-mini"})
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})
}

func TestWhatIfUseCase_CalculateWhatIf_CheaperPlanNoOverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	period := monthsAgo(1)
	bill := feeOnlyBill(period, 240) // 200 fee + 20% tax
	uc := NewWhatIfUseCase(whatIfRepo(t, ctrl, bill))

	result, err := uc.CalculateWhatIf(context.Background(), "u-1", period, entities.Scenario{PlanID: "p-mini"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.NewTotal != 120 { // 100 * 1.2
		t.Fatalf("expected new total 120, got %v", result.NewTotal)
	}
	if result.Saving != 120 {
		t.Fatalf("expected saving 120, got %v", result.Saving)
	}
	if result.SavingPercent != 50 {
		t.Fatalf("expected saving percent 50, got %v", result.SavingPercent)
	}
	if result.Breakdown["plan_fee"] != 100 || result.Breakdown["tax"] != 20 {
		t.Fatalf("unexpected breakdown: %+v", result.Breakdown)
	}

	var hasDelay, hasNoOverage bool
	for _, r := range result.Recommendations {
		if r == "plan change takes effect at the start of the next billing period" {
			hasDelay = true
		}
		if r == "no overage expected with this configuration" {
			hasNoOverage = true
		}
	}
	if !hasDelay || !hasNoOverage {
		t.Fatalf("unexpected recommendations: %v", result.Recommendations)
	}
}

func TestWhatIfUseCase_CalculateWhatIf_EmptyScenarioCarriesForward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	period := monthsAgo(1)
	bill := entities.Bill{
		BillID: "b-1", UserID: "u-1", Period: period, TotalAmount: 288, Currency: "TRY",
		Items: []entities.BillItem{
			{Category: entities.CategoryPlan, Subtype: "monthly_fee", Amount: 200},
			{Category: entities.CategoryVAS, Amount: 20},
			{Category: entities.CategoryPremiumSMS, Amount: 10},
			{Category: entities.CategoryRoaming, Amount: 5},
			{Category: entities.CategoryOneOff, Amount: 15},
			{Category: entities.CategoryDiscount, Amount: 10},
		},
	}
	uc := NewWhatIfUseCase(whatIfRepo(t, ctrl, bill))

	// (200+20+10+5+15-10) * 1.2 = 288 == current total
	result, err := uc.CalculateWhatIf(context.Background(), "u-1", period, entities.Scenario{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NewTotal != 288 {
		t.Fatalf("expected new total 288, got %v", result.NewTotal)
	}
	if result.Saving != 0 || result.SavingPercent != 0 {
		t.Fatalf("expected zero saving, got %v (%v%%)", result.Saving, result.SavingPercent)
	}
	for _, key := range []string{"plan_fee", "vas", "premium_sms", "roaming", "one_off", "discount", "tax"} {
		if _, ok := result.Breakdown[key]; !ok {
			t.Fatalf("breakdown missing %q: %+v", key, result.Breakdown)
		}
	}
	if result.Breakdown["discount"] != -10 {
		t.Fatalf("expected discount -10, got %v", result.Breakdown["discount"])
	}
}

func TestWhatIfUseCase_CalculateWhatIf_OverageRecomputation(t *testing.T) {
	period := monthsAgo(1)
	overageBill := entities.Bill{
		BillID: "b-1", UserID: "u-1", Period: period, TotalAmount: 276, Currency: "TRY",
		Items: []entities.BillItem{
			{Category: entities.CategoryPlan, Subtype: "monthly_fee", Amount: 200},
			{Category: entities.CategoryData, Subtype: "data_overage", Amount: 30, UnitPrice: 15, Quantity: 2},
		},
	}

	t.Run("larger quota absorbs realized overage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewWhatIfUseCase(whatIfRepo(t, ctrl, overageBill))

		// Consumption 10+2=12 GB fits the 20 GB mini quota.
		result, err := uc.CalculateWhatIf(context.Background(), "u-1", period, entities.Scenario{PlanID: "p-mini"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := result.Breakdown["data_overage"]; ok {
			t.Fatalf("expected overage to be absorbed, got %+v", result.Breakdown)
		}
		if result.NewTotal != 120 {
			t.Fatalf("expected new total 120, got %v", result.NewTotal)
		}
	})

	t.Run("addon extras shrink the overage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := whatIfRepo(t, ctrl, overageBill)
		repo.EXPECT().GetAddOn(gomock.Any(), "a-1gb").Return(entities.AddOnPack{
			AddonID: "a-1gb", Name: "Extra 1GB", ExtraGB: 1, Price: 25,
			CompatiblePlans: []string{"p-basic"},
		}, nil)
		uc := NewWhatIfUseCase(repo)

		// Quota 10+1=11, consumption 12: 1 GB remains at the basic rate.
		result, err := uc.CalculateWhatIf(context.Background(), "u-1", period, entities.Scenario{AddOns: []string{"a-1gb"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Breakdown["data_overage"] != 15 {
			t.Fatalf("expected 1 GB overage at 15, got %+v", result.Breakdown)
		}
		if result.Breakdown["addons"] != 25 {
			t.Fatalf("expected addon cost 25, got %+v", result.Breakdown)
		}
		var warned bool
		for _, r := range result.Recommendations {
			if r == "data overage remains; consider a plan with a larger data quota" {
				warned = true
			}
		}
		if !warned {
			t.Fatalf("expected remaining-overage warning, got %v", result.Recommendations)
		}
	})
}

func TestWhatIfUseCase_CalculateWhatIf_Toggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	period := monthsAgo(1)
	bill := entities.Bill{
		BillID: "b-1", UserID: "u-1", Period: period, TotalAmount: 282, Currency: "TRY",
		Items: []entities.BillItem{
			{Category: entities.CategoryPlan, Subtype: "monthly_fee", Amount: 200},
			{Category: entities.CategoryVAS, Amount: 25},
			{Category: entities.CategoryPremiumSMS, Amount: 10},
		},
	}
	uc := NewWhatIfUseCase(whatIfRepo(t, ctrl, bill))

	result, err := uc.CalculateWhatIf(context.Background(), "u-1", period, entities.Scenario{
		DisableVAS:      true,
		BlockPremiumSMS: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the plan fee remains chargeable: 200 * 1.2.
	if result.NewTotal != 240 {
		t.Fatalf("expected new total 240, got %v", result.NewTotal)
	}
	if result.Breakdown["vas_savings"] != -25 || result.Breakdown["premium_sms_savings"] != -10 {
		t.Fatalf("unexpected savings entries: %+v", result.Breakdown)
	}
	var manualNote bool
	for _, r := range result.Recommendations {
		if r == "VAS cancellation requires manual action with each provider" {
			manualNote = true
		}
	}
	if !manualNote {
		t.Fatalf("expected manual cancellation note, got %v", result.Recommendations)
	}
}

func TestWhatIfUseCase_CalculateWhatIf_AddOnEdgeCases(t *testing.T) {
	period := monthsAgo(1)
	bill := feeOnlyBill(period, 240)

	t.Run("unknown addon skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := whatIfRepo(t, ctrl, bill)
		repo.EXPECT().GetAddOn(gomock.Any(), "a-ghost").Return(entities.AddOnPack{}, nil)
		uc := NewWhatIfUseCase(repo)

		result, err := uc.CalculateWhatIf(context.Background(), "u-1", period, entities.Scenario{AddOns: []string{"a-ghost"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := result.Breakdown["addons"]; ok {
			t.Fatalf("unknown addon must not be priced: %+v", result.Breakdown)
		}
	})

	t.Run("incompatible addon priced with risk note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := whatIfRepo(t, ctrl, bill)
		repo.EXPECT().GetAddOn(gomock.Any(), "a-other").Return(entities.AddOnPack{
			AddonID: "a-other", ExtraGB: 5, Price: 40, CompatiblePlans: []string{"p-mini"},
		}, nil)
		uc := NewWhatIfUseCase(repo)

		result, err := uc.CalculateWhatIf(context.Background(), "u-1", period, entities.Scenario{AddOns: []string{"a-other"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Breakdown["addons"] != 40 {
			t.Fatalf("incompatible addon still counts: %+v", result.Breakdown)
		}
		if len(result.RiskFactors) != 1 {
			t.Fatalf("expected 1 risk factor, got %v", result.RiskFactors)
		}
	})
}

func TestWhatIfUseCase_CalculateWhatIf_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	period := monthsAgo(1)
	uc := NewWhatIfUseCase(whatIfRepo(t, ctrl, feeOnlyBill(period, 240)))
	scenario := entities.Scenario{PlanID: "p-mini", DisableVAS: true}

	first, err := uc.CalculateWhatIf(context.Background(), "u-1", period, scenario)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.CalculateWhatIf(context.Background(), "u-1", period, scenario)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results:\n%+v\n%+v", first, second)
	}
}

func TestWhatIfUseCase_CalculateWhatIf_SavingPercentConsistency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	period := monthsAgo(1)
	bill := feeOnlyBill(period, 317.43)
	uc := NewWhatIfUseCase(whatIfRepo(t, ctrl, bill))

	result, err := uc.CalculateWhatIf(context.Background(), "u-1", period, entities.Scenario{PlanID: "p-mini"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (result.CurrentTotal - result.NewTotal) / result.CurrentTotal * 100
	if math.Abs(result.SavingPercent-want) > 0.05 {
		t.Fatalf("saving percent %v inconsistent with %v", result.SavingPercent, want)
	}
}

func TestWhatIfUseCase_CompareScenarios(t *testing.T) {
	ctx := context.Background()
	period := monthsAgo(1)

	t.Run("scenario count bounds", func(t *testing.T) {
		uc := NewWhatIfUseCase(nil)
		if _, err := uc.CompareScenarios(ctx, "u-1", period, nil); !errors.Is(err, ErrInvalidScenarioCount) {
			t.Fatalf("expected ErrInvalidScenarioCount, got %v", err)
		}
		six := make([]entities.Scenario, 6)
		if _, err := uc.CompareScenarios(ctx, "u-1", period, six); !errors.Is(err, ErrInvalidScenarioCount) {
			t.Fatalf("expected ErrInvalidScenarioCount, got %v", err)
		}
	})

	t.Run("ranking and error isolation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bill := entities.Bill{
			BillID: "b-1", UserID: "u-1", Period: period, TotalAmount: 270, Currency: "TRY",
			Items: []entities.BillItem{
				{Category: entities.CategoryPlan, Subtype: "monthly_fee", Amount: 200},
				{Category: entities.CategoryVAS, Amount: 25},
			},
		}
		repo := whatIfRepo(t, ctrl, bill)
		repo.EXPECT().GetPlan(gomock.Any(), "p-ghost").Return(entities.Plan{}, nil).AnyTimes()
		uc := NewWhatIfUseCase(repo)

		scenarios := []entities.Scenario{
			{PlanID: "p-ghost"},       // fails: unknown plan
			{PlanID: "p-mini"},        // biggest saving
			{DisableVAS: true},        // small saving
		}
		cmp, err := uc.CompareScenarios(ctx, "u-1", period, scenarios)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cmp.Scenarios) != 3 {
			t.Fatalf("expected 3 outcomes, got %d", len(cmp.Scenarios))
		}

		failed := cmp.Scenarios[0]
		if failed.Rank != errorRank || failed.Error == "" || failed.Result != nil {
			t.Fatalf("unexpected failed outcome: %+v", failed)
		}

		planChange := cmp.Scenarios[1]
		vasOff := cmp.Scenarios[2]
		if planChange.Rank != 1 || vasOff.Rank != 2 {
			t.Fatalf("unexpected ranks: plan=%d vas=%d", planChange.Rank, vasOff.Rank)
		}
		if planChange.Result.Saving <= vasOff.Result.Saving {
			t.Fatalf("ranking does not follow saving: %v vs %v", planChange.Result.Saving, vasOff.Result.Saving)
		}
		if cmp.Summary == "" || cmp.Summary == "no scenario could be computed" {
			t.Fatalf("unexpected summary: %q", cmp.Summary)
		}
	})
}

func TestScenarioClassification(t *testing.T) {
	cases := []struct {
		name        string
		scenario    entities.Scenario
		wantType    string
		feasibility string
		risk        string
	}{
		{
			name:        "comprehensive",
			scenario:    entities.Scenario{PlanID: "p-mini", AddOns: []string{"a-1"}, EnableRoamingBlock: true},
			wantType:    "comprehensive",
			feasibility: "conditional",
			risk:        "high", // 1 + 2
		},
		{
			name:        "plan change",
			scenario:    entities.Scenario{PlanID: "p-mini"},
			wantType:    "plan_change",
			feasibility: "conditional",
			risk:        "low",
		},
		{
			name:        "addon only",
			scenario:    entities.Scenario{AddOns: []string{"a-1", "a-2"}},
			wantType:    "addon_only",
			feasibility: "high",
			risk:        "low",
		},
		{
			name:        "many addons conditional",
			scenario:    entities.Scenario{AddOns: []string{"a-1", "a-2", "a-3", "a-4"}},
			wantType:    "addon_only",
			feasibility: "conditional",
			risk:        "low",
		},
		{
			name:        "cost reduction",
			scenario:    entities.Scenario{DisableVAS: true, EnableRoamingBlock: true},
			wantType:    "cost_reduction",
			feasibility: "high",
			risk:        "high", // 0.5 + 2
		},
		{
			name:        "optimization default",
			scenario:    entities.Scenario{},
			wantType:    "optimization",
			feasibility: "high",
			risk:        "low",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyScenario(tc.scenario); got != tc.wantType {
				t.Fatalf("type: expected %q, got %q", tc.wantType, got)
			}
			if got := scenarioFeasibility(tc.scenario); got != tc.feasibility {
				t.Fatalf("feasibility: expected %q, got %q", tc.feasibility, got)
			}
			if got := scenarioRiskLevel(tc.scenario); got != tc.risk {
				t.Fatalf("risk: expected %q, got %q", tc.risk, got)
			}
		})
	}
}
