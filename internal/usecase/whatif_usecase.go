package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrInvalidScenarioCount = errors.New("invalid scenario count")
)

const (
	taxRate          = 0.20
	maxScenarios     = 5
	errorRank        = 999
	feasibilityLimit = 3 // add-ons beyond this make a scenario conditional
)

// IWhatIfUseCase exposes scenario-based bill recomputation.

type IWhatIfUseCase interface {
	CalculateWhatIf(ctx context.Context, userID, period string, scenario entities.Scenario) (entities.WhatIfResult, error)
	CompareScenarios(ctx context.Context, userID, period string, scenarios []entities.Scenario) (entities.ScenarioComparison, error)
}

// WhatIfUseCase re-prices a bill from first principles for a hypothetical
// scenario. All money accumulation runs on decimals; floats only appear at
// the entity boundary.
type WhatIfUseCase struct {
	repo interfaces.IBillingRepository
}

var _ IWhatIfUseCase = (*WhatIfUseCase)(nil)

func NewWhatIfUseCase(repo interfaces.IBillingRepository) *WhatIfUseCase {
	return &WhatIfUseCase{repo: repo}
}

// billLedger accumulates the recomputed bill stage by stage.
type billLedger struct {
	total     decimal.Decimal
	details   []entities.WhatIfDetail
	breakdown map[string]float64
}

func newBillLedger() *billLedger {
	return &billLedger{breakdown: make(map[string]float64)}
}

// addCost records amount as a cost line and accumulates it into the total.
func (l *billLedger) addCost(key, label string, amount decimal.Decimal) {
	l.total = l.total.Add(amount)
	rounded := amount.Round(2).InexactFloat64()
	l.breakdown[key] += rounded
	l.details = append(l.details, entities.WhatIfDetail{Label: label, Amount: rounded})
}

// addSaving records a removed cost. Nothing is added to the total; the
// line documents money that would have been spent.
func (l *billLedger) addSaving(key, label string, amount decimal.Decimal) {
	rounded := amount.Neg().Round(2).InexactFloat64()
	l.breakdown[key] += rounded
	l.details = append(l.details, entities.WhatIfDetail{Label: label, Amount: rounded})
}

// CalculateWhatIf recomputes the bill total for the scenario and returns
// the diff against the current bill. An empty scenario is a valid input:
// every current cost is carried forward and the result equals the current
// bill recomputed from its components.
func (u *WhatIfUseCase) CalculateWhatIf(ctx context.Context, userID, period string, scenario entities.Scenario) (entities.WhatIfResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.WhatIfResult{}, ErrInvalidUserID
	}
	if err := validatePeriod(period); err != nil {
		return entities.WhatIfResult{}, err
	}

	// Bill and user reads are independent; join them before resolving the
	// plan chain.
	var (
		bill entities.Bill
		user entities.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := u.repo.GetBill(gctx, userID, period)
		if err != nil {
			return err
		}
		bill = b
		return nil
	})
	g.Go(func() error {
		usr, err := u.repo.GetUser(gctx, userID)
		if err != nil {
			return err
		}
		user = usr
		return nil
	})
	if err := g.Wait(); err != nil {
		return entities.WhatIfResult{}, err
	}
	if bill.BillID == "" {
		return entities.WhatIfResult{}, fmt.Errorf("%w: user_id=%s period=%s", ErrBillNotFound, userID, period)
	}
	if user.UserID == "" {
		return entities.WhatIfResult{}, fmt.Errorf("%w: user_id=%s", ErrUserNotFound, userID)
	}

	currentPlan, err := u.repo.GetPlan(ctx, user.CurrentPlanID)
	if err != nil {
		return entities.WhatIfResult{}, err
	}
	if currentPlan.PlanID == "" {
		return entities.WhatIfResult{}, fmt.Errorf("%w: plan_id=%s", ErrPlanNotFound, user.CurrentPlanID)
	}

	effectivePlan := currentPlan
	planChanged := false
	if scenario.PlanID != "" && scenario.PlanID != currentPlan.PlanID {
		newPlan, err := u.repo.GetPlan(ctx, scenario.PlanID)
		if err != nil {
			return entities.WhatIfResult{}, err
		}
		if newPlan.PlanID == "" || !newPlan.Active {
			return entities.WhatIfResult{}, fmt.Errorf("%w: plan_id=%s", ErrPlanNotFound, scenario.PlanID)
		}
		effectivePlan = newPlan
		planChanged = true
	}

	ledger := newBillLedger()
	var riskFactors []string
	var recommendations []string

	// 1. Plan base fee.
	ledger.addCost("plan_fee", fmt.Sprintf("%s monthly fee", planLabel(effectivePlan)), decimal.NewFromFloat(effectivePlan.MonthlyPrice))

	// 2. Add-ons: price plus quota extras. Unresolvable ids are skipped,
	// incompatible packs only add a risk note.
	addons, notes := u.resolveAddOns(ctx, scenario.AddOns, effectivePlan.PlanID)
	riskFactors = append(riskFactors, notes...)
	var extraGB, extraMin, extraSMS float64
	for _, a := range addons {
		ledger.addCost("addons", fmt.Sprintf("add-on %s", addonLabel(a)), decimal.NewFromFloat(a.Price))
		extraGB += a.ExtraGB
		extraMin += a.ExtraMin
		extraSMS += a.ExtraSMS
	}

	// 3. Effective quotas. SMS extras count toward the quota but bills
	// carry no realized SMS overage line to replay, so only data and voice
	// matter downstream.
	quotaGB := effectivePlan.QuotaGB + extraGB
	quotaMin := effectivePlan.QuotaMin + extraMin

	// 4. Overage recomputation. Observed consumption is reconstructed from
	// the current plan's quota plus the realized overage quantities on the
	// bill; raw daily usage is deliberately not re-derived. Known
	// approximation: quota structure shifts between plans are not modeled.
	dataOverGB := projectOverage(currentPlan.QuotaGB, bill.OverageQuantity(entities.CategoryDataOverage), quotaGB)
	voiceOverMin := projectOverage(currentPlan.QuotaMin, bill.OverageQuantity(entities.CategoryVoiceOverage), quotaMin)
	if dataOverGB > 0 {
		ledger.addCost("data_overage", fmt.Sprintf("data overage %.1f GB", dataOverGB),
			decimal.NewFromFloat(dataOverGB).Mul(decimal.NewFromFloat(effectivePlan.OverageGB)))
	}
	if voiceOverMin > 0 {
		ledger.addCost("voice_overage", fmt.Sprintf("voice overage %.0f min", voiceOverMin),
			decimal.NewFromFloat(voiceOverMin).Mul(decimal.NewFromFloat(effectivePlan.OverageMin)))
	}

	// 5-7. Togglable categories: disabled ones become savings, the rest
	// carry forward at the current bill's cost.
	vasTotal := bill.CategoryTotal(entities.CategoryVAS)
	if scenario.DisableVAS {
		if vasTotal != 0 {
			ledger.addSaving("vas_savings", "VAS subscriptions cancelled", decimal.NewFromFloat(vasTotal))
		}
		recommendations = append(recommendations, "VAS cancellation requires manual action with each provider")
	} else if vasTotal != 0 {
		ledger.addCost("vas", "VAS subscriptions", decimal.NewFromFloat(vasTotal))
	}

	premiumTotal := bill.CategoryTotal(entities.CategoryPremiumSMS)
	if scenario.BlockPremiumSMS {
		if premiumTotal != 0 {
			ledger.addSaving("premium_sms_savings", "premium SMS blocked", decimal.NewFromFloat(premiumTotal))
		}
	} else if premiumTotal != 0 {
		ledger.addCost("premium_sms", "premium SMS", decimal.NewFromFloat(premiumTotal))
	}

	roamingTotal := bill.CategoryTotal(entities.CategoryRoaming)
	if scenario.EnableRoamingBlock {
		if roamingTotal != 0 {
			ledger.addSaving("roaming_savings", "roaming blocked", decimal.NewFromFloat(roamingTotal))
		}
	} else if roamingTotal != 0 {
		ledger.addCost("roaming", "roaming charges", decimal.NewFromFloat(roamingTotal))
	}

	// 8. One-off charges and discounts carry forward unconditionally.
	if oneOff := bill.CategoryTotal(entities.CategoryOneOff); oneOff != 0 {
		ledger.addCost("one_off", "one-off charges", decimal.NewFromFloat(oneOff))
	}
	if discount := absTotal(bill, entities.CategoryDiscount); discount != 0 {
		ledger.total = ledger.total.Sub(decimal.NewFromFloat(discount))
		ledger.breakdown["discount"] = -discount
		ledger.details = append(ledger.details, entities.WhatIfDetail{Label: "discounts", Amount: -discount})
	}

	// 9. Tax applies once, after every component.
	tax := ledger.total.Mul(decimal.NewFromFloat(taxRate))
	ledger.addCost("tax", fmt.Sprintf("tax (%.0f%%)", taxRate*100), tax)

	// 10. Recommendations.
	if dataOverGB == 0 && voiceOverMin == 0 {
		recommendations = append(recommendations, "no overage expected with this configuration")
	}
	if planChanged {
		recommendations = append(recommendations, "plan change takes effect at the start of the next billing period")
	}
	if len(scenario.AddOns) > 0 {
		recommendations = append(recommendations, "add-on packs activate immediately")
	}
	if dataOverGB > 0 {
		recommendations = append(recommendations, "data overage remains; consider a plan with a larger data quota")
	}

	newTotal := ledger.total.Round(2)
	currentTotal := decimal.NewFromFloat(bill.TotalAmount)
	saving := currentTotal.Sub(newTotal).Round(2)
	savingPercent := decimal.Zero
	if !currentTotal.IsZero() {
		savingPercent = saving.Div(currentTotal).Mul(decimal.NewFromInt(100)).Round(1)
	}

	return entities.WhatIfResult{
		CurrentTotal:    bill.TotalAmount,
		NewTotal:        newTotal.InexactFloat64(),
		Saving:          saving.InexactFloat64(),
		SavingPercent:   savingPercent.InexactFloat64(),
		Details:         ledger.details,
		Breakdown:       ledger.breakdown,
		Recommendations: recommendations,
		RiskFactors:     riskFactors,
	}, nil
}

// resolveAddOns fetches the packs concurrently. Unknown ids are logged and
// skipped so recommendation generation stays available; incompatible packs
// are kept but produce a risk note.
func (u *WhatIfUseCase) resolveAddOns(ctx context.Context, ids []string, planID string) ([]entities.AddOnPack, []string) {
	if len(ids) == 0 {
		return nil, nil
	}
	resolved := make([]entities.AddOnPack, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			pack, err := u.repo.GetAddOn(gctx, id)
			if err != nil {
				log.Printf("[whatif][usecase] add-on lookup failed addon_id=%s: %v", id, err)
				return nil
			}
			resolved[i] = pack
			return nil
		})
	}
	_ = g.Wait() // individual lookups already degraded

	var packs []entities.AddOnPack
	var notes []string
	for i, pack := range resolved {
		if pack.AddonID == "" {
			log.Printf("[whatif][usecase] add-on not found addon_id=%s, skipped", ids[i])
			continue
		}
		if !pack.CompatibleWith(planID) {
			notes = append(notes, fmt.Sprintf("add-on %s is not listed as compatible with plan %s", addonLabel(pack), planID))
		}
		packs = append(packs, pack)
	}
	return packs, notes
}

// projectOverage replays the realized overage quantity against a new quota.
// Observed consumption = old quota + realized overage; whatever the new
// quota cannot absorb is overage again.
func projectOverage(oldQuota, realizedOverage, newQuota float64) float64 {
	if realizedOverage <= 0 {
		return 0
	}
	consumption := oldQuota + realizedOverage
	if consumption <= newQuota {
		return 0
	}
	return consumption - newQuota
}

// absTotal returns the magnitude of a category total; discount items may be
// stored with either sign.
func absTotal(bill entities.Bill, cat entities.ItemCategory) float64 {
	t := bill.CategoryTotal(cat)
	if t < 0 {
		return -t
	}
	return t
}

func planLabel(p entities.Plan) string {
	if p.Name != "" {
		return p.Name
	}
	return p.PlanID
}

func addonLabel(a entities.AddOnPack) string {
	if a.Name != "" {
		return a.Name
	}
	return a.AddonID
}

// CompareScenarios runs CalculateWhatIf independently for up to five
// scenarios. A failed scenario is recorded with rank 999 and its error
// message; successful ones get dense descending ranks by saving.
func (u *WhatIfUseCase) CompareScenarios(ctx context.Context, userID, period string, scenarios []entities.Scenario) (entities.ScenarioComparison, error) {
	if len(scenarios) == 0 || len(scenarios) > maxScenarios {
		return entities.ScenarioComparison{}, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidScenarioCount, len(scenarios), maxScenarios)
	}

	outcomes := make([]entities.ScenarioOutcome, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		g.Go(func() error {
			outcome := entities.ScenarioOutcome{
				Scenario:    sc,
				Type:        classifyScenario(sc),
				Feasibility: scenarioFeasibility(sc),
				RiskLevel:   scenarioRiskLevel(sc),
			}
			result, err := u.CalculateWhatIf(gctx, userID, period, sc)
			if err != nil {
				outcome.Rank = errorRank
				outcome.Error = err.Error()
			} else {
				outcome.Result = &result
			}
			outcomes[i] = outcome
			return nil
		})
	}
	_ = g.Wait() // scenario failures are recorded, never propagated

	// Dense descending ranks among the successful scenarios.
	ok := make([]*entities.ScenarioOutcome, 0, len(outcomes))
	for i := range outcomes {
		if outcomes[i].Error == "" {
			ok = append(ok, &outcomes[i])
		}
	}
	sort.SliceStable(ok, func(i, j int) bool { return ok[i].Result.Saving > ok[j].Result.Saving })
	rank := 0
	prev := 0.0
	for i, o := range ok {
		if i == 0 || o.Result.Saving != prev {
			rank++
		}
		o.Rank = rank
		prev = o.Result.Saving
	}

	summary := "no scenario could be computed"
	if len(ok) > 0 {
		best := ok[0].Result
		worst := ok[len(ok)-1].Result
		summary = fmt.Sprintf("best scenario saves %.2f; spread between best and worst is %.2f",
			best.Saving, best.Saving-worst.Saving)
	}

	return entities.ScenarioComparison{Scenarios: outcomes, Summary: summary}, nil
}

// classifyScenario tags the scenario with a coarse type; the first matching
// rule wins.
func classifyScenario(sc entities.Scenario) string {
	hasToggle := sc.DisableVAS || sc.BlockPremiumSMS || sc.EnableRoamingBlock
	switch {
	case sc.PlanID != "" && (len(sc.AddOns) > 0 || hasToggle):
		return "comprehensive"
	case sc.PlanID != "":
		return "plan_change"
	case len(sc.AddOns) > 0 && !hasToggle:
		return "addon_only"
	case hasToggle:
		return "cost_reduction"
	default:
		return "optimization"
	}
}

func scenarioFeasibility(sc entities.Scenario) string {
	if sc.PlanID != "" || len(sc.AddOns) > feasibilityLimit {
		return "conditional"
	}
	return "high"
}

func scenarioRiskLevel(sc entities.Scenario) string {
	var score float64
	if sc.PlanID != "" {
		score++
	}
	if sc.DisableVAS {
		score += 0.5
	}
	if sc.EnableRoamingBlock {
		score += 2
	}
	switch {
	case score >= 2.5:
		return "high"
	case score >= 1.5:
		return "medium"
	default:
		return "low"
	}
}
