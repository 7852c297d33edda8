package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase/interfaces"
	"github.com/MAZTEK-CODENIGHT/backend/pkg/stats"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidThreshold = errors.New("invalid threshold")
	ErrInvalidMonths    = errors.New("invalid months")
	ErrBillNotFound     = errors.New("bill not found")
)

const (
	// DefaultAnomalyThreshold is the sensitivity used when the caller does
	// not supply one. The percentage rule fires above threshold*100 percent.
	DefaultAnomalyThreshold = 0.8

	historyThreshold  = 0.7
	minLookbackMonths = 3
	maxHistoryMonths  = 24

	zScoreFire   = 2.0
	zScoreHigh   = 3.0
	pctHigh      = 200.0
	pctMedium    = 100.0
	newItemHigh  = 50.0
	roamingLimit = 1000.0 // MB per period
	spikeFactor  = 3.0
)

// newItemCategories are the base charge categories the new-item rule
// watches. Derived keys (overages, monthly fee) are excluded: they always
// track an existing category.
var newItemCategories = []entities.ItemCategory{
	entities.CategoryData,
	entities.CategoryVoice,
	entities.CategorySMS,
	entities.CategoryPremiumSMS,
	entities.CategoryVAS,
	entities.CategoryRoaming,
}

// IAnomalyUseCase exposes anomaly detection over a subscriber's bills.

type IAnomalyUseCase interface {
	DetectAnomalies(ctx context.Context, userID, period string, threshold float64) (entities.AnomalyReport, error)
	GetDetailedAnalysis(ctx context.Context, userID, period string) (entities.DetailedAnalysis, error)
	GetAnomalyHistory(ctx context.Context, userID string, months int) (entities.AnomalyHistory, error)
}

// AnomalyUseCase compares a target bill against a trailing window of
// historical bills and daily usage. Read-only; every invocation works on a
// snapshot fetched fresh for that call.
type AnomalyUseCase struct {
	repo interfaces.IBillingRepository
}

var _ IAnomalyUseCase = (*AnomalyUseCase)(nil)

func NewAnomalyUseCase(repo interfaces.IBillingRepository) *AnomalyUseCase {
	return &AnomalyUseCase{repo: repo}
}

// DetectAnomalies runs the four detection stages in fixed order
// (category statistics, new items, roaming, usage spike) and aggregates
// the findings into a bounded risk score.
func (u *AnomalyUseCase) DetectAnomalies(ctx context.Context, userID, period string, threshold float64) (entities.AnomalyReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.AnomalyReport{}, ErrInvalidUserID
	}
	if err := validatePeriod(period); err != nil {
		return entities.AnomalyReport{}, err
	}
	if threshold < 0 || threshold > 5 {
		return entities.AnomalyReport{}, fmt.Errorf("%w: %v not in [0,5]", ErrInvalidThreshold, threshold)
	}

	snap, err := u.loadSnapshot(ctx, userID, period)
	if err != nil {
		return entities.AnomalyReport{}, err
	}

	anomalies := u.categoryAnomalies(snap.bill, snap.history, threshold)
	anomalies = append(anomalies, u.newItemAnomalies(snap.bill, snap.history)...)
	anomalies = append(anomalies, u.roamingAnomalies(snap.usage, snap.prevUsage)...)
	anomalies = append(anomalies, u.usageSpikeAnomalies(snap.usage)...)

	return entities.AnomalyReport{
		Anomalies:        anomalies,
		TotalAnomalies:   len(anomalies),
		RiskScore:        calculateRiskScore(anomalies, snap.bill.TotalAmount),
		AnalysisPeriod:   period,
		ComparisonMonths: len(snap.history),
		ThresholdUsed:    threshold,
	}, nil
}

// anomalySnapshot is everything one detection run reads from storage.
type anomalySnapshot struct {
	bill      entities.Bill
	history   []entities.Bill
	usage     []entities.UsageDailyRecord
	prevUsage []entities.UsageDailyRecord
}

// loadSnapshot issues the four independent reads concurrently. Only a
// missing target bill aborts the run; history and usage degrade to absent
// so the report stays available with incomplete data.
func (u *AnomalyUseCase) loadSnapshot(ctx context.Context, userID, period string) (anomalySnapshot, error) {
	var snap anomalySnapshot
	from, to := periodBounds(period)
	prevFrom, prevTo := periodBounds(previousPeriod(period))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bill, err := u.repo.GetBill(gctx, userID, period)
		if err != nil {
			return err
		}
		snap.bill = bill
		return nil
	})
	g.Go(func() error {
		history, err := u.repo.GetHistoricalBills(gctx, userID, period, minLookbackMonths)
		if err != nil {
			log.Printf("[anomaly][usecase] historical bills unavailable user_id=%s period=%s: %v", userID, period, err)
			return nil
		}
		snap.history = history
		return nil
	})
	g.Go(func() error {
		usage, err := u.repo.GetDailyUsage(gctx, userID, from, to)
		if err != nil {
			log.Printf("[anomaly][usecase] daily usage unavailable user_id=%s period=%s: %v", userID, period, err)
			return nil
		}
		snap.usage = usage
		return nil
	})
	g.Go(func() error {
		usage, err := u.repo.GetDailyUsage(gctx, userID, prevFrom, prevTo)
		if err != nil {
			log.Printf("[anomaly][usecase] previous usage unavailable user_id=%s period=%s: %v", userID, period, err)
			return nil
		}
		snap.prevUsage = usage
		return nil
	})
	if err := g.Wait(); err != nil {
		return anomalySnapshot{}, err
	}
	if snap.bill.BillID == "" {
		return anomalySnapshot{}, fmt.Errorf("%w: user_id=%s period=%s", ErrBillNotFound, userID, period)
	}

	// Keep only bills strictly before the target, newest first. The
	// repository already filters, but the engine does not rely on it.
	filtered := snap.history[:0]
	for _, b := range snap.history {
		if b.Period < period {
			filtered = append(filtered, b)
		}
	}
	snap.history = filtered
	sort.Slice(snap.history, func(i, j int) bool { return snap.history[i].Period > snap.history[j].Period })
	return snap, nil
}

// categoryAnomalies applies the hybrid statistical test per category key.
// Exactly one rule can fire per category; the z-score takes priority over
// the percentage change.
func (u *AnomalyUseCase) categoryAnomalies(bill entities.Bill, history []entities.Bill, threshold float64) []entities.AnomalyRecord {
	var anomalies []entities.AnomalyRecord
	for _, cat := range entities.StatCategories {
		current := bill.StatTotal(cat)

		var histVals []float64
		for _, hb := range history {
			if v := hb.StatTotal(cat); v != 0 {
				histVals = append(histVals, v)
			}
		}
		if len(histVals) == 0 {
			// No historical data points: only the new-item rule may flag
			// this category.
			continue
		}

		mean, err := stats.Mean(histVals)
		if err != nil {
			log.Printf("[anomaly][usecase] statistics skipped category=%s: %v", cat, err)
			continue
		}
		stdDev := stats.StdDev(histVals, mean)
		zScore := stats.ZScore(current, mean, stdDev)
		pct := stats.PercentageChange(current, mean)

		switch {
		case math.Abs(zScore) > zScoreFire:
			severity := entities.SeverityLow
			if zScore >= zScoreHigh {
				severity = entities.SeverityHigh
			} else if zScore >= zScoreFire {
				severity = entities.SeverityMedium
			}
			z := zScore
			anomalies = append(anomalies, entities.AnomalyRecord{
				Type:              entities.AnomalyStatistical,
				Category:          cat,
				CurrentAmount:     current,
				HistoricalAverage: mean,
				Delta:             formatDelta(pct),
				Severity:          severity,
				Reason:            fmt.Sprintf("%s charge of %.2f deviates strongly from the recent average of %.2f", cat, current, mean),
				SuggestedAction:   suggestedAction(cat),
				ZScore:            &z,
			})
		case pct > threshold*100:
			severity := entities.SeverityLow
			if pct >= pctHigh {
				severity = entities.SeverityHigh
			} else if pct >= pctMedium {
				severity = entities.SeverityMedium
			}
			anomalies = append(anomalies, entities.AnomalyRecord{
				Type:              entities.AnomalyPercentageIncrease,
				Category:          cat,
				CurrentAmount:     current,
				HistoricalAverage: mean,
				Delta:             formatDelta(pct),
				Severity:          severity,
				Reason:            fmt.Sprintf("%s charge of %.2f is %.0f%% above the recent average of %.2f", cat, current, pct, mean),
				SuggestedAction:   suggestedAction(cat),
			})
		}
	}
	return anomalies
}

// newItemAnomalies flags categories that are charged for the first time:
// nonzero on the current bill, zero on every historical bill.
func (u *AnomalyUseCase) newItemAnomalies(bill entities.Bill, history []entities.Bill) []entities.AnomalyRecord {
	var anomalies []entities.AnomalyRecord
	for _, cat := range newItemCategories {
		current := bill.CategoryTotal(cat)
		if current == 0 {
			continue
		}
		seen := false
		for _, hb := range history {
			if hb.CategoryTotal(cat) != 0 {
				seen = true
				break
			}
		}
		if seen {
			continue
		}
		severity := entities.SeverityMedium
		if current > newItemHigh {
			severity = entities.SeverityHigh
		}
		anomalies = append(anomalies, entities.AnomalyRecord{
			Type:              entities.AnomalyNewItem,
			Category:          cat,
			CurrentAmount:     current,
			HistoricalAverage: 0,
			Delta:             "NEW",
			Severity:          severity,
			Reason:            fmt.Sprintf("%s charge of %.2f appears for the first time on this bill", cat, current),
			SuggestedAction:   "contact support about the new charge",
			FirstOccurrence:   true,
		})
	}
	return anomalies
}

// roamingAnomalies inspects daily roaming volume for the target and the
// immediately preceding period. Both rules can fire in the same run.
func (u *AnomalyUseCase) roamingAnomalies(usage, prevUsage []entities.UsageDailyRecord) []entities.AnomalyRecord {
	var current, previous float64
	for _, r := range usage {
		current += r.RoamingMB
	}
	for _, r := range prevUsage {
		previous += r.RoamingMB
	}

	var anomalies []entities.AnomalyRecord
	if current > 0 && previous == 0 {
		anomalies = append(anomalies, entities.AnomalyRecord{
			Type:              entities.AnomalyRoamingNew,
			Category:          entities.CategoryRoaming,
			CurrentAmount:     current,
			HistoricalAverage: 0,
			Delta:             "NEW",
			Severity:          entities.SeverityHigh,
			Reason:            fmt.Sprintf("roaming usage of %.0f MB with none in the previous period", current),
			SuggestedAction:   suggestedAction(entities.CategoryRoaming),
			FirstOccurrence:   true,
		})
	}
	if current > roamingLimit {
		anomalies = append(anomalies, entities.AnomalyRecord{
			Type:              entities.AnomalyRoamingExcessive,
			Category:          entities.CategoryRoaming,
			CurrentAmount:     current,
			HistoricalAverage: previous,
			Delta:             fmt.Sprintf("%.0f MB", current),
			Severity:          entities.SeverityHigh,
			Reason:            fmt.Sprintf("roaming usage of %.0f MB exceeds the %.0f MB limit", current, roamingLimit),
			SuggestedAction:   suggestedAction(entities.CategoryRoaming),
		})
	}
	return anomalies
}

// usageSpikeAnomalies flags at most one day: the highest of the days that
// exceed 3x the period's average daily data volume.
func (u *AnomalyUseCase) usageSpikeAnomalies(usage []entities.UsageDailyRecord) []entities.AnomalyRecord {
	if len(usage) == 0 {
		return nil
	}
	var total float64
	for _, r := range usage {
		total += r.MBUsed
	}
	avg := total / float64(len(usage))
	if avg == 0 {
		return nil
	}

	var spike *entities.UsageDailyRecord
	for i := range usage {
		r := usage[i]
		if r.MBUsed <= spikeFactor*avg {
			continue
		}
		if spike == nil || r.MBUsed > spike.MBUsed {
			spike = &usage[i]
		}
	}
	if spike == nil {
		return nil
	}
	return []entities.AnomalyRecord{{
		Type:              entities.AnomalyUsageSpike,
		Category:          entities.CategoryData,
		CurrentAmount:     spike.MBUsed,
		HistoricalAverage: avg,
		Delta:             formatDelta(stats.PercentageChange(spike.MBUsed, avg)),
		Severity:          entities.SeverityMedium,
		Reason:            fmt.Sprintf("data usage of %.0f MB on %s against a daily average of %.0f MB", spike.MBUsed, spike.UsageDate.Format("2006-01-02"), avg),
		SuggestedAction:   suggestedAction(entities.CategoryData),
	}}
}

// calculateRiskScore turns findings into a [0,10] score. Zero findings
// always score zero, regardless of the bill total.
func calculateRiskScore(anomalies []entities.AnomalyRecord, billTotal float64) float64 {
	if len(anomalies) == 0 {
		return 0
	}
	var score float64
	for _, a := range anomalies {
		switch a.Severity {
		case entities.SeverityHigh:
			score += 3
		case entities.SeverityMedium:
			score += 2
		default:
			score++
		}
		if a.FirstOccurrence {
			score++
		}
		if a.Category == entities.CategoryPremiumSMS || a.Category == entities.CategoryRoaming {
			score++
		}
	}
	if billTotal > 500 {
		score++
	}
	if billTotal > 1000 {
		score += 2
	}
	return math.Min(10, math.Max(0, score))
}

func formatDelta(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

func suggestedAction(cat entities.ItemCategory) string {
	switch cat {
	case entities.CategoryPremiumSMS:
		return "consider blocking premium SMS"
	case entities.CategoryVAS:
		return "review VAS subscriptions"
	case entities.CategoryRoaming:
		return "review roaming packages"
	case entities.CategoryData:
		return "review data usage habits"
	case entities.CategoryVoice:
		return "review voice add-ons"
	case entities.CategorySMS:
		return "consider an SMS bundle"
	default:
		return "detailed review recommended"
	}
}

// GetDetailedAnalysis wraps a detection run with interpretation: per
// category insights, prioritized recommendations, a three-period trend,
// cost impact, prevention strategies and a composite risk assessment.
func (u *AnomalyUseCase) GetDetailedAnalysis(ctx context.Context, userID, period string) (entities.DetailedAnalysis, error) {
	report, err := u.DetectAnomalies(ctx, userID, period, DefaultAnomalyThreshold)
	if err != nil {
		return entities.DetailedAnalysis{}, err
	}

	analysis := entities.DetailedAnalysis{
		Report:          report,
		Insights:        buildInsights(report.Anomalies),
		Recommendations: buildRecommendations(report.Anomalies),
		CostImpact:      buildCostImpact(report.Anomalies),
		Prevention:      buildPrevention(report.Anomalies),
	}
	analysis.Trend = u.buildTrend(ctx, userID, period, report.RiskScore)
	analysis.RiskAssessment = buildRiskAssessment(report, analysis.Trend)
	return analysis, nil
}

func buildInsights(anomalies []entities.AnomalyRecord) []entities.CategoryInsight {
	order := make([]entities.ItemCategory, 0, len(anomalies))
	grouped := make(map[entities.ItemCategory][]entities.AnomalyRecord)
	for _, a := range anomalies {
		if _, ok := grouped[a.Category]; !ok {
			order = append(order, a.Category)
		}
		grouped[a.Category] = append(grouped[a.Category], a)
	}

	insights := make([]entities.CategoryInsight, 0, len(order))
	for _, cat := range order {
		var delta float64
		for _, a := range grouped[cat] {
			delta += a.CurrentAmount - a.HistoricalAverage
		}
		insights = append(insights, entities.CategoryInsight{
			Category:   cat,
			Count:      len(grouped[cat]),
			TotalDelta: delta,
			Insight:    fmt.Sprintf("%d finding(s) for %s moving the bill by %+.2f against recent months", len(grouped[cat]), cat, delta),
		})
	}
	return insights
}

func buildRecommendations(anomalies []entities.AnomalyRecord) []string {
	var recs []string
	seen := make(map[string]bool)
	for _, a := range anomalies {
		if a.Severity != entities.SeverityHigh || seen[a.SuggestedAction] {
			continue
		}
		seen[a.SuggestedAction] = true
		recs = append(recs, fmt.Sprintf("high priority: %s (%s)", a.SuggestedAction, a.Category))
	}
	return recs
}

func buildCostImpact(anomalies []entities.AnomalyRecord) entities.CostImpact {
	var impact entities.CostImpact
	for _, a := range anomalies {
		delta := a.CurrentAmount - a.HistoricalAverage
		if delta >= 0 {
			impact.Increase += delta
		} else {
			impact.Decrease += -delta
		}
	}
	impact.Net = impact.Increase - impact.Decrease
	return impact
}

func buildPrevention(anomalies []entities.AnomalyRecord) map[string]string {
	strategies := map[entities.ItemCategory]string{
		entities.CategoryPremiumSMS: "enable a premium SMS block on the line",
		entities.CategoryVAS:        "audit and cancel unused VAS subscriptions",
		entities.CategoryRoaming:    "buy a roaming pack before traveling or block roaming",
		entities.CategoryData:       "set a data usage alert below the quota",
		entities.CategoryVoice:      "switch heavy usage to an unlimited voice add-on",
		entities.CategorySMS:        "add an SMS bundle to the plan",
	}
	prevention := make(map[string]string)
	for _, a := range anomalies {
		if s, ok := strategies[a.Category]; ok {
			prevention[string(a.Category)] = s
		}
	}
	return prevention
}

// buildTrend re-scores the two preceding periods and classifies the
// direction of the latest move. Missing periods degrade to zero scores.
func (u *AnomalyUseCase) buildTrend(ctx context.Context, userID, period string, currentScore float64) entities.TrendSummary {
	periods := []string{previousPeriod(previousPeriod(period)), previousPeriod(period), period}
	scores := []float64{0, 0, currentScore}

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range periods[:2] {
		g.Go(func() error {
			report, err := u.DetectAnomalies(gctx, userID, p, DefaultAnomalyThreshold)
			if err != nil {
				log.Printf("[anomaly][usecase] trend period skipped user_id=%s period=%s: %v", userID, p, err)
				return nil
			}
			scores[i] = report.RiskScore
			return nil
		})
	}
	_ = g.Wait() // per-period failures already degraded

	previous := scores[1]
	direction := "stable"
	switch {
	case previous == 0 && currentScore > 0:
		direction = "increasing"
	case previous == 0:
		direction = "stable"
	case currentScore >= 1.1*previous:
		direction = "increasing"
	case currentScore <= 0.9*previous:
		direction = "decreasing"
	}
	return entities.TrendSummary{Direction: direction, Periods: periods, RiskScores: scores}
}

func buildRiskAssessment(report entities.AnomalyReport, trend entities.TrendSummary) entities.RiskAssessment {
	var financial, usagePattern float64
	for _, a := range report.Anomalies {
		switch a.Type {
		case entities.AnomalyUsageSpike, entities.AnomalyRoamingNew, entities.AnomalyRoamingExcessive:
			usagePattern += 2
		default:
			if a.CurrentAmount > a.HistoricalAverage {
				financial += 2
			} else {
				financial++
			}
		}
	}
	financial = math.Min(10, financial)
	usagePattern = math.Min(10, usagePattern)

	var trendScore float64
	switch trend.Direction {
	case "increasing":
		trendScore = 7
	case "decreasing":
		trendScore = 2
	default:
		trendScore = 4
	}

	overall := math.Min(10, (financial+usagePattern+trendScore+report.RiskScore)/4*1.2)
	level := "low"
	if overall >= 7 {
		level = "high"
	} else if overall >= 4 {
		level = "medium"
	}
	return entities.RiskAssessment{
		Financial:    financial,
		UsagePattern: usagePattern,
		Trend:        trendScore,
		Overall:      math.Round(overall*10) / 10,
		Level:        level,
	}
}

// GetAnomalyHistory re-runs detection for each of the trailing months with
// a fixed lower threshold. Periods without a findable bill degrade to a
// zero-anomaly entry instead of failing the batch.
func (u *AnomalyUseCase) GetAnomalyHistory(ctx context.Context, userID string, months int) (entities.AnomalyHistory, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.AnomalyHistory{}, ErrInvalidUserID
	}
	if months < 1 || months > maxHistoryMonths {
		return entities.AnomalyHistory{}, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidMonths, months, maxHistoryMonths)
	}

	now := time.Now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	entries := make([]entities.AnomalyHistoryEntry, months)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < months; i++ {
		period := formatPeriod(currentMonth.AddDate(0, -i, 0))
		g.Go(func() error {
			entry := entities.AnomalyHistoryEntry{Period: period}
			report, err := u.DetectAnomalies(gctx, userID, period, historyThreshold)
			if err != nil {
				if !errors.Is(err, ErrBillNotFound) {
					log.Printf("[anomaly][usecase] history period degraded user_id=%s period=%s: %v", userID, period, err)
				}
				entries[i] = entry
				return nil
			}
			entry.AnomalyCount = report.TotalAnomalies
			entry.RiskScore = report.RiskScore
			for _, a := range report.Anomalies {
				if a.Severity == entities.SeverityHigh {
					entry.HighSeverity = append(entry.HighSeverity, a)
				}
			}
			entries[i] = entry
			return nil
		})
	}
	_ = g.Wait() // per-period failures already degraded

	return entities.AnomalyHistory{UserID: userID, Months: months, Entries: entries}, nil
}
