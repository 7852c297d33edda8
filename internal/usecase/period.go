package usecase

import (
	"fmt"
	"time"
)

// maxPeriodAgeMonths bounds how far back an analysis period may reach.
const maxPeriodAgeMonths = 24

// parsePeriod parses a YYYY-MM period into the first day of that month (UTC).
func parsePeriod(period string) (time.Time, error) {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// validatePeriod checks format and range: the month must not be in the
// future and not older than maxPeriodAgeMonths before now.
func validatePeriod(period string) error {
	start, err := parsePeriod(period)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	now := time.Now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if start.After(currentMonth) {
		return fmt.Errorf("%w: %q is in the future", ErrInvalidPeriod, period)
	}
	if start.Before(currentMonth.AddDate(0, -maxPeriodAgeMonths, 0)) {
		return fmt.Errorf("%w: %q is older than %d months", ErrInvalidPeriod, period, maxPeriodAgeMonths)
	}
	return nil
}

func formatPeriod(t time.Time) string {
	return t.Format("2006-01")
}

// previousPeriod returns the period immediately before the given one.
// The input must already be validated.
func previousPeriod(period string) string {
	start, err := parsePeriod(period)
	if err != nil {
		return ""
	}
	return formatPeriod(start.AddDate(0, -1, 0))
}

// periodBounds returns the first and last calendar day of the period.
func periodBounds(period string) (time.Time, time.Time) {
	start, err := parsePeriod(period)
	if err != nil {
		return time.Time{}, time.Time{}
	}
	return start, start.AddDate(0, 1, -1)
}
