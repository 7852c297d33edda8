// Package stats holds the numeric primitives shared by the analysis
// engines. All functions are pure.
package stats

import (
	"errors"
	"math"
)

var ErrEmptyInput = errors.New("empty input")

// Mean returns the arithmetic mean. Callers are expected to guard against
// empty input; ErrEmptyInput exists for the ones that do not.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Variance returns the population variance around the given mean.
func Variance(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation around the given mean.
func StdDev(values []float64, mean float64) float64 {
	return math.Sqrt(Variance(values, mean))
}

// ZScore returns how many standard deviations current sits from mean.
// A zero stdDev yields 0: no baseline spread means no anomaly signal from
// this test, not an error.
func ZScore(current, mean, stdDev float64) float64 {
	if stdDev == 0 {
		return 0
	}
	return (current - mean) / stdDev
}

// PercentageChange returns the percent change of current against mean.
// A zero mean yields 0: with no historical baseline the new-item rule, not
// the percentage rule, is responsible for flagging.
func PercentageChange(current, mean float64) float64 {
	if mean == 0 {
		return 0
	}
	return (current - mean) / mean * 100
}
