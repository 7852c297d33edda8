package stats

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Mean(nil)
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("values", func(t *testing.T) {
		m, err := Mean([]float64{20, 22, 19})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(m, 61.0/3.0) {
			t.Fatalf("unexpected mean: %v", m)
		}
	})
}

func TestVariance(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if v := Variance(nil, 0); v != 0 {
			t.Fatalf("expected 0, got %v", v)
		}
	})

	t.Run("population variance", func(t *testing.T) {
		values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
		m, _ := Mean(values)
		if v := Variance(values, m); !almostEqual(v, 4) {
			t.Fatalf("expected 4, got %v", v)
		}
		if sd := StdDev(values, m); !almostEqual(sd, 2) {
			t.Fatalf("expected 2, got %v", sd)
		}
	})
}

func TestZScore(t *testing.T) {
	t.Run("zero std dev yields no signal", func(t *testing.T) {
		if z := ZScore(100, 20, 0); z != 0 {
			t.Fatalf("expected 0, got %v", z)
		}
	})

	t.Run("standard score", func(t *testing.T) {
		if z := ZScore(12, 10, 2); !almostEqual(z, 1) {
			t.Fatalf("expected 1, got %v", z)
		}
		if z := ZScore(4, 10, 2); !almostEqual(z, -3) {
			t.Fatalf("expected -3, got %v", z)
		}
	})

	t.Run("spec baseline scenario", func(t *testing.T) {
		// current 100 against history [20,22,19]
		values := []float64{20, 22, 19}
		m, _ := Mean(values)
		sd := StdDev(values, m)
		z := ZScore(100, m, sd)
		if z < 60 || z > 70 {
			t.Fatalf("expected z-score near 63.7, got %v", z)
		}
	})
}

func TestPercentageChange(t *testing.T) {
	t.Run("zero mean yields no signal", func(t *testing.T) {
		if p := PercentageChange(50, 0); p != 0 {
			t.Fatalf("expected 0, got %v", p)
		}
	})

	t.Run("increase and decrease", func(t *testing.T) {
		if p := PercentageChange(150, 100); !almostEqual(p, 50) {
			t.Fatalf("expected 50, got %v", p)
		}
		if p := PercentageChange(50, 100); !almostEqual(p, -50) {
			t.Fatalf("expected -50, got %v", p)
		}
	})
}
