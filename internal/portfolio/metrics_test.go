package portfolio

import (
	"math"
	"testing"
)

func TestROIPercent(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		got := ROIPercent(1000, 1500)
		if got != 50 {
			t.Errorf("expected 50, got %v", got)
		}
	})

	t.Run("loss", func(t *testing.T) {
		got := ROIPercent(1000, 750)
		if got != -25 {
			t.Errorf("expected -25, got %v", got)
		}
	})

	t.Run("zero_invested_returns_zero", func(t *testing.T) {
		got := ROIPercent(0, 1500)
		if got != 0 {
			t.Errorf("expected 0 for zero invested, got %v", got)
		}
	})

	t.Run("never_nan_or_inf", func(t *testing.T) {
		cases := [][2]float64{
			{0, 0},
			{0, math.Inf(1)},
			{math.Inf(1), math.Inf(1)},
			{1, math.NaN()},
		}
		for _, c := range cases {
			got := ROIPercent(c[0], c[1])
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("ROIPercent(%v, %v) = %v, expected finite", c[0], c[1], got)
			}
		}
	})
}

func TestRentYieldPercent(t *testing.T) {
	t.Run("annualized", func(t *testing.T) {
		// 10000 monthly rent on a 1.2M property: 10000*12*100/1200000 = 10%
		got := RentYieldPercent(10000, 1200000)
		if got != 10.0 {
			t.Errorf("expected 10.0, got %v", got)
		}
	})

	t.Run("zero_invested_returns_zero", func(t *testing.T) {
		if got := RentYieldPercent(10000, 0); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestParseOwnership(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"25%", 25},
		{"40%", 40},
		{"12.5%", 12.5},
		{"100", 100},
		{" 30 % ", 0}, // inner space between number and % is not a percentage
		{" 30% ", 30},
		{"", 0},
		{"%", 0},
		{"abc", 0},
		{"0%", 0},
	}
	for _, c := range cases {
		if got := ParseOwnership(c.in); got != c.want {
			t.Errorf("ParseOwnership(%q) = %v, expected %v", c.in, got, c.want)
		}
	}
}

func TestStakeValue(t *testing.T) {
	t.Run("parses_percentage_string", func(t *testing.T) {
		got := StakeValue(1000000, "40%")
		if got != 400000 {
			t.Errorf("expected 400000, got %v", got)
		}
	})

	t.Run("zero_valuation_zero_ownership", func(t *testing.T) {
		got := StakeValue(0, "0%")
		if got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
		if math.IsNaN(got) {
			t.Error("expected finite result, got NaN")
		}
	})

	t.Run("unparsable_ownership", func(t *testing.T) {
		if got := StakeValue(500000, "half"); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestProfitMarginPercent(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		if got := ProfitMarginPercent(25000, 100000); got != 25 {
			t.Errorf("expected 25, got %v", got)
		}
	})

	t.Run("negative_profit", func(t *testing.T) {
		if got := ProfitMarginPercent(-10000, 100000); got != -10 {
			t.Errorf("expected -10, got %v", got)
		}
	})

	t.Run("zero_revenue_returns_zero", func(t *testing.T) {
		if got := ProfitMarginPercent(25000, 0); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestValueAndInvested(t *testing.T) {
	if got := Value(10, 150); got != 1500 {
		t.Errorf("expected 1500, got %v", got)
	}
	if got := Invested(10, 100); got != 1000 {
		t.Errorf("expected 1000, got %v", got)
	}
	if got := ProfitOrLoss(1500, 1000); got != 500 {
		t.Errorf("expected 500, got %v", got)
	}
	// NaN quantity degrades to 0 rather than poisoning totals
	if got := Value(math.NaN(), 150); got != 0 {
		t.Errorf("expected 0 for NaN quantity, got %v", got)
	}
}
