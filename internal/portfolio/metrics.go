// Package portfolio implements the derived-metric formulas and
// aggregation rules shared by every asset category: invested/current
// value, profit and loss, ROI, rent yield, ownership stakes, and the
// cross-category allocation breakdown.
//
// All functions are pure and total: every result is a finite float64.
// Division by zero yields 0, and non-finite inputs degrade to 0 rather
// than poisoning aggregates, since partially filled records are normal
// while the user is editing.
package portfolio

import (
	"math"
	"strconv"
	"strings"
)

// finite clamps NaN and ±Inf to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Value returns the market value of a quantity-priced holding.
func Value(quantity, marketPrice float64) float64 {
	return finite(quantity * marketPrice)
}

// Invested returns the invested amount of a quantity-priced holding.
func Invested(quantity, buyPrice float64) float64 {
	return finite(quantity * buyPrice)
}

// ProfitOrLoss returns current − invested.
func ProfitOrLoss(current, invested float64) float64 {
	return finite(current - invested)
}

// ROIPercent returns the return on investment as a percentage.
// A zero or negative invested amount yields 0, never NaN or Inf.
func ROIPercent(invested, current float64) float64 {
	if invested <= 0 {
		return 0
	}
	return finite((current - invested) / invested * 100)
}

// RentYieldPercent returns the annualized rental yield: twelve months of
// rent as a percentage of the invested value.
func RentYieldPercent(rent, invested float64) float64 {
	if invested <= 0 {
		return 0
	}
	return finite(rent * 12 * 100 / invested)
}

// ParseOwnership parses an ownership percentage string such as "25%" or
// "12.5". Unparsable input yields 0.
func ParseOwnership(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0
	}
	pct, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(pct)
}

// StakeValue returns the owned share of a business valuation given an
// ownership percentage string.
func StakeValue(valuation float64, ownership string) float64 {
	return finite(valuation * ParseOwnership(ownership) / 100)
}

// ProfitMarginPercent returns net profit as a percentage of revenue.
// Zero or negative revenue yields 0.
func ProfitMarginPercent(netProfit, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return finite(netProfit / revenue * 100)
}
