package portfolio

// BreakdownEntry is one category's contribution to the cross-category
// summary. Valuation is only meaningful for businesses, where the full
// company valuation differs from the owned stake counted in Current.
type BreakdownEntry struct {
	Category  string  `json:"category"`
	Invested  float64 `json:"invested"`
	Current   float64 `json:"current"`
	Valuation float64 `json:"valuation,omitempty"`
}

// AllocationSlice is one category's slice of the allocation chart.
type AllocationSlice struct {
	Category     string  `json:"category"`
	Value        float64 `json:"value"`
	SharePercent float64 `json:"sharePercent"`
}

// DisplayValue picks the value a category contributes to the allocation
// chart: current value if present, else valuation, else invested, else 0.
// The fallback chain is deliberate, not an error case; a category with no
// current value still deserves a slice if it has a valuation or cost.
func DisplayValue(e BreakdownEntry) float64 {
	switch {
	case e.Current != 0:
		return finite(e.Current)
	case e.Valuation != 0:
		return finite(e.Valuation)
	default:
		return finite(e.Invested)
	}
}

// Allocate computes each category's display value and share of the
// total. Shares sum to 100 (up to floating-point rounding) when the
// total is positive; when the total is 0 every share is 0.
func Allocate(breakdown []BreakdownEntry) []AllocationSlice {
	slices := make([]AllocationSlice, len(breakdown))

	var total float64
	for i, e := range breakdown {
		v := DisplayValue(e)
		slices[i] = AllocationSlice{Category: e.Category, Value: v}
		total += v
	}

	if total > 0 {
		for i := range slices {
			slices[i].SharePercent = finite(slices[i].Value / total * 100)
		}
	}

	return slices
}
