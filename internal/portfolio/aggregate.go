package portfolio

import "assetfolio/internal/models"

// HoldingTotals aggregates a list of quantity-priced holdings
// (stocks, commodities).
type HoldingTotals struct {
	Invested    float64 `json:"invested"`
	MarketValue float64 `json:"marketValue"`
	NetPL       float64 `json:"netPL"`
	ROIPercent  float64 `json:"roiPercent"`
	Count       int     `json:"count"`
}

// PropertyTotals aggregates a list of real-estate holdings.
type PropertyTotals struct {
	Invested     float64 `json:"invested"`
	CurrentValue float64 `json:"currentValue"`
	Gain         float64 `json:"gain"`
	ROIPercent   float64 `json:"roiPercent"`
	MonthlyRent  float64 `json:"monthlyRent"`
	Count        int     `json:"count"`
}

// BusinessTotals aggregates a list of business holdings. StakeValue is
// the user's owned share of the combined valuations; that, not the full
// valuation, is what counts toward portfolio worth.
type BusinessTotals struct {
	Valuation     float64 `json:"valuation"`
	StakeValue    float64 `json:"stakeValue"`
	Revenue       float64 `json:"revenue"`
	NetProfit     float64 `json:"netProfit"`
	MarginPercent float64 `json:"marginPercent"`
	Count         int     `json:"count"`
}

// EnrichStock populates the derived fields of a stock record.
func EnrichStock(s *models.Stock) {
	s.Invested = Invested(s.Quantity, s.BuyPrice)
	s.MarketValue = Value(s.Quantity, s.MarketPrice)
	s.NetPL = ProfitOrLoss(s.MarketValue, s.Invested)
	s.ChangePercent = ROIPercent(s.Invested, s.MarketValue)
}

// EnrichCommodity populates the derived fields of a commodity record.
func EnrichCommodity(c *models.Commodity) {
	c.Invested = Invested(c.Quantity, c.BuyPrice)
	c.MarketValue = Value(c.Quantity, c.MarketPrice)
	c.NetPL = ProfitOrLoss(c.MarketValue, c.Invested)
	c.ChangePercent = ROIPercent(c.Invested, c.MarketValue)
}

// EnrichProperty populates the derived fields of a property record.
// ROI is always derived from the stored invested/current pair; any
// value a client sends for it is discarded on write.
func EnrichProperty(p *models.Property) {
	p.Gain = ProfitOrLoss(p.CurrentValue, p.InvestedValue)
	p.ROI = ROIPercent(p.InvestedValue, p.CurrentValue)
	p.RentYield = RentYieldPercent(p.Rent, p.InvestedValue)
}

// EnrichBusiness populates the derived fields of a business record.
func EnrichBusiness(b *models.Business) {
	b.StakeValue = StakeValue(b.Valuation, b.Ownership)
	b.ProfitMargin = ProfitMarginPercent(b.NetProfit, b.Revenue)
}

// AggregateStocks folds stock records into category totals and enriches
// each record in place. NetPL is computed as the difference of the two
// sums so that MarketValue − Invested == NetPL holds exactly.
func AggregateStocks(items []models.Stock) HoldingTotals {
	var t HoldingTotals
	for i := range items {
		EnrichStock(&items[i])
		t.Invested += items[i].Invested
		t.MarketValue += items[i].MarketValue
	}
	t.NetPL = t.MarketValue - t.Invested
	t.ROIPercent = ROIPercent(t.Invested, t.MarketValue)
	t.Count = len(items)
	return t
}

// AggregateCommodities folds commodity records into category totals and
// enriches each record in place.
func AggregateCommodities(items []models.Commodity) HoldingTotals {
	var t HoldingTotals
	for i := range items {
		EnrichCommodity(&items[i])
		t.Invested += items[i].Invested
		t.MarketValue += items[i].MarketValue
	}
	t.NetPL = t.MarketValue - t.Invested
	t.ROIPercent = ROIPercent(t.Invested, t.MarketValue)
	t.Count = len(items)
	return t
}

// AggregateProperties folds property records into category totals and
// enriches each record in place.
func AggregateProperties(items []models.Property) PropertyTotals {
	var t PropertyTotals
	for i := range items {
		EnrichProperty(&items[i])
		t.Invested += items[i].InvestedValue
		t.CurrentValue += items[i].CurrentValue
		t.MonthlyRent += items[i].Rent
	}
	t.Gain = t.CurrentValue - t.Invested
	t.ROIPercent = ROIPercent(t.Invested, t.CurrentValue)
	t.Count = len(items)
	return t
}

// AggregateBusinesses folds business records into category totals and
// enriches each record in place. Each record's own ownership percentage
// determines its stake contribution.
func AggregateBusinesses(items []models.Business) BusinessTotals {
	var t BusinessTotals
	for i := range items {
		EnrichBusiness(&items[i])
		t.Valuation += items[i].Valuation
		t.StakeValue += items[i].StakeValue
		t.Revenue += items[i].Revenue
		t.NetProfit += items[i].NetProfit
	}
	t.MarginPercent = ProfitMarginPercent(t.NetProfit, t.Revenue)
	t.Count = len(items)
	return t
}
