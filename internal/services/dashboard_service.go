package services

import (
	"gorm.io/gorm"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/portfolio"
)

// dashboardService computes the cross-category summary.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// holdings is everything a user owns, loaded in one pass so the
// dashboard and snapshots aggregate over a consistent view.
type holdings struct {
	properties  []models.Property
	stocks      []models.Stock
	commodities []models.Commodity
	businesses  []models.Business
	piles       map[models.AssetClass]float64
}

// cashTotal sums all four cash piles.
func (h *holdings) cashTotal() float64 {
	var total float64
	for _, amount := range h.piles {
		total += amount
	}
	return total
}

// loadHoldings fetches all of a user's asset records and cash piles.
func loadHoldings(db *gorm.DB, userID uint) (*holdings, error) {
	h := &holdings{piles: make(map[models.AssetClass]float64, len(models.AssetClasses))}

	if err := db.Where("user_id = ?", userID).Find(&h.properties).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Where("user_id = ?", userID).Find(&h.stocks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Where("user_id = ?", userID).Find(&h.commodities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Where("user_id = ?", userID).Find(&h.businesses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var piles []models.CashPile
	if err := db.Where("user_id = ?", userID).Find(&piles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, p := range piles {
		h.piles[p.AssetClass] = p.Amount
	}

	return h, nil
}

// Summary aggregates all four categories into the dashboard payload.
// Each category's cash pile is folded into its current value; business
// worth counts the owned stake, not the full valuation.
func (s *dashboardService) Summary(userID uint) (*DashboardSummary, error) {
	h, err := loadHoldings(s.db, userID)
	if err != nil {
		return nil, err
	}

	re := portfolio.AggregateProperties(h.properties)
	st := portfolio.AggregateStocks(h.stocks)
	co := portfolio.AggregateCommodities(h.commodities)
	bi := portfolio.AggregateBusinesses(h.businesses)

	breakdown := []portfolio.BreakdownEntry{
		{
			Category: models.AssetClassRealEstate.DisplayName(),
			Invested: re.Invested,
			Current:  re.CurrentValue + h.piles[models.AssetClassRealEstate],
		},
		{
			Category: models.AssetClassStocks.DisplayName(),
			Invested: st.Invested,
			Current:  st.MarketValue + h.piles[models.AssetClassStocks],
		},
		{
			Category: models.AssetClassCommodities.DisplayName(),
			Invested: co.Invested,
			Current:  co.MarketValue + h.piles[models.AssetClassCommodities],
		},
		{
			Category:  models.AssetClassBusinesses.DisplayName(),
			Current:   bi.StakeValue + h.piles[models.AssetClassBusinesses],
			Valuation: bi.Valuation,
		},
	}

	holdingsInvested := re.Invested + st.Invested + co.Invested
	holdingsCurrent := re.CurrentValue + st.MarketValue + co.MarketValue + bi.StakeValue

	summary := &DashboardSummary{
		Counts: CategoryCounts{
			RealEstate:  int64(re.Count),
			Stocks:      int64(st.Count),
			Commodities: int64(co.Count),
			Businesses:  int64(bi.Count),
		},
		Portfolio: PortfolioTotals{
			Invested: holdingsInvested,
			Current:  holdingsCurrent + h.cashTotal(),
			ROI:      portfolio.ROIPercent(holdingsInvested, holdingsCurrent),
		},
		Breakdown: breakdown,
		Totals: SummaryTotals{
			Businesses: BusinessRollup{
				Valuation: bi.Valuation,
				Revenue:   bi.Revenue,
				NetProfit: bi.NetProfit,
			},
		},
	}
	return summary, nil
}

// Allocation computes the per-category shares for the allocation chart.
func (s *dashboardService) Allocation(userID uint) ([]portfolio.AllocationSlice, error) {
	summary, err := s.Summary(userID)
	if err != nil {
		return nil, err
	}
	return portfolio.Allocate(summary.Breakdown), nil
}
