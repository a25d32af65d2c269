package models

// AssetClass identifies one of the four tracked asset categories.
type AssetClass string

const (
	AssetClassRealEstate  AssetClass = "realEstate"
	AssetClassStocks      AssetClass = "stocks"
	AssetClassCommodities AssetClass = "commodities"
	AssetClassBusinesses  AssetClass = "businesses"
)

// AssetClasses lists all valid asset classes in display order.
var AssetClasses = []AssetClass{
	AssetClassRealEstate,
	AssetClassStocks,
	AssetClassCommodities,
	AssetClassBusinesses,
}

// Valid reports whether the asset class is one of the known categories.
func (a AssetClass) Valid() bool {
	switch a {
	case AssetClassRealEstate, AssetClassStocks, AssetClassCommodities, AssetClassBusinesses:
		return true
	}
	return false
}

// DisplayName returns the human-readable category name used in the
// dashboard breakdown.
func (a AssetClass) DisplayName() string {
	switch a {
	case AssetClassRealEstate:
		return "Real Estate"
	case AssetClassStocks:
		return "Stocks"
	case AssetClassCommodities:
		return "Commodities"
	case AssetClassBusinesses:
		return "Businesses"
	}
	return string(a)
}

// CashPile holds the uninvested cash balance a user keeps aside for one
// asset class. One row per (user, asset class); mutated by absolute sets
// and additive deltas, never deleted.
type CashPile struct {
	Base
	UserID     uint       `gorm:"not null;uniqueIndex:uq_cash_piles_user_class" json:"userId"`
	AssetClass AssetClass `gorm:"not null;uniqueIndex:uq_cash_piles_user_class" json:"assetClass"`
	Amount     float64    `gorm:"not null;default:0" json:"amount"`
}
