package services

import (
	"assetfolio/internal/models"
	"assetfolio/internal/pagination"
	"assetfolio/internal/portfolio"
)

// UserServicer defines the contract for user and signup-verification logic.
// Register and ResendOTP return the plaintext one-time code so the caller
// can deliver it; only its hash is stored.
type UserServicer interface {
	Register(email, password, firstName, lastName string) (*models.User, string, error)
	VerifyOTP(email, code string) (*models.User, error)
	ResendOTP(email string) (*models.User, string, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// PropertyInput carries the writable fields of a real-estate holding.
// ROI is intentionally absent; it is always derived server-side.
type PropertyInput struct {
	Name          string
	Location      string
	InvestedValue float64
	CurrentValue  float64
	Rent          float64
}

// PropertyServicer defines the contract for real-estate holdings.
type PropertyServicer interface {
	List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Property], *portfolio.PropertyTotals, error)
	GetByID(userID, propertyID uint) (*models.Property, error)
	Create(userID uint, input PropertyInput) (*models.Property, error)
	Update(userID, propertyID uint, input PropertyInput) (*models.Property, error)
	Delete(userID, propertyID uint) error
}

// StockInput carries the writable fields of a stock holding.
type StockInput struct {
	Name        string
	Quantity    float64
	BuyPrice    float64
	MarketPrice float64
}

// StockServicer defines the contract for stock holdings.
type StockServicer interface {
	List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], *portfolio.HoldingTotals, error)
	GetByID(userID, stockID uint) (*models.Stock, error)
	Create(userID uint, input StockInput) (*models.Stock, error)
	Update(userID, stockID uint, input StockInput) (*models.Stock, error)
	Delete(userID, stockID uint) error
}

// CommodityInput carries the writable fields of a commodity holding.
type CommodityInput struct {
	Name        string
	Quantity    float64
	Unit        string
	BuyPrice    float64
	MarketPrice float64
}

// CommodityServicer defines the contract for commodity holdings.
type CommodityServicer interface {
	List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Commodity], *portfolio.HoldingTotals, error)
	GetByID(userID, commodityID uint) (*models.Commodity, error)
	Create(userID uint, input CommodityInput) (*models.Commodity, error)
	Update(userID, commodityID uint, input CommodityInput) (*models.Commodity, error)
	Delete(userID, commodityID uint) error
}

// BusinessInput carries the writable fields of a business holding.
type BusinessInput struct {
	Name      string
	Industry  string
	Valuation float64
	Ownership string
	Revenue   float64
	NetProfit float64
	Status    models.BusinessStatus
}

// BusinessServicer defines the contract for business holdings.
type BusinessServicer interface {
	List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Business], *portfolio.BusinessTotals, error)
	GetByID(userID, businessID uint) (*models.Business, error)
	Create(userID uint, input BusinessInput) (*models.Business, error)
	Update(userID, businessID uint, input BusinessInput) (*models.Business, error)
	Delete(userID, businessID uint) error
}

// CashPileServicer defines the contract for per-category cash balances.
// Get never fails for a pile that was never set; it reports a zero amount.
type CashPileServicer interface {
	Get(userID uint, class models.AssetClass) (*models.CashPile, error)
	Set(userID uint, class models.AssetClass, amount float64) (*models.CashPile, error)
	AddDelta(userID uint, class models.AssetClass, delta float64) (*models.CashPile, error)
}

// CategoryCounts holds the per-category record counts for the dashboard.
type CategoryCounts struct {
	RealEstate  int64 `json:"realEstate"`
	Stocks      int64 `json:"stocks"`
	Commodities int64 `json:"commodities"`
	Businesses  int64 `json:"businesses"`
}

// PortfolioTotals holds the overall invested/current/ROI figures.
// Current includes per-category cash piles; ROI is computed over
// holdings only, since cash was never invested.
type PortfolioTotals struct {
	Invested float64 `json:"invested"`
	Current  float64 `json:"current"`
	ROI      float64 `json:"roi"`
}

// BusinessRollup holds the business-specific dashboard totals.
type BusinessRollup struct {
	Valuation float64 `json:"valuation"`
	Revenue   float64 `json:"revenue"`
	NetProfit float64 `json:"netProfit"`
}

// SummaryTotals groups asset-type-specific rollups.
type SummaryTotals struct {
	Businesses BusinessRollup `json:"businesses"`
}

// DashboardSummary is the aggregate consumed by the dashboard view.
type DashboardSummary struct {
	Counts    CategoryCounts             `json:"counts"`
	Portfolio PortfolioTotals            `json:"portfolio"`
	Breakdown []portfolio.BreakdownEntry `json:"breakdown"`
	Totals    SummaryTotals              `json:"totals"`
}

// DashboardServicer defines the contract for cross-category aggregation.
type DashboardServicer interface {
	Summary(userID uint) (*DashboardSummary, error)
	Allocation(userID uint) ([]portfolio.AllocationSlice, error)
}

// SnapshotServicer defines the contract for net-worth snapshots.
type SnapshotServicer interface {
	Record(userID uint) (*models.PortfolioSnapshot, error)
	RecordAll() error
	List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
