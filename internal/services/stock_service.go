package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/pagination"
	"assetfolio/internal/portfolio"
)

// stockService handles stock holdings.
type stockService struct {
	db *gorm.DB
}

// NewStockService creates a new StockServicer.
func NewStockService(db *gorm.DB) StockServicer {
	return &stockService{db: db}
}

// List returns a page of the user's stocks with category totals
// computed over the full list.
func (s *stockService) List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], *portfolio.HoldingTotals, error) {
	page.Defaults()

	var all []models.Stock
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&all).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	totals := portfolio.AggregateStocks(all)

	items := pageSlice(all, page)
	result := pagination.NewPageResponse(items, page.Page, page.PageSize, int64(len(all)))
	return &result, &totals, nil
}

// GetByID returns a stock if it belongs to the user.
func (s *stockService) GetByID(userID, stockID uint) (*models.Stock, error) {
	var stock models.Stock
	if err := s.db.Where("user_id = ?", userID).First(&stock, stockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichStock(&stock)
	return &stock, nil
}

// Create adds a new stock holding for the user.
func (s *stockService) Create(userID uint, input StockInput) (*models.Stock, error) {
	stock := &models.Stock{
		UserID:      userID,
		Name:        input.Name,
		Quantity:    input.Quantity,
		BuyPrice:    input.BuyPrice,
		MarketPrice: input.MarketPrice,
	}
	if err := s.db.Create(stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichStock(stock)
	return stock, nil
}

// Update replaces the writable fields of a stock holding.
func (s *stockService) Update(userID, stockID uint, input StockInput) (*models.Stock, error) {
	stock, err := s.GetByID(userID, stockID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         input.Name,
		"quantity":     input.Quantity,
		"buy_price":    input.BuyPrice,
		"market_price": input.MarketPrice,
	}
	if err := s.db.Model(stock).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichStock(stock)
	return stock, nil
}

// Delete removes a stock holding.
func (s *stockService) Delete(userID, stockID uint) error {
	result := s.db.Where("user_id = ?", userID).Delete(&models.Stock{}, stockID)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrStockNotFound
	}
	return nil
}
