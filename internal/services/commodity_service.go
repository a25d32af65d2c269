package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/pagination"
	"assetfolio/internal/portfolio"
)

// commodityService handles commodity holdings.
type commodityService struct {
	db *gorm.DB
}

// NewCommodityService creates a new CommodityServicer.
func NewCommodityService(db *gorm.DB) CommodityServicer {
	return &commodityService{db: db}
}

// List returns a page of the user's commodities with category totals
// computed over the full list.
func (s *commodityService) List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Commodity], *portfolio.HoldingTotals, error) {
	page.Defaults()

	var all []models.Commodity
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&all).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	totals := portfolio.AggregateCommodities(all)

	items := pageSlice(all, page)
	result := pagination.NewPageResponse(items, page.Page, page.PageSize, int64(len(all)))
	return &result, &totals, nil
}

// GetByID returns a commodity if it belongs to the user.
func (s *commodityService) GetByID(userID, commodityID uint) (*models.Commodity, error) {
	var commodity models.Commodity
	if err := s.db.Where("user_id = ?", userID).First(&commodity, commodityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommodityNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichCommodity(&commodity)
	return &commodity, nil
}

// Create adds a new commodity holding for the user.
func (s *commodityService) Create(userID uint, input CommodityInput) (*models.Commodity, error) {
	commodity := &models.Commodity{
		UserID:      userID,
		Name:        input.Name,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		BuyPrice:    input.BuyPrice,
		MarketPrice: input.MarketPrice,
	}
	if err := s.db.Create(commodity).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichCommodity(commodity)
	return commodity, nil
}

// Update replaces the writable fields of a commodity holding.
func (s *commodityService) Update(userID, commodityID uint, input CommodityInput) (*models.Commodity, error) {
	commodity, err := s.GetByID(userID, commodityID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         input.Name,
		"quantity":     input.Quantity,
		"unit":         input.Unit,
		"buy_price":    input.BuyPrice,
		"market_price": input.MarketPrice,
	}
	if err := s.db.Model(commodity).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichCommodity(commodity)
	return commodity, nil
}

// Delete removes a commodity holding.
func (s *commodityService) Delete(userID, commodityID uint) error {
	result := s.db.Where("user_id = ?", userID).Delete(&models.Commodity{}, commodityID)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCommodityNotFound
	}
	return nil
}
