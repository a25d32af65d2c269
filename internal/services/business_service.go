package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/pagination"
	"assetfolio/internal/portfolio"
)

// businessService handles business holdings.
type businessService struct {
	db *gorm.DB
}

// NewBusinessService creates a new BusinessServicer.
func NewBusinessService(db *gorm.DB) BusinessServicer {
	return &businessService{db: db}
}

// List returns a page of the user's businesses with category totals
// computed over the full list.
func (s *businessService) List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Business], *portfolio.BusinessTotals, error) {
	page.Defaults()

	var all []models.Business
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&all).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	totals := portfolio.AggregateBusinesses(all)

	items := pageSlice(all, page)
	result := pagination.NewPageResponse(items, page.Page, page.PageSize, int64(len(all)))
	return &result, &totals, nil
}

// GetByID returns a business if it belongs to the user.
func (s *businessService) GetByID(userID, businessID uint) (*models.Business, error) {
	var business models.Business
	if err := s.db.Where("user_id = ?", userID).First(&business, businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichBusiness(&business)
	return &business, nil
}

// Create adds a new business holding for the user.
func (s *businessService) Create(userID uint, input BusinessInput) (*models.Business, error) {
	status := input.Status
	if status == "" {
		status = models.BusinessStatusActive
	}
	ownership := input.Ownership
	if ownership == "" {
		ownership = "0%"
	}

	business := &models.Business{
		UserID:    userID,
		Name:      input.Name,
		Industry:  input.Industry,
		Valuation: input.Valuation,
		Ownership: ownership,
		Revenue:   input.Revenue,
		NetProfit: input.NetProfit,
		Status:    status,
	}
	if err := s.db.Create(business).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichBusiness(business)
	return business, nil
}

// Update replaces the writable fields of a business holding.
func (s *businessService) Update(userID, businessID uint, input BusinessInput) (*models.Business, error) {
	business, err := s.GetByID(userID, businessID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.BusinessStatusActive
	}
	ownership := input.Ownership
	if ownership == "" {
		ownership = "0%"
	}

	updates := map[string]interface{}{
		"name":       input.Name,
		"industry":   input.Industry,
		"valuation":  input.Valuation,
		"ownership":  ownership,
		"revenue":    input.Revenue,
		"net_profit": input.NetProfit,
		"status":     status,
	}
	if err := s.db.Model(business).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichBusiness(business)
	return business, nil
}

// Delete removes a business holding.
func (s *businessService) Delete(userID, businessID uint) error {
	result := s.db.Where("user_id = ?", userID).Delete(&models.Business{}, businessID)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBusinessNotFound
	}
	return nil
}
