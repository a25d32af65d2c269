package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/pagination"
	"assetfolio/internal/portfolio"
)

// propertyService handles real-estate holdings.
type propertyService struct {
	db *gorm.DB
}

// NewPropertyService creates a new PropertyServicer.
func NewPropertyService(db *gorm.DB) PropertyServicer {
	return &propertyService{db: db}
}

// List returns a page of the user's properties together with the
// category totals computed over the full list, not just the page.
func (s *propertyService) List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Property], *portfolio.PropertyTotals, error) {
	page.Defaults()

	var all []models.Property
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&all).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	totals := portfolio.AggregateProperties(all)

	items := pageSlice(all, page)
	result := pagination.NewPageResponse(items, page.Page, page.PageSize, int64(len(all)))
	return &result, &totals, nil
}

// GetByID returns a property if it belongs to the user.
func (s *propertyService) GetByID(userID, propertyID uint) (*models.Property, error) {
	var property models.Property
	if err := s.db.Where("user_id = ?", userID).First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichProperty(&property)
	return &property, nil
}

// Create adds a new property for the user.
func (s *propertyService) Create(userID uint, input PropertyInput) (*models.Property, error) {
	property := &models.Property{
		UserID:        userID,
		Name:          input.Name,
		Location:      input.Location,
		InvestedValue: input.InvestedValue,
		CurrentValue:  input.CurrentValue,
		Rent:          input.Rent,
	}
	if err := s.db.Create(property).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichProperty(property)
	return property, nil
}

// Update replaces the writable fields of a property.
func (s *propertyService) Update(userID, propertyID uint, input PropertyInput) (*models.Property, error) {
	property, err := s.GetByID(userID, propertyID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":           input.Name,
		"location":       input.Location,
		"invested_value": input.InvestedValue,
		"current_value":  input.CurrentValue,
		"rent":           input.Rent,
	}
	if err := s.db.Model(property).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.EnrichProperty(property)
	return property, nil
}

// Delete removes a property.
func (s *propertyService) Delete(userID, propertyID uint) error {
	result := s.db.Where("user_id = ?", userID).Delete(&models.Property{}, propertyID)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}
	return nil
}
