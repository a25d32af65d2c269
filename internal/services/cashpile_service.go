package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
)

// cashPileService maintains the per-category uninvested cash balances.
type cashPileService struct {
	db *gorm.DB
}

// NewCashPileService creates a new CashPileServicer.
func NewCashPileService(db *gorm.DB) CashPileServicer {
	return &cashPileService{db: db}
}

// Get returns the user's cash pile for an asset class. A pile that was
// never set is reported with a zero amount; no row is created.
func (s *cashPileService) Get(userID uint, class models.AssetClass) (*models.CashPile, error) {
	if !class.Valid() {
		return nil, apperrors.ErrInvalidAssetClass
	}

	var pile models.CashPile
	err := s.db.Where("user_id = ? AND asset_class = ?", userID, class).First(&pile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.CashPile{UserID: userID, AssetClass: class, Amount: 0}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &pile, nil
}

// Set stores an absolute amount for the asset class, creating the pile
// on first use.
func (s *cashPileService) Set(userID uint, class models.AssetClass, amount float64) (*models.CashPile, error) {
	if !class.Valid() {
		return nil, apperrors.ErrInvalidAssetClass
	}
	if !isFinite(amount) {
		return nil, apperrors.ErrInvalidAmount
	}
	return s.upsert(userID, class, func(current float64) float64 { return amount })
}

// AddDelta adjusts the pile by delta and returns the new state. The
// amount must be finite; negative deltas are accepted, the UI just never
// sends them.
func (s *cashPileService) AddDelta(userID uint, class models.AssetClass, delta float64) (*models.CashPile, error) {
	if !class.Valid() {
		return nil, apperrors.ErrInvalidAssetClass
	}
	if !isFinite(delta) {
		return nil, apperrors.ErrInvalidAmount
	}
	return s.upsert(userID, class, func(current float64) float64 { return current + delta })
}

// upsert applies fn to the current amount inside a transaction so two
// concurrent top-ups both land.
func (s *cashPileService) upsert(userID uint, class models.AssetClass, fn func(current float64) float64) (*models.CashPile, error) {
	var pile models.CashPile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND asset_class = ?", userID, class).First(&pile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pile = models.CashPile{UserID: userID, AssetClass: class, Amount: fn(0)}
			return tx.Create(&pile).Error
		}
		if err != nil {
			return err
		}
		pile.Amount = fn(pile.Amount)
		return tx.Model(&pile).Update("amount", pile.Amount).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &pile, nil
}

// isFinite rejects NaN and ±Inf before they can reach storage.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
