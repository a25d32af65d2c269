package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/logger"
	"assetfolio/internal/models"
	"assetfolio/internal/pagination"
	"assetfolio/internal/portfolio"
)

// snapshotService records point-in-time net-worth snapshots.
type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// Record captures the user's current holdings into a snapshot row.
func (s *snapshotService) Record(userID uint) (*models.PortfolioSnapshot, error) {
	h, err := loadHoldings(s.db, userID)
	if err != nil {
		return nil, err
	}

	re := portfolio.AggregateProperties(h.properties)
	st := portfolio.AggregateStocks(h.stocks)
	co := portfolio.AggregateCommodities(h.commodities)
	bi := portfolio.AggregateBusinesses(h.businesses)

	current := re.CurrentValue + st.MarketValue + co.MarketValue + bi.StakeValue
	cash := h.cashTotal()

	snapshot := &models.PortfolioSnapshot{
		UserID:        userID,
		RecordedAt:    time.Now(),
		TotalInvested: re.Invested + st.Invested + co.Invested,
		CurrentValue:  current,
		CashTotal:     cash,
		NetWorth:      current + cash,
	}
	if err := s.db.Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// RecordAll captures a snapshot for every active, verified user.
// Per-user failures are logged and skipped so one bad row cannot stall
// the whole run.
func (s *snapshotService) RecordAll() error {
	var userIDs []uint
	if err := s.db.Model(&models.User{}).
		Where("is_active = ? AND is_verified = ?", true, true).
		Pluck("id", &userIDs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, id := range userIDs {
		if _, err := s.Record(id); err != nil {
			logger.Get().Errorw("snapshot failed", "user_id", id, "error", err)
		}
	}
	return nil
}

// List returns a page of the user's snapshots, newest first.
func (s *snapshotService) List(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.PortfolioSnapshot{}).
		Where("user_id = ?", userID).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.PortfolioSnapshot
	if err := s.db.Where("user_id = ?", userID).Order("recorded_at DESC").
		Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
