package models

import "time"

// PortfolioSnapshot represents a point-in-time record of a user's net worth.
// This is immutable time-series data, so no Base embed and no soft deletes.
type PortfolioSnapshot struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"userId"`
	RecordedAt    time.Time `gorm:"not null" json:"recordedAt"`
	TotalInvested float64   `gorm:"not null" json:"totalInvested"`
	CurrentValue  float64   `gorm:"not null" json:"currentValue"`
	CashTotal     float64   `gorm:"not null" json:"cashTotal"`
	NetWorth      float64   `gorm:"not null" json:"netWorth"`
}
