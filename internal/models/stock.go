package models

// Stock represents a stock holding with manually entered prices.
type Stock struct {
	Base
	UserID      uint    `gorm:"not null;index" json:"userId"`
	Name        string  `gorm:"not null" json:"name"`
	Quantity    float64 `gorm:"not null;default:0" json:"quantity"`
	BuyPrice    float64 `gorm:"not null;default:0" json:"buyPrice"`
	MarketPrice float64 `gorm:"not null;default:0" json:"marketPrice"`

	// Derived at query time
	Invested      float64 `gorm:"-" json:"invested"`
	MarketValue   float64 `gorm:"-" json:"marketValue"`
	NetPL         float64 `gorm:"-" json:"netPL"`
	ChangePercent float64 `gorm:"-" json:"changePercent"`
}
