package models

// Commodity represents a commodity holding (gold, silver, etc.) measured
// in a free-form unit such as grams or ounces.
type Commodity struct {
	Base
	UserID      uint    `gorm:"not null;index" json:"userId"`
	Name        string  `gorm:"not null" json:"name"`
	Quantity    float64 `gorm:"not null;default:0" json:"quantity"`
	Unit        string  `json:"unit"`
	BuyPrice    float64 `gorm:"not null;default:0" json:"buyPrice"`
	MarketPrice float64 `gorm:"not null;default:0" json:"marketPrice"`

	// Derived at query time
	Invested      float64 `gorm:"-" json:"invested"`
	MarketValue   float64 `gorm:"-" json:"marketValue"`
	NetPL         float64 `gorm:"-" json:"netPL"`
	ChangePercent float64 `gorm:"-" json:"changePercent"`
}
