package models

// Property represents a real-estate holding. Monetary fields are stored
// as entered by the user; derived metrics are populated at query time and
// never persisted, so ROI always reflects the stored invested/current pair.
type Property struct {
	Base
	UserID        uint    `gorm:"not null;index" json:"userId"`
	Name          string  `gorm:"not null" json:"name"`
	Location      string  `json:"location"`
	InvestedValue float64 `gorm:"not null;default:0" json:"investedValue"`
	CurrentValue  float64 `gorm:"not null;default:0" json:"currentValue"`
	Rent          float64 `gorm:"not null;default:0" json:"rent"` // monthly

	// Derived at query time
	Gain      float64 `gorm:"-" json:"gain"`
	ROI       float64 `gorm:"-" json:"roi"`
	RentYield float64 `gorm:"-" json:"rentYield"`
}
