package models

// BusinessStatus represents the lifecycle status of a business holding.
type BusinessStatus string

const (
	BusinessStatusActive   BusinessStatus = "Active"
	BusinessStatusExited   BusinessStatus = "Exited"
	BusinessStatusPlanning BusinessStatus = "Planning"
)

// Business represents a private-business holding. Ownership is stored as
// the percentage string the user entered (e.g. "25%"); the owned share of
// the valuation is derived at query time.
type Business struct {
	Base
	UserID    uint           `gorm:"not null;index" json:"userId"`
	Name      string         `gorm:"not null" json:"name"`
	Industry  string         `json:"industry"`
	Valuation float64        `gorm:"not null;default:0" json:"valuation"`
	Ownership string         `gorm:"not null;default:'0%'" json:"ownership"`
	Revenue   float64        `gorm:"not null;default:0" json:"revenue"`
	NetProfit float64        `gorm:"not null;default:0" json:"netProfit"`
	Status    BusinessStatus `gorm:"not null;default:'Active'" json:"status"`

	// Derived at query time
	StakeValue   float64 `gorm:"-" json:"stakeValue"`
	ProfitMargin float64 `gorm:"-" json:"profitMargin"`
}
