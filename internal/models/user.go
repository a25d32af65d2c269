package models

import "time"

// User represents the user model in the database.
// New users start unverified; a signup OTP must be confirmed before login.
type User struct {
	Base
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	IsActive            bool       `gorm:"default:true" json:"isActive"`
	IsVerified          bool       `gorm:"default:false" json:"isVerified"`
	OTPHash             string     `gorm:"size:64" json:"-"`
	OTPExpiresAt        *time.Time `json:"-"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"lastLoginAt,omitempty"`
}
