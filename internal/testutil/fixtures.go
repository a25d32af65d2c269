package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"assetfolio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a verified user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a verified user with the given email.
// The password is always "password123".
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:      email,
		Password:   string(hash),
		IsActive:   true,
		IsVerified: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProperty creates a real-estate holding with the given values.
func CreateTestProperty(t *testing.T, db *gorm.DB, userID uint, invested, current, rent float64) *models.Property {
	t.Helper()

	property := &models.Property{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Property %d", nextID()),
		Location:      "Testville",
		InvestedValue: invested,
		CurrentValue:  current,
		Rent:          rent,
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}
	return property
}

// CreateTestStock creates a stock holding with the given values.
func CreateTestStock(t *testing.T, db *gorm.DB, userID uint, quantity, buyPrice, marketPrice float64) *models.Stock {
	t.Helper()

	stock := &models.Stock{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Stock %d", nextID()),
		Quantity:    quantity,
		BuyPrice:    buyPrice,
		MarketPrice: marketPrice,
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestCommodity creates a commodity holding with the given values.
func CreateTestCommodity(t *testing.T, db *gorm.DB, userID uint, quantity, buyPrice, marketPrice float64) *models.Commodity {
	t.Helper()

	commodity := &models.Commodity{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Commodity %d", nextID()),
		Quantity:    quantity,
		Unit:        "oz",
		BuyPrice:    buyPrice,
		MarketPrice: marketPrice,
	}
	if err := db.Create(commodity).Error; err != nil {
		t.Fatalf("failed to create test commodity: %v", err)
	}
	return commodity
}

// CreateTestBusiness creates a business holding with the given valuation and ownership.
func CreateTestBusiness(t *testing.T, db *gorm.DB, userID uint, valuation float64, ownership string) *models.Business {
	t.Helper()

	business := &models.Business{
		UserID:    userID,
		Name:      fmt.Sprintf("Test Business %d", nextID()),
		Industry:  "Testing",
		Valuation: valuation,
		Ownership: ownership,
		Status:    models.BusinessStatusActive,
	}
	if err := db.Create(business).Error; err != nil {
		t.Fatalf("failed to create test business: %v", err)
	}
	return business
}

// CreateTestCashPile creates a cash pile for the given asset class.
func CreateTestCashPile(t *testing.T, db *gorm.DB, userID uint, class models.AssetClass, amount float64) *models.CashPile {
	t.Helper()

	pile := &models.CashPile{
		UserID:     userID,
		AssetClass: class,
		Amount:     amount,
	}
	if err := db.Create(pile).Error; err != nil {
		t.Fatalf("failed to create test cash pile: %v", err)
	}
	return pile
}
