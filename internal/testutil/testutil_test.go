package testutil_test

import (
	"testing"

	"assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "properties", "stocks", "commodities", "businesses", "cash_piles", "portfolio_snapshots", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}
	if !user.IsVerified {
		t.Error("test user should be verified")
	}

	property := testutil.CreateTestProperty(t, db, user.ID, 100000, 120000, 500)
	if property.InvestedValue != 100000 {
		t.Errorf("expected invested value 100000, got %f", property.InvestedValue)
	}

	stock := testutil.CreateTestStock(t, db, user.ID, 10, 100, 150)
	if stock.Quantity != 10 {
		t.Errorf("expected quantity 10, got %f", stock.Quantity)
	}

	commodity := testutil.CreateTestCommodity(t, db, user.ID, 5, 2000, 2100)
	if commodity.Unit != "oz" {
		t.Errorf("expected unit oz, got %s", commodity.Unit)
	}

	business := testutil.CreateTestBusiness(t, db, user.ID, 1000000, "40%")
	if business.Status != models.BusinessStatusActive {
		t.Errorf("expected active business, got %s", business.Status)
	}

	pile := testutil.CreateTestCashPile(t, db, user.ID, models.AssetClassStocks, 2500)
	if pile.Amount != 2500 {
		t.Errorf("expected amount 2500, got %f", pile.Amount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrStockNotFound, "custom message")
	testutil.AssertAppError(t, err, "STOCK_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
