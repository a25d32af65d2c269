package services

import (
	"math"
	"testing"

	"assetfolio/internal/models"
	"assetfolio/internal/testutil"
)

func TestGetCashPileUnset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCashPileService(db)
	user := testutil.CreateTestUser(t, db)

	pile, err := svc.Get(user.ID, models.AssetClassStocks)
	testutil.AssertNoError(t, err)

	if pile.Amount != 0 {
		t.Errorf("expected zero amount for unset pile, got %f", pile.Amount)
	}

	// Reading must not create a row.
	var count int64
	db.Model(&models.CashPile{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows after read, got %d", count)
	}
}

func TestGetCashPileInvalidClass(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCashPileService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.Get(user.ID, models.AssetClass("crypto"))
	testutil.AssertAppError(t, err, "INVALID_ASSET_CLASS")
}

func TestSetCashPile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCashPileService(db)
	user := testutil.CreateTestUser(t, db)

	pile, err := svc.Set(user.ID, models.AssetClassRealEstate, 5000)
	testutil.AssertNoError(t, err)
	if pile.Amount != 5000 {
		t.Errorf("expected amount 5000, got %f", pile.Amount)
	}

	// Set is absolute, not additive.
	pile, err = svc.Set(user.ID, models.AssetClassRealEstate, 1200)
	testutil.AssertNoError(t, err)
	if pile.Amount != 1200 {
		t.Errorf("expected amount 1200 after second set, got %f", pile.Amount)
	}

	var count int64
	db.Model(&models.CashPile{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected a single row per (user, class), got %d", count)
	}
}

func TestAddDeltaCashPile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCashPileService(db)
	user := testutil.CreateTestUser(t, db)

	pile, err := svc.AddDelta(user.ID, models.AssetClassCommodities, 300)
	testutil.AssertNoError(t, err)
	if pile.Amount != 300 {
		t.Errorf("expected amount 300, got %f", pile.Amount)
	}

	pile, err = svc.AddDelta(user.ID, models.AssetClassCommodities, 200)
	testutil.AssertNoError(t, err)
	if pile.Amount != 500 {
		t.Errorf("expected amount 500, got %f", pile.Amount)
	}

	// Negative deltas reduce the pile.
	pile, err = svc.AddDelta(user.ID, models.AssetClassCommodities, -150)
	testutil.AssertNoError(t, err)
	if pile.Amount != 350 {
		t.Errorf("expected amount 350, got %f", pile.Amount)
	}
}

func TestCashPileRejectsNonFinite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCashPileService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.Set(user.ID, models.AssetClassStocks, math.NaN())
	testutil.AssertAppError(t, err, "INVALID_AMOUNT")

	_, err = svc.AddDelta(user.ID, models.AssetClassStocks, math.Inf(1))
	testutil.AssertAppError(t, err, "INVALID_AMOUNT")

	// A rejected write must leave nothing behind.
	pile, err := svc.Get(user.ID, models.AssetClassStocks)
	testutil.AssertNoError(t, err)
	if pile.Amount != 0 {
		t.Errorf("expected amount to remain 0, got %f", pile.Amount)
	}
}

func TestCashPilesIsolatedPerClass(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCashPileService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.Set(user.ID, models.AssetClassStocks, 1000)
	testutil.AssertNoError(t, err)
	_, err = svc.Set(user.ID, models.AssetClassBusinesses, 2000)
	testutil.AssertNoError(t, err)

	stocks, err := svc.Get(user.ID, models.AssetClassStocks)
	testutil.AssertNoError(t, err)
	businesses, err := svc.Get(user.ID, models.AssetClassBusinesses)
	testutil.AssertNoError(t, err)

	if stocks.Amount != 1000 || businesses.Amount != 2000 {
		t.Errorf("piles should not interfere, got stocks=%f businesses=%f", stocks.Amount, businesses.Amount)
	}
}
