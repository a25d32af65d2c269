package services

import (
	"testing"

	"assetfolio/internal/pagination"
	"assetfolio/internal/testutil"
)

func TestCreateStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewStockService(db)
	user := testutil.CreateTestUser(t, db)

	stock, err := svc.Create(user.ID, StockInput{
		Name:        "ACME",
		Quantity:    10,
		BuyPrice:    100,
		MarketPrice: 150,
	})
	testutil.AssertNoError(t, err)

	if stock.Invested != 1000 {
		t.Errorf("expected invested 1000, got %f", stock.Invested)
	}
	if stock.MarketValue != 1500 {
		t.Errorf("expected market value 1500, got %f", stock.MarketValue)
	}
	if stock.NetPL != 500 {
		t.Errorf("expected net P/L 500, got %f", stock.NetPL)
	}
	if stock.ChangePercent != 50 {
		t.Errorf("expected change 50%%, got %f", stock.ChangePercent)
	}
}

func TestCreateStockFreeShares(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewStockService(db)
	user := testutil.CreateTestUser(t, db)

	// Zero buy price must not produce NaN or Inf anywhere.
	stock, err := svc.Create(user.ID, StockInput{Name: "GRANT", Quantity: 5, MarketPrice: 20})
	testutil.AssertNoError(t, err)

	if stock.ChangePercent != 0 {
		t.Errorf("expected change 0%% for zero cost basis, got %f", stock.ChangePercent)
	}
	if stock.NetPL != 100 {
		t.Errorf("expected net P/L 100, got %f", stock.NetPL)
	}
}

func TestListStocks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewStockService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestStock(t, db, user.ID, 10, 100, 150)
	testutil.CreateTestStock(t, db, user.ID, 2, 500, 400)

	result, totals, err := svc.List(user.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)

	if len(result.Data) != 2 {
		t.Fatalf("expected 2 stocks, got %d", len(result.Data))
	}
	if totals.Invested != 2000 {
		t.Errorf("expected invested 2000, got %f", totals.Invested)
	}
	if totals.MarketValue != 2300 {
		t.Errorf("expected market value 2300, got %f", totals.MarketValue)
	}
	if totals.NetPL != 300 {
		t.Errorf("expected net P/L 300, got %f", totals.NetPL)
	}
	if totals.ROIPercent != 15 {
		t.Errorf("expected roi 15, got %f", totals.ROIPercent)
	}

	// Profit identity: totals profit equals market value minus invested exactly.
	if totals.NetPL != totals.MarketValue-totals.Invested {
		t.Error("net P/L should equal market value minus invested")
	}
}

func TestListStocksEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewStockService(db)
	user := testutil.CreateTestUser(t, db)

	result, totals, err := svc.List(user.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)

	if len(result.Data) != 0 {
		t.Errorf("expected empty list, got %d", len(result.Data))
	}
	if totals.Invested != 0 || totals.MarketValue != 0 || totals.NetPL != 0 || totals.ROIPercent != 0 {
		t.Errorf("expected zero totals for empty list, got %+v", totals)
	}
}

func TestUpdateStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewStockService(db)
	user := testutil.CreateTestUser(t, db)
	stock := testutil.CreateTestStock(t, db, user.ID, 10, 100, 150)

	updated, err := svc.Update(user.ID, stock.ID, StockInput{
		Name:        stock.Name,
		Quantity:    20,
		BuyPrice:    100,
		MarketPrice: 90,
	})
	testutil.AssertNoError(t, err)

	if updated.Invested != 2000 {
		t.Errorf("expected invested 2000, got %f", updated.Invested)
	}
	if updated.NetPL != -200 {
		t.Errorf("expected net P/L -200, got %f", updated.NetPL)
	}
}

func TestDeleteStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewStockService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	stock := testutil.CreateTestStock(t, db, user.ID, 10, 100, 150)

	err := svc.Delete(other.ID, stock.ID)
	testutil.AssertAppError(t, err, "STOCK_NOT_FOUND")

	testutil.AssertNoError(t, svc.Delete(user.ID, stock.ID))
	_, err = svc.GetByID(user.ID, stock.ID)
	testutil.AssertAppError(t, err, "STOCK_NOT_FOUND")
}
