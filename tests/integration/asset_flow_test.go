package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAssetFlow_RealEstateCRUD(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "re@test.com", "password123")

	// Create: derived fields come back computed.
	rec := app.request("POST", "/api/v1/real-estate",
		`{"name":"Lakeside Flat","location":"Oslo","investedValue":200000,"currentValue":250000,"rent":1500}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	prop := parseJSON(t, rec)
	propID := prop["id"].(float64)
	if prop["gain"].(float64) != 50000 {
		t.Errorf("expected gain 50000, got %v", prop["gain"])
	}
	if prop["roi"].(float64) != 25 {
		t.Errorf("expected ROI 25, got %v", prop["roi"])
	}
	// Rent yield = 1500*12/200000*100 = 9
	if prop["rentYield"].(float64) != 9 {
		t.Errorf("expected rent yield 9, got %v", prop["rentYield"])
	}

	// Update: metrics recompute from new values.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/real-estate/%.0f", propID),
		`{"name":"Lakeside Flat","location":"Oslo","investedValue":200000,"currentValue":180000,"rent":1500}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	prop = parseJSON(t, rec)
	if prop["gain"].(float64) != -20000 {
		t.Errorf("expected gain -20000 after update, got %v", prop["gain"])
	}

	// List: totals cover the holding.
	rec = app.request("GET", "/api/v1/real-estate", "", token)
	result := parseJSON(t, rec)
	totals := result["totals"].(map[string]interface{})
	if totals["monthlyRent"].(float64) != 1500 {
		t.Errorf("expected monthly rent total 1500, got %v", totals["monthlyRent"])
	}

	// Delete, then the record is gone.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/real-estate/%.0f", propID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/real-estate/%.0f", propID), "", token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestAssetFlow_StockMetrics(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "stocks@test.com", "password123")

	rec := app.request("POST", "/api/v1/stocks",
		`{"name":"ACME","quantity":10,"buyPrice":100,"marketPrice":150}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	stock := parseJSON(t, rec)["data"].(map[string]interface{})
	if stock["invested"].(float64) != 1000 {
		t.Errorf("expected invested 1000, got %v", stock["invested"])
	}
	if stock["marketValue"].(float64) != 1500 {
		t.Errorf("expected market value 1500, got %v", stock["marketValue"])
	}
	if stock["netPL"].(float64) != 500 {
		t.Errorf("expected net P/L 500, got %v", stock["netPL"])
	}
	if stock["changePercent"].(float64) != 50 {
		t.Errorf("expected change 50%%, got %v", stock["changePercent"])
	}

	// Second position at a loss; totals sum both.
	rec = app.request("POST", "/api/v1/stocks",
		`{"name":"Globex","quantity":5,"buyPrice":200,"marketPrice":160}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/stocks", "", token)
	result := parseJSON(t, rec)
	totals := result["totals"].(map[string]interface{})
	if totals["invested"].(float64) != 2000 {
		t.Errorf("expected invested total 2000, got %v", totals["invested"])
	}
	if totals["marketValue"].(float64) != 2300 {
		t.Errorf("expected market value total 2300, got %v", totals["marketValue"])
	}
	if totals["netPL"].(float64) != 300 {
		t.Errorf("expected net P/L total 300, got %v", totals["netPL"])
	}
}

func TestAssetFlow_CommodityCRUD(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "gold@test.com", "password123")

	rec := app.request("POST", "/api/v1/commodities",
		`{"name":"Gold","quantity":5,"unit":"oz","buyPrice":1800,"marketPrice":2000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	commodity := parseJSON(t, rec)
	if commodity["invested"].(float64) != 9000 {
		t.Errorf("expected invested 9000, got %v", commodity["invested"])
	}
	if commodity["netPL"].(float64) != 1000 {
		t.Errorf("expected net P/L 1000, got %v", commodity["netPL"])
	}
	if commodity["unit"] != "oz" {
		t.Errorf("expected unit oz, got %v", commodity["unit"])
	}
}

func TestAssetFlow_BusinessDefaultsAndStake(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "biz@test.com", "password123")

	// Defaults apply when ownership and status are omitted.
	rec := app.request("POST", "/api/v1/businesses",
		`{"name":"Corner Cafe","industry":"Food","valuation":80000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	business := parseJSON(t, rec)
	businessID := business["id"].(float64)
	if business["ownership"] != "0%" {
		t.Errorf("expected default ownership 0%%, got %v", business["ownership"])
	}
	if business["status"] != "Active" {
		t.Errorf("expected default status Active, got %v", business["status"])
	}

	// Stake value follows ownership share of valuation.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/businesses/%.0f", businessID),
		`{"name":"Corner Cafe","industry":"Food","valuation":80000,"ownership":"40%","revenue":120000,"netProfit":18000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	business = parseJSON(t, rec)
	if business["stakeValue"].(float64) != 32000 {
		t.Errorf("expected stake value 32000, got %v", business["stakeValue"])
	}
	if business["profitMargin"].(float64) != 15 {
		t.Errorf("expected profit margin 15, got %v", business["profitMargin"])
	}

	// Bad ownership format is rejected.
	rec = app.request("POST", "/api/v1/businesses",
		`{"name":"Bad","ownership":"forty"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed ownership, got %d", rec.Code)
	}
}
