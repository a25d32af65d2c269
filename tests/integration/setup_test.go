package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"assetfolio/internal/config"
	"assetfolio/internal/handlers"
	"assetfolio/internal/logger"
	"assetfolio/internal/middleware"
	"assetfolio/internal/models"
	"assetfolio/internal/services"
	"assetfolio/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	if _, err := config.Load(); err != nil {
		panic(err)
	}
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Property{},
		&models.Stock{},
		&models.Commodity{},
		&models.Business{},
		&models.CashPile{},
		&models.PortfolioSnapshot{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	propertyService := services.NewPropertyService(db)
	stockService := services.NewStockService(db)
	commodityService := services.NewCommodityService(db)
	businessService := services.NewBusinessService(db)
	cashPileService := services.NewCashPileService(db)
	dashboardService := services.NewDashboardService(db)
	snapshotService := services.NewSnapshotService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService, auditService)
	stockHandler := handlers.NewStockHandler(stockService, auditService)
	commodityHandler := handlers.NewCommodityHandler(commodityService, auditService)
	businessHandler := handlers.NewBusinessHandler(businessService, auditService)
	cashPileHandler := handlers.NewCashPileHandler(cashPileService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/verify-otp", authHandler.VerifyOTP)
	users.POST("/resend-otp", authHandler.ResendOTP)
	users.POST("/login", authHandler.Login)
	users.POST("/refresh", authHandler.Refresh)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	realEstate := protected.Group("/real-estate")
	realEstate.GET("", propertyHandler.ListProperties)
	realEstate.POST("", propertyHandler.CreateProperty)
	realEstate.GET("/:id", propertyHandler.GetProperty)
	realEstate.PUT("/:id", propertyHandler.UpdateProperty)
	realEstate.DELETE("/:id", propertyHandler.DeleteProperty)

	stocks := protected.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.POST("", stockHandler.CreateStock)
	stocks.GET("/:id", stockHandler.GetStock)
	stocks.PUT("/:id", stockHandler.UpdateStock)
	stocks.DELETE("/:id", stockHandler.DeleteStock)

	commodities := protected.Group("/commodities")
	commodities.GET("", commodityHandler.ListCommodities)
	commodities.POST("", commodityHandler.CreateCommodity)
	commodities.GET("/:id", commodityHandler.GetCommodity)
	commodities.PUT("/:id", commodityHandler.UpdateCommodity)
	commodities.DELETE("/:id", commodityHandler.DeleteCommodity)

	businesses := protected.Group("/businesses")
	businesses.GET("", businessHandler.ListBusinesses)
	businesses.POST("", businessHandler.CreateBusiness)
	businesses.GET("/:id", businessHandler.GetBusiness)
	businesses.PUT("/:id", businessHandler.UpdateBusiness)
	businesses.DELETE("/:id", businessHandler.DeleteBusiness)

	cashPiles := protected.Group("/cash-piles")
	cashPiles.GET("/:assetClass", cashPileHandler.GetCashPile)
	cashPiles.PUT("/:assetClass", cashPileHandler.SetCashPile)
	cashPiles.PATCH("/:assetClass/add", cashPileHandler.AddToCashPile)

	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/dashboard/allocation.png", dashboardHandler.GetAllocationChart)

	snapshots := protected.Group("/snapshots")
	snapshots.GET("", snapshotHandler.ListSnapshots)
	snapshots.POST("", snapshotHandler.RecordSnapshot)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser walks a user through register and verify-otp and returns
// the access token, refresh token, and user ID. Registration responses
// echo the verification code outside production, which is what makes
// this flow testable end to end.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken string, userID float64) {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q,"firstName":"Test","lastName":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/users/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	code, ok := result["otp"].(string)
	if !ok {
		t.Fatalf("expected verification code in register response, got %v", result)
	}

	body = fmt.Sprintf(`{"email":%q,"code":%q}`, email, code)
	rec = app.request("POST", "/api/v1/users/verify-otp", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("verify-otp failed: %d %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["accessToken"].(string), result["refreshToken"].(string), user["id"].(float64)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/users/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["accessToken"].(string), result["refreshToken"].(string)
}
