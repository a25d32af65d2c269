package main

import (
	"fmt"
	"net/http"
	"os"

	"assetfolio/internal/config"
	"assetfolio/internal/database"
	"assetfolio/internal/handlers"
	"assetfolio/internal/jobs"
	"assetfolio/internal/logger"
	"assetfolio/internal/middleware"
	"assetfolio/internal/services"
	"assetfolio/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "assetfolio/internal/docs" // Import swagger docs
)

// @title           Assetfolio API
// @version         1.0
// @description     Assetfolio is a personal investment tracker covering real estate, stocks, commodities, and businesses, with per-category cash piles and a portfolio dashboard.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validation tags
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	propertyService := services.NewPropertyService(db)
	stockService := services.NewStockService(db)
	commodityService := services.NewCommodityService(db)
	businessService := services.NewBusinessService(db)
	cashPileService := services.NewCashPileService(db)
	dashboardService := services.NewDashboardService(db)
	snapshotService := services.NewSnapshotService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService, auditService)
	stockHandler := handlers.NewStockHandler(stockService, auditService)
	commodityHandler := handlers.NewCommodityHandler(commodityService, auditService)
	businessHandler := handlers.NewBusinessHandler(businessService, auditService)
	cashPileHandler := handlers.NewCashPileHandler(cashPileService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Start the daily snapshot scheduler
	scheduler, err := jobs.NewSnapshotScheduler(appConfig.SnapshotCron, snapshotService)
	if err != nil {
		return fmt.Errorf("failed to create snapshot scheduler: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	users := v1.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/verify-otp", authHandler.VerifyOTP)
	users.POST("/resend-otp", authHandler.ResendOTP)
	users.POST("/login", authHandler.Login)
	users.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Real-estate routes
	realEstate := protected.Group("/real-estate")
	realEstate.GET("", propertyHandler.ListProperties)
	realEstate.POST("", propertyHandler.CreateProperty)
	realEstate.GET("/:id", propertyHandler.GetProperty)
	realEstate.PUT("/:id", propertyHandler.UpdateProperty)
	realEstate.DELETE("/:id", propertyHandler.DeleteProperty)

	// Stock routes
	stocks := protected.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.POST("", stockHandler.CreateStock)
	stocks.GET("/:id", stockHandler.GetStock)
	stocks.PUT("/:id", stockHandler.UpdateStock)
	stocks.DELETE("/:id", stockHandler.DeleteStock)

	// Commodity routes
	commodities := protected.Group("/commodities")
	commodities.GET("", commodityHandler.ListCommodities)
	commodities.POST("", commodityHandler.CreateCommodity)
	commodities.GET("/:id", commodityHandler.GetCommodity)
	commodities.PUT("/:id", commodityHandler.UpdateCommodity)
	commodities.DELETE("/:id", commodityHandler.DeleteCommodity)

	// Business routes
	businesses := protected.Group("/businesses")
	businesses.GET("", businessHandler.ListBusinesses)
	businesses.POST("", businessHandler.CreateBusiness)
	businesses.GET("/:id", businessHandler.GetBusiness)
	businesses.PUT("/:id", businessHandler.UpdateBusiness)
	businesses.DELETE("/:id", businessHandler.DeleteBusiness)

	// Cash pile routes
	cashPiles := protected.Group("/cash-piles")
	cashPiles.GET("/:assetClass", cashPileHandler.GetCashPile)
	cashPiles.PUT("/:assetClass", cashPileHandler.SetCashPile)
	cashPiles.PATCH("/:assetClass/add", cashPileHandler.AddToCashPile)

	// Dashboard routes
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/dashboard/allocation.png", dashboardHandler.GetAllocationChart)

	// Snapshot routes
	snapshots := protected.Group("/snapshots")
	snapshots.GET("", snapshotHandler.ListSnapshots)
	snapshots.POST("", snapshotHandler.RecordSnapshot)

	log.Infof("Starting Assetfolio backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
