package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/pagination"
	"assetfolio/internal/portfolio"
	"assetfolio/internal/services"
)

// StockHandler handles stock holding requests. Single-item responses are
// wrapped in a data envelope, which is the contract the original client
// expects for this resource.
type StockHandler struct {
	stockService services.StockServicer
	auditService services.AuditServicer
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService services.StockServicer, auditService services.AuditServicer) *StockHandler {
	return &StockHandler{stockService: stockService, auditService: auditService}
}

// StockRequest represents the payload for creating or updating a stock.
type StockRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Quantity    float64 `json:"quantity" binding:"omitempty,gte=0"`
	BuyPrice    float64 `json:"buyPrice" binding:"omitempty,gte=0"`
	MarketPrice float64 `json:"marketPrice" binding:"omitempty,gte=0"`
}

// StockListResponse represents a paginated stock list with category totals.
type StockListResponse struct {
	pagination.PageResponse[models.Stock]
	Totals portfolio.HoldingTotals `json:"totals"`
}

// StockResponse wraps a single stock in a data envelope.
type StockResponse struct {
	Data models.Stock `json:"data"`
}

func (r StockRequest) toInput() services.StockInput {
	return services.StockInput{
		Name:        r.Name,
		Quantity:    r.Quantity,
		BuyPrice:    r.BuyPrice,
		MarketPrice: r.MarketPrice,
	}
}

// ListStocks handles listing stock holdings.
// @Summary     List stock holdings
// @Description Get the authenticated user's stocks with category totals
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page     query int false "Page number (default 1)"
// @Param       pageSize query int false "Items per page (default 100, max 500)"
// @Success     200 {object} StockListResponse "Paginated stocks with totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, totals, err := h.stockService.List(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StockListResponse{PageResponse: *result, Totals: *totals})
}

// GetStock handles retrieving a single stock.
// @Summary     Get stock by ID
// @Description Get a specific stock holding
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Stock ID"
// @Success     200 {object} StockResponse "Stock details"
// @Failure     400 {object} ErrorResponse "Invalid stock ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	stock, err := h.stockService.GetByID(userID, stockID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stock})
}

// CreateStock handles creating a stock holding.
// @Summary     Create stock
// @Description Add a new stock holding
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body StockRequest true "Stock details"
// @Success     201 {object} StockResponse "Stock created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stock, err := h.stockService.Create(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_STOCK", "stock", stock.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "quantity": req.Quantity})

	c.JSON(http.StatusCreated, gin.H{"data": stock})
}

// UpdateStock handles updating a stock holding.
// @Summary     Update stock
// @Description Update an existing stock holding
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int          true "Stock ID"
// @Param       request body StockRequest true "Updated stock details"
// @Success     200 {object} StockResponse "Updated stock"
// @Failure     400 {object} ErrorResponse "Invalid input or stock ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/{id} [put]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stock, err := h.stockService.Update(userID, stockID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_STOCK", "stock", stockID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"data": stock})
}

// DeleteStock handles deleting a stock holding.
// @Summary     Delete stock
// @Description Delete a stock holding by ID (soft delete)
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Stock ID"
// @Success     200 {object} MessageResponse "Stock deleted"
// @Failure     400 {object} ErrorResponse "Invalid stock ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/{id} [delete]
func (h *StockHandler) DeleteStock(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.stockService.Delete(userID, stockID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_STOCK", "stock", stockID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Stock deleted successfully"})
}
