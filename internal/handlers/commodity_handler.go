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

// CommodityHandler handles commodity holding requests.
type CommodityHandler struct {
	commodityService services.CommodityServicer
	auditService     services.AuditServicer
}

// NewCommodityHandler creates a new CommodityHandler.
func NewCommodityHandler(commodityService services.CommodityServicer, auditService services.AuditServicer) *CommodityHandler {
	return &CommodityHandler{commodityService: commodityService, auditService: auditService}
}

// CommodityRequest represents the payload for creating or updating a commodity.
type CommodityRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Quantity    float64 `json:"quantity" binding:"omitempty,gte=0"`
	Unit        string  `json:"unit" binding:"max=50"`
	BuyPrice    float64 `json:"buyPrice" binding:"omitempty,gte=0"`
	MarketPrice float64 `json:"marketPrice" binding:"omitempty,gte=0"`
}

// CommodityListResponse represents a paginated commodity list with category totals.
type CommodityListResponse struct {
	pagination.PageResponse[models.Commodity]
	Totals portfolio.HoldingTotals `json:"totals"`
}

func (r CommodityRequest) toInput() services.CommodityInput {
	return services.CommodityInput{
		Name:        r.Name,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		BuyPrice:    r.BuyPrice,
		MarketPrice: r.MarketPrice,
	}
}

// ListCommodities handles listing commodity holdings.
// @Summary     List commodity holdings
// @Description Get the authenticated user's commodities with category totals
// @Tags        commodities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page     query int false "Page number (default 1)"
// @Param       pageSize query int false "Items per page (default 100, max 500)"
// @Success     200 {object} CommodityListResponse "Paginated commodities with totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commodities [get]
func (h *CommodityHandler) ListCommodities(c *gin.Context) {
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

	result, totals, err := h.commodityService.List(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommodityListResponse{PageResponse: *result, Totals: *totals})
}

// GetCommodity handles retrieving a single commodity.
// @Summary     Get commodity by ID
// @Description Get a specific commodity holding
// @Tags        commodities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Commodity ID"
// @Success     200 {object} models.Commodity "Commodity details"
// @Failure     400 {object} ErrorResponse "Invalid commodity ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Commodity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commodities/{id} [get]
func (h *CommodityHandler) GetCommodity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	commodityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	commodity, err := h.commodityService.GetByID(userID, commodityID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, commodity)
}

// CreateCommodity handles creating a commodity holding.
// @Summary     Create commodity
// @Description Add a new commodity holding
// @Tags        commodities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CommodityRequest true "Commodity details"
// @Success     201 {object} models.Commodity "Commodity created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commodities [post]
func (h *CommodityHandler) CreateCommodity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CommodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	commodity, err := h.commodityService.Create(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_COMMODITY", "commodity", commodity.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "quantity": req.Quantity, "unit": req.Unit})

	c.JSON(http.StatusCreated, commodity)
}

// UpdateCommodity handles updating a commodity holding.
// @Summary     Update commodity
// @Description Update an existing commodity holding
// @Tags        commodities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int              true "Commodity ID"
// @Param       request body CommodityRequest true "Updated commodity details"
// @Success     200 {object} models.Commodity "Updated commodity"
// @Failure     400 {object} ErrorResponse "Invalid input or commodity ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Commodity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commodities/{id} [put]
func (h *CommodityHandler) UpdateCommodity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	commodityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CommodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	commodity, err := h.commodityService.Update(userID, commodityID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_COMMODITY", "commodity", commodityID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, commodity)
}

// DeleteCommodity handles deleting a commodity holding.
// @Summary     Delete commodity
// @Description Delete a commodity holding by ID (soft delete)
// @Tags        commodities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Commodity ID"
// @Success     200 {object} MessageResponse "Commodity deleted"
// @Failure     400 {object} ErrorResponse "Invalid commodity ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Commodity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commodities/{id} [delete]
func (h *CommodityHandler) DeleteCommodity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	commodityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.commodityService.Delete(userID, commodityID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_COMMODITY", "commodity", commodityID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Commodity deleted successfully"})
}
