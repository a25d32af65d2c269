package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/services"
)

// CashPileHandler handles per-category cash balance requests. Responses use
// the {success, data} envelope the original client expects.
type CashPileHandler struct {
	cashPileService services.CashPileServicer
	auditService    services.AuditServicer
}

// NewCashPileHandler creates a new CashPileHandler.
func NewCashPileHandler(cashPileService services.CashPileServicer, auditService services.AuditServicer) *CashPileHandler {
	return &CashPileHandler{cashPileService: cashPileService, auditService: auditService}
}

// SetCashPileRequest represents the payload for setting an absolute cash amount.
// Amount is a pointer so an explicit zero passes required validation.
type SetCashPileRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// AddCashPileRequest represents the payload for an additive cash adjustment.
// Negative deltas are accepted and reduce the pile.
type AddCashPileRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// CashPileResponse represents a cash pile response envelope.
type CashPileResponse struct {
	Success bool            `json:"success"`
	Data    models.CashPile `json:"data"`
}

// parseAssetClass extracts and validates the assetClass path parameter.
func parseAssetClass(c *gin.Context) (models.AssetClass, error) {
	class := models.AssetClass(c.Param("assetClass"))
	if !class.Valid() {
		return "", apperrors.ErrInvalidAssetClass
	}
	return class, nil
}

// GetCashPile handles retrieving a category's cash balance.
// @Summary     Get cash pile
// @Description Get the cash balance for an asset category, zero if never set
// @Tags        cash-piles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       assetClass path string true "Asset class (realEstate, stocks, commodities, businesses)"
// @Success     200 {object} CashPileResponse "Cash pile"
// @Failure     400 {object} ErrorResponse "Unknown asset class"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cash-piles/{assetClass} [get]
func (h *CashPileHandler) GetCashPile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	class, err := parseAssetClass(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	pile, err := h.cashPileService.Get(userID, class)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pile})
}

// SetCashPile handles setting a category's cash balance to an absolute value.
// @Summary     Set cash pile
// @Description Set the cash balance for an asset category
// @Tags        cash-piles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       assetClass path string             true "Asset class"
// @Param       request    body SetCashPileRequest true "Absolute amount"
// @Success     200 {object} CashPileResponse "Updated cash pile"
// @Failure     400 {object} ErrorResponse "Invalid amount or asset class"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cash-piles/{assetClass} [put]
func (h *CashPileHandler) SetCashPile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	class, err := parseAssetClass(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetCashPileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	pile, err := h.cashPileService.Set(userID, class, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_CASH_PILE", "cash_pile", pile.ID, c.ClientIP(),
		map[string]interface{}{"assetClass": class, "amount": *req.Amount})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pile})
}

// AddToCashPile handles adjusting a category's cash balance by a delta.
// @Summary     Add to cash pile
// @Description Adjust the cash balance for an asset category by a delta, which may be negative
// @Tags        cash-piles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       assetClass path string             true "Asset class"
// @Param       request    body AddCashPileRequest true "Delta amount"
// @Success     200 {object} CashPileResponse "Updated cash pile"
// @Failure     400 {object} ErrorResponse "Invalid amount or asset class"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cash-piles/{assetClass}/add [patch]
func (h *CashPileHandler) AddToCashPile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	class, err := parseAssetClass(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddCashPileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	pile, err := h.cashPileService.AddDelta(userID, class, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_CASH_PILE", "cash_pile", pile.ID, c.ClientIP(),
		map[string]interface{}{"assetClass": class, "delta": *req.Amount})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pile})
}
