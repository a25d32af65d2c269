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

// BusinessHandler handles business holding requests.
type BusinessHandler struct {
	businessService services.BusinessServicer
	auditService    services.AuditServicer
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(businessService services.BusinessServicer, auditService services.AuditServicer) *BusinessHandler {
	return &BusinessHandler{businessService: businessService, auditService: auditService}
}

// BusinessRequest represents the payload for creating or updating a business.
// Ownership is a percentage string like "25%"; an empty value defaults to "0%".
type BusinessRequest struct {
	Name      string                `json:"name" binding:"required,min=1,max=255"`
	Industry  string                `json:"industry" binding:"max=255"`
	Valuation float64               `json:"valuation" binding:"omitempty,gte=0"`
	Ownership string                `json:"ownership" binding:"omitempty,ownership"`
	Revenue   float64               `json:"revenue" binding:"omitempty,gte=0"`
	NetProfit float64               `json:"netProfit"`
	Status    models.BusinessStatus `json:"status" binding:"omitempty,business_status"`
}

// BusinessListResponse represents a paginated business list with category totals.
type BusinessListResponse struct {
	pagination.PageResponse[models.Business]
	Totals portfolio.BusinessTotals `json:"totals"`
}

func (r BusinessRequest) toInput() services.BusinessInput {
	return services.BusinessInput{
		Name:      r.Name,
		Industry:  r.Industry,
		Valuation: r.Valuation,
		Ownership: r.Ownership,
		Revenue:   r.Revenue,
		NetProfit: r.NetProfit,
		Status:    r.Status,
	}
}

// ListBusinesses handles listing business holdings.
// @Summary     List business holdings
// @Description Get the authenticated user's businesses with category totals
// @Tags        businesses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page     query int false "Page number (default 1)"
// @Param       pageSize query int false "Items per page (default 100, max 500)"
// @Success     200 {object} BusinessListResponse "Paginated businesses with totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /businesses [get]
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
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

	result, totals, err := h.businessService.List(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BusinessListResponse{PageResponse: *result, Totals: *totals})
}

// GetBusiness handles retrieving a single business.
// @Summary     Get business by ID
// @Description Get a specific business holding
// @Tags        businesses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Business ID"
// @Success     200 {object} models.Business "Business details"
// @Failure     400 {object} ErrorResponse "Invalid business ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Business not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /businesses/{id} [get]
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	businessID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	business, err := h.businessService.GetByID(userID, businessID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

// CreateBusiness handles creating a business holding.
// @Summary     Create business
// @Description Add a new business holding
// @Tags        businesses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BusinessRequest true "Business details"
// @Success     201 {object} models.Business "Business created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /businesses [post]
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	business, err := h.businessService.Create(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BUSINESS", "business", business.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "valuation": req.Valuation, "ownership": req.Ownership})

	c.JSON(http.StatusCreated, business)
}

// UpdateBusiness handles updating a business holding.
// @Summary     Update business
// @Description Update an existing business holding
// @Tags        businesses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Business ID"
// @Param       request body BusinessRequest true "Updated business details"
// @Success     200 {object} models.Business "Updated business"
// @Failure     400 {object} ErrorResponse "Invalid input or business ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Business not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /businesses/{id} [put]
func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	businessID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	business, err := h.businessService.Update(userID, businessID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUSINESS", "business", businessID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, business)
}

// DeleteBusiness handles deleting a business holding.
// @Summary     Delete business
// @Description Delete a business holding by ID (soft delete)
// @Tags        businesses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Business ID"
// @Success     200 {object} MessageResponse "Business deleted"
// @Failure     400 {object} ErrorResponse "Invalid business ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Business not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /businesses/{id} [delete]
func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	businessID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.businessService.Delete(userID, businessID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUSINESS", "business", businessID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}
