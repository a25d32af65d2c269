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

// PropertyHandler handles real-estate holding requests.
type PropertyHandler struct {
	propertyService services.PropertyServicer
	auditService    services.AuditServicer
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService services.PropertyServicer, auditService services.AuditServicer) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, auditService: auditService}
}

// PropertyRequest represents the payload for creating or updating a property.
// Derived fields (gain, roi, rentYield) are computed server-side and ignored
// if sent.
type PropertyRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Location      string  `json:"location" binding:"max=255"`
	InvestedValue float64 `json:"investedValue" binding:"omitempty,gte=0"`
	CurrentValue  float64 `json:"currentValue" binding:"omitempty,gte=0"`
	Rent          float64 `json:"rent" binding:"omitempty,gte=0"`
}

// PropertyListResponse represents a paginated property list with category totals.
type PropertyListResponse struct {
	pagination.PageResponse[models.Property]
	Totals portfolio.PropertyTotals `json:"totals"`
}

func (r PropertyRequest) toInput() services.PropertyInput {
	return services.PropertyInput{
		Name:          r.Name,
		Location:      r.Location,
		InvestedValue: r.InvestedValue,
		CurrentValue:  r.CurrentValue,
		Rent:          r.Rent,
	}
}

// ListProperties handles listing real-estate holdings.
// @Summary     List real-estate holdings
// @Description Get the authenticated user's properties with category totals
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page     query int false "Page number (default 1)"
// @Param       pageSize query int false "Items per page (default 100, max 500)"
// @Success     200 {object} PropertyListResponse "Paginated properties with totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /real-estate [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
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

	result, totals, err := h.propertyService.List(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertyListResponse{PageResponse: *result, Totals: *totals})
}

// GetProperty handles retrieving a single property.
// @Summary     Get property by ID
// @Description Get a specific real-estate holding
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} models.Property "Property details"
// @Failure     400 {object} ErrorResponse "Invalid property ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /real-estate/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.propertyService.GetByID(userID, propertyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// CreateProperty handles creating a real-estate holding.
// @Summary     Create property
// @Description Add a new real-estate holding
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PropertyRequest true "Property details"
// @Success     201 {object} models.Property "Property created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /real-estate [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	property, err := h.propertyService.Create(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PROPERTY", "property", property.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "investedValue": req.InvestedValue})

	c.JSON(http.StatusCreated, property)
}

// UpdateProperty handles updating a real-estate holding.
// @Summary     Update property
// @Description Update an existing real-estate holding
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Property ID"
// @Param       request body PropertyRequest true "Updated property details"
// @Success     200 {object} models.Property "Updated property"
// @Failure     400 {object} ErrorResponse "Invalid input or property ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /real-estate/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	property, err := h.propertyService.Update(userID, propertyID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROPERTY", "property", propertyID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, property)
}

// DeleteProperty handles deleting a real-estate holding.
// @Summary     Delete property
// @Description Delete a real-estate holding by ID (soft delete)
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} MessageResponse "Property deleted"
// @Failure     400 {object} ErrorResponse "Invalid property ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /real-estate/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.propertyService.Delete(userID, propertyID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PROPERTY", "property", propertyID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
