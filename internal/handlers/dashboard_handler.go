package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetfolio/internal/chart"
	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/services"
)

// DashboardHandler handles cross-category summary requests. Responses use
// the {success, data} envelope the original client expects.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardResponse represents the dashboard response envelope.
type DashboardResponse struct {
	Success bool                      `json:"success"`
	Data    services.DashboardSummary `json:"data"`
}

// GetDashboard handles retrieving the portfolio summary.
// @Summary     Get dashboard summary
// @Description Get aggregate counts, totals, and per-category breakdown for the authenticated user
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DashboardResponse "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.Summary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// GetAllocationChart handles rendering the allocation donut chart.
// @Summary     Get allocation chart
// @Description Render the cross-category allocation as a PNG donut chart
// @Tags        dashboard
// @Produce     png
// @Security    BearerAuth
// @Success     200 {file} file "PNG image"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No allocation data"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/allocation.png [get]
func (h *DashboardHandler) GetAllocationChart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	slices, err := h.dashboardService.Allocation(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := chart.RenderAllocationPNG(slices)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "No allocation data to render"))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
