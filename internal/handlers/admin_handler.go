package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/services"
)

// AdminHandler handles admin dashboard HTTP requests
type AdminHandler struct {
	teamService     services.TeamService
	settingsService services.SettingsService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(teamService services.TeamService, settingsService services.SettingsService) *AdminHandler {
	return &AdminHandler{
		teamService:     teamService,
		settingsService: settingsService,
	}
}

// ListTeams handles GET /admin/teams?status=pending|verified|rejected|all
func (h *AdminHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams(c, c.DefaultQuery("status", "all"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams, "count": len(teams)})
}

// GetStats handles GET /admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.teamService.GetStats(c)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdatePaymentStatus handles PUT /admin/teams/:id/payment-status
func (h *AdminHandler) UpdatePaymentStatus(c *gin.Context) {
	teamID, ok := teamIDFromParam(c)
	if !ok {
		return
	}

	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	team, err := h.teamService.ChangePaymentStatus(c, teamID, req.PaymentStatus, req.RejectionReason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetSettings handles GET /admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	settings, err := h.settingsService.Update(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
