package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/services"
)

// CheckInHandler handles venue check-in HTTP requests
type CheckInHandler struct {
	checkInService services.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler
func NewCheckInHandler(checkInService services.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		checkInService: checkInService,
	}
}

// CheckIn handles POST /checkin. An already-checked-in team gets a 200 with
// AlreadyCheckedIn set, not an error.
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.RegistrationNumber == "" && req.Payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either registrationNumber or payload is required"})
		return
	}

	resp, err := h.checkInService.CheckIn(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Verify handles POST /checkin/verify
func (h *CheckInHandler) Verify(c *gin.Context) {
	var req models.VerifyCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	eligibility, err := h.checkInService.VerifyEligibility(c, req.RegistrationNumber)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, eligibility)
}

// Undo handles POST /checkin/undo/:id
func (h *CheckInHandler) Undo(c *gin.Context) {
	teamID, ok := teamIDFromParam(c)
	if !ok {
		return
	}

	team, err := h.checkInService.UndoCheckIn(c, teamID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check-in undone", "team": team})
}

// GetStats handles GET /checkin/stats
func (h *CheckInHandler) GetStats(c *gin.Context) {
	stats, err := h.checkInService.GetStats(c)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetHistory handles GET /checkin/history
func (h *CheckInHandler) GetHistory(c *gin.Context) {
	teams, err := h.checkInService.GetHistory(c)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams, "count": len(teams)})
}
