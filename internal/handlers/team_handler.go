package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/services"
)

// TeamHandler handles participant-facing team HTTP requests
type TeamHandler struct {
	teamService services.TeamService
	authService services.AuthService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService services.TeamService, authService services.AuthService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		authService: authService,
	}
}

// Register handles POST /teams
func (h *TeamHandler) Register(c *gin.Context) {
	email, ok := userEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.authService.GetUserByEmail(c, email)
	if err != nil {
		writeError(c, err)
		return
	}

	team, err := h.teamService.RegisterTeam(c, user, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetMyTeam handles GET /teams/me
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	email, ok := userEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	team, err := h.teamService.GetTeamForLeader(c, email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// SubmitPayment handles PUT /teams/payment
func (h *TeamHandler) SubmitPayment(c *gin.Context) {
	email, ok := userEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	team, err := h.teamService.SubmitPaymentReference(c, email, req.TransactionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// SubmitDocuments handles PUT /teams/documents
func (h *TeamHandler) SubmitDocuments(c *gin.Context) {
	email, ok := userEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.SubmitDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	team, err := h.teamService.SubmitDocuments(c, email, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTicket handles GET /teams/me/ticket. Only a verified team has a ticket.
func (h *TeamHandler) GetTicket(c *gin.Context) {
	email, ok := userEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	team, err := h.teamService.GetTeamForLeader(c, email)
	if err != nil {
		writeError(c, err)
		return
	}

	if team.PaymentStatus != models.PaymentVerified || team.TicketNumber == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Ticket is available only after payment verification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ticketNumber":       team.TicketNumber,
		"registrationNumber": team.RegistrationNumber,
		"teamName":           team.TeamName,
		"qrPayload":          team.QRPayload,
		"qrCode":             team.QRCode,
	})
}

// teamIDFromParam parses the :id path parameter
func teamIDFromParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}
