package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackbits-tech/hackbits-backend/internal/services"
)

// PaymentHandler handles payment order HTTP requests
type PaymentHandler struct {
	paymentService services.PaymentService
	teamService    services.TeamService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentService, teamService services.TeamService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		teamService:    teamService,
	}
}

// InitiateOrder handles POST /payments/initiate. The order is created at the
// provider for the caller's own team and its fee amount.
func (h *PaymentHandler) InitiateOrder(c *gin.Context) {
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

	order, err := h.paymentService.InitiateOrder(c, team.Team)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders handles GET /payments/orders
func (h *PaymentHandler) GetOrders(c *gin.Context) {
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

	orders, err := h.paymentService.GetOrdersForTeam(c, team.Team)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}
