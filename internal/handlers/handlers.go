package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackbits-tech/hackbits-backend/internal/lifecycle"
	"github.com/hackbits-tech/hackbits-backend/internal/services"
)

// writeError maps service errors onto HTTP status codes so every handler
// renders failures the same way
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrNotVerified):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrIneligibleForVerification),
		errors.Is(err, lifecycle.ErrMissingRejectionReason),
		errors.Is(err, lifecycle.ErrInvalidStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrRegistrationClosed),
		errors.Is(err, lifecycle.ErrCheckInClosed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrTeamExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// userEmail reads the authenticated email set by the auth middleware
func userEmail(c *gin.Context) (string, bool) {
	value, ok := c.Get("userEmail")
	if !ok {
		return "", false
	}
	email, ok := value.(string)
	return email, ok && email != ""
}

// userID reads the authenticated account id set by the auth middleware
func userID(c *gin.Context) (string, bool) {
	value, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}
