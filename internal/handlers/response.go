package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/services"
	"github.com/gingerprotocol/rewards-backend/internal/utils"
)

// Error codes returned in the "code" field of error responses
const (
	CodeBadRequest          = "bad_request"
	CodeInvalidDay          = "invalid_day"
	CodeInvalidCategory     = "invalid_category"
	CodeInsufficientTickets = "insufficient_tickets"
	CodeInternal            = "internal_error"
)

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "code": CodeBadRequest})
}

// respondError maps service errors to HTTP responses
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, services.ErrInsufficientTickets):
		c.JSON(http.StatusConflict, gin.H{
			"error": services.MsgInsufficientTickets,
			"code":  CodeInsufficientTickets,
			"notification": models.Notification{
				Level:   models.NotificationError,
				Message: services.MsgInsufficientTickets,
			},
		})
	case errors.Is(err, services.ErrInvalidDay):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeInvalidDay})
	case errors.Is(err, services.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeInvalidCategory})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": CodeInternal})
	}
}

// playerID reads and validates the :playerId path parameter
func playerID(c *gin.Context) (string, bool) {
	id, ok := utils.SafePlayerID(c.Param("playerId"))
	if !ok {
		badRequest(c, "Invalid player ID")
	}
	return id, ok
}
