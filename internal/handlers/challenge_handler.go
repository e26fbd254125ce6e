package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gingerprotocol/rewards-backend/internal/services"
)

// ChallengeHandler handles player challenge HTTP requests
type ChallengeHandler struct {
	challengeService services.ChallengeService
}

// NewChallengeHandler creates a new ChallengeHandler
func NewChallengeHandler(challengeService services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// GetLedger handles GET /players/:playerId/ledger
func (h *ChallengeHandler) GetLedger(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	ledger, err := h.challengeService.GetLedger(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledger)
}

type setDayRequest struct {
	Day *int `json:"day" binding:"required"`
}

// SetCurrentDay handles PUT /players/:playerId/day
func (h *ChallengeHandler) SetCurrentDay(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	var req setDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	state, err := h.challengeService.SetCurrentDay(c.Request.Context(), id, *req.Day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ListChallenges handles GET /players/:playerId/challenges
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	challenges, err := h.challengeService.ListChallenges(c.Request.Context(), id, c.DefaultQuery("category", "all"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// CompleteChallenge handles POST /players/:playerId/challenges/:challengeId/complete.
// Rejected completions are not errors and still answer 200.
func (h *ChallengeHandler) CompleteChallenge(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	result, err := h.challengeService.CompleteChallenge(c.Request.Context(), id, c.Param("challengeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProgress handles GET /players/:playerId/progress
func (h *ChallengeHandler) GetProgress(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	report, err := h.challengeService.Progress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
