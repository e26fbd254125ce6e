package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gingerprotocol/rewards-backend/internal/services"
	"github.com/gingerprotocol/rewards-backend/internal/utils"
)

const defaultHistoryLimit = 20

// LotteryHandler handles lottery HTTP requests
type LotteryHandler struct {
	lotteryService services.LotteryService
}

// NewLotteryHandler creates a new LotteryHandler
func NewLotteryHandler(lotteryService services.LotteryService) *LotteryHandler {
	return &LotteryHandler{lotteryService: lotteryService}
}

// GetPrizes handles GET /lottery/prizes
func (h *LotteryHandler) GetPrizes(c *gin.Context) {
	c.JSON(http.StatusOK, h.lotteryService.Prizes())
}

// DrawPrize handles POST /players/:playerId/lottery/draw
func (h *LotteryHandler) DrawPrize(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	draw, err := h.lotteryService.DrawPrize(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draw)
}

// GetDraws handles GET /players/:playerId/lottery/draws
func (h *LotteryHandler) GetDraws(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}
	limit, err := utils.ParseIntDefault(c.Query("limit"), defaultHistoryLimit)
	if err != nil || limit < 0 {
		badRequest(c, "Invalid limit")
		return
	}
	draws, err := h.lotteryService.History(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draws)
}
