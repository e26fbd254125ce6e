package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gingerprotocol/rewards-backend/internal/config"
	"github.com/gingerprotocol/rewards-backend/internal/handlers"
	"github.com/gingerprotocol/rewards-backend/internal/middleware"
)

// HandlerDependencies holds the handlers wired into the router
type HandlerDependencies struct {
	ChallengeHandler *handlers.ChallengeHandler
	LotteryHandler   *handlers.LotteryHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		api.GET("/catalog", handlers.GetCatalog)
		api.GET("/lottery/prizes", deps.LotteryHandler.GetPrizes)

		// Player routes
		players := api.Group("/players/:playerId")
		{
			players.GET("/ledger", deps.ChallengeHandler.GetLedger)
			players.PUT("/day", deps.ChallengeHandler.SetCurrentDay)
			players.GET("/challenges", deps.ChallengeHandler.ListChallenges)
			players.POST("/challenges/:challengeId/complete", deps.ChallengeHandler.CompleteChallenge)
			players.GET("/progress", deps.ChallengeHandler.GetProgress)
			players.POST("/lottery/draw", deps.LotteryHandler.DrawPrize)
			players.GET("/lottery/draws", deps.LotteryHandler.GetDraws)
		}

		// Wellness trackers
		wellness := api.Group("/wellness")
		{
			wellness.GET("/water", handlers.GetWater)
			wellness.GET("/fasting", handlers.GetFasting)
		}
	}

	return router
}
