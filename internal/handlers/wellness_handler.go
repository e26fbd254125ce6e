package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gingerprotocol/rewards-backend/internal/utils"
	"github.com/gingerprotocol/rewards-backend/internal/wellness"
)

// GetWater handles GET /wellness/water?glasses=N&action=add|remove
func GetWater(c *gin.Context) {
	glasses, err := utils.ParseIntDefault(c.Query("glasses"), 0)
	if err != nil {
		badRequest(c, "Invalid glasses")
		return
	}
	switch c.Query("action") {
	case "":
	case "add":
		glasses = wellness.AddGlass(glasses)
	case "remove":
		glasses = wellness.RemoveGlass(glasses)
	default:
		badRequest(c, "Invalid action")
		return
	}
	c.JSON(http.StatusOK, wellness.WaterProgress(glasses))
}

// GetFasting handles GET /wellness/fasting?elapsedSeconds=S&targetHours=H
func GetFasting(c *gin.Context) {
	elapsed, err := utils.ParseIntDefault(c.Query("elapsedSeconds"), 0)
	if err != nil || elapsed < 0 || int64(elapsed) > math.MaxInt64/int64(time.Second) {
		badRequest(c, "Invalid elapsedSeconds")
		return
	}
	target, err := utils.ParseFloatDefault(c.Query("targetHours"), wellness.DefaultFastingTarget.Hours())
	if err != nil || math.IsNaN(target) || target <= 0 || target > wellness.MaxFastingTarget.Hours() {
		badRequest(c, "Invalid targetHours")
		return
	}
	c.JSON(http.StatusOK, wellness.FastingProgress(
		time.Duration(elapsed)*time.Second,
		time.Duration(target*float64(time.Hour)),
	))
}
