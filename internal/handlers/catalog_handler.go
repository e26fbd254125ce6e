package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gingerprotocol/rewards-backend/internal/catalog"
	"github.com/gingerprotocol/rewards-backend/internal/utils"
)

// GetCatalog handles GET /catalog?day=N
func GetCatalog(c *gin.Context) {
	day, err := utils.ParseIntDefault(c.Query("day"), 1)
	if err != nil {
		badRequest(c, "Invalid day")
		return
	}
	c.JSON(http.StatusOK, catalog.Generate(day))
}
