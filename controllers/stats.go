// controllers/stats.go
package controllers

import (
	"net/http"

	"eventhub-backend/services"
	"eventhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// StatsController serves the read-only admin aggregation.
type StatsController struct {
	Reports *services.ReportService
}

func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.Reports.Stats()
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
