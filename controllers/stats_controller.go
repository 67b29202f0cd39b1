package controllers

import (
	"net/http"

	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsSvc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{StatsSvc: svc}
}

// GetDashboard (GET /api/stats/dashboard) — recomputed from the order and
// table rows on every call, nothing cached.
func (ctrl *StatsController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.StatsSvc.Dashboard(restaurantIDFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
