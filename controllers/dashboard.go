package controllers

import (
	"net/http"

	"staff-scheduler-api/config"
	"staff-scheduler-api/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns headline counts, per-project cost breakdowns
// and per-staff utilization in one payload.
func GetDashboardStats(c *gin.Context) {
	svc := services.NewDashboardService(config.Data)
	stats, err := svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
