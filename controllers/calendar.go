package controllers

import (
	"net/http"
	"time"

	"staff-scheduler-api/config"
	"staff-scheduler-api/services"
	"staff-scheduler-api/utils"

	"github.com/gin-gonic/gin"
)

// GetCalendar returns the month or week grid around a date. ?date= anchors
// the view (defaults to today) and ?view= selects month or week.
func GetCalendar(c *gin.Context) {
	current := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		current = parsed
	}

	view := services.ViewMonth
	switch c.DefaultQuery("view", "month") {
	case "month":
		view = services.ViewMonth
	case "week":
		view = services.ViewWeek
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid view, expected month or week"})
		return
	}

	svc := services.NewCalendarService(config.Data)
	cal, err := svc.View(c.Request.Context(), current, view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build calendar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "calendar": cal})
}
