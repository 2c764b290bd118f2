package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"staff-scheduler-api/config"
	"staff-scheduler-api/models"
	"staff-scheduler-api/services"
	"staff-scheduler-api/store"
	"staff-scheduler-api/utils"

	"github.com/gin-gonic/gin"
)

func scheduleResponse(s models.Schedule) gin.H {
	return gin.H{
		"schedule_id": s.ScheduleID,
		"date":        utils.FormatDate(s.Date),
		"staff_id":    s.StaffID,
		"project_id":  s.ProjectID,
	}
}

func scheduleResponses(rows []models.Schedule) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleResponse(row))
	}
	return out
}

// dateParam parses a "2006-01-02" path parameter. Writes 400 on failure.
func dateParam(c *gin.Context, name string) (time.Time, bool) {
	date, err := utils.ParseDate(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// notifyDay pushes the best-effort email off the request goroutine.
func notifyDay(date time.Time) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		services.NotifyDayChanged(ctx, config.Data, date)
	}()
}

// GetSchedules lists schedule rows. Supports ?date=YYYY-MM-DD for a single
// day or ?start=&end= for an inclusive range; without filters it returns
// everything.
func GetSchedules(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		rows []models.Schedule
		err  error
	)

	switch {
	case c.Query("date") != "":
		var date time.Time
		date, err = utils.ParseDate(c.Query("date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		rows, err = config.Data.Schedules.ListByDate(ctx, date)
	case c.Query("start") != "" || c.Query("end") != "":
		var start, end time.Time
		start, err = utils.ParseDate(c.Query("start"))
		if err == nil {
			end, err = utils.ParseDate(c.Query("end"))
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid range, expected start=YYYY-MM-DD&end=YYYY-MM-DD"})
			return
		}
		if end.Before(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must not precede start"})
			return
		}
		rows, err = config.Data.Schedules.ListByDateRange(ctx, start, end)
	default:
		rows, err = config.Data.Schedules.List(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"schedules": scheduleResponses(rows),
		"total":     len(rows),
	})
}

// GetSchedule returns one schedule row by id
func GetSchedule(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	row, err := config.Data.Schedules.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Schedule", "Failed to load schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "schedule": scheduleResponse(row)})
}

type scheduleRequest struct {
	Date      string `json:"date" binding:"required"`
	StaffID   int    `json:"staff_id" binding:"required"`
	ProjectID int    `json:"project_id"`
}

func (r scheduleRequest) toModel() (models.Schedule, error) {
	date, err := utils.ParseDate(r.Date)
	if err != nil {
		return models.Schedule{}, err
	}
	return models.Schedule{Date: date, StaffID: r.StaffID, ProjectID: r.ProjectID}, nil
}

// CreateSchedule adds a single assignment
func CreateSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	created, err := config.Data.Schedules.Create(c.Request.Context(), row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	notifyDay(created.Date)
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Schedule created successfully",
		"schedule": scheduleResponse(created),
	})
}

// CreateScheduleBatch inserts several assignments in one call
func CreateScheduleBatch(c *gin.Context) {
	type request struct {
		Schedules []scheduleRequest `json:"schedules" binding:"required,min=1,dive"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]models.Schedule, 0, len(req.Schedules))
	for _, item := range req.Schedules {
		row, err := item.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		rows = append(rows, row)
	}

	created, err := config.Data.Schedules.CreateBatch(c.Request.Context(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedules"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Schedules created successfully",
		"schedules": scheduleResponses(created),
		"total":     len(created),
	})
}

// UpdateSchedule applies a partial update to a schedule row
func UpdateSchedule(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	type request struct {
		Date      *string `json:"date"`
		StaffID   *int    `json:"staff_id"`
		ProjectID *int    `json:"project_id"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.ScheduleUpdate{StaffID: req.StaffID, ProjectID: req.ProjectID}
	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		upd.Date = &date
	}

	updated, err := config.Data.Schedules.Update(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Schedule", "Failed to update schedule")
		return
	}

	notifyDay(updated.Date)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Schedule updated successfully",
		"schedule": scheduleResponse(updated),
	})
}

// MoveSchedule relocates one assignment to another date. Dropping a card on
// the day it already sits on succeeds without touching anything.
func MoveSchedule(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	type request struct {
		Date string `json:"date" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := utils.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	svc := services.NewScheduleService(config.Data)
	row, moved, err := svc.Move(c.Request.Context(), id, target)
	if err != nil {
		storeError(c, err, "Schedule", "Failed to move schedule")
		return
	}

	if moved {
		notifyDay(target)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Schedule moved successfully",
		"moved":    moved,
		"schedule": scheduleResponse(row),
	})
}

// ReplaceScheduleDay swaps the full assignment set for one date. The body
// lists the desired assignments; an empty list clears the day.
func ReplaceScheduleDay(c *gin.Context) {
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	type request struct {
		Assignments []services.DayAssignment `json:"assignments"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewScheduleService(config.Data)
	rows, err := svc.ReplaceDay(c.Request.Context(), date, req.Assignments)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateStaff) || errors.Is(err, services.ErrInvalidStaff) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save day schedule"})
		return
	}

	notifyDay(date)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Day schedule saved successfully",
		"schedules": scheduleResponses(rows),
		"total":     len(rows),
	})
}

// DeleteSchedule removes one assignment
func DeleteSchedule(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	row, err := config.Data.Schedules.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Schedule", "Failed to delete schedule")
		return
	}
	if err := config.Data.Schedules.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err, "Schedule", "Failed to delete schedule")
		return
	}

	notifyDay(row.Date)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule deleted successfully"})
}

// DeleteScheduleDay clears every assignment on one date
func DeleteScheduleDay(c *gin.Context) {
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	if err := config.Data.Schedules.DeleteByDate(c.Request.Context(), date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear day schedule"})
		return
	}

	notifyDay(date)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Day schedule cleared successfully"})
}
