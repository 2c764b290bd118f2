package controllers

import (
	"net/http"

	"staff-scheduler-api/config"
	"staff-scheduler-api/models"
	"staff-scheduler-api/store"
	"staff-scheduler-api/utils"

	"github.com/gin-gonic/gin"
)

func jobCostResponse(j models.JobCost) gin.H {
	return gin.H{
		"job_cost_id": j.JobCostID,
		"project_id":  j.ProjectID,
		"cost":        j.Cost,
		"date":        utils.FormatDate(j.Date),
		"details":     j.Details,
	}
}

// GetJobCosts lists all direct project expenses
func GetJobCosts(c *gin.Context) {
	costs, err := config.Data.JobCosts.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job costs"})
		return
	}

	responses := make([]gin.H, 0, len(costs))
	for _, cost := range costs {
		responses = append(responses, jobCostResponse(cost))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"job_costs": responses,
		"total":     len(responses),
	})
}

// GetJobCost returns one expense by id
func GetJobCost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	cost, err := config.Data.JobCosts.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Job cost", "Failed to load job cost")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "job_cost": jobCostResponse(cost)})
}

// CreateJobCost records a direct expense against a project
func CreateJobCost(c *gin.Context) {
	type request struct {
		ProjectID int     `json:"project_id" binding:"required"`
		Cost      float64 `json:"cost" binding:"required,gt=0"`
		Date      string  `json:"date" binding:"required"`
		Details   string  `json:"details"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	cost, err := config.Data.JobCosts.Create(c.Request.Context(), models.JobCost{
		ProjectID: req.ProjectID,
		Cost:      req.Cost,
		Date:      date,
		Details:   utils.SanitizeInput(req.Details),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job cost"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Job cost created successfully",
		"job_cost": jobCostResponse(cost),
	})
}

// UpdateJobCost applies a partial update to an expense
func UpdateJobCost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	type request struct {
		ProjectID *int     `json:"project_id"`
		Cost      *float64 `json:"cost"`
		Date      *string  `json:"date"`
		Details   *string  `json:"details"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Cost != nil && *req.Cost <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cost must be positive"})
		return
	}

	upd := store.JobCostUpdate{ProjectID: req.ProjectID, Cost: req.Cost}
	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		upd.Date = &date
	}
	if req.Details != nil {
		details := utils.SanitizeInput(*req.Details)
		upd.Details = &details
	}

	cost, err := config.Data.JobCosts.Update(c.Request.Context(), id, upd)
	if err != nil {
		storeError(c, err, "Job cost", "Failed to update job cost")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Job cost updated successfully",
		"job_cost": jobCostResponse(cost),
	})
}

// DeleteJobCost removes an expense
func DeleteJobCost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := config.Data.JobCosts.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err, "Job cost", "Failed to delete job cost")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job cost deleted successfully"})
}
